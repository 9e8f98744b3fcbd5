package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"casewrite/internal/gemini"
	"casewrite/internal/model"
)

func str() *gemini.Schema { return &gemini.Schema{Type: gemini.TypeString} }

func strDesc(d string) *gemini.Schema {
	return &gemini.Schema{Type: gemini.TypeString, Description: d}
}

func nullableStr() *gemini.Schema {
	return &gemini.Schema{Type: gemini.TypeString, Nullable: true}
}

func arrayOf(items *gemini.Schema) *gemini.Schema {
	return &gemini.Schema{Type: gemini.TypeArray, Items: items}
}

func object(props map[string]*gemini.Schema, required ...string) *gemini.Schema {
	return &gemini.Schema{Type: gemini.TypeObject, Properties: props, Required: required}
}

// WorkflowResultSchema describes model.WorkflowResult for constrained output.
func WorkflowResultSchema() *gemini.Schema {
	return object(map[string]*gemini.Schema{
		"caseId": str(),
		"initialProcessing": object(map[string]*gemini.Schema{
			"acknowledgedToSender":   str(),
			"documentTypeIdentified": strDesc("Identify if it is a form, letter, or handwritten note."),
			"employeeName":           nullableStr(),
			"dateOfIncident":         nullableStr(),
			"dateReceived":           str(),
		}, "acknowledgedToSender", "documentTypeIdentified", "dateReceived"),
		"analysisAndStorage": object(map[string]*gemini.Schema{
			"summary":                      str(),
			"keyPoints":                    arrayOf(str()),
			"disabilityDetails":            strDesc("Details extracted from text or handwriting regarding the condition."),
			"simulatedStorageConfirmation": str(),
		}, "summary", "keyPoints", "disabilityDetails", "simulatedStorageConfirmation"),
		"planningAndTasks": object(map[string]*gemini.Schema{
			"casePlan": object(map[string]*gemini.Schema{
				"planDetails": str(),
				"reasoning":   str(),
			}, "planDetails", "reasoning"),
			"suggestedTasks": arrayOf(object(map[string]*gemini.Schema{
				"title":                str(),
				"details":              str(),
				"dueDateSuggestion":    str(),
				"assignedToSuggestion": str(),
			}, "title", "details", "dueDateSuggestion", "assignedToSuggestion")),
			"suggestedCalendarEvents": arrayOf(object(map[string]*gemini.Schema{
				"title":                        str(),
				"description":                  str(),
				"startTimeSuggestion":          str(),
				"endTimeSuggestion":            str(),
				"alertMinutesBeforeSuggestion": {Type: gemini.TypeNumber, Nullable: true},
			}, "title", "description", "startTimeSuggestion", "endTimeSuggestion")),
		}, "casePlan", "suggestedTasks", "suggestedCalendarEvents"),
		"notificationsAndUrgency": object(map[string]*gemini.Schema{
			"simulatedAlerts": arrayOf(object(map[string]*gemini.Schema{
				"recipientSuggestion": str(),
				"channelSuggestion":   str(),
				"message":             str(),
			}, "recipientSuggestion", "channelSuggestion", "message")),
			"overallUrgencyLevel": str(),
		}, "simulatedAlerts", "overallUrgencyLevel"),
		"aiAgentActions": object(map[string]*gemini.Schema{
			"draftLetters": arrayOf(object(map[string]*gemini.Schema{
				"recipient": str(),
				"subject":   str(),
				"content":   strDesc("Full draft of the letter content."),
				"context":   str(),
				"status":    {Type: gemini.TypeString, Enum: []string{model.LetterStatusPendingApproval}},
			}, "recipient", "subject", "content", "context", "status")),
			"stakeholderCommunications": arrayOf(object(map[string]*gemini.Schema{
				"stakeholder": str(),
				"updateType":  str(),
				"notes":       str(),
			}, "stakeholder", "updateType", "notes")),
		}, "draftLetters", "stakeholderCommunications"),
	}, "caseId", "initialProcessing", "analysisAndStorage", "planningAndTasks", "notificationsAndUrgency", "aiAgentActions")
}

var (
	resultSchemaOnce sync.Once
	resultSchema     *gojsonschema.Schema
	resultSchemaErr  error
)

func compiledResultSchema() (*gojsonschema.Schema, error) {
	resultSchemaOnce.Do(func() {
		loader := gojsonschema.NewGoLoader(WorkflowResultSchema().JSONSchema())
		resultSchema, resultSchemaErr = gojsonschema.NewSchema(loader)
	})
	return resultSchema, resultSchemaErr
}

// ParseWorkflowResult decodes a response body into a WorkflowResult.
// Bodies that are not JSON or do not match WorkflowResultSchema fail with ErrSchema.
func ParseWorkflowResult(body string) (*model.WorkflowResult, error) {
	if !json.Valid([]byte(body)) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrSchema)
	}

	schema, err := compiledResultSchema()
	if err != nil {
		return nil, fmt.Errorf("compile result schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewStringLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, desc := range res.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
	}

	var out model.WorkflowResult
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return &out, nil
}

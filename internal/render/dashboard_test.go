package render

import (
	"encoding/json"
	"os"
	"testing"

	"casewrite/internal/model"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadResult(t *testing.T) *model.WorkflowResult {
	t.Helper()
	b, err := os.ReadFile("../service/testdata/workflow_result.json")
	require.NoError(t, err)
	var res model.WorkflowResult
	require.NoError(t, json.Unmarshal(b, &res))
	return &res
}

func TestBuild_Nil(t *testing.T) {
	assert.Nil(t, Build(nil))
}

func TestBuild_PanelOrder(t *testing.T) {
	d := Build(loadResult(t))

	assert.Equal(t, []string{
		"AI Agent Actions",
		"Initial Processing & Receipt",
		"Document Analysis & Simulated Storage",
		"Case Plan Update",
		"Suggested Tasks",
		"Suggested Calendar Events",
		"Simulated Alerts & Urgency",
	}, d.PanelTitles())
	assert.Equal(t, "Casewrite AI Workflow Results for Case ID: CASE-1", d.Heading)
}

func TestBuild_Content(t *testing.T) {
	d := Build(loadResult(t))

	require.Len(t, d.Tasks.Items, 2)
	assert.Equal(t, "Request medical note", d.Tasks.Items[0].Title)
	assert.Equal(t, "Notify supervisor", d.Tasks.Items[1].Title)
	assert.Empty(t, d.Tasks.Empty)

	require.Len(t, d.AgentActions.Letters, 1)
	assert.Equal(t, "PENDING APPROVAL", d.AgentActions.Letters[0].Status)
	assert.Equal(t, "HR Director", d.AgentActions.Stakeholders[0].Stakeholder)

	require.Len(t, d.Calendar.Items, 1)
	assert.Equal(t, "15 minutes before", d.Calendar.Items[0].Reminder.Value)
	assert.False(t, d.Calendar.Items[0].Reminder.Missing)

	assert.Equal(t, TierHigh, d.Urgency.Tier)
	assert.Equal(t, "High", d.Urgency.Level)

	employee, ok := lo.Find(d.Intake.Fields, func(f Field) bool { return f.Label == "Employee Name" })
	require.True(t, ok)
	assert.Equal(t, "Jordan Lee", employee.Value)
}

func TestBuild_Fallbacks(t *testing.T) {
	res := &model.WorkflowResult{
		CaseID: "CASE-9",
		PlanningAndTasks: model.PlanningOutput{
			SuggestedCalendarEvents: []model.SuggestedCalendarEvent{{Title: "Check-in"}},
		},
		NotificationsAndUrgency: model.UrgencyReport{OverallUrgencyLevel: "Critical"},
	}

	d := Build(res)

	employee, _ := lo.Find(d.Intake.Fields, func(f Field) bool { return f.Label == "Employee Name" })
	assert.Equal(t, NotSpecified, employee.Value)
	assert.True(t, employee.Missing)
	incident, _ := lo.Find(d.Intake.Fields, func(f Field) bool { return f.Label == "Date of Incident" })
	assert.Equal(t, NotSpecified, incident.Value)

	assert.Equal(t, NotSpecified, d.Calendar.Items[0].Reminder.Value)
	assert.Equal(t, NotSpecified, d.Calendar.Items[0].Start.Value)
	assert.Equal(t, NotSpecified, d.Plan.Plan.Value)

	assert.Equal(t, EmptyLetters, d.AgentActions.LettersEmpty)
	assert.Equal(t, EmptyStakeholders, d.AgentActions.StakeholdersEmpty)
	assert.Equal(t, EmptyKeyPoints, d.Analysis.KeyPointsEmpty)
	assert.Equal(t, EmptyTasks, d.Tasks.Empty)
	assert.Empty(t, d.Calendar.Empty)
	assert.Equal(t, EmptyAlerts, d.Urgency.Empty)

	assert.Equal(t, TierDefault, d.Urgency.Tier)
	assert.Equal(t, "Critical", d.Urgency.Level)
}

func TestBuild_ZeroReminder(t *testing.T) {
	zero := 0.0
	half := 7.5
	res := &model.WorkflowResult{PlanningAndTasks: model.PlanningOutput{
		SuggestedCalendarEvents: []model.SuggestedCalendarEvent{
			{AlertMinutesBeforeSuggestion: &zero},
			{AlertMinutesBeforeSuggestion: &half},
		},
	}}

	d := Build(res)

	assert.Equal(t, "0 minutes before", d.Calendar.Items[0].Reminder.Value)
	assert.Equal(t, "7.5 minutes before", d.Calendar.Items[1].Reminder.Value)
}

func TestClassifyUrgency(t *testing.T) {
	tests := []struct {
		level model.UrgencyLevel
		want  UrgencyTier
	}{
		{"Low", TierLow},
		{"low", TierLow},
		{"MEDIUM", TierMedium},
		{"High", TierHigh},
		{"hIgH", TierHigh},
		{" high ", TierHigh},
		{"Critical", TierDefault},
		{"", TierDefault},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUrgency(tt.level))
		})
	}
}

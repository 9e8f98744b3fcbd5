package service

import (
	"fmt"
	"strings"
	"time"

	"casewrite/internal/gemini"
	"casewrite/internal/model"
)

// PlaceholderPrompt is sent as the text part when the submission carries only a file.
const PlaceholderPrompt = "Please analyze the attached document."

const contextPrefix = "Additional Context/Text Content:\n"

// SystemInstruction returns the assistant instructions for one case.
// The date is rendered as YYYY-MM-DD in now's location.
func SystemInstruction(caseID string, now time.Time) string {
	return fmt.Sprintf(`
You are "Casewrite AI", an advanced autonomous agent for employee disability case management.
Your goal is to process incoming case documents (images, PDFs, handwritten notes, or text), understand them deeply, and orchestrate the entire case management workflow.
The current date is %s.
Case ID: %q.

**Your Capabilities:**
1. **Vision & OCR**: You can read complex documents, including cursive handwriting, forms, and medical notes.
2. **Analysis**: Identify document types, extract employee details, and summarize medical conditions.
3. **Planning**: Create actionable case management plans and schedule tasks.
4. **Communication Agent**:
   - You must DRAFT formal letters to stakeholders (Employee, Doctor, HR) based on the document content.
   - These letters should be professional, empathetic, and ready for the Case Manager to approve.
   - Identify necessary updates to other stakeholders.

**Output Requirement:**
Analyze the provided input (text and/or image) and return a strict JSON object matching the provided schema.
`, now.Format(time.DateOnly), caseID)
}

// ContentParts builds the user turn: one text part, then an inline-data part if a file is attached.
func ContentParts(sub model.DocumentSubmission) []gemini.Part {
	text := PlaceholderPrompt
	if strings.TrimSpace(sub.DocumentContent) != "" {
		text = contextPrefix + sub.DocumentContent
	}

	parts := []gemini.Part{{Text: text}}
	if sub.HasFile() {
		parts = append(parts, gemini.Part{InlineData: &gemini.InlineData{
			MIMEType: sub.FileData.MIMEType,
			Data:     sub.FileData.Data,
		}})
	}
	return parts
}

// BuildRequest assembles the complete constrained-output request for sub.
func BuildRequest(sub model.DocumentSubmission, now time.Time) *gemini.GenerateContentRequest {
	return &gemini.GenerateContentRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: SystemInstruction(sub.CaseID, now)}},
		},
		Contents: []gemini.Content{{Role: "user", Parts: ContentParts(sub)}},
		GenerationConfig: gemini.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   WorkflowResultSchema(),
		},
	}
}

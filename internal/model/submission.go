package model

import "github.com/samber/lo"

// Allowed MIME types for uploaded documents.
const (
	MIMETypeJPEG = "image/jpeg"
	MIMETypePNG  = "image/png"
	MIMETypeWEBP = "image/webp"
	MIMETypePDF  = "application/pdf"
)

// AllowedMIMETypes is the upload allow-list shared by the intake form and the request builder.
var AllowedMIMETypes = []string{MIMETypeJPEG, MIMETypePNG, MIMETypeWEBP, MIMETypePDF}

// IsAllowedMIMEType reports whether mt is in the upload allow-list.
func IsAllowedMIMEType(mt string) bool {
	return lo.Contains(AllowedMIMETypes, mt)
}

// FileData is an uploaded document already encoded as base64 text.
type FileData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// DocumentSubmission is the single input of an analysis.
// It is created at submission time and consumed once.
type DocumentSubmission struct {
	CaseID          string    `json:"caseId"`
	DocumentContent string    `json:"documentContent"`
	FileData        *FileData `json:"fileData,omitempty"`
}

// HasFile reports whether a file payload is attached.
func (s DocumentSubmission) HasFile() bool {
	return s.FileData != nil && s.FileData.Data != ""
}

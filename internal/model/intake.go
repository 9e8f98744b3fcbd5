package model

import "time"

// Intake outcomes recorded in the ledger.
const (
	IntakeSucceeded = "succeeded"
	IntakeFailed    = "failed"
)

// IntakeRecord is one ledger row describing a finished submission.
// It holds submission metadata and the outcome only, never result content.
type IntakeRecord struct {
	ID          string    `json:"id"`
	CaseID      string    `json:"case_id"`
	HasText     bool      `json:"has_text"`
	ContentType string    `json:"content_type"`
	FileSize    int64     `json:"file_size"`
	Status      string    `json:"status"`
	ErrorKind   string    `json:"error_kind"`
	DurationMs  int64     `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

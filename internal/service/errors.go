package service

import "errors"

// Failure taxonomy of an analysis. Every failure aborts the submission; none is retried.
var (
	ErrMissingCredential  = errors.New("API_KEY environment variable not set or not accessible. Please ensure it's configured in your environment")
	ErrValidation         = errors.New("invalid submission")
	ErrEncoding           = errors.New("failed to process the file")
	ErrRemote             = errors.New("failed to analyze document")
	ErrSchema             = errors.New("model response did not match the expected shape")
	ErrSubmissionInFlight = errors.New("a submission is already being processed")
)

// Stable machine-readable codes for the taxonomy.
const (
	KindMissingCredential = "MISSING_CREDENTIAL"
	KindValidation        = "VALIDATION_ERROR"
	KindEncoding          = "ENCODING_ERROR"
	KindRemote            = "REMOTE_ERROR"
	KindSchema            = "SCHEMA_ERROR"
	KindInFlight          = "SUBMISSION_IN_FLIGHT"
	KindInternal          = "INTERNAL_ERROR"
)

// Kind maps err onto its taxonomy code. Nil maps to the empty string.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return KindMissingCredential
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrEncoding):
		return KindEncoding
	case errors.Is(err, ErrRemote):
		return KindRemote
	case errors.Is(err, ErrSchema):
		return KindSchema
	case errors.Is(err, ErrSubmissionInFlight):
		return KindInFlight
	default:
		return KindInternal
	}
}

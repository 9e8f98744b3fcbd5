package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"casewrite/internal/gemini"
	"casewrite/internal/model"
)

// AnalysisService turns one submission into one workflow result.
type AnalysisService interface {
	// Analyze issues exactly one model call for sub. It never retries and never returns a partial result.
	Analyze(ctx context.Context, sub model.DocumentSubmission) (*model.WorkflowResult, error)
}

// AnalyzerConfig carries the explicit dependencies of the request builder.
type AnalyzerConfig struct {
	// Credential is the model API key. An empty value fails every call with ErrMissingCredential.
	Credential string
	Model      string
	// Now defaults to time.Now.
	Now      func() time.Time
	Location *time.Location
}

type analysisService struct {
	gen        gemini.Generator
	credential string
	model      string
	now        func() time.Time
	loc        *time.Location
}

// NewAnalysisService constructs the request builder around gen.
func NewAnalysisService(gen gemini.Generator, cfg AnalyzerConfig) AnalysisService {
	s := &analysisService{
		gen:        gen,
		credential: cfg.Credential,
		model:      cfg.Model,
		now:        cfg.Now,
		loc:        cfg.Location,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	return s
}

func (s *analysisService) Analyze(ctx context.Context, sub model.DocumentSubmission) (*model.WorkflowResult, error) {
	if s.credential == "" {
		return nil, ErrMissingCredential
	}
	if err := CheckSubmission(sub); err != nil {
		return nil, err
	}

	req := BuildRequest(sub, s.now().In(s.loc))
	text, err := s.gen.GenerateContent(ctx, s.model, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %v", ErrRemote, gemini.ErrEmptyResponse)
	}

	return ParseWorkflowResult(text)
}

// CheckSubmission enforces the submission invariants inside the core.
// Callers are expected to have validated already; this guards direct API use.
func CheckSubmission(sub model.DocumentSubmission) error {
	if strings.TrimSpace(sub.CaseID) == "" {
		return fmt.Errorf("%w: case ID is required", ErrValidation)
	}
	hasText := strings.TrimSpace(sub.DocumentContent) != ""
	if !hasText && !sub.HasFile() {
		return fmt.Errorf("%w: either text content or a document is required", ErrValidation)
	}
	if !sub.HasFile() {
		return nil
	}
	if !model.IsAllowedMIMEType(sub.FileData.MIMEType) {
		return fmt.Errorf("%w: unsupported file type %q", ErrValidation, sub.FileData.MIMEType)
	}
	if _, err := base64.StdEncoding.DecodeString(sub.FileData.Data); err != nil {
		return fmt.Errorf("%w: file data is not valid base64", ErrEncoding)
	}
	return nil
}

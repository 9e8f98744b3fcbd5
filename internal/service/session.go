package service

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"casewrite/internal/model"
)

// IntakeRecorder persists ledger rows for finished submissions.
type IntakeRecorder interface {
	Record(ctx context.Context, rec *model.IntakeRecord) error
}

// Outcome is the content of the current-result slot.
// Exactly one of Result and Err is set.
type Outcome struct {
	CaseID     string
	Result     *model.WorkflowResult
	Err        error
	FinishedAt time.Time
}

// Session serialises submissions: one in flight at a time, and a single
// current-result slot that is cleared when a submission starts and replaced
// when it finishes.
type Session struct {
	analyzer AnalysisService
	recorder IntakeRecorder
	metrics  *AnalysisMetrics
	log      *slog.Logger
	now      func() time.Time

	busy    atomic.Bool
	mu      sync.RWMutex
	current *Outcome
}

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithRecorder attaches an intake ledger.
func WithRecorder(r IntakeRecorder) SessionOption {
	return func(s *Session) { s.recorder = r }
}

// WithMetrics attaches analysis counters.
func WithMetrics(m *AnalysisMetrics) SessionOption {
	return func(s *Session) { s.metrics = m }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession wraps analyzer with the in-flight guard.
func NewSession(analyzer AnalysisService, opts ...SessionOption) *Session {
	s := &Session{
		analyzer: analyzer,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Busy reports whether a submission is in flight.
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// Current returns the last finished outcome, or nil while a submission is
// in flight or before the first one.
func (s *Session) Current() *Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Session) setCurrent(o *Outcome) {
	s.mu.Lock()
	s.current = o
	s.mu.Unlock()
}

// Submit runs one analysis. It fails fast with ErrSubmissionInFlight when
// another submission has not finished yet; in that case nothing is called
// and the current slot is left untouched.
func (s *Session) Submit(ctx context.Context, sub model.DocumentSubmission) (*model.WorkflowResult, error) {
	if !s.busy.CompareAndSwap(false, true) {
		s.metrics.observe(KindInFlight)
		return nil, ErrSubmissionInFlight
	}
	defer s.busy.Store(false)

	s.setCurrent(nil)
	start := s.now()

	res, err := s.analyzer.Analyze(ctx, sub)
	if err != nil {
		res = nil
	}

	finished := s.now()
	s.setCurrent(&Outcome{CaseID: sub.CaseID, Result: res, Err: err, FinishedAt: finished})
	s.metrics.observe(Kind(err))

	if err != nil {
		s.log.Error("analysis failed", "case_id", sub.CaseID, "kind", Kind(err), "error", err)
	} else {
		s.log.Info("analysis completed", "case_id", sub.CaseID,
			"urgency", string(res.NotificationsAndUrgency.OverallUrgencyLevel),
			"duration_ms", finished.Sub(start).Milliseconds())
	}

	s.record(ctx, sub, err, start, finished)
	return res, err
}

func (s *Session) record(ctx context.Context, sub model.DocumentSubmission, err error, start, finished time.Time) {
	if s.recorder == nil {
		return
	}
	rec := &model.IntakeRecord{
		ID:         uuid.NewString(),
		CaseID:     sub.CaseID,
		HasText:    strings.TrimSpace(sub.DocumentContent) != "",
		Status:     model.IntakeSucceeded,
		ErrorKind:  Kind(err),
		DurationMs: finished.Sub(start).Milliseconds(),
		CreatedAt:  finished.UTC(),
	}
	if err != nil {
		rec.Status = model.IntakeFailed
	}
	if sub.HasFile() {
		rec.ContentType = sub.FileData.MIMEType
		rec.FileSize = decodedSize(sub.FileData.Data)
	}

	// Ledger failures are logged only.
	if rerr := s.recorder.Record(context.WithoutCancel(ctx), rec); rerr != nil {
		s.log.Warn("intake ledger write failed", "case_id", sub.CaseID, "error", rerr)
	}
}

func decodedSize(b64 string) int64 {
	n := base64.StdEncoding.DecodedLen(len(b64))
	if len(b64) >= 2 {
		n -= strings.Count(b64[len(b64)-2:], "=")
	}
	return int64(n)
}

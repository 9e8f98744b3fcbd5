package service

import "github.com/prometheus/client_golang/prometheus"

// AnalysisMetrics counts finished submissions by outcome.
type AnalysisMetrics struct {
	analyses *prometheus.CounterVec
}

// NewAnalysisMetrics registers the analysis counter on reg.
func NewAnalysisMetrics(reg prometheus.Registerer) (*AnalysisMetrics, error) {
	m := &AnalysisMetrics{
		analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "casewrite_analyses_total",
				Help: "Total number of document submissions by outcome.",
			},
			[]string{"outcome"},
		),
	}
	if err := reg.Register(m.analyses); err != nil {
		return nil, err
	}
	return m, nil
}

// observe is nil-safe so sessions can run without metrics.
func (m *AnalysisMetrics) observe(kind string) {
	if m == nil {
		return
	}
	if kind == "" {
		kind = "success"
	}
	m.analyses.WithLabelValues(kind).Inc()
}

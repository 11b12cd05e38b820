// Package metrics exposes Prometheus instrumentation for document validation.
// Collectors are registered on an injected registerer; nothing is global.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics provides observability for the validation pipeline
type Metrics struct {
	// Documents processed by format and outcome
	Documents *prometheus.CounterVec

	// Violations reported by rule code
	Violations *prometheus.CounterVec

	// Decode + validate latency per document
	Duration *prometheus.HistogramVec

	// HTTP requests by route and status
	Requests *prometheus.CounterVec
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "efactura_documents_total",
			Help: "Documents processed by format and outcome",
		}, []string{"format", "outcome"}),

		Violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "efactura_violations_total",
			Help: "Business rule violations by rule code",
		}, []string{"code"}),

		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "efactura_validation_duration_seconds",
			Help:    "Duration of decoding and validating one document",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"format"}),

		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "efactura_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "status"}),
	}
	if reg != nil {
		reg.MustRegister(m.Documents, m.Violations, m.Duration, m.Requests)
	}
	return m
}

// ObserveDocument records one processed document
func (m *Metrics) ObserveDocument(format, outcome string, d time.Duration) {
	if m != nil {
		m.Documents.WithLabelValues(format, outcome).Inc()
		m.Duration.WithLabelValues(format).Observe(d.Seconds())
	}
}

// IncrementViolation records one violation of the given rule
func (m *Metrics) IncrementViolation(code string) {
	if m != nil {
		m.Violations.WithLabelValues(code).Inc()
	}
}

// IncrementRequest records one HTTP request
func (m *Metrics) IncrementRequest(route, status string) {
	if m != nil {
		m.Requests.WithLabelValues(route, status).Inc()
	}
}

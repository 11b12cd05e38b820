package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/rezonia/efactura/internal/metrics"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveDocument("ubl-invoice", metrics.OutcomeValid, 2*time.Millisecond)
	m.ObserveDocument("ubl-invoice", metrics.OutcomeInvalid, time.Millisecond)
	m.ObserveDocument("ubl-invoice", metrics.OutcomeInvalid, time.Millisecond)
	m.IncrementViolation("BR-CO-11")
	m.IncrementRequest("/api/v1/validate", "200")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Documents.WithLabelValues("ubl-invoice", metrics.OutcomeValid)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Documents.WithLabelValues("ubl-invoice", metrics.OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Violations.WithLabelValues("BR-CO-11")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("/api/v1/validate", "200")))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
		metrics.New(nil)
	})
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveDocument("json", metrics.OutcomeError, time.Second)
		m.IncrementViolation("BR-1")
		m.IncrementRequest("/health", "200")
	})
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveCreditWrite("PAYMENT", OutcomeOK)
	m.ObserveCreditWrite("PAYMENT", OutcomeOK)
	m.ObserveCreditWrite("SALE", OutcomeRejected)
	m.ObserveReport(OutcomeStale, time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/health", http.StatusOK, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.creditWrites.WithLabelValues("PAYMENT", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.creditWrites.WithLabelValues("SALE", OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reportRequests.WithLabelValues(OutcomeStale)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/health", "200")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCreditWrite("PAYMENT", OutcomeOK)
		m.ObserveReport(OutcomeOK, time.Second)
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Second)
	})
}

func TestHandler_ExposesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveReport(OutcomeOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pos_report_requests_total")
	assert.Contains(t, rec.Body.String(), "pos_report_build_duration_seconds")
}

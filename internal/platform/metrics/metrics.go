// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pos"

// Outcome labels shared by the write and report counters.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomePartial  = "partial"
	OutcomeStale    = "stale"
	OutcomeError    = "error"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	creditWrites   *prometheus.CounterVec
	reportRequests *prometheus.CounterVec
	reportDuration prometheus.Histogram
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		creditWrites: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credit_ledger_writes_total",
			Help:      "Credit ledger writes by entry type and outcome.",
		}, []string{"type", "outcome"}),
		reportRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_requests_total",
			Help:      "Summary report requests by outcome.",
		}, []string{"outcome"}),
		reportDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_build_duration_seconds",
			Help:      "Time to fetch and assemble a summary report.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveHTTP records one finished HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveCreditWrite records one ledger write attempt.
func (m *Metrics) ObserveCreditWrite(entryType, outcome string) {
	if m == nil {
		return
	}
	m.creditWrites.WithLabelValues(entryType, outcome).Inc()
}

// ObserveReport records one summary report request.
func (m *Metrics) ObserveReport(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.reportRequests.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.reportDuration.Observe(elapsed.Seconds())
	}
}

// Handler serves the collectors gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

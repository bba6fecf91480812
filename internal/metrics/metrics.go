package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled HTTP requests by path pattern and status class.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gymtrack_http_requests_total",
		Help: "Handled HTTP requests.",
	},
	[]string{"path", "status"},
)

// StatementDuration observes executor statement latency by kind (query/exec).
var StatementDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "gymtrack_statement_duration_seconds",
		Help:    "Latency of statements run through the query executor.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"kind"},
)

// StatementErrors counts executor failures, split by whether silent mode
// swallowed them.
var StatementErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gymtrack_statement_errors_total",
		Help: "Executor statement failures.",
	},
	[]string{"silent"},
)

// LoginFailures counts rejected login attempts.
var LoginFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "gymtrack_login_failures_total",
		Help: "Rejected login attempts.",
	},
)

// ObserveStatement records one executor statement outcome.
func ObserveStatement(kind string, start time.Time, err error, silent bool) {
	StatementDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		label := "false"
		if silent {
			label = "true"
		}
		StatementErrors.WithLabelValues(label).Inc()
	}
}

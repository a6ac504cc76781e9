// Package metrics provides Prometheus instrumentation for the session key
// service: HTTP request counters and latencies, plus per-query database
// latencies and error counts.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by route, method and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_keys_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"route", "method", "status"})

	// HTTPRequestDuration records request handling latency in seconds.
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "session_keys_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	// DBQueryDuration records storage query latency in seconds.
	DBQueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "session_keys_db_query_duration_seconds",
		Help:    "Database query latency in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"query"})

	// DBQueryErrorsTotal counts failed storage queries. A missing row is not
	// a failure.
	DBQueryErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_keys_db_query_errors_total",
		Help: "Total number of failed database queries",
	}, []string{"query"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		DBQueryDuration,
		DBQueryErrorsTotal,
	)
}

// ObserveQuery starts timing the named query. The returned func records the
// latency and, when err is non-nil, an error.
func ObserveQuery(name string) func(err error) {
	start := time.Now()
	return func(err error) {
		DBQueryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if err != nil {
			DBQueryErrorsTotal.WithLabelValues(name).Inc()
		}
	}
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Package metrics provides Prometheus metrics for the legacy API client.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric exported by this package.
const Namespace = "cfdns"

// Request outcome labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	// APIRequestsTotal counts API requests by action and outcome.
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total number of legacy API requests by action and outcome.",
	}, []string{"action", "status"})

	// APIRequestDuration observes API request latency by action.
	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Latency of legacy API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})

	// PagesFetchedTotal counts record pages fetched across all List calls.
	PagesFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "pages_fetched_total",
		Help:      "Total number of record pages fetched during listings.",
	})

	// BuildInfo exposes build metadata as a constant gauge.
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "build_info",
		Help:      "Build information, constant 1.",
	}, []string{"version", "go_version"})
)

// ObserveAPIRequest records one API request outcome and its duration.
func ObserveAPIRequest(action, status string, d time.Duration) {
	APIRequestsTotal.WithLabelValues(action, status).Inc()
	APIRequestDuration.WithLabelValues(action).Observe(d.Seconds())
}

// SetBuildInfo sets the build info gauge to 1 for the given labels.
func SetBuildInfo(version, goVersion string) {
	BuildInfo.WithLabelValues(version, goVersion).Set(1)
}

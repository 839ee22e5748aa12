package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yourmyth",
		Name:      "upstream_requests_total",
		Help:      "Calls to external services by provider, operation and outcome.",
	}, []string{"provider", "operation", "outcome"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yourmyth",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of external service calls.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"provider", "operation"})

	GeneratedTokens = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yourmyth",
		Name:      "generated_tokens",
		Help:      "Token count of model output per flow.",
		Buckets:   prometheus.ExponentialBuckets(16, 2, 10),
	}, []string{"flow"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yourmyth",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status.",
	}, []string{"method", "route", "status"})
)

// ObserveUpstream records one external call started at start.
func ObserveUpstream(provider, operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	UpstreamRequests.WithLabelValues(provider, operation, outcome).Inc()
	UpstreamDuration.WithLabelValues(provider, operation).Observe(time.Since(start).Seconds())
}

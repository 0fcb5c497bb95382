package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutriplan_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_class"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nutriplan_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "path", "status_class"},
	)

	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nutriplan_http_inflight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	RateLimitRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutriplan_ratelimit_rejected_total",
			Help: "Requests rejected by the inbound rate limiter",
		},
	)

	// Credential rotation metrics. The credential label is the pool position, never the key.
	PoolCredentials = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nutriplan_credential_pool_size",
			Help: "Number of credentials configured in the pool",
		},
	)

	CredentialAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutriplan_credential_attempts_total",
			Help: "Attempts per credential by classified outcome",
		},
		[]string{"credential", "outcome"},
	)

	CredentialRotationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutriplan_credential_rotations_total",
			Help: "Rotations away from a credential after a rate-limit failure",
		},
		[]string{"credential"},
	)

	RotationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutriplan_rotation_runs_total",
			Help: "Rotation executor runs by terminal result",
		},
		[]string{"result"},
	)

	RotationRunAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nutriplan_rotation_run_attempts",
			Help:    "Attempts made per rotation executor run",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16},
		},
	)

	// Upstream API metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutriplan_upstream_requests_total",
			Help: "Total number of upstream API requests",
		},
		[]string{"provider", "status_class"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nutriplan_upstream_request_duration_seconds",
			Help:    "Upstream API request latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	// Domain metrics
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutriplan_generations_total",
			Help: "Nutrition generation requests by kind and result",
		},
		[]string{"kind", "result"},
	)
)

// StatusClass buckets an HTTP status code as "2xx", "4xx", ... or "error" when unknown.
func StatusClass(code int) string {
	if code <= 0 {
		return "error"
	}
	switch code / 100 {
	case 1:
		return "1xx"
	case 2:
		return "2xx"
	case 3:
		return "3xx"
	case 4:
		return "4xx"
	default:
		return "5xx"
	}
}

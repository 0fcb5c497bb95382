package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"nutriplan-go/internal/monitoring"
)

const unmatchedRoute = "unmatched"

// Metrics tracks per-route request counts and latency.
// Unmatched paths share one label so scanners cannot blow up cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		monitoring.HTTPInFlight.Inc()
		defer monitoring.HTTPInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		sc := monitoring.StatusClass(c.Writer.Status())
		monitoring.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, sc).Inc()
		monitoring.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, sc).Observe(time.Since(start).Seconds())
	}
}

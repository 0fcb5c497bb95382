package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"nutriplan-go/internal/logging"
)

// RequestLogger logs one line per request once the handler chain returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		extras := log.Fields{
			"status":     status,
			"latency_ms": logging.DurationMS(time.Since(start)),
			"user_agent": c.Request.UserAgent(),
		}
		if code, ok := c.Get(logging.ErrorCodeKey); ok {
			extras["error_code"] = code
		}
		entry := logging.WithReq(c, extras)
		switch {
		case status >= 500:
			entry.Error("http_request")
		case status >= 400:
			entry.Warn("http_request")
		default:
			entry.Info("http_request")
		}
	}
}

package logging

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Gin context keys shared by middleware and handlers.
const (
	RequestIDKey = "request_id"
	ErrorCodeKey = "error_code"
)

// WithReq returns an entry carrying request_id, method, path and ip.
// Extras override those keys on conflict.
func WithReq(c *gin.Context, extras log.Fields) *log.Entry {
	if c == nil || c.Request == nil {
		return log.WithFields(extras)
	}
	path := c.FullPath()
	if path == "" && c.Request.URL != nil {
		path = c.Request.URL.Path
	}
	fields := log.Fields{
		"request_id": c.GetString(RequestIDKey),
		"method":     c.Request.Method,
		"path":       path,
		"ip":         c.ClientIP(),
	}
	for k, v := range extras {
		fields[k] = v
	}
	return log.WithFields(fields)
}

// DurationMS converts a duration to integer milliseconds for logging.
func DurationMS(d time.Duration) int64 { return d.Milliseconds() }

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nutriplan-go/internal/logging"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID reuses a sane inbound X-Request-ID or generates a UUIDv4.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > maxRequestIDLength {
			rid = uuid.NewString()
		}
		c.Set(logging.RequestIDKey, rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Next()
	}
}

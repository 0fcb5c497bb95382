package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	apperrors "nutriplan-go/internal/errors"
	"nutriplan-go/internal/handlers/common"
	"nutriplan-go/internal/logging"
)

// Recovery turns a handler panic into a 500 error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logging.WithReq(c, log.Fields{
					"panic":      r,
					"stack":      string(debug.Stack()),
					"user_agent": c.Request.UserAgent(),
				}).Error("panic recovered")
				common.AbortWithAPIError(c, apperrors.New(http.StatusInternalServerError,
					"panic_recovered", "internal_error", "Internal server error"))
			}
		}()
		c.Next()
	}
}

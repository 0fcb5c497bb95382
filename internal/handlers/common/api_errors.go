package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "nutriplan-go/internal/errors"
	"nutriplan-go/internal/logging"
	"nutriplan-go/internal/upstream"
)

// AbortWithAPIError writes the error envelope and aborts the chain.
func AbortWithAPIError(c *gin.Context, err *apperrors.APIError) {
	if err == nil {
		err = apperrors.New(http.StatusInternalServerError, "server_error", "server_error", "unknown error")
	}
	c.Set(logging.ErrorCodeKey, err.Code)

	payload, marshalErr := err.ToJSON()
	if marshalErr != nil {
		c.AbortWithStatusJSON(safeStatus(err.HTTPStatus), gin.H{
			"error": gin.H{"code": err.HTTPStatus, "message": err.Message, "status": err.StatusName()},
		})
		return
	}
	c.Data(safeStatus(err.HTTPStatus), "application/json", payload)
	c.Abort()
}

// AbortWithError maps any service error to a response and aborts.
func AbortWithError(c *gin.Context, err error) {
	AbortWithAPIError(c, ToAPIError(err))
}

// ToAPIError decides what a client sees for a service error.
// An empty pool is a deployment problem (503). Upstream auth failures are
// also ours, not the caller's, so they surface as 502 without the upstream text.
func ToAPIError(err error) *apperrors.APIError {
	if err == nil {
		return nil
	}
	if errors.Is(err, upstream.ErrNoCredentialsConfigured) {
		return apperrors.New(http.StatusServiceUnavailable, "no_credentials", "server_error",
			"Generation service is not configured")
	}
	if apiErr, ok := apperrors.As(err); ok {
		if apiErr.IsCritical() {
			return apperrors.New(http.StatusBadGateway, "upstream_auth_error", "server_error",
				"Generation service rejected our credentials")
		}
		return apiErr
	}
	return apperrors.New(http.StatusBadGateway, "upstream_error", "server_error", "Generation service request failed")
}

func safeStatus(status int) int {
	if status >= 400 && status <= 599 {
		return status
	}
	return http.StatusInternalServerError
}

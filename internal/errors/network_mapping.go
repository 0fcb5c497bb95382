package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
)

// MapNetworkError maps transport errors to standardized APIError objects.
// The original error is kept as Cause so errors.Is still sees context cancellation.
func MapNetworkError(err error) *APIError {
	if err == nil {
		return nil
	}
	errMsg := err.Error()
	msg := "Network error: " + errMsg

	var apiErr *APIError
	switch {
	case stderrors.Is(err, context.Canceled) || strings.Contains(errMsg, "context canceled"):
		apiErr = New(http.StatusRequestTimeout, "request_canceled", "timeout_error", "Request was canceled: "+errMsg)
	case stderrors.Is(err, context.DeadlineExceeded) || strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline exceeded"):
		apiErr = New(http.StatusGatewayTimeout, "timeout", "timeout_error", "Request timeout: "+errMsg)
	case strings.Contains(errMsg, "connection refused"):
		apiErr = New(http.StatusBadGateway, "connection_error", "server_error", "Connection refused: "+errMsg)
	case strings.Contains(errMsg, "EOF") || strings.Contains(errMsg, "connection reset"):
		apiErr = New(http.StatusBadGateway, "connection_error", "server_error", "Connection error: "+errMsg)
	case strings.Contains(errMsg, "no such host") || strings.Contains(errMsg, "name resolution"):
		apiErr = New(http.StatusBadGateway, "dns_error", "server_error", "DNS resolution error: "+errMsg)
	case strings.Contains(errMsg, "certificate") || strings.Contains(errMsg, "tls"):
		apiErr = New(http.StatusBadGateway, "tls_error", "server_error", "TLS/Certificate error: "+errMsg)
	default:
		apiErr = New(http.StatusBadGateway, "network_error", "server_error", msg)
	}
	apiErr.Cause = err
	return apiErr
}

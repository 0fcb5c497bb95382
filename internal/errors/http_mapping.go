package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const maxUpstreamMessageLength = 200

// MapHTTPError maps HTTP status codes and upstream payloads to standardized errors.
// The upstream message is preferred over the generic text so quota wording survives.
func MapHTTPError(statusCode int, upstreamBody []byte) *APIError {
	upstreamMsg := extractUpstreamMessage(upstreamBody)

	var apiErr *APIError
	switch statusCode {
	case http.StatusBadRequest:
		apiErr = New(statusCode, "invalid_argument", "invalid_request_error", firstNonEmpty(upstreamMsg, "Invalid request"))
	case http.StatusUnauthorized:
		apiErr = New(statusCode, "invalid_api_key", "authentication_error", firstNonEmpty(upstreamMsg, "Invalid authentication"))
	case http.StatusForbidden:
		apiErr = New(statusCode, "permission_denied", "permission_error", firstNonEmpty(upstreamMsg, "Permission denied"))
	case http.StatusNotFound:
		apiErr = New(statusCode, "not_found", "invalid_request_error", firstNonEmpty(upstreamMsg, "Resource not found"))
	case http.StatusTooManyRequests:
		apiErr = New(statusCode, "rate_limit_exceeded", "rate_limit_error", firstNonEmpty(upstreamMsg, "Rate limit exceeded"))
	case http.StatusInternalServerError:
		apiErr = New(statusCode, "server_error", "server_error", firstNonEmpty(upstreamMsg, "Internal server error"))
	case http.StatusBadGateway:
		apiErr = New(statusCode, "bad_gateway", "server_error", firstNonEmpty(upstreamMsg, "Bad gateway"))
	case http.StatusServiceUnavailable:
		apiErr = New(statusCode, "service_unavailable", "server_error", firstNonEmpty(upstreamMsg, "Service temporarily unavailable"))
	case http.StatusGatewayTimeout:
		apiErr = New(statusCode, "timeout", "timeout_error", firstNonEmpty(upstreamMsg, "Request timeout"))
	default:
		apiErr = New(statusCode, "unknown_error", "server_error", firstNonEmpty(upstreamMsg, fmt.Sprintf("HTTP %d error", statusCode)))
	}
	if status := gjson.GetBytes(upstreamBody, "error.status").String(); status != "" {
		apiErr.WithDetails(map[string]interface{}{"upstream_status": status})
	}
	return apiErr
}

func extractUpstreamMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "error.message").String(); msg != "" {
			return msg
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxUpstreamMessageLength {
		return msg[:maxUpstreamMessageLength] + "..."
	}
	return msg
}

func firstNonEmpty(strs ...string) string {
	for _, s := range strs {
		if s != "" {
			return s
		}
	}
	return ""
}

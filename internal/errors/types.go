package errors

import "fmt"

// APIError represents a standardized error for upstream calls and API responses.
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
	Type       string
	Details    map[string]interface{}

	// Cause is the transport-level error this APIError was mapped from, if any.
	Cause error
}

// Error keeps the upstream message intact so callers can inspect it as-is.
func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("HTTP %d error", e.HTTPStatus)
	}
	return e.Code
}

// StatusCode exposes the HTTP status for status-aware error inspection.
func (e *APIError) StatusCode() int {
	if e == nil {
		return 0
	}
	return e.HTTPStatus
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// ErrorEnvelope mirrors the Gemini error structure; the API reuses it for its own responses.
type ErrorEnvelope struct {
	Error struct {
		Code    int                    `json:"code"`
		Message string                 `json:"message"`
		Status  string                 `json:"status"`
		Type    string                 `json:"type,omitempty"`
		Reason  string                 `json:"reason,omitempty"`
		Details map[string]interface{} `json:"details,omitempty"`
	} `json:"error"`
}

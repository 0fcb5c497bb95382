package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
)

// ToJSON renders the error using the Gemini-style envelope.
func (e *APIError) ToJSON() ([]byte, error) {
	env := ErrorEnvelope{}
	env.Error.Code = e.HTTPStatus
	env.Error.Message = e.Message
	env.Error.Status = e.StatusName()
	env.Error.Type = e.Type
	env.Error.Reason = e.Code
	if e.Details != nil {
		env.Error.Details = e.Details
	}
	return json.Marshal(env)
}

// StatusName returns the canonical Google RPC status for the HTTP status.
func (e *APIError) StatusName() string {
	switch e.HTTPStatus {
	case http.StatusBadRequest:
		return "INVALID_ARGUMENT"
	case http.StatusUnauthorized:
		return "UNAUTHENTICATED"
	case http.StatusForbidden:
		return "PERMISSION_DENIED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusRequestTimeout:
		return "CANCELLED"
	case http.StatusTooManyRequests:
		return "RESOURCE_EXHAUSTED"
	case http.StatusInternalServerError:
		return "INTERNAL"
	case http.StatusServiceUnavailable:
		return "UNAVAILABLE"
	case http.StatusGatewayTimeout:
		return "DEADLINE_EXCEEDED"
	default:
		return "UNKNOWN"
	}
}

func New(httpStatus int, code, errType, message string) *APIError {
	return &APIError{HTTPStatus: httpStatus, Code: code, Type: errType, Message: message}
}

// BadRequest builds a 400 validation error.
func BadRequest(message string) *APIError {
	return New(http.StatusBadRequest, "invalid_argument", "invalid_request_error", message)
}

func (e *APIError) WithDetails(details map[string]interface{}) *APIError {
	if e.Details == nil {
		e.Details = make(map[string]interface{}, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// As extracts an *APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) && apiErr != nil {
		return apiErr, true
	}
	return nil, false
}

func (e *APIError) IsCritical() bool {
	switch e.HTTPStatus {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	switch e.Code {
	case "invalid_api_key", "permission_denied":
		return true
	}
	return false
}

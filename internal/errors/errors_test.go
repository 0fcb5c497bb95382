package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestMapHTTPErrorPrefersUpstreamMessage(t *testing.T) {
	body := []byte(`{"error":{"code":429,"message":"Quota exceeded for metric generate_content","status":"RESOURCE_EXHAUSTED"}}`)
	err := MapHTTPError(http.StatusTooManyRequests, body)

	require.Equal(t, http.StatusTooManyRequests, err.StatusCode())
	require.Equal(t, "Quota exceeded for metric generate_content", err.Error())
	require.Equal(t, "rate_limit_exceeded", err.Code)
	require.Equal(t, "RESOURCE_EXHAUSTED", err.Details["upstream_status"])
}

func TestMapHTTPErrorFallbacks(t *testing.T) {
	require.Equal(t, "Invalid request", MapHTTPError(http.StatusBadRequest, nil).Message)
	require.Equal(t, "HTTP 418 error", MapHTTPError(http.StatusTeapot, nil).Message)
	require.Equal(t, "plain text failure", MapHTTPError(http.StatusBadGateway, []byte("plain text failure")).Message)
}

func TestMapNetworkErrorKeepsCause(t *testing.T) {
	wrapped := fmt.Errorf("post: %w", context.Canceled)
	err := MapNetworkError(wrapped)

	require.Equal(t, "request_canceled", err.Code)
	require.True(t, stderrors.Is(err, context.Canceled))

	timeout := MapNetworkError(context.DeadlineExceeded)
	require.Equal(t, http.StatusGatewayTimeout, timeout.HTTPStatus)

	require.Nil(t, MapNetworkError(nil))
}

func TestToJSONEnvelope(t *testing.T) {
	payload, err := BadRequest("age must be positive").ToJSON()
	require.NoError(t, err)

	assert.Equal(t, int64(400), gjson.GetBytes(payload, "error.code").Int())
	assert.Equal(t, "INVALID_ARGUMENT", gjson.GetBytes(payload, "error.status").String())
	assert.Equal(t, "age must be positive", gjson.GetBytes(payload, "error.message").String())
}

func TestAsFindsWrappedAPIError(t *testing.T) {
	base := New(http.StatusForbidden, "permission_denied", "permission_error", "denied")
	got, ok := As(fmt.Errorf("attempt 0: %w", base))
	require.True(t, ok)
	require.Same(t, base, got)
	require.True(t, got.IsCritical())

	_, ok = As(stderrors.New("plain"))
	require.False(t, ok)
}

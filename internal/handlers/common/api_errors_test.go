package common

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	apperrors "nutriplan-go/internal/errors"
	"nutriplan-go/internal/logging"
	"nutriplan-go/internal/upstream"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestToAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"no credentials", fmt.Errorf("plan: %w", upstream.ErrNoCredentialsConfigured), http.StatusServiceUnavailable, "no_credentials"},
		{"rate limited passes through", apperrors.MapHTTPError(429, []byte(`{"error":{"message":"quota"}}`)), http.StatusTooManyRequests, "rate_limit_exceeded"},
		{"bad request passes through", apperrors.BadRequest("bad"), http.StatusBadRequest, "invalid_argument"},
		{"upstream auth hidden", apperrors.MapHTTPError(403, nil), http.StatusBadGateway, "upstream_auth_error"},
		{"unknown", errors.New("boom"), http.StatusBadGateway, "upstream_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToAPIError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
	assert.Nil(t, ToAPIError(nil))
}

func TestAbortWithAPIErrorWritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/v1/meal-plans", nil)

	AbortWithAPIError(c, apperrors.BadRequest("invalid age"))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := w.Body.Bytes()
	assert.EqualValues(t, 400, gjson.GetBytes(body, "error.code").Int())
	assert.Equal(t, "invalid age", gjson.GetBytes(body, "error.message").String())
	assert.Equal(t, "INVALID_ARGUMENT", gjson.GetBytes(body, "error.status").String())
	assert.Equal(t, "invalid_argument", c.GetString(logging.ErrorCodeKey))
}

func TestAbortWithAPIErrorNilAndBadStatus(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	AbortWithAPIError(c, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	AbortWithAPIError(c, apperrors.New(200, "weird", "server_error", "not an error status"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

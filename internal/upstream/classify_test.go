package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "nutriplan-go/internal/errors"
)

type statusErr struct {
	status int
	msg    string
}

func (e statusErr) Error() string   { return e.msg }
func (e statusErr) StatusCode() int { return e.status }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Classification
	}{
		{name: "nil", err: nil, want: Fatal},
		{name: "status 429 without text", err: statusErr{status: 429}, want: Retryable},
		{name: "429 in message", err: errors.New("HTTP 429 from upstream"), want: Retryable},
		{name: "quota mixed case", err: errors.New("Quota Exceeded for project"), want: Retryable},
		{name: "rate limit", err: errors.New("Rate Limit exceeded"), want: Retryable},
		{name: "concrete quota scenario", err: errors.New("429: quota exceeded"), want: Retryable},
		{name: "invalid argument", err: errors.New("invalid argument"), want: Fatal},
		{name: "network", err: errors.New("dial tcp: connection refused"), want: Fatal},
		{name: "empty message no status", err: errors.New(""), want: Fatal},
		{name: "status 500", err: statusErr{status: 500, msg: "internal"}, want: Fatal},
		{name: "rate-limit hyphenated is not matched", err: errors.New("rate-limited"), want: Fatal},
		{name: "wrapped api error", err: fmt.Errorf("generate: %w", apperrors.MapHTTPError(http.StatusTooManyRequests, nil)), want: Retryable},
		{name: "canceled", err: context.Canceled, want: Fatal},
		{name: "deadline", err: fmt.Errorf("quota check: %w", context.DeadlineExceeded), want: Fatal},
		{name: "mapped cancellation", err: apperrors.MapNetworkError(context.Canceled), want: Fatal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Normalized{}, Normalize(nil))
	assert.Equal(t, Normalized{Message: "boom"}, Normalize(errors.New("boom")))

	wrapped := fmt.Errorf("outer: %w", statusErr{status: 403, msg: "denied"})
	assert.Equal(t, Normalized{Message: "outer: denied", Status: 403}, Normalize(wrapped))
}

func TestClassifyNormalized(t *testing.T) {
	assert.Equal(t, Retryable, ClassifyNormalized(Normalized{Status: 429}))
	assert.Equal(t, Fatal, ClassifyNormalized(Normalized{}))
	assert.Equal(t, Retryable, ClassifyNormalized(Normalized{Message: "RATE LIMIT"}))
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "fatal", Fatal.String())
}

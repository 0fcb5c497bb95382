package upstream

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// Classification is the executor's verdict on a failed attempt.
type Classification int

const (
	// Fatal aborts the rotation and surfaces the error as-is.
	Fatal Classification = iota
	// Retryable means upstream rate limiting or quota exhaustion; the next credential is tried.
	Retryable
)

func (c Classification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "fatal"
}

// Normalized is the error shape the classifier works on: message text plus an optional status.
type Normalized struct {
	Message string
	Status  int
}

// statusCoder is implemented by errors that carry an HTTP-style status, e.g. *apperrors.APIError.
type statusCoder interface {
	StatusCode() int
}

// retryableMarkers are matched case-insensitively against the error message.
var retryableMarkers = []string{"429", "quota", "rate limit"}

// Normalize flattens err into message text and the first status found in its chain.
func Normalize(err error) Normalized {
	if err == nil {
		return Normalized{}
	}
	n := Normalized{Message: err.Error()}
	var sc statusCoder
	if errors.As(err, &sc) {
		n.Status = sc.StatusCode()
	}
	return n
}

// Classify decides whether err is worth retrying with the next credential.
// Cancellation is always fatal so a deliberate abort is never mistaken for quota.
func Classify(err error) Classification {
	if err == nil {
		return Fatal
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Fatal
	}
	return ClassifyNormalized(Normalize(err))
}

// ClassifyNormalized applies the rate-limit heuristic to an already normalized error.
// Best effort: a miss aborts early instead of burning the remaining credentials.
func ClassifyNormalized(n Normalized) Classification {
	if n.Status == http.StatusTooManyRequests {
		return Retryable
	}
	msg := strings.ToLower(n.Message)
	if msg == "" {
		return Fatal
	}
	for _, marker := range retryableMarkers {
		if strings.Contains(msg, marker) {
			return Retryable
		}
	}
	return Fatal
}

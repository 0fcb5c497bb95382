package upstream

import (
	"time"

	"nutriplan-go/internal/credential"
)

// Outcome tags the result of one attempt.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeRetryable
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetryable:
		return "retryable"
	default:
		return "fatal"
	}
}

func outcomeFor(c Classification) Outcome {
	if c == Retryable {
		return OutcomeRetryable
	}
	return OutcomeFatal
}

// Attempt records one try within a single Run. It is only handed to observers, never stored.
type Attempt struct {
	Index      int
	Credential credential.Credential
	Outcome    Outcome
	Err        error
	Duration   time.Duration
}

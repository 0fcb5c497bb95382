package upstream

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"nutriplan-go/internal/credential"
	"nutriplan-go/internal/monitoring"
	"nutriplan-go/internal/monitoring/tracing"
)

// ErrNoCredentialsConfigured is returned when the pool is empty. It is a
// configuration defect, distinct from every credential being rate limited.
var ErrNoCredentialsConfigured = errors.New("no credentials configured")

// ClientFactory binds a fresh client to one credential. It is called once per attempt.
type ClientFactory[C any] func(cred credential.Credential) C

// WorkUnit is the caller's operation, run once per attempt with a credential-bound client.
// It may run more than once per Run, so side effects must tolerate a retry.
type WorkUnit[C, T any] func(ctx context.Context, client C) (T, error)

// Option configures an Executor.
type Option func(*executorOptions)

type executorOptions struct {
	name      string
	classify  func(error) Classification
	onAttempt func(Attempt)
}

// WithName labels logs and spans with the operation name.
func WithName(name string) Option {
	return func(o *executorOptions) { o.name = name }
}

// WithClassifier replaces Classify. Mainly useful in tests.
func WithClassifier(fn func(error) Classification) Option {
	return func(o *executorOptions) {
		if fn != nil {
			o.classify = fn
		}
	}
}

// WithAttemptObserver registers a callback invoked synchronously after every attempt.
func WithAttemptObserver(fn func(Attempt)) Option {
	return func(o *executorOptions) { o.onAttempt = fn }
}

// Executor runs work against the credential pool, rotating on rate limits.
// It holds no per-call state, so one Executor serves concurrent callers.
type Executor[C any] struct {
	pool      *credential.Pool
	newClient ClientFactory[C]
	opts      executorOptions
}

// NewExecutor wires a pool with a client factory.
func NewExecutor[C any](pool *credential.Pool, factory ClientFactory[C], opts ...Option) *Executor[C] {
	o := executorOptions{name: "generate", classify: Classify}
	for _, opt := range opts {
		opt(&o)
	}
	monitoring.PoolCredentials.Set(float64(pool.Len()))
	return &Executor[C]{pool: pool, newClient: factory, opts: o}
}

// Size reports how many credentials a Run may try.
func (e *Executor[C]) Size() int { return e.pool.Len() }

// Do runs a work unit that produces no value.
func (e *Executor[C]) Do(ctx context.Context, fn func(ctx context.Context, client C) error) error {
	_, err := Run[C, struct{}](ctx, e, func(ctx context.Context, client C) (struct{}, error) {
		return struct{}{}, fn(ctx, client)
	})
	return err
}

const (
	resultSuccess       = "success"
	resultFatal         = "fatal"
	resultExhausted     = "exhausted"
	resultNoCredentials = "no_credentials"
	resultCanceled      = "canceled"
)

// Run tries work with credential 0, 1, ... in order, one at a time.
// It stops at the first success, at the first fatal error (returned unchanged),
// or after the last credential, returning that final rate-limit error.
// Every call starts again from credential 0.
func Run[C, T any](ctx context.Context, e *Executor[C], work WorkUnit[C, T]) (T, error) {
	var zero T
	n := e.pool.Len()

	ctx, span := tracing.StartSpan(ctx, "upstream", "RotationExecutor.Run",
		trace.WithAttributes(
			attribute.String("rotation.operation", e.opts.name),
			attribute.Int("credential.pool_size", n),
		))
	defer span.End()

	if n == 0 {
		e.finish(span, resultNoCredentials, 0, ErrNoCredentialsConfigured)
		log.WithField("operation", e.opts.name).Error("rotation aborted: no credentials configured")
		return zero, ErrNoCredentialsConfigured
	}

	var lastErr error
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := ctx.Err(); err != nil {
				e.finish(span, resultCanceled, i, err)
				return zero, err
			}
		}

		cred := e.pool.At(i)
		client := e.newClient(cred)
		start := time.Now()
		result, err := work(ctx, client)
		att := Attempt{Index: i, Credential: cred, Err: err, Duration: time.Since(start)}

		if err == nil {
			att.Outcome = OutcomeSuccess
			e.observe(span, att)
			e.finish(span, resultSuccess, i+1, nil)
			return result, nil
		}

		att.Outcome = outcomeFor(e.opts.classify(err))
		e.observe(span, att)

		if att.Outcome == OutcomeFatal {
			e.finish(span, resultFatal, i+1, err)
			return zero, err
		}

		lastErr = err
		if i < n-1 {
			monitoring.CredentialRotationsTotal.WithLabelValues(cred.Label()).Inc()
			e.logger(att).Warn("rate limited; rotating to next credential")
		}
	}

	e.logger(Attempt{Index: n - 1, Credential: e.pool.At(n - 1), Outcome: OutcomeRetryable, Err: lastErr}).
		Warn("all credentials rate limited")
	e.finish(span, resultExhausted, n, lastErr)
	return zero, lastErr
}

func (e *Executor[C]) observe(span trace.Span, att Attempt) {
	monitoring.CredentialAttemptsTotal.WithLabelValues(att.Credential.Label(), att.Outcome.String()).Inc()
	span.AddEvent("attempt", trace.WithAttributes(
		attribute.Int("credential.index", att.Index),
		attribute.String("attempt.outcome", att.Outcome.String()),
		attribute.Int64("attempt.duration_ms", att.Duration.Milliseconds()),
	))
	if att.Outcome == OutcomeFatal {
		e.logger(att).Debug("attempt failed with non-retryable error")
	}
	if e.opts.onAttempt != nil {
		e.opts.onAttempt(att)
	}
}

func (e *Executor[C]) finish(span trace.Span, result string, attempts int, err error) {
	monitoring.RotationRunsTotal.WithLabelValues(result).Inc()
	if attempts > 0 {
		monitoring.RotationRunAttempts.Observe(float64(attempts))
	}
	span.SetAttributes(
		attribute.String("rotation.result", result),
		attribute.Int("rotation.attempts", attempts),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
	}
}

// logger never includes the secret: only position and classification.
func (e *Executor[C]) logger(att Attempt) *log.Entry {
	fields := log.Fields{
		"operation":      e.opts.name,
		"attempt":        att.Index,
		"credential":     att.Credential.Label(),
		"classification": att.Outcome.String(),
		"remaining":      e.pool.Len() - att.Index - 1,
	}
	if att.Duration > 0 {
		fields["latency_ms"] = att.Duration.Milliseconds()
	}
	if att.Err != nil {
		fields["status"] = Normalize(att.Err).Status
		return log.WithFields(fields).WithError(att.Err)
	}
	return log.WithFields(fields)
}

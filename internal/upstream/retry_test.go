package upstream

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriplan-go/internal/credential"
	"nutriplan-go/internal/monitoring"
)

type fakeClient struct {
	index int
	key   string
}

type harness struct {
	mu       sync.Mutex
	built    []int
	attempts []Attempt
}

func (h *harness) factory(cred credential.Credential) *fakeClient {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.built = append(h.built, cred.Index)
	return &fakeClient{index: cred.Index, key: cred.Secret()}
}

func (h *harness) observer(att Attempt) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.attempts = append(h.attempts, att)
}

func (h *harness) indexes() []int {
	out := make([]int, 0, len(h.attempts))
	for _, a := range h.attempts {
		out = append(out, a.Index)
	}
	return out
}

func newTestExecutor(t *testing.T, keys ...string) (*Executor[*fakeClient], *harness) {
	t.Helper()
	pool, err := credential.NewPool(keys)
	require.NoError(t, err)
	h := &harness{}
	return NewExecutor[*fakeClient](pool, h.factory, WithName("test"), WithAttemptObserver(h.observer)), h
}

func keys(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("key-%02d", i)
	}
	return out
}

func TestRunFirstAttemptSucceeds(t *testing.T) {
	for n := 1; n <= 4; n++ {
		exec, h := newTestExecutor(t, keys(n)...)

		got, err := Run(context.Background(), exec, func(_ context.Context, c *fakeClient) (string, error) {
			return c.key, nil
		})

		require.NoError(t, err)
		require.Equal(t, "key-00", got)
		require.Equal(t, []int{0}, h.built, "exactly one client for n=%d", n)
		require.Equal(t, OutcomeSuccess, h.attempts[0].Outcome)
	}
}

func TestRunRotatesUntilSuccess(t *testing.T) {
	for n := 2; n <= 5; n++ {
		for k := 1; k < n; k++ {
			exec, h := newTestExecutor(t, keys(n)...)
			calls := 0

			got, err := Run(context.Background(), exec, func(_ context.Context, c *fakeClient) (int, error) {
				calls++
				if c.index < k {
					return 0, errors.New("429 Too Many Requests")
				}
				return c.index * 10, nil
			})

			require.NoError(t, err)
			require.Equal(t, k*10, got, "result must come from attempt %d", k)
			require.Equal(t, k+1, calls)
			expected := make([]int, k+1)
			for i := range expected {
				expected[i] = i
			}
			require.Equal(t, expected, h.indexes())
			require.Equal(t, expected, h.built)
		}
	}
}

func TestRunFatalStopsImmediately(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for i := 0; i < n; i++ {
			exec, h := newTestExecutor(t, keys(n)...)
			fatal := fmt.Errorf("validation failed at %d", i)

			_, err := Run(context.Background(), exec, func(_ context.Context, c *fakeClient) (int, error) {
				if c.index < i {
					return 0, errors.New("quota exhausted")
				}
				return 0, fatal
			})

			require.Same(t, fatal, err)
			require.Len(t, h.attempts, i+1)
			require.NotContains(t, h.built, i+1)
			require.Equal(t, OutcomeFatal, h.attempts[i].Outcome)
		}
	}
}

func TestRunExhaustedReturnsLastError(t *testing.T) {
	for n := 1; n <= 4; n++ {
		exec, h := newTestExecutor(t, keys(n)...)
		raised := make([]error, 0, n)

		_, err := Run(context.Background(), exec, func(_ context.Context, c *fakeClient) (int, error) {
			e := fmt.Errorf("rate limit hit on credential %d", c.index)
			raised = append(raised, e)
			return 0, e
		})

		require.Len(t, h.attempts, n)
		require.Same(t, raised[n-1], err)
		for _, a := range h.attempts {
			require.Equal(t, OutcomeRetryable, a.Outcome)
		}
	}
}

func TestRunEmptyPool(t *testing.T) {
	exec, h := newTestExecutor(t)
	calls := 0

	_, err := Run(context.Background(), exec, func(context.Context, *fakeClient) (int, error) {
		calls++
		return 1, nil
	})

	require.ErrorIs(t, err, ErrNoCredentialsConfigured)
	require.Zero(t, calls)
	require.Empty(t, h.built)
	require.Zero(t, exec.Size())
}

func TestRunNoCredentialsDistinctFromQuota(t *testing.T) {
	exec, _ := newTestExecutor(t, "only-key")

	_, err := Run(context.Background(), exec, func(context.Context, *fakeClient) (int, error) {
		return 0, errors.New("quota exceeded")
	})

	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNoCredentialsConfigured))
}

func TestScenarioQuotaThenSuccess(t *testing.T) {
	exec, h := newTestExecutor(t, "A", "B", "C")

	got, err := Run(context.Background(), exec, func(_ context.Context, c *fakeClient) (int, error) {
		if c.key == "C" {
			return 42, nil
		}
		return 0, errors.New("429: quota exceeded")
	})

	require.NoError(t, err)
	require.Equal(t, 42, got)
	require.Equal(t, []int{0, 1, 2}, h.indexes())
}

func TestScenarioInvalidArgument(t *testing.T) {
	exec, h := newTestExecutor(t, "A", "B")
	var tried []string

	_, err := Run(context.Background(), exec, func(_ context.Context, c *fakeClient) (int, error) {
		tried = append(tried, c.key)
		return 0, errors.New("invalid argument")
	})

	require.EqualError(t, err, "invalid argument")
	require.Equal(t, []string{"A"}, tried)
	require.Len(t, h.attempts, 1)
}

func TestScenarioSingleCredentialRateLimited(t *testing.T) {
	exec, h := newTestExecutor(t, "A")
	rateErr := errors.New("rate limit exceeded")

	_, err := Run(context.Background(), exec, func(context.Context, *fakeClient) (int, error) {
		return 0, rateErr
	})

	require.Same(t, rateErr, err)
	require.Len(t, h.attempts, 1)
}

func TestRunCancellationIsNotRetried(t *testing.T) {
	exec, h := newTestExecutor(t, keys(3)...)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := Run(ctx, exec, func(ctx context.Context, _ *fakeClient) (int, error) {
		cancel()
		return 0, fmt.Errorf("quota probe aborted: %w", ctx.Err())
	})

	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, h.attempts, 1)
}

func TestRunStopsRotatingOnceContextDone(t *testing.T) {
	exec, h := newTestExecutor(t, keys(3)...)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := Run(ctx, exec, func(context.Context, *fakeClient) (int, error) {
		cancel()
		return 0, errors.New("429")
	})

	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, h.attempts, 1)
}

func TestRunIsStatelessAcrossCalls(t *testing.T) {
	exec, h := newTestExecutor(t, keys(3)...)
	work := func(_ context.Context, c *fakeClient) (int, error) {
		if c.index == 0 {
			return 0, errors.New("quota")
		}
		return c.index, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Run(context.Background(), exec, work)
		require.NoError(t, err)
		require.Equal(t, 1, got)
	}
	require.Equal(t, []int{0, 1, 0, 1, 0, 1}, h.built)
}

func TestRunConcurrentCallsAreIndependent(t *testing.T) {
	pool, err := credential.NewPool(keys(4))
	require.NoError(t, err)
	exec := NewExecutor[*fakeClient](pool, func(c credential.Credential) *fakeClient {
		return &fakeClient{index: c.Index, key: c.Secret()}
	})

	var wg sync.WaitGroup
	results := make([]int, 32)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			target := g % 4
			var seen []int
			got, err := Run(context.Background(), exec, func(_ context.Context, c *fakeClient) (int, error) {
				seen = append(seen, c.index)
				if c.index < target {
					return 0, errors.New("rate limit")
				}
				return c.index, nil
			})
			if err == nil && len(seen) == target+1 {
				results[g] = got
			} else {
				results[g] = -1
			}
		}(g)
	}
	wg.Wait()

	for g, got := range results {
		assert.Equal(t, g%4, got)
	}
}

func TestDoWrapsRun(t *testing.T) {
	exec, h := newTestExecutor(t, "A", "B")

	err := exec.Do(context.Background(), func(_ context.Context, c *fakeClient) error {
		if c.key == "A" {
			return errors.New("Quota exceeded")
		}
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, h.indexes())
}

func TestWithClassifierOverride(t *testing.T) {
	pool, err := credential.NewPool(keys(3))
	require.NoError(t, err)
	h := &harness{}
	always := func(error) Classification { return Retryable }
	exec := NewExecutor[*fakeClient](pool, h.factory, WithClassifier(always), WithAttemptObserver(h.observer))

	_, err = Run(context.Background(), exec, func(context.Context, *fakeClient) (int, error) {
		return 0, errors.New("invalid argument")
	})

	require.EqualError(t, err, "invalid argument")
	require.Len(t, h.attempts, 3)
}

func TestRunRecordsMetrics(t *testing.T) {
	exec, _ := newTestExecutor(t, "metric-a", "metric-b")
	rotations := monitoring.CredentialRotationsTotal.WithLabelValues("cred-0")
	exhausted := monitoring.RotationRunsTotal.WithLabelValues(resultExhausted)
	beforeRot := testutil.ToFloat64(rotations)
	beforeExh := testutil.ToFloat64(exhausted)

	_, err := Run(context.Background(), exec, func(context.Context, *fakeClient) (int, error) {
		return 0, errors.New("429")
	})

	require.Error(t, err)
	require.Equal(t, beforeRot+1, testutil.ToFloat64(rotations))
	require.Equal(t, beforeExh+1, testutil.ToFloat64(exhausted))
}

package flow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(maxAttempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: maxAttempts, BaseDelay: time.Millisecond}
}

func TestRetryAttemptCounts(t *testing.T) {
	tests := []struct {
		name      string
		op        func(calls *int) func(context.Context) (bool, error)
		attempts  int
		wantCalls int
		wantOK    bool
	}{
		{
			name: "always erroring op exhausts all attempts",
			op: func(calls *int) func(context.Context) (bool, error) {
				return func(context.Context) (bool, error) {
					*calls++
					return false, errors.New("flaky")
				}
			},
			attempts:  3,
			wantCalls: 3,
			wantOK:    false,
		},
		{
			name: "success on the second attempt stops early",
			op: func(calls *int) func(context.Context) (bool, error) {
				return func(context.Context) (bool, error) {
					*calls++
					return *calls == 2, nil
				}
			},
			attempts:  5,
			wantCalls: 2,
			wantOK:    true,
		},
		{
			name: "always false exhausts all attempts",
			op: func(calls *int) func(context.Context) (bool, error) {
				return func(context.Context) (bool, error) {
					*calls++
					return false, nil
				}
			},
			attempts:  4,
			wantCalls: 4,
			wantOK:    false,
		},
		{
			name: "immediate success runs once",
			op: func(calls *int) func(context.Context) (bool, error) {
				return func(context.Context) (bool, error) {
					*calls++
					return true, nil
				}
			},
			attempts:  10,
			wantCalls: 1,
			wantOK:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			ok := RetryWithPolicy(context.Background(), nil, tt.op(&calls), fastPolicy(tt.attempts))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestRetryClampsAttempts(t *testing.T) {
	tests := []struct {
		name      string
		attempts  int
		wantCalls int
	}{
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -5, 1},
		{"huge clamps to ten", 99, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			op := func(context.Context) (bool, error) {
				calls++
				return false, nil
			}
			ok := RetryWithPolicy(context.Background(), nil, op, fastPolicy(tt.attempts))
			assert.False(t, ok)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestRetrySuppressesPanics(t *testing.T) {
	trace := &recordTrace{}
	calls := 0
	op := func(context.Context) (bool, error) {
		calls++
		panic("driver detached")
	}

	var ok bool
	require.NotPanics(t, func() {
		ok = RetryWithPolicy(context.Background(), trace, op, fastPolicy(3))
	})

	assert.False(t, ok)
	assert.Equal(t, 3, calls)

	lines := trace.all()
	require.Len(t, lines, 3, "every suppressed failure is logged with its attempt number")
	assert.Contains(t, lines[0], "attempt 1/3")
	assert.Contains(t, lines[0], "driver detached")
	assert.Contains(t, lines[2], "attempt 3/3")
}

func TestRetryPlainFalseSkipsBackoff(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 5, BaseDelay: 200 * time.Millisecond}
	calls := 0
	op := func(context.Context) (bool, error) {
		calls++
		return false, nil
	}

	start := time.Now()
	ok := RetryWithPolicy(context.Background(), nil, op, policy)

	assert.False(t, ok)
	assert.Equal(t, 5, calls)
	assert.Less(t, time.Since(start), 150*time.Millisecond,
		"false results without errors must not trigger the backoff")
}

func TestRetryDelayOnFalse(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, BaseDelay: 20 * time.Millisecond, DelayOnFalse: true}
	calls := 0
	op := func(context.Context) (bool, error) {
		calls++
		return false, nil
	}

	start := time.Now()
	RetryWithPolicy(context.Background(), nil, op, policy)

	// Two backoffs: 20ms after the first attempt, 40ms after the second.
	assert.Equal(t, 3, calls)
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestRetryStopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	calls := 0
	op := func(context.Context) (bool, error) {
		calls++
		return false, errors.New("still down")
	}

	ok := RetryWithPolicy(ctx, nil, op, RetryPolicy{MaxAttempts: 5, BaseDelay: 500 * time.Millisecond})

	assert.False(t, ok)
	assert.Equal(t, 1, calls, "cancellation during backoff must stop further attempts")
}

func TestRetryNilOp(t *testing.T) {
	assert.False(t, Retry(context.Background(), nil, nil, 3))
}

func TestRetryDefaultHelper(t *testing.T) {
	calls := 0
	ok := Retry(context.Background(), nil, func(context.Context) (bool, error) {
		calls++
		return calls == 3, nil
	}, 5)
	assert.True(t, ok)
	assert.Equal(t, 3, calls)
}

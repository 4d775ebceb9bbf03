package flow

import (
	"context"
	"fmt"
	"time"
)

const (
	minRetryAttempts = 1
	maxRetryAttempts = 10

	// DefaultRetryDelay is the base backoff unit: attempt n sleeps
	// n*DefaultRetryDelay before the next try.
	DefaultRetryDelay = 200 * time.Millisecond
)

// RetryPolicy controls Retry behaviour. The zero value is normalized to a
// single attempt with the default backoff and no delay after plain false
// results.
type RetryPolicy struct {
	// MaxAttempts is clamped to [1, 10].
	MaxAttempts int
	// BaseDelay is the backoff unit; attempt n sleeps n*BaseDelay. Zero or
	// negative selects DefaultRetryDelay.
	BaseDelay time.Duration
	// DelayOnFalse applies the backoff after attempts that return false
	// without an error, not only after errors and panics. Off by default:
	// a plain negative probe is retried immediately.
	DelayOnFalse bool
}

func (p RetryPolicy) normalize() RetryPolicy {
	if p.MaxAttempts < minRetryAttempts {
		p.MaxAttempts = minRetryAttempts
	}
	if p.MaxAttempts > maxRetryAttempts {
		p.MaxAttempts = maxRetryAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultRetryDelay
	}
	return p
}

// Retry invokes op up to maxAttempts times and reports whether any attempt
// succeeded. An error or panic from op is suppressed, logged to trace with
// the attempt number, and followed by a growing backoff before the next
// try. A plain false result retries immediately. Retry returns early when
// ctx is done. Attempt counts outside [1, 10] are clamped.
func Retry(ctx context.Context, trace Trace, op func(ctx context.Context) (bool, error), maxAttempts int) bool {
	return RetryWithPolicy(ctx, trace, op, RetryPolicy{MaxAttempts: maxAttempts})
}

// RetryWithPolicy is Retry with explicit backoff control.
func RetryWithPolicy(ctx context.Context, trace Trace, op func(ctx context.Context) (bool, error), policy RetryPolicy) bool {
	if op == nil {
		return false
	}
	if trace == nil {
		trace = NopTrace
	}
	policy = policy.normalize()
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		ok, err := attemptOnce(ctx, op)
		if err == nil && ok {
			return true
		}
		if err != nil {
			trace.Log(fmt.Sprintf("retry attempt %d/%d failed: %v", attempt, policy.MaxAttempts, err))
		}
		if attempt == policy.MaxAttempts {
			break
		}
		if err != nil || policy.DelayOnFalse {
			if !sleep(ctx, time.Duration(attempt)*policy.BaseDelay) {
				return false
			}
		}
		if ctx.Err() != nil {
			return false
		}
	}
	return false
}

// attemptOnce runs a single attempt, converting a panic into an error so
// the retry loop owns every failure mode of op.
func attemptOnce(ctx context.Context, op func(ctx context.Context) (bool, error)) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("attempt panicked: %v", r)
		}
	}()
	return op(ctx)
}

// sleep waits for d or until ctx is done, reporting whether the full wait
// elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

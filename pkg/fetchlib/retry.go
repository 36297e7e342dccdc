package fetchlib

import (
	"context"
	"errors"
	"time"
)

// Default retry configuration values.
const (
	DEF_MAX_RETRIES = 3
	DEF_BASE_DELAY  = 500 * time.Millisecond
)

// BackoffFunc computes the delay before retry attempt n (1-based).
type BackoffFunc func(attempt int) time.Duration

// RetryPolicy configures how a task retries transient failures.
// MaxRetries bounds the total number of attempts; Backoff, when nil,
// defaults to linear backoff attempt*BaseDelay.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Backoff    BackoffFunc
}

// DefaultRetryPolicy returns a RetryPolicy with sensible defaults.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: DEF_MAX_RETRIES,
		BaseDelay:  DEF_BASE_DELAY,
	}
}

// Delay returns the backoff before attempt+1, given that attempt just
// failed.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if p.Backoff != nil {
		return p.Backoff(attempt)
	}
	return time.Duration(attempt) * p.BaseDelay
}

// Wait blocks for the backoff delay after the given failed attempt, or
// returns early with the context error when the context is cancelled.
func (p RetryPolicy) Wait(ctx context.Context, attempt int) error {
	delay := p.Delay(attempt)
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retriable reports whether the error is transient: connection errors
// and per-attempt timeouts are retried, everything else (HTTP status
// errors, write errors, cancellation) is terminal.
func Retriable(err error) bool {
	var connErr *ConnError
	if errors.As(err, &connErr) {
		return true
	}
	var toErr *TimeoutError
	return errors.As(err, &toErr)
}

// Package retry runs a remote call again when it is rate limited, waiting
// BaseDelay * 2^attempt plus random jitter between attempts.
package retry

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Defaults for Do.
const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 4 * time.Second
	DefaultMaxJitter   = time.Second
)

type policy struct {
	maxAttempts int
	baseDelay   time.Duration
	maxJitter   time.Duration
	jitter      func(max time.Duration) time.Duration
}

// Option adjusts the retry policy.
type Option func(*policy)

// WithMaxAttempts caps the total number of calls, the first included.
func WithMaxAttempts(n int) Option {
	return func(p *policy) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// WithBaseDelay sets the wait before the first retry.
func WithBaseDelay(d time.Duration) Option {
	return func(p *policy) {
		if d >= 0 {
			p.baseDelay = d
		}
	}
}

// WithMaxJitter bounds the random extra wait added to every delay.
func WithMaxJitter(d time.Duration) Option {
	return func(p *policy) {
		if d >= 0 {
			p.maxJitter = d
		}
	}
}

func randomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return rand.N(max)
}

// Do calls op until it succeeds, fails with something other than a
// rate-limit error, or runs out of attempts. The last error is returned as
// is. Calls never overlap; a cancelled ctx ends the wait with ctx.Err().
func Do[T any](ctx context.Context, op func(context.Context) (T, error), opts ...Option) (T, error) {
	p := policy{
		maxAttempts: DefaultMaxAttempts,
		baseDelay:   DefaultBaseDelay,
		maxJitter:   DefaultMaxJitter,
		jitter:      randomJitter,
	}
	for _, opt := range opts {
		opt(&p)
	}

	var zero T
	for attempt := 0; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, ErrRateLimited) || attempt >= p.maxAttempts-1 {
			return zero, err
		}

		delay := p.baseDelay*time.Duration(1<<attempt) + p.jitter(p.maxJitter)
		slog.Warn("remote_rate_limited", "attempt", attempt+1, "max_attempts", p.maxAttempts, "retry_in", delay.String())

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

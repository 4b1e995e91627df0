package ratelimit

import (
	"context"
)

// Limiter bounds the number of operations an identifier may perform within a
// fixed time window.
//
// Fixed windows admit up to 2x the limit across adjacent-window bursts. That
// is an accepted trade-off for O(1) memory per identifier; callers use
// generous limits where burst tolerance does not weaken protection.
type Limiter struct {
	store  Store
	config Config
}

// New creates a fixed-window rate limiter backed by the given store.
func New(store Store, config Config) (*Limiter, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Limiter{
		store:  store,
		config: config,
	}, nil
}

// Allow records one request for key and reports whether it fits within the
// current window.
func (l *Limiter) Allow(ctx context.Context, key string) (*Result, error) {
	count, resetAt, err := l.store.Incr(ctx, key, l.config.Window)
	if err != nil {
		return nil, err
	}

	return &Result{
		Allowed:   count <= l.config.Limit,
		Limit:     l.config.Limit,
		Remaining: max(0, l.config.Limit-count),
		ResetAt:   resetAt,
	}, nil
}

// Reset clears the counter for key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}

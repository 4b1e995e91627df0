package ratelimit

import (
	"context"
	"time"
)

// Store defines the interface for rate limit counter backends.
type Store interface {
	// Incr increments the counter for key within the current fixed window,
	// starting a fresh window when none is active or the previous one has
	// elapsed. The check-expire-then-increment sequence must be atomic per
	// key so concurrent callers never observe a stale count.
	// Returns the count including this increment and the window reset time.
	Incr(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)

	// Reset clears the counter for the given key.
	Reset(ctx context.Context, key string) error
}

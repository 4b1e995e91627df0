package ratelimit

import (
	"fmt"
	"time"
)

// Config defines a fixed-window limit: at most Limit requests per Window.
type Config struct {
	Limit  int           // Maximum requests allowed within a window
	Window time.Duration // Length of the fixed window
}

func (c Config) validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfig, c.Limit)
	}
	if c.Window <= 0 {
		return fmt.Errorf("%w: window must be positive, got %v", ErrInvalidConfig, c.Window)
	}
	return nil
}

// Result contains the outcome of a rate limit check.
type Result struct {
	Allowed   bool      // Whether this request fits within the window
	Limit     int       // Maximum requests per window
	Remaining int       // Requests left in the current window, never negative
	ResetAt   time.Time // When the current window ends and the count resets
}

// RetryAfter returns how long to wait before the next request.
// Returns 0 if the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

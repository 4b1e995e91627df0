package ratelimit_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadvane/leadvane/pkg/ratelimit"
)

func TestLimiter_ConcurrentSameKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0))

	// N concurrent checks against a limit of N-1 must produce exactly N-1
	// allowed and 1 denied outcome - any lost update would show up as an
	// extra allowed.
	const n = 100
	limiter, err := ratelimit.New(store, ratelimit.Config{Limit: n - 1, Window: time.Hour})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(n)

	var allowed, denied atomic.Int64

	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			result, err := limiter.Allow(ctx, "shared-key")
			if err != nil {
				return
			}
			if result.Allowed {
				allowed.Add(1)
			} else {
				denied.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(n-1), allowed.Load())
	assert.Equal(t, int64(1), denied.Load())
}

func TestLimiter_ConcurrentDistinctKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0))
	limiter, err := ratelimit.New(store, ratelimit.Config{Limit: 10, Window: time.Hour})
	require.NoError(t, err)

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)

	var denied atomic.Int64

	keys := []string{"key-a", "key-b", "key-c", "key-d", "key-e"}
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			result, err := limiter.Allow(ctx, keys[i%len(keys)])
			if err == nil && !result.Allowed {
				denied.Add(1)
			}
		}(i)
	}

	wg.Wait()

	// 50 requests spread over 5 keys is 10 per key, exactly at the limit.
	assert.Zero(t, denied.Load())
}

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// entry tracks one identifier's count within its current window.
type entry struct {
	count   int
	resetAt time.Time
}

// MemoryStore implements Store using in-process storage. Counters do not
// survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets the sweep interval for removing expired entries.
// Set to 0 to disable the background sweep.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// NewMemoryStore creates a new in-memory store. A background sweep removes
// expired entries every 5 minutes unless configured otherwise, bounding
// memory to the identifiers seen within the last window plus sweep interval.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		entries:         make(map[string]*entry),
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

// Incr increments the counter for key, replacing any expired window first.
// The whole read-modify-write runs under one lock so two concurrent requests
// can never both observe a stale count.
func (ms *MemoryStore) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	e, exists := ms.entries[key]
	if !exists || !now.Before(e.resetAt) {
		e = &entry{resetAt: now.Add(window)}
		ms.entries[key] = e
	}

	e.count++
	return e.count, e.resetAt, nil
}

func (ms *MemoryStore) Reset(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.entries, key)
	return nil
}

// cleanup runs the periodic sweep until Close is called.
func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeExpired()
		case <-ms.stopCleanup:
			return
		}
	}
}

// removeExpired drops entries whose window has already passed. Lazy expiry in
// Incr keeps correctness; the sweep only bounds memory.
func (ms *MemoryStore) removeExpired() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	for key, e := range ms.entries {
		if !now.Before(e.resetAt) {
			delete(ms.entries, key)
		}
	}
}

// Close stops the sweep goroutine. Safe to call multiple times.
func (ms *MemoryStore) Close() {
	select {
	case <-ms.stopCleanup:
		// Already closed
	default:
		close(ms.stopCleanup)
	}
}

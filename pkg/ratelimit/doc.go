// Package ratelimit provides an in-process fixed-window rate limiter keyed
// by arbitrary string identifiers.
//
// Each identifier gets a counter scoped to a discrete window. The first
// request for a never-seen or expired identifier starts a fresh window; every
// request within the window increments the counter; requests past the limit
// are denied until the window resets. Expired entries are removed lazily on
// access and by a periodic background sweep.
//
// The limiter is an injectable component, not a process-wide singleton:
// construct one per policy and pass it to the routers that need it, so tests
// can instantiate independent limiters.
//
// # Usage
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimit.New(store, ratelimit.Config{
//	    Limit:  5,
//	    Window: 15 * time.Minute,
//	})
//
//	r.With(ratelimit.Middleware(limiter, ratelimit.Composite(
//	    ratelimit.Static("admin_login"),
//	    clientKey,
//	))).Post("/login", loginHandler)
package ratelimit

// Package requestid assigns each HTTP request a correlation ID, preferring a
// valid inbound X-Request-ID over a freshly generated UUID.
package requestid

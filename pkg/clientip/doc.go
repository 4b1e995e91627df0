// Package clientip derives a per-request client identifier for rate limiting
// and audit logging.
//
// The trusted edge-proxy header wins over generic forwarded-for headers,
// which win over the raw connection address. Requests with no valid address
// anywhere collapse into the shared "unknown" bucket rather than bypassing
// identification.
package clientip

package admin

import "errors"

var (
	// ErrMissingSecret indicates the session signing secret is not configured.
	// Fatal at startup, never a per-request condition.
	ErrMissingSecret = errors.New("admin: session secret is not configured")

	// ErrUnauthenticated covers every session validation failure. Deliberately
	// indistinct so expired, forged, and absent sessions look identical.
	ErrUnauthenticated = errors.New("admin: unauthenticated")

	// ErrInvalidCredentials is returned for every login failure mode to
	// resist account enumeration.
	ErrInvalidCredentials = errors.New("admin: invalid email or password")

	// ErrUserNotFound is returned by storage when no account matches.
	ErrUserNotFound = errors.New("admin: user not found")
)

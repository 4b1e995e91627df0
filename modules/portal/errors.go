package portal

import "errors"

var (
	// ErrMissingSecret indicates a signing secret is not configured. Fatal at
	// startup, never a per-request condition.
	ErrMissingSecret = errors.New("portal: secret is not configured")

	// ErrUnauthenticated covers every session validation failure, including a
	// deactivated or deleted account discovered on the profile refetch.
	ErrUnauthenticated = errors.New("portal: unauthenticated")

	// ErrInvalidCredentials is returned for every login failure mode to
	// resist account enumeration.
	ErrInvalidCredentials = errors.New("portal: invalid email or password")

	// ErrEmailAlreadyExists indicates a registration attempt with a taken
	// email address.
	ErrEmailAlreadyExists = errors.New("portal: email already registered")

	// ErrInvalidResetToken covers forged, malformed, and expired password
	// reset tokens alike.
	ErrInvalidResetToken = errors.New("portal: invalid or expired reset token")

	// ErrCustomerNotFound is returned by storage when no account matches.
	ErrCustomerNotFound = errors.New("portal: customer not found")
)

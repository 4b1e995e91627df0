package email

import "errors"

var (
	// ErrInvalidConfig is returned when the sender configuration is incomplete.
	ErrInvalidConfig = errors.New("invalid email config")

	// ErrInvalidParams is returned when the email parameters are not sendable.
	ErrInvalidParams = errors.New("invalid email params")

	// ErrFailedToSendEmail is returned when the provider rejects the email.
	ErrFailedToSendEmail = errors.New("failed to send email")
)

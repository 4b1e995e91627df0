package pg

import "errors"

var (
	// ErrFailedToParseDBConfig is returned when the connection string cannot be parsed.
	ErrFailedToParseDBConfig = errors.New("failed to parse db config")

	// ErrFailedToOpenDBConnection is returned when the pool cannot be established after retries.
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")

	// ErrHealthcheckFailed is returned when the database does not answer a ping.
	ErrHealthcheckFailed = errors.New("db healthcheck failed")
)

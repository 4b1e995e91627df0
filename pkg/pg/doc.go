// Package pg manages the PostgreSQL connection pool used by the credential
// repositories: pgxpool configuration from the environment, connect with
// retry, and a health check closure for the HTTP health endpoint.
package pg

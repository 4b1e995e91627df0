// Package email sends transactional emails (password resets) through
// Postmark in production and a logging sender in development.
package email

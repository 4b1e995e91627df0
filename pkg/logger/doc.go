// Package logger builds the application's slog.Logger from environment
// configuration, plus shared attribute helpers so log fields stay consistent
// across components.
package logger

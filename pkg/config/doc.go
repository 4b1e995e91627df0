// Package config loads typed configuration structs from environment
// variables, with .env support for local development.
//
// Each package defines its own Config struct with `env` tags; the
// application entry point loads them all at startup so misconfiguration
// fails fast instead of surfacing mid-request.
package config

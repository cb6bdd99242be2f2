// Package config loads and validates the application configuration.
//
// Settings are merged from environment variables, command-line flags, and an
// optional JSON file, in that priority order. [GetStructuredConfig] returns
// the server configuration and [GetClientConfig] the client one.
package config

// Package config loads and validates the server configuration from
// defaults, an optional YAML file and environment variables.
package config

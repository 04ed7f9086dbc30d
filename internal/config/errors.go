package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates that no listen address could be
	// resolved from SERVER_ADDRESS, -a or PORT.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates unusable outbound settings, for
	// example a base URL without scheme.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)

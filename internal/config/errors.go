package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingTokenSignKey indicates that no token signing key was
	// supplied by any configuration source. The server cannot issue or
	// verify session tokens without one.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
)

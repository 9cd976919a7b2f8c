// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in fallbacks applied after all sources are merged.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "go-task-keeper"
	defaultTokenDuration  = time.Hour
	defaultSessionTimeout = 30 * time.Minute
	defaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills configuration fields no source provided a value for.
// Crypt option defaults live in the secret package and are applied at store
// construction, not here.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	// A negative session timeout is the explicit "never expire" setting.
	// It is normalised to zero here because the store treats a zero timeout
	// as no expiry; an unset (zero) timeout falls back to the default.
	switch {
	case cfg.App.SessionTimeout < 0:
		cfg.App.SessionTimeout = 0
	case cfg.App.SessionTimeout == 0:
		cfg.App.SessionTimeout = defaultSessionTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	return nil
}

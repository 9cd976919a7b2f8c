package models

import "time"

// Session is an ephemeral authorization record tied to exactly one user.
//
// Sessions are created by the identity store, refreshed on every
// authenticated request, and logically closed by forcing Expires to the
// close time. Expired sessions remain in the store as inert records; they
// are treated as invalid on the next read rather than being swept.
type Session struct {
	// ID is the opaque unique identifier of the session. Session IDs live in
	// a namespace distinct from user IDs.
	ID string `json:"id"`

	// UserID references the owning user. The user must exist at session
	// creation time.
	UserID string `json:"user_id"`

	// Created is the timestamp at which the session was opened.
	Created time.Time `json:"created"`

	// Updated is the timestamp of the most recent refresh.
	Updated time.Time `json:"updated"`

	// Expires is the absolute deadline after which the session is invalid.
	// The zero value means the session never expires.
	Expires time.Time `json:"expires,omitzero"`

	// HashedSecret is the hash of the session-bound secret. It is a distinct
	// credential from the user's password hash and is always hashed with a
	// fixed digest, independent of the configured crypt options.
	HashedSecret string `json:"-"`

	// Detail is an optional application-defined payload replaced on refresh.
	Detail map[string]any `json:"detail,omitempty"`
}

// Expired reports whether the session is past its deadline at the given
// time. Sessions with a zero Expires never expire.
func (s Session) Expired(now time.Time) bool {
	return !s.Expires.IsZero() && !now.Before(s.Expires)
}

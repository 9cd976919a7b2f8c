package models

import "time"

// User represents a registered account used for authentication and
// authorization. It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user. It is allocated by the
	// store at registration time and never changes afterwards.
	ID string `json:"-"`

	// UserName is the unique login identifier. It is trimmed and non-empty;
	// uniqueness is enforced by the identity store.
	UserName string `json:"user_name"`

	// HashedSecret is the salted hash of the user's password computed with
	// the store's configured crypt options. Never plaintext, never serialized.
	HashedSecret string `json:"-"`

	// Salt is the random per-user salt used when HashedSecret was computed.
	Salt string `json:"-"`

	// Info holds the public, non-sensitive profile attributes of the user.
	Info UserInfo `json:"info"`

	// Expires is the optional absolute expiry of the account.
	// The zero value means the account never expires.
	Expires time.Time `json:"expires,omitzero"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// UserInfo is the public projection of a user account. It is safe to return
// to API clients and contains no credential material.
type UserInfo struct {
	// ID mirrors User.ID so that callers holding only the public projection
	// can still reference the account (e.g. when opening a session).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the optional contact address of the user.
	Email string `json:"email,omitempty"`

	// Image is an optional URL of the user's avatar.
	Image string `json:"image,omitempty"`

	// EmailVerified reports whether Email has been confirmed.
	EmailVerified bool `json:"email_verified,omitempty"`

	// Detail is an optional application-defined payload attached to the
	// profile at registration time.
	Detail map[string]any `json:"detail,omitempty"`
}

// Expired reports whether the account is past its expiry at the given time.
// Accounts with a zero Expires never expire.
func (u User) Expired(now time.Time) bool {
	return !u.Expires.IsZero() && !now.Before(u.Expires)
}

// PublicInfo returns the public projection of the user with the account ID
// filled in.
func (u User) PublicInfo() UserInfo {
	info := u.Info
	info.ID = u.ID
	return info
}

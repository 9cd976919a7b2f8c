package store

import "errors"

// Causes wrapped into the typed errors returned by the memory store.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNameTaken signals that registration failed because the user
	// name is already in use.
	ErrUserNameTaken = errors.New("user name already exists")

	// ErrUserNameMalformed signals an empty user name or one carrying
	// leading/trailing whitespace.
	ErrUserNameMalformed = errors.New("user name must be non-empty without surrounding whitespace")

	// ErrNilContent signals that a content payload was nil. Content entries
	// must hold a non-null structured value.
	ErrNilContent = errors.New("content must be a non-null value")

	// ErrCloseTimeInFuture signals a close time later than the current time.
	ErrCloseTimeInFuture = errors.New("close time must not be in the future")

	// ErrSessionOwnerMismatch signals that a session was presented for a
	// user other than its owner.
	ErrSessionOwnerMismatch = errors.New("session does not belong to the given user")
)

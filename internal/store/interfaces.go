package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

// IdentityStore is the registry of users and sessions.
//
// All failures are typed [apperrors] values so that callers can branch on
// the error kind and the transport layer can map them to status codes.
type IdentityStore interface {
	// CreateUser registers a new account. The user name must be trimmed and
	// non-empty; the secret must satisfy the password policy. The zero
	// expires value means the account never expires. Returns the public
	// projection of the stored user.
	CreateUser(ctx context.Context, userName, secretValue string, info models.UserInfo, expires time.Time) (models.UserInfo, error)

	// ValidPassword verifies the login credentials and returns the public
	// projection on success.
	ValidPassword(ctx context.Context, userName, secretValue string) (models.UserInfo, error)

	// GetUser returns the full user record by ID.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// CreateSession opens a fresh session for an existing user.
	CreateSession(ctx context.Context, userID string) (models.Session, error)

	// UpdateSession refreshes an active session's deadline and replaces its
	// detail payload when a non-nil detail is supplied.
	UpdateSession(ctx context.Context, sessionID, userID string, detail map[string]any) (models.Session, error)

	// CloseSession forces the session's expiry to closeTime. Closing an
	// already-expired session is a no-op.
	CloseSession(ctx context.Context, sessionID string, closeTime time.Time) error
}

// ContentStore is the per-user keyed collection of content entries.
type ContentStore interface {
	// CreateContent appends a new entry to the user's collection and returns
	// the allocated entry ID.
	CreateContent(ctx context.Context, userID string, content any) (string, error)

	// GetContents returns every entry of the user passing the filter, in
	// insertion order. A nil filter matches all entries.
	GetContents(ctx context.Context, userID string, filter models.ContentFilter) ([]models.Content, error)

	// GetContent returns the single entry with the given ID.
	GetContent(ctx context.Context, userID, contentID string) (models.Content, error)

	// GetAvailableContent is the session-gated read path: it validates the
	// user, the session, and their association before returning the entry.
	GetAvailableContent(ctx context.Context, sessionID, userID, contentID string) (models.Content, error)
}

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

// AuthService handles user registration, credential verification, session
// lifecycle, and the transport-token lifecycle consumed by the HTTP layer.
type AuthService interface {
	// RegisterUser creates a new account and returns its public projection.
	RegisterUser(ctx context.Context, userName, secret string, info models.UserInfo) (models.UserInfo, error)

	// Login verifies credentials and returns the account's public projection.
	Login(ctx context.Context, userName, secret string) (models.UserInfo, error)

	// OpenSession creates a fresh session for the given user.
	OpenSession(ctx context.Context, userID string) (models.Session, error)

	// RefreshSession revalidates and extends an active session, replacing
	// its detail payload when a non-nil detail is supplied.
	RefreshSession(ctx context.Context, sessionID, userID string, detail map[string]any) (models.Session, error)

	// Logout closes the session as of closeTime (now when zero). Closing an
	// already-closed session succeeds.
	Logout(ctx context.Context, sessionID string, closeTime time.Time) error

	// CreateToken issues a signed JWT binding the user to the session.
	CreateToken(ctx context.Context, userID, sessionID string) (models.Token, error)

	// ParseToken validates and parses a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ContentService manages per-user content entries (the todo items).
type ContentService interface {
	// CreateContent appends a new entry to the user's collection and returns
	// its ID.
	CreateContent(ctx context.Context, userID string, content any) (string, error)

	// GetContents lists the user's entries passing the filter, in insertion
	// order.
	GetContents(ctx context.Context, userID string, filter models.ContentFilter) ([]models.Content, error)

	// GetContent returns a single entry by ID.
	GetContent(ctx context.Context, userID, contentID string) (models.Content, error)

	// GetAvailableContent returns a single entry after validating the
	// session, the user, and their association.
	GetAvailableContent(ctx context.Context, sessionID, userID, contentID string) (models.Content, error)
}

// AppInfoService exposes build metadata of the running application.
type AppInfoService interface {
	// GetAppVersion returns the configured semantic version string.
	GetAppVersion(ctx context.Context) string
}

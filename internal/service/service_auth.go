package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It delegates user and session lifecycle to an IdentityStore and handles
// the JWT transport-token lifecycle itself.
type authService struct {
	// identity is the registry used to create and look up users and sessions.
	identity store.IdentityStore

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// IdentityStore and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(identity store.IdentityStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		identity:      identity,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// RegisterUser creates a new user account.
//
// Validation of the user name and the secret happens in the identity store;
// any violation surfaces as a typed [apperrors] value suitable for the
// transport layer's generic mapping.
func (a *authService) RegisterUser(ctx context.Context, userName, secret string, info models.UserInfo) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	registered, err := a.identity.CreateUser(ctx, userName, secret, info, time.Time{})
	if err != nil {
		log.Err(err).Str("user_name", userName).Msg("user creation ended with error")
		return models.UserInfo{}, err
	}

	return registered, nil
}

// Login authenticates an existing user and returns the public projection of
// the account. The typed store errors (NotFound for an unknown name,
// AccessForbidden for a wrong password) pass through unchanged.
func (a *authService) Login(ctx context.Context, userName, secret string) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	info, err := a.identity.ValidPassword(ctx, userName, secret)
	if err != nil {
		log.Err(err).Str("user_name", userName).Msg("login failed")
		return models.UserInfo{}, err
	}

	return info, nil
}

// OpenSession creates a fresh session for the given user.
func (a *authService) OpenSession(ctx context.Context, userID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := a.identity.CreateSession(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("session creation ended with error")
		return models.Session{}, err
	}

	return session, nil
}

// RefreshSession revalidates an active session and extends its deadline.
func (a *authService) RefreshSession(ctx context.Context, sessionID, userID string, detail map[string]any) (models.Session, error) {
	return a.identity.UpdateSession(ctx, sessionID, userID, detail)
}

// Logout closes the session as of closeTime. A second logout on the same
// session is a no-op, never an error: success is always reported through
// the success channel.
func (a *authService) Logout(ctx context.Context, sessionID string, closeTime time.Time) error {
	log := logger.FromContext(ctx)

	if err := a.identity.CloseSession(ctx, sessionID, closeTime); err != nil {
		log.Err(err).Str("session_id", sessionID).Msg("session close ended with error")
		return err
	}

	return nil
}

// CreateToken issues a signed JWT binding the user to the session.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, userID, sessionID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, sessionID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

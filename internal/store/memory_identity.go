package store

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/apperrors"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/secret"
	"github.com/MKhiriev/go-task-keeper/models"
)

// CreateUser registers a new account.
//
// The user name must be non-empty with no leading or trailing whitespace and
// must not already be registered; the secret must satisfy the password
// policy. A fresh random salt is generated, the secret is hashed with the
// store's crypt options, and a collision-checked user ID is allocated.
//
// Returns the public projection of the stored user, or
// [apperrors.InvalidParameter] naming the offending argument.
func (s *MemoryStore) CreateUser(ctx context.Context, userName, secretValue string, info models.UserInfo, expires time.Time) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	if userName == "" || strings.TrimSpace(userName) != userName {
		log.Error().Str("user_name", userName).Msg("malformed user name")
		return models.UserInfo{}, apperrors.InvalidParameter("userName", userName, ErrUserNameMalformed)
	}

	if _, err := secret.CheckSecret(secretValue); err != nil {
		log.Err(err).Str("user_name", userName).Msg("secret failed password policy")
		return models.UserInfo{}, err
	}

	salt, err := secret.NewSalt(s.cryptOptions.SaltLength)
	if err != nil {
		return models.UserInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[userName]; exists {
		log.Error().Str("user_name", userName).Msg("user name already exists")
		return models.UserInfo{}, apperrors.InvalidParameter("userName", userName, ErrUserNameTaken)
	}

	id, err := allocateID(func(id string) bool {
		_, taken := s.usersByID[id]
		return taken
	})
	if err != nil {
		return models.UserInfo{}, err
	}

	user := models.User{
		ID:           id,
		UserName:     userName,
		HashedSecret: secret.HashSecret(secretValue, salt, s.cryptOptions),
		Salt:         salt,
		Info:         info,
		Expires:      expires,
		CreatedAt:    s.now(),
	}

	s.users[userName] = user
	s.usersByID[id] = userName

	log.Debug().Str("user_name", userName).Str("user_id", id).Msg("user created")

	return user.PublicInfo(), nil
}

// ValidPassword verifies login credentials.
//
// The stored salt and crypt options are used to recompute the hash of the
// supplied secret, which is then compared in constant time against the
// stored hash.
//
// Returns [apperrors.NotFound] for an unknown user name and
// [apperrors.AccessForbidden] on a hash mismatch.
func (s *MemoryStore) ValidPassword(ctx context.Context, userName, secretValue string) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	s.mu.RLock()
	user, exists := s.users[userName]
	s.mu.RUnlock()

	if !exists {
		log.Error().Str("user_name", userName).Msg("user not found")
		return models.UserInfo{}, apperrors.NotFound("user not found", nil)
	}

	computed := secret.HashSecret(secretValue, user.Salt, s.cryptOptions)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(user.HashedSecret)) != 1 {
		log.Error().Str("user_name", userName).Msg("wrong password")
		return models.UserInfo{}, apperrors.AccessForbidden("wrong password", nil)
	}

	return user.PublicInfo(), nil
}

// GetUser returns the full user record by ID, or [apperrors.NotFound].
func (s *MemoryStore) GetUser(ctx context.Context, userID string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.userByID(userID)
	if !exists {
		return models.User{}, apperrors.NotFound("user not found", nil)
	}

	return user, nil
}

// CreateSession opens a fresh session for an existing user.
//
// A collision-checked session ID and a fresh session-bound secret are
// allocated; the secret is hashed with the fixed session digest, never with
// the configured crypt options. With a non-zero session timeout the deadline
// is set to now+timeout, otherwise the session never expires.
//
// Returns [apperrors.AccessForbidden] when the user is unknown.
func (s *MemoryStore) CreateSession(ctx context.Context, userID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.userByID(userID); !exists {
		log.Error().Str("user_id", userID).Msg("session requested for unknown user")
		return models.Session{}, apperrors.AccessForbidden("unknown user", nil)
	}

	id, err := allocateID(func(id string) bool {
		_, taken := s.sessions[id]
		return taken
	})
	if err != nil {
		return models.Session{}, err
	}

	hashedSecret, err := s.allocateSessionSecret()
	if err != nil {
		return models.Session{}, err
	}

	now := s.now()
	session := models.Session{
		ID:           id,
		UserID:       userID,
		Created:      now,
		Updated:      now,
		HashedSecret: hashedSecret,
	}
	if s.sessionTimeout > 0 {
		session.Expires = now.Add(s.sessionTimeout)
	}

	s.sessions[id] = session

	log.Debug().Str("session_id", id).Str("user_id", userID).Msg("session created")

	return session, nil
}

// UpdateSession refreshes an active session.
//
// The updated timestamp and the expiry deadline are advanced; a non-nil
// detail replaces the stored detail payload.
//
// Returns [apperrors.NotFound] for an unknown session,
// [apperrors.BadRequest] when userID is not the session owner, and
// [apperrors.AuthenticationRequired] when the session has already expired.
func (s *MemoryStore) UpdateSession(ctx context.Context, sessionID, userID string, detail map[string]any) (models.Session, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		log.Error().Str("session_id", sessionID).Msg("session not found")
		return models.Session{}, apperrors.NotFound("session not found", nil)
	}

	if session.UserID != userID {
		log.Error().Str("session_id", sessionID).Str("user_id", userID).Msg("session owner mismatch")
		return models.Session{}, apperrors.BadRequest("session does not belong to user", ErrSessionOwnerMismatch)
	}

	now := s.now()
	if session.Expired(now) {
		log.Error().Str("session_id", sessionID).Time("expires", session.Expires).Msg("session expired")
		return models.Session{}, apperrors.AuthenticationRequired("session expired", nil)
	}

	session.Updated = now
	if s.sessionTimeout > 0 {
		session.Expires = now.Add(s.sessionTimeout)
	}
	if detail != nil {
		session.Detail = detail
	}

	s.sessions[sessionID] = session

	return session, nil
}

// CloseSession forces a session's expiry to closeTime (the current time when
// closeTime is zero). Closing a session that has already expired is a no-op,
// so the operation is idempotent.
//
// Returns [apperrors.InvalidParameter] when closeTime lies in the future and
// [apperrors.NotFound] for an unknown session.
func (s *MemoryStore) CloseSession(ctx context.Context, sessionID string, closeTime time.Time) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if closeTime.IsZero() {
		closeTime = now
	}
	if closeTime.After(now) {
		log.Error().Time("close_time", closeTime).Msg("close time in the future")
		return apperrors.InvalidParameter("closeTime", closeTime, ErrCloseTimeInFuture)
	}

	session, exists := s.sessions[sessionID]
	if !exists {
		log.Error().Str("session_id", sessionID).Msg("session not found")
		return apperrors.NotFound("session not found", nil)
	}

	if session.Expired(now) {
		return nil
	}

	session.Expires = closeTime
	s.sessions[sessionID] = session

	log.Debug().Str("session_id", sessionID).Time("expires", closeTime).Msg("session closed")

	return nil
}

// userByID resolves a user record through the ID index.
// Callers must hold at least a read lock.
func (s *MemoryStore) userByID(userID string) (models.User, bool) {
	name, exists := s.usersByID[userID]
	if !exists {
		return models.User{}, false
	}

	user, exists := s.users[name]
	return user, exists
}

// allocateSessionSecret draws session secrets until the hash is unique among
// live sessions, and returns the hash. The caller must hold the write lock.
func (s *MemoryStore) allocateSessionSecret() (string, error) {
	hashTaken := func(hashed string) bool {
		for _, session := range s.sessions {
			if session.HashedSecret == hashed {
				return true
			}
		}
		return false
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		raw, err := newRandomID()
		if err != nil {
			return "", err
		}
		hashed := secret.HashSessionSecret(raw)
		if !hashTaken(hashed) {
			return hashed, nil
		}
	}

	return "", errIDSpaceExhausted
}

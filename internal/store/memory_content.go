package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/apperrors"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// CreateContent appends a new entry to the user's collection.
//
// Entry IDs are collision-checked within the owner's collection only; the
// same ID may exist under a different user. Insertion order is preserved.
//
// Returns [apperrors.BadRequest] when the user is unknown or content is nil.
func (s *MemoryStore) CreateContent(ctx context.Context, userID string, content any) (string, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.userByID(userID); !exists {
		log.Error().Str("user_id", userID).Msg("content creation for unknown user")
		return "", apperrors.BadRequest("unknown user", nil)
	}

	if content == nil {
		log.Error().Str("user_id", userID).Msg("nil content payload")
		return "", apperrors.BadRequest("invalid content", ErrNilContent)
	}

	entries := s.content[userID]
	id, err := allocateID(func(id string) bool {
		for _, entry := range entries {
			if entry.ID == id {
				return true
			}
		}
		return false
	})
	if err != nil {
		return "", err
	}

	s.content[userID] = append(entries, models.Content{ID: id, Content: content})

	log.Debug().Str("user_id", userID).Str("content_id", id).Msg("content created")

	return id, nil
}

// GetContents returns the user's entries passing the filter, in insertion
// order. A user with no content yields an empty slice, never an error.
func (s *MemoryStore) GetContents(ctx context.Context, userID string, filter models.ContentFilter) ([]models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Content, 0, len(s.content[userID]))
	for _, entry := range s.content[userID] {
		if filter == nil || filter(entry) {
			matched = append(matched, entry)
		}
	}

	return matched, nil
}

// GetContent returns the user's entry with the given ID, or
// [apperrors.NotFound].
func (s *MemoryStore) GetContent(ctx context.Context, userID, contentID string) (models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.contentByID(userID, contentID)
}

// GetAvailableContent is the session-gated read path.
//
// Checks run in a fixed order:
//  1. unknown or expired user → [apperrors.AccessForbidden];
//  2. unknown or expired session → [apperrors.AuthenticationRequired];
//  3. session not owned by the claimed user → [apperrors.BadRequest];
//  4. missing entry → [apperrors.NotFound].
//
// The entry lookup is scoped to the claimed user's collection, so a content
// ID colliding across users can never leak another user's entry.
func (s *MemoryStore) GetAvailableContent(ctx context.Context, sessionID, userID, contentID string) (models.Content, error) {
	log := logger.FromContext(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()

	user, exists := s.userByID(userID)
	if !exists || user.Expired(now) {
		log.Error().Str("user_id", userID).Msg("content requested for unknown or expired user")
		return models.Content{}, apperrors.AccessForbidden("unknown or expired user", nil)
	}

	session, exists := s.sessions[sessionID]
	if !exists || session.Expired(now) {
		log.Error().Str("session_id", sessionID).Msg("content requested with unknown or expired session")
		return models.Content{}, apperrors.AuthenticationRequired("unknown or expired session", nil)
	}

	if session.UserID != userID {
		log.Error().Str("session_id", sessionID).Str("user_id", userID).Msg("session owner mismatch")
		return models.Content{}, apperrors.BadRequest("session does not belong to user", ErrSessionOwnerMismatch)
	}

	return s.contentByID(userID, contentID)
}

// contentByID scans the owner's collection for the entry.
// Callers must hold at least a read lock.
func (s *MemoryStore) contentByID(userID, contentID string) (models.Content, error) {
	for _, entry := range s.content[userID] {
		if entry.ID == contentID {
			return entry, nil
		}
	}

	return models.Content{}, apperrors.NotFound("content not found", nil)
}

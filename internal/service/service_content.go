package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

// contentService is the concrete implementation of ContentService. It is a
// thin delegation layer over a ContentStore; all validation and gating
// lives in the store so that every caller gets identical semantics.
type contentService struct {
	content store.ContentStore
	logger  *logger.Logger
}

// NewContentService constructs a ContentService backed by the given store.
func NewContentService(content store.ContentStore, logger *logger.Logger) ContentService {
	return &contentService{
		content: content,
		logger:  logger,
	}
}

func (c *contentService) CreateContent(ctx context.Context, userID string, content any) (string, error) {
	log := logger.FromContext(ctx)

	id, err := c.content.CreateContent(ctx, userID, content)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("content creation ended with error")
		return "", err
	}

	return id, nil
}

func (c *contentService) GetContents(ctx context.Context, userID string, filter models.ContentFilter) ([]models.Content, error) {
	return c.content.GetContents(ctx, userID, filter)
}

func (c *contentService) GetContent(ctx context.Context, userID, contentID string) (models.Content, error) {
	return c.content.GetContent(ctx, userID, contentID)
}

func (c *contentService) GetAvailableContent(ctx context.Context, sessionID, userID, contentID string) (models.Content, error) {
	log := logger.FromContext(ctx)

	entry, err := c.content.GetAvailableContent(ctx, sessionID, userID, contentID)
	if err != nil {
		log.Err(err).
			Str("session_id", sessionID).
			Str("user_id", userID).
			Str("content_id", contentID).
			Msg("gated content read ended with error")
		return models.Content{}, err
	}

	return entry, nil
}

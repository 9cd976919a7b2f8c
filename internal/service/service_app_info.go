package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// appInfoService exposes build metadata from configuration.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService constructs an AppInfoService from cfg.
func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		version: cfg.Version,
		logger:  logger,
	}
}

// GetAppVersion returns the configured version string, or "N/A" when the
// build was not stamped.
func (a *appInfoService) GetAppVersion(ctx context.Context) string {
	if a.version == "" {
		return "N/A"
	}

	return a.version
}

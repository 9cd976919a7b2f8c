package http

import (
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

// Handler bundles the service facade and the logger consumed by the route
// handlers and middleware of this package.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

// NewHandler constructs the HTTP handler bundle.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

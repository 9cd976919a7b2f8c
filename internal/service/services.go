package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// Services is the facade consumed by the transport layer. It exposes the
// union of the identity/session and content operations behind one value.
type Services struct {
	AuthService    AuthService
	ContentService ContentService
	AppInfoService AppInfoService
}

// NewServices wires the service facade to the given storages and
// configuration.
func NewServices(storages store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.Identity, cfg, logger),
		ContentService: NewContentService(storages.Content, logger),
		AppInfoService: NewAppInfoService(cfg, logger),
	}
}

package store

import (
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// Storages aggregates the storage interfaces consumed by the service layer.
// Both views are served by one MemoryStore instance so that the
// session-gated content path can consult the identity tables.
type Storages struct {
	Identity IdentityStore
	Content  ContentStore
}

// NewStorages constructs the application storages from cfg.
func NewStorages(cfg Config, logger *logger.Logger) (Storages, error) {
	logger.Debug().Msg("creating storages")

	memory, err := NewMemoryStore(cfg, logger)
	if err != nil {
		return Storages{}, err
	}

	return Storages{
		Identity: memory,
		Content:  memory,
	}, nil
}

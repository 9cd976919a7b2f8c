package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

func TestGetAppVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())
	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_Unstamped(t *testing.T) {
	svc := NewAppInfoService(config.App{}, logger.Nop())
	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}

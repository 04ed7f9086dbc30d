package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pdf-relay/internal/app"
	"github.com/MKhiriev/go-pdf-relay/internal/config"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/models"
)

// appInfoService answers the relay's own status routes. It never calls out.
type appInfoService struct {
	version string
	status  models.StatusMessage
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")

	return &appInfoService{
		version: version,
		status:  models.StatusMessage{Message: app.MsgServiceRunning},
	}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

// GetStatus returns the liveness body served on "/".
func (s *appInfoService) GetStatus(_ context.Context) models.StatusMessage {
	return s.status
}

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pdf-relay/internal/adapter"
	"github.com/MKhiriev/go-pdf-relay/internal/config"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/internal/validators"
)

type Services struct {
	SubmissionService SubmissionService
	ResultService     ResultService
	RelayService      RelayService
	AppInfoService    AppInfoService
}

// Adapters groups the outbound clients the services depend on.
type Adapters struct {
	RemoteAPI adapter.RemoteAPI
	Fetcher   adapter.BinaryFetcher
	Converter adapter.DocumentConverter
}

func NewServices(adapters Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		SubmissionService: NewSubmissionService(adapters.RemoteAPI, validator, cfg.Adapter, logger),
		ResultService:     NewResultService(adapters.RemoteAPI, validator, logger),
		RelayService:      NewRelayService(adapters.Fetcher, adapters.Converter, validator, logger),
		AppInfoService:    appInfoService,
	}, nil
}

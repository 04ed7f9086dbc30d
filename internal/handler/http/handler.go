package http

import (
	"github.com/MKhiriev/go-pdf-relay/internal/config"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/internal/service"
	"github.com/MKhiriev/go-pdf-relay/internal/utils"
)

type Handler struct {
	services    *service.Services
	idGenerator *utils.UUIDGenerator

	maxBodySize   int64
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		idGenerator:   utils.NewUUIDGenerator(),
		maxBodySize:   cfg.MaxBodySize,
		maxUploadSize: cfg.MaxMultipartMemory,
		logger:        logger,
	}
}

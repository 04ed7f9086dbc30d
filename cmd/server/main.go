package main

import (
	"fmt"

	"github.com/MKhiriev/go-pdf-relay/internal/adapter"
	"github.com/MKhiriev/go-pdf-relay/internal/config"
	"github.com/MKhiriev/go-pdf-relay/internal/handler"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/internal/server"
	"github.com/MKhiriev/go-pdf-relay/internal/service"
	"github.com/MKhiriev/go-pdf-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("pdf-relay")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// a version stamped at build time wins over the built-in default
	if cfg.App.Version == config.DefaultVersion && buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	remoteAPI, err := adapter.NewMineruAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating OCR service adapter")
	}

	binary, err := adapter.NewBinaryAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating binary relay adapter")
	}

	services, err := service.NewServices(service.Adapters{
		RemoteAPI: remoteAPI,
		Fetcher:   binary,
		Converter: binary,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-zone-keeper/internal/adapter"
	"github.com/MKhiriev/go-zone-keeper/internal/client"
	"github.com/MKhiriev/go-zone-keeper/internal/config"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/service"
	"github.com/MKhiriev/go-zone-keeper/internal/tui"
	"github.com/MKhiriev/go-zone-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("go-zone-client")
	log.Info().Str("build", buildInfo.String()).Msg("starting client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	container, err := adapter.NewHTTPContainer(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create record store adapter")
	}

	services := service.NewClientServices(container, log)
	ui := tui.New(services, buildInfo, cfg.App.ContainerID, log)

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zone-keeper/internal/config"
	"github.com/MKhiriev/go-zone-keeper/internal/handler"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/server"
	"github.com/MKhiriev/go-zone-keeper/internal/service"
	"github.com/MKhiriev/go-zone-keeper/internal/store"
	"github.com/MKhiriev/go-zone-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewLogger("go-zone-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, db, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

package handler

import (
	"github.com/MKhiriev/go-zone-keeper/internal/config"
	"github.com/MKhiriev/go-zone-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-zone-keeper/internal/handler/http"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, pinger grpc.Pinger, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App.ContainerID, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

package http

import (
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// containerID is the only container this server answers for.
	containerID string

	logger *logger.Logger
}

func NewHandler(services *service.Services, containerID string, logger *logger.Logger) *Handler {
	logger.Info().Str("container", containerID).Msg("http handler created")
	return &Handler{
		services:    services,
		containerID: containerID,
		logger:      logger,
	}
}

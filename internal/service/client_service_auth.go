package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zone-keeper/internal/adapter"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

type clientAuthService struct {
	container adapter.Container
	logger    *logger.Logger
}

func NewClientAuthService(container adapter.Container, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{container: container, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	if user.Login == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}

	if _, err := a.container.Register(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	a.logger.Info().Str("login", user.Login).Msg("principal registered")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) error {
	if user.Login == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}

	if _, err := a.container.Login(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	a.logger.Info().Str("login", user.Login).Msg("principal logged in")
	return nil
}

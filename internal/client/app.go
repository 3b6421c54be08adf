package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zone-keeper/internal/config"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/service"
	"github.com/MKhiriev/go-zone-keeper/models"
)

var ErrMissingCredentials = errors.New("login and password must be configured")

type App struct {
	services *service.ClientServices
	ui       UI
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || cfg == nil {
		return nil, errors.New("client app requires services, ui and config")
	}
	return &App{
		services: services,
		ui:       ui,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run authenticates the configured principal, loads the first view, keeps it
// fresh in the background and hands the terminal to the UI.
func (a *App) Run(ctx context.Context) error {
	if err := a.authenticate(ctx); err != nil {
		return err
	}

	// the UI renders a failed state itself, so the first refresh is not fatal
	if err := a.services.SyncService.Refresh(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial refresh failed")
	}

	a.services.SyncJob.Start(ctx, a.cfg.Workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	return a.ui.Run(ctx)
}

func (a *App) authenticate(ctx context.Context) error {
	user := models.User{Login: a.cfg.App.Login, Password: a.cfg.App.Password}
	if user.Login == "" || user.Password == "" {
		return ErrMissingCredentials
	}

	if a.cfg.App.Register {
		if err := a.services.AuthService.Register(ctx, user); err != nil {
			return fmt.Errorf("register %s: %w", user.Login, err)
		}
		a.logger.Info().Str("login", user.Login).Msg("principal registered")
		return nil
	}

	if err := a.services.AuthService.Login(ctx, user); err != nil {
		return fmt.Errorf("login %s: %w", user.Login, err)
	}
	a.logger.Info().Str("login", user.Login).Msg("principal logged in")
	return nil
}

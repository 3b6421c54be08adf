package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/service"
	"github.com/MKhiriev/go-zone-keeper/models"
)

type TUI struct {
	services    *service.ClientServices
	buildInfo   models.AppBuildInfo
	containerID string
	logger      *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, containerID string, logger *logger.Logger) *TUI {
	return &TUI{
		services:    services,
		buildInfo:   buildInfo,
		containerID: containerID,
		logger:      logger,
	}
}

// Run shows the contact groups until the user quits. The view follows the
// sync state published by the sync service.
func (t *TUI) Run(ctx context.Context) error {
	states, unsubscribe := t.services.SyncService.Subscribe()
	defer unsubscribe()

	model := newAppModel(ctx, t.services, states, t.buildInfo, t.containerID, clipboardIO{
		read:  clipboard.ReadAll,
		write: clipboard.WriteAll,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Msg("tui stopped with error")
		return err
	}
	return nil
}

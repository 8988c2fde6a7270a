package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/internal/service"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNotWired
	}

	return &App{
		services: services,
		ui:       ui,
		logger:   logger.WithComponent("app"),
	}, nil
}

// Run loads the profile files and hands control to the UI. A profile load
// failure is returned before anything is drawn.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.ProfileService.Load(ctx); err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}

	a.logger.Info().
		Int("cards", len(a.services.ProfileService.Cards())).
		Int("apms", len(a.services.ProfileService.APMs())).
		Int("ptps", len(a.services.ProfileService.PTPs())).
		Msg("profiles loaded, starting ui")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("ui closed")
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal workbench: tabs for card, 3-D Secure card and
// APM requests, a form kept in sync with an editable JSON payload, a PTP
// picker and a response pane.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// Run shows the workbench until the operator quits and then saves the
// preferences.
func (t *TUI) Run(ctx context.Context) error {
	prefs := t.services.PreferencesService.Load(ctx)
	model := newAppModel(ctx, t.services, prefs, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	if err = t.services.PreferencesService.Save(ctx, result.preferences()); err != nil {
		return fmt.Errorf("error saving preferences on exit: %w", err)
	}
	return nil
}

package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/ptp-tester/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// cmdSend dispatches req and blocks until its single outcome arrives.
func (m appModel) cmdSend(req models.DirectRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.RequestService
	return func() tea.Msg {
		ch, err := svc.Send(ctx, req)
		if err != nil {
			return outcomeMsg{outcome: models.DirectOutcome{Request: req, Err: err, Finished: time.Now()}}
		}
		return outcomeMsg{outcome: <-ch}
	}
}

func (m appModel) cmdSaveExistingCard(id string, fields models.CardFields, mode models.Mode, p models.Payload) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService
	return func() tea.Msg {
		entry, err := svc.SaveExistingCard(ctx, id, fields, mode, p)
		return cardSavedMsg{entry: entry, err: err}
	}
}

func (m appModel) cmdSaveNewCard(refID, description string, fields models.CardFields, mode models.Mode, p models.Payload) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService
	return func() tea.Msg {
		entry, err := svc.SaveNewCard(ctx, refID, description, fields, mode, p)
		return cardSavedMsg{entry: entry, err: err}
	}
}

func (m appModel) cmdDeleteCard(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService
	return func() tea.Msg {
		return cardDeletedMsg{err: svc.DeleteCard(ctx, id)}
	}
}

func (m appModel) cmdReloadCards() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService
	return func() tea.Msg {
		return cardsReloadedMsg{err: svc.ReloadCards(ctx)}
	}
}

func (m appModel) cmdSaveAPMPayload(id string, p models.Payload) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService
	return func() tea.Msg {
		entry, err := svc.SaveAPMPayload(ctx, id, p)
		return apmSavedMsg{entry: entry, err: err}
	}
}

func (m appModel) cmdSavePrefs() tea.Cmd {
	ctx := m.ctx
	svc := m.services.PreferencesService
	prefs := m.prefs
	return func() tea.Msg {
		return prefsSavedMsg{err: svc.Save(ctx, prefs)}
	}
}

func cmdCopyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/ptp-tester/internal/formsync"
	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/internal/payload"
	"github.com/MKhiriev/ptp-tester/internal/service"
	"github.com/MKhiriev/ptp-tester/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pickerRows     = 5
	editorHeight   = 12
	responseHeight = 12
	defaultWidth   = 100
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	prefs models.Preferences
	form  formsync.State

	cards       []models.CardEntry
	apms        []models.APMEntry
	cardPick    pickerModel
	apmPick     pickerModel
	ptpPick     pickerModel
	ptpSelected string

	inputs [controlCount]textinput.Model
	editor textarea.Model
	focus  control

	response    viewport.Model
	spinner     spinner.Model
	sending     bool
	curl        string
	request     *models.DirectRequest
	outcome     *models.DirectOutcome
	redirectURL string

	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	prompting     bool
	prompt        promptModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, prefs models.Preferences, logger *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:       ctx,
		services:  services,
		buildInfo: services.AppInfoService.GetAppBuildInfo(ctx),
		logger:    logger.WithComponent("tui"),
		prefs:     prefs,
		form:      formsync.NewState(models.ParseMode(prefs.LastMode), prefs.Toggles()),
		cardPick:  newPickerModel(pickerRows, "no cards in the catalog"),
		apmPick:   newPickerModel(pickerRows, "no APM profiles in the catalog"),
		ptpPick:   newPickerModel(pickerRows, "no PTP matches the filter"),
		inputs:    newInputs(),
		editor:    newEditor(),
		response:  viewport.New(defaultWidth, responseHeight),
		spinner:   s,
	}

	m.inputs[ctrlBaseURL].SetValue(prefs.BaseURL)
	m.refreshCards(indexOfLabel(services.ProfileService.Cards(), prefs.LastCard, models.CardEntry.Display))
	m.refreshAPMs(indexOfLabel(services.ProfileService.APMs(), prefs.LastAPM, models.APMEntry.Display))
	m.ptpSelected = prefs.LastPTP
	m.filterPTPs()

	m.applyProfile()
	m.setFocus(ctrlProfile)
	m.renderResponse()
	return m
}

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = "select a profile to build a payload"
	ta.SetWidth(defaultWidth)
	ta.SetHeight(editorHeight)
	return ta
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.syncPrefs()
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteCard(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case outcomeMsg:
		return m.handleOutcome(msg.outcome)
	case cardSavedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.refreshCards(indexOfID(m.services.ProfileService.Cards(), msg.entry.ID, func(e models.CardEntry) string { return e.ID }))
		m.applyProfile()
		m.status = "Card saved: " + msg.entry.Display()
		return m, cmdClearStatus()
	case apmSavedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.refreshAPMs(indexOfID(m.services.ProfileService.APMs(), msg.entry.ID, func(e models.APMEntry) string { return e.ID }))
		m.applyProfile()
		m.status = "APM profile saved: " + msg.entry.Display()
		return m, cmdClearStatus()
	case cardDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.refreshCards(m.cardPick.idx)
		m.applyProfile()
		m.status = "Card deleted"
		return m, cmdClearStatus()
	case cardsReloadedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.refreshCards(indexOfLabel(m.services.ProfileService.Cards(), m.prefs.LastCard, models.CardEntry.Display))
		m.applyProfile()
		m.status = fmt.Sprintf("Reloaded %d cards", len(m.cards))
		return m, cmdClearStatus()
	case prefsSavedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("error saving preferences")
			m.status = "Preferences not saved: " + msg.err.Error()
		}
		return m, nil
	case copiedMsg:
		m.status = msg.what + " copied to the clipboard"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.renderResponse()
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, keys.tabCard):
		m.switchMode(models.ModeCard)
		return m, nil
	case key.Matches(msg, keys.tab3DS):
		m.switchMode(models.ModeCard3DS)
		return m, nil
	case key.Matches(msg, keys.tabAPM):
		m.switchMode(models.ModeAPM)
		return m, nil
	case key.Matches(msg, keys.nextTab):
		m.switchMode((m.form.Mode + 1) % 3)
		return m, nil
	case key.Matches(msg, keys.send):
		return m.send()
	case key.Matches(msg, keys.copyCurl):
		return m.copyCurl()
	case key.Matches(msg, keys.copyURL):
		if m.redirectURL == "" {
			m.status = "The last response has no redirect URL"
			return m, nil
		}
		return m, cmdCopyToClipboard(m.redirectURL, "Redirect URL")
	case key.Matches(msg, keys.save):
		return m.saveProfile()
	case key.Matches(msg, keys.saveNew):
		return m.startSaveNew()
	case key.Matches(msg, keys.delete):
		return m.startDelete()
	case key.Matches(msg, keys.reload):
		return m, m.cmdReloadCards()
	case key.Matches(msg, keys.format):
		m.formatPayload()
		return m, nil
	case key.Matches(msg, keys.clear):
		m.clearResponse()
		return m, nil
	case key.Matches(msg, keys.privacy):
		t := m.form.Toggles
		return m, m.reduce(formsync.TogglesEdited{
			SoftDescriptor:        t.SoftDescriptor,
			SoftDescriptorEnabled: t.SoftDescriptorEnabled,
			PrivacyMode:           !t.PrivacyMode,
		})
	case key.Matches(msg, keys.softDesc):
		t := m.form.Toggles
		return m, m.reduce(formsync.TogglesEdited{
			SoftDescriptor:        m.inputs[ctrlSoftDescriptor].Value(),
			SoftDescriptorEnabled: !t.SoftDescriptorEnabled,
			PrivacyMode:           t.PrivacyMode,
		})
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused hands msg to the focused control and turns value changes
// into synchronizer events.
func (m appModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	switch c := m.focus; {
	case c == ctrlProfile:
		if !isKey {
			return m, nil
		}
		delta := 0
		switch {
		case key.Matches(keyMsg, keys.up):
			delta = -1
		case key.Matches(keyMsg, keys.down):
			delta = 1
		}
		if delta == 0 {
			return m, nil
		}
		moved := false
		if m.form.Mode == models.ModeAPM {
			m.apmPick, moved = m.apmPick.move(delta)
		} else {
			m.cardPick, moved = m.cardPick.move(delta)
		}
		if moved {
			m.applyProfile()
		}
		return m, nil

	case c == ctrlPayload:
		before := m.editor.Value()
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		if after := m.editor.Value(); after != before {
			return m, tea.Batch(cmd, m.reduce(formsync.PayloadEdited{Text: after}))
		}
		return m, cmd

	case c == ctrlResponse:
		var cmd tea.Cmd
		m.response, cmd = m.response.Update(msg)
		return m, cmd

	case c == ctrlPTP:
		if isKey && (key.Matches(keyMsg, keys.up) || key.Matches(keyMsg, keys.down)) {
			delta := 1
			if key.Matches(keyMsg, keys.up) {
				delta = -1
			}
			m.ptpPick, _ = m.ptpPick.move(delta)
			m.ptpSelected, _ = m.ptpPick.current()
			m.syncPrefs()
			return m, nil
		}
		before := m.inputs[c].Value()
		var cmd tea.Cmd
		m.inputs[c], cmd = m.inputs[c].Update(msg)
		if m.inputs[c].Value() != before {
			m.filterPTPs()
		}
		return m, cmd

	default:
		before := m.inputs[c].Value()
		var cmd tea.Cmd
		m.inputs[c], cmd = m.inputs[c].Update(msg)
		if m.inputs[c].Value() != before {
			return m, tea.Batch(cmd, m.inputChanged(c))
		}
		return m, cmd
	}
}

func (m *appModel) inputChanged(c control) tea.Cmd {
	value := m.inputs[c].Value()

	switch c {
	case ctrlBaseURL:
		m.syncPrefs()
		return nil
	case ctrlKey:
		return m.reduce(formsync.KeyEdited{Key: value})
	case ctrlSoftDescriptor:
		t := m.form.Toggles
		return m.reduce(formsync.TogglesEdited{
			SoftDescriptor:        value,
			SoftDescriptorEnabled: t.SoftDescriptorEnabled,
			PrivacyMode:           t.PrivacyMode,
		})
	}

	if field, ok := formFields[c]; ok {
		return m.reduce(formsync.FormEdited{Field: field, Value: value})
	}
	return nil
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.prompting = false
		return m, nil
	case key.Matches(msg, keys.enter):
		m.prompting = false
		entry, ok := m.selectedCard()
		if !ok {
			m.showErrorf(service.ErrNoCardSelected.Error())
			return m, nil
		}
		p, err := m.currentPayload()
		if err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		return m, m.cmdSaveNewCard(entry.ID, m.prompt.input.Value(), m.form.CardFields, m.form.Mode, p)
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

// reduce applies ev to the synchronizer and reflects the effect in the view.
func (m *appModel) reduce(ev formsync.Event) tea.Cmd {
	var eff formsync.Effect
	m.form, eff = formsync.Reduce(m.form, ev)

	if eff.Rewrite {
		m.editor.SetValue(eff.Text)
	}
	if eff.FormChanged {
		m.writeFormInputs()
	}
	m.refreshDerived()

	switch {
	case eff.Invalid:
		m.status = "Payload is not valid JSON, the form is unchanged"
	case eff.Err != nil && errors.Is(eff.Err, payload.ErrNoProfile):
		m.status = "Select a profile to build a payload"
	case eff.Err != nil:
		m.status = eff.Err.Error()
	case strings.HasPrefix(m.status, "Payload is not valid JSON") || strings.HasPrefix(m.status, "Select a profile"):
		m.status = ""
	}

	if eff.KeyChanged {
		return m.cmdSavePrefs()
	}
	return nil
}

// refreshDerived updates everything computed from the synchronizer state.
func (m *appModel) refreshDerived() {
	m.inputs[ctrlAmount].Placeholder = payload.Extract(m.form.Mode, m.form.Built().Send).Amount

	if m.form.Toggles.PrivacyMode {
		m.inputs[ctrlKey].EchoMode = textinput.EchoPassword
	} else {
		m.inputs[ctrlKey].EchoMode = textinput.EchoNormal
	}

	m.syncPrefs()
}

func (m *appModel) syncPrefs() {
	t := m.form.Toggles
	m.prefs.IntegrationKey = t.APIKey
	m.prefs.SoftDescriptor = t.SoftDescriptor
	m.prefs.SoftDescriptorEnabled = t.SoftDescriptorEnabled
	m.prefs.PrivacyMode = t.PrivacyMode
	m.prefs.BaseURL = strings.TrimSpace(m.inputs[ctrlBaseURL].Value())
	m.prefs.LastMode = m.form.Mode.String()
	m.prefs.LastPTP = m.ptpSelected
	if e, ok := m.selectedCard(); ok {
		m.prefs.LastCard = e.Display()
	}
	if e, ok := m.selectedAPM(); ok {
		m.prefs.LastAPM = e.Display()
	}
}

func (m *appModel) switchMode(mode models.Mode) {
	if mode == m.form.Mode {
		return
	}
	m.reduce(formsync.ModeSelected{Mode: mode})
	m.writeFormInputs()
	m.setFocus(m.focus)
}

// applyProfile feeds the picker selections to the synchronizer.
func (m *appModel) applyProfile() {
	ev := formsync.ProfileSelected{}
	if e, ok := m.selectedCard(); ok {
		card := e.Card
		ev.Card = &card
		ev.Customer = m.services.ProfileService.Customer(e.Country)
	}
	if e, ok := m.selectedAPM(); ok {
		p := e.Profile
		ev.APM = &p
	}

	m.reduce(ev)
	m.writeFormInputs()
}

func (m *appModel) refreshCards(selected int) {
	m.cards = m.services.ProfileService.Cards()
	labels := make([]string, len(m.cards))
	for i, e := range m.cards {
		labels[i] = e.Display()
	}
	m.cardPick = m.cardPick.setItems(labels, selected)
}

func (m *appModel) refreshAPMs(selected int) {
	m.apms = m.services.ProfileService.APMs()
	labels := make([]string, len(m.apms))
	for i, e := range m.apms {
		labels[i] = e.Display()
	}
	m.apmPick = m.apmPick.setItems(labels, selected)
}

func (m *appModel) filterPTPs() {
	list, selected := m.services.ProfileService.FilterPTPs(m.inputs[ctrlPTP].Value(), m.ptpSelected)
	m.ptpPick = m.ptpPick.setItems(list, slices.Index(list, selected))
	m.ptpSelected = selected
	m.syncPrefs()
}

func (m appModel) selectedCard() (models.CardEntry, bool) {
	if m.cardPick.idx < 0 || m.cardPick.idx >= len(m.cards) {
		return models.CardEntry{}, false
	}
	return m.cards[m.cardPick.idx], true
}

func (m appModel) selectedAPM() (models.APMEntry, bool) {
	if m.apmPick.idx < 0 || m.apmPick.idx >= len(m.apms) {
		return models.APMEntry{}, false
	}
	return m.apms[m.apmPick.idx], true
}

// draft collects what the request service needs to validate a send.
func (m appModel) draft() models.RequestDraft {
	d := models.RequestDraft{
		Mode:           m.form.Mode,
		PTP:            m.ptpSelected,
		BaseURL:        m.inputs[ctrlBaseURL].Value(),
		IntegrationKey: m.form.Toggles.APIKey,
		PayloadText:    m.editor.Value(),
	}

	if m.form.Mode == models.ModeAPM {
		if e, ok := m.selectedAPM(); ok {
			d.ProfileID, d.ProfileLabel, d.Country = e.ID, e.Display(), e.Country
		}
	} else if e, ok := m.selectedCard(); ok {
		d.ProfileID, d.ProfileLabel, d.Country = e.ID, e.Card.Description, e.Country
	}

	if out, err := m.form.Outgoing(); err == nil {
		d.Outgoing = out
	}
	return d
}

func (m appModel) send() (tea.Model, tea.Cmd) {
	if m.sending || m.services.RequestService.Busy() {
		m.status = "A request is already in flight"
		return m, nil
	}

	req, err := m.services.RequestService.Prepare(m.draft())
	if err != nil {
		m.showErrorf(err.Error())
		return m, nil
	}

	m.curl, _ = m.services.RequestService.Curl(req, m.form.Mode, m.form.Toggles.PrivacyMode)
	m.sending = true
	m.request = &req
	m.outcome = nil
	m.redirectURL = ""
	m.status = "Sending..."
	m.renderResponse()
	return m, tea.Batch(m.spinner.Tick, m.cmdSend(req))
}

func (m appModel) handleOutcome(o models.DirectOutcome) (tea.Model, tea.Cmd) {
	m.sending = false
	m.outcome = &o
	m.redirectURL = ""

	if o.Err != nil {
		m.status = "Request failed"
	} else {
		m.redirectURL = o.Response.RedirectURL
		m.status = fmt.Sprintf("HTTP %d %s", o.Response.StatusCode, o.Response.Class)
	}
	m.renderResponse()

	m.syncPrefs()
	return m, m.cmdSavePrefs()
}

func (m appModel) copyCurl() (tea.Model, tea.Cmd) {
	req, err := m.services.RequestService.Prepare(m.draft())
	if err != nil {
		m.showErrorf(err.Error())
		return m, nil
	}
	_, clip := m.services.RequestService.Curl(req, m.form.Mode, m.form.Toggles.PrivacyMode)
	return m, cmdCopyToClipboard(clip, "cURL command")
}

// currentPayload returns the unmasked payload behind the editor text.
func (m appModel) currentPayload() (models.Payload, error) {
	if _, err := models.ParsePayload(m.editor.Value()); err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrInvalidPayload, err)
	}
	return m.form.Outgoing()
}

func (m appModel) saveProfile() (tea.Model, tea.Cmd) {
	p, err := m.currentPayload()
	if err != nil {
		m.showErrorf(err.Error())
		return m, nil
	}

	if m.form.Mode == models.ModeAPM {
		e, ok := m.selectedAPM()
		if !ok {
			m.showErrorf(service.ErrNoAPMSelected.Error())
			return m, nil
		}
		return m, m.cmdSaveAPMPayload(e.ID, p)
	}

	e, ok := m.selectedCard()
	if !ok {
		m.showErrorf(service.ErrNoCardSelected.Error())
		return m, nil
	}
	return m, m.cmdSaveExistingCard(e.ID, m.form.CardFields, m.form.Mode, p)
}

func (m appModel) startSaveNew() (tea.Model, tea.Cmd) {
	if !m.form.Mode.IsCard() {
		m.status = "New profiles can only be added on the card tabs"
		return m, nil
	}
	e, ok := m.selectedCard()
	if !ok {
		m.showErrorf(service.ErrNoCardSelected.Error())
		return m, nil
	}

	m.prompting = true
	m.prompt = newPromptModel("Description of the new "+e.Country+" "+e.Brand+" card", "")
	return m, nil
}

func (m appModel) startDelete() (tea.Model, tea.Cmd) {
	if !m.form.Mode.IsCard() {
		m.status = "Only cards can be deleted"
		return m, nil
	}
	e, ok := m.selectedCard()
	if !ok {
		m.showErrorf(service.ErrNoCardSelected.Error())
		return m, nil
	}

	m.showConfirm = true
	m.confirm.message = e.Display()
	m.pendingDelete = e.ID
	return m, nil
}

func (m *appModel) formatPayload() {
	p, err := models.ParsePayload(m.editor.Value())
	if err != nil {
		m.status = "Cannot format: " + err.Error()
		return
	}
	m.editor.SetValue(p.Pretty())
}

func (m *appModel) clearResponse() {
	m.curl = ""
	m.request = nil
	m.outcome = nil
	m.redirectURL = ""
	m.renderResponse()
}

func (m *appModel) renderResponse() {
	pane := responsePane{
		curl:    m.curl,
		request: m.request,
		outcome: m.outcome,
		sending: m.sending,
		spinner: m.spinner.View(),
	}
	m.response.SetContent(pane.render())
	if !m.sending {
		m.response.GotoTop()
	}
}

func (m *appModel) resize(width, height int) {
	w := max(width-8, 40)
	m.editor.SetWidth(w)
	m.response.Width = w
	m.response.Height = max(height-editorHeight-30, 6)
	m.renderResponse()
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// preferences returns the preferences to persist on exit.
func (m appModel) preferences() models.Preferences {
	m.syncPrefs()
	return m.prefs
}

func indexOfLabel[E any](entries []E, label string, display func(E) string) int {
	if label == "" {
		return 0
	}
	for i, e := range entries {
		if display(e) == label {
			return i
		}
	}
	return 0
}

func indexOfID[E any](entries []E, id string, idOf func(E) string) int {
	for i, e := range entries {
		if idOf(e) == id {
			return i
		}
	}
	return 0
}

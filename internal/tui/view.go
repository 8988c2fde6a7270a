package tui

import (
	"strings"

	"github.com/MKhiriev/ptp-tester/internal/payload"
	"github.com/MKhiriev/ptp-tester/models"
)

const hotKeysHelp = "tab/shift+tab focus  alt+1..3 tabs  ctrl+g send  ctrl+y copy cURL  ctrl+u copy redirect\n" +
	"  ctrl+w save  ctrl+n save as new  ctrl+d delete  ctrl+r reload  ctrl+f format  ctrl+l clear\n" +
	"  ctrl+p privacy  ctrl+o soft descriptor  f1 about"

var tabs = []struct {
	mode  models.Mode
	label string
}{
	{models.ModeCard, "1 Card"},
	{models.ModeCard3DS, "2 Card 3DS"},
	{models.ModeAPM, "3 APM"},
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewProfile())
	b.WriteString("\n\n")
	b.WriteString(m.viewFields())
	b.WriteString("\n\n")
	b.WriteString(m.label(ctrlPayload))
	if m.form.HasOverride() {
		b.WriteString(helpStyle.Render("  (hand-edited)"))
	}
	b.WriteString("\n")
	b.WriteString(m.editor.View())
	b.WriteString("\n\n")
	b.WriteString(m.label(ctrlPTP) + ": " + m.inputs[ctrlPTP].View())
	b.WriteString("\n")
	b.WriteString(m.ptpPick.View(m.focus == ctrlPTP))
	b.WriteString("\n\n")
	b.WriteString(m.label(ctrlResponse))
	b.WriteString("\n")
	b.WriteString(m.response.View())
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	body := renderPage(m.viewTabs(), b.String(), hotKeysHelp)

	if m.prompting {
		body += "\n\n" + m.prompt.View()
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) viewTabs() string {
	parts := []string{titleStyle.Render("EBANX PTP Tester")}
	for _, t := range tabs {
		style := inactiveTabStyle
		if t.mode == m.form.Mode {
			style = activeTabStyle
		}
		parts = append(parts, style.Render(t.label))
	}
	if m.sending {
		parts = append(parts, m.spinner.View())
	}
	return strings.Join(parts, " ")
}

func (m appModel) viewHeader() string {
	t := m.form.Toggles

	keyView := m.inputs[ctrlKey].View()
	if t.PrivacyMode && m.focus != ctrlKey {
		keyView = valueOrDash(payload.MaskAPIKey(t.APIKey))
	}

	var b strings.Builder
	b.WriteString(m.label(ctrlBaseURL) + ": " + m.inputs[ctrlBaseURL].View())
	b.WriteString("\n")
	b.WriteString(m.label(ctrlKey) + ": " + keyView)
	b.WriteString("\n")
	b.WriteString(m.label(ctrlSoftDescriptor) + ": " + checkbox(t.SoftDescriptorEnabled) + " " + m.inputs[ctrlSoftDescriptor].View())
	b.WriteString("    Privacy mode: " + checkbox(t.PrivacyMode))
	return b.String()
}

func (m appModel) viewProfile() string {
	picker := m.cardPick
	if m.form.Mode == models.ModeAPM {
		picker = m.apmPick
	}
	return m.label(ctrlProfile) + helpStyle.Render("  (up/down)") + "\n" + picker.View(m.focus == ctrlProfile)
}

func (m appModel) viewFields() string {
	var row []control
	if m.form.Mode == models.ModeAPM {
		row = []control{ctrlAPMName, ctrlAPMEmail, ctrlAPMPhone, ctrlAmount}
	} else {
		row = []control{ctrlCardNumber, ctrlCardName, ctrlCardDueDate, ctrlCardCVV, ctrlAmount}
	}

	parts := make([]string, 0, len(row))
	for _, c := range row {
		parts = append(parts, m.label(c)+": "+m.inputs[c].View())
	}
	return strings.Join(parts, "  ")
}

func (m appModel) label(c control) string {
	if m.focus == c {
		return focusLabelStyle.Render(controlLabels[c])
	}
	return controlLabels[c]
}

package tui

import (
	"slices"

	"github.com/MKhiriev/ptp-tester/internal/formsync"
	"github.com/MKhiriev/ptp-tester/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// control is a focusable element of the workbench.
type control int

const (
	ctrlBaseURL control = iota
	ctrlKey
	ctrlSoftDescriptor
	ctrlProfile
	ctrlCardNumber
	ctrlCardName
	ctrlCardDueDate
	ctrlCardCVV
	ctrlAPMName
	ctrlAPMEmail
	ctrlAPMPhone
	ctrlAmount
	ctrlPayload
	ctrlPTP
	ctrlResponse

	controlCount
)

var (
	cardControls = []control{
		ctrlBaseURL, ctrlKey, ctrlSoftDescriptor, ctrlProfile,
		ctrlCardNumber, ctrlCardName, ctrlCardDueDate, ctrlCardCVV, ctrlAmount,
		ctrlPayload, ctrlPTP, ctrlResponse,
	}
	apmControls = []control{
		ctrlBaseURL, ctrlKey, ctrlSoftDescriptor, ctrlProfile,
		ctrlAPMName, ctrlAPMEmail, ctrlAPMPhone, ctrlAmount,
		ctrlPayload, ctrlPTP, ctrlResponse,
	}
)

func controlsFor(mode models.Mode) []control {
	if mode == models.ModeAPM {
		return apmControls
	}
	return cardControls
}

// formFields maps form inputs to the synchronizer fields they edit.
var formFields = map[control]formsync.Field{
	ctrlCardNumber:  formsync.FieldCardNumber,
	ctrlCardName:    formsync.FieldCardName,
	ctrlCardDueDate: formsync.FieldCardDueDate,
	ctrlCardCVV:     formsync.FieldCardCVV,
	ctrlAPMName:     formsync.FieldAPMName,
	ctrlAPMEmail:    formsync.FieldAPMEmail,
	ctrlAPMPhone:    formsync.FieldAPMPhoneNumber,
	ctrlAmount:      formsync.FieldAmount,
}

var controlLabels = [controlCount]string{
	ctrlBaseURL:        "Base URL",
	ctrlKey:            "Integration key",
	ctrlSoftDescriptor: "Soft descriptor",
	ctrlProfile:        "Profile",
	ctrlCardNumber:     "Number",
	ctrlCardName:       "Name",
	ctrlCardDueDate:    "Due date",
	ctrlCardCVV:        "CVV",
	ctrlAPMName:        "Name",
	ctrlAPMEmail:       "Email",
	ctrlAPMPhone:       "Phone",
	ctrlAmount:         "Amount",
	ctrlPayload:        "Payload",
	ctrlPTP:            "PTP",
	ctrlResponse:       "Response",
}

func isInput(c control) bool {
	return c != ctrlProfile && c != ctrlPayload && c != ctrlResponse
}

func newInputs() [controlCount]textinput.Model {
	var inputs [controlCount]textinput.Model
	for c := range controlCount {
		if !isInput(c) {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.Width = 24
		inputs[c] = in
	}

	inputs[ctrlBaseURL].Width = 36
	inputs[ctrlKey].Width = 36
	inputs[ctrlSoftDescriptor].Width = 22
	inputs[ctrlCardNumber].Width = 20
	inputs[ctrlCardDueDate].Width = 8
	inputs[ctrlCardCVV].Width = 5
	inputs[ctrlAmount].Width = 10
	inputs[ctrlPTP].Placeholder = "filter"
	inputs[ctrlPTP].Width = 30
	return inputs
}

// setFocus moves focus to c, falling back to the profile picker when c does
// not exist in the current mode.
func (m *appModel) setFocus(c control) {
	if !slices.Contains(controlsFor(m.form.Mode), c) {
		c = ctrlProfile
	}

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.editor.Blur()

	switch {
	case isInput(c):
		m.inputs[c].Focus()
	case c == ctrlPayload:
		m.editor.Focus()
	}
	m.focus = c
}

func (m *appModel) cycleFocus(delta int) {
	order := controlsFor(m.form.Mode)
	i := slices.Index(order, m.focus)
	if i < 0 {
		i = 0
	}
	m.setFocus(order[(i+delta+len(order))%len(order)])
}

// writeFormInputs copies the synchronizer state into the form inputs. It
// never emits events.
func (m *appModel) writeFormInputs() {
	f := m.form.CardFields
	m.inputs[ctrlCardNumber].SetValue(f.Number)
	m.inputs[ctrlCardName].SetValue(f.Name)
	m.inputs[ctrlCardDueDate].SetValue(f.DueDate)
	m.inputs[ctrlCardCVV].SetValue(f.CVV)

	a := m.form.APMFields
	m.inputs[ctrlAPMName].SetValue(a.Name)
	m.inputs[ctrlAPMEmail].SetValue(a.Email)
	m.inputs[ctrlAPMPhone].SetValue(a.PhoneNumber)

	m.inputs[ctrlAmount].SetValue(m.form.Amount)
	m.inputs[ctrlSoftDescriptor].SetValue(m.form.Toggles.SoftDescriptor)
	m.inputs[ctrlKey].SetValue(m.form.Toggles.APIKey)
}

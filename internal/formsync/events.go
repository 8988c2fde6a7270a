package formsync

import "github.com/MKhiriev/ptp-tester/models"

// Event is a change coming from one side of the workbench. Form-side events
// rebuild the payload; [PayloadEdited] is the only payload-side event.
type Event interface {
	event()
}

// Field names an editable form field.
type Field int

const (
	FieldCardNumber Field = iota
	FieldCardName
	FieldCardDueDate
	FieldCardCVV
	FieldAPMName
	FieldAPMEmail
	FieldAPMPhoneNumber
	FieldAmount
)

// FormEdited is emitted when the operator types into a form field.
type FormEdited struct {
	Field Field
	Value string
}

// KeyEdited is emitted when the integration key changes.
type KeyEdited struct {
	Key string
}

// TogglesEdited is emitted when the soft descriptor or privacy toggles
// change. The integration key is carried by [KeyEdited].
type TogglesEdited struct {
	SoftDescriptor        string
	SoftDescriptorEnabled bool
	PrivacyMode           bool
}

// PayloadEdited is emitted when the operator edits the JSON text.
type PayloadEdited struct {
	Text string
}

// ProfileSelected is emitted when a card or APM profile is picked. Card is
// used in the card modes, APM in APM mode; either may be nil.
type ProfileSelected struct {
	Card     *models.CardProfile
	Customer models.CustomerTemplate
	APM      *models.APMProfile
}

// ModeSelected is emitted when the operator switches tabs.
type ModeSelected struct {
	Mode models.Mode
}

func (FormEdited) event()      {}
func (KeyEdited) event()       {}
func (TogglesEdited) event()   {}
func (PayloadEdited) event()   {}
func (ProfileSelected) event() {}
func (ModeSelected) event()    {}

package formsync

import (
	"errors"

	"github.com/MKhiriev/ptp-tester/internal/payload"
	"github.com/MKhiriev/ptp-tester/models"
)

// Effect tells the view what changed after an event.
type Effect struct {
	// Rewrite is set when the editor text must be replaced with Text.
	Rewrite bool
	Text    string

	// FormChanged is set when form fields or toggles were written from a
	// payload edit.
	FormChanged bool
	// KeyChanged is set when the integration key changed, from either side.
	KeyChanged bool

	// Invalid is set when a payload edit did not parse. State is unchanged.
	Invalid bool
	// Err carries a build or parse failure.
	Err error
}

// Reduce applies ev to s.
func Reduce(s State, ev Event) (State, Effect) {
	switch e := ev.(type) {
	case FormEdited:
		s.setField(e.Field, e.Value)
		return rebuild(s, Effect{})

	case KeyEdited:
		changed := s.Toggles.APIKey != e.Key
		s.Toggles.APIKey = e.Key
		return rebuild(s, Effect{KeyChanged: changed})

	case TogglesEdited:
		s.Toggles.SoftDescriptor = e.SoftDescriptor
		s.Toggles.SoftDescriptorEnabled = e.SoftDescriptorEnabled
		s.Toggles.PrivacyMode = e.PrivacyMode
		return rebuild(s, Effect{})

	case ProfileSelected:
		s.Card = e.Card
		s.Customer = e.Customer
		s.APM = e.APM
		s.Amount = ""
		s.loadProfileFields()
		return rebuild(s, Effect{})

	case ModeSelected:
		s.Mode = e.Mode
		s.Amount = ""
		s.loadProfileFields()
		return rebuild(s, Effect{})

	case PayloadEdited:
		return applyPayloadEdit(s, e.Text)
	}

	return s, Effect{}
}

// rebuild clears any hand edit and derives the payload from the form.
func rebuild(s State, eff Effect) (State, Effect) {
	s.override = nil

	res, err := payload.Build(s.input())
	if err != nil {
		eff.Err = err
		if errors.Is(err, payload.ErrNoProfile) {
			s.built = payload.Result{}
			s.text = ""
			eff.Rewrite = true
		}
		return s, eff
	}

	s.built = res
	s.text = res.Display.Pretty()
	eff.Rewrite = true
	eff.Text = s.text
	return s, eff
}

func applyPayloadEdit(s State, text string) (State, Effect) {
	parsed, err := models.ParsePayload(text)
	if err != nil {
		return s, Effect{Invalid: true, Err: err}
	}

	eff := Effect{FormChanged: true}
	ex := payload.Extract(s.Mode, parsed)

	if s.Mode.IsCard() && ex.Card != nil {
		fields := *ex.Card
		if s.Toggles.PrivacyMode {
			fields.Number = keepOriginal(fields.Number, s.CardFields.Number, payload.MaskCardNumber)
			fields.CVV = keepOriginal(fields.CVV, s.CardFields.CVV, payload.MaskCVV)
		}
		s.CardFields = fields
		restoreCard(parsed, fields)
	}
	if s.Mode == models.ModeAPM && ex.APM != nil {
		s.APMFields = *ex.APM
	}

	if ex.Amount != "" && ex.Amount != builtAmount(s) {
		s.Amount = ex.Amount
	}

	if key := ex.IntegrationKey; key != "" {
		if s.Toggles.PrivacyMode {
			key = keepOriginal(key, s.Toggles.APIKey, payload.MaskAPIKey)
		}
		if key != s.Toggles.APIKey {
			s.Toggles.APIKey = key
			eff.KeyChanged = true
		}
	}

	s.Toggles.SoftDescriptorEnabled = ex.HasSoftDescriptor
	if ex.HasSoftDescriptor {
		s.Toggles.SoftDescriptor = ex.SoftDescriptor
	}

	s.override = parsed
	return s, eff
}

// keepOriginal returns original when extracted is just its masked form.
func keepOriginal(extracted, original string, mask func(string) string) string {
	if original != "" && extracted != original && extracted == mask(original) {
		return original
	}
	return extracted
}

// restoreCard writes the unmasked card values back into p.
func restoreCard(p models.Payload, fields models.CardFields) {
	payment := p.Object(payload.KeyPayment)
	if payment == nil {
		return
	}
	card := payment.Object(payload.KeyCard)
	if card == nil {
		return
	}
	card[payload.KeyCardNumber] = fields.Number
	card[payload.KeyCardCVV] = fields.CVV
}

func builtAmount(s State) string {
	if s.built.Send == nil {
		return ""
	}
	return payload.Extract(s.Mode, s.built.Send).Amount
}

func (s *State) setField(f Field, v string) {
	switch f {
	case FieldCardNumber:
		s.CardFields.Number = v
	case FieldCardName:
		s.CardFields.Name = v
	case FieldCardDueDate:
		s.CardFields.DueDate = v
	case FieldCardCVV:
		s.CardFields.CVV = v
	case FieldAPMName:
		s.APMFields.Name = v
	case FieldAPMEmail:
		s.APMFields.Email = v
	case FieldAPMPhoneNumber:
		s.APMFields.PhoneNumber = v
	case FieldAmount:
		s.Amount = v
	}
}

// loadProfileFields fills the form from the active profile of the mode.
func (s *State) loadProfileFields() {
	if s.Card != nil {
		s.CardFields = s.Card.Fields()
	} else {
		s.CardFields = models.CardFields{}
	}

	s.APMFields = models.APMFields{}
	if s.APM != nil {
		if ex := payload.Extract(models.ModeAPM, s.APM.Payload); ex.APM != nil {
			s.APMFields = *ex.APM
		}
	}
}

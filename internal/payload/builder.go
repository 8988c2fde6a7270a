// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/ptp-tester/models"
	"github.com/shopspring/decimal"
)

// Input is everything a build depends on.
type Input struct {
	Mode models.Mode

	// Card and Customer are used in the card modes.
	Card       *models.CardProfile
	Customer   models.CustomerTemplate
	CardFields models.CardFields

	// APM is used in APM mode.
	APM       *models.APMProfile
	APMFields models.APMFields

	// Amount overrides the profile amount when not blank.
	Amount string

	Toggles models.Toggles
}

// Result holds the payload to dispatch and the payload to show.
type Result struct {
	Send    models.Payload
	Display models.Payload
}

// Build produces the request body for in.
func Build(in Input) (Result, error) {
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return Result{}, err
	}

	var send models.Payload
	switch {
	case in.Mode.IsCard() && in.Card != nil:
		send = buildCard(in, amount)
	case in.Mode == models.ModeAPM && in.APM != nil:
		send = buildAPM(in, amount)
	default:
		return Result{}, fmt.Errorf("%w for mode %s", ErrNoProfile, in.Mode)
	}

	send[KeyIntegrationKey] = integrationKey(in.Toggles.APIKey)
	applySoftDescriptor(softDescriptorTarget(in.Mode, send), in.Toggles)

	display := send
	if in.Toggles.PrivacyMode {
		display = Mask(in.Mode, send)
	}

	return Result{Send: send, Display: display}, nil
}

// Mask returns a copy of p with the card number, the CVV and the integration
// key masked.
func Mask(mode models.Mode, p models.Payload) models.Payload {
	masked := p.Clone()

	if key, ok := masked[KeyIntegrationKey].(string); ok && key != IntegrationKeyPlaceholder {
		masked[KeyIntegrationKey] = MaskAPIKey(key)
	}

	if mode.IsCard() {
		if card := cardObject(masked); card != nil {
			if number, ok := card[KeyCardNumber].(string); ok {
				card[KeyCardNumber] = MaskCardNumber(number)
			}
			if cvv, ok := card[KeyCardCVV].(string); ok {
				card[KeyCardCVV] = MaskCVV(cvv)
			}
		}
	}

	return masked
}

func buildCard(in Input, amount *json.Number) models.Payload {
	fields := trimCardFields(in.CardFields)

	if custom := in.Card.CustomPayloadFor(in.Mode); custom != nil {
		p := custom.Clone()
		if card := cardObject(p); card != nil {
			card[KeyCardNumber] = fields.Number
			card[KeyCardName] = fields.Name
			card[KeyCardDueDate] = fields.DueDate
			card[KeyCardCVV] = fields.CVV

			// a 3DS build borrowing the plain payload still forces 3DS
			if in.Mode == models.ModeCard3DS && len(in.Card.CustomPayload3DS) == 0 {
				setModeFlags(card, in.Mode)
			}
			if amount != nil {
				p.Object(KeyPayment)[KeyAmountTotal] = *amount
			}
			return p
		}
	}

	return synthesizeCard(in, fields, amount)
}

func synthesizeCard(in Input, fields models.CardFields, amount *json.Number) models.Payload {
	c := in.Customer

	total := c.DefaultAmount
	if total == "" {
		total = "0"
	}
	if amount != nil {
		total = *amount
	}

	card := map[string]any{
		KeyCardNumber:  fields.Number,
		KeyCardName:    fields.Name,
		KeyCardDueDate: fields.DueDate,
		KeyCardCVV:     fields.CVV,
	}
	setModeFlags(card, in.Mode)

	return models.Payload{
		KeyOperation: operationRequest,
		KeyPayment: map[string]any{
			KeyAmountTotal:  total,
			KeyCurrencyCode: c.CurrencyCode,
			KeyName:         c.Name,
			KeyEmail:        c.Email,
			KeyBirthDate:    c.BirthDate,
			KeyCountry:      c.Country,
			KeyPhoneNumber:  c.PhoneNumber,
			KeyCard:         card,
		},
	}
}

func buildAPM(in Input, amount *json.Number) models.Payload {
	p := in.APM.Payload.Clone()
	if p == nil {
		p = models.Payload{}
	}

	variant := DetectAPMVariant(p)
	target := variant.target(p)

	overlay := func(key, value string) {
		value = strings.TrimSpace(value)
		if _, present := target[key]; present || value != "" {
			target[key] = value
		}
	}
	overlay(KeyName, in.APMFields.Name)
	overlay(KeyEmail, in.APMFields.Email)
	overlay(KeyPhoneNumber, in.APMFields.PhoneNumber)

	if amount != nil {
		target[variant.AmountKey()] = *amount
	}

	return p
}

func setModeFlags(card map[string]any, mode models.Mode) {
	threeDS := mode == models.ModeCard3DS
	card[KeyAutoCapture] = !threeDS
	card[KeyThreeDSForce] = threeDS
}

func applySoftDescriptor(target models.Payload, t models.Toggles) {
	if target == nil {
		return
	}

	descriptor := strings.TrimSpace(t.SoftDescriptor)
	if t.SoftDescriptorEnabled && descriptor != "" {
		target[KeySoftDescriptor] = descriptor
		return
	}
	delete(target, KeySoftDescriptor)
}

// softDescriptorTarget returns the object that carries soft_descriptor.
func softDescriptorTarget(mode models.Mode, p models.Payload) models.Payload {
	if mode.IsCard() {
		return cardObject(p)
	}
	return DetectAPMVariant(p).target(p)
}

func cardObject(p models.Payload) models.Payload {
	payment := p.Object(KeyPayment)
	if payment == nil {
		return nil
	}
	return payment.Object(KeyCard)
}

func integrationKey(live string) string {
	if live = strings.TrimSpace(live); live != "" {
		return live
	}
	return IntegrationKeyPlaceholder
}

// parseAmount returns nil for a blank amount.
func parseAmount(s string) (*json.Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	n := json.Number(d.String())
	return &n, nil
}

func trimCardFields(f models.CardFields) models.CardFields {
	return models.CardFields{
		Number:  strings.TrimSpace(f.Number),
		Name:    strings.TrimSpace(f.Name),
		DueDate: strings.TrimSpace(f.DueDate),
		CVV:     strings.TrimSpace(f.CVV),
	}
}

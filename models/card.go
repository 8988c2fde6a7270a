// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CardProfile is a saved test card. A profile may carry a custom payload per
// card mode; when present the payload builder starts from it instead of
// synthesizing a request from the customer template.
type CardProfile struct {
	CardNumber       string  `json:"card_number"`
	CardName         string  `json:"card_name"`
	CardDueDate      string  `json:"card_due_date"`
	CardCVV          string  `json:"card_cvv"`
	Description      string  `json:"description"`
	CustomPayload    Payload `json:"custom_payload,omitempty"`
	CustomPayload3DS Payload `json:"custom_payload_3ds,omitempty"`
}

// Fields returns the editable card fields of the profile.
func (c CardProfile) Fields() CardFields {
	return CardFields{
		Number:  c.CardNumber,
		Name:    c.CardName,
		DueDate: c.CardDueDate,
		CVV:     c.CardCVV,
	}
}

// WithFields returns a copy of c with the card fields replaced by f.
func (c CardProfile) WithFields(f CardFields) CardProfile {
	c.CardNumber = f.Number
	c.CardName = f.Name
	c.CardDueDate = f.DueDate
	c.CardCVV = f.CVV
	return c
}

// CustomPayloadFor returns the saved custom payload for mode. 3DS mode falls
// back to the plain custom payload.
func (c CardProfile) CustomPayloadFor(mode Mode) Payload {
	if mode == ModeCard3DS && len(c.CustomPayload3DS) > 0 {
		return c.CustomPayload3DS
	}
	if len(c.CustomPayload) > 0 {
		return c.CustomPayload
	}
	return nil
}

// SetCustomPayload stores p as the custom payload for mode.
func (c *CardProfile) SetCustomPayload(mode Mode, p Payload) {
	if mode == ModeCard3DS {
		c.CustomPayload3DS = p
		return
	}
	c.CustomPayload = p
}

// CustomerTemplate holds per-country defaults used when a payload is
// synthesized from scratch.
type CustomerTemplate struct {
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	PhoneNumber   string      `json:"phone_number"`
	BirthDate     string      `json:"birth_date"`
	Country       string      `json:"country"`
	CurrencyCode  string      `json:"currency_code"`
	DefaultAmount json.Number `json:"default_amount"`
}

// CountryProfile is one top-level entry of the card catalog file. Keys other
// than customer_data and debitcard are kept in Extra and written back
// unchanged.
type CountryProfile struct {
	CustomerData CustomerTemplate
	DebitCard    map[string][]CardProfile
	Extra        map[string]json.RawMessage
}

const (
	countryKeyCustomer  = "customer_data"
	countryKeyDebitCard = "debitcard"
)

// UnmarshalJSON implements [json.Unmarshaler].
func (c *CountryProfile) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*c = CountryProfile{}
	if v, ok := raw[countryKeyCustomer]; ok {
		if err := unmarshalUseNumber(v, &c.CustomerData); err != nil {
			return fmt.Errorf("decode %s: %w", countryKeyCustomer, err)
		}
		delete(raw, countryKeyCustomer)
	}
	if v, ok := raw[countryKeyDebitCard]; ok {
		if err := unmarshalUseNumber(v, &c.DebitCard); err != nil {
			return fmt.Errorf("decode %s: %w", countryKeyDebitCard, err)
		}
		delete(raw, countryKeyDebitCard)
	}
	if len(raw) > 0 {
		c.Extra = raw
	}
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (c CountryProfile) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+2)
	for k, v := range c.Extra {
		out[k] = v
	}
	out[countryKeyCustomer] = c.CustomerData
	if c.DebitCard != nil {
		out[countryKeyDebitCard] = c.DebitCard
	}
	return json.Marshal(out)
}

// CardCatalog is the decoded card catalog file keyed by country code.
type CardCatalog map[string]CountryProfile

// CardEntry is a card profile with its synthetic identity and location in the
// catalog.
type CardEntry struct {
	ID      string
	Country string
	Brand   string
	Card    CardProfile
}

// Display returns the label used in card pickers.
func (e CardEntry) Display() string {
	return e.Country + " – " + e.Card.Description
}

// CardFields are the live card values edited in the form.
type CardFields struct {
	Number  string
	Name    string
	DueDate string
	CVV     string
}

func unmarshalUseNumber(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode(v)
}

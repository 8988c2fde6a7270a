// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package formsync keeps the form fields and the JSON payload of the
// workbench consistent. It is a reducer: [Reduce] takes the current [State]
// and one [Event] and returns the next state plus an [Effect] telling the
// view what to redraw. Nothing in here calls back into itself, so no guard
// against feedback loops is needed.
package formsync

import (
	"errors"

	"github.com/MKhiriev/ptp-tester/internal/payload"
	"github.com/MKhiriev/ptp-tester/models"
)

// ErrNothingToSend is returned by [State.Outgoing] when neither a built nor
// a hand-edited payload exists.
var ErrNothingToSend = errors.New("no payload to send")

// State is the form, the active profiles and the derived payload.
type State struct {
	Mode models.Mode

	Card     *models.CardProfile
	Customer models.CustomerTemplate
	APM      *models.APMProfile

	CardFields models.CardFields
	APMFields  models.APMFields
	Amount     string

	Toggles models.Toggles

	built    payload.Result
	text     string
	override models.Payload
}

// NewState returns a state for mode with the given toggles and nothing
// selected.
func NewState(mode models.Mode, toggles models.Toggles) State {
	return State{Mode: mode, Toggles: toggles}
}

// Text returns the payload text as last written to the editor by a rebuild.
func (s State) Text() string {
	return s.text
}

// HasOverride reports whether a hand-edited payload is in effect.
func (s State) HasOverride() bool {
	return s.override != nil
}

// Built returns the result of the last rebuild.
func (s State) Built() payload.Result {
	return s.built
}

// Outgoing returns the payload to dispatch: the hand-edited payload when one
// is in effect, else the last built payload. The integration key always
// comes from the live key.
func (s State) Outgoing() (models.Payload, error) {
	if s.override != nil {
		out := s.override.Clone()
		key := s.Toggles.APIKey
		if key == "" {
			key = payload.IntegrationKeyPlaceholder
		}
		out[payload.KeyIntegrationKey] = key
		return out, nil
	}

	if s.built.Send == nil {
		return nil, ErrNothingToSend
	}
	return s.built.Send.Clone(), nil
}

func (s State) input() payload.Input {
	return payload.Input{
		Mode:       s.Mode,
		Card:       s.Card,
		Customer:   s.Customer,
		CardFields: s.CardFields,
		APM:        s.APM,
		APMFields:  s.APMFields,
		Amount:     s.Amount,
		Toggles:    s.Toggles,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Preferences are the operator settings persisted between sessions.
// The zero value is a valid "nothing stored yet" state.
type Preferences struct {
	IntegrationKey        string `json:"integration_key,omitempty"`
	BaseURL               string `json:"base_url,omitempty"`
	SoftDescriptor        string `json:"soft_descriptor,omitempty"`
	SoftDescriptorEnabled bool   `json:"soft_descriptor_enabled,omitempty"`
	PrivacyMode           bool   `json:"privacy_mode,omitempty"`
	// LastCard and LastAPM hold picker labels. Catalog IDs are reassigned on
	// every load and cannot be persisted.
	LastCard string `json:"last_card,omitempty"`
	LastAPM  string `json:"last_apm,omitempty"`
	LastPTP  string `json:"last_ptp,omitempty"`
	LastMode string `json:"last_mode,omitempty"`
}

// Toggles are the global switches that apply to every built payload.
type Toggles struct {
	APIKey                string
	SoftDescriptor        string
	SoftDescriptorEnabled bool
	PrivacyMode           bool
}

// Toggles returns the toggle subset of the preferences.
func (p Preferences) Toggles() Toggles {
	return Toggles{
		APIKey:                p.IntegrationKey,
		SoftDescriptor:        p.SoftDescriptor,
		SoftDescriptorEnabled: p.SoftDescriptorEnabled,
		PrivacyMode:           p.PrivacyMode,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// APMProfile is a saved alternative payment method request template.
type APMProfile struct {
	Description string  `json:"description"`
	Payload     Payload `json:"payload"`
}

// APMCatalog is the decoded APM catalog file:
// country → payment method → profile name → profile.
type APMCatalog map[string]map[string]map[string]APMProfile

// APMEntry is an APM profile with its synthetic identity and location in the
// catalog.
type APMEntry struct {
	ID      string
	Country string
	Method  string
	Name    string
	Profile APMProfile
}

// Display returns the label used in APM pickers.
func (e APMEntry) Display() string {
	label := e.Country + " – " + e.Method + "/" + e.Name
	if e.Profile.Description != "" {
		label += " – " + e.Profile.Description
	}
	return label
}

// APMFields are the live APM values edited in the form.
type APMFields struct {
	Name        string
	Email       string
	PhoneNumber string
}

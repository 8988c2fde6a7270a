package service

import (
	"context"

	"github.com/MKhiriev/ptp-tester/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ProfileService owns the in-memory card and APM catalogs and the PTP list
// and writes changes back through the profile repository.
type ProfileService interface {
	// Load reads all profile files. It must succeed before anything else is
	// called.
	Load(ctx context.Context) error
	// ReloadCards replaces the card catalog with the file contents. IDs are
	// reassigned.
	ReloadCards(ctx context.Context) error

	Cards() []models.CardEntry
	Card(id string) (models.CardEntry, error)
	Customer(country string) models.CustomerTemplate

	APMs() []models.APMEntry
	APM(id string) (models.APMEntry, error)

	PTPs() []string
	// FilterPTPs returns the PTPs containing query (case-insensitive) and the
	// entry to select: current when it survived the filter, else the first.
	FilterPTPs(query, current string) ([]string, string)

	// SaveExistingCard stores fields on the card and, when payload is not
	// nil, stores payload as the card's custom payload for mode.
	SaveExistingCard(ctx context.Context, id string, fields models.CardFields, mode models.Mode, payload models.Payload) (models.CardEntry, error)
	// SaveNewCard appends a card next to the reference card.
	SaveNewCard(ctx context.Context, refID, description string, fields models.CardFields, mode models.Mode, payload models.Payload) (models.CardEntry, error)
	DeleteCard(ctx context.Context, id string) error

	// SaveAPMPayload stores payload on the APM profile.
	SaveAPMPayload(ctx context.Context, id string, payload models.Payload) (models.APMEntry, error)
}

// PreferencesService loads and stores operator preferences.
type PreferencesService interface {
	Load(ctx context.Context) models.Preferences
	Save(ctx context.Context, prefs models.Preferences) error
}

// RequestService validates and dispatches requests.
type RequestService interface {
	// Prepare validates in and returns the request to dispatch.
	Prepare(in models.RequestDraft) (models.DirectRequest, error)
	// Curl renders req as a cURL command. display has the card number, the
	// CVV and the integration key masked when privacy is set; clipboard is
	// always the real command.
	Curl(req models.DirectRequest, mode models.Mode, privacy bool) (display, clipboard string)
	// Send dispatches req in the background. The channel receives exactly
	// one outcome.
	Send(ctx context.Context, req models.DirectRequest) (<-chan models.DirectOutcome, error)
	Busy() bool
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

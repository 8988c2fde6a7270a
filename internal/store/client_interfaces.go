package store

import (
	"context"

	"github.com/MKhiriev/ptp-tester/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ProfileRepository reads and writes the operator's flat profile files.
type ProfileRepository interface {
	LoadCards(ctx context.Context) (models.CardCatalog, error)
	SaveCards(ctx context.Context, catalog models.CardCatalog) error
	LoadAPMs(ctx context.Context) (models.APMCatalog, error)
	SaveAPMs(ctx context.Context, catalog models.APMCatalog) error
	LoadPTPs(ctx context.Context) ([]string, error)
}

// PreferencesRepository persists operator preferences. Load never fails:
// a missing or broken file yields zero-valued preferences.
type PreferencesRepository interface {
	Load(ctx context.Context) models.Preferences
	Save(ctx context.Context, prefs models.Preferences) error
}

// IDGenerator hands out synthetic catalog entry identifiers.
type IDGenerator interface {
	Generate() string
}

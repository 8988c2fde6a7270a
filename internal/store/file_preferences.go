package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/models"
)

type filePreferencesRepository struct {
	path   string
	logger *logger.Logger
}

// NewFilePreferencesRepository constructs a [PreferencesRepository] backed
// by the JSON file at path.
func NewFilePreferencesRepository(path string, logger *logger.Logger) PreferencesRepository {
	return &filePreferencesRepository{
		path:   path,
		logger: logger.WithComponent("preferences-repository"),
	}
}

// Load returns the stored preferences. Any read or decode problem is logged
// and reported as empty preferences.
func (r *filePreferencesRepository) Load(_ context.Context) models.Preferences {
	var prefs models.Preferences

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug().Str("path", r.path).Msg("no stored preferences")
		return prefs
	}
	if err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("could not read preferences, using defaults")
		return prefs
	}

	if err := json.Unmarshal(data, &prefs); err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("malformed preferences, using defaults")
		return models.Preferences{}
	}

	return prefs
}

// Save overwrites the preferences file.
func (r *filePreferencesRepository) Save(ctx context.Context, prefs models.Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeJSON(r.path, prefs); err != nil {
		r.logger.Err(err).Str("path", r.path).Msg("saving preferences failed")
		return err
	}
	return nil
}

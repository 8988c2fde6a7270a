package store

import (
	"github.com/MKhiriev/ptp-tester/internal/config"
	"github.com/MKhiriev/ptp-tester/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// ProfileRepository serves the card catalog, the APM catalog and the PTP
	// list.
	ProfileRepository ProfileRepository
	// PreferencesRepository serves the persisted operator preferences.
	PreferencesRepository PreferencesRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. Nothing is read from disk here; files are opened
// on the first load.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) *ClientStorages {
	logger.Info().Msg("creating new storages...")

	return &ClientStorages{
		ProfileRepository:     NewFileProfileRepository(cfg, logger),
		PreferencesRepository: NewFilePreferencesRepository(cfg.PreferencesPath, logger),
	}
}

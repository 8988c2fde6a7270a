package service

import (
	"github.com/MKhiriev/ptp-tester/internal/config"
	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/internal/store"
	"github.com/MKhiriev/ptp-tester/internal/workers"
	"github.com/MKhiriev/ptp-tester/models"
)

// ClientServices groups the services used by the terminal UI.
type ClientServices struct {
	ProfileService     ProfileService
	PreferencesService PreferencesService
	RequestService     RequestService
	AppInfoService     AppInfoService
}

// NewClientServices wires the services over the storages and the dispatcher.
func NewClientServices(
	storages *store.ClientStorages,
	dispatcher *workers.Dispatcher,
	ids store.IDGenerator,
	adapterCfg config.ClientAdapter,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		ProfileService:     NewProfileService(storages.ProfileRepository, ids, logger),
		PreferencesService: NewPreferencesService(storages.PreferencesRepository, adapterCfg.BaseURL),
		RequestService:     NewRequestService(dispatcher, logger),
		AppInfoService:     NewAppInfoService(buildInfo, logger),
	}
}

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultDotEnvPath      = ".env"
	defaultDataDir         = "data"
	defaultCardsFile       = "test-cards.json"
	defaultAPMFile         = "apm-profiles.json"
	defaultPTPFile         = "ptp-list.txt"
	defaultBaseURL         = "https://api.ebanx.com/"
	defaultRequestTimeout  = 30 * time.Second
	defaultUserAgent       = "EBANX-PTP-Tester/TUI"
	defaultLogDir          = "logs"
	defaultPreferencesDir  = ".ebanx_ptp_tester"
	defaultPreferencesFile = "config.json"
)

// applyDefaults fills every zero-valued field that has a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogDir == "" {
		cfg.App.LogDir = defaultLogDir
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = defaultDataDir
	}
	if cfg.Storage.CardsFile == "" {
		cfg.Storage.CardsFile = defaultCardsFile
	}
	if cfg.Storage.APMFile == "" {
		cfg.Storage.APMFile = defaultAPMFile
	}
	if cfg.Storage.PTPFile == "" {
		cfg.Storage.PTPFile = defaultPTPFile
	}
	if cfg.Storage.PreferencesFile == "" {
		cfg.Storage.PreferencesFile = defaultPreferencesPath()
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = defaultBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.UserAgent == "" {
		cfg.Adapter.UserAgent = defaultUserAgent
	}
}

func defaultPreferencesPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(defaultPreferencesDir, defaultPreferencesFile)
	}
	return filepath.Join(home, defaultPreferencesDir, defaultPreferencesFile)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from a .env
// file, environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log directory.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the profile catalogs, the PTP list and
	// the persisted preferences.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for the outbound payment API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level configuration values.
type App struct {
	// LogDir is the directory that receives the daily log files.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`

	// Debug keeps debug-level entries in the log file.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`
}

// Storage holds the flat-file locations. Relative file names are resolved
// against DataDir.
type Storage struct {
	// DataDir is the directory holding the catalog files.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// CardsFile is the card catalog file name or path.
	// Env: STORAGE_CARDS_FILE
	CardsFile string `env:"CARDS_FILE"`

	// APMFile is the APM catalog file name or path.
	// Env: STORAGE_APM_FILE
	APMFile string `env:"APM_FILE"`

	// PTPFile is the newline-delimited PTP list file name or path.
	// Env: STORAGE_PTP_FILE
	PTPFile string `env:"PTP_FILE"`

	// PreferencesFile is the path of the persisted operator preferences.
	// It is not resolved against DataDir.
	// Env: STORAGE_PREFERENCES_FILE
	PreferencesFile string `env:"PREFERENCES_FILE"`
}

// Adapter holds settings for the payment API client.
type Adapter struct {
	// BaseURL is the API root used when no base URL is stored in the
	// preferences.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single dispatch (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. args are the command-line arguments without the program name.
//
// Returns the merged *StructuredConfig with defaults applied, or an error if
// any source fails to load or the result fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

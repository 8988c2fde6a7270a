package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// ClientStorage holds resolved file paths used by the profile and
// preference stores.
type ClientStorage struct {
	CardsPath       string
	APMPath         string
	PTPPath         string
	PreferencesPath string
}

// ClientAdapter holds network settings used by the dispatcher.
type ClientAdapter struct {
	// BaseURL is the fallback API root.
	BaseURL string
	// RequestTimeout is the fixed per-request timeout.
	RequestTimeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
}

// ClientApp holds process-level settings.
type ClientApp struct {
	LogDir string
	Debug  bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration view from
// the merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.client(), nil
}

func (cfg *StructuredConfig) client() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogDir: cfg.App.LogDir,
			Debug:  cfg.App.Debug,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UserAgent:      cfg.Adapter.UserAgent,
		},
		Storage: ClientStorage{
			CardsPath:       resolve(cfg.Storage.DataDir, cfg.Storage.CardsFile),
			APMPath:         resolve(cfg.Storage.DataDir, cfg.Storage.APMFile),
			PTPPath:         resolve(cfg.Storage.DataDir, cfg.Storage.PTPFile),
			PreferencesPath: cfg.Storage.PreferencesFile,
		},
	}
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

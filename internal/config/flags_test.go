package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFlags_All(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-c", "cfg.json",
		"-data-dir", "dd",
		"-cards", "cards.json",
		"-apms", "apms.json",
		"-ptps", "ptps.txt",
		"-prefs", "prefs.json",
		"-base-url", "https://sandbox.ebanx.com/",
		"-timeout", "45s",
		"-user-agent", "ua",
		"-log-dir", "ll",
		"-debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "dd", cfg.Storage.DataDir)
	assert.Equal(t, "cards.json", cfg.Storage.CardsFile)
	assert.Equal(t, "apms.json", cfg.Storage.APMFile)
	assert.Equal(t, "ptps.txt", cfg.Storage.PTPFile)
	assert.Equal(t, "prefs.json", cfg.Storage.PreferencesFile)
	assert.Equal(t, "https://sandbox.ebanx.com/", cfg.Adapter.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "ua", cfg.Adapter.UserAgent)
	assert.Equal(t, "ll", cfg.App.LogDir)
	assert.True(t, cfg.App.Debug)
}

func TestParseFlags_BadDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-timeout", "later"})
	assert.Error(t, err)
}

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences_MissingFileYieldsDefaults(t *testing.T) {
	repo := NewFilePreferencesRepository(filepath.Join(t.TempDir(), "nope.json"), logger.Nop())

	assert.Equal(t, models.Preferences{}, repo.Load(context.Background()))
}

func TestPreferences_MalformedFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFilePreferencesRepository(path, logger.Nop())
	assert.Equal(t, models.Preferences{}, repo.Load(context.Background()))
}

func TestPreferences_SaveCreatesDirectoryAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ebanx_ptp_tester", "config.json")
	repo := NewFilePreferencesRepository(path, logger.Nop())
	ctx := context.Background()

	want := models.Preferences{
		IntegrationKey:        "test_ik_123456789",
		BaseURL:               "https://sandbox.ebanx.com/",
		SoftDescriptor:        "SHOP*TEST",
		SoftDescriptorEnabled: true,
		PrivacyMode:           true,
		LastPTP:               "ptp-a",
		LastMode:              "card_3ds",
	}
	require.NoError(t, repo.Save(ctx, want))

	assert.Equal(t, want, repo.Load(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `  "integration_key": "test_ik_123456789"`)
}

func TestPreferences_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// parent "directory" is a regular file
	repo := NewFilePreferencesRepository(filepath.Join(blocker, "config.json"), logger.Nop())
	err := repo.Save(context.Background(), models.Preferences{BaseURL: "x"})
	assert.ErrorIs(t, err, ErrWritingFile)
}

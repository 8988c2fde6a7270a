package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetStructuredConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "test-cards.json", cfg.Storage.CardsFile)
	assert.Equal(t, "apm-profiles.json", cfg.Storage.APMFile)
	assert.Equal(t, "ptp-list.txt", cfg.Storage.PTPFile)
	assert.True(t, filepath.IsAbs(cfg.Storage.PreferencesFile) ||
		cfg.Storage.PreferencesFile == filepath.Join(".ebanx_ptp_tester", "config.json"))
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "https://api.ebanx.com/", cfg.Adapter.BaseURL)
	assert.Equal(t, "logs", cfg.App.LogDir)
}

func TestGetStructuredConfig_EnvOverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DATA_DIR", "/srv/ptp")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")
	t.Setenv("APP_DEBUG", "true")

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "/srv/ptp", cfg.Storage.DataDir)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.App.Debug)
}

func TestGetStructuredConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	jsonPath := writeFile(t, dir, "cfg.json", `{
		"adapter": {"base_url": "https://sandbox.ebanx.com/", "request_timeout": "12s"}
	}`)

	t.Setenv("ADAPTER_BASE_URL", "http://env.local/")
	t.Setenv("ADAPTER_USER_AGENT", "from-env")
	t.Setenv("APP_LOG_DIR", "env-logs")

	cfg, err := GetStructuredConfig([]string{
		"-config", jsonPath,
		"-base-url", "http://flags.local/",
		"-log-dir", "flag-logs",
	})
	require.NoError(t, err)

	// env < flags < json
	assert.Equal(t, "https://sandbox.ebanx.com/", cfg.Adapter.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "flag-logs", cfg.App.LogDir)
	assert.Equal(t, "from-env", cfg.Adapter.UserAgent)
}

func TestGetStructuredConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "STORAGE_PTP_FILE=ptps-from-dotenv.txt\n")
	t.Cleanup(func() { os.Unsetenv("STORAGE_PTP_FILE") })

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "ptps-from-dotenv.txt", cfg.Storage.PTPFile)
}

func TestGetStructuredConfig_DotEnvDoesNotOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "STORAGE_APM_FILE=dotenv.json\n")
	t.Setenv("STORAGE_APM_FILE", "env.json")

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "env.json", cfg.Storage.APMFile)
}

func TestGetStructuredConfig_MissingJSONFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := GetStructuredConfig([]string{"-c", "does-not-exist.json"})
	assert.Error(t, err)
}

func TestGetStructuredConfig_InvalidBaseURL(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := GetStructuredConfig([]string{"-base-url", "ftp://nowhere"})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetStructuredConfig_UnknownFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := GetStructuredConfig([]string{"-no-such-flag"})
	assert.Error(t, err)
}

func TestGetClientConfig_ResolvesPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := GetClientConfig([]string{
		"-data-dir", "fixtures",
		"-cards", "/abs/cards.json",
		"-prefs", "prefs.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "/abs/cards.json", cfg.Storage.CardsPath)
	assert.Equal(t, filepath.Join("fixtures", "apm-profiles.json"), cfg.Storage.APMPath)
	assert.Equal(t, filepath.Join("fixtures", "ptp-list.txt"), cfg.Storage.PTPPath)
	// preferences path is used as given
	assert.Equal(t, "prefs.json", cfg.Storage.PreferencesPath)
	assert.Equal(t, "EBANX-PTP-Tester/TUI", cfg.Adapter.UserAgent)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("TURSO_DATABASE_URL", "")
	t.Setenv("FORJA_DATABASE_URL", "")
	t.Setenv("FORJA_LOG_LEVEL", "")
	t.Setenv("DEV_MODE", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Remote.TimeoutSeconds)
	assert.Equal(t, 1000, cfg.Session.TickMillis)
	assert.Contains(t, cfg.DB.URL, "forja.db")
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	t.Setenv("TURSO_DATABASE_URL", "")
	t.Setenv("FORJA_DATABASE_URL", "")
	t.Setenv("DEV_MODE", "")
	t.Setenv("FORJA_LOG_LEVEL", "DEBUG")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[database]
url = "libsql://gym.turso.io"
quota_bytes = 4096

[log]
level = "info"
file = "/tmp/forja"

[remote]
quote_api_url = "https://quotes.example/random"
timeout_seconds = 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "libsql://gym.turso.io", cfg.DB.URL)
	assert.Equal(t, 4096, cfg.DB.QuotaBytes)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/forja", cfg.Log.File)
	assert.Equal(t, "https://quotes.example/random", cfg.Remote.QuoteAPIURL)
	assert.Equal(t, 2, cfg.Remote.TimeoutSeconds)
	// Untouched sections keep their defaults.
	assert.Equal(t, 1000, cfg.Session.TickMillis)
}

func TestLoadConfig_DevMode(t *testing.T) {
	t.Setenv("FORJA_DATABASE_URL", "libsql://remote")
	t.Setenv("DEV_MODE", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "./local.db", cfg.DB.URL)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database\nurl = "), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Setenv("TURSO_DATABASE_URL", "")
	t.Setenv("FORJA_DATABASE_URL", "")
	t.Setenv("FORJA_LOG_LEVEL", "")
	t.Setenv("DEV_MODE", "")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.DB.URL = "/data/forja.db"
	cfg.Log.Level = "error"
	require.NoError(t, Write(path, cfg))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SYSTEMET_API_KEY", "abc123")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "abc123", cfg.Systemet.APIKey)
	assert.Equal(t, "https://api-extern.systembolaget.se", cfg.Systemet.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Systemet.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 2*time.Minute, cfg.Sync.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SYSTEMET_API_KEY", "abc123")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SYSTEMET_TIMEOUT", "5s")
	t.Setenv("DB_NAME", "mirror")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Systemet.Timeout)
	assert.Equal(t, "mirror", cfg.Database.Name)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("SYSTEMET_API_KEY", "")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("SYSTEMET_API_KEY", "abc123")
	t.Setenv("SYNC_TIMEOUT", "soon")

	_, err := Load()

	assert.Error(t, err)
}

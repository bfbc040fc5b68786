package config_test

import (
	"testing"

	"novel-hub/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "covers", cfg.Storage.Bucket)
	assert.Equal(t, 1200, cfg.Sync.FreshnessMinutes)
	assert.Equal(t, 60, cfg.Cache.RankTTLMinutes)
	assert.Equal(t, "novelhub.bleve", cfg.Index.Path)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SYNC_FRESHNESS_MINUTES", "30")
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Sync.FreshnessMinutes)
	assert.Equal(t, "9999", cfg.Server.Port)
}

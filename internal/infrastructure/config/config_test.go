package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "StockRoom", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "inventory.json", cfg.Storage.File)
	assert.True(t, cfg.Storage.LoadOnStart)
	assert.True(t, cfg.Storage.SaveOnStop)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_FILE", "warehouse.json")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warehouse.json", cfg.Storage.File)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "tape")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresSecretWhenAuthEnabled(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "stock",
		Password: "pw",
		Name:     "stockroom",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=stock password=pw dbname=stockroom sslmode=disable",
		cfg.GetDSN(),
	)
}

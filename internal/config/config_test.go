package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "payments", cfg.Tables.Payments)
	assert.Equal(t, "clients", cfg.Tables.Clients)
	assert.Equal(t, "https://api.cucuru.com/app/v1", cfg.Cucuru.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Cucuru.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Reversal.Delay)
	assert.Equal(t, time.Second, cfg.Reversal.PollInterval)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "linkpago:reversals", cfg.Redis.Key)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PAYMENTS_TABLE", "links")
	t.Setenv("CUCURU_BASE_URL", "http://cucuru.local/app/v1/")
	t.Setenv("REVERSAL_DELAY", "250ms")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "links", cfg.Tables.Payments)
	assert.Equal(t, "http://cucuru.local/app/v1", cfg.Cucuru.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Reversal.Delay)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_MockFlags(t *testing.T) {
	t.Run("cucuru mock", func(t *testing.T) {
		t.Setenv("CUCURU_MOCK", "true")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Cucuru.Mock)
	})

	t.Run("legacy gateway mock flag", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Cucuru.Mock)
	})
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("REVERSAL_DELAY", "0s")
	_, err := Load()
	assert.ErrorContains(t, err, "REVERSAL_DELAY")
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkpago.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7000\"\nclients_table: merchants\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7001")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7001", cfg.Server.Port, "environment wins over file")
	assert.Equal(t, "merchants", cfg.Tables.Clients)
}

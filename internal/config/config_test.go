package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "simulated", cfg.Broker.Mode)
	assert.Equal(t, float64(100000), cfg.Broker.SimulatedStartingCash)
	assert.Equal(t, 15*time.Second, cfg.Trading.BackendTimeout)
	assert.False(t, cfg.Trading.LossGuard)
	assert.Equal(t, 5*time.Minute, cfg.Trading.SyncInterval)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TRADING_LOSS_GUARD", "true")
	t.Setenv("TRADING_BACKEND_TIMEOUT", "30s")
	t.Setenv("DB_MAX_CONNECTIONS", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Trading.LossGuard)
	assert.Equal(t, 30*time.Second, cfg.Trading.BackendTimeout)
	assert.Equal(t, 50, cfg.Database.MaxConnections)
}

func TestLoad_LiveModeRequiresCredentials(t *testing.T) {
	t.Setenv("BROKER_MODE", "live")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_LiveModeWithCredentials(t *testing.T) {
	t.Setenv("BROKER_MODE", "live")
	t.Setenv("BROKER_BASE_URL", "https://paper-api.example.com")
	t.Setenv("BROKER_API_KEY", "key")
	t.Setenv("BROKER_API_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "live", cfg.Broker.Mode)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "stashvest_user",
		Password: "secret",
		Name:     "stashvest_db",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=stashvest_user password=secret dbname=stashvest_db sslmode=disable",
		cfg.DSN())
}

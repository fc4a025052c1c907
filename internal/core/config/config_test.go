package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the env vars without which Load fails.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("UPS_CLIENT_ID", "test_client_id")
	t.Setenv("UPS_CLIENT_SECRET", "test_client_secret")
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("BATCH_CONCURRENCY")
	os.Unsetenv("NOMINATIM_URL")
	setRequiredEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 10, cfg.BatchConcurrency)
	assert.Equal(t, 86400, cfg.ResultTTLSeconds)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocoder.BaseURL)
	assert.Equal(t, "greenboard", cfg.Geocoder.UserAgent)
	assert.Equal(t, 3, cfg.Geocoder.MaxRetries)
	assert.Equal(t, 1000, cfg.Geocoder.RetryDelayMs)
	assert.Equal(t, "https://onlinetools.ups.com", cfg.UPS.BaseURL)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BATCH_CONCURRENCY", "4")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("NOMINATIM_URL", "https://nominatim.example.test")
	t.Setenv("GEOCODER_MAX_RETRIES", "1")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 4, cfg.BatchConcurrency)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, "https://nominatim.example.test", cfg.Geocoder.BaseURL)
	assert.Equal(t, 1, cfg.Geocoder.MaxRetries)
	assert.Equal(t, "test_client_id", cfg.UPS.ClientID)
}

// TestLoad_MissingRequired verifies that missing required fields fail loading.
func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("UPS_CLIENT_ID")
	os.Unsetenv("UPS_CLIENT_SECRET")

	cfg, err := Load(".")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required configuration")
}

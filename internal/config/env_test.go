// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_SESSION_TTL": "168h",
		"APP_OFFLINE":     "true",
		"APP_VERSION":     "1.2.3",

		"ADAPTER_BASE_URL":        "https://api.example.org",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/lib/paperdesk/paperdesk.db",

		"WORKERS_USAGE_FLUSH_INTERVAL": "1m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, 168*time.Hour, cfg.App.SessionTTL)
	assert.True(t, cfg.App.Offline)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://api.example.org", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/paperdesk/paperdesk.db", cfg.Storage.DB.DSN)

	assert.Equal(t, time.Minute, cfg.Workers.UsageFlushInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_BASE_URL": "http://localhost:8080",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.App.SessionTTL)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_SESSION_TTL": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

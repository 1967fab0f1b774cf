// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_ADDRESS":         "https://api.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_RPS":             "2.5",
		"ADAPTER_BURST":           "4",
		"ADAPTER_WIRE_STYLE":      "pascal",

		"STORAGE_DB_DSN":   "/var/lib/pet-tracker/client.db",
		"STORAGE_SEAL_KEY": "s3cret",

		"SYNC_ROLLBACK_ON_FAILURE":         "true",
		"WORKERS_PROFILE_REFRESH_INTERVAL": "10m",

		"LOG_DIR":   "/var/log/pet-tracker",
		"LOG_LEVEL": "debug",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2.5, cfg.Adapter.RequestsPerSecond)
	assert.Equal(t, 4, cfg.Adapter.Burst)
	assert.Equal(t, "pascal", cfg.Adapter.WireStyle)
	assert.Equal(t, "/var/lib/pet-tracker/client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "s3cret", cfg.Storage.SealKey)
	assert.True(t, cfg.Sync.RollbackOnFailure)
	assert.Equal(t, 10*time.Minute, cfg.Workers.ProfileRefreshInterval)
	assert.Equal(t, "/var/log/pet-tracker", cfg.Log.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(p, []byte("PET_TRACKER_TEST_DOTENV=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PET_TRACKER_TEST_DOTENV") })

	require.NoError(t, loadDotEnv(p, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("PET_TRACKER_TEST_DOTENV"))
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(p, []byte("PET_TRACKER_TEST_KEEP=from-file\n"), 0o600))
	t.Setenv("PET_TRACKER_TEST_KEEP", "from-env")

	require.NoError(t, loadDotEnv(p))
	assert.Equal(t, "from-env", os.Getenv("PET_TRACKER_TEST_KEEP"))
}

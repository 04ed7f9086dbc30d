// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var relayEnvVars = []string{
	"CONFIG", "PORT", "APP_VERSION", "APP_LOG_LEVEL",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_MAX_BODY_SIZE", "SERVER_MAX_MULTIPART_MEMORY",
	"ADAPTER_MINERU_BASE_URL", "ADAPTER_CONVERTER_BASE_URL", "ADAPTER_REQUEST_TIMEOUT",
	"ADAPTER_LAYOUT_MODEL", "ADAPTER_LANGUAGE", "ADAPTER_UPLOAD_SET_CONTENT_TYPE",
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG":      "/path/to/config.json",
		"PORT":        "8080",
		"APP_VERSION": "1.2.3",

		"SERVER_ADDRESS":              "localhost:8081",
		"SERVER_REQUEST_TIMEOUT":      "2m",
		"SERVER_MAX_BODY_SIZE":        "1048576",
		"SERVER_MAX_MULTIPART_MEMORY": "4096",

		"ADAPTER_MINERU_BASE_URL":         "https://mineru.example/api/v4",
		"ADAPTER_CONVERTER_BASE_URL":      "http://pandoc.local",
		"ADAPTER_REQUEST_TIMEOUT":         "15s",
		"ADAPTER_LAYOUT_MODEL":            "layoutlmv3",
		"ADAPTER_LANGUAGE":                "en",
		"ADAPTER_UPLOAD_SET_CONTENT_TYPE": "true",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(1048576), cfg.Server.MaxBodySize)
	assert.Equal(t, int64(4096), cfg.Server.MaxMultipartMemory)

	assert.Equal(t, "https://mineru.example/api/v4", cfg.Adapter.MineruBaseURL)
	assert.Equal(t, "http://pandoc.local", cfg.Adapter.ConverterBaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "layoutlmv3", cfg.Adapter.LayoutModel)
	assert.Equal(t, "en", cfg.Adapter.Language)
	assert.True(t, cfg.Adapter.UploadSetContentType)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "invalid_duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_UPLOAD_SET_CONTENT_TYPE": "maybe",
	})

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the relay reads; t.Setenv restores the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range relayEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

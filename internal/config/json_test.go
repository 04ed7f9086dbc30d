package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "version": "3.0.0" },
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "2m",
			"max_body_size": 2048,
			"max_multipart_memory": 1024
		},
		"adapter": {
			"mineru_base_url": "https://mineru.example/api/v4",
			"converter_base_url": "http://pandoc.local",
			"request_timeout": "45s",
			"layout_model": "doclayout_yolo",
			"language": "en",
			"upload_set_content_type": true
		},
		"port": "8081"
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "3.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodySize)
	assert.Equal(t, int64(1024), cfg.Server.MaxMultipartMemory)
	assert.Equal(t, "https://mineru.example/api/v4", cfg.Adapter.MineruBaseURL)
	assert.Equal(t, "http://pandoc.local", cfg.Adapter.ConverterBaseURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "doclayout_yolo", cfg.Adapter.LayoutModel)
	assert.Equal(t, "en", cfg.Adapter.Language)
	assert.True(t, cfg.Adapter.UploadSetContentType)
	assert.Equal(t, "8081", cfg.Port)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":{"request_timeout":"soon"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", raw: `"30s"`, want: 30 * time.Second},
		{name: "nanoseconds", raw: `1000000000`, want: time.Second},
		{name: "bad string", raw: `"forever"`, wantErr: true},
		{name: "bool", raw: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.raw), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))
}

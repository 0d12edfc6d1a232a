package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))

	require.NoError(t, err)
	assert.Equal(t, ":8001", cfg.App.Port)
	assert.Equal(t, "local", cfg.App.Env)
	assert.False(t, cfg.IsProd())
	assert.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "http://localhost:3000", cfg.CORS.AllowedOrigin)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "api-calls.log", cfg.Log.File)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
app:
  port: ":9000"
  env: prod
http:
  request_timeout: 2s
cors:
  allowed_origin: https://app.example.com
log:
  level: debug
  file: ""
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.App.Port)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, 2*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "https://app.example.com", cfg.CORS.AllowedOrigin)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
app:
  port: ":9000"
cors:
  allowed_origin: https://app.example.com
`)
	t.Setenv("APP_PORT", ":7000")
	t.Setenv("CORS_ALLOWED_ORIGIN", "http://localhost:5173")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "250ms")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.App.Port)
	assert.Equal(t, "http://localhost:5173", cfg.CORS.AllowedOrigin)
	assert.Equal(t, 250*time.Millisecond, cfg.HTTP.RequestTimeout)
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "app: [\n"},
		{name: "empty port", content: "app:\n  port: \"\"\n"},
		{name: "empty origin", content: "cors:\n  allowed_origin: \"\"\n"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.content))

			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3333", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://custom-plugin-rust.verify", cfg.Certificate.VerifyBaseURL)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window())
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadConfig_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "8088")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "8088", cfg.Server.Port)
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv("PORT", "")

	dir := t.TempDir()
	body := `
server:
  mode: debug
cors:
  allowed_origins: ["http://localhost:5173"]
certificate:
  verify_base_url: https://verify.example.com
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://verify.example.com", cfg.Certificate.VerifyBaseURL)
}

func TestLoadConfig_RejectsBadRateLimit(t *testing.T) {
	dir := t.TempDir()
	body := "rate_limit:\n  max_requests: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))

	_, err := LoadConfig(dir)
	require.Error(t, err)
}

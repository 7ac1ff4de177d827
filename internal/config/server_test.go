package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig_Defaults(t *testing.T) {
	cfg, err := LoadServerConfig("")
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout())
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout())
}

func TestLoadServerConfig_File(t *testing.T) {
	path := writeTemp(t, "server.yaml", "host: 0.0.0.0\nport: 9090\nallowed_origins:\n  - https://example.com\n")
	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, []string{"https://example.com"}, cfg.AllowedOrigins)
}

func TestLoadServerConfig_Errors(t *testing.T) {
	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read file")

	path := writeTemp(t, "bad.yaml", "port: [")
	_, err = LoadServerConfig(path)
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestLoadServerConfigFromEnv(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("SAVINGS_PORT", "7070")
	t.Setenv("SAVINGS_ALLOWED_ORIGINS", "https://a.test, https://b.test")
	t.Setenv("SAVINGS_DEBUG", "true")

	cfg, err := LoadServerConfigFromEnv("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Debug)

	t.Setenv("SAVINGS_PORT", "http")
	_, err = LoadServerConfigFromEnv("")
	assert.ErrorContains(t, err, "invalid SAVINGS_PORT")
}

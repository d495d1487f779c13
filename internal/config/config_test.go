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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://api.example.com/api
  timeout_seconds: 30
session:
  path: `+filepath.Join(t.TempDir(), "data", "s.db")+`
redis:
  address: localhost:6379
  cache_ttl_seconds: 60
bulk:
  requests_per_second: 2.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout())
	assert.Equal(t, time.Minute, cfg.CacheTTL())
	assert.Equal(t, 2.5, cfg.BulkRate())
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "api: {}\nsession:\n  path: "+filepath.Join(dir, "d", "s.db")+"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout())
	assert.Zero(t, cfg.CacheTTL())
	assert.Equal(t, 5.0, cfg.BulkRate())
	assert.Equal(t, "exports", cfg.Export.Dir)

	// The session directory is created on load.
	_, err = os.Stat(filepath.Join(dir, "d"))
	assert.NoError(t, err)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("EVENTDESK_TEST_URL", "https://env.example.com/api")
	path := writeConfig(t, `
api:
  base_url: ${EVENTDESK_TEST_URL}
session:
  path: `+filepath.Join(t.TempDir(), "s.db")+`
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/api", cfg.API.BaseURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

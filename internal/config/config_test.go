package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ".careerscan", cfg.DataDir)
	assert.Equal(t, "http://localhost:1234/webhook", cfg.WebhookURL)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090, "data_dir": "/tmp/cs", "seed_demo": true}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/cs", cfg.DataDir)
	assert.True(t, cfg.SeedDemo)
	// Unset fields keep defaults.
	assert.Equal(t, "http://localhost:1234/webhook", cfg.WebhookURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CAREERSCAN_PORT", "7000")
	t.Setenv("WEBHOOK_URL", "https://hooks.example.com/webhook")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "https://hooks.example.com/webhook", cfg.WebhookURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.DataDir = ""
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.WebhookURL = ""
	assert.Error(t, cfg.Validate())
}

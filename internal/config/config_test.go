package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fmerrors "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Wizard.Prefetch)
	assert.False(t, cfg.Wizard.WeightageEnabled)
	require.NoError(t, Validate(cfg))
}

func TestLoadFromPath_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
api:
  base_url: https://fm.example.com
  timeout: 30s
wizard:
  weightage_enabled: true
templates:
  dir: /opt/templates
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "https://fm.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Wizard.WeightageEnabled)
	assert.Equal(t, "/opt/templates", cfg.Templates.Dir)
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
}

func TestValidate_NilConfig(t *testing.T) {
	err := Validate(nil)

	assert.ErrorIs(t, err, fmerrors.ErrConfigNil)
}

func TestValidate_BadBaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.BaseURL = "not a url"

	err := Validate(cfg)

	assert.ErrorIs(t, err, fmerrors.ErrConfigInvalidAPI)
}

func TestValidate_NonPositiveTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.Timeout = 0

	err := Validate(cfg)

	assert.ErrorIs(t, err, fmerrors.ErrConfigInvalidAPI)
}

func TestApplyOverrides_PartialOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://fm.example.com"

	applyOverrides(cfg, &Config{API: APIConfig{Timeout: time.Minute}})

	assert.Equal(t, "https://fm.example.com", cfg.API.BaseURL)
	assert.Equal(t, time.Minute, cfg.API.Timeout)
}

func TestHomeDir_EnvOverride(t *testing.T) {
	t.Setenv("FMSCHED_HOME", "/tmp/fmsched-home")

	dir, err := HomeDir()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/fmsched-home", dir)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fmsched-home/config.yaml", path)
}

func TestTemplatesDir_Override(t *testing.T) {
	t.Setenv("FMSCHED_HOME", "/tmp/fmsched-home")

	dir, err := TemplatesDir("/opt/custom")
	require.NoError(t, err)
	assert.Equal(t, "/opt/custom", dir)

	dir, err = TemplatesDir("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fmsched-home/templates", dir)
}

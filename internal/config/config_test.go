package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadCreatesDefaultConfig(t *testing.T) {
	dir := testEnv(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, 32, cfg.Chrome.CaptionHeight)
	assert.Equal(t, 8, cfg.Chrome.BorderWidth)
	assert.True(t, cfg.Chrome.AeroSnap)
	assert.NotEmpty(t, cfg.Placement.Path)

	_, err = os.Stat(filepath.Join(dir, "config", "chromeless", "config.yaml"))
	assert.NoError(t, err, "a starter config file should be written")
}

func TestLoadMergesConfigFile(t *testing.T) {
	dir := testEnv(t)
	configDir := filepath.Join(dir, "config", "chromeless")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	content := []byte("chrome:\n  caption_height: 48\n  aero_snap: false\n")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), content, 0o644))

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, 48, cfg.Chrome.CaptionHeight)
	assert.False(t, cfg.Chrome.AeroSnap)
	// Unspecified keys keep their defaults.
	assert.Equal(t, 8, cfg.Chrome.BorderWidth)
	assert.Equal(t, 46, cfg.Chrome.ButtonWidth)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := testEnv(t)
	configDir := filepath.Join(dir, "config", "chromeless")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	content := []byte("chrome:\n  caption_height: -5\n")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), content, 0o644))

	m, err := NewManager()
	require.NoError(t, err)
	assert.Error(t, m.Load())
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chrome.CaptionHeight = 0
	cfg.Chrome.ButtonWidth = -1
	cfg.Logging.Level = "shouting"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caption_height")
	assert.Contains(t, err.Error(), "button_width")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestGetReturnsCopy(t *testing.T) {
	testEnv(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	first := m.Get()
	first.Chrome.CaptionHeight = 999
	assert.Equal(t, 32, m.Get().Chrome.CaptionHeight)
}

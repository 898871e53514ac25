package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(body), 0600))
}

func TestNew_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, DefaultSettings(), cfg.Settings)
}

func TestNew_OverlaysFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "seed: false\ndate_format: \"02.01.2006\"\n")

	cfg, err := New(dir)
	require.NoError(t, err)

	assert.False(t, cfg.Seed)
	assert.Equal(t, "02.01.2006", cfg.DateFormat)
	assert.True(t, cfg.Color, "unset keys keep defaults")
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
}

func TestNew_EmptyDateFormatFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "date_format: \"\"\n")

	cfg, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultDateFormat, cfg.DateFormat)
}

func TestNew_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "seed: [not, a, bool\n")

	_, err := New(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config.yaml")
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName), DefaultConfigDir())
}

func TestDefaultConfigDir_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/tmp/home")
	assert.Equal(t, filepath.Join("/tmp/home", ".config", AppName), DefaultConfigDir())
}

func TestNew_Welcome(t *testing.T) {
	dir := t.TempDir()
	cfg, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultWelcome, cfg.Welcome)

	writeConfig(t, dir, "welcome: \"\"\n")
	cfg, err = New(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.Welcome, "an empty welcome disables the greeting")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "zosiaprint.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pl", cfg.Locale)
	assert.Equal(t, 20, cfg.Blanks)
	assert.FileExists(t, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zosiaprint.yaml")

	cfg := DefaultConfig()
	cfg.Locale = "en"
	cfg.Blanks = 7
	cfg.PDF.TimeoutSec = 45
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", loaded.Locale)
	assert.Equal(t, 7, loaded.Blanks)
	assert.Equal(t, 45, loaded.PDF.TimeoutSec)
}

func TestNormalizeFillsZeroValues(t *testing.T) {
	var cfg Config
	cfg.Normalize()

	assert.Equal(t, "./gen", cfg.TargetDir)
	assert.Equal(t, "pl", cfg.Locale)
	assert.InDelta(t, 8.27, cfg.PDF.PaperWidthIn, 0.001)
	assert.Equal(t, 30, cfg.PDF.TimeoutSec)
}

func TestNormalizeRejectsUnknownLocale(t *testing.T) {
	cfg := Config{Locale: "klingon"}
	cfg.Normalize()
	assert.Equal(t, "pl", cfg.Locale)
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

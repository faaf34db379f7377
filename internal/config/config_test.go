package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("OSVERSION_CONFIG", t.TempDir())

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsFile(t *testing.T) {
	baseDir := t.TempDir()
	t.Setenv("OSVERSION_CONFIG", baseDir)

	dir := filepath.Join(baseDir, DefaultDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(
		"log_level: debug\npretty_logs: false\nappend_version_tag: false\n",
	), 0o644))

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.PrettyLogs)
	assert.False(t, cfg.AppendVersionTag)
}

func TestLoadMalformedFileFails(t *testing.T) {
	baseDir := t.TempDir()
	t.Setenv("OSVERSION_CONFIG", baseDir)

	dir := filepath.Join(baseDir, DefaultDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("{not yaml"), 0o644))

	_, err := NewLoader().Load()
	require.Error(t, err)
}

func TestLoaderPathUsesEnvOverride(t *testing.T) {
	t.Setenv("OSVERSION_CONFIG", "/custom/base")

	assert.Equal(t, filepath.Join("/custom/base", DefaultDir, ConfigFile), NewLoader().Path())
}

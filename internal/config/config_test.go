package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tagnote/pkg/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "vault: /srv/notes\ndefault_color: \"#EDFFEE\"\nread_only: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/notes", cfg.Vault)
	assert.Equal(t, "#EDFFEE", cfg.DefaultColor)
	assert.True(t, cfg.ReadOnly)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep their default")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "vault: /srv/notes\n")
	t.Setenv("TAGNOTE_VAULT", "/tmp/other")
	t.Setenv("TAGNOTE_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other", cfg.Vault)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "default_color: \"#000000\"\n"))
	assert.ErrorIs(t, err, core.ErrInvalidColor)

	_, err = Load(writeConfig(t, "log_level: loud\n"))
	assert.ErrorContains(t, err, "log_level")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.DefaultColor, cfg.DefaultColor)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
[engine]
tick_rate = "33ms"
max_entities = 4096
scene = "data/scenes/level1.yaml"

[logging]
level = "debug"
format = "json"

[scripts]
enabled = false
dir = "lua"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 33*time.Millisecond, cfg.Engine.TickRate)
	require.Equal(t, 4096, cfg.Engine.MaxEntities)
	require.Equal(t, "data/scenes/level1.yaml", cfg.Engine.Scene)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.False(t, cfg.Scripts.Enabled)
	require.Equal(t, "lua", cfg.Scripts.Dir)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[engine]
max_entities = 500
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 500, cfg.Engine.MaxEntities)
	require.Equal(t, 16*time.Millisecond, cfg.Engine.TickRate)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
	require.True(t, cfg.Scripts.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, `[engine`)
	_, err := Load(path)
	require.Error(t, err)
}

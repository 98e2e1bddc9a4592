package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesLayerOverDefaults(t *testing.T) {
	path := writeConfig(t, "database_path: /var/lib/repcore/workouts.db\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/repcore/workouts.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched fields keep their defaults.
	assert.Equal(t, Default().ListenAddr, cfg.ListenAddr)
	assert.Equal(t, Default().StashDir, cfg.StashDir)
}

func TestLoad_RejectsBadLevel(t *testing.T) {
	path := writeConfig(t, "log_level: loud\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level")
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "database_path: [\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsEmptyPaths(t *testing.T) {
	path := writeConfig(t, `database_path: ""`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for level, want := range tests {
		cfg := Config{LogLevel: level}
		assert.Equal(t, want, cfg.SlogLevel())
	}
}

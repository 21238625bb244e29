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
	path := filepath.Join(t.TempDir(), "cuesheet.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
lenient = true
max_line_size = 4096
concurrency = 3
log_level = "DEBUG"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Lenient)
	assert.Equal(t, 4096, cfg.MaxLineSize)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, "debug", cfg.LogLevel)

	level, ok, err := cfg.Level()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.False(t, cfg.Lenient)
	assert.Zero(t, cfg.MaxLineSize)
	assert.Zero(t, cfg.Concurrency)

	_, ok, err := cfg.Level()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative line size", "max_line_size = -1"},
		{"negative concurrency", "concurrency = -2"},
		{"unknown level", `log_level = "loud"`},
		{"malformed toml", "lenient = "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "EMPTY_GLYPH"} {
		// Setenv restores the previous value once the test ends
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "_", cfg.EmptyGlyph)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("EMPTY_GLYPH", ".")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ".", cfg.EmptyGlyph)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadConfig_InvalidFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "xml")
	t.Setenv("EMPTY_GLYPH", "--")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "_", cfg.EmptyGlyph)
	require.Len(t, cfg.Warnings, 3)
	assert.Contains(t, cfg.Warnings[0], "LOG_LEVEL")
	assert.Contains(t, cfg.Warnings[1], "LOG_FORMAT")
	assert.Contains(t, cfg.Warnings[2], "EMPTY_GLYPH")
}

func TestUsage(t *testing.T) {
	text := Usage()

	assert.Contains(t, text, "LOG_LEVEL")
	assert.Contains(t, text, "EMPTY_GLYPH")
}

package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/avatar-tools-mcp/internal/avatar"
	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
)

func TestParseEnvDefaults(t *testing.T) {
	cfg, err := ParseEnv()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100, cfg.DefaultSize)
	assert.Equal(t, 0.8, cfg.BackgroundLightness)
	assert.Equal(t, 0.35, cfg.ForegroundLightness)
	assert.Equal(t, "normal", cfg.FontWeight)
	assert.Equal(t, "mp", cfg.GravatarType)
	assert.Equal(t, 1024, cfg.MaxRasterSize)
	assert.Equal(t, 256, cfg.CacheEntries)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("AVATAR_MCP_LOG_LEVEL", "debug")
	t.Setenv("AVATAR_MCP_DEFAULT_SIZE", "128")
	t.Setenv("AVATAR_MCP_BACKGROUND_LIGHTNESS", "0.9")
	t.Setenv("AVATAR_MCP_FOREGROUND_LIGHTNESS", "0.2")
	t.Setenv("AVATAR_MCP_FONT_FAMILY", "Roboto")
	t.Setenv("AVATAR_MCP_FONT_PATH", "/fonts/Roboto.ttf")
	t.Setenv("AVATAR_MCP_FONT_WEIGHT", "bold")
	t.Setenv("AVATAR_MCP_GRAVATAR_TYPE", "retro")
	t.Setenv("AVATAR_MCP_CACHE_ENTRIES", "0")

	cfg, err := ParseEnv()
	require.NoError(t, err)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, avatar.KindRetro, cfg.GravatarKind())
	assert.Equal(t, 0, cfg.CacheEntries)

	defaults := cfg.AvatarDefaults()
	assert.Equal(t, 128, defaults.Size)
	assert.Equal(t, 0.9, defaults.BackgroundLightness())
	assert.Equal(t, 0.2, defaults.ForegroundLightness())
	assert.Equal(t, "Roboto", defaults.ResolvedFontFamily())
	assert.Equal(t, "/fonts/Roboto.ttf", defaults.FontPath)
	assert.Equal(t, "bold", defaults.FontWeight)
	assert.True(t, defaults.Symmetric)
}

func TestParseEnvInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"size not a number", "AVATAR_MCP_DEFAULT_SIZE", "large"},
		{"size zero", "AVATAR_MCP_DEFAULT_SIZE", "0"},
		{"raster size negative", "AVATAR_MCP_MAX_RASTER_SIZE", "-1"},
		{"cache negative", "AVATAR_MCP_CACHE_ENTRIES", "-5"},
		{"log level", "AVATAR_MCP_LOG_LEVEL", "verbose"},
		{"gravatar type unknown", "AVATAR_MCP_GRAVATAR_TYPE", "cartoon"},
		{"gravatar type not gravatar", "AVATAR_MCP_GRAVATAR_TYPE", "initials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := ParseEnv()
			require.Error(t, err)
		})
	}
}

func TestValidateReportsValidationCode(t *testing.T) {
	cfg := Config{DefaultSize: 100, MaxRasterSize: 0, GravatarType: "mp"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Config{LogLevel: tt.in}.Level()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvatarDefaultsClampsLightness(t *testing.T) {
	cfg := Config{DefaultSize: 100, BackgroundLightness: 1.5, ForegroundLightness: -0.5}
	defaults := cfg.AvatarDefaults()
	assert.Equal(t, 1.0, defaults.BackgroundLightness())
	assert.Equal(t, 0.0, defaults.ForegroundLightness())
	assert.Equal(t, avatar.DefaultFontWeight, defaults.FontWeight)
	assert.Equal(t, avatar.DefaultFontFamily, defaults.ResolvedFontFamily())
}

func TestGravatarKindFallback(t *testing.T) {
	assert.Equal(t, avatar.KindMysteryPerson, Config{GravatarType: "initials"}.GravatarKind())
	assert.Equal(t, avatar.KindWavatar, Config{GravatarType: "wavatar"}.GravatarKind())
}

// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/ironsheep/avatar-tools-mcp/internal/avatar"
	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
)

// Config holds the server settings. Every field maps to an AVATAR_MCP_
// environment variable.
type Config struct {
	LogLevel            string  `env:"AVATAR_MCP_LOG_LEVEL" envDefault:"info"`
	DefaultSize         int     `env:"AVATAR_MCP_DEFAULT_SIZE" envDefault:"100"`
	BackgroundLightness float64 `env:"AVATAR_MCP_BACKGROUND_LIGHTNESS" envDefault:"0.8"`
	ForegroundLightness float64 `env:"AVATAR_MCP_FOREGROUND_LIGHTNESS" envDefault:"0.35"`
	FontFamily          string  `env:"AVATAR_MCP_FONT_FAMILY"`
	FontPath            string  `env:"AVATAR_MCP_FONT_PATH"`
	FontWeight          string  `env:"AVATAR_MCP_FONT_WEIGHT" envDefault:"normal"`
	GravatarType        string  `env:"AVATAR_MCP_GRAVATAR_TYPE" envDefault:"mp"`
	MaxRasterSize       int     `env:"AVATAR_MCP_MAX_RASTER_SIZE" envDefault:"1024"`
	CacheEntries        int     `env:"AVATAR_MCP_CACHE_ENTRIES" envDefault:"256"`
}

// ParseEnv loads the configuration from environment variables and
// validates it.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges the environment parser cannot express.
func (c Config) Validate() error {
	if c.DefaultSize <= 0 {
		return errors.Validation("AVATAR_MCP_DEFAULT_SIZE must be positive, got %d", c.DefaultSize)
	}
	if c.MaxRasterSize <= 0 {
		return errors.Validation("AVATAR_MCP_MAX_RASTER_SIZE must be positive, got %d", c.MaxRasterSize)
	}
	if c.CacheEntries < 0 {
		return errors.Validation("AVATAR_MCP_CACHE_ENTRIES must not be negative, got %d", c.CacheEntries)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	kind, err := avatar.ParseKind(c.GravatarType)
	if err != nil {
		return err
	}
	if !kind.IsGravatar() {
		return errors.Validation("AVATAR_MCP_GRAVATAR_TYPE %q is not a Gravatar type", c.GravatarType)
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Validation("unknown log level %q: want debug, info, warn or error", c.LogLevel)
}

// GravatarKind returns the configured default Gravatar type, falling back
// to the mystery person.
func (c Config) GravatarKind() avatar.Kind {
	kind, err := avatar.ParseKind(c.GravatarType)
	if err != nil || !kind.IsGravatar() {
		return avatar.KindMysteryPerson
	}
	return kind
}

// AvatarDefaults returns the avatar settings new requests start from.
func (c Config) AvatarDefaults() avatar.Config {
	cfg := avatar.DefaultConfig()
	cfg.Size = c.DefaultSize
	cfg.SetBackgroundLightness(c.BackgroundLightness)
	cfg.SetForegroundLightness(c.ForegroundLightness)
	cfg.SetFont(c.FontFamily, c.FontPath)
	if c.FontWeight != "" {
		cfg.FontWeight = c.FontWeight
	}
	return cfg
}

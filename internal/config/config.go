package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	LogFormat  string `env:"LOG_FORMAT" env-default:"console" env-description:"console or json"`
	EmptyGlyph string `env:"EMPTY_GLYPH" env-default:"_" env-description:"single character drawn for an empty cell"`

	// Warnings lists values that were rejected and replaced by their default
	Warnings []string
}

const (
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultEmptyGlyph = "_"
)

// LoadEnvFile reads .env from the working directory or its parent, a missing file is fine
func LoadEnvFile() bool {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			return false
		}
	}
	return true
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.warn("LOG_LEVEL", c.LogLevel, defaultLogLevel)
		c.LogLevel = defaultLogLevel
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "console", "json":
	default:
		c.warn("LOG_FORMAT", c.LogFormat, defaultLogFormat)
		c.LogFormat = defaultLogFormat
	}

	if utf8.RuneCountInString(c.EmptyGlyph) != 1 || strings.TrimSpace(c.EmptyGlyph) == "" {
		c.warn("EMPTY_GLYPH", c.EmptyGlyph, defaultEmptyGlyph)
		c.EmptyGlyph = defaultEmptyGlyph
	}
}

func (c *Config) warn(key, value, fallback string) {
	c.Warnings = append(c.Warnings, fmt.Sprintf("invalid value for %s: %q, using default: %q", key, value, fallback))
}

// Usage describes the environment variables understood by LoadConfig
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}

// Package config loads orgcount settings from the environment.
//
// Values come from ORGCOUNT_* variables. .env and .env.local in the working
// directory are read first when present; variables already set in the
// process environment win over both files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultEnvFiles are the dotenv files Load reads.
var DefaultEnvFiles = []string{".env", ".env.local"}

// ErrInvalidConfig indicates a setting with an unsupported value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds runtime settings.
type Config struct {
	// SeedFile replaces the built-in seed organization when set
	SeedFile string `env:"ORGCOUNT_SEED_FILE"`

	// NoSeed starts with an empty organization
	NoSeed bool `env:"ORGCOUNT_NO_SEED" envDefault:"false"`

	// LogLevel is one of silent, error, warn, info, debug
	LogLevel string `env:"ORGCOUNT_LOG_LEVEL" envDefault:"warn"`

	// LogFormat is text or json
	LogFormat string `env:"ORGCOUNT_LOG_FORMAT" envDefault:"text"`

	// Prompt is printed before each REPL line
	Prompt string `env:"ORGCOUNT_PROMPT" envDefault:"> "`
}

// Load reads DefaultEnvFiles and parses the environment.
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFiles)
}

// LoadFrom reads the given dotenv files, skipping missing ones, and parses
// the environment into a validated Config.
func LoadFrom(envFiles []string) (*Config, error) {
	if _, err := LoadEnv(envFiles); err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads the dotenv files that exist and returns how many were read.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Validate normalizes and checks the settings.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if _, ok := levels[c.LogLevel]; !ok {
		return fmt.Errorf("%w: ORGCOUNT_LOG_LEVEL=%q (expected silent|error|warn|info|debug)", ErrInvalidConfig, c.LogLevel)
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: ORGCOUNT_LOG_FORMAT=%q (expected text|json)", ErrInvalidConfig, c.LogFormat)
	}

	if c.NoSeed && c.SeedFile != "" {
		return fmt.Errorf("%w: ORGCOUNT_NO_SEED and ORGCOUNT_SEED_FILE are mutually exclusive", ErrInvalidConfig)
	}
	return nil
}

var levels = map[string]logrus.Level{
	"silent": logrus.PanicLevel,
	"error":  logrus.ErrorLevel,
	"warn":   logrus.WarnLevel,
	"info":   logrus.InfoLevel,
	"debug":  logrus.DebugLevel,
}

// LogrusLevel maps LogLevel to a logrus level, defaulting to warn.
func (c *Config) LogrusLevel() logrus.Level {
	if level, ok := levels[c.LogLevel]; ok {
		return level
	}
	return logrus.WarnLevel
}

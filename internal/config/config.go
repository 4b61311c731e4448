// Package config loads console settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const minSecretLength = 32

// Config represents the server configuration
type Config struct {
	Port              int           `env:"PORT"                envDefault:"8080"`
	GinMode           string        `env:"GIN_MODE"            envDefault:"release"` // debug, release, test
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    envDefault:"5s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`

	Session SessionConfig
	Logging LoggingConfig
}

// SessionConfig controls the signed cookie identifying a browser session.
type SessionConfig struct {
	Name   string        `env:"SESSION_NAME"    envDefault:"warehouse-console"`
	Secret string        `env:"SESSION_SECRET"`
	MaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"24h"`
	Secure bool          `env:"SESSION_SECURE"  envDefault:"false"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"` // debug, info, warn, error
	Format string `env:"LOG_FORMAT" envDefault:"text"` // text, json
}

// devSecret is used only in debug mode when SESSION_SECRET is unset.
const devSecret = "insecure-development-session-secret"

// Load reads envFile (if it exists) into the process environment and parses
// the configuration from it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Session.Secret == "" && cfg.GinMode == "debug" {
		cfg.Session.Secret = devSecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q", c.GinMode)
	}
	if len(c.Session.Secret) < minSecretLength {
		return fmt.Errorf("SESSION_SECRET must be at least %d bytes", minSecretLength)
	}
	if c.Session.MaxAge <= 0 {
		return fmt.Errorf("invalid SESSION_MAX_AGE %s", c.Session.MaxAge)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.Logging.Format)
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

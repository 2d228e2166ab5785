// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"

	"github.com/setiawand/expensebuddy/internal/models"
)

// Config holds all configuration for the application.
type Config struct {
	// APIBaseURL is the base URL of the remote expense store, read once at
	// process start.
	APIBaseURL         string `env:"EXPENSE_API_URL" envDefault:"http://localhost:8004"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"10"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	// DisplayCurrency labels amounts at render time only; it is never sent
	// to the remote store.
	DisplayCurrency string `env:"DISPLAY_CURRENCY" envDefault:"USD"`
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// A set-but-empty EXPENSE_API_URL still means the dev endpoint.
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		cfg.APIBaseURL = "http://localhost:8004"
	}

	cfg.DisplayCurrency = strings.ToUpper(strings.TrimSpace(cfg.DisplayCurrency))
	if !models.IsSupportedCurrency(cfg.DisplayCurrency) {
		cfg.DisplayCurrency = models.DefaultCurrencyCode
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HTTPTimeout returns the remote call timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// validate checks that all required configuration is usable.
func (c *Config) validate() error {
	var errs []string

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("EXPENSE_API_URL %q is not a valid URL", c.APIBaseURL))
	}

	if c.HTTPTimeoutSeconds <= 0 {
		errs = append(errs, "HTTP_TIMEOUT_SECONDS must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

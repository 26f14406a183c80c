package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Environment
	Environment string `env:"ENV" envDefault:"development"`

	// Backend API
	APIBaseURL string `env:"FOLIO_API_BASE" envDefault:"http://localhost:8000"`

	// Public CAPTCHA site key. Empty means no widget is configured and the
	// gate runs in bypass mode.
	CaptchaSiteKey string `env:"FOLIO_CAPTCHA_SITE_KEY"`

	// Logging
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE" envDefault:"~/.folio/folio.log"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"10"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if one exists. Environment variables always win over
	// file contents, so loading is best-effort.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Paths are joined against the base URL, so a trailing slash would
	// produce double slashes in every request.
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8000"
	}

	return cfg, nil
}

// CaptchaRequired reports whether a CAPTCHA widget is configured.
func (c *Config) CaptchaRequired() bool {
	return c.CaptchaSiteKey != ""
}

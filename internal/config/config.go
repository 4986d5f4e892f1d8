package config

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the trove service.
// Environment variables are parsed from the TROVE_ prefix,
// e.g. TROVE_HTTP_PORT, TROVE_API_KEY, TROVE_DATA_DIR.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// APIKey is the shared secret every item route requires.
	APIKey string `envconfig:"API_KEY" default:"secret"`

	// DataDir is the directory holding the embedded store's database file.
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	// LogLevel sets the zerolog global level (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// New creates a new Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("TROVE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("data_dir", cfg.DataDir).
		Bool("api_key_present", cfg.APIKey != "").
		Str("log_level", cfg.LogLevel).
		Msg("Configuration loaded")

	return &cfg, nil
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// DBPath returns the path of the embedded store's database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "trove.db")
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Dataset sources accepted by DATASET_SOURCE.
const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourcePostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the ISO 639 API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// DatasetSource selects where the ISO 639-3 tables are read from.
	DatasetSource string `env:"DATASET_SOURCE" envDefault:"embedded"`

	// DatasetDir holds the four .tab files when DatasetSource is "dir".
	DatasetDir string `env:"DATASET_DIR"`

	// Relational Database (PostgreSQL), required by the "postgres" source
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath overrides the embedded SQL migrations with a directory.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Key-Value Cache (Redis); usage statistics are disabled when empty
	RedisURL string `env:"REDIS_URL"`

	// Public key verifying operator tokens; operator routes answer 401 when empty
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH"`

	// Cross-Origin Resource Sharing, comma separated
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the rules that span several fields.
func (c *Config) Validate() error {
	var errs []error

	switch c.DatasetSource {
	case SourceEmbedded:
	case SourceDir:
		if c.DatasetDir == "" {
			errs = append(errs, errors.New("DATASET_DIR is required when DATASET_SOURCE=dir"))
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when DATASET_SOURCE=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("DATASET_SOURCE must be one of %s, %s, %s (got %q)",
			SourceEmbedded, SourceDir, SourcePostgres, c.DatasetSource))
	}

	if c.ServerPort == "" {
		errs = append(errs, errors.New("SERVER_PORT must not be empty"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins splits ExtraOrigins into trimmed, non-empty entries.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

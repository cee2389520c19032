// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

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
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Etheca API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// MediaRoot is the directory holding uploaded thesis documents.
	MediaRoot string `env:"MEDIA_ROOT" envDefault:"./data/media"`

	// InstitutionName prefixes corporate names and descriptive notes in
	// exported metadata records.
	InstitutionName string `env:"INSTITUTION_NAME" envDefault:"Halewick University"`

	// Repository deposit API
	RepositoryAPIURL  string `env:"REPOSITORY_API_URL,required"`
	DepositIdentity   string `env:"DEPOSIT_IDENTITY,required"`
	AuthorizationCode string `env:"DEPOSIT_AUTHORIZATION_CODE,required"`
	DepositorName     string `env:"DEPOSITOR_NAME" envDefault:"ETD application"`

	// Access-rights identities understood by the repository
	RightsOwnerID            string `env:"RIGHTS_OWNER_ID,required"`
	PublicDisplayIdentity    string `env:"RIGHTS_PUBLIC_IDENTITY" envDefault:"PUBLIC"`
	EmbargoedDisplayIdentity string `env:"RIGHTS_EMBARGOED_IDENTITY" envDefault:"EMBARGOED"`

	// Controlled-vocabulary (FAST) keyword lookup
	FastLookupBaseURL string `env:"FAST_LOOKUP_BASE_URL" envDefault:"https://fast.oclc.org/searchfast/fastsuggest"`

	// Outbound mail (SMTP relay; e.g. localhost for Mailpit in development)
	SMTPHost        string `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort        int    `env:"SMTP_PORT" envDefault:"25"`
	ServerEmail     string `env:"SERVER_EMAIL" envDefault:"noreply@etheca.app"`
	GradschoolEmail string `env:"GRADSCHOOL_EMAIL,required"`

	// ServerRoot is the externally visible base URL, used in notification links.
	ServerRoot string `env:"SERVER_ROOT" envDefault:"http://localhost:8080"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// AllowedExtraOrigins splits the comma-separated EXTRA_ORIGINS setting
// into the additional origins the CORS middleware accepts in production.
func (c *Config) AllowedExtraOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}

	origins := strings.Split(c.ExtraOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

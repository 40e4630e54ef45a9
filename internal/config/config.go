// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Server
	Port          int    `json:"port,omitempty"`           // HTTP listen port
	DatabaseURL   string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	RedisURL      string `json:"redis_url,omitempty"`      // Redis URL for the geocode cache
	GeocodeURL    string `json:"geocode_url,omitempty"`    // Reverse-geocoding endpoint; empty disables geocoding
	PruneSchedule string `json:"prune_schedule,omitempty"` // Cron spec for the expired-posting sweep

	// CLI state
	LocationDB string `json:"location_db,omitempty"` // SQLite file for the saved location

	// Export defaults
	Template string `json:"template,omitempty"` // Export template name
	Color    string `json:"color,omitempty"`    // Export color palette

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables leave
// their fields empty so file and flag values survive the merge.
func FromEnv() Config {
	cfg := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		GeocodeURL:    os.Getenv("GEOCODE_URL"),
		PruneSchedule: os.Getenv("PRUNE_SCHEDULE"),
		LocationDB:    os.Getenv("LOCATION_DB"),
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.LocationDB != "" {
		dir := filepath.Dir(c.LocationDB)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("config error: location_db directory not found: %s", dir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags and environment variables.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.GeocodeURL == "" {
		result.GeocodeURL = defaults.GeocodeURL
	}
	if result.PruneSchedule == "" {
		result.PruneSchedule = defaults.PruneSchedule
	}
	if result.LocationDB == "" {
		result.LocationDB = defaults.LocationDB
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Color == "" {
		result.Color = defaults.Color
	}

	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = 8080
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

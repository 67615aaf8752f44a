// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Upstream endpoints
	TigerCenterBase string `json:"tigercenter_base,omitempty" validate:"omitempty,url"`
	FoodTruckURL    string `json:"food_truck_url,omitempty" validate:"omitempty,url"`
	FDMPBase        string `json:"fdmp_base,omitempty" validate:"omitempty,url"`
	OccupancyBase   string `json:"occupancy_base,omitempty" validate:"omitempty,url"`

	// Storage
	DatabaseURL string `json:"database_url,omitempty"`

	// Behavior
	UseBrowser     bool `json:"use_browser,omitempty"` // Headless browser fallback for JS-rendered pages
	Verbose        bool `json:"verbose,omitempty"`     // Print detailed debug information
	TimeoutSeconds int  `json:"timeout_seconds,omitempty" validate:"gte=0,lte=300"`

	// Path to a JSON file overriding the built-in TigerCenter -> FD
	// MealPlanner location ID mapping.
	IDMapPath string `json:"id_map_path,omitempty"`
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

// FromEnv fills unset fields from environment variables.
func (c *Config) FromEnv() {
	if c.TigerCenterBase == "" {
		c.TigerCenterBase = os.Getenv("TIGERDINE_TIGERCENTER_BASE")
	}
	if c.FoodTruckURL == "" {
		c.FoodTruckURL = os.Getenv("TIGERDINE_FOODTRUCK_URL")
	}
	if c.FDMPBase == "" {
		c.FDMPBase = os.Getenv("TIGERDINE_FDMP_BASE")
	}
	if c.OccupancyBase == "" {
		c.OccupancyBase = os.Getenv("TIGERDINE_OCCUPANCY_BASE")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.IDMapPath != "" {
		if _, err := os.Stat(c.IDMapPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: id map file not found: %s", c.IDMapPath)
		}
	}

	return nil
}

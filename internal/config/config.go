// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied by MergeWithDefaults(Defaults()).
const (
	DefaultOutputDir         = "output/review_schedule"
	DefaultConcurrency       = 4
	DefaultMinQuality        = 60
	DefaultPublishMinQuality = 80
	DefaultScheduleInterval  = "24h"
	DefaultMetricsAddr       = ":9090"
	DefaultContentVersion    = "2.0"
)

// Config represents the CLI configuration that can be loaded from a JSON or
// YAML file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	VehiclesCSV string `json:"vehicles_csv,omitempty" yaml:"vehicles_csv,omitempty"` // Vehicle master-data CSV
	OutputDir   string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`     // Directory for generated article JSON
	EventsDB    string `json:"events_db,omitempty" yaml:"events_db,omitempty"`       // SQLite file for article events

	// Storage
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL

	// Batch behavior
	Concurrency       int    `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`                 // Parallel generation workers
	MinQuality        int    `json:"min_quality,omitempty" yaml:"min_quality,omitempty"`                 // Reject articles scoring below this
	PublishMinQuality int    `json:"publish_min_quality,omitempty" yaml:"publish_min_quality,omitempty"` // Publish drafts scoring at least this
	ContentVersion    string `json:"content_version,omitempty" yaml:"content_version,omitempty"`         // Version stamped into article metadata

	// Scheduling and observability
	ScheduleInterval string `json:"schedule_interval,omitempty" yaml:"schedule_interval,omitempty"` // Go duration between scheduled runs
	MetricsAddr      string `json:"metrics_addr,omitempty" yaml:"metrics_addr,omitempty"`           // Listen address of the /metrics endpoint
	Verbose          bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`                     // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		OutputDir:         DefaultOutputDir,
		Concurrency:       DefaultConcurrency,
		MinQuality:        DefaultMinQuality,
		PublishMinQuality: DefaultPublishMinQuality,
		ScheduleInterval:  DefaultScheduleInterval,
		MetricsAddr:       DefaultMetricsAddr,
		ContentVersion:    DefaultContentVersion,
	}
}

// LoadConfig loads configuration from a JSON file, or from YAML when the file
// ends in .yaml or .yml. Environment variables in the file are expanded.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
	expanded := []byte(os.ExpandEnv(string(data)))

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.MinQuality < 0 || c.MinQuality > 100 {
		return fmt.Errorf("config error: 'min_quality' must be between 0 and 100")
	}
	if c.PublishMinQuality < 0 || c.PublishMinQuality > 100 {
		return fmt.Errorf("config error: 'publish_min_quality' must be between 0 and 100")
	}

	if c.ScheduleInterval != "" {
		d, err := time.ParseDuration(c.ScheduleInterval)
		if err != nil {
			return fmt.Errorf("config error: invalid 'schedule_interval' %q: %w", c.ScheduleInterval, err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'schedule_interval' must be positive")
		}
	}

	// Validate file paths exist (if specified)
	if c.VehiclesCSV != "" {
		if _, err := os.Stat(c.VehiclesCSV); os.IsNotExist(err) {
			return fmt.Errorf("config error: vehicles file not found: %s", c.VehiclesCSV)
		}
	}

	return nil
}

// Interval returns the parsed schedule interval, or the default when unset
// or invalid.
func (c *Config) Interval() time.Duration {
	if d, err := time.ParseDuration(c.ScheduleInterval); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultScheduleInterval)
	return d
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.VehiclesCSV == "" {
		result.VehiclesCSV = defaults.VehiclesCSV
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.EventsDB == "" {
		result.EventsDB = defaults.EventsDB
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ScheduleInterval == "" {
		result.ScheduleInterval = defaults.ScheduleInterval
	}
	if result.MetricsAddr == "" {
		result.MetricsAddr = defaults.MetricsAddr
	}
	if result.ContentVersion == "" {
		result.ContentVersion = defaults.ContentVersion
	}

	// Int fields: use default if zero
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.MinQuality == 0 {
		result.MinQuality = defaults.MinQuality
	}
	if result.PublishMinQuality == 0 {
		result.PublishMinQuality = defaults.PublishMinQuality
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv fills DatabaseURL from the DATABASE_URL environment variable when
// it is not set.
func (c *Config) ApplyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Package config handles configuration management for estrella.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for estrella.
type Config struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Init holds configuration for the init subcommand.
	Init InitConfig `mapstructure:"init"`

	// ETL holds configuration for the run subcommand.
	ETL ETLConfig `mapstructure:"etl"`
}

// InitConfig holds configuration for source and warehouse initialization.
type InitConfig struct {
	// Seed populates the source tables with generated sample data.
	Seed bool `mapstructure:"seed"`

	// DropExisting drops existing tables before initialization.
	DropExisting bool `mapstructure:"drop_existing"`

	// Products is the number of sample products to generate.
	Products int `mapstructure:"products"`

	// Stores is the number of sample stores to generate.
	Stores int `mapstructure:"stores"`

	// Suppliers is the number of sample suppliers to generate.
	Suppliers int `mapstructure:"suppliers"`

	// Days is the number of calendar days of inventory transactions to generate.
	Days int `mapstructure:"days"`
}

// ETLConfig holds configuration for the transform-and-load pipeline.
type ETLConfig struct {
	// BatchSize is the number of fact rows inserted per batch.
	BatchSize int `mapstructure:"batch_size"`

	// Atomic wraps the whole truncate-and-reload sequence in one transaction.
	// When disabled (the default), fact batches commit independently and a
	// late-batch failure leaves the fact table partially loaded.
	Atomic bool `mapstructure:"atomic"`

	// StrictReferences escalates fact rows dropped for unresolved business
	// keys from a logged occurrence to a pipeline failure.
	StrictReferences bool `mapstructure:"strict_references"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Init: InitConfig{
			Seed:         false,
			DropExisting: false,
			Products:     50,
			Stores:       10,
			Suppliers:    8,
			Days:         90,
		},
		ETL: ETLConfig{
			BatchSize:        100,
			Atomic:           false,
			StrictReferences: false,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./estrella.yaml
// 3. ~/.config/estrella/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("estrella")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "estrella"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	return nil
}

// ValidateInit checks configuration required for the init command.
func (c *Config) ValidateInit() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Init.Seed {
		if c.Init.Products < 1 {
			return fmt.Errorf("init products must be at least 1")
		}
		if c.Init.Stores < 1 {
			return fmt.Errorf("init stores must be at least 1")
		}
		if c.Init.Suppliers < 1 {
			return fmt.Errorf("init suppliers must be at least 1")
		}
		if c.Init.Days < 1 {
			return fmt.Errorf("init days must be at least 1")
		}
	}
	return nil
}

// ValidateRun checks configuration required for the run command.
func (c *Config) ValidateRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ETL.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1")
	}
	return nil
}

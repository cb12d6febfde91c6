package config

import (
	"fmt"
	"strings"
)

// CurrentVersion is the configuration schema version written by Save.
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Sample   SampleConfig   `yaml:"sample"`
}

// DatabaseConfig locates the prjxray database.
type DatabaseConfig struct {
	Dir string `yaml:"dir,omitempty"` // Root of the prjxray database (contains artix7/, kintex7/, ...)
}

// LoggingConfig controls the diagnostic log.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`        // debug, info, warn or error; empty disables logging
	File       string `yaml:"file,omitempty"`         // Optional JSON log file, rotated by size
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`  // Rotate after this many megabytes
	MaxBackups int    `yaml:"max_backups,omitempty"`  // Rotated files to keep
	MaxAgeDays int    `yaml:"max_age_days,omitempty"` // Days to keep rotated files
	Compress   bool   `yaml:"compress,omitempty"`     // Gzip rotated files
}

// SampleConfig holds defaults for the sample command.
type SampleConfig struct {
	Seed uint64 `yaml:"seed,omitempty"` // 0 picks a random seed on every run
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Logging: LoggingConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Validate checks configuration correctness. It does not modify the
// configuration.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}

	if lvl := c.Logging.Level; lvl != "" {
		ok := false
		for _, v := range validLevels {
			if strings.EqualFold(lvl, v) {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("logging.level %q is invalid (expected one of %s)", lvl, strings.Join(validLevels, ", "))
		}
	}

	if c.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("logging.max_size_mb must not be negative (got %d)", c.Logging.MaxSizeMB)
	}
	if c.Logging.MaxBackups < 0 {
		return fmt.Errorf("logging.max_backups must not be negative (got %d)", c.Logging.MaxBackups)
	}
	if c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("logging.max_age_days must not be negative (got %d)", c.Logging.MaxAgeDays)
	}

	return nil
}

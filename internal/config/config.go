// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tallyhq/tally/internal/common"
)

// Config holds the settings the CLI needs to reach the backend and write
// exports.
type Config struct {
	APIBaseURL    string
	APIToken      string
	ExportDir     string
	PageSize      int
	RetryAttempts int
	RetryDelay    time.Duration
	Timeout       time.Duration
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		ExportDir:     "exports",
		PageSize:      100,
		RetryAttempts: 3,
		RetryDelay:    time.Second,
		Timeout:       30 * time.Second,
	}
}

// Load builds the configuration from viper, which the root command has
// already pointed at the config file and TALLY_* environment variables.
func Load() Config {
	cfg := Default()

	if v := viper.GetString("api.base_url"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := viper.GetString("api.token"); v != "" {
		cfg.APIToken = v
	}
	if v := viper.GetString("export.dir"); v != "" {
		cfg.ExportDir = ExpandPath(v)
	}
	if v := viper.GetInt("api.page_size"); v > 0 {
		cfg.PageSize = v
	}
	if v := viper.GetInt("api.retry_attempts"); v > 0 {
		cfg.RetryAttempts = v
	}
	if v := viper.GetDuration("api.retry_delay"); v > 0 {
		cfg.RetryDelay = v
	}
	if v := viper.GetDuration("api.timeout"); v > 0 {
		cfg.Timeout = v
	}

	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("%w: api.base_url (set TALLY_API_BASE_URL or the config file)", common.ErrMissingConfig)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive", common.ErrInvalidConfig)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: retry delay cannot be negative", common.ErrInvalidConfig)
	}
	return nil
}

// Retry returns the retry options derived from the config.
func (c Config) Retry() common.RetryOptions {
	return common.RetryOptions{
		MaxAttempts:  c.RetryAttempts,
		InitialDelay: c.RetryDelay,
	}
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

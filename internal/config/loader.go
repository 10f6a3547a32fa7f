package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadFromEnvironment applies ST_* environment variable overrides
func (c *Config) LoadFromEnvironment() error {
	if v := os.Getenv("ST_DB_DIR"); v != "" {
		c.Database.Dir = v
	}
	if v := os.Getenv("ST_DB_FILENAME"); v != "" {
		c.Database.Filename = v
	}
	if v := os.Getenv("ST_DB_QUERY_TIMEOUT"); v != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(v, c.Database.QueryTimeout)
	}
	if v := os.Getenv("ST_DB_WRITE_TIMEOUT"); v != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(v, c.Database.WriteTimeout)
	}
	if v := os.Getenv("ST_DB_DIR_PERMISSIONS"); v != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(v, 8, c.Database.DirPermissions)
	}
	if v := os.Getenv("ST_VALIDATION_TASK_NAME_MAX"); v != "" {
		c.Validation.TaskNameMaxLength = ParseIntWithFallback(v, c.Validation.TaskNameMaxLength)
	}
	if v := os.Getenv("ST_VALIDATION_MIN_DURATION"); v != "" {
		c.Validation.MinDurationMinutes = ParseIntWithFallback(v, c.Validation.MinDurationMinutes)
	}
	if v := os.Getenv("ST_VALIDATION_MAX_DURATION"); v != "" {
		c.Validation.MaxDurationMinutes = ParseIntWithFallback(v, c.Validation.MaxDurationMinutes)
	}
	if v := os.Getenv("ST_APP_TIMEOUT"); v != "" {
		c.Application.Timeout = ParseDurationWithFallback(v, c.Application.Timeout)
	}
	if v := os.Getenv("ST_APP_VERBOSE"); v != "" {
		c.Application.Verbose = ParseBoolWithFallback(v, c.Application.Verbose)
	}
	return nil
}

// Validate checks that the configuration is internally consistent
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return fmt.Errorf("database directory must not be empty")
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename must not be empty")
	}
	if c.Validation.TaskNameMaxLength < 1 {
		return fmt.Errorf("task name max length must be at least 1")
	}
	if c.Validation.MinDurationMinutes < 1 {
		return fmt.Errorf("minimum duration must be at least 1 minute")
	}
	if c.Validation.MaxDurationMinutes < c.Validation.MinDurationMinutes {
		return fmt.Errorf("maximum duration must not be below the minimum duration")
	}
	if c.Application.Timeout <= 0 {
		return fmt.Errorf("application timeout must be positive")
	}
	return nil
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}

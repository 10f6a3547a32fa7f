package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration options for the application
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"ST_DB_DIR"`
	Filename       string        `env:"ST_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"ST_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"ST_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"ST_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMaxLength  int `env:"ST_VALIDATION_TASK_NAME_MAX"`
	MinDurationMinutes int `env:"ST_VALIDATION_MIN_DURATION"`
	MaxDurationMinutes int `env:"ST_VALIDATION_MAX_DURATION"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"ST_APP_TIMEOUT"`
	Verbose bool          `env:"ST_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".smallthings")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "smallthings.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TaskNameMaxLength:  255,
			MinDurationMinutes: 1,
			MaxDurationMinutes: 30,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// DatabasePath returns the full path of the database file
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

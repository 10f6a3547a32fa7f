package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"smallthings/internal/api"
	"smallthings/internal/config"
	"smallthings/internal/errors"
	"smallthings/internal/repository/sqlite"
	"smallthings/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API) *App {
	return &App{
		api:    apiInstance,
		config: config.NewConfig(),
	}
}

// NewAppWithConfig creates a CLI application with an explicit configuration
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// NewAppWithDefaultRepository creates a CLI application backed by the SQLite
// store at the configured path. This is the production wiring.
func NewAppWithDefaultRepository(cfg *config.Config) (*App, error) {
	if cfg == nil {
		loaded, err := config.NewLoader().Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	if err := os.MkdirAll(cfg.Database.Dir, os.FileMode(cfg.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	apiInstance := api.NewWithValidator(repo, validation.NewTaskValidatorWithConfig(cfg))
	return NewAppWithConfig(apiInstance, cfg), nil
}

// parseTaskID parses a task ID argument
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.NewInvalidInputError("task id", arg, "must be a positive number")
	}
	return id, nil
}

// formatMinutes renders a minute total as "45m" or "2h 05m"
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

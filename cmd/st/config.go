package main

import (
	"fmt"
	"os"

	"smallthings/internal/config"
	"smallthings/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
	cfg *config.Config
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, cfg *config.Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, cfg: cfg}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		return rf.createDevelopmentRepository()
	case Testing:
		return rf.createTestingRepository()
	default:
		return rf.createProductionRepository()
	}
}

// createDevelopmentRepository uses a local database file in the working
// directory so development data stays out of the real store.
func (rf *RepositoryFactory) createDevelopmentRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New("smallthings.db")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return repo, nil
}

// createTestingRepository uses an in-memory database
func (rf *RepositoryFactory) createTestingRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}
	return repo, nil
}

// createProductionRepository uses the configured database location
func (rf *RepositoryFactory) createProductionRepository() (sqlite.Repository, error) {
	if err := os.MkdirAll(rf.cfg.Database.Dir, os.FileMode(rf.cfg.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(rf.cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize production database: %w", err)
	}
	return repo, nil
}

// getEnvironment determines the current environment from ST_ENV
func getEnvironment() Environment {
	switch os.Getenv("ST_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}

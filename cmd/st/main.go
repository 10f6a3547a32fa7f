package main

import (
	"fmt"
	"os"

	"smallthings/internal/api"
	"smallthings/internal/cli"
	"smallthings/internal/config"
	"smallthings/internal/logging"
	"smallthings/internal/validation"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	env := getEnvironment()
	logging.Debugf("starting in %s environment, database at %s", env, cfg.DatabasePath())

	factory := NewRepositoryFactory(env, cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	apiInstance := api.NewWithValidator(repo, validation.NewTaskValidatorWithConfig(cfg))

	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

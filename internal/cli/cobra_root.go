package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"smallthings/internal/api"
	"smallthings/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "st",
		Short: "A command-line focus timer companion for small daily tasks",
		Long: `Small Things (st) keeps a short list of daily tasks, counts finished
focus runs for each of them, and turns the history into statistics.

EXAMPLES:
  st add "Read" 25 "#2196F3"       # Add a 25-minute task with a palette color
  st add "Stretch"                 # Duration and color get sensible defaults
  st list                          # List tasks, newest first
  st complete 1                    # Record one finished run for task 1
  st stats                         # Today / week / month / year statistics
  st summary                       # Per-day history, newest day first
  st colors                        # Show used and free palette colors
  st export                        # Write a timestamped JSON backup
  st import backup.json            # Replace everything with a backup

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    ST_DB_DIR                      Database directory (default: ~/.smallthings)
    ST_DB_FILENAME                 Database filename (default: smallthings.db)
    ST_DB_QUERY_TIMEOUT            Query timeout (default: 10s)
    ST_DB_WRITE_TIMEOUT            Write timeout (default: 5s)

  Validation Configuration:
    ST_VALIDATION_TASK_NAME_MAX    Max task name length (default: 255)
    ST_VALIDATION_MIN_DURATION     Min task duration in minutes (default: 1)
    ST_VALIDATION_MAX_DURATION     Max task duration in minutes (default: 30)

  Application Configuration:
    ST_APP_TIMEOUT                 Application timeout (default: 60s)
    ST_APP_VERBOSE                 Enable verbose output (default: false)

GETTING HELP:
  st [command] --help              # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides ST_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides ST_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides ST_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides ST_DB_WRITE_TIMEOUT)")

	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides ST_VALIDATION_TASK_NAME_MAX)")
	flags.Int("min-duration", 0, "Minimum task duration in minutes (overrides ST_VALIDATION_MIN_DURATION)")
	flags.Int("max-duration", 0, "Maximum task duration in minutes (overrides ST_VALIDATION_MAX_DURATION)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides ST_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides ST_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [name] [duration] [color]",
		Short: "Add a new task",
		Long: `Add a new task to complete focus runs against.

Duration is in minutes and defaults to 25. The color must come from the
palette (see: st colors) and defaults to the next free one.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "List all tasks, newest first, with duration, completed count and color.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit [id] [name] [duration] [color]",
		Short: "Edit a task",
		Long: `Change a task's name, duration or color.

Completion records written before the edit keep the task's old name, color
and duration.`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewEditCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long: `Delete a task. Its completion history is kept, so past statistics
do not change. Asks for confirmation unless -y is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Confirmation may need longer timeout for user interaction
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return NewDeleteCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	completeCmd := &cobra.Command{
		Use:   "complete [id]",
		Short: "Record one finished focus run",
		Long: `Record one finished focus run for a task: its completed count goes up
by one and the run lands in the history with the task's current name, color
and duration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewCompleteCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics",
		Long: `Show completion counts and focused minutes for today, this week, this
month and this year, plus the most and least completed tasks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewStatsCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show per-day completion history",
		Long:  "Show the completion history grouped by day, newest day first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSummaryCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	colorsCmd := &cobra.Command{
		Use:   "colors",
		Short: "Show used and available palette colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewColorsCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Write a JSON backup",
		Long: `Write all tasks and completion history to a JSON backup file. Without
a path the file lands in the current directory under a timestamped name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewExportCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	importCmd := &cobra.Command{
		Use:   "import [path]",
		Short: "Restore from a JSON backup",
		Long: `Replace all tasks and completion history with a backup's contents.
Asks for confirmation unless -y is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Confirmation may need longer timeout for user interaction
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return NewImportCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		editCmd,
		deleteCmd,
		completeCmd,
		statsCmd,
		summaryCmd,
		colorsCmd,
		exportCmd,
		importCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	if taskNameMaxLength, _ := flags.GetInt("task-name-max-length"); taskNameMaxLength > 0 {
		r.config.Validation.TaskNameMaxLength = taskNameMaxLength
	}
	if minDuration, _ := flags.GetInt("min-duration"); minDuration > 0 {
		r.config.Validation.MinDurationMinutes = minDuration
	}
	if maxDuration, _ := flags.GetInt("max-duration"); maxDuration > 0 {
		r.config.Validation.MaxDurationMinutes = maxDuration
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}

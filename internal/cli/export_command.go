package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"smallthings/internal/api"
)

// ExportCommand handles the export command
type ExportCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the export command. Arguments: [directory or file path].
// Without an argument the backup lands in the current directory under a
// timestamped name.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	data, err := c.api.ExportJSON(ctx)
	if err != nil {
		return c.errorHandler.Handle("export backup", err)
	}

	path := c.api.ExportFilename(timeNow())
	if len(args) > 0 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			path = filepath.Join(args[0], path)
		} else {
			path = args[0]
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	fmt.Printf("Exported backup to %s\n", path)
	return nil
}

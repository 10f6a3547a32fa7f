package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"smallthings/internal/api"
	"smallthings/internal/errors"
)

// ImportCommand handles the import command
type ImportCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	stdin        io.Reader
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		stdin:        os.Stdin,
	}
}

// Execute runs the import command. Arguments: path [-y].
// Importing replaces every task and completion record with the backup's
// contents, so it asks for confirmation first.
func (c *ImportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "import", "usage: st import <backup.json> [-y]")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	if !hasYesFlag(args[1:]) {
		fmt.Print("Importing replaces ALL current tasks and history. Continue? [y/N]: ")
		var input string
		fmt.Fscanln(c.stdin, &input)
		if input != "y" && input != "Y" {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	if err := c.api.ImportJSON(ctx, data); err != nil {
		return c.errorHandler.Handle("import backup", err)
	}

	fmt.Printf("Imported backup from %s\n", args[0])
	return nil
}

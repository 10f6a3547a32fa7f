package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"smallthings/internal/api"
	"smallthings/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	stdin        io.Reader
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		stdin:        os.Stdin,
	}
}

// Execute runs the delete command. Arguments: id [-y].
// The task's completion records are kept, so past statistics survive.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: st delete <id> [-y]")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, err := c.api.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	if !hasYesFlag(args[1:]) {
		fmt.Printf("Delete task %q? Its completion history is kept. [y/N]: ", task.Name)
		var input string
		fmt.Fscanln(c.stdin, &input)
		if input != "y" && input != "Y" {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := c.api.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Deleted task: %s\n", task.Name)
	return nil
}

// hasYesFlag reports whether the arguments skip the confirmation prompt
func hasYesFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-y" || arg == "--yes" {
			return true
		}
	}
	return false
}

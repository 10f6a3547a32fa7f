package cli

import (
	"context"
	"fmt"

	"smallthings/internal/api"
	"smallthings/internal/errors"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the complete command. Arguments: id.
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "complete", "usage: st complete <id>")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	record, err := c.api.CompleteTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	task, err := c.api.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	fmt.Printf("Completed %s (%s). Done %d times so far.\n",
		record.TaskName, formatMinutes(record.Duration), task.CompletedCount)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strconv"

	"smallthings/internal/api"
	"smallthings/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command. Arguments: id name [duration] [color].
// Omitted duration and color keep the task's current values. Past completion
// records are never rewritten.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "edit", "usage: st edit <id> \"new name\" [duration] [color]")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	current, err := c.api.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	name := args[1]
	duration := current.DurationMinutes
	colorCode := current.ColorCode

	if len(args) > 2 {
		parsed, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.NewInvalidInputError("duration", args[2], "must be a number of minutes")
		}
		duration = parsed
	}
	if len(args) > 3 {
		colorCode = args[3]
	}

	task, err := c.api.UpdateTask(ctx, id, name, colorCode, duration)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	fmt.Printf("Updated task %d: %s (%s, %s)\n", task.ID, task.Name, formatMinutes(task.DurationMinutes), task.ColorCode)
	return nil
}

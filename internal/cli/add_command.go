package cli

import (
	"context"
	"fmt"
	"strconv"

	"smallthings/internal/api"
	"smallthings/internal/errors"
)

const defaultDurationMinutes = 25

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. Arguments: name [duration] [color].
// Duration defaults to 25 minutes, color to the next free palette color.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: st add \"task name\" [duration] [color]")
	}
	name := args[0]

	duration := defaultDurationMinutes
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.NewInvalidInputError("duration", args[1], "must be a number of minutes")
		}
		duration = parsed
	}

	var colorCode string
	if len(args) > 2 {
		colorCode = args[2]
	} else {
		available, err := c.api.AvailableColors(ctx)
		if err != nil {
			return c.errorHandler.Handle("pick a color", err)
		}
		if len(available) == 0 {
			return errors.NewValidationError("all palette colors are in use, pass a color explicitly", nil)
		}
		colorCode = available[0]
	}

	task, err := c.api.CreateTask(ctx, name, colorCode, duration)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task %d: %s (%s, %s)\n", task.ID, task.Name, formatMinutes(task.DurationMinutes), task.ColorCode)
	return nil
}

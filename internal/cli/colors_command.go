package cli

import (
	"context"
	"fmt"
	"strings"

	"smallthings/internal/api"
)

// ColorsCommand handles the colors command
type ColorsCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewColorsCommand creates a new colors command handler
func NewColorsCommand(app *App) *ColorsCommand {
	return &ColorsCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the colors command
func (c *ColorsCommand) Execute(ctx context.Context, args []string) error {
	used, err := c.api.UsedColors(ctx)
	if err != nil {
		return c.errorHandler.Handle("list colors", err)
	}
	available, err := c.api.AvailableColors(ctx)
	if err != nil {
		return c.errorHandler.Handle("list colors", err)
	}

	if len(used) > 0 {
		fmt.Printf("In use:    %s\n", strings.Join(used, " "))
	}
	if len(available) > 0 {
		fmt.Printf("Available: %s\n", strings.Join(available, " "))
	} else {
		fmt.Println("Available: none, the whole palette is in use")
	}
	return nil
}

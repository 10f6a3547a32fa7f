package cli

import (
	"context"
	"fmt"

	"smallthings/internal/api"
)

// ListCommand handles the list command
type ListCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet. Add one with: st add \"task name\"")
		return nil
	}

	fmt.Printf("%-5s %-30s %-9s %-10s %s\n", "ID", "NAME", "DURATION", "COMPLETED", "COLOR")
	for _, task := range tasks {
		fmt.Printf("%-5d %-30s %-9s %-10d %s\n",
			task.ID, task.Name, formatMinutes(task.DurationMinutes), task.CompletedCount, task.ColorCode)
	}
	return nil
}

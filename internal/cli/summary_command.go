package cli

import (
	"context"
	"fmt"

	"smallthings/internal/api"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the summary command, printing one block per day with
// completions, newest day first.
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	summaries, err := c.api.DailySummaries(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute summary", err)
	}

	if len(summaries) == 0 {
		fmt.Println("No completions yet.")
		return nil
	}

	now := timeNow()
	for _, day := range summaries {
		label := day.Date.Format("Mon 2 Jan 2006")
		if day.IsToday(now) {
			label = "Today"
		}
		fmt.Printf("%s: %d completed, %s focused\n", label, day.TaskCount, formatMinutes(day.TotalDuration))
		if day.MostFocusedTask != "" {
			fmt.Printf("  most focused: %s (%d times, %s)\n",
				day.MostFocusedTask, day.MostFocusedTaskCount, formatMinutes(day.MostFocusedTaskDuration))
		}
		for _, record := range day.Records {
			fmt.Printf("  %s  %-30s %s\n",
				record.CompletedAt.Format("15:04"), record.TaskName, formatMinutes(record.Duration))
		}
	}
	return nil
}

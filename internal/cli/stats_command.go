package cli

import (
	"context"
	"fmt"

	"smallthings/internal/api"
	"smallthings/internal/services"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	now := timeNow()

	windows := []struct {
		label string
		fetch func(context.Context) (services.WindowStats, error)
	}{
		{"Today", func(ctx context.Context) (services.WindowStats, error) { return c.api.TodayStats(ctx, now) }},
		{"This week", func(ctx context.Context) (services.WindowStats, error) { return c.api.WeekStats(ctx, now) }},
		{"This month", func(ctx context.Context) (services.WindowStats, error) { return c.api.MonthStats(ctx, now) }},
		{"This year", func(ctx context.Context) (services.WindowStats, error) { return c.api.YearStats(ctx, now) }},
	}

	for _, w := range windows {
		stats, err := w.fetch(ctx)
		if err != nil {
			return c.errorHandler.Handle("compute stats", err)
		}
		fmt.Printf("%-11s %3d completed, %s focused\n", w.label, stats.Count, formatMinutes(stats.TotalDurationMinutes))
	}

	total, err := c.api.TotalCompletedCount(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute stats", err)
	}
	fmt.Printf("%-11s %3d completed\n", "All time", total)

	if most, ok, err := c.api.MostFrequentTask(ctx); err != nil {
		return c.errorHandler.Handle("compute stats", err)
	} else if ok {
		fmt.Printf("Most completed:  %s (%d times)\n", most.Name, most.Count)
	}

	if least, ok, err := c.api.LeastFrequentTask(ctx); err != nil {
		return c.errorHandler.Handle("compute stats", err)
	} else if ok {
		fmt.Printf("Least completed: %s (%d times)\n", least.Name, least.Count)
	}

	return nil
}

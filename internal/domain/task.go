package domain

import "time"

// Task is a user-defined timed activity with a target duration and display
// color. ID and CreatedAt are assigned once at creation and never change;
// CompletedCount grows by one for every finished timer run.
type Task struct {
	ID              int64
	Name            string
	ColorCode       string
	DurationMinutes int
	CreatedAt       time.Time
	CompletedCount  int
}

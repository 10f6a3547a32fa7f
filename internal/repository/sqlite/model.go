package sqlite

import "time"

// Task represents a row in the tasks table.
type Task struct {
	ID              int64
	Name            string
	ColorCode       string
	DurationMinutes int
	CreatedAt       time.Time
	CompletedCount  int
}

// CompletionRecord represents a row in the completion_records table.
//
// TaskName, TaskColor and Duration are copies of the owning task's values at
// the moment of completion. They are never updated afterwards, so records keep
// displaying historical values even when the task is renamed, recolored or
// deleted.
type CompletionRecord struct {
	RecordID    int64
	TaskID      int64
	TaskName    string
	TaskColor   string
	CompletedAt time.Time
	Duration    int
}

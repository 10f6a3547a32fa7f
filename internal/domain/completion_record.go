package domain

import "time"

// CompletionRecord is an immutable log entry created each time a timer run
// for a task ends. TaskName, TaskColor and Duration are snapshots of the
// task's values at completion time, not live references; they survive later
// renames, recolors and deletion of the task.
type CompletionRecord struct {
	RecordID    int64
	TaskID      int64
	TaskName    string
	TaskColor   string
	CompletedAt time.Time
	Duration    int
}

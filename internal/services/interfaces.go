package services

import (
	"context"
	"time"

	"smallthings/internal/domain"
	"smallthings/internal/timeutil"
)

// WindowStats summarizes the completion records inside one time window.
type WindowStats struct {
	Count                int
	TotalDurationMinutes int
}

// TaskFrequency pairs a task name with how often it appears in a window.
type TaskFrequency struct {
	Name  string
	Count int
}

// DailySummary is the derived per-day aggregate of completion records. It is
// recomputed on demand and never persisted.
type DailySummary struct {
	Date                    time.Time // start of the local day
	TaskCount               int
	TotalDuration           int // minutes
	MostFocusedTask         string
	MostFocusedTaskCount    int
	MostFocusedTaskDuration int
	Records                 []domain.CompletionRecord // newest first
}

// IsToday reports whether the summary covers the day containing now.
func (s *DailySummary) IsToday(now time.Time) bool {
	return timeutil.SameDay(now, s.Date)
}

// BackupDocument is a portable snapshot of all tasks and completion records.
// BackupDate is informational and never re-imported.
type BackupDocument struct {
	Tasks             []domain.Task
	CompletionRecords []domain.CompletionRecord
	BackupDate        time.Time
}

// StatsService derives statistics from tasks and completion records.
type StatsService interface {
	// Window fetches; each pairs ListRecordsSince with the matching bucket
	// bound derived from now.
	TodayRecords(ctx context.Context, now time.Time) ([]domain.CompletionRecord, error)
	WeekRecords(ctx context.Context, now time.Time) ([]domain.CompletionRecord, error)
	MonthRecords(ctx context.Context, now time.Time) ([]domain.CompletionRecord, error)
	YearRecords(ctx context.Context, now time.Time) ([]domain.CompletionRecord, error)

	// Pure folds over already-fetched records; never fail on empty input.
	WindowStats(records []domain.CompletionRecord) WindowStats
	MostFrequentTask(records []domain.CompletionRecord) (TaskFrequency, bool)
	LeastFrequentTask(tasks []domain.Task, records []domain.CompletionRecord) (TaskFrequency, bool)

	// DailySummaries groups all records by local day, newest day first.
	DailySummaries(ctx context.Context) ([]DailySummary, error)
}

// BackupService serializes the full store state and restores it.
type BackupService interface {
	Export(ctx context.Context) (*BackupDocument, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	ImportJSON(ctx context.Context, data []byte) error
	ExportFilename(now time.Time) string
}

// ServiceContainer bundles all services for injection into the API layer.
type ServiceContainer struct {
	StatsService  StatsService
	BackupService BackupService
}

package api

import (
	"context"
	"fmt"
	"time"

	"smallthings/internal/domain"
	"smallthings/internal/errors"
	"smallthings/internal/repository/sqlite"
	"smallthings/internal/services"
	"smallthings/internal/validation"
)

// API defines the interface for all task, completion and backup operations.
type API interface {
	// Task operations
	CreateTask(ctx context.Context, name, colorCode string, durationMinutes int) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, name, colorCode string, durationMinutes int) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// Color palette
	UsedColors(ctx context.Context) ([]string, error)
	AvailableColors(ctx context.Context) ([]string, error)

	// Completion operations
	CompleteTask(ctx context.Context, id int64) (*domain.CompletionRecord, error)
	TotalCompletedCount(ctx context.Context) (int, error)

	// Statistics
	TodayStats(ctx context.Context, now time.Time) (services.WindowStats, error)
	WeekStats(ctx context.Context, now time.Time) (services.WindowStats, error)
	MonthStats(ctx context.Context, now time.Time) (services.WindowStats, error)
	YearStats(ctx context.Context, now time.Time) (services.WindowStats, error)
	TodayRecords(ctx context.Context, now time.Time) ([]domain.CompletionRecord, error)
	MostFrequentTask(ctx context.Context) (services.TaskFrequency, bool, error)
	LeastFrequentTask(ctx context.Context) (services.TaskFrequency, bool, error)
	DailySummaries(ctx context.Context) ([]services.DailySummary, error)

	// Backup
	ExportJSON(ctx context.Context) ([]byte, error)
	ImportJSON(ctx context.Context, data []byte) error
	ExportFilename(now time.Time) string
}

type apiImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TaskValidator
	stats     services.StatsService
	backup    services.BackupService
}

// New creates a new API instance backed by the given repository.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewTaskValidator(),
		stats:     services.NewStatsService(repo),
		backup:    services.NewBackupService(repo),
	}
}

// NewWithValidator creates an API instance using a preconfigured validator.
func NewWithValidator(repo sqlite.Repository, validator *validation.TaskValidator) API {
	return &apiImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validator,
		stats:     services.NewStatsService(repo),
		backup:    services.NewBackupService(repo),
	}
}

// Task CRUD implementations

func (a *apiImpl) CreateTask(ctx context.Context, name, colorCode string, durationMinutes int) (*domain.Task, error) {
	cleanedName := a.validator.CleanName(name)
	if err := a.validator.ValidateTask(cleanedName, colorCode, durationMinutes); err != nil {
		return nil, err
	}

	dbTask := &sqlite.Task{
		Name:            cleanedName,
		ColorCode:       colorCode,
		DurationMinutes: durationMinutes,
	}
	if err := a.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}
	domainTask := a.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	dbTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	domainTask := a.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	domainTasks := make([]*domain.Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		domainTask := a.mapper.Task.FromDatabase(*dbTask)
		domainTasks[i] = &domainTask
	}
	return domainTasks, nil
}

// UpdateTask replaces a task's name, color and duration. Creation time and
// completed count are preserved.
func (a *apiImpl) UpdateTask(ctx context.Context, id int64, name, colorCode string, durationMinutes int) (*domain.Task, error) {
	cleanedName := a.validator.CleanName(name)
	if err := a.validator.ValidateTask(cleanedName, colorCode, durationMinutes); err != nil {
		return nil, err
	}

	dbTask := &sqlite.Task{
		ID:              id,
		Name:            cleanedName,
		ColorCode:       colorCode,
		DurationMinutes: durationMinutes,
	}
	updated, err := a.repo.UpdateTask(ctx, dbTask)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	return a.GetTask(ctx, id)
}

// DeleteTask removes a task. Its completion records stay in the store, so
// past statistics are unaffected.
func (a *apiImpl) DeleteTask(ctx context.Context, id int64) error {
	deleted, err := a.repo.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	return nil
}

// Color palette

func (a *apiImpl) UsedColors(ctx context.Context) ([]string, error) {
	return a.repo.UsedColors(ctx)
}

func (a *apiImpl) AvailableColors(ctx context.Context) ([]string, error) {
	used, err := a.repo.UsedColors(ctx)
	if err != nil {
		return nil, err
	}
	return domain.AvailableColors(used), nil
}

// Completion operations

// CompleteTask registers one finished focus run for the task: the task's
// completed count goes up by one and a completion record carrying the task's
// current name, color and duration is inserted. The record keeps those values
// even if the task is later edited or deleted.
func (a *apiImpl) CompleteTask(ctx context.Context, id int64) (*domain.CompletionRecord, error) {
	dbTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := a.repo.IncrementCompletedCount(ctx, id); err != nil {
		return nil, err
	}

	dbRecord := &sqlite.CompletionRecord{
		TaskID:    dbTask.ID,
		TaskName:  dbTask.Name,
		TaskColor: dbTask.ColorCode,
		Duration:  dbTask.DurationMinutes,
	}
	if err := a.repo.CreateCompletionRecord(ctx, dbRecord); err != nil {
		return nil, err
	}

	domainRecord := a.mapper.CompletionRecord.FromDatabase(*dbRecord)
	return &domainRecord, nil
}

func (a *apiImpl) TotalCompletedCount(ctx context.Context) (int, error) {
	return a.repo.TotalCompletedCount(ctx)
}

// Statistics

func (a *apiImpl) windowStats(records []domain.CompletionRecord, err error) (services.WindowStats, error) {
	if err != nil {
		return services.WindowStats{}, err
	}
	return a.stats.WindowStats(records), nil
}

func (a *apiImpl) TodayStats(ctx context.Context, now time.Time) (services.WindowStats, error) {
	return a.windowStats(a.stats.TodayRecords(ctx, now))
}

func (a *apiImpl) WeekStats(ctx context.Context, now time.Time) (services.WindowStats, error) {
	return a.windowStats(a.stats.WeekRecords(ctx, now))
}

func (a *apiImpl) MonthStats(ctx context.Context, now time.Time) (services.WindowStats, error) {
	return a.windowStats(a.stats.MonthRecords(ctx, now))
}

func (a *apiImpl) YearStats(ctx context.Context, now time.Time) (services.WindowStats, error) {
	return a.windowStats(a.stats.YearRecords(ctx, now))
}

func (a *apiImpl) TodayRecords(ctx context.Context, now time.Time) ([]domain.CompletionRecord, error) {
	return a.stats.TodayRecords(ctx, now)
}

// MostFrequentTask reports the task name appearing most often across all
// completion records. The second return is false when there are no records.
func (a *apiImpl) MostFrequentTask(ctx context.Context) (services.TaskFrequency, bool, error) {
	dbRecords, err := a.repo.ListAllRecords(ctx)
	if err != nil {
		return services.TaskFrequency{}, false, err
	}
	records := a.mapper.CompletionRecord.FromDatabaseSlice(dbRecords)
	freq, ok := a.stats.MostFrequentTask(records)
	return freq, ok, nil
}

// LeastFrequentTask reports the current task completed least often, counting
// tasks with no completions at all. The second return is false when there are
// no tasks.
func (a *apiImpl) LeastFrequentTask(ctx context.Context) (services.TaskFrequency, bool, error) {
	dbTasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return services.TaskFrequency{}, false, err
	}
	dbRecords, err := a.repo.ListAllRecords(ctx)
	if err != nil {
		return services.TaskFrequency{}, false, err
	}
	tasks := a.mapper.Task.FromDatabaseSlice(dbTasks)
	records := a.mapper.CompletionRecord.FromDatabaseSlice(dbRecords)
	freq, ok := a.stats.LeastFrequentTask(tasks, records)
	return freq, ok, nil
}

func (a *apiImpl) DailySummaries(ctx context.Context) ([]services.DailySummary, error) {
	return a.stats.DailySummaries(ctx)
}

// Backup

func (a *apiImpl) ExportJSON(ctx context.Context) ([]byte, error) {
	return a.backup.ExportJSON(ctx)
}

func (a *apiImpl) ImportJSON(ctx context.Context, data []byte) error {
	return a.backup.ImportJSON(ctx, data)
}

func (a *apiImpl) ExportFilename(now time.Time) string {
	return a.backup.ExportFilename(now)
}

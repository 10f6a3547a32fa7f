package api

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"smallthings/internal/errors"
	"smallthings/internal/repository/sqlite"
)

func setupTestAPI(t *testing.T) API {
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "smallthings.db"))
	if err != nil {
		t.Fatalf("failed to create repo: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return New(repo)
}

func TestAPI_TaskCRUD(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	// Create
	task, err := api.CreateTask(ctx, "  Read  ", "#2196F3", 25)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.ID == 0 || task.Name != "Read" {
		t.Errorf("unexpected task: %+v", task)
	}

	// Get
	got, err := api.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.ID != task.ID || got.Name != "Read" || got.ColorCode != "#2196F3" || got.DurationMinutes != 25 {
		t.Errorf("GetTask returned wrong task: %+v", got)
	}

	// List
	tasks, err := api.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected 1 task, got %d", len(tasks))
	}

	// Update
	updated, err := api.UpdateTask(ctx, task.ID, "Read books", "#FF5252", 30)
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.Name != "Read books" || updated.ColorCode != "#FF5252" || updated.DurationMinutes != 30 {
		t.Errorf("UpdateTask did not apply changes: %+v", updated)
	}
	if !updated.CreatedAt.Equal(got.CreatedAt) {
		t.Errorf("UpdateTask changed CreatedAt: %v != %v", updated.CreatedAt, got.CreatedAt)
	}

	// Delete
	if err := api.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	tasks, _ = api.ListTasks(ctx)
	if len(tasks) != 0 {
		t.Errorf("expected 0 tasks after delete, got %d", len(tasks))
	}
}

func TestAPI_TaskNotFound(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	if _, err := api.GetTask(ctx, 42); !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		t.Errorf("GetTask: expected NotFound, got %v", err)
	}
	if _, err := api.UpdateTask(ctx, 42, "Read", "#2196F3", 25); !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		t.Errorf("UpdateTask: expected NotFound, got %v", err)
	}
	if err := api.DeleteTask(ctx, 42); !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		t.Errorf("DeleteTask: expected NotFound, got %v", err)
	}
	if _, err := api.CompleteTask(ctx, 42); !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		t.Errorf("CompleteTask: expected NotFound, got %v", err)
	}
}

func TestAPI_CreateTaskValidation(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		taskName string
		color    string
		duration int
		errType  errors.ErrorType
	}{
		{"blank name", "   ", "#2196F3", 25, errors.ErrorTypeValidation},
		{"duration too small", "Read", "#2196F3", 0, errors.ErrorTypeInvalidInput},
		{"duration too large", "Read", "#2196F3", 31, errors.ErrorTypeInvalidInput},
		{"unknown color", "Read", "#123456", 25, errors.ErrorTypeInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := api.CreateTask(ctx, tc.taskName, tc.color, tc.duration)
			if !errors.IsErrorType(err, tc.errType) {
				t.Errorf("expected %s error, got %v", tc.errType, err)
			}
		})
	}

	tasks, _ := api.ListTasks(ctx)
	if len(tasks) != 0 {
		t.Errorf("invalid creates must not persist, found %d tasks", len(tasks))
	}
}

func TestAPI_CompleteTask(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	task, err := api.CreateTask(ctx, "Read", "#2196F3", 25)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	record, err := api.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}
	if record.TaskID != task.ID || record.TaskName != "Read" || record.TaskColor != "#2196F3" || record.Duration != 25 {
		t.Errorf("record does not snapshot the task: %+v", record)
	}
	if record.CompletedAt.IsZero() {
		t.Error("record CompletedAt was not stamped")
	}

	got, _ := api.GetTask(ctx, task.ID)
	if got.CompletedCount != 1 {
		t.Errorf("expected completed count 1, got %d", got.CompletedCount)
	}

	stats, err := api.TodayStats(ctx, time.Now())
	if err != nil {
		t.Fatalf("TodayStats failed: %v", err)
	}
	if stats.Count != 1 || stats.TotalDurationMinutes != 25 {
		t.Errorf("expected today stats {1 25}, got %+v", stats)
	}

	total, _ := api.TotalCompletedCount(ctx)
	if total != 1 {
		t.Errorf("expected total completed count 1, got %d", total)
	}
}

func TestAPI_RecordsSurviveTaskEditAndDelete(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	task, err := api.CreateTask(ctx, "Read", "#2196F3", 25)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if _, err := api.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}

	// Editing the task must not rewrite the snapshot in past records.
	if _, err := api.UpdateTask(ctx, task.ID, "Write", "#FF5252", 10); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	records, err := api.TodayRecords(ctx, time.Now())
	if err != nil {
		t.Fatalf("TodayRecords failed: %v", err)
	}
	if len(records) != 1 || records[0].TaskName != "Read" || records[0].TaskColor != "#2196F3" || records[0].Duration != 25 {
		t.Errorf("record snapshot changed after edit: %+v", records)
	}

	// Deleting the task must leave its records in place.
	if err := api.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	records, _ = api.TodayRecords(ctx, time.Now())
	if len(records) != 1 {
		t.Errorf("expected 1 record after task delete, got %d", len(records))
	}

	freq, ok, err := api.MostFrequentTask(ctx)
	if err != nil || !ok {
		t.Fatalf("MostFrequentTask failed: ok=%v err=%v", ok, err)
	}
	if freq.Name != "Read" || freq.Count != 1 {
		t.Errorf("expected {Read 1}, got %+v", freq)
	}
}

func TestAPI_AvailableColors(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	all, err := api.AvailableColors(ctx)
	if err != nil {
		t.Fatalf("AvailableColors failed: %v", err)
	}
	if len(all) != 15 {
		t.Fatalf("expected the full palette of 15 colors, got %d", len(all))
	}

	if _, err := api.CreateTask(ctx, "Read", "#2196F3", 25); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if _, err := api.CreateTask(ctx, "Write", "#FF5252", 10); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	available, err := api.AvailableColors(ctx)
	if err != nil {
		t.Fatalf("AvailableColors failed: %v", err)
	}
	if len(available) != 13 {
		t.Errorf("expected 13 remaining colors, got %d", len(available))
	}
	for _, c := range available {
		if c == "#2196F3" || c == "#FF5252" {
			t.Errorf("used color %s still offered", c)
		}
	}

	used, _ := api.UsedColors(ctx)
	if len(used) != 2 {
		t.Errorf("expected 2 used colors, got %d", len(used))
	}
}

func TestAPI_LeastFrequentTaskCountsNeverCompleted(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	read, err := api.CreateTask(ctx, "Read", "#2196F3", 25)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if _, err := api.CreateTask(ctx, "Write", "#FF5252", 10); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if _, err := api.CompleteTask(ctx, read.ID); err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}

	freq, ok, err := api.LeastFrequentTask(ctx)
	if err != nil || !ok {
		t.Fatalf("LeastFrequentTask failed: ok=%v err=%v", ok, err)
	}
	if freq.Name != "Write" || freq.Count != 0 {
		t.Errorf("expected {Write 0}, got %+v", freq)
	}
}

func TestAPI_BackupRoundTrip(t *testing.T) {
	source := setupTestAPI(t)
	ctx := context.Background()

	task, err := source.CreateTask(ctx, "Read", "#2196F3", 25)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if _, err := source.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}

	data, err := source.ExportJSON(ctx)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	target := setupTestAPI(t)
	if err := target.ImportJSON(ctx, data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	tasks, err := target.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != task.ID || tasks[0].Name != "Read" || tasks[0].CompletedCount != 1 {
		t.Errorf("imported tasks do not match export: %+v", tasks)
	}

	total, _ := target.TotalCompletedCount(ctx)
	if total != 1 {
		t.Errorf("expected total completed count 1 after import, got %d", total)
	}
}

func TestAPI_ImportRejectsMalformedDataUntouched(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	if _, err := api.CreateTask(ctx, "Read", "#2196F3", 25); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	err := api.ImportJSON(ctx, []byte(`{"tasks": "oops"}`))
	if !errors.IsErrorType(err, errors.ErrorTypeFormat) {
		t.Fatalf("expected format error, got %v", err)
	}

	tasks, _ := api.ListTasks(ctx)
	if len(tasks) != 1 {
		t.Errorf("failed import must leave the store untouched, got %d tasks", len(tasks))
	}
}

package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smallthings/internal/repository/sqlite"
)

func setupTestRepo(t *testing.T) *sqlite.SQLiteRepository {
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "smallthings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

// seedStore installs tasks and records with explicit timestamps. ReplaceAll
// preserves supplied IDs and instants, which direct inserts would stamp.
func seedStore(t *testing.T, repo *sqlite.SQLiteRepository, tasks []*sqlite.Task, records []*sqlite.CompletionRecord) {
	t.Helper()
	require.NoError(t, repo.ReplaceAll(context.Background(), tasks, records))
}

func taskFixture(id int64, name, color string, minutes, completed int) *sqlite.Task {
	// Distinct creation instants keep ListTasks ordering deterministic.
	return &sqlite.Task{
		ID:              id,
		Name:            name,
		ColorCode:       color,
		DurationMinutes: minutes,
		CreatedAt:       time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
		CompletedCount:  completed,
	}
}

func recordFixture(id, taskID int64, name string, completedAt time.Time, minutes int) *sqlite.CompletionRecord {
	return &sqlite.CompletionRecord{
		RecordID:    id,
		TaskID:      taskID,
		TaskName:    name,
		TaskColor:   "#2196F3",
		CompletedAt: completedAt,
		Duration:    minutes,
	}
}

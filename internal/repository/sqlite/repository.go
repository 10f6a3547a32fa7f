package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smallthings/internal/errors"
	"smallthings/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Repository defines the interface for database operations
type Repository interface {
	// Task store
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	UpdateTask(ctx context.Context, task *Task) (bool, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	UsedColors(ctx context.Context) ([]string, error)
	IncrementCompletedCount(ctx context.Context, id int64) (int, error)
	TotalCompletedCount(ctx context.Context) (int, error)

	// Completion record store
	CreateCompletionRecord(ctx context.Context, record *CompletionRecord) error
	ListRecordsSince(ctx context.Context, bound time.Time) ([]*CompletionRecord, error)
	ListAllRecords(ctx context.Context) ([]*CompletionRecord, error)
	ClearAllRecords(ctx context.Context) error

	// Backup restore
	ReplaceAll(ctx context.Context, tasks []*Task, records []*CompletionRecord) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// A single connection serializes all store access, so no reader can
	// observe a half-finished restore.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, errors.NewStorageError(fmt.Sprintf("exec pragma %q", p), err)
		}
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a new task and assigns its ID. A zero CreatedAt is
// stamped with the current instant.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = timeNow()
	}

	query := `
	INSERT INTO tasks (name, color_code, duration_minutes, created_at, completed_count)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Name, task.ColorCode, task.DurationMinutes, FormatTimeForDB(task.CreatedAt), task.CompletedCount)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID. Returns NotFound when no row matched.
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, name, color_code, duration_minutes, created_at, completed_count
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// UpdateTask replaces name, color and duration for the matching row.
// CreatedAt and CompletedCount are never touched. Returns false when no row
// matched the task's ID.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) (bool, error) {
	query := `
	UPDATE tasks
	SET name = ?, color_code = ?, duration_minutes = ?
	WHERE id = ?`

	rows, err := ExecuteWithRowsAffected(ctx, r.db, query,
		task.Name, task.ColorCode, task.DurationMinutes, task.ID)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// DeleteTask removes a task row. Completion records referencing the task are
// left in place. Returns false when no row matched.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM tasks WHERE id = ?`
	rows, err := ExecuteWithRowsAffected(ctx, r.db, query, id)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// ListTasks retrieves all tasks, newest first
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, name, color_code, duration_minutes, created_at, completed_count
	FROM tasks
	ORDER BY created_at DESC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UsedColors returns the distinct color codes currently assigned to tasks
func (r *SQLiteRepository) UsedColors(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT color_code FROM tasks`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, HandleStorageError("query used colors", err)
	}
	defer rows.Close()

	var colors []string
	for rows.Next() {
		var color string
		if err := rows.Scan(&color); err != nil {
			return nil, HandleStorageError("scan used colors", err)
		}
		colors = append(colors, color)
	}
	if err := rows.Err(); err != nil {
		return nil, HandleStorageError("scan used colors", err)
	}

	return colors, nil
}

// IncrementCompletedCount atomically adds 1 to a task's completed count and
// returns the resulting value. Returns NotFound when the task does not exist.
func (r *SQLiteRepository) IncrementCompletedCount(ctx context.Context, id int64) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, HandleStorageError("begin increment", err)
	}
	defer tx.Rollback()

	rows, err := ExecuteWithRowsAffected(ctx, tx,
		`UPDATE tasks SET completed_count = completed_count + 1 WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}

	var count int
	if err := tx.QueryRowContext(ctx,
		`SELECT completed_count FROM tasks WHERE id = ?`, id).Scan(&count); err != nil {
		return 0, HandleStorageError("read completed count", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, HandleStorageError("commit increment", err)
	}
	return count, nil
}

// TotalCompletedCount returns the sum of completed counts across all tasks
func (r *SQLiteRepository) TotalCompletedCount(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(SUM(completed_count), 0) FROM tasks`

	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, HandleStorageError("sum completed counts", err)
	}
	return total, nil
}

// CreateCompletionRecord inserts a new completion record and assigns its ID.
// CompletedAt is always stamped by the store with the current instant.
func (r *SQLiteRepository) CreateCompletionRecord(ctx context.Context, record *CompletionRecord) error {
	record.CompletedAt = timeNow()

	query := `
	INSERT INTO completion_records (task_id, task_name, task_color, completed_at, duration)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		record.TaskID, record.TaskName, record.TaskColor, FormatTimeForDB(record.CompletedAt), record.Duration)
	if err != nil {
		return err
	}

	record.RecordID = id
	return nil
}

// ListRecordsSince retrieves all records completed at or after bound, newest
// first. The bound is inclusive; there is no upper bound.
func (r *SQLiteRepository) ListRecordsSince(ctx context.Context, bound time.Time) ([]*CompletionRecord, error) {
	query := `
	SELECT record_id, task_id, task_name, task_color, completed_at, duration
	FROM completion_records
	WHERE completed_at >= ?
	ORDER BY completed_at DESC`

	return QueryMultiple(ctx, r.db, query, ScanCompletionRecords, "completion records", FormatTimeForDB(bound))
}

// ListAllRecords retrieves every completion record, newest first
func (r *SQLiteRepository) ListAllRecords(ctx context.Context) ([]*CompletionRecord, error) {
	query := `
	SELECT record_id, task_id, task_name, task_color, completed_at, duration
	FROM completion_records
	ORDER BY completed_at DESC`

	return QueryMultiple(ctx, r.db, query, ScanCompletionRecords, "completion records")
}

// ClearAllRecords deletes every completion record
func (r *SQLiteRepository) ClearAllRecords(ctx context.Context) error {
	_, err := ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM completion_records`)
	return err
}

// ReplaceAll clears both tables and inserts the given tasks and records,
// preserving their original IDs and counts. The whole restore runs in a
// single transaction so a mid-import failure leaves the store unchanged.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, tasks []*Task, records []*CompletionRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleStorageError("begin restore", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM completion_records`); err != nil {
		return HandleStorageError("clear completion records", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return HandleStorageError("clear tasks", err)
	}

	taskQuery := `
	INSERT INTO tasks (id, name, color_code, duration_minutes, created_at, completed_count)
	VALUES (?, ?, ?, ?, ?, ?)`
	for _, task := range tasks {
		_, err := tx.ExecContext(ctx, taskQuery,
			task.ID, task.Name, task.ColorCode, task.DurationMinutes,
			FormatTimeForDB(task.CreatedAt), task.CompletedCount)
		if err != nil {
			return HandleStorageError(fmt.Sprintf("restore task %d", task.ID), err)
		}
	}

	recordQuery := `
	INSERT INTO completion_records (record_id, task_id, task_name, task_color, completed_at, duration)
	VALUES (?, ?, ?, ?, ?, ?)`
	for _, record := range records {
		_, err := tx.ExecContext(ctx, recordQuery,
			record.RecordID, record.TaskID, record.TaskName, record.TaskColor,
			FormatTimeForDB(record.CompletedAt), record.Duration)
		if err != nil {
			return HandleStorageError(fmt.Sprintf("restore record %d", record.RecordID), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleStorageError("commit restore", err)
	}
	return nil
}

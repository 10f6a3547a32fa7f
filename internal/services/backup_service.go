package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smallthings/internal/domain"
	"smallthings/internal/errors"
	"smallthings/internal/repository/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Wire format of the backup document. Field-named rather than positional so
// future fields can be added without breaking old documents. Timestamps are
// epoch milliseconds to match the persisted schema.
type backupDocumentJSON struct {
	Tasks             *[]backupTaskJSON   `json:"tasks"`
	CompletionRecords *[]backupRecordJSON `json:"completionRecords"`
	BackupDate        int64               `json:"backupDate"`
}

type backupTaskJSON struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ColorCode       string `json:"colorCode"`
	DurationMinutes int    `json:"durationMinutes"`
	CreatedAt       int64  `json:"createdAt"`
	CompletedCount  int    `json:"completedCount"`
}

type backupRecordJSON struct {
	RecordID    int64  `json:"recordId"`
	TaskID      int64  `json:"taskId"`
	TaskName    string `json:"taskName"`
	TaskColor   string `json:"taskColor"`
	CompletedAt int64  `json:"completedAt"`
	Duration    int    `json:"duration"`
}

// backupServiceImpl implements the BackupService interface
type backupServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewBackupService creates a new BackupService instance
func NewBackupService(repo sqlite.Repository) BackupService {
	return &backupServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// Export snapshots the full store state into a BackupDocument.
func (b *backupServiceImpl) Export(ctx context.Context) (*BackupDocument, error) {
	dbTasks, err := b.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	dbRecords, err := b.repo.ListAllRecords(ctx)
	if err != nil {
		return nil, err
	}

	return &BackupDocument{
		Tasks:             b.mapper.Task.FromDatabaseSlice(dbTasks),
		CompletionRecords: b.mapper.CompletionRecord.FromDatabaseSlice(dbRecords),
		BackupDate:        timeNow(),
	}, nil
}

// ExportJSON serializes the current store state to the backup wire format.
func (b *backupServiceImpl) ExportJSON(ctx context.Context) ([]byte, error) {
	doc, err := b.Export(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]backupTaskJSON, len(doc.Tasks))
	for i, t := range doc.Tasks {
		tasks[i] = backupTaskJSON{
			ID:              t.ID,
			Name:            t.Name,
			ColorCode:       t.ColorCode,
			DurationMinutes: t.DurationMinutes,
			CreatedAt:       t.CreatedAt.UnixMilli(),
			CompletedCount:  t.CompletedCount,
		}
	}

	records := make([]backupRecordJSON, len(doc.CompletionRecords))
	for i, r := range doc.CompletionRecords {
		records[i] = backupRecordJSON{
			RecordID:    r.RecordID,
			TaskID:      r.TaskID,
			TaskName:    r.TaskName,
			TaskColor:   r.TaskColor,
			CompletedAt: r.CompletedAt.UnixMilli(),
			Duration:    r.Duration,
		}
	}

	wire := backupDocumentJSON{
		Tasks:             &tasks,
		CompletionRecords: &records,
		BackupDate:        doc.BackupDate.UnixMilli(),
	}

	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return nil, errors.NewStorageError("marshal backup document", err)
	}
	return data, nil
}

// ImportJSON parses and validates the document, then performs a destructive
// replace of the store's contents. Parsing and validation complete before any
// destructive step; the replace itself runs in a single transaction, so a
// failed import always leaves the pre-import state intact.
func (b *backupServiceImpl) ImportJSON(ctx context.Context, data []byte) error {
	var wire backupDocumentJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.NewFormatError("backup document is not valid JSON", err)
	}
	if wire.Tasks == nil {
		return errors.NewFormatError("backup document is missing the tasks field", nil)
	}
	if wire.CompletionRecords == nil {
		return errors.NewFormatError("backup document is missing the completionRecords field", nil)
	}

	tasks := make([]*sqlite.Task, len(*wire.Tasks))
	for i, t := range *wire.Tasks {
		tasks[i] = &sqlite.Task{
			ID:              t.ID,
			Name:            t.Name,
			ColorCode:       t.ColorCode,
			DurationMinutes: t.DurationMinutes,
			CreatedAt:       sqlite.ParseTimeFromDB(t.CreatedAt),
			CompletedCount:  t.CompletedCount,
		}
	}

	records := make([]*sqlite.CompletionRecord, len(*wire.CompletionRecords))
	for i, r := range *wire.CompletionRecords {
		records[i] = &sqlite.CompletionRecord{
			RecordID:    r.RecordID,
			TaskID:      r.TaskID,
			TaskName:    r.TaskName,
			TaskColor:   r.TaskColor,
			CompletedAt: sqlite.ParseTimeFromDB(r.CompletedAt),
			Duration:    r.Duration,
		}
	}

	return b.repo.ReplaceAll(ctx, tasks, records)
}

// ExportFilename returns the conventional name for an export written at now.
func (b *backupServiceImpl) ExportFilename(now time.Time) string {
	return fmt.Sprintf("smallthings_backup_%s.json", now.Format("20060102_150405"))
}

package domain

import (
	"smallthings/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:              domainTask.ID,
		Name:            domainTask.Name,
		ColorCode:       domainTask.ColorCode,
		DurationMinutes: domainTask.DurationMinutes,
		CreatedAt:       domainTask.CreatedAt,
		CompletedCount:  domainTask.CompletedCount,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:              dbTask.ID,
		Name:            dbTask.Name,
		ColorCode:       dbTask.ColorCode,
		DurationMinutes: dbTask.DurationMinutes,
		CreatedAt:       dbTask.CreatedAt,
		CompletedCount:  dbTask.CompletedCount,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(*task)
	}
	return domainTasks
}

// CompletionRecordMapper handles conversion between domain and database
// CompletionRecord models.
type CompletionRecordMapper struct{}

// NewCompletionRecordMapper creates a new CompletionRecordMapper instance.
func NewCompletionRecordMapper() *CompletionRecordMapper {
	return &CompletionRecordMapper{}
}

// ToDatabase converts a domain CompletionRecord to a database CompletionRecord.
func (m *CompletionRecordMapper) ToDatabase(domainRecord CompletionRecord) sqlite.CompletionRecord {
	return sqlite.CompletionRecord{
		RecordID:    domainRecord.RecordID,
		TaskID:      domainRecord.TaskID,
		TaskName:    domainRecord.TaskName,
		TaskColor:   domainRecord.TaskColor,
		CompletedAt: domainRecord.CompletedAt,
		Duration:    domainRecord.Duration,
	}
}

// FromDatabase converts a database CompletionRecord to a domain CompletionRecord.
func (m *CompletionRecordMapper) FromDatabase(dbRecord sqlite.CompletionRecord) CompletionRecord {
	return CompletionRecord{
		RecordID:    dbRecord.RecordID,
		TaskID:      dbRecord.TaskID,
		TaskName:    dbRecord.TaskName,
		TaskColor:   dbRecord.TaskColor,
		CompletedAt: dbRecord.CompletedAt,
		Duration:    dbRecord.Duration,
	}
}

// FromDatabaseSlice converts a slice of database CompletionRecords to domain
// CompletionRecords.
func (m *CompletionRecordMapper) FromDatabaseSlice(dbRecords []*sqlite.CompletionRecord) []CompletionRecord {
	domainRecords := make([]CompletionRecord, len(dbRecords))
	for i, record := range dbRecords {
		domainRecords[i] = m.FromDatabase(*record)
	}
	return domainRecords
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task             *TaskMapper
	CompletionRecord *CompletionRecordMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:             NewTaskMapper(),
		CompletionRecord: NewCompletionRecordMapper(),
	}
}

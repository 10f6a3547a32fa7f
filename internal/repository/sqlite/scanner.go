package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var createdAt int64

	err := scanner.Scan(
		&task.ID,
		&task.Name,
		&task.ColorCode,
		&task.DurationMinutes,
		&createdAt,
		&task.CompletedCount,
	)
	if err != nil {
		return nil, err
	}

	task.CreatedAt = ParseTimeFromDB(createdAt)
	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanCompletionRecord scans a single completion record from a database row
func ScanCompletionRecord(scanner Scanner) (*CompletionRecord, error) {
	record := &CompletionRecord{}
	var completedAt int64

	err := scanner.Scan(
		&record.RecordID,
		&record.TaskID,
		&record.TaskName,
		&record.TaskColor,
		&completedAt,
		&record.Duration,
	)
	if err != nil {
		return nil, err
	}

	record.CompletedAt = ParseTimeFromDB(completedAt)
	return record, nil
}

// ScanCompletionRecords scans multiple completion records from database rows
func ScanCompletionRecords(rows Rows) ([]*CompletionRecord, error) {
	var records []*CompletionRecord
	for rows.Next() {
		record, err := ScanCompletionRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

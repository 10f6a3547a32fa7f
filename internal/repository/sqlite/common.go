package sqlite

import (
	"context"
	"database/sql"

	"smallthings/internal/errors"
)

// Execer abstracts *sql.DB and *sql.Tx so write helpers work inside and
// outside transactions.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// HandleStorageError converts database errors to structured app errors
func HandleStorageError(operation string, err error) error {
	return errors.NewStorageError(operation, err)
}

// ExecuteWithLastInsertID executes a query and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, db Execer, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleStorageError("execute query", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleStorageError("get last insert ID", err)
	}

	return id, nil
}

// ExecuteWithRowsAffected executes a query and returns the number of rows it
// changed. Zero rows is not an error here; callers decide whether a miss is a
// no-op or NotFound.
func ExecuteWithRowsAffected(ctx context.Context, db Execer, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleStorageError("execute query", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, HandleStorageError("get rows affected", err)
	}

	return rows, nil
}

// QuerySingle executes a query that returns a single row and scans it
func QuerySingle[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Scanner) (*T, error), entityType string, id string, args ...interface{}) (*T, error) {
	row := db.QueryRowContext(ctx, query, args...)
	result, err := scanFunc(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError(entityType, id)
		}
		return nil, HandleStorageError("scan "+entityType, err)
	}
	return result, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleStorageError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleStorageError("scan "+entityType, err)
	}

	return results, nil
}

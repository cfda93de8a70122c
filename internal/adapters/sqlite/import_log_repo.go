package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/brain/internal/ports/secondary"
)

// ImportLogRepository implements secondary.ImportLogStore with SQLite.
type ImportLogRepository struct {
	db *sql.DB
}

// NewImportLogRepository creates a new SQLite import log repository.
func NewImportLogRepository(db *sql.DB) *ImportLogRepository {
	return &ImportLogRepository{db: db}
}

// Append records an import run.
func (r *ImportLogRepository) Append(ctx context.Context, record *secondary.ImportLogRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO import_log (date, source, added, updated) VALUES (?, ?, ?, ?)",
		record.Date, record.Source, record.Added, record.Updated,
	)
	if err != nil {
		return fmt.Errorf("failed to append import log entry: %w", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		record.ID = id
	}
	return nil
}

// List retrieves import runs, most recent first.
func (r *ImportLogRepository) List(ctx context.Context) ([]*secondary.ImportLogRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, date, source, added, updated FROM import_log ORDER BY id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list import log: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ImportLogRecord
	for rows.Next() {
		record := &secondary.ImportLogRecord{}
		if err := rows.Scan(&record.ID, &record.Date, &record.Source, &record.Added, &record.Updated); err != nil {
			return nil, fmt.Errorf("failed to scan import log entry: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Ensure ImportLogRepository implements the interface
var _ secondary.ImportLogStore = (*ImportLogRepository)(nil)

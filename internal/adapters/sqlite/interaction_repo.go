package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/brain/internal/ports/secondary"
)

// InteractionRepository implements secondary.InteractionStore with
// SQLite. The log is append-only.
type InteractionRepository struct {
	db *sql.DB
}

// NewInteractionRepository creates a new SQLite interaction repository.
func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Append records a new interaction.
func (r *InteractionRepository) Append(ctx context.Context, record *secondary.InteractionRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO interactions (counterpart, medium, date) VALUES (?, ?, ?)",
		record.With, record.Medium, record.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to append interaction: %w", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		record.ID = id
	}
	return nil
}

// List retrieves all interactions in insertion order.
func (r *InteractionRepository) List(ctx context.Context) ([]*secondary.InteractionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, counterpart, medium, date FROM interactions ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	defer rows.Close()

	var records []*secondary.InteractionRecord
	for rows.Next() {
		var date sql.NullString
		record := &secondary.InteractionRecord{}
		if err := rows.Scan(&record.ID, &record.With, &record.Medium, &date); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		record.Date = date.String
		records = append(records, record)
	}
	return records, rows.Err()
}

// Ensure InteractionRepository implements the interface
var _ secondary.InteractionStore = (*InteractionRepository)(nil)

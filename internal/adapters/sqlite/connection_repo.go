// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/brain/internal/ports/secondary"
)

const connectionColumns = `id, name, email, company, position, connected_date,
	relationship_strength, message_count, last_message,
	context, domains, can_ask_for, has_asked_you, introduces_to,
	notes, last_contact, contact_frequency, positives, negatives,
	trust_level, energy`

// ConnectionRepository implements secondary.ConnectionStore with SQLite.
// List-valued fields are stored as JSON arrays in TEXT columns.
type ConnectionRepository struct {
	db *sql.DB
}

// NewConnectionRepository creates a new SQLite connection repository.
func NewConnectionRepository(db *sql.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// List retrieves all connections in stored order.
func (r *ConnectionRepository) List(ctx context.Context) ([]*secondary.ConnectionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+connectionColumns+" FROM connections ORDER BY sort_order, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ConnectionRecord
	for rows.Next() {
		record, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetByID retrieves a connection by its ID. A miss returns a nil record
// with no error.
func (r *ConnectionRepository) GetByID(ctx context.Context, id string) (*secondary.ConnectionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+connectionColumns+" FROM connections WHERE id = ?", id,
	)
	record, err := scanConnection(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Upsert inserts or updates a single connection, preserving its stored
// position when it already exists.
func (r *ConnectionRepository) Upsert(ctx context.Context, record *secondary.ConnectionRecord) error {
	args, err := connectionArgs(record)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE connections SET name = ?, email = ?, company = ?, position = ?, connected_date = ?,
			relationship_strength = ?, message_count = ?, last_message = ?,
			context = ?, domains = ?, can_ask_for = ?, has_asked_you = ?, introduces_to = ?,
			notes = ?, last_contact = ?, contact_frequency = ?, positives = ?, negatives = ?,
			trust_level = ?, energy = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		append(args[1:], record.ID)...,
	)
	if err != nil {
		return fmt.Errorf("failed to update connection: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected > 0 {
		return nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO connections (`+connectionColumns+`, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(sort_order) + 1, 0) FROM connections))`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to insert connection: %w", err)
	}
	return nil
}

// ReplaceAll atomically replaces the stored snapshot with the given
// records, preserving their order.
func (r *ConnectionRepository) ReplaceAll(ctx context.Context, records []*secondary.ConnectionRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM connections"); err != nil {
		return fmt.Errorf("failed to clear connections: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO connections (`+connectionColumns+`, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, record := range records {
		args, err := connectionArgs(record)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, append(args, i)...); err != nil {
			return fmt.Errorf("failed to insert connection %s: %w", record.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// Count returns the number of stored connections.
func (r *ConnectionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM connections").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count connections: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConnection(row rowScanner) (*secondary.ConnectionRecord, error) {
	var (
		email, company, position, connectedDate      sql.NullString
		lastMessage, connContext, notes              sql.NullString
		lastContact, contactFrequency, trust, energy sql.NullString
		domains, canAskFor, hasAskedYou              string
		introducesTo, positives, negatives           string
	)

	record := &secondary.ConnectionRecord{}
	err := row.Scan(
		&record.ID, &record.Name, &email, &company, &position, &connectedDate,
		&record.RelationshipStrength, &record.MessageCount, &lastMessage,
		&connContext, &domains, &canAskFor, &hasAskedYou, &introducesTo,
		&notes, &lastContact, &contactFrequency, &positives, &negatives,
		&trust, &energy,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan connection: %w", err)
	}

	record.Email = email.String
	record.Company = company.String
	record.Position = position.String
	record.ConnectedDate = connectedDate.String
	record.LastMessage = lastMessage.String
	record.Context = connContext.String
	record.Notes = notes.String
	record.LastContact = lastContact.String
	record.ContactFrequency = contactFrequency.String
	record.TrustLevel = trust.String
	record.Energy = energy.String

	for _, col := range []struct {
		raw  string
		dest *[]string
	}{
		{domains, &record.Domains},
		{canAskFor, &record.CanAskFor},
		{hasAskedYou, &record.HasAskedYou},
		{introducesTo, &record.IntroducesTo},
		{positives, &record.Positives},
		{negatives, &record.Negatives},
	} {
		list, err := decodeList(col.raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode list column for %s: %w", record.ID, err)
		}
		*col.dest = list
	}

	return record, nil
}

// connectionArgs returns the insert/update argument list in
// connectionColumns order.
func connectionArgs(record *secondary.ConnectionRecord) ([]any, error) {
	lists := make([]string, 6)
	for i, list := range [][]string{
		record.Domains, record.CanAskFor, record.HasAskedYou,
		record.IntroducesTo, record.Positives, record.Negatives,
	} {
		encoded, err := encodeList(list)
		if err != nil {
			return nil, fmt.Errorf("failed to encode list column for %s: %w", record.ID, err)
		}
		lists[i] = encoded
	}

	return []any{
		record.ID, record.Name, record.Email, record.Company, record.Position, record.ConnectedDate,
		record.RelationshipStrength, record.MessageCount, record.LastMessage,
		record.Context, lists[0], lists[1], lists[2], lists[3],
		record.Notes, record.LastContact, record.ContactFrequency, lists[4], lists[5],
		record.TrustLevel, record.Energy,
	}, nil
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeList(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Ensure ConnectionRepository implements the interface
var _ secondary.ConnectionStore = (*ConnectionRepository)(nil)

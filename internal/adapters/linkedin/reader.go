// Package linkedin reads LinkedIn data-export archives (the unzipped
// CSV directory) into raw ingest rows.
package linkedin

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/brain/internal/core/ingest"
	"github.com/example/brain/internal/ports/secondary"
)

// Reader implements secondary.ExportReader for LinkedIn export
// directories. Only Connections.csv is required; the other files are
// parsed when present.
type Reader struct{}

// NewReader creates a new LinkedIn export reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the export directory into raw rows.
func (r *Reader) Read(ctx context.Context, dir string) (*ingest.RawExport, error) {
	raw := &ingest.RawExport{}

	contacts, err := readConnections(filepath.Join(dir, "Connections.csv"))
	if err != nil {
		return nil, err
	}
	raw.Contacts = contacts

	messages, err := readMessages(dir)
	if err != nil {
		return nil, err
	}
	raw.Messages = messages

	positions, err := readPositions(filepath.Join(dir, "Positions.csv"))
	if err != nil {
		return nil, err
	}
	raw.Positions = positions

	skills, err := readSkills(filepath.Join(dir, "Skills.csv"))
	if err != nil {
		return nil, err
	}
	raw.Skills = skills

	return raw, nil
}

func readConnections(path string) ([]ingest.ContactRow, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read connections file: %w", err)
	}

	// LinkedIn prepends a "Notes:" preamble before the real header row.
	header := -1
	for i, row := range rows {
		if indexOf(row, "First Name") >= 0 {
			header = i
			break
		}
	}
	if header < 0 {
		return nil, fmt.Errorf("connections file %s has no header row", path)
	}

	cols := rows[header]
	first := indexOf(cols, "First Name")
	last := indexOf(cols, "Last Name")
	email := indexOf(cols, "Email Address")
	company := indexOf(cols, "Company")
	position := indexOf(cols, "Position")
	connected := indexOf(cols, "Connected On")

	var contacts []ingest.ContactRow
	for _, row := range rows[header+1:] {
		contacts = append(contacts, ingest.ContactRow{
			FirstName:     cell(row, first),
			LastName:      cell(row, last),
			Email:         cell(row, email),
			Company:       cell(row, company),
			Position:      cell(row, position),
			ConnectedDate: cell(row, connected),
		})
	}
	return contacts, nil
}

func readMessages(dir string) ([]ingest.MessageRow, error) {
	path := filepath.Join(dir, "Messages.csv")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = filepath.Join(dir, "messages.csv")
	}

	rows, err := readCSV(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read messages file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := rows[0]
	// Export vintages disagree on header casing and naming.
	sender := firstIndexOf(cols, "FROM", "From", "SENDER", "Sender")
	date := firstIndexOf(cols, "DATE", "Date", "Sent Date")
	if sender < 0 {
		return nil, nil
	}

	var messages []ingest.MessageRow
	for _, row := range rows[1:] {
		messages = append(messages, ingest.MessageRow{
			Sender: cell(row, sender),
			Date:   cell(row, date),
		})
	}
	return messages, nil
}

func readPositions(path string) ([]ingest.PositionRow, error) {
	rows, err := readCSV(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read positions file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := rows[0]
	company := indexOf(cols, "Company Name")
	title := indexOf(cols, "Title")
	started := indexOf(cols, "Started On")
	finished := indexOf(cols, "Finished On")

	var positions []ingest.PositionRow
	for _, row := range rows[1:] {
		positions = append(positions, ingest.PositionRow{
			Company:   cell(row, company),
			Title:     cell(row, title),
			StartDate: cell(row, started),
			EndDate:   cell(row, finished),
		})
	}
	return positions, nil
}

func readSkills(path string) ([]string, error) {
	rows, err := readCSV(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	name := indexOf(rows[0], "Name")
	if name < 0 {
		name = 0
	}

	var skills []string
	for _, row := range rows[1:] {
		if skill := cell(row, name); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills, nil
}

// readCSV loads a whole CSV file, tolerating ragged rows and a UTF-8
// BOM on the first cell.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed CSV in %s: %w", path, err)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\uFEFF")
	}
	return rows, nil
}

func indexOf(row []string, name string) int {
	for i, col := range row {
		if strings.TrimSpace(col) == name {
			return i
		}
	}
	return -1
}

func firstIndexOf(row []string, names ...string) int {
	for _, name := range names {
		if i := indexOf(row, name); i >= 0 {
			return i
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Ensure Reader implements the interface
var _ secondary.ExportReader = (*Reader)(nil)

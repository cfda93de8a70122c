package ingest

import (
	"strings"

	"github.com/example/brain/internal/core/network"
)

// ContactRow is one row of a contact export, already addressed by field
// name. The reader adapter owns the file layout; this package only needs
// these fields.
type ContactRow struct {
	FirstName     string
	LastName      string
	Email         string
	Company       string
	Position      string
	ConnectedDate string
}

// MessageRow is one message event: who sent it and when.
type MessageRow struct {
	Sender string
	Date   string
}

// PositionRow is one work-history row. Parsed for the import summary;
// work history itself is not part of the network store.
type PositionRow struct {
	Company   string
	Title     string
	StartDate string
	EndDate   string
}

// RawExport is everything an external contact export yields.
type RawExport struct {
	Contacts  []ContactRow
	Messages  []MessageRow
	Positions []PositionRow
	Skills    []string
}

// BuildConnections turns raw export rows into Connection records:
// identifiers allocated in row order, dates normalized best-effort, and
// message volume aggregated into count, last-message date, and
// relationship strength.
func BuildConnections(raw *RawExport) []network.Connection {
	alloc := NewIDAllocator()

	// Message dates grouped by sender name as it appears in the export.
	msgDates := make(map[string][]string)
	for _, m := range raw.Messages {
		sender := strings.TrimSpace(m.Sender)
		if sender == "" {
			continue
		}
		msgDates[sender] = append(msgDates[sender], ParseDate(m.Date))
	}

	var conns []network.Connection
	for _, row := range raw.Contacts {
		first := strings.TrimSpace(row.FirstName)
		last := strings.TrimSpace(row.LastName)
		if first == "" {
			continue
		}

		name := strings.TrimSpace(first + " " + last)
		conn := network.Connection{
			ID:                   alloc.Allocate(first, last),
			Name:                 name,
			Email:                strings.TrimSpace(row.Email),
			Company:              strings.TrimSpace(row.Company),
			Position:             strings.TrimSpace(row.Position),
			ConnectedDate:        ParseDate(row.ConnectedDate),
			RelationshipStrength: network.StrengthCold,
		}

		// Match messages by full name, falling back to first name only
		// (message exports sometimes carry just the first name).
		dates := msgDates[name]
		if len(dates) == 0 {
			dates = msgDates[first]
		}
		conn.MessageCount = len(dates)
		if len(dates) > 0 {
			conn.LastMessage = maxDate(dates)
			conn.RelationshipStrength = StrengthForMessageCount(len(dates))
		}

		conns = append(conns, conn)
	}
	return conns
}

// maxDate returns the lexically greatest non-empty date. Correct for
// ISO dates; for unparsed pass-through strings it inherits the string
// ordering caveat.
func maxDate(dates []string) string {
	max := ""
	for _, d := range dates {
		if d > max {
			max = d
		}
	}
	return max
}

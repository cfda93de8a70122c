package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures.
// Uses realistic IDs and data that exercises the analysis paths:
// enriched and unenriched connections, stale contacts, and a gap in
// coverage.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().Format(time.RFC3339)

	connections := []struct {
		id, name, company, position, strength string
		messageCount                          int
		lastMessage                           string
		domains, positives, negatives         string
		trust, energy                         string
	}{
		{
			"conn.ada-lovelace", "Ada Lovelace", "Analytical Engines", "Principal Engineer",
			"close", 24, "2025-11-02",
			`["engineering","ai"]`, `["sharp","generous with time"]`, `[]`,
			"high", "energizing",
		},
		{
			"conn.grace-hopper", "Grace Hopper", "Compiler Co", "CTO",
			"warm", 6, "2025-04-15",
			`["engineering"]`, `[]`, `[]`,
			"", "",
		},
		{
			"conn.charles-babbage", "Charles Babbage", "Difference Works", "Founder",
			"cold", 1, "2024-09-30",
			`["fundraising"]`, `[]`, `["never follows up"]`,
			"low", "draining",
		},
		{
			"conn.alan-kay", "Alan Kay", "", "Researcher",
			"cold", 0, "",
			`[]`, `[]`, `[]`,
			"", "",
		},
	}
	for i, c := range connections {
		if _, err := database.Exec(
			`INSERT INTO connections (id, name, company, position, relationship_strength,
				message_count, last_message, domains, positives, negatives,
				trust_level, energy, sort_order, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.id, c.name, c.company, c.position, c.strength,
			c.messageCount, c.lastMessage, c.domains, c.positives, c.negatives,
			c.trust, c.energy, i, now,
		); err != nil {
			return fmt.Errorf("seed connections: %w", err)
		}
	}

	interactions := []struct{ counterpart, medium, date string }{
		{"Ada Lovelace", "coffee", "2025-11-02"},
		{"Ada Lovelace", "email", "2025-10-12"},
		{"Grace Hopper", "call", "2025-04-15"},
	}
	for _, in := range interactions {
		if _, err := database.Exec(
			"INSERT INTO interactions (counterpart, medium, date, created_at) VALUES (?, ?, ?, ?)",
			in.counterpart, in.medium, in.date, now,
		); err != nil {
			return fmt.Errorf("seed interactions: %w", err)
		}
	}

	if _, err := database.Exec(
		"INSERT INTO import_log (date, source, added, updated, created_at) VALUES (?, ?, ?, ?, ?)",
		"2025-11-01", "linkedin_export", len(connections), 0, now,
	); err != nil {
		return fmt.Errorf("seed import_log: %w", err)
	}

	return nil
}

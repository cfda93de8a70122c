package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_interactions_and_import_log_tables",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_enrichment_columns_to_connections",
		Up:      migrationV2,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	// Create schema_version table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(db); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

// migrationV1 adds the interactions and import_log tables alongside the
// original connections table
func migrationV1(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS interactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			counterpart TEXT NOT NULL,
			medium TEXT NOT NULL DEFAULT 'unknown',
			date TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create interactions table: %w", err)
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_interactions_counterpart ON interactions(counterpart)`)
	if err != nil {
		return fmt.Errorf("failed to create interactions index: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS import_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			source TEXT NOT NULL,
			added INTEGER NOT NULL DEFAULT 0,
			updated INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create import_log table: %w", err)
	}

	return nil
}

// migrationV2 adds the manual enrichment columns to connections
func migrationV2(db *sql.DB) error {
	columns := []string{
		`ALTER TABLE connections ADD COLUMN context TEXT`,
		`ALTER TABLE connections ADD COLUMN domains TEXT NOT NULL DEFAULT '[]'`,
		`ALTER TABLE connections ADD COLUMN can_ask_for TEXT NOT NULL DEFAULT '[]'`,
		`ALTER TABLE connections ADD COLUMN has_asked_you TEXT NOT NULL DEFAULT '[]'`,
		`ALTER TABLE connections ADD COLUMN introduces_to TEXT NOT NULL DEFAULT '[]'`,
		`ALTER TABLE connections ADD COLUMN notes TEXT`,
		`ALTER TABLE connections ADD COLUMN last_contact TEXT`,
		`ALTER TABLE connections ADD COLUMN contact_frequency TEXT`,
		`ALTER TABLE connections ADD COLUMN positives TEXT NOT NULL DEFAULT '[]'`,
		`ALTER TABLE connections ADD COLUMN negatives TEXT NOT NULL DEFAULT '[]'`,
		`ALTER TABLE connections ADD COLUMN trust_level TEXT`,
		`ALTER TABLE connections ADD COLUMN energy TEXT`,
	}
	for _, stmt := range columns {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to add enrichment column: %w", err)
		}
	}
	return nil
}

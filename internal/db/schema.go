package db

// SchemaSQL is the complete modern schema for fresh installs. It
// reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests use
// it via GetSchemaSQL() instead of hardcoding CREATE TABLE statements,
// so a repository referencing a column that does not exist here fails
// immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Connections (the merged network snapshot)
CREATE TABLE IF NOT EXISTS connections (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT,
	company TEXT,
	position TEXT,
	connected_date TEXT,
	relationship_strength TEXT NOT NULL DEFAULT 'cold',
	message_count INTEGER NOT NULL DEFAULT 0,
	last_message TEXT,
	context TEXT,
	domains TEXT NOT NULL DEFAULT '[]',
	can_ask_for TEXT NOT NULL DEFAULT '[]',
	has_asked_you TEXT NOT NULL DEFAULT '[]',
	introduces_to TEXT NOT NULL DEFAULT '[]',
	notes TEXT,
	last_contact TEXT,
	contact_frequency TEXT,
	positives TEXT NOT NULL DEFAULT '[]',
	negatives TEXT NOT NULL DEFAULT '[]',
	trust_level TEXT,
	energy TEXT,
	sort_order INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_connections_strength ON connections(relationship_strength);
CREATE INDEX IF NOT EXISTS idx_connections_sort ON connections(sort_order);

-- Interactions (append-only communication log)
CREATE TABLE IF NOT EXISTS interactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	counterpart TEXT NOT NULL,
	medium TEXT NOT NULL DEFAULT 'unknown',
	date TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_interactions_counterpart ON interactions(counterpart);

-- Import log (one row per import run)
CREATE TABLE IF NOT EXISTS import_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	source TEXT NOT NULL,
	added INTEGER NOT NULL DEFAULT 0,
	updated INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Completely fresh install - create modern schema directly and
		// mark all migrations as applied so they never run.
		_, err = db.Exec(SchemaSQL)
		if err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, migration := range migrations {
			_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
			if err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}

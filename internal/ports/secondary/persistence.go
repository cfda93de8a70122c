// Package secondary defines the secondary ports (driven adapters) for
// the application: the interfaces through which it reaches storage and
// external data sources.
package secondary

import (
	"context"

	"github.com/example/brain/internal/core/goal"
	"github.com/example/brain/internal/core/ingest"
)

// ConnectionRecord represents a connection as stored in persistence.
// Enum-like fields are plain strings at this boundary; the application
// layer coerces them into typed values.
type ConnectionRecord struct {
	ID            string
	Name          string
	Email         string
	Company       string
	Position      string
	ConnectedDate string

	RelationshipStrength string
	MessageCount         int
	LastMessage          string

	Context          string
	Domains          []string
	CanAskFor        []string
	HasAskedYou      []string
	IntroducesTo     []string
	Notes            string
	LastContact      string
	ContactFrequency string
	Positives        []string
	Negatives        []string
	TrustLevel       string
	Energy           string
}

// ConnectionStore defines the secondary port for connection persistence.
type ConnectionStore interface {
	// List returns all connections in stored order.
	List(ctx context.Context) ([]*ConnectionRecord, error)

	// GetByID retrieves a connection by its ID.
	GetByID(ctx context.Context, id string) (*ConnectionRecord, error)

	// Upsert inserts or replaces a single connection.
	Upsert(ctx context.Context, record *ConnectionRecord) error

	// ReplaceAll atomically replaces the stored snapshot with the given
	// records, preserving their order.
	ReplaceAll(ctx context.Context, records []*ConnectionRecord) error

	// Count returns the number of stored connections.
	Count(ctx context.Context) (int, error)
}

// InteractionRecord is one recorded communication event.
type InteractionRecord struct {
	ID     int64
	With   string
	Medium string
	Date   string
}

// InteractionStore defines the secondary port for the append-only
// interaction log.
type InteractionStore interface {
	// Append records a new interaction.
	Append(ctx context.Context, record *InteractionRecord) error

	// List returns all interactions in insertion order.
	List(ctx context.Context) ([]*InteractionRecord, error)
}

// ImportLogRecord is one import run's outcome.
type ImportLogRecord struct {
	ID      int64
	Date    string
	Source  string
	Added   int
	Updated int
}

// ImportLogStore defines the secondary port for the import log.
type ImportLogStore interface {
	// Append records an import run.
	Append(ctx context.Context, record *ImportLogRecord) error

	// List returns import runs, most recent first.
	List(ctx context.Context) ([]*ImportLogRecord, error)
}

// GoalsStore defines the secondary port for the hand-authored goals
// document. A missing document is not an error: it loads as empty.
type GoalsStore interface {
	// Load reads the goals document.
	Load(ctx context.Context) (goal.Goals, error)

	// Path returns where the document lives, for diagnostics.
	Path() string
}

// SnapshotExporter defines the secondary port for serializing the
// network to a durable, diffable document.
type SnapshotExporter interface {
	// Export writes the snapshot document to path.
	Export(ctx context.Context, path string, connections []*ConnectionRecord, importLog []*ImportLogRecord) error
}

// ExportReader defines the secondary port for reading an external
// contact export. Missing optional files yield empty sections, never an
// error; only a missing contacts file is fatal.
type ExportReader interface {
	// Read parses the export directory into raw rows.
	Read(ctx context.Context, dir string) (*ingest.RawExport, error)
}

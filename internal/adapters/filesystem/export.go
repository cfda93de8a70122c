package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/ports/secondary"
)

// exportVersion marks the network document format.
const exportVersion = "2.0"

// SnapshotExporter implements secondary.SnapshotExporter, serializing
// the stored network into a diffable YAML document.
type SnapshotExporter struct {
	now func() time.Time
}

// NewSnapshotExporter creates a new YAML snapshot exporter.
func NewSnapshotExporter() *SnapshotExporter {
	return &SnapshotExporter{now: time.Now}
}

type importLogEntry struct {
	Date    string `yaml:"date"`
	Source  string `yaml:"source"`
	Added   int    `yaml:"added"`
	Updated int    `yaml:"updated"`
}

type exportDoc struct {
	Version     string               `yaml:"version"`
	Created     string               `yaml:"created"`
	Source      string               `yaml:"source"`
	Stats       network.StoreStats   `yaml:"stats"`
	Connections []network.Connection `yaml:"connections"`
	ImportLog   []importLogEntry     `yaml:"import_log,omitempty"`
}

// Export writes the snapshot document to path. The write goes through a
// temp file in the same directory so a crash never leaves a truncated
// document behind.
func (e *SnapshotExporter) Export(ctx context.Context, path string, connections []*secondary.ConnectionRecord, importLog []*secondary.ImportLogRecord) error {
	now := e.now()

	snap := &network.Snapshot{Connections: make([]network.Connection, len(connections))}
	for i, r := range connections {
		snap.Connections[i] = exportConnection(r)
	}

	doc := exportDoc{
		Version:     exportVersion,
		Created:     now.Format(network.DateLayout),
		Source:      "linkedin_export + manual enrichment",
		Stats:       network.ComputeStoreStats(snap, now),
		Connections: snap.Connections,
	}
	for _, entry := range importLog {
		doc.ImportLog = append(doc.ImportLog, importLogEntry{
			Date:    entry.Date,
			Source:  entry.Source,
			Added:   entry.Added,
			Updated: entry.Updated,
		})
	}

	raw, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize network document: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write network document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to finalize network document: %w", err)
	}
	return nil
}

func exportConnection(r *secondary.ConnectionRecord) network.Connection {
	return network.Connection{
		ID:                   r.ID,
		Name:                 r.Name,
		Email:                r.Email,
		Company:              r.Company,
		Position:             r.Position,
		ConnectedDate:        r.ConnectedDate,
		RelationshipStrength: network.Strength(r.RelationshipStrength),
		MessageCount:         r.MessageCount,
		LastMessage:          r.LastMessage,
		Context:              r.Context,
		Domains:              r.Domains,
		CanAskFor:            r.CanAskFor,
		HasAskedYou:          r.HasAskedYou,
		IntroducesTo:         r.IntroducesTo,
		Notes:                r.Notes,
		LastContact:          r.LastContact,
		ContactFrequency:     r.ContactFrequency,
		Positives:            r.Positives,
		Negatives:            r.Negatives,
		TrustLevel:           network.Trust(r.TrustLevel),
		Energy:               network.Energy(r.Energy),
	}
}

// Ensure SnapshotExporter implements the interface
var _ secondary.SnapshotExporter = (*SnapshotExporter)(nil)

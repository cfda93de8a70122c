package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/brain/internal/core/ingest"
	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/ports/primary"
	"github.com/example/brain/internal/ports/secondary"
)

// IngestServiceImpl implements the IngestService interface: it drives
// the import-merge engine against the stored snapshot.
type IngestServiceImpl struct {
	reader    secondary.ExportReader
	connStore secondary.ConnectionStore
	importLog secondary.ImportLogStore
	now       func() time.Time
}

// NewIngestService creates a new IngestService with injected
// dependencies.
func NewIngestService(
	reader secondary.ExportReader,
	connStore secondary.ConnectionStore,
	importLog secondary.ImportLogStore,
) *IngestServiceImpl {
	return &IngestServiceImpl{
		reader:    reader,
		connStore: connStore,
		importLog: importLog,
		now:       time.Now,
	}
}

// Import parses the export, merges it against the stored snapshot with
// manual-field preservation, persists the merged result, and appends an
// import log entry.
func (s *IngestServiceImpl) Import(ctx context.Context, req primary.ImportRequest) (*primary.ImportResult, error) {
	raw, err := s.reader.Read(ctx, req.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	imported := ingest.BuildConnections(raw)

	existingRecords, err := s.connStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing connections: %w", err)
	}
	existing := recordsToSnapshot(existingRecords)

	merged := ingest.Merge(existing, imported)

	records := make([]*secondary.ConnectionRecord, len(merged.Connections))
	for i, c := range merged.Connections {
		records[i] = connectionToRecord(c)
	}
	if err := s.connStore.ReplaceAll(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to persist merged snapshot: %w", err)
	}

	source := req.Source
	if source == "" {
		source = "linkedin_export"
	}
	logEntry := &secondary.ImportLogRecord{
		Date:    s.now().Format(network.DateLayout),
		Source:  source,
		Added:   merged.Added,
		Updated: merged.Updated,
	}
	if err := s.importLog.Append(ctx, logEntry); err != nil {
		return nil, fmt.Errorf("failed to record import log: %w", err)
	}

	return &primary.ImportResult{
		ContactsParsed:  len(raw.Contacts),
		MessagesParsed:  len(raw.Messages),
		PositionsParsed: len(raw.Positions),
		SkillsParsed:    len(raw.Skills),
		Added:           merged.Added,
		Updated:         merged.Updated,
		Carried:         merged.Carried,
		Total:           len(merged.Connections),
	}, nil
}

// Ensure IngestServiceImpl implements the interface
var _ primary.IngestService = (*IngestServiceImpl)(nil)

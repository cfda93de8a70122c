package app

import (
	"context"

	"github.com/example/brain/internal/core/goal"
	"github.com/example/brain/internal/core/ingest"
	"github.com/example/brain/internal/ports/secondary"
)

type fakeConnStore struct {
	records []*secondary.ConnectionRecord
	listErr error

	lastUpsert *secondary.ConnectionRecord
	replaced   []*secondary.ConnectionRecord
}

func (s *fakeConnStore) List(ctx context.Context) ([]*secondary.ConnectionRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.records, nil
}

func (s *fakeConnStore) GetByID(ctx context.Context, id string) (*secondary.ConnectionRecord, error) {
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (s *fakeConnStore) Upsert(ctx context.Context, record *secondary.ConnectionRecord) error {
	s.lastUpsert = record
	for i, r := range s.records {
		if r.ID == record.ID {
			s.records[i] = record
			return nil
		}
	}
	s.records = append(s.records, record)
	return nil
}

func (s *fakeConnStore) ReplaceAll(ctx context.Context, records []*secondary.ConnectionRecord) error {
	s.replaced = records
	s.records = records
	return nil
}

func (s *fakeConnStore) Count(ctx context.Context) (int, error) {
	return len(s.records), nil
}

type fakeInteractionStore struct {
	records []*secondary.InteractionRecord
}

func (s *fakeInteractionStore) Append(ctx context.Context, record *secondary.InteractionRecord) error {
	record.ID = int64(len(s.records) + 1)
	s.records = append(s.records, record)
	return nil
}

func (s *fakeInteractionStore) List(ctx context.Context) ([]*secondary.InteractionRecord, error) {
	return s.records, nil
}

type fakeImportLogStore struct {
	records []*secondary.ImportLogRecord
}

func (s *fakeImportLogStore) Append(ctx context.Context, record *secondary.ImportLogRecord) error {
	record.ID = int64(len(s.records) + 1)
	// Most recent first, matching the sqlite adapter.
	s.records = append([]*secondary.ImportLogRecord{record}, s.records...)
	return nil
}

func (s *fakeImportLogStore) List(ctx context.Context) ([]*secondary.ImportLogRecord, error) {
	return s.records, nil
}

type fakeGoalsStore struct {
	goals goal.Goals
	err   error
}

func (s *fakeGoalsStore) Load(ctx context.Context) (goal.Goals, error) {
	return s.goals, s.err
}

func (s *fakeGoalsStore) Path() string { return "goals.yaml" }

type fakeExporter struct {
	lastPath        string
	lastConnections []*secondary.ConnectionRecord
	lastImportLog   []*secondary.ImportLogRecord
}

func (e *fakeExporter) Export(ctx context.Context, path string, connections []*secondary.ConnectionRecord, importLog []*secondary.ImportLogRecord) error {
	e.lastPath = path
	e.lastConnections = connections
	e.lastImportLog = importLog
	return nil
}

type fakeReader struct {
	raw *ingest.RawExport
	err error
}

func (r *fakeReader) Read(ctx context.Context, dir string) (*ingest.RawExport, error) {
	return r.raw, r.err
}

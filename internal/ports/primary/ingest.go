package primary

import "context"

// IngestService defines the primary port for importing an external
// contact export and merging it into the stored network.
type IngestService interface {
	// Import parses an export directory, merges it against the stored
	// snapshot with manual-field preservation, persists the result, and
	// records an import log entry.
	Import(ctx context.Context, req ImportRequest) (*ImportResult, error)
}

// ImportRequest names the export to ingest.
type ImportRequest struct {
	Dir    string
	Source string // defaults to "linkedin_export"
}

// ImportResult summarizes one import run.
type ImportResult struct {
	ContactsParsed  int
	MessagesParsed  int
	PositionsParsed int
	SkillsParsed    int

	Added   int
	Updated int
	Carried int
	Total   int
}

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/brain/internal/ports/primary"
)

// ImportAdapter is a thin adapter that translates CLI operations to
// IngestService calls.
type ImportAdapter struct {
	service primary.IngestService
	out     io.Writer
}

// NewImportAdapter creates a new ImportAdapter with the given service.
func NewImportAdapter(service primary.IngestService, out io.Writer) *ImportAdapter {
	return &ImportAdapter{
		service: service,
		out:     out,
	}
}

// Import runs an export import and prints the merge summary.
func (a *ImportAdapter) Import(ctx context.Context, dir, source string) error {
	result, err := a.service.Import(ctx, primary.ImportRequest{Dir: dir, Source: source})
	if err != nil {
		return fmt.Errorf("failed to import export: %w", err)
	}

	fmt.Fprintf(a.out, "Parsed %d contacts, %d messages, %d positions, %d skills\n",
		result.ContactsParsed, result.MessagesParsed, result.PositionsParsed, result.SkillsParsed)
	fmt.Fprintf(a.out, "✓ Merged: %d added, %d updated, %d carried forward (%d total)\n",
		result.Added, result.Updated, result.Carried, result.Total)
	return nil
}

// Package primary defines the primary ports (driving interfaces) for
// the application: the services external consumers call.
package primary

import (
	"context"
	"errors"

	"github.com/example/brain/internal/core/network"
)

// ErrNotFound signals a point lookup that matched nothing. Callers must
// check for it; a miss is a normal result, never a fault.
var ErrNotFound = errors.New("not found")

// NetworkService defines the primary port for read access and manual
// enrichment of the network.
type NetworkService interface {
	// Snapshot loads the full network snapshot.
	Snapshot(ctx context.Context) (*network.Snapshot, error)

	// List returns all connections in stored order.
	List(ctx context.Context) ([]network.Connection, error)

	// Get retrieves a connection by ID. Returns ErrNotFound on a miss.
	Get(ctx context.Context, id string) (network.Connection, error)

	// ByDomain returns connections whose domain tags contain the given
	// domain (case-insensitive substring).
	ByDomain(ctx context.Context, domain string) ([]network.Connection, error)

	// ByStrength returns connections with exactly the given strength.
	ByStrength(ctx context.Context, strength network.Strength) ([]network.Connection, error)

	// HighTrust returns connections with trust level high.
	HighTrust(ctx context.Context) ([]network.Connection, error)

	// ByEnergy returns connections with exactly the given energy.
	ByEnergy(ctx context.Context, energy network.Energy) ([]network.Connection, error)

	// Search returns connections whose name or company contains the
	// query (case-insensitive).
	Search(ctx context.Context, query string) ([]network.Connection, error)

	// SetEnrichment updates manual enrichment fields on a connection.
	// Only the fields present in the request change.
	SetEnrichment(ctx context.Context, req SetEnrichmentRequest) (network.Connection, error)

	// LogInteraction appends a communication event.
	LogInteraction(ctx context.Context, req LogInteractionRequest) error

	// Interactions returns all recorded interactions.
	Interactions(ctx context.Context) ([]network.Interaction, error)

	// Export serializes the stored snapshot to a YAML document at path.
	Export(ctx context.Context, path string) error
}

// SetEnrichmentRequest carries manual enrichment edits. Nil slices and
// nil string pointers mean "leave unchanged"; empty values clear.
type SetEnrichmentRequest struct {
	ConnectionID string

	TrustLevel       *string
	Energy           *string
	Notes            *string
	Context          *string
	LastContact      *string
	ContactFrequency *string
	Domains          []string
	CanAskFor        []string
	IntroducesTo     []string
	Positives        []string
	Negatives        []string
}

// LogInteractionRequest records one communication event.
type LogInteractionRequest struct {
	With   string
	Medium string
	Date   string
}

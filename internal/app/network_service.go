package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/ports/primary"
	"github.com/example/brain/internal/ports/secondary"
)

// NetworkServiceImpl implements the NetworkService interface: the thin
// read-only query accessor plus manual enrichment edits.
type NetworkServiceImpl struct {
	connStore        secondary.ConnectionStore
	interactionStore secondary.InteractionStore
	importLog        secondary.ImportLogStore
	exporter         secondary.SnapshotExporter
}

// NewNetworkService creates a new NetworkService with injected
// dependencies.
func NewNetworkService(
	connStore secondary.ConnectionStore,
	interactionStore secondary.InteractionStore,
	importLog secondary.ImportLogStore,
	exporter secondary.SnapshotExporter,
) *NetworkServiceImpl {
	return &NetworkServiceImpl{
		connStore:        connStore,
		interactionStore: interactionStore,
		importLog:        importLog,
		exporter:         exporter,
	}
}

// Snapshot loads the full network snapshot.
func (s *NetworkServiceImpl) Snapshot(ctx context.Context) (*network.Snapshot, error) {
	records, err := s.connStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load connections: %w", err)
	}
	return recordsToSnapshot(records), nil
}

// List returns all connections in stored order.
func (s *NetworkServiceImpl) List(ctx context.Context) ([]network.Connection, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Connections, nil
}

// Get retrieves a connection by ID.
func (s *NetworkServiceImpl) Get(ctx context.Context, id string) (network.Connection, error) {
	record, err := s.connStore.GetByID(ctx, id)
	if err != nil {
		return network.Connection{}, err
	}
	if record == nil {
		return network.Connection{}, fmt.Errorf("connection %s: %w", id, primary.ErrNotFound)
	}
	return recordToConnection(record), nil
}

// ByDomain returns connections whose domain tags contain the given
// domain, case-insensitively.
func (s *NetworkServiceImpl) ByDomain(ctx context.Context, domain string) ([]network.Connection, error) {
	return s.filter(ctx, func(c network.Connection) bool {
		domainLower := strings.ToLower(domain)
		for _, d := range c.Domains {
			if strings.Contains(strings.ToLower(d), domainLower) {
				return true
			}
		}
		return false
	})
}

// ByStrength returns connections with exactly the given strength.
func (s *NetworkServiceImpl) ByStrength(ctx context.Context, strength network.Strength) ([]network.Connection, error) {
	return s.filter(ctx, func(c network.Connection) bool {
		return c.RelationshipStrength == strength
	})
}

// HighTrust returns connections with trust level high.
func (s *NetworkServiceImpl) HighTrust(ctx context.Context) ([]network.Connection, error) {
	return s.filter(ctx, func(c network.Connection) bool {
		return c.TrustLevel == network.TrustHigh
	})
}

// ByEnergy returns connections with exactly the given energy.
func (s *NetworkServiceImpl) ByEnergy(ctx context.Context, energy network.Energy) ([]network.Connection, error) {
	return s.filter(ctx, func(c network.Connection) bool {
		return c.Energy == energy
	})
}

// Search returns connections whose name or company contains the query,
// case-insensitively.
func (s *NetworkServiceImpl) Search(ctx context.Context, query string) ([]network.Connection, error) {
	queryLower := strings.ToLower(query)
	return s.filter(ctx, func(c network.Connection) bool {
		return strings.Contains(strings.ToLower(c.Name), queryLower) ||
			strings.Contains(strings.ToLower(c.Company), queryLower)
	})
}

func (s *NetworkServiceImpl) filter(ctx context.Context, keep func(network.Connection) bool) ([]network.Connection, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var out []network.Connection
	for _, c := range snap.Connections {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// SetEnrichment updates manual enrichment fields on a connection. Only
// fields present in the request change; everything else is untouched.
func (s *NetworkServiceImpl) SetEnrichment(ctx context.Context, req primary.SetEnrichmentRequest) (network.Connection, error) {
	record, err := s.connStore.GetByID(ctx, req.ConnectionID)
	if err != nil {
		return network.Connection{}, err
	}
	if record == nil {
		return network.Connection{}, fmt.Errorf("connection %s: %w", req.ConnectionID, primary.ErrNotFound)
	}

	if req.TrustLevel != nil {
		record.TrustLevel = *req.TrustLevel
	}
	if req.Energy != nil {
		record.Energy = *req.Energy
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if req.Context != nil {
		record.Context = *req.Context
	}
	if req.LastContact != nil {
		record.LastContact = *req.LastContact
	}
	if req.ContactFrequency != nil {
		record.ContactFrequency = *req.ContactFrequency
	}
	if req.Domains != nil {
		record.Domains = req.Domains
	}
	if req.CanAskFor != nil {
		record.CanAskFor = req.CanAskFor
	}
	if req.IntroducesTo != nil {
		record.IntroducesTo = req.IntroducesTo
	}
	if req.Positives != nil {
		record.Positives = req.Positives
	}
	if req.Negatives != nil {
		record.Negatives = req.Negatives
	}

	if err := s.connStore.Upsert(ctx, record); err != nil {
		return network.Connection{}, fmt.Errorf("failed to update connection: %w", err)
	}
	return recordToConnection(record), nil
}

// LogInteraction appends a communication event.
func (s *NetworkServiceImpl) LogInteraction(ctx context.Context, req primary.LogInteractionRequest) error {
	if req.With == "" {
		return fmt.Errorf("interaction requires a counterpart name")
	}
	medium := req.Medium
	if medium == "" {
		medium = "unknown"
	}
	return s.interactionStore.Append(ctx, &secondary.InteractionRecord{
		With:   req.With,
		Medium: medium,
		Date:   req.Date,
	})
}

// Interactions returns all recorded interactions.
func (s *NetworkServiceImpl) Interactions(ctx context.Context) ([]network.Interaction, error) {
	records, err := s.interactionStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load interactions: %w", err)
	}
	interactions := make([]network.Interaction, len(records))
	for i, r := range records {
		interactions[i] = network.Interaction{With: r.With, Medium: r.Medium, Date: r.Date}
	}
	return interactions, nil
}

// Export serializes the stored snapshot to a YAML document at path.
func (s *NetworkServiceImpl) Export(ctx context.Context, path string) error {
	records, err := s.connStore.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load connections: %w", err)
	}
	log, err := s.importLog.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load import log: %w", err)
	}
	return s.exporter.Export(ctx, path, records, log)
}

// Ensure NetworkServiceImpl implements the interface
var _ primary.NetworkService = (*NetworkServiceImpl)(nil)

package ingest

import (
	"sort"

	"github.com/example/brain/internal/core/network"
)

// manualFieldPolicy is one row of the merge policy table: a manual
// enrichment field keeps its OLD value when the old record has one, and
// takes the freshly imported value otherwise. Every other Connection
// field is always-new. The table makes the asymmetric upsert auditable
// in one place instead of scattering conditionals.
type manualFieldPolicy struct {
	name    string
	hasOld  func(network.Connection) bool
	keepOld func(*network.Connection, network.Connection)
}

var manualFieldPolicies = []manualFieldPolicy{
	{
		name:    "context",
		hasOld:  func(c network.Connection) bool { return c.Context != "" },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.Context = old.Context },
	},
	{
		name:    "domains",
		hasOld:  func(c network.Connection) bool { return len(c.Domains) > 0 },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.Domains = old.Domains },
	},
	{
		name:    "can_ask_for",
		hasOld:  func(c network.Connection) bool { return len(c.CanAskFor) > 0 },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.CanAskFor = old.CanAskFor },
	},
	{
		name:    "has_asked_you",
		hasOld:  func(c network.Connection) bool { return len(c.HasAskedYou) > 0 },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.HasAskedYou = old.HasAskedYou },
	},
	{
		name:    "introduces_to",
		hasOld:  func(c network.Connection) bool { return len(c.IntroducesTo) > 0 },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.IntroducesTo = old.IntroducesTo },
	},
	{
		name:    "notes",
		hasOld:  func(c network.Connection) bool { return c.Notes != "" },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.Notes = old.Notes },
	},
	{
		name:    "last_contact",
		hasOld:  func(c network.Connection) bool { return c.LastContact != "" },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.LastContact = old.LastContact },
	},
	{
		name:    "contact_frequency",
		hasOld:  func(c network.Connection) bool { return c.ContactFrequency != "" },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.ContactFrequency = old.ContactFrequency },
	},
	{
		name:    "positives",
		hasOld:  func(c network.Connection) bool { return len(c.Positives) > 0 },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.Positives = old.Positives },
	},
	{
		name:    "negatives",
		hasOld:  func(c network.Connection) bool { return len(c.Negatives) > 0 },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.Negatives = old.Negatives },
	},
	{
		name:    "trust_level",
		hasOld:  func(c network.Connection) bool { return c.TrustLevel != "" },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.TrustLevel = old.TrustLevel },
	},
	{
		name:    "energy",
		hasOld:  func(c network.Connection) bool { return c.Energy != "" },
		keepOld: func(dst *network.Connection, old network.Connection) { dst.Energy = old.Energy },
	},
}

// ManualFieldNames lists the fields the merge preserves from the old
// record when non-empty, in policy-table order.
func ManualFieldNames() []string {
	names := make([]string, len(manualFieldPolicies))
	for i, p := range manualFieldPolicies {
		names[i] = p.name
	}
	return names
}

// MergeConnection reconciles a freshly imported record against the
// previously stored one: imported wins for identity and computed fields,
// old non-empty values win for every manual enrichment field.
func MergeConnection(old, imported network.Connection) network.Connection {
	merged := imported
	for _, p := range manualFieldPolicies {
		if p.hasOld(old) {
			p.keepOld(&merged, old)
		}
	}
	return merged
}

// MergeResult reports what a merge did, for the import log.
type MergeResult struct {
	Connections []network.Connection
	Added       int
	Updated     int
	Carried     int // present in old snapshot, absent from the import
}

// Merge produces a new snapshot from the union of the existing snapshot
// and an import batch. Existing connections missing from the batch are
// carried forward untouched; the merge is additive, never destructive.
// Output is sorted by strength (close, warm, cold) then name for
// deterministic serialization.
func Merge(existing *network.Snapshot, imported []network.Connection) MergeResult {
	oldByID := make(map[string]network.Connection, len(existing.Connections))
	for _, c := range existing.Connections {
		oldByID[c.ID] = c
	}

	result := MergeResult{}
	inBatch := make(map[string]bool, len(imported))

	for _, newConn := range imported {
		inBatch[newConn.ID] = true
		if old, ok := oldByID[newConn.ID]; ok {
			result.Connections = append(result.Connections, MergeConnection(old, newConn))
			result.Updated++
		} else {
			result.Connections = append(result.Connections, newConn)
			result.Added++
		}
	}

	for _, old := range existing.Connections {
		if !inBatch[old.ID] {
			result.Connections = append(result.Connections, old)
			result.Carried++
		}
	}

	SortConnections(result.Connections)
	return result
}

// SortConnections orders connections by relationship strength (close,
// warm, cold, then anything unrecognized) and name ascending.
func SortConnections(conns []network.Connection) {
	rank := func(s network.Strength) int {
		switch s {
		case network.StrengthClose:
			return 0
		case network.StrengthWarm:
			return 1
		case network.StrengthCold:
			return 2
		default:
			return 3
		}
	}
	sort.SliceStable(conns, func(i, j int) bool {
		ri, rj := rank(conns[i].RelationshipStrength), rank(conns[j].RelationshipStrength)
		if ri != rj {
			return ri < rj
		}
		return conns[i].Name < conns[j].Name
	})
}

// Package app implements the primary-port services. Services load
// records through secondary ports, hand typed snapshots to the pure core
// analysis functions, and never format output.
package app

import (
	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/ports/secondary"
)

// recordToConnection coerces a stored record into the typed model.
// Unrecognized enum strings survive the cast untouched; they simply
// never match a typed filter.
func recordToConnection(r *secondary.ConnectionRecord) network.Connection {
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

func connectionToRecord(c network.Connection) *secondary.ConnectionRecord {
	return &secondary.ConnectionRecord{
		ID:                   c.ID,
		Name:                 c.Name,
		Email:                c.Email,
		Company:              c.Company,
		Position:             c.Position,
		ConnectedDate:        c.ConnectedDate,
		RelationshipStrength: string(c.RelationshipStrength),
		MessageCount:         c.MessageCount,
		LastMessage:          c.LastMessage,
		Context:              c.Context,
		Domains:              c.Domains,
		CanAskFor:            c.CanAskFor,
		HasAskedYou:          c.HasAskedYou,
		IntroducesTo:         c.IntroducesTo,
		Notes:                c.Notes,
		LastContact:          c.LastContact,
		ContactFrequency:     c.ContactFrequency,
		Positives:            c.Positives,
		Negatives:            c.Negatives,
		TrustLevel:           string(c.TrustLevel),
		Energy:               string(c.Energy),
	}
}

// recordsToSnapshot builds the analysis snapshot, preserving stored
// order for deterministic derivation output.
func recordsToSnapshot(records []*secondary.ConnectionRecord) *network.Snapshot {
	snap := &network.Snapshot{Connections: make([]network.Connection, len(records))}
	for i, r := range records {
		snap.Connections[i] = recordToConnection(r)
	}
	return snap
}

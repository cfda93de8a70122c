// Package network contains the snapshot model and the pure derivation
// library for relationship intelligence. Every analysis function takes an
// already-loaded snapshot and returns typed insights; nothing in this
// package touches storage or mutates its input.
package network

// Strength is the coarse closeness tier of a relationship, derived from
// message volume at import time.
type Strength string

const (
	StrengthCold  Strength = "cold"
	StrengthWarm  Strength = "warm"
	StrengthClose Strength = "close"
)

// Rank returns the ordering value of a strength for minimum-strength
// filters. Unrecognized values rank as cold.
func (s Strength) Rank() int {
	switch s {
	case StrengthClose:
		return 3
	case StrengthWarm:
		return 2
	default:
		return 1
	}
}

// Trust is a manually curated assessment of a connection.
type Trust string

const (
	TrustHigh    Trust = "high"
	TrustMedium  Trust = "medium"
	TrustLow     Trust = "low"
	TrustUnknown Trust = "unknown"
)

// Energy records whether interacting with a connection energizes or
// drains you.
type Energy string

const (
	EnergyEnergizing Energy = "energizing"
	EnergyNeutral    Energy = "neutral"
	EnergyDraining   Energy = "draining"
)

// Priority ranks an insight or action.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort order of a priority (high first). Unrecognized
// priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Connection is one person in the network. Dates are stored as strings
// (ideally ISO YYYY-MM-DD); the import layer parses known formats and
// passes anything else through unchanged, so chronological comparisons
// on malformed dates degrade to string comparison. That is a documented
// limitation, not a bug.
type Connection struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Email         string `yaml:"email,omitempty"`
	Company       string `yaml:"company,omitempty"`
	Position      string `yaml:"position,omitempty"`
	ConnectedDate string `yaml:"connected_date,omitempty"`

	// Computed at import time from message volume.
	RelationshipStrength Strength `yaml:"relationship_strength"`
	MessageCount         int      `yaml:"message_count"`
	LastMessage          string   `yaml:"last_message,omitempty"`

	// Manual enrichment. Preserved across re-imports.
	Context          string   `yaml:"context,omitempty"`
	Domains          []string `yaml:"domains,omitempty"`
	CanAskFor        []string `yaml:"can_ask_for,omitempty"`
	HasAskedYou      []string `yaml:"has_asked_you,omitempty"`
	IntroducesTo     []string `yaml:"introduces_to,omitempty"`
	Notes            string   `yaml:"notes,omitempty"`
	LastContact      string   `yaml:"last_contact,omitempty"`
	ContactFrequency string   `yaml:"contact_frequency,omitempty"`
	Positives        []string `yaml:"positives,omitempty"`
	Negatives        []string `yaml:"negatives,omitempty"`
	TrustLevel       Trust    `yaml:"trust_level,omitempty"`
	Energy           Energy   `yaml:"energy,omitempty"`
}

// LastTouch returns the most authoritative "last spoke" date: the
// manually tracked last_contact when present, otherwise the last
// imported message date.
func (c Connection) LastTouch() string {
	if c.LastContact != "" {
		return c.LastContact
	}
	return c.LastMessage
}

// Interaction is a single recorded communication event. Interactions are
// append-only evidence for communication-pattern analysis.
type Interaction struct {
	With   string `yaml:"with"`
	Medium string `yaml:"medium"`
	Date   string `yaml:"date,omitempty"`
}

// Snapshot is a point-in-time view of the full network. Connections keep
// their stored order so repeated analysis runs are deterministic.
type Snapshot struct {
	Connections []Connection
}

// Insight is a single derived finding with an optional suggested action.
type Insight struct {
	Kind        string
	Priority    Priority
	Message     string
	Connections []string // connection IDs as evidence
	Action      string
}

// Pattern is a detected pattern in behavior or network shape.
type Pattern struct {
	Kind        string
	Description string
	Evidence    []string
	Suggestion  string
}

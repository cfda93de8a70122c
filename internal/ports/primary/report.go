package primary

import (
	"context"
	"time"

	"github.com/example/brain/internal/core/goal"
	"github.com/example/brain/internal/core/network"
)

// ReportService defines the primary port for derived intelligence: the
// full report bundle, prioritized actions, the quick status, and
// pre-meeting briefs.
type ReportService interface {
	// FullReport runs every analysis and returns the structured bundle.
	FullReport(ctx context.Context, now time.Time) (*Report, error)

	// ActionItems returns the prioritized action list, capped at 10.
	ActionItems(ctx context.Context, now time.Time) ([]Action, error)

	// QuickSummary returns the session-start status record.
	QuickSummary(ctx context.Context, now time.Time) (*QuickSummary, error)

	// Brief returns a pre-meeting brief for one connection.
	// Returns ErrNotFound when the connection does not exist.
	Brief(ctx context.Context, connectionID string) (*network.Assessment, error)

	// Stale returns stale-relationship insights.
	Stale(ctx context.Context, now time.Time, thresholdDays int) ([]network.Insight, error)

	// Gaps returns coverage insights for the target domains (nil means
	// the configured defaults).
	Gaps(ctx context.Context, targetDomains []string) ([]network.Insight, error)

	// Match returns domain-match insights for a topic.
	Match(ctx context.Context, topic string, minStrength network.Strength) ([]network.Insight, error)

	// Intros returns intro-path insights for a target domain.
	Intros(ctx context.Context, targetDomain string) ([]network.Insight, error)

	// Reconnect cross-references active topics against the network and
	// suggests people worth re-engaging.
	Reconnect(ctx context.Context, topics []string) ([]network.Insight, error)
}

// Report is the full structured analysis bundle. Renderers consume it;
// the core never formats terminal output.
type Report struct {
	GeneratedAt time.Time

	Summary        network.Summary
	EnrichmentPct  float64
	Stale          []network.Insight
	Gaps           []network.Insight
	EnergyInsights []network.Insight

	Communication  []network.Pattern
	DomainClusters []network.Pattern
	Trajectory     []network.Pattern
	TrustPatterns  []network.Pattern
	EnergyPatterns []network.Pattern
	Assessments    []network.Pattern
	BlindSpots     []network.Pattern

	StatedVsRevealed []goal.AlignmentInsight
	NetworkGoalFit   []goal.AlignmentInsight

	Actions []Action
}

// Action is one prioritized action item.
type Action struct {
	Priority network.Priority
	Action   string
	Reason   string
}

// QuickSummary is the flat session-start status record.
type QuickSummary struct {
	Status  string // "active" or "unpopulated"
	Message string

	TotalConnections int
	Close            int
	Warm             int
	Cold             int
	HighTrust        int
	Energizing       int
	Draining         int
	StaleCount       int
	NeedsAttention   bool
}

package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/brain/internal/core/goal"
	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/ports/primary"
	"github.com/example/brain/internal/ports/secondary"
)

// maxActionItems caps the prioritized action list.
const maxActionItems = 10

// ReportServiceImpl implements the ReportService interface: it runs the
// derivation library over a loaded snapshot and aggregates the results.
type ReportServiceImpl struct {
	connStore        secondary.ConnectionStore
	interactionStore secondary.InteractionStore
	goalsStore       secondary.GoalsStore

	// TargetDomains overrides the default gap-check domains when set.
	TargetDomains []string
	// StaleThresholdDays overrides the default staleness window when >0.
	StaleThresholdDays int
}

// NewReportService creates a new ReportService with injected
// dependencies.
func NewReportService(
	connStore secondary.ConnectionStore,
	interactionStore secondary.InteractionStore,
	goalsStore secondary.GoalsStore,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		connStore:        connStore,
		interactionStore: interactionStore,
		goalsStore:       goalsStore,
	}
}

func (s *ReportServiceImpl) snapshot(ctx context.Context) (*network.Snapshot, error) {
	records, err := s.connStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load connections: %w", err)
	}
	return recordsToSnapshot(records), nil
}

func (s *ReportServiceImpl) staleThreshold() int {
	if s.StaleThresholdDays > 0 {
		return s.StaleThresholdDays
	}
	return network.DefaultStaleThresholdDays
}

// FullReport runs every analysis and returns the structured bundle.
func (s *ReportServiceImpl) FullReport(ctx context.Context, now time.Time) (*primary.Report, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	interactions, err := s.loadInteractions(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.goalsStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	summary := network.NetworkSummary(snap, now)

	report := &primary.Report{
		GeneratedAt: now,

		Summary:        summary,
		EnrichmentPct:  enrichmentPct(summary),
		Stale:          network.StaleRelationships(snap, now, s.staleThreshold()),
		Gaps:           network.NetworkGaps(snap, s.TargetDomains),
		EnergyInsights: network.EnergizingConnections(snap),

		Communication:  network.CommunicationPatterns(snap, interactions),
		DomainClusters: network.DomainClusters(snap),
		Trajectory:     network.RelationshipTrajectory(snap, now, network.DefaultTrajectoryLookbackDays),
		TrustPatterns:  network.TrustPatterns(snap),
		EnergyPatterns: network.EnergyPatterns(snap),
		Assessments:    network.AssessmentPatterns(snap),
		BlindSpots:     network.BlindSpotDetection(snap, now),

		StatedVsRevealed: goal.StatedVsRevealed(goals),
		NetworkGoalFit:   goal.NetworkGoalFit(goals, snap),
	}

	report.Actions = s.actionItems(snap, goals, now)
	return report, nil
}

// ActionItems returns the prioritized action list, capped at 10.
func (s *ReportServiceImpl) ActionItems(ctx context.Context, now time.Time) ([]primary.Action, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.goalsStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	return s.actionItems(snap, goals, now), nil
}

// actionItems combines the derivation outputs into a prioritized action
// list: stale (top 3 high), gaps (top 2 high), draining review, the
// first two blind spots when undocumented/echo, and every explicit goal
// misalignment. Collection order is fixed; the final stable sort by
// priority rank keeps it deterministic.
func (s *ReportServiceImpl) actionItems(snap *network.Snapshot, goals goal.Goals, now time.Time) []primary.Action {
	if len(snap.Connections) == 0 {
		return []primary.Action{{
			Priority: network.PriorityHigh,
			Action:   "Import LinkedIn data to populate network",
			Reason:   "Network intelligence requires connection data",
		}}
	}

	var actions []primary.Action

	stale := network.StaleRelationships(snap, now, s.staleThreshold())
	for i, insight := range stale {
		if i >= 3 {
			break
		}
		if insight.Priority != network.PriorityHigh {
			continue
		}
		target := "stale contact"
		if len(insight.Connections) > 0 {
			target = insight.Connections[0]
		}
		actions = append(actions, primary.Action{
			Priority: network.PriorityHigh,
			Action:   "Reconnect with " + target,
			Reason:   insight.Message,
		})
	}

	gaps := network.NetworkGaps(snap, s.TargetDomains)
	for i, insight := range gaps {
		if i >= 2 {
			break
		}
		if insight.Priority != network.PriorityHigh {
			continue
		}
		actions = append(actions, primary.Action{
			Priority: network.PriorityMedium,
			Action:   "Build network in " + quotedSuffix(insight.Message),
			Reason:   "Gap in important domain",
		})
	}

	for _, insight := range network.EnergizingConnections(snap) {
		if insight.Kind == "draining" && len(insight.Connections) > 3 {
			actions = append(actions, primary.Action{
				Priority: network.PriorityLow,
				Action:   "Review draining relationships",
				Reason:   fmt.Sprintf("%d connections flagged as draining", len(insight.Connections)),
			})
		}
	}

	blindSpots := network.BlindSpotDetection(snap, now)
	for i, pattern := range blindSpots {
		if i >= 2 {
			break
		}
		if !strings.Contains(pattern.Kind, "undocumented") && !strings.Contains(pattern.Kind, "echo") {
			continue
		}
		action := pattern.Suggestion
		if action == "" {
			action = pattern.Description
		}
		actions = append(actions, primary.Action{
			Priority: network.PriorityMedium,
			Action:   action,
			Reason:   pattern.Description,
		})
	}

	for _, insight := range goal.StatedVsRevealed(goals) {
		if insight.Kind != "misaligned" {
			continue
		}
		desc := insight.Description
		if r := []rune(desc); len(r) > 50 {
			desc = string(r[:50])
		}
		actions = append(actions, primary.Action{
			Priority: network.PriorityHigh,
			Action:   "Address goal misalignment: " + desc,
			Reason:   fmt.Sprintf("Stated: %s, Actual: %s", insight.Stated, insight.Actual),
		})
	}

	sortActionsByPriority(actions)
	if len(actions) > maxActionItems {
		actions = actions[:maxActionItems]
	}
	return actions
}

// QuickSummary returns the session-start status record.
func (s *ReportServiceImpl) QuickSummary(ctx context.Context, now time.Time) (*primary.QuickSummary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(snap.Connections) == 0 {
		return &primary.QuickSummary{
			Status:  "unpopulated",
			Message: "Network not populated. Import LinkedIn data to enable intelligence.",
		}, nil
	}

	summary := network.NetworkSummary(snap, now)
	return &primary.QuickSummary{
		Status:           "active",
		TotalConnections: summary.TotalConnections,
		Close:            summary.Close,
		Warm:             summary.Warm,
		Cold:             summary.Cold,
		HighTrust:        summary.Trust.High,
		Energizing:       summary.Energy.Energizing,
		Draining:         summary.Energy.Draining,
		StaleCount:       summary.StaleCount,
		NeedsAttention:   summary.StaleCount > 0 || summary.Energy.Draining > 3,
	}, nil
}

// Brief returns a pre-meeting brief for one connection.
func (s *ReportServiceImpl) Brief(ctx context.Context, connectionID string) (*network.Assessment, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	assessment, ok := network.ConnectionAssessment(snap, connectionID)
	if !ok {
		return nil, fmt.Errorf("connection %s: %w", connectionID, primary.ErrNotFound)
	}
	return &assessment, nil
}

// Stale returns stale-relationship insights.
func (s *ReportServiceImpl) Stale(ctx context.Context, now time.Time, thresholdDays int) ([]network.Insight, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if thresholdDays <= 0 {
		thresholdDays = s.staleThreshold()
	}
	return network.StaleRelationships(snap, now, thresholdDays), nil
}

// Gaps returns coverage insights for the target domains.
func (s *ReportServiceImpl) Gaps(ctx context.Context, targetDomains []string) ([]network.Insight, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if targetDomains == nil {
		targetDomains = s.TargetDomains
	}
	return network.NetworkGaps(snap, targetDomains), nil
}

// Match returns domain-match insights for a topic.
func (s *ReportServiceImpl) Match(ctx context.Context, topic string, minStrength network.Strength) ([]network.Insight, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return network.DomainMatches(snap, topic, minStrength), nil
}

// Intros returns intro-path insights for a target domain.
func (s *ReportServiceImpl) Intros(ctx context.Context, targetDomain string) ([]network.Insight, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return network.IntroPaths(snap, targetDomain), nil
}

// Reconnect suggests people worth re-engaging for the given topics.
func (s *ReportServiceImpl) Reconnect(ctx context.Context, topics []string) ([]network.Insight, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return network.ReconnectionSuggestions(snap, topics), nil
}

func (s *ReportServiceImpl) loadInteractions(ctx context.Context) ([]network.Interaction, error) {
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

// sortActionsByPriority stable-sorts high before medium before low.
func sortActionsByPriority(actions []primary.Action) {
	// Insertion sort keeps the fixed collection order within a tier.
	for i := 1; i < len(actions); i++ {
		for j := i; j > 0 && actions[j].Priority.Rank() < actions[j-1].Priority.Rank(); j-- {
			actions[j], actions[j-1] = actions[j-1], actions[j]
		}
	}
}

// quotedSuffix extracts the quoted tail of a gap message, e.g. the
// domain out of `Network gap: No connections in "design"`.
func quotedSuffix(message string) string {
	start := strings.Index(message, `"`)
	end := strings.LastIndex(message, `"`)
	if start >= 0 && end > start {
		return message[start+1 : end]
	}
	return message
}

func enrichmentPct(summary network.Summary) float64 {
	if summary.TotalConnections == 0 {
		return 0
	}
	pct := float64(summary.WithPositives+summary.WithNegatives) / float64(summary.TotalConnections) * 100
	// One decimal place, matching the report rendering.
	return float64(int(pct*10+0.5)) / 10
}

// Ensure ReportServiceImpl implements the interface
var _ primary.ReportService = (*ReportServiceImpl)(nil)

// Package cli provides thin CLI adapters that translate between CLI
// concerns and application services. Adapters handle output formatting
// but delegate all analysis to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/example/brain/internal/core/goal"
	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/ports/primary"
)

// ReportAdapter renders ReportService output to a terminal.
type ReportAdapter struct {
	service primary.ReportService
	out     io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given service.
func NewReportAdapter(service primary.ReportService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		service: service,
		out:     out,
	}
}

// Full renders the complete intelligence report.
func (a *ReportAdapter) Full(ctx context.Context, now time.Time) error {
	report, err := a.service.FullReport(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	header := color.New(color.Bold, color.FgHiCyan)
	fmt.Fprintln(a.out)
	header.Fprintln(a.out, "NETWORK INTELLIGENCE REPORT")
	fmt.Fprintf(a.out, "Generated: %s\n", report.GeneratedAt.Format(network.DateLayout))

	a.printSummary(report.Summary)

	if report.EnrichmentPct < 100 {
		fmt.Fprintf(a.out, "\nEnrichment: %.1f%% of connections assessed\n", report.EnrichmentPct)
		if report.EnrichmentPct < 20 {
			fmt.Fprintln(a.out, ">> Consider adding positives/negatives for key connections")
		}
	}

	a.printInsightSection("STALE RELATIONSHIPS", report.Stale)
	a.printInsightSection("NETWORK GAPS", report.Gaps)
	a.printInsightSection("ENERGY", report.EnergyInsights)

	a.printPatternSection("COMMUNICATION PATTERNS", report.Communication)
	a.printPatternSection("DOMAIN CLUSTERS", report.DomainClusters)
	a.printPatternSection("RELATIONSHIP TRAJECTORY", report.Trajectory)
	a.printPatternSection("TRUST PATTERNS", report.TrustPatterns)
	a.printPatternSection("ENERGY PATTERNS", report.EnergyPatterns)
	a.printPatternSection("ASSESSMENT PATTERNS", report.Assessments)
	a.printPatternSection("BLIND SPOTS", report.BlindSpots)

	a.printAlignmentSection("STATED VS REVEALED", report.StatedVsRevealed)
	a.printAlignmentSection("NETWORK-GOAL FIT", report.NetworkGoalFit)

	a.printActions(report.Actions)
	fmt.Fprintln(a.out)

	return nil
}

// Actions renders the prioritized action list.
func (a *ReportAdapter) Actions(ctx context.Context, now time.Time) error {
	actions, err := a.service.ActionItems(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to generate action items: %w", err)
	}
	a.printActions(actions)
	return nil
}

// Summary renders the quick session-start status.
func (a *ReportAdapter) Summary(ctx context.Context, now time.Time) error {
	summary, err := a.service.QuickSummary(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to generate summary: %w", err)
	}

	if summary.Status == "unpopulated" {
		fmt.Fprintln(a.out, summary.Message)
		return nil
	}

	fmt.Fprintf(a.out, "\nNetwork: %d connections (%d close, %d warm, %d cold)\n",
		summary.TotalConnections, summary.Close, summary.Warm, summary.Cold)
	fmt.Fprintf(a.out, "Trust:   %d high-trust\n", summary.HighTrust)
	fmt.Fprintf(a.out, "Energy:  %d energizing, %d draining\n", summary.Energizing, summary.Draining)
	if summary.StaleCount > 0 {
		fmt.Fprintf(a.out, "Stale:   %d relationships need attention\n", summary.StaleCount)
	}
	if summary.NeedsAttention {
		color.New(color.FgYellow).Fprintln(a.out, "Needs attention")
	}
	fmt.Fprintln(a.out)
	return nil
}

// Brief renders a pre-meeting brief for one connection.
func (a *ReportAdapter) Brief(ctx context.Context, connectionID string) error {
	brief, err := a.service.Brief(ctx, connectionID)
	if err != nil {
		return err
	}

	header := color.New(color.Bold)
	fmt.Fprintln(a.out)
	header.Fprintf(a.out, "MEETING BRIEF: %s\n", brief.Name)
	if brief.Company != "" {
		fmt.Fprintf(a.out, "Company:      %s\n", brief.Company)
	}
	if brief.Position != "" {
		fmt.Fprintf(a.out, "Position:     %s\n", brief.Position)
	}
	fmt.Fprintf(a.out, "Relationship: %s\n", brief.RelationshipStrength)
	fmt.Fprintf(a.out, "Trust:        %s\n", brief.TrustLevel)
	fmt.Fprintf(a.out, "Energy:       %s\n", brief.Energy)
	if brief.LastContact != "" {
		fmt.Fprintf(a.out, "Last contact: %s\n", brief.LastContact)
	}

	if len(brief.Positives) > 0 {
		fmt.Fprintln(a.out, "\nPOSITIVES")
		for _, p := range brief.Positives {
			fmt.Fprintf(a.out, "  + %s\n", p)
		}
	}
	if len(brief.Negatives) > 0 {
		fmt.Fprintln(a.out, "\nWATCH-OUTS")
		for _, n := range brief.Negatives {
			fmt.Fprintf(a.out, "  ! %s\n", n)
		}
	}
	if len(brief.CanAskFor) > 0 {
		fmt.Fprintln(a.out, "\nCAN ASK FOR")
		for _, c := range brief.CanAskFor {
			fmt.Fprintf(a.out, "  - %s\n", c)
		}
	}
	if brief.Notes != "" {
		fmt.Fprintf(a.out, "\nNOTES\n  %s\n", brief.Notes)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Stale renders stale-relationship insights.
func (a *ReportAdapter) Stale(ctx context.Context, now time.Time, thresholdDays int) error {
	insights, err := a.service.Stale(ctx, now, thresholdDays)
	if err != nil {
		return fmt.Errorf("failed to find stale relationships: %w", err)
	}
	if len(insights) == 0 {
		fmt.Fprintln(a.out, "No stale relationships")
		return nil
	}
	a.printInsights(insights)
	return nil
}

// Gaps renders network-gap insights.
func (a *ReportAdapter) Gaps(ctx context.Context, targetDomains []string) error {
	insights, err := a.service.Gaps(ctx, targetDomains)
	if err != nil {
		return fmt.Errorf("failed to check network gaps: %w", err)
	}
	if len(insights) == 0 {
		fmt.Fprintln(a.out, "No gaps in target domains")
		return nil
	}
	a.printInsights(insights)
	return nil
}

// Match renders domain-match insights for a topic.
func (a *ReportAdapter) Match(ctx context.Context, topic string, minStrength network.Strength) error {
	insights, err := a.service.Match(ctx, topic, minStrength)
	if err != nil {
		return fmt.Errorf("failed to match topic: %w", err)
	}
	if len(insights) == 0 {
		fmt.Fprintf(a.out, "No connections matching %q\n", topic)
		return nil
	}
	a.printInsights(insights)
	return nil
}

// Intros renders intro-path insights for a target domain.
func (a *ReportAdapter) Intros(ctx context.Context, targetDomain string) error {
	insights, err := a.service.Intros(ctx, targetDomain)
	if err != nil {
		return fmt.Errorf("failed to find intro paths: %w", err)
	}
	if len(insights) == 0 {
		fmt.Fprintf(a.out, "No likely intro paths into %q\n", targetDomain)
		return nil
	}
	a.printInsights(insights)
	return nil
}

// Reconnect renders reconnection suggestions for active topics.
func (a *ReportAdapter) Reconnect(ctx context.Context, topics []string) error {
	insights, err := a.service.Reconnect(ctx, topics)
	if err != nil {
		return fmt.Errorf("failed to find reconnection suggestions: %w", err)
	}
	if len(insights) == 0 {
		fmt.Fprintln(a.out, "No reconnection suggestions for these topics")
		return nil
	}
	a.printInsights(insights)
	return nil
}

func (a *ReportAdapter) printSummary(s network.Summary) {
	fmt.Fprintf(a.out, "\nConnections: %d (%d close, %d warm, %d cold)\n",
		s.TotalConnections, s.Close, s.Warm, s.Cold)
	fmt.Fprintf(a.out, "Trust:  %d high / %d medium / %d low / %d unknown\n",
		s.Trust.High, s.Trust.Medium, s.Trust.Low, s.Trust.Unknown)
	fmt.Fprintf(a.out, "Energy: %d energizing / %d neutral / %d draining\n",
		s.Energy.Energizing, s.Energy.Neutral, s.Energy.Draining)
	if len(s.TopDomains) > 0 {
		fmt.Fprint(a.out, "Domains:")
		for _, d := range s.TopDomains {
			fmt.Fprintf(a.out, " %s(%d)", d.Domain, d.Count)
		}
		fmt.Fprintln(a.out)
	}
}

func (a *ReportAdapter) printInsightSection(title string, insights []network.Insight) {
	if len(insights) == 0 {
		return
	}
	color.New(color.Bold).Fprintf(a.out, "\n%s\n", title)
	a.printInsights(insights)
}

func (a *ReportAdapter) printInsights(insights []network.Insight) {
	for _, insight := range insights {
		fmt.Fprintf(a.out, "%s %s\n", priorityMarker(insight.Priority), insight.Message)
		if insight.Action != "" {
			fmt.Fprintf(a.out, "    → %s\n", insight.Action)
		}
	}
}

func (a *ReportAdapter) printPatternSection(title string, patterns []network.Pattern) {
	if len(patterns) == 0 {
		return
	}
	color.New(color.Bold).Fprintf(a.out, "\n%s\n", title)
	for _, p := range patterns {
		fmt.Fprintf(a.out, "• %s\n", p.Description)
		for _, e := range p.Evidence {
			fmt.Fprintf(a.out, "    %s\n", e)
		}
		if p.Suggestion != "" {
			fmt.Fprintf(a.out, "    → %s\n", p.Suggestion)
		}
	}
}

func (a *ReportAdapter) printAlignmentSection(title string, insights []goal.AlignmentInsight) {
	if len(insights) == 0 {
		return
	}
	color.New(color.Bold).Fprintf(a.out, "\n%s\n", title)
	for _, insight := range insights {
		fmt.Fprintf(a.out, "• %s\n", insight.Description)
		if insight.Stated != "" {
			fmt.Fprintf(a.out, "    Stated: %s\n", insight.Stated)
		}
		if insight.Actual != "" {
			fmt.Fprintf(a.out, "    Actual: %s\n", insight.Actual)
		}
		if insight.Suggestion != "" {
			fmt.Fprintf(a.out, "    → %s\n", insight.Suggestion)
		}
	}
}

func (a *ReportAdapter) printActions(actions []primary.Action) {
	if len(actions) == 0 {
		fmt.Fprintln(a.out, "No action items")
		return
	}
	color.New(color.Bold).Fprintln(a.out, "\nACTION ITEMS")
	for i, action := range actions {
		fmt.Fprintf(a.out, "%2d. %s %s\n", i+1, priorityMarker(action.Priority), action.Action)
		if action.Reason != "" {
			fmt.Fprintf(a.out, "      %s\n", action.Reason)
		}
	}
}

func priorityMarker(p network.Priority) string {
	switch p {
	case network.PriorityHigh:
		return color.New(color.FgRed).Sprint("[high]")
	case network.PriorityMedium:
		return color.New(color.FgYellow).Sprint("[medium]")
	case network.PriorityLow:
		return color.New(color.FgHiBlack).Sprint("[low]")
	default:
		return fmt.Sprintf("[%s]", p)
	}
}

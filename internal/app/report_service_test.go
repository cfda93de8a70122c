package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/example/brain/internal/core/goal"
	"github.com/example/brain/internal/core/network"
	"github.com/example/brain/internal/ports/primary"
	"github.com/example/brain/internal/ports/secondary"
)

var reportNow = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func TestReportService_ActionItemsEmptyNetwork(t *testing.T) {
	svc := NewReportService(&fakeConnStore{}, &fakeInteractionStore{}, &fakeGoalsStore{})

	actions, err := svc.ActionItems(context.Background(), reportNow)
	if err != nil {
		t.Fatalf("ActionItems failed: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("expected the single bootstrap action, got %+v", actions)
	}
	if actions[0].Priority != network.PriorityHigh || actions[0].Action != "Import LinkedIn data to populate network" {
		t.Errorf("action = %+v", actions[0])
	}
}

func TestReportService_ActionItems(t *testing.T) {
	connStore := &fakeConnStore{records: []*secondary.ConnectionRecord{
		{ID: "conn.stale", Name: "Stale Close", RelationshipStrength: "close", LastMessage: "2024-01-01"},
		{ID: "conn.trusted", Name: "Blind Trust", TrustLevel: "high"},
		{ID: "conn.d1", Name: "D1", Energy: "draining"},
		{ID: "conn.d2", Name: "D2", Energy: "draining"},
		{ID: "conn.d3", Name: "D3", Energy: "draining"},
		{ID: "conn.d4", Name: "D4", Energy: "draining"},
	}}
	goals := goal.Goals{Delta: goal.Delta{Misalignments: []goal.Misalignment{
		{Gap: "Networking avoidance", Stated: "Meet investors", Actual: "No outreach"},
	}}}

	svc := NewReportService(connStore, &fakeInteractionStore{}, &fakeGoalsStore{goals: goals})
	svc.TargetDomains = []string{"design"}

	actions, err := svc.ActionItems(context.Background(), reportNow)
	if err != nil {
		t.Fatalf("ActionItems failed: %v", err)
	}
	if len(actions) != 5 {
		t.Fatalf("expected 5 actions, got %d: %+v", len(actions), actions)
	}

	// High before medium before low; collection order within a tier.
	if actions[0].Action != "Reconnect with conn.stale" || actions[0].Priority != network.PriorityHigh {
		t.Errorf("actions[0] = %+v", actions[0])
	}
	if actions[1].Action != "Address goal misalignment: Networking avoidance" {
		t.Errorf("actions[1] = %+v", actions[1])
	}
	if actions[1].Reason != "Stated: Meet investors, Actual: No outreach" {
		t.Errorf("misalignment reason = %q", actions[1].Reason)
	}
	if actions[2].Action != "Build network in design" || actions[2].Priority != network.PriorityMedium {
		t.Errorf("actions[2] = %+v", actions[2])
	}
	if !strings.Contains(actions[3].Action, "Why do you trust them") {
		t.Errorf("actions[3] = %+v", actions[3])
	}
	if actions[4].Action != "Review draining relationships" || actions[4].Priority != network.PriorityLow {
		t.Errorf("actions[4] = %+v", actions[4])
	}
	if actions[4].Reason != "4 connections flagged as draining" {
		t.Errorf("draining reason = %q", actions[4].Reason)
	}
}

func TestReportService_ActionItemsCapped(t *testing.T) {
	connStore := &fakeConnStore{records: []*secondary.ConnectionRecord{
		{ID: "conn.someone", Name: "Someone", RelationshipStrength: "cold"},
	}}
	var misalignments []goal.Misalignment
	for i := 0; i < 15; i++ {
		misalignments = append(misalignments, goal.Misalignment{Gap: "Gap", Stated: "S", Actual: "A"})
	}
	goals := goal.Goals{Delta: goal.Delta{Misalignments: misalignments}}

	svc := NewReportService(connStore, &fakeInteractionStore{}, &fakeGoalsStore{goals: goals})
	svc.TargetDomains = []string{}

	actions, err := svc.ActionItems(context.Background(), reportNow)
	if err != nil {
		t.Fatalf("ActionItems failed: %v", err)
	}
	if len(actions) != 10 {
		t.Errorf("expected the cap of 10, got %d", len(actions))
	}
}

func TestReportService_ActionItemsTruncateMisalignment(t *testing.T) {
	connStore := &fakeConnStore{records: []*secondary.ConnectionRecord{
		{ID: "conn.someone", Name: "Someone", RelationshipStrength: "cold"},
	}}
	gap := "Says expanding to Zürich is critical but has booked nothing"
	goals := goal.Goals{Delta: goal.Delta{Misalignments: []goal.Misalignment{
		{Gap: gap, Stated: "Open the Zürich office", Actual: "No trips booked"},
	}}}

	svc := NewReportService(connStore, &fakeInteractionStore{}, &fakeGoalsStore{goals: goals})
	svc.TargetDomains = []string{}

	actions, err := svc.ActionItems(context.Background(), reportNow)
	if err != nil {
		t.Fatalf("ActionItems failed: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d: %+v", len(actions), actions)
	}
	// Cut after 50 runes, not 50 bytes.
	want := "Address goal misalignment: Says expanding to Zürich is critical but has booke"
	if actions[0].Action != want {
		t.Errorf("Action = %q, want %q", actions[0].Action, want)
	}
	if !utf8.ValidString(actions[0].Action) {
		t.Error("action text is not valid UTF-8")
	}
}

func TestReportService_QuickSummary(t *testing.T) {
	connStore := &fakeConnStore{records: []*secondary.ConnectionRecord{
		{ID: "conn.stale", Name: "Stale Close", RelationshipStrength: "close", LastMessage: "2024-01-01", TrustLevel: "high"},
		{ID: "conn.fresh", Name: "Fresh", RelationshipStrength: "warm", LastMessage: "2025-06-10", Energy: "energizing"},
	}}
	svc := NewReportService(connStore, &fakeInteractionStore{}, &fakeGoalsStore{})

	qs, err := svc.QuickSummary(context.Background(), reportNow)
	if err != nil {
		t.Fatalf("QuickSummary failed: %v", err)
	}
	if qs.Status != "active" {
		t.Errorf("Status = %q", qs.Status)
	}
	if qs.TotalConnections != 2 || qs.Close != 1 || qs.Warm != 1 {
		t.Errorf("counts = %+v", qs)
	}
	if qs.HighTrust != 1 || qs.Energizing != 1 {
		t.Errorf("trust/energy = %+v", qs)
	}
	if qs.StaleCount != 1 || !qs.NeedsAttention {
		t.Errorf("staleness = %+v", qs)
	}
}

func TestReportService_QuickSummaryUnpopulated(t *testing.T) {
	svc := NewReportService(&fakeConnStore{}, &fakeInteractionStore{}, &fakeGoalsStore{})

	qs, err := svc.QuickSummary(context.Background(), reportNow)
	if err != nil {
		t.Fatalf("QuickSummary failed: %v", err)
	}
	if qs.Status != "unpopulated" {
		t.Errorf("Status = %q", qs.Status)
	}
	if qs.Message != "Network not populated. Import LinkedIn data to enable intelligence." {
		t.Errorf("Message = %q", qs.Message)
	}
}

func TestReportService_QuickSummaryNoAttentionNeeded(t *testing.T) {
	connStore := &fakeConnStore{records: []*secondary.ConnectionRecord{
		{ID: "conn.fresh", Name: "Fresh", RelationshipStrength: "warm", LastMessage: "2025-06-10"},
	}}
	svc := NewReportService(connStore, &fakeInteractionStore{}, &fakeGoalsStore{})

	qs, err := svc.QuickSummary(context.Background(), reportNow)
	if err != nil {
		t.Fatalf("QuickSummary failed: %v", err)
	}
	if qs.NeedsAttention {
		t.Errorf("nothing stale and nothing draining, NeedsAttention should be false: %+v", qs)
	}
}

func TestReportService_Brief(t *testing.T) {
	connStore := &fakeConnStore{records: []*secondary.ConnectionRecord{
		{ID: "conn.jane", Name: "Jane Doe", Company: "Acme", RelationshipStrength: "close",
			LastMessage: "2025-01-01", Positives: []string{"sharp"}},
	}}
	svc := NewReportService(connStore, &fakeInteractionStore{}, &fakeGoalsStore{})

	brief, err := svc.Brief(context.Background(), "conn.jane")
	if err != nil {
		t.Fatalf("Brief failed: %v", err)
	}
	if brief.Name != "Jane Doe" || brief.LastContact != "2025-01-01" {
		t.Errorf("brief = %+v", brief)
	}
	if brief.TrustLevel != network.TrustUnknown || brief.Energy != network.EnergyNeutral {
		t.Errorf("unset trust/energy should default: %+v", brief)
	}

	if _, err := svc.Brief(context.Background(), "conn.ghost"); !errors.Is(err, primary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReportService_FullReport(t *testing.T) {
	connStore := &fakeConnStore{records: []*secondary.ConnectionRecord{
		{ID: "conn.jane", Name: "Jane Doe", RelationshipStrength: "close", LastMessage: "2024-01-01",
			Domains: []string{"fundraising"}, Positives: []string{"sharp"}},
		{ID: "conn.bob", Name: "Bob Cole", RelationshipStrength: "cold"},
	}}
	interactions := &fakeInteractionStore{records: []*secondary.InteractionRecord{
		{ID: 1, With: "Jane Doe", Medium: "coffee", Date: "2025-06-01"},
	}}
	goals := goal.Goals{Stated: goal.Stated{Primary: "grow fundraising network"}}

	svc := NewReportService(connStore, interactions, &fakeGoalsStore{goals: goals})

	report, err := svc.FullReport(context.Background(), reportNow)
	if err != nil {
		t.Fatalf("FullReport failed: %v", err)
	}

	if !report.GeneratedAt.Equal(reportNow) {
		t.Errorf("GeneratedAt = %v", report.GeneratedAt)
	}
	if report.Summary.TotalConnections != 2 {
		t.Errorf("Summary = %+v", report.Summary)
	}
	if report.EnrichmentPct != 50.0 {
		t.Errorf("EnrichmentPct = %v, want 50.0", report.EnrichmentPct)
	}
	if len(report.Stale) != 1 {
		t.Errorf("Stale = %+v", report.Stale)
	}
	if len(report.Gaps) == 0 {
		t.Error("expected default-domain gap insights")
	}
	if len(report.Communication) == 0 {
		t.Error("expected communication patterns from the interaction log")
	}
	if len(report.NetworkGoalFit) != 1 || report.NetworkGoalFit[0].Kind != "aligned" {
		t.Errorf("NetworkGoalFit = %+v", report.NetworkGoalFit)
	}
	if len(report.Actions) == 0 {
		t.Error("expected action items")
	}
}

func TestReportService_StaleUsesConfiguredThreshold(t *testing.T) {
	connStore := &fakeConnStore{records: []*secondary.ConnectionRecord{
		// 45 days old: stale only under a short threshold.
		{ID: "conn.jane", Name: "Jane Doe", RelationshipStrength: "warm", LastMessage: "2025-05-01"},
	}}
	svc := NewReportService(connStore, &fakeInteractionStore{}, &fakeGoalsStore{})
	svc.StaleThresholdDays = 30

	insights, err := svc.Stale(context.Background(), reportNow, 0)
	if err != nil {
		t.Fatalf("Stale failed: %v", err)
	}
	if len(insights) != 1 {
		t.Errorf("configured 30-day threshold should flag the connection, got %+v", insights)
	}

	insights, err = svc.Stale(context.Background(), reportNow, 180)
	if err != nil {
		t.Fatalf("Stale failed: %v", err)
	}
	if len(insights) != 0 {
		t.Errorf("explicit 180-day threshold should override, got %+v", insights)
	}
}

func TestReportService_GapsDefaultToConfiguredDomains(t *testing.T) {
	svc := NewReportService(&fakeConnStore{records: []*secondary.ConnectionRecord{
		{ID: "conn.one", Name: "One"},
	}}, &fakeInteractionStore{}, &fakeGoalsStore{})
	svc.TargetDomains = []string{"robotics"}

	insights, err := svc.Gaps(context.Background(), nil)
	if err != nil {
		t.Fatalf("Gaps failed: %v", err)
	}
	if len(insights) != 1 || !strings.Contains(insights[0].Message, "robotics") {
		t.Errorf("Gaps = %+v", insights)
	}
}

func TestReportService_Reconnect(t *testing.T) {
	connStore := &fakeConnStore{records: []*secondary.ConnectionRecord{
		{ID: "conn.helper", Name: "Helper", RelationshipStrength: "warm", Domains: []string{"machine learning"}},
	}}
	svc := NewReportService(connStore, &fakeInteractionStore{}, &fakeGoalsStore{})

	insights, err := svc.Reconnect(context.Background(), []string{"machine-learning", "pottery"})
	if err != nil {
		t.Fatalf("Reconnect failed: %v", err)
	}
	if len(insights) != 1 || insights[0].Kind != "reconnection" {
		t.Errorf("insights = %+v", insights)
	}
}

func TestSortActionsByPriority(t *testing.T) {
	actions := []primary.Action{
		{Priority: network.PriorityLow, Action: "l1"},
		{Priority: network.PriorityHigh, Action: "h1"},
		{Priority: network.PriorityMedium, Action: "m1"},
		{Priority: network.PriorityHigh, Action: "h2"},
	}
	sortActionsByPriority(actions)

	var order []string
	for _, a := range actions {
		order = append(order, a.Action)
	}
	want := "h1 h2 m1 l1"
	if got := strings.Join(order, " "); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestQuotedSuffix(t *testing.T) {
	if got := quotedSuffix(`Network gap: No connections in "design"`); got != "design" {
		t.Errorf("quotedSuffix = %q", got)
	}
	if got := quotedSuffix("no quotes here"); got != "no quotes here" {
		t.Errorf("unquoted message should pass through, got %q", got)
	}
}

func TestEnrichmentPct(t *testing.T) {
	s := network.Summary{TotalConnections: 3, WithPositives: 1, WithNegatives: 1}
	if got := enrichmentPct(s); got != 66.7 {
		t.Errorf("enrichmentPct = %v, want 66.7", got)
	}
	if got := enrichmentPct(network.Summary{}); got != 0 {
		t.Errorf("empty network pct = %v", got)
	}
}

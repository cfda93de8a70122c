package goal

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/example/brain/internal/core/network"
)

func TestStatedVsRevealed_Misalignments(t *testing.T) {
	goals := Goals{
		Delta: Delta{Misalignments: []Misalignment{
			{Gap: "Networking", Stated: "Meet more investors", Actual: "Declined 3 intros",
				PossibleReasons: []string{"fear of pitching", "time pressure"}},
			{Stated: "Write weekly", Actual: "Last post 4 months ago"},
		}},
	}

	insights := StatedVsRevealed(goals)
	if len(insights) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(insights))
	}

	first := insights[0]
	if first.Kind != "misaligned" || first.Description != "Networking" {
		t.Errorf("first insight = %+v", first)
	}
	if first.Suggestion != "fear of pitching, time pressure" {
		t.Errorf("Suggestion = %q", first.Suggestion)
	}

	if insights[1].Description != "Unspecified gap" {
		t.Errorf("missing gap label should fall back: %+v", insights[1])
	}
}

func TestStatedVsRevealed_Avoidance(t *testing.T) {
	goals := Goals{
		Revealed: Revealed{AvoidedActions: []string{"cold outreach", "asking for intros"}},
	}

	insights := StatedVsRevealed(goals)
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}
	in := insights[0]
	if in.Kind != "avoidance" {
		t.Errorf("Kind = %q", in.Kind)
	}
	if in.Actual != "cold outreach, asking for intros" {
		t.Errorf("Actual = %q", in.Actual)
	}
}

func TestStatedVsRevealed_EmptyGoalsAdvisory(t *testing.T) {
	insights := StatedVsRevealed(Goals{})
	if len(insights) != 1 || insights[0].Kind != "no_data" {
		t.Fatalf("expected single no_data insight, got %+v", insights)
	}
}

func TestStatedVsRevealed_StatedOnlyIsQuiet(t *testing.T) {
	// A goals file with stated goals but no deltas or avoidance has
	// nothing to surface, and is not "no data" either.
	goals := Goals{Stated: Stated{Primary: "Ship the product"}}
	if got := StatedVsRevealed(goals); len(got) != 0 {
		t.Errorf("expected no insights, got %+v", got)
	}
}

func TestNetworkGoalFit_NoGoals(t *testing.T) {
	insights := NetworkGoalFit(Goals{}, &network.Snapshot{})
	if len(insights) != 1 || insights[0].Kind != "no_goals" {
		t.Fatalf("expected single no_goals insight, got %+v", insights)
	}
}

func TestNetworkGoalFit_AlignedAndGap(t *testing.T) {
	goals := Goals{Stated: Stated{
		Primary:   "raise seed round",
		Secondary: []string{"improve design skills"},
	}}
	snap := &network.Snapshot{Connections: []network.Connection{
		{ID: "conn.vc", Name: "VC Friend", Domains: []string{"fundraising"}},
		{ID: "conn.angel", Name: "Angel", Domains: []string{"seed investing"}},
		{ID: "conn.eng", Name: "Engineer", Domains: []string{"backend"}},
	}}

	insights := NetworkGoalFit(goals, snap)
	if len(insights) != 2 {
		t.Fatalf("expected one insight per goal, got %d: %+v", len(insights), insights)
	}

	aligned := insights[0]
	if aligned.Kind != "aligned" {
		t.Errorf("Kind = %q", aligned.Kind)
	}
	// "seed" matches the "seed investing" tag; "raise"/"round" match nothing.
	if aligned.Actual != "1 relevant connections" {
		t.Errorf("Actual = %q", aligned.Actual)
	}
	if aligned.Suggestion != "Talk to: Angel" {
		t.Errorf("Suggestion = %q", aligned.Suggestion)
	}

	gap := insights[1]
	if gap.Kind != "gap" || gap.Stated != "improve design skills" {
		t.Errorf("gap insight = %+v", gap)
	}
	if gap.Actual != "No connections in relevant domains" {
		t.Errorf("Actual = %q", gap.Actual)
	}
}

func TestNetworkGoalFit_CanAskForMatches(t *testing.T) {
	goals := Goals{Stated: Stated{Primary: "hiring senior engineers"}}
	snap := &network.Snapshot{Connections: []network.Connection{
		{ID: "conn.recruiter", Name: "Recruiter", CanAskFor: []string{"hiring advice"}},
	}}

	insights := NetworkGoalFit(goals, snap)
	if len(insights) != 1 || insights[0].Kind != "aligned" {
		t.Fatalf("can_ask_for tags should count as coverage: %+v", insights)
	}
	// The matched tag is a skill, not a domain tag, so no connection is
	// named; the goal still reads as supported.
	if insights[0].Actual != "0 relevant connections" {
		t.Errorf("Actual = %q", insights[0].Actual)
	}
	if insights[0].Suggestion != "" {
		t.Errorf("Suggestion = %q", insights[0].Suggestion)
	}
}

func TestNetworkGoalFit_TruncatesLongGoals(t *testing.T) {
	long := strings.Repeat("expand into new markets ", 4)
	goals := Goals{Stated: Stated{Primary: long}}

	insights := NetworkGoalFit(goals, &network.Snapshot{})
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}
	wantDesc := "Network gap for goal: " + long[:50]
	if insights[0].Description != wantDesc {
		t.Errorf("Description = %q, want %q", insights[0].Description, wantDesc)
	}
	if insights[0].Stated != long {
		t.Error("Stated should carry the untruncated goal")
	}
}

func TestNetworkGoalFit_TruncateKeepsRuneBoundaries(t *testing.T) {
	// 49 single-byte runes, then a two-byte rune straddling the cut.
	long := "Find a warm intro to the new payments lead at Café Noir before the next fundraise"
	goals := Goals{Stated: Stated{Primary: long}}

	insights := NetworkGoalFit(goals, &network.Snapshot{})
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}
	wantDesc := "Network gap for goal: Find a warm intro to the new payments lead at Café"
	if insights[0].Description != wantDesc {
		t.Errorf("Description = %q, want %q", insights[0].Description, wantDesc)
	}
	if !utf8.ValidString(insights[0].Description) {
		t.Error("truncated description is not valid UTF-8")
	}
}

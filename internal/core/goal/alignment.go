// Package goal analyzes stated goals against revealed preferences and
// network fit. Goals are read-only input authored by hand; analysis
// never mutates them.
package goal

import (
	"fmt"
	"strings"

	"github.com/example/brain/internal/core/network"
)

// Stated holds the goals you claim to pursue.
type Stated struct {
	Primary   string   `yaml:"primary,omitempty"`
	Secondary []string `yaml:"secondary,omitempty"`
}

// Revealed holds behavior-derived signals, chiefly actions you keep
// avoiding despite calling them important.
type Revealed struct {
	AvoidedActions []string `yaml:"avoided_actions,omitempty"`
}

// Misalignment is an explicit stated-vs-actual gap record.
type Misalignment struct {
	Gap             string   `yaml:"gap,omitempty"`
	Stated          string   `yaml:"stated,omitempty"`
	Actual          string   `yaml:"actual,omitempty"`
	PossibleReasons []string `yaml:"possible_reasons,omitempty"`
}

// Delta collects the explicit misalignment records.
type Delta struct {
	Misalignments []Misalignment `yaml:"misalignments,omitempty"`
}

// Goals is the full goals document.
type Goals struct {
	Stated   Stated   `yaml:"stated,omitempty"`
	Revealed Revealed `yaml:"revealed,omitempty"`
	Delta    Delta    `yaml:"delta,omitempty"`
}

// IsEmpty reports whether nothing at all has been populated.
func (g Goals) IsEmpty() bool {
	return g.Stated.Primary == "" &&
		len(g.Stated.Secondary) == 0 &&
		len(g.Revealed.AvoidedActions) == 0 &&
		len(g.Delta.Misalignments) == 0
}

// statedGoals returns primary + secondary goals with empties dropped.
func (g Goals) statedGoals() []string {
	var all []string
	if g.Stated.Primary != "" {
		all = append(all, g.Stated.Primary)
	}
	for _, s := range g.Stated.Secondary {
		if s != "" {
			all = append(all, s)
		}
	}
	return all
}

// AlignmentInsight is a finding about goal alignment.
type AlignmentInsight struct {
	Kind        string // aligned, misaligned, gap, avoidance, no_data, no_goals
	Description string
	Stated      string
	Actual      string
	Suggestion  string
}

// StatedVsRevealed surfaces every explicit misalignment record, plus an
// avoidance insight when avoided actions are recorded. An entirely empty
// goals document yields a single advisory insight.
func StatedVsRevealed(goals Goals) []AlignmentInsight {
	var insights []AlignmentInsight

	for _, m := range goals.Delta.Misalignments {
		description := m.Gap
		if description == "" {
			description = "Unspecified gap"
		}
		insights = append(insights, AlignmentInsight{
			Kind:        "misaligned",
			Description: description,
			Stated:      m.Stated,
			Actual:      m.Actual,
			Suggestion:  strings.Join(m.PossibleReasons, ", "),
		})
	}

	if len(goals.Revealed.AvoidedActions) > 0 {
		avoided := goals.Revealed.AvoidedActions
		if len(avoided) > 5 {
			avoided = avoided[:5]
		}
		insights = append(insights, AlignmentInsight{
			Kind:        "avoidance",
			Description: "Actions you keep avoiding despite saying they're important",
			Stated:      "(various)",
			Actual:      strings.Join(avoided, ", "),
			Suggestion:  "Consider why these are being avoided",
		})
	}

	if len(insights) == 0 && goals.IsEmpty() {
		insights = append(insights, AlignmentInsight{
			Kind:        "no_data",
			Description: "Goals not populated",
			Stated:      "Unknown",
			Actual:      "Unknown",
			Suggestion:  "Populate goals.yaml to enable alignment analysis",
		})
	}

	return insights
}

// NetworkGoalFit checks whether the network supports each stated goal.
// A network domain tag (or can_ask_for skill) "matches" a goal when ANY
// word of the goal is a substring of the tag. Deliberately loose and
// recall-biased: better to over-suggest people than to miss one.
func NetworkGoalFit(goals Goals, snap *network.Snapshot) []AlignmentInsight {
	allGoals := goals.statedGoals()
	if len(allGoals) == 0 {
		return []AlignmentInsight{{
			Kind:        "no_goals",
			Description: "No stated goals to analyze",
			Stated:      "None",
			Actual:      "N/A",
			Suggestion:  "Add goals to goals.yaml",
		}}
	}

	// Collect domain tags and askable skills across the network,
	// lowercased, first-seen order preserved for determinism.
	seen := make(map[string]bool)
	var networkDomains []string
	for _, conn := range snap.Connections {
		for _, domain := range conn.Domains {
			d := strings.ToLower(domain)
			if !seen[d] {
				seen[d] = true
				networkDomains = append(networkDomains, d)
			}
		}
		for _, skill := range conn.CanAskFor {
			s := strings.ToLower(skill)
			if !seen[s] {
				seen[s] = true
				networkDomains = append(networkDomains, s)
			}
		}
	}

	var insights []AlignmentInsight
	for _, g := range allGoals {
		words := strings.Fields(strings.ToLower(g))

		var matching []string
		for _, domain := range networkDomains {
			for _, w := range words {
				if strings.Contains(domain, w) {
					matching = append(matching, domain)
					break
				}
			}
		}

		if len(matching) == 0 {
			insights = append(insights, AlignmentInsight{
				Kind:        "gap",
				Description: "Network gap for goal: " + truncate(g, 50),
				Stated:      g,
				Actual:      "No connections in relevant domains",
				Suggestion:  "Build relationships in this area",
			})
			continue
		}

		var relevant []string
		for _, conn := range snap.Connections {
			if connHasAnyDomain(conn, matching) {
				relevant = append(relevant, conn.Name)
			}
		}

		suggestion := ""
		if len(relevant) > 0 {
			names := relevant
			if len(names) > 3 {
				names = names[:3]
			}
			suggestion = "Talk to: " + strings.Join(names, ", ")
		}
		insights = append(insights, AlignmentInsight{
			Kind:        "aligned",
			Description: "Network supports goal: " + truncate(g, 50),
			Stated:      g,
			Actual:      fmt.Sprintf("%d relevant connections", len(relevant)),
			Suggestion:  suggestion,
		})
	}

	return insights
}

func connHasAnyDomain(conn network.Connection, domainsLower []string) bool {
	for _, d := range conn.Domains {
		if containsString(domainsLower, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

package network

import (
	"fmt"
	"sort"
	"time"
)

// DefaultTrajectoryLookbackDays bounds what counts as "recent" when
// judging whether a relationship is warming or cooling.
const DefaultTrajectoryLookbackDays = 90

// CommunicationPatterns analyzes who you talk to and how: most frequent
// contacts (recorded interactions plus imported message counts),
// preferred mediums, and connections you have never talked to.
func CommunicationPatterns(snap *Snapshot, interactions []Interaction) []Pattern {
	var patterns []Pattern

	contactCounts := make(map[string]int)
	var contactOrder []string
	mediumCounts := make(map[string]int)
	var mediumOrder []string

	bump := func(m map[string]int, order *[]string, key string, n int) {
		if _, seen := m[key]; !seen {
			*order = append(*order, key)
		}
		m[key] += n
	}

	for _, it := range interactions {
		if it.With != "" {
			bump(contactCounts, &contactOrder, it.With, 1)
		}
		medium := it.Medium
		if medium == "" {
			medium = "unknown"
		}
		bump(mediumCounts, &mediumOrder, medium, 1)
	}

	for _, conn := range snap.Connections {
		if conn.MessageCount > 0 {
			bump(contactCounts, &contactOrder, conn.Name, conn.MessageCount)
		}
	}

	if len(contactCounts) > 0 {
		sort.SliceStable(contactOrder, func(i, j int) bool {
			return contactCounts[contactOrder[i]] > contactCounts[contactOrder[j]]
		})
		var evidence []string
		for i, name := range contactOrder {
			if i >= 5 {
				break
			}
			evidence = append(evidence, fmt.Sprintf("%s: %d interactions", name, contactCounts[name]))
		}
		patterns = append(patterns, Pattern{
			Kind:        "high_frequency",
			Description: "Most frequent contacts",
			Evidence:    evidence,
		})
	}

	if len(mediumCounts) > 0 {
		sort.SliceStable(mediumOrder, func(i, j int) bool {
			return mediumCounts[mediumOrder[i]] > mediumCounts[mediumOrder[j]]
		})
		var evidence []string
		for _, medium := range mediumOrder {
			evidence = append(evidence, fmt.Sprintf("%s: %d", medium, mediumCounts[medium]))
		}
		patterns = append(patterns, Pattern{
			Kind:        "medium_preference",
			Description: "Preferred communication mediums",
			Evidence:    evidence,
		})
	}

	var silent []string
	for _, conn := range snap.Connections {
		if conn.MessageCount == 0 {
			silent = append(silent, conn.Name)
		}
	}
	if len(silent) > 0 {
		evidence := firstN(silent, 10)
		if len(silent) > 10 {
			evidence = append(evidence, "...and more")
		}
		patterns = append(patterns, Pattern{
			Kind:        "silent_connections",
			Description: fmt.Sprintf("%d connections with no recorded interaction", len(silent)),
			Evidence:    evidence,
			Suggestion:  "Consider which of these might be worth reaching out to",
		})
	}

	return patterns
}

// RelationshipTrajectory reports which relationships are warming or
// cooling. Cooling: warm/close with no message inside the lookback.
// Warming: cold but with at least two messages, the latest inside the
// lookback.
func RelationshipTrajectory(snap *Snapshot, now time.Time, lookbackDays int) []Pattern {
	if lookbackDays <= 0 {
		lookbackDays = DefaultTrajectoryLookbackDays
	}
	cutoff := now.AddDate(0, 0, -lookbackDays).Format(DateLayout)

	var patterns []Pattern
	var cooling, warming []string

	for _, conn := range snap.Connections {
		if conn.LastMessage == "" {
			continue
		}
		strength := conn.RelationshipStrength

		if (strength == StrengthWarm || strength == StrengthClose) && conn.LastMessage < cutoff {
			cooling = append(cooling, fmt.Sprintf("%s (%s) - last contact %s", conn.Name, strength, conn.LastMessage))
		}
		if strength == StrengthCold && conn.LastMessage >= cutoff && conn.MessageCount >= 2 {
			warming = append(warming, fmt.Sprintf("%s - %d messages, last %s", conn.Name, conn.MessageCount, conn.LastMessage))
		}
	}

	if len(cooling) > 0 {
		patterns = append(patterns, Pattern{
			Kind:        "cooling",
			Description: fmt.Sprintf("%d relationships cooling off", len(cooling)),
			Evidence:    firstN(cooling, 5),
			Suggestion:  "Consider re-engaging with these contacts",
		})
	}
	if len(warming) > 0 {
		patterns = append(patterns, Pattern{
			Kind:        "warming",
			Description: fmt.Sprintf("%d relationships warming up", len(warming)),
			Evidence:    firstN(warming, 5),
			Suggestion:  "Continue building these relationships",
		})
	}

	return patterns
}

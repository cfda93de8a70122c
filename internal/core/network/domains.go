package network

import (
	"fmt"
	"strings"
)

// DefaultTargetDomains are the areas checked for coverage when the
// caller does not supply a list.
var DefaultTargetDomains = []string{
	"distribution",
	"sales",
	"marketing",
	"fundraising",
	"technical",
	"product",
	"design",
	"operations",
}

// DomainMatches finds connections who know about a topic. The topic is
// matched case-insensitively as a substring across domains, position,
// company, notes, and can_ask_for. Connections below minStrength are
// excluded. The result is a single aggregated insight (or none).
func DomainMatches(snap *Snapshot, topic string, minStrength Strength) []Insight {
	topicLower := strings.ToLower(topic)
	minRank := minStrength.Rank()

	var matches []Connection
	for _, conn := range snap.Connections {
		if conn.RelationshipStrength.Rank() < minRank {
			continue
		}
		searchable := []string{
			strings.Join(conn.Domains, " "),
			conn.Position,
			conn.Company,
			conn.Notes,
			strings.Join(conn.CanAskFor, " "),
		}
		for _, field := range searchable {
			if strings.Contains(strings.ToLower(field), topicLower) {
				matches = append(matches, conn)
				break
			}
		}
	}

	if len(matches) == 0 {
		return nil
	}

	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return []Insight{{
		Kind:        "domain_match",
		Priority:    PriorityHigh,
		Message:     fmt.Sprintf("Found %d connections related to %q", len(matches), topic),
		Connections: ids,
		Action:      "People to talk to: " + joinNames(matches, 5),
	}}
}

// ReconnectionSuggestions cross-references active topics against the
// network: for each topic with warm-or-better domain matches, it emits a
// reconnection insight carrying the matched people.
func ReconnectionSuggestions(snap *Snapshot, topics []string) []Insight {
	var insights []Insight
	for _, topic := range topics {
		matches := DomainMatches(snap, strings.ReplaceAll(topic, "-", " "), StrengthWarm)
		if len(matches) == 0 {
			continue
		}
		insights = append(insights, Insight{
			Kind:        "reconnection",
			Priority:    PriorityMedium,
			Message:     fmt.Sprintf("Topic %q - you know people who might help", topic),
			Connections: matches[0].Connections,
			Action:      matches[0].Action,
		})
	}
	return insights
}

// NetworkGaps identifies target domains where coverage is missing or
// thin. Zero tagged connections is a high-priority gap, one or two is
// medium-priority thin coverage, three or more is healthy.
func NetworkGaps(snap *Snapshot, targetDomains []string) []Insight {
	if targetDomains == nil {
		targetDomains = DefaultTargetDomains
	}

	domainCounts := make(map[string]int)
	for _, conn := range snap.Connections {
		for _, domain := range conn.Domains {
			domainCounts[strings.ToLower(domain)]++
		}
	}

	var insights []Insight
	for _, domain := range targetDomains {
		count := domainCounts[strings.ToLower(domain)]
		switch {
		case count == 0:
			insights = append(insights, Insight{
				Kind:     "gap",
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("Network gap: No connections in %q", domain),
				Action:   fmt.Sprintf("Consider building relationships in %s", domain),
			})
		case count < 3:
			insights = append(insights, Insight{
				Kind:     "gap",
				Priority: PriorityMedium,
				Message:  fmt.Sprintf("Thin coverage: Only %d connections in %q", count, domain),
				Action:   fmt.Sprintf("Could strengthen %s network", domain),
			})
		}
	}
	return insights
}

// introHeuristics maps a target-domain category to position keywords
// that suggest access to that world. The table is intentionally small
// and fixed; extend it here rather than special-casing callers.
var introHeuristics = []struct {
	targets  []string
	keywords []string
}{
	{
		targets:  []string{"vc", "fundraising", "investors"},
		keywords: []string{"partner", "principal", "investor", "founder"},
	},
	{
		targets:  []string{"sales", "distribution"},
		keywords: []string{"sales", "growth", "marketing", "bd"},
	},
}

// IntroPaths finds connections who might introduce you to people in a
// target domain: anyone whose explicit introduces_to tags match, plus
// anyone whose position suggests access per the heuristic table.
func IntroPaths(snap *Snapshot, targetDomain string) []Insight {
	targetLower := strings.ToLower(targetDomain)

	var paths []Connection
	for _, conn := range snap.Connections {
		if introTagMatches(conn, targetLower) {
			paths = append(paths, conn)
			continue
		}
		position := strings.ToLower(conn.Position)
		for _, h := range introHeuristics {
			if !containsString(h.targets, targetLower) {
				continue
			}
			for _, kw := range h.keywords {
				if strings.Contains(position, kw) {
					paths = append(paths, conn)
					break
				}
			}
			break
		}
	}

	if len(paths) == 0 {
		return nil
	}

	ids := make([]string, len(paths))
	for i, p := range paths {
		ids[i] = p.ID
	}
	return []Insight{{
		Kind:        "intro_path",
		Priority:    PriorityMedium,
		Message:     fmt.Sprintf("Potential intros to %q: %d connections might help", targetDomain, len(paths)),
		Connections: ids,
		Action:      "Ask: " + joinNames(paths, 3),
	}}
}

func introTagMatches(conn Connection, targetLower string) bool {
	for _, intro := range conn.IntroducesTo {
		if strings.Contains(strings.ToLower(intro), targetLower) {
			return true
		}
	}
	return false
}

// HighTrustConnections surfaces the trusted circle, optionally narrowed
// to a domain (substring match on domain tags).
func HighTrustConnections(snap *Snapshot, forDomain string) []Insight {
	domainLower := strings.ToLower(forDomain)

	var trusted []Connection
	for _, conn := range snap.Connections {
		if conn.TrustLevel != TrustHigh {
			continue
		}
		if forDomain != "" && !anyDomainContains(conn.Domains, domainLower) {
			continue
		}
		trusted = append(trusted, conn)
	}

	if len(trusted) == 0 {
		return nil
	}

	domainMsg := ""
	if forDomain != "" {
		domainMsg = fmt.Sprintf(" in %q", forDomain)
	}
	ids := make([]string, len(trusted))
	for i, t := range trusted {
		ids[i] = t.ID
	}
	return []Insight{{
		Kind:        "high_trust",
		Priority:    PriorityHigh,
		Message:     fmt.Sprintf("High-trust connections%s: %d people", domainMsg, len(trusted)),
		Connections: ids,
		Action:      "Your trusted circle: " + joinNames(trusted, 5),
	}}
}

// EnergizingConnections reports who boosts you and who drains you.
func EnergizingConnections(snap *Snapshot) []Insight {
	var energizing, draining []Connection
	for _, conn := range snap.Connections {
		switch conn.Energy {
		case EnergyEnergizing:
			energizing = append(energizing, conn)
		case EnergyDraining:
			draining = append(draining, conn)
		}
	}

	var insights []Insight
	if len(energizing) > 0 {
		ids := make([]string, len(energizing))
		for i, e := range energizing {
			ids[i] = e.ID
		}
		insights = append(insights, Insight{
			Kind:        "energizing",
			Priority:    PriorityMedium,
			Message:     fmt.Sprintf("Energizing connections: %d people who boost you", len(energizing)),
			Connections: ids,
			Action:      "Reach out when you need energy: " + joinNames(energizing, 5),
		})
	}
	if len(draining) > 0 {
		ids := make([]string, len(draining))
		for i, d := range draining {
			ids[i] = d.ID
		}
		insights = append(insights, Insight{
			Kind:        "draining",
			Priority:    PriorityLow,
			Message:     fmt.Sprintf("Draining connections: %d people (be mindful of scheduling)", len(draining)),
			Connections: ids,
			Action:      "Consider limiting exposure or having shorter meetings",
		})
	}
	return insights
}

// WatchOuts surfaces connections with recorded negatives. When
// forConnections is non-empty only those IDs are checked, which is what
// a pre-meeting check wants.
func WatchOuts(snap *Snapshot, forConnections []string) []Insight {
	var insights []Insight
	for _, conn := range snap.Connections {
		if len(forConnections) > 0 && !containsString(forConnections, conn.ID) {
			continue
		}
		if len(conn.Negatives) == 0 {
			continue
		}
		insights = append(insights, Insight{
			Kind:        "watch_out",
			Priority:    PriorityMedium,
			Message:     fmt.Sprintf("Watch-out for %s: %d pattern(s) noted", conn.Name, len(conn.Negatives)),
			Connections: []string{conn.ID},
			Action:      "Remember: " + strings.Join(firstN(conn.Negatives, 2), "; "),
		})
	}
	return insights
}

func anyDomainContains(domains []string, substrLower string) bool {
	for _, d := range domains {
		if strings.Contains(strings.ToLower(d), substrLower) {
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

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func joinNames(conns []Connection, limit int) string {
	names := make([]string, 0, limit)
	for i, c := range conns {
		if i >= limit {
			break
		}
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

package network

import (
	"fmt"
	"sort"
)

// DomainClusters analyzes where the network is concentrated and which
// domains hold close relationships. With no domain tags at all it
// returns a single advisory pattern instead of nothing.
func DomainClusters(snap *Snapshot) []Pattern {
	domainCounts := make(map[string]int)
	closeCounts := make(map[string]int)
	var order []string

	for _, conn := range snap.Connections {
		for _, domain := range conn.Domains {
			if _, seen := domainCounts[domain]; !seen {
				order = append(order, domain)
			}
			domainCounts[domain]++
			if conn.RelationshipStrength == StrengthClose {
				closeCounts[domain]++
			}
		}
	}

	if len(domainCounts) == 0 {
		return []Pattern{{
			Kind:        "no_domains",
			Description: "No domain tags on connections",
			Suggestion:  "Add domains to connections for better intelligence",
		}}
	}

	var patterns []Pattern

	sorted := append([]string(nil), order...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return domainCounts[sorted[i]] > domainCounts[sorted[j]]
	})
	var evidence []string
	for i, domain := range sorted {
		if i >= 5 {
			break
		}
		evidence = append(evidence, fmt.Sprintf("%s: %d", domain, domainCounts[domain]))
	}
	patterns = append(patterns, Pattern{
		Kind:        "domain_concentration",
		Description: "Top domains in network",
		Evidence:    evidence,
	})

	var strong []string
	for _, domain := range order {
		if closeCounts[domain] > 0 {
			strong = append(strong, domain)
		}
	}
	if len(strong) > 0 {
		sort.SliceStable(strong, func(i, j int) bool {
			return closeCounts[strong[i]] > closeCounts[strong[j]]
		})
		var strongEvidence []string
		for i, domain := range strong {
			if i >= 5 {
				break
			}
			strongEvidence = append(strongEvidence, fmt.Sprintf("%s: %d close", domain, closeCounts[domain]))
		}
		patterns = append(patterns, Pattern{
			Kind:        "strong_domain_relationships",
			Description: "Domains where you have close relationships",
			Evidence:    strongEvidence,
		})
	}

	return patterns
}

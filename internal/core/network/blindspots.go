package network

import (
	"fmt"
	"time"
)

// echoChamberShare is the fraction of all domain tags a single domain
// must exceed to count as a potential echo chamber.
const echoChamberShare = 0.4

// BlindSpotDetection finds systematic gaps in how connections are
// assessed: high trust without documented reasons, long relationships
// never assessed at all, and domain concentration that suggests an echo
// chamber.
func BlindSpotDetection(snap *Snapshot, now time.Time) []Pattern {
	var patterns []Pattern

	var undocumented []string
	for _, conn := range snap.Connections {
		if conn.TrustLevel == TrustHigh && len(conn.Positives) == 0 {
			undocumented = append(undocumented, conn.Name)
		}
	}
	if len(undocumented) > 0 {
		patterns = append(patterns, Pattern{
			Kind:        "undocumented_trust",
			Description: fmt.Sprintf("%d high-trust connections without documented reasons", len(undocumented)),
			Evidence:    firstN(undocumented, 5),
			Suggestion:  "Why do you trust them? Making it explicit helps validate",
		})
	}

	oneYearAgo := now.AddDate(0, 0, -365).Format(DateLayout)
	var unassessed []string
	for _, conn := range snap.Connections {
		if conn.ConnectedDate == "" || conn.ConnectedDate >= oneYearAgo {
			continue
		}
		if conn.TrustLevel == "" && len(conn.Positives) == 0 && len(conn.Negatives) == 0 {
			unassessed = append(unassessed, conn.Name)
		}
	}
	if len(unassessed) > 0 {
		evidence := firstN(unassessed, 5)
		if len(unassessed) > 5 {
			evidence = append(evidence, "...and more")
		}
		patterns = append(patterns, Pattern{
			Kind:        "old_unassessed",
			Description: fmt.Sprintf("%d long-term connections without assessment", len(unassessed)),
			Evidence:    evidence,
			Suggestion:  "Do you actually know these people? Consider assessing or archiving",
		})
	}

	domainCounts := make(map[string]int)
	var order []string
	total := 0
	for _, conn := range snap.Connections {
		for _, domain := range conn.Domains {
			if _, seen := domainCounts[domain]; !seen {
				order = append(order, domain)
			}
			domainCounts[domain]++
			total++
		}
	}
	if total > 0 {
		var evidence []string
		for _, domain := range order {
			count := domainCounts[domain]
			share := float64(count) / float64(total)
			if share > echoChamberShare {
				evidence = append(evidence, fmt.Sprintf("%s: %d/%d (%d%%)", domain, count, total, roundPct(share)))
			}
		}
		if len(evidence) > 0 {
			patterns = append(patterns, Pattern{
				Kind:        "potential_echo_chamber",
				Description: "Your network may be concentrated in few domains",
				Evidence:    evidence,
				Suggestion:  "Diverse perspectives come from diverse networks",
			})
		}
	}

	return patterns
}

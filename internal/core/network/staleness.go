package network

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the canonical on-disk date format. Comparisons between
// dates in this layout are safe as plain string comparisons.
const DateLayout = "2006-01-02"

// DefaultStaleThresholdDays is how long a warm/close relationship can go
// without contact before it counts as stale.
const DefaultStaleThresholdDays = 180

// StaleRelationships finds warm/close relationships with no contact in
// thresholdDays. Close relationships surface as high priority, warm as
// medium, with high-priority insights first (stable within a tier).
func StaleRelationships(snap *Snapshot, now time.Time, thresholdDays int) []Insight {
	if thresholdDays <= 0 {
		thresholdDays = DefaultStaleThresholdDays
	}
	cutoff := now.AddDate(0, 0, -thresholdDays).Format(DateLayout)

	var insights []Insight
	for _, conn := range snap.Connections {
		if conn.RelationshipStrength != StrengthWarm && conn.RelationshipStrength != StrengthClose {
			continue
		}
		lastTouch := conn.LastTouch()
		if lastTouch == "" || lastTouch >= cutoff {
			continue
		}

		priority := PriorityMedium
		if conn.RelationshipStrength == StrengthClose {
			priority = PriorityHigh
		}

		company := conn.Company
		if company == "" {
			company = "Unknown"
		}
		notes := conn.Notes
		if notes == "" {
			notes = "N/A"
		}

		message := fmt.Sprintf("%s (%s) - %s relationship, no contact in %s",
			conn.Name, company, conn.RelationshipStrength, sinceDescription(lastTouch, now))

		insights = append(insights, Insight{
			Kind:        "stale",
			Priority:    priority,
			Message:     message,
			Connections: []string{conn.ID},
			Action:      fmt.Sprintf("Consider reaching out. Last topic: %s", notes),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority == PriorityHigh && insights[j].Priority != PriorityHigh
	})
	return insights
}

// sinceDescription renders how long ago a date string was. Dates that
// fail to parse (the best-effort import passed them through raw) are
// reported verbatim instead of as a day count.
func sinceDescription(date string, now time.Time) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return fmt.Sprintf("a while (last: %s)", date)
	}
	days := int(now.Sub(t).Hours() / 24)
	return fmt.Sprintf("%d days", days)
}

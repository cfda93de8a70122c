package network

import "fmt"

// AssessmentPatterns analyzes how you assess people: whether your notes
// skew positive or negative, and which traits recur in each column.
func AssessmentPatterns(snap *Snapshot) []Pattern {
	var patterns []Pattern

	var allPositives, allNegatives []string
	onlyPositive, onlyNegative, balanced := 0, 0, 0

	for _, conn := range snap.Connections {
		allPositives = append(allPositives, conn.Positives...)
		allNegatives = append(allNegatives, conn.Negatives...)

		switch {
		case len(conn.Positives) > 0 && len(conn.Negatives) == 0:
			onlyPositive++
		case len(conn.Negatives) > 0 && len(conn.Positives) == 0:
			onlyNegative++
		case len(conn.Positives) > 0 && len(conn.Negatives) > 0:
			balanced++
		}
	}

	if onlyPositive+onlyNegative+balanced > 0 {
		balanceEvidence := []string{fmt.Sprintf("%d only positive, %d only negative, %d balanced",
			onlyPositive, onlyNegative, balanced)}
		if onlyPositive > balanced*2 {
			patterns = append(patterns, Pattern{
				Kind:        "overly_positive",
				Description: "You tend to only note positives",
				Evidence:    balanceEvidence,
				Suggestion:  "Consider: what are you not seeing about people?",
			})
		} else if onlyNegative > balanced*2 {
			patterns = append(patterns, Pattern{
				Kind:        "overly_negative",
				Description: "You tend to only note negatives",
				Evidence:    balanceEvidence,
				Suggestion:  "Consider: what strengths are you overlooking?",
			})
		}
	}

	if len(allPositives) > 0 {
		top := topRecurring(mineWords(allPositives), 10)
		if len(top) > 0 {
			patterns = append(patterns, Pattern{
				Kind:        "valued_traits",
				Description: "Traits you frequently value",
				Evidence:    formatWordCounts(top, 5),
				Suggestion:  "These reveal what you prioritize in people",
			})
		}
	}

	if len(allNegatives) > 0 {
		top := topRecurring(mineWords(allNegatives), 10)
		if len(top) > 0 {
			patterns = append(patterns, Pattern{
				Kind:        "watched_traits",
				Description: "Traits you frequently watch for",
				Evidence:    formatWordCounts(top, 5),
				Suggestion:  "These reveal your dealbreakers or sensitivities",
			})
		}
	}

	return patterns
}

package network

import (
	"fmt"
	"sort"
	"strings"
)

// minMinedWordLen filters short filler words out of trait mining.
const minMinedWordLen = 4

// wordCount is a mined word with its frequency.
type wordCount struct {
	Word  string
	Count int
}

// mineWords tokenizes free-text entries into lowercase words of at least
// minMinedWordLen characters and counts them. Ordering is stable: counts
// sort descending, ties keep first-encountered order, so repeated runs
// over the same snapshot produce identical output.
func mineWords(entries []string) []wordCount {
	counts := make(map[string]int)
	var order []string

	for _, entry := range entries {
		for _, word := range strings.Fields(strings.ToLower(entry)) {
			if len(word) < minMinedWordLen {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	result := make([]wordCount, len(order))
	for i, w := range order {
		result[i] = wordCount{Word: w, Count: counts[w]}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// topRecurring keeps the top n mined words that occur at least twice.
func topRecurring(words []wordCount, n int) []wordCount {
	var out []wordCount
	for _, wc := range words {
		if len(out) >= n {
			break
		}
		if wc.Count >= 2 {
			out = append(out, wc)
		}
	}
	return out
}

func formatWordCounts(words []wordCount, limit int) []string {
	var out []string
	for i, wc := range words {
		if i >= limit {
			break
		}
		out = append(out, fmt.Sprintf("%s: %dx", wc.Word, wc.Count))
	}
	return out
}

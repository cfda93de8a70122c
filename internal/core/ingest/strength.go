package ingest

import "github.com/example/brain/internal/core/network"

// Message-count thresholds for relationship strength, applied at import
// time only. Manual edits after import are never recomputed.
const (
	closeThreshold = 10
	warmThreshold  = 3
)

// StrengthForMessageCount maps aggregate message volume to a strength
// tier: >=10 close, >=3 warm, else cold.
func StrengthForMessageCount(count int) network.Strength {
	switch {
	case count >= closeThreshold:
		return network.StrengthClose
	case count >= warmThreshold:
		return network.StrengthWarm
	default:
		return network.StrengthCold
	}
}

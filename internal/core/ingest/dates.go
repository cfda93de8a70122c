package ingest

import (
	"strings"
	"time"

	"github.com/example/brain/internal/core/network"
)

// dateFormats is the ordered list of accepted input date formats; the
// first one that parses wins.
var dateFormats = []string{
	"02 Jan 2006", // 15 Jan 2023
	"Jan 2, 2006", // Jan 15, 2023
	"2006-01-02",  // 2023-01-15
	"01/02/2006",  // 01/15/2023
	"02/01/2006",  // 15/01/2023
}

// ParseDate normalizes a date string to YYYY-MM-DD. Unparseable strings
// pass through unchanged rather than erroring: downstream comparisons on
// such values silently degrade to string ordering, which is the
// documented best-effort policy.
func ParseDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(network.DateLayout)
		}
	}
	return s
}

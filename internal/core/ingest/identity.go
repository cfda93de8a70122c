// Package ingest contains the pure logic of the import-merge engine:
// identifier derivation, best-effort date parsing, relationship-strength
// thresholds, and the field-level merge policy that keeps manual
// enrichment alive across re-imports.
package ingest

import (
	"fmt"
	"strings"
)

// IDPrefix namespaces connection identifiers.
const IDPrefix = "conn."

// cleanName lowercases and strips everything but ASCII letters/digits.
func cleanName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MakeID derives the base connection identifier from a name.
func MakeID(firstName, lastName string) string {
	return IDPrefix + cleanName(firstName) + "-" + cleanName(lastName)
}

// IDAllocator hands out unique identifiers within one import batch.
// Duplicate names get a numeric suffix (-2, -3, ...) in encounter order.
// Which duplicate gets the bare id therefore depends on row order; the
// import reader preserves file order, so identical exports always
// allocate identically. Reordered exports are the known nondeterminism.
type IDAllocator struct {
	seen map[string]bool
}

// NewIDAllocator creates an empty allocator for one batch.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{seen: make(map[string]bool)}
}

// Allocate returns a unique id for the given name within this batch.
func (a *IDAllocator) Allocate(firstName, lastName string) string {
	base := MakeID(firstName, lastName)
	id := base
	for counter := 2; a.seen[id]; counter++ {
		id = fmt.Sprintf("%s-%d", base, counter)
	}
	a.seen[id] = true
	return id
}

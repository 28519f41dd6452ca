package ident

import (
	"fmt"

	"github.com/mmr-tortoise/rfcs/internal/model"
)

// minimumWidth is the zero-padding floor for formatted identifiers.
// "3" renders as "003"; values past 999 widen naturally ("1000").
const minimumWidth = 3

// ClaimedSet merges identifier lists from any number of sources into a
// single set of claimed values. The set is built fresh for each
// allocation request and must never be cached across invocations — the
// file tree and branch list can both change between runs.
func ClaimedSet(sources ...[]model.Identifier) map[int]bool {
	claimed := make(map[int]bool)
	for _, ids := range sources {
		for _, id := range ids {
			claimed[id.Value] = true
		}
	}
	return claimed
}

// Allocate returns the smallest positive integer not present in the
// claimed set.
//
// It is a pure function of its input: deterministic, no side effects,
// and safe to call repeatedly against the same snapshot. It fills the
// lowest gap rather than appending after the maximum, so a legacy
// identifier far outside the normal range (say 9999) does not prevent
// allocating 4 when 4 is free. An empty set yields 1.
//
// The result is only a snapshot guarantee: between this call and the
// branch-create step another contributor may claim the same value. Git's
// atomic branch creation is the final arbiter of that race, not this
// function.
func Allocate(claimed map[int]bool) int {
	for n := 1; ; n++ {
		if !claimed[n] {
			return n
		}
	}
}

// FormatIdentifier renders an identifier value with leading zeros to the
// minimum width. No truncation ever occurs: 1000 formats as "1000".
func FormatIdentifier(n int) string {
	return fmt.Sprintf("%0*d", minimumWidth, n)
}

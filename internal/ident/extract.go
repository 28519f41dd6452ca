package ident

import (
	"regexp"
	"strconv"

	"github.com/mmr-tortoise/rfcs/internal/model"
)

// identifierPattern is the shared numeric-run grammar: a run of 3 or more
// consecutive ASCII decimal digits. FindString returns the leftmost
// maximal run, which is the one that counts when a name contains several
// disjoint runs ("011-caches-2024.md" claims 11, not 2024).
var identifierPattern = regexp.MustCompile(`[0-9]{3,}`)

// Extract applies the numeric-run grammar to a single name and returns
// the candidate identifier it claims, if any.
//
// The value is parsed with leading zeros stripped ("003" and "0003" both
// claim 3) while the original digit width is recorded on the Identifier
// for display. Extraction is purely syntactic: no filesystem or git state
// is consulted, which is what lets the document and branch scanners share
// this one function.
//
// Returns false if the name contains no 3+ digit run, or if the run is
// too long to represent as an int (a name like a 25-digit serial number
// is not a plausible RFC identifier).
func Extract(name string, source model.Source) (model.Identifier, bool) {
	run := identifierPattern.FindString(name)
	if run == "" {
		return model.Identifier{}, false
	}

	value, err := strconv.Atoi(run)
	if err != nil {
		// Only possible cause is integer overflow on an absurdly long run.
		return model.Identifier{}, false
	}

	return model.Identifier{
		Value:  value,
		Width:  len(run),
		Source: source,
	}, true
}

package main

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggestMessage builds the "unknown token" failure text for tok, appending
// a nearest-match suggestion drawn from known when one is close enough.
// This mirrors Starlark's spell.Nearest-driven suggestion on NameErr
// (see other_examples's starlark interpreter) -- cosmetic only, it never
// changes control flow or the closed ForgeError kind set.
func suggestMessage(tok string, known []string) string {
	if match := nearest(tok, known); match != "" {
		return fmt.Sprintf("%q (did you mean %q?)", tok, match)
	}
	return fmt.Sprintf("%q", tok)
}

// nearest returns the best fuzzy match for tok among known, or "" if no
// name in known contains all of tok's characters in order (case-folded).
func nearest(tok string, known []string) string {
	ranked := fuzzy.RankFindFold(tok, known)
	if len(ranked) == 0 {
		return ""
	}
	best := ranked[0]
	for _, r := range ranked[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}

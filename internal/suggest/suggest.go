// Package suggest computes nearest-name corrections for unknown field and
// argument names.
package suggest

import (
	"github.com/agnivade/levenshtein"
)

// DidYouMean returns a correction for input only when exactly one candidate
// lies within the edit-distance threshold; with zero or several close
// candidates there is no safe guess and it returns "". The threshold grows
// with the input length so long names tolerate more typos.
func DidYouMean(input string, candidates []string) string {
	threshold := len(input) / 3
	if threshold < 1 {
		threshold = 1
	}
	match := ""
	for _, c := range candidates {
		if c == input {
			continue
		}
		if levenshtein.ComputeDistance(input, c) <= threshold {
			if match != "" {
				return ""
			}
			match = c
		}
	}
	return match
}

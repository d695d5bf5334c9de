package picker

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to name, if any is close enough to be
// a plausible typo.
func Suggest(name string, candidates []string) (string, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return "", false
	}
	limit := max(2, len(target)/3)
	best := ""
	bestDist := limit + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(target, strings.ToLower(c))
		if d < bestDist || (d == bestDist && best != "" && c < best) {
			best = c
			bestDist = d
		}
	}
	if best == "" || bestDist > limit {
		return "", false
	}
	return best, true
}

package cdecl

import "github.com/xrash/smetrics"

// Suggest returns the candidate most similar to input for "did you mean"
// diagnostics, or "" when nothing is close enough to be worth offering.
func Suggest(input string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := smetrics.WagnerFischer(input, c, 1, 1, 2)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	// More than about a third of the word wrong is a guess, not a
	// suggestion.
	if best == "" || bestDist > (len(input)+2)/3+1 {
		return ""
	}
	return best
}

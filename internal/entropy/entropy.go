// Package entropy scores the character-level randomness of candidate
// secrets. It is used as a post-filter on matches of the generic
// high-entropy pattern; structural patterns skip it entirely.
package entropy

import (
	"math"
	"strings"
)

// MinLength is the shortest string that gets a meaningful score. Anything
// shorter returns 0.0 so that short structural tokens never qualify as
// high entropy.
const MinLength = 16

// Shannon returns the Shannon entropy of s in bits per character, computed
// over the case-folded character-frequency distribution.
func Shannon(s string) float64 {
	if len(s) < MinLength {
		return 0.0
	}
	folded := strings.ToLower(s)
	count := map[rune]int{}
	n := 0
	for _, r := range folded {
		count[r]++
		n++
	}
	h := 0.0
	total := float64(n)
	for _, c := range count {
		p := float64(c) / total
		h -= p * math.Log2(p)
	}
	return h
}

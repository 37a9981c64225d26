// ABOUTME: Search normalizer folds strings for accent- and case-insensitive matching
// ABOUTME: Uses Unicode compatibility decomposition and strips combining marks

package search

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical search form of s: compatibility-decomposed
// (NFKD), with combining marks removed, lower-cased. "Åland" and "ÅLAND" both
// become "aland".
//
// Normalize is pure and total; Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	if isASCII(s) {
		return strings.ToLower(s)
	}
	// transform.Chain keeps state, so each caller takes its own from the pool.
	// transform.String resets it before use.
	t := foldChains.Get().(transform.Transformer)
	folded, _, err := transform.String(t, s)
	foldChains.Put(t)
	if err != nil {
		// Only reachable on invalid UTF-8; fall back to case folding alone.
		folded = s
	}
	return strings.ToLower(folded)
}

var foldChains = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	},
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

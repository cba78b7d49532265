// Package fuzzy scores string similarity for entity resolution. Scores are
// normalized Levenshtein ratios in [0,100]; 100 means exact match.
package fuzzy

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// MaxNGram is the longest word window generated for resolution scans.
const MaxNGram = 6

// Ratio returns a similarity score in [0,100] between a and b based on
// Levenshtein edit distance over the longer string's length.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 100
	}
	dist := matchr.Levenshtein(a, b)
	if dist > maxLen {
		dist = maxLen
	}
	return 100 * (maxLen - dist) / maxLen
}

// BestMatch scans candidates and returns the one most similar to query with
// its score. Ties keep the first candidate encountered. An empty candidate
// list returns ("", 0).
func BestMatch(query string, candidates []string) (string, int) {
	best := ""
	bestScore := 0
	found := false
	for _, c := range candidates {
		score := Ratio(query, c)
		if !found || score > bestScore {
			best = c
			bestScore = score
			found = true
		}
	}
	if !found {
		return "", 0
	}
	return best, bestScore
}

// NGrams lowercases text, splits it on whitespace and returns every
// contiguous word window of length 1 up to maxN, ordered by start position
// then window length. Resolution scans rely on this ordering for stable
// first-wins tie breaking.
func NGrams(text string, maxN int) []string {
	words := strings.Fields(strings.ToLower(text))
	var grams []string
	for i := range words {
		for n := 1; n <= maxN && i+n <= len(words); n++ {
			grams = append(grams, strings.Join(words[i:i+n], " "))
		}
	}
	return grams
}

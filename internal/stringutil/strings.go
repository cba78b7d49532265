// Package stringutil provides common string manipulation utilities.
package stringutil

import (
	"strings"
	"unicode"
)

// IsNumeric checks if a string contains only digits.
// Returns false for empty strings.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Words splits s into lowercase word tokens. A word is a maximal run of
// Unicode letters or digits, so accented characters stay inside their word
// ("calouro não" yields ["calouro", "não"]).
func Words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ContainsWord reports whether s contains word as a whole token,
// case-insensitively. Substring hits inside larger words do not count:
// ContainsWord("mercadoria", "dia") returns false.
func ContainsWord(s, word string) bool {
	if word == "" {
		return false
	}
	want := strings.ToLower(word)
	for _, w := range Words(s) {
		if w == want {
			return true
		}
	}
	return false
}

// ContainsAnyWord reports whether s contains at least one of the given
// words as a whole token.
func ContainsAnyWord(s string, words ...string) bool {
	for _, w := range words {
		if ContainsWord(s, w) {
			return true
		}
	}
	return false
}

// ContainsPhrase reports whether the phrase's word tokens appear
// contiguously in s, compared token by token and case-insensitively.
// Single-word phrases behave like ContainsWord.
func ContainsPhrase(s, phrase string) bool {
	words := Words(s)
	want := Words(phrase)
	if len(want) == 0 || len(words) < len(want) {
		return false
	}
	for i := 0; i+len(want) <= len(words); i++ {
		matched := true
		for j, w := range want {
			if words[i+j] != w {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// ContainsAnyPhrase reports whether s contains at least one of the given
// phrases per ContainsPhrase.
func ContainsAnyPhrase(s string, phrases ...string) bool {
	for _, p := range phrases {
		if ContainsPhrase(s, p) {
			return true
		}
	}
	return false
}

// Package textnorm prepares free-form Portuguese utterances for fuzzy
// matching. Normalization strips punctuation, drops filler tokens and maps
// spelled-out small numbers to digits so that "cálculo um" and "cálculo 1"
// resolve to the same schedule row.
package textnorm

import (
	"regexp"
	"strings"
)

// Domain filler words removed before matching. These carry no signal for
// course or subject resolution ("qual o horário da disciplina X" should
// reduce to just "X" plus the course span).
var stopwords = map[string]struct{}{
	"horário":     {},
	"horario":     {},
	"aula":        {},
	"disciplina":  {},
	"matéria":     {},
	"turma":       {},
	"curso":       {},
	"professor":   {},
	"sala":        {},
	"localização": {},
	"local":       {},
	"qual":        {},
	"é":           {},
}

// Spelled-out numbers mapped to digits. "um" is listed for completeness but
// is always removed earlier by the short-token rule, matching upstream
// behavior that strips 1-2 letter ASCII tokens before number mapping.
var numberWords = map[string]string{
	"um":     "1",
	"dois":   "2",
	"tres":   "3",
	"quatro": "4",
	"cinco":  "5",
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonTextRe    = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	shortASCIIRe = regexp.MustCompile(`^[a-zA-Z]{1,2}$`)
)

// Normalize applies the full cleanup pipeline, in order: trim, collapse
// whitespace, strip non-letter non-digit characters, remove standalone
// 1-2 letter ASCII tokens, map "dois".."cinco" to digits, drop stopwords.
// Deterministic; empty input yields empty output.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = nonTextRe.ReplaceAllString(text, "")

	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if shortASCIIRe.MatchString(w) {
			continue
		}
		if digit, ok := numberWords[strings.ToLower(w)]; ok {
			w = digit
		}
		if _, ok := stopwords[strings.ToLower(w)]; ok {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

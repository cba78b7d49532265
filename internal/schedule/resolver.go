package schedule

import (
	"strings"

	"github.com/pudimbot/pudim-go/internal/fuzzy"
	"github.com/pudimbot/pudim-go/internal/storage"
)

// Both resolvers require a score strictly greater than 40; a score of
// exactly 40 is rejected.
const scoreThreshold = 40

// CourseMatch is the outcome of a course resolution scan. MatchedSpan is
// always the best-attempt n-gram, even when Found is false, so callers must
// check Found before trusting Code and FullName.
type CourseMatch struct {
	Found       bool
	Code        string
	FullName    string
	MatchedSpan string
	Score       int
}

// ResolveCourse scans every word n-gram of the normalized text (lengths 1
// through 6) against the combined pool of course full names and codes and
// keeps the single best-scoring pair across the whole scan. The winning
// candidate maps back to its course record when the score clears the
// acceptance threshold.
func (s *Store) ResolveCourse(normalized string) CourseMatch {
	bestCandidate := ""
	bestScore := 0
	bestSpan := ""

	for _, gram := range fuzzy.NGrams(normalized, fuzzy.MaxNGram) {
		candidate, score := fuzzy.BestMatch(gram, s.candidates)
		if score > bestScore {
			bestScore = score
			bestCandidate = candidate
			bestSpan = gram
		}
	}

	match := CourseMatch{MatchedSpan: bestSpan, Score: bestScore}
	if bestScore <= scoreThreshold {
		return match
	}

	lower := strings.ToLower(bestCandidate)
	for _, c := range s.courses {
		if lower == c.Code || lower == strings.ToLower(c.FullName) {
			match.Found = true
			match.Code = c.Code
			match.FullName = c.FullName
			return match
		}
	}
	return match
}

// ResolveSubject matches the remaining question text (course span already
// removed) against the course's subject list and returns the winning row
// with the lower-cased subject that matched. Scores must strictly exceed
// the subject threshold; unknown courses and sub-threshold scans return
// ok=false.
func (s *Store) ResolveSubject(remaining, courseCode string) (row storage.ScheduleRow, matched string, score int, ok bool) {
	subjects := s.Subjects(courseCode)
	if len(subjects) == 0 {
		return storage.ScheduleRow{}, "", 0, false
	}

	bestSubject := ""
	bestScore := 0
	for _, gram := range fuzzy.NGrams(remaining, fuzzy.MaxNGram) {
		candidate, sc := fuzzy.BestMatch(gram, subjects)
		if sc > scoreThreshold && sc > bestScore {
			bestScore = sc
			bestSubject = candidate
		}
	}

	if bestSubject == "" {
		return storage.ScheduleRow{}, "", 0, false
	}

	found, ok := s.RowBySubject(courseCode, bestSubject)
	if !ok {
		return storage.ScheduleRow{}, "", 0, false
	}
	return found, bestSubject, bestScore, true
}

// StripSpan removes the first occurrence of span from text and trims the
// result. Used to take the matched course span out before subject
// resolution.
func StripSpan(text, span string) string {
	if span == "" {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(strings.Replace(text, span, "", 1))
}

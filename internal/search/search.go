// Package search provides the generic fallback lookup over all loaded
// schedule tables. It serves questions that no specific handler claimed,
// using BM25 keyword scoring over one document per schedule row.
package search

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	bm25 "github.com/iwilltry42/bm25-go/bm25"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pudimbot/pudim-go/internal/logger"
	"github.com/pudimbot/pudim-go/internal/schedule"
	"github.com/pudimbot/pudim-go/internal/storage"
)

// Result is the structured outcome of a fallback search. Callers branch on
// Found instead of probing the text for a miss marker.
type Result struct {
	Found bool
	Text  string
}

// Index is a BM25 index over every loaded schedule row.
type Index struct {
	bm25Okapi *bm25.BM25Okapi
	rows      []storage.ScheduleRow
	courses   map[string]string // code -> full name
	logger    *logger.Logger
	mu        sync.RWMutex
}

// NewIndex builds the fallback index from the schedule store.
func NewIndex(store *schedule.Store, log *logger.Logger) (*Index, error) {
	idx := &Index{
		courses: make(map[string]string),
		logger:  log.WithModule("search"),
	}
	for _, c := range store.Courses() {
		idx.courses[c.Code] = c.FullName
	}

	rows := store.AllRows()
	if len(rows) == 0 {
		return idx, nil
	}

	corpus := make([]string, len(rows))
	for i, r := range rows {
		corpus[i] = strings.Join([]string{
			r.Subject, idx.courses[r.CourseCode], r.Professor, r.Room, r.TimeRange,
		}, " ")
	}

	// k1=1.5, b=0.75 are standard BM25 parameters
	okapi, err := bm25.NewBM25Okapi(corpus, tokenize, 1.5, 0.75, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search index: %w", err)
	}

	idx.bm25Okapi = okapi
	idx.rows = rows
	idx.logger.WithField("docs", len(rows)).Info("fallback search index initialized")
	return idx, nil
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// tokenize lowercases, strips diacritics and splits on non-alphanumeric
// runes, so "cálculo" and "calculo" score against the same term.
func tokenize(text string) []string {
	folded, _, err := transform.String(diacriticStripper, strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Search scores the query against every schedule row and returns the best
// one as a rendered sentence. A zero score everywhere means no row shares
// a term with the query and reports Found=false.
func (idx *Index) Search(query string) Result {
	if idx.bm25Okapi == nil || strings.TrimSpace(query) == "" {
		return Result{}
	}

	tokens := tokenize(query)
	if len(tokens) == 0 {
		return Result{}
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	scores, err := idx.bm25Okapi.GetScores(tokens)
	if err != nil {
		idx.logger.WithError(err).Warn("fallback search scoring failed")
		return Result{}
	}

	bestIdx := -1
	bestScore := 0.0
	for i, s := range scores {
		if s > bestScore {
			bestScore = s
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return Result{}
	}

	row := idx.rows[bestIdx]
	text := fmt.Sprintf("Encontrei nos horários: %s de %s, das %s, com %s, na sala %s.",
		strings.ToLower(row.Subject), idx.courses[row.CourseCode], row.TimeRange, row.Professor, row.Room)
	return Result{Found: true, Text: text}
}

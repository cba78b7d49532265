package schedule

import (
	"fmt"
	"strings"

	apperrors "github.com/pudimbot/pudim-go/internal/errors"
)

// Warning and answer sentence formats. Resolution misses are normal
// negative results rendered for the user, never errors.
const (
	courseMissFormat  = "⚠️ Curso não encontrado na pergunta: %s"
	subjectMissFormat = "⚠️ Disciplina não encontrada na pergunta: %s"
	timeAnswerFormat  = "O horário da disciplina %s de %s começa às %s e termina às %s."
	professorFormat   = "O professor da disciplina %s de %s é %s."
	roomFormat        = "A sala da disciplina %s de %s é %s."
)

// Answerer turns normalized schedule questions into answer sentences. The
// three question kinds share the course and subject resolution pipeline
// and differ only in the projected field and phrasing.
type Answerer struct {
	store *Store
}

// NewAnswerer creates an Answerer over the given store.
func NewAnswerer(store *Store) *Answerer {
	return &Answerer{store: store}
}

// resolve runs the shared pipeline. When either stage misses, miss holds
// the user-facing warning sentence and ok is false.
func (a *Answerer) resolve(question string) (match CourseMatch, subject string, miss string, ok bool) {
	match = a.store.ResolveCourse(question)
	if !match.Found {
		return match, "", fmt.Sprintf(courseMissFormat, question), false
	}

	remaining := StripSpan(question, match.MatchedSpan)
	_, matched, _, found := a.store.ResolveSubject(remaining, match.Code)
	if !found {
		return match, "", fmt.Sprintf(subjectMissFormat, question), false
	}
	return match, matched, "", true
}

// AnswerTime answers "what time is subject X of course Y" questions. The
// stored time range must split on " - "; a value that does not is bad
// source data and returns an error rather than a user warning.
func (a *Answerer) AnswerTime(question string) (string, error) {
	match, subject, miss, ok := a.resolve(question)
	if !ok {
		return miss, nil
	}

	row, _ := a.store.RowBySubject(match.Code, subject)
	parts := strings.Split(row.TimeRange, " - ")
	if len(parts) != 2 {
		return "", apperrors.NewIntegrityError("time_range", row.TimeRange)
	}
	return fmt.Sprintf(timeAnswerFormat, subject, match.FullName, parts[0], parts[1]), nil
}

// AnswerProfessor answers professor lookup questions.
func (a *Answerer) AnswerProfessor(question string) (string, error) {
	match, subject, miss, ok := a.resolve(question)
	if !ok {
		return miss, nil
	}

	row, _ := a.store.RowBySubject(match.Code, subject)
	return fmt.Sprintf(professorFormat, subject, match.FullName, strings.TrimSpace(row.Professor)), nil
}

// AnswerRoom answers room lookup questions.
func (a *Answerer) AnswerRoom(question string) (string, error) {
	match, subject, miss, ok := a.resolve(question)
	if !ok {
		return miss, nil
	}

	row, _ := a.store.RowBySubject(match.Code, subject)
	return fmt.Sprintf(roomFormat, subject, match.FullName, strings.TrimSpace(row.Room)), nil
}

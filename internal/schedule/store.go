// Package schedule resolves noisy natural-language questions against
// course schedule tables. Resolution runs in two stages: a course resolver
// picks the program the question is about, then a subject resolver matches
// the remaining text against that program's subject list.
package schedule

import (
	"context"
	"strings"

	"github.com/pudimbot/pudim-go/internal/sliceutil"
	"github.com/pudimbot/pudim-go/internal/storage"
)

// Store holds the course set and schedule tables in memory. Built once at
// startup from storage and read-only afterward, so lookups need no locking.
type Store struct {
	courses    []storage.Course
	tables     map[string][]storage.ScheduleRow
	candidates []string // full names then codes, the fuzzy-match pool
}

// NewStore builds a Store from an in-memory course set and table map.
func NewStore(courses []storage.Course, tables map[string][]storage.ScheduleRow) *Store {
	s := &Store{
		courses: courses,
		tables:  tables,
	}
	for _, c := range courses {
		s.candidates = append(s.candidates, c.FullName)
	}
	for _, c := range courses {
		s.candidates = append(s.candidates, c.Code)
	}
	return s
}

// LoadStore reads every course and schedule table from the database.
func LoadStore(ctx context.Context, db *storage.DB) (*Store, error) {
	courses, err := db.GetAllCourses(ctx)
	if err != nil {
		return nil, err
	}

	tables := make(map[string][]storage.ScheduleRow, len(courses))
	for _, c := range courses {
		rows, err := db.GetScheduleRows(ctx, c.Code)
		if err != nil {
			return nil, err
		}
		tables[c.Code] = rows
	}

	return NewStore(courses, tables), nil
}

// Courses returns the course set in load order.
func (s *Store) Courses() []storage.Course {
	return s.courses
}

// Table returns a course's schedule rows, or nil for an unknown code.
func (s *Store) Table(code string) []storage.ScheduleRow {
	return s.tables[code]
}

// AllRows returns every schedule row across all courses, course load order
// then table order.
func (s *Store) AllRows() []storage.ScheduleRow {
	var rows []storage.ScheduleRow
	for _, c := range s.courses {
		rows = append(rows, s.tables[c.Code]...)
	}
	return rows
}

// Subjects returns a course's unique subject list lower-cased, preserving
// table order. Duplicate subjects keep their first occurrence.
func (s *Store) Subjects(code string) []string {
	rows := s.tables[code]
	subjects := make([]string, 0, len(rows))
	for _, r := range rows {
		subjects = append(subjects, strings.ToLower(r.Subject))
	}
	return sliceutil.Deduplicate(subjects, func(subj string) string { return subj })
}

// RowBySubject finds the first row whose subject equals the given one,
// compared case-insensitively.
func (s *Store) RowBySubject(code, subject string) (storage.ScheduleRow, bool) {
	want := strings.ToLower(subject)
	for _, r := range s.tables[code] {
		if strings.ToLower(r.Subject) == want {
			return r, true
		}
	}
	return storage.ScheduleRow{}, false
}

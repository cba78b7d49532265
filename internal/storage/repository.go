package storage

import (
	"context"
	"fmt"
)

// SaveCourse inserts or replaces a course record
func (db *DB) SaveCourse(ctx context.Context, course *Course) error {
	query := `
	INSERT OR REPLACE INTO courses (code, full_name)
	VALUES (?, ?)
	`

	if _, err := db.conn.ExecContext(ctx, query, course.Code, course.FullName); err != nil {
		return fmt.Errorf("failed to save course %s: %w", course.Code, err)
	}

	return nil
}

// SaveScheduleRowsBatch replaces a course's schedule table in a single
// transaction. Subjects are normalized before insert so lookups always see
// the canonical form.
func (db *DB) SaveScheduleRowsBatch(ctx context.Context, courseCode string, rows []ScheduleRow) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_rows WHERE course_code = ?`, courseCode); err != nil {
		return fmt.Errorf("failed to clear schedule rows for %s: %w", courseCode, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO schedule_rows (course_code, subject, time_range, professor, room)
	VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range rows {
		subject := NormalizeSubject(row.Subject)
		if _, err := stmt.ExecContext(ctx, courseCode, subject, row.TimeRange, row.Professor, row.Room); err != nil {
			return fmt.Errorf("failed to insert schedule row %q: %w", subject, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schedule rows: %w", err)
	}

	return nil
}

// GetAllCourses returns every course record ordered by code
func (db *DB) GetAllCourses(ctx context.Context) ([]Course, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT code, full_name FROM courses ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var courses []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.Code, &c.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}

	return courses, rows.Err()
}

// GetScheduleRows returns a course's schedule table in insertion order
func (db *DB) GetScheduleRows(ctx context.Context, courseCode string) ([]ScheduleRow, error) {
	query := `
	SELECT id, course_code, subject, time_range, professor, room
	FROM schedule_rows
	WHERE course_code = ?
	ORDER BY id
	`

	rows, err := db.conn.QueryContext(ctx, query, courseCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule rows for %s: %w", courseCode, err)
	}
	defer func() { _ = rows.Close() }()

	var result []ScheduleRow
	for rows.Next() {
		var r ScheduleRow
		if err := rows.Scan(&r.ID, &r.CourseCode, &r.Subject, &r.TimeRange, &r.Professor, &r.Room); err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		result = append(result, r)
	}

	return result, rows.Err()
}

// CountScheduleRows returns the total number of stored schedule rows
func (db *DB) CountScheduleRows(ctx context.Context) (int, error) {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM schedule_rows`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count schedule rows: %w", err)
	}
	return count, nil
}

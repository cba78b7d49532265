package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InitSchema creates all necessary tables and indexes.
// Note: WAL mode is configured in db.go.
func InitSchema(db *sql.DB) error {
	if err := createCoursesTable(db); err != nil {
		return err
	}
	return createScheduleRowsTable(db)
}

func createCoursesTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS courses (
		code TEXT PRIMARY KEY,
		full_name TEXT NOT NULL UNIQUE
	);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create courses table: %w", err)
	}

	return nil
}

func createScheduleRowsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS schedule_rows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		course_code TEXT NOT NULL REFERENCES courses(code),
		subject TEXT NOT NULL,
		time_range TEXT NOT NULL,
		professor TEXT NOT NULL,
		room TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_schedule_rows_course ON schedule_rows(course_code);
	CREATE INDEX IF NOT EXISTS idx_schedule_rows_subject ON schedule_rows(subject);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create schedule_rows table: %w", err)
	}

	return nil
}

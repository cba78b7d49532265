package storage

// Course identifies an academic program by its short code and canonical
// long name. Both forms are valid fuzzy-match candidates.
type Course struct {
	Code     string // e.g. "cc"
	FullName string // e.g. "ciência da computação"
}

// ScheduleRow is one line of a course's schedule table. Subject is stored
// normalized (roman numerals mapped to digits, commas stripped, whitespace
// collapsed, upper-cased); lookups must compare against this exact form.
type ScheduleRow struct {
	ID         int64
	CourseCode string
	Subject    string
	TimeRange  string // "HH:MM - HH:MM" as extracted from the source table
	Professor  string
	Room       string
}

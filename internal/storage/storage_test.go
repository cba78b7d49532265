package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNormalizeSubject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Roman I", "CÁLCULO I", "CÁLCULO 1"},
		{"Roman II", "FÍSICA II", "FÍSICA 2"},
		{"Roman III", "QUÍMICA III", "QUÍMICA 3"},
		{"Roman IV", "LABORATÓRIO IV", "LABORATÓRIO 4"},
		{"Roman V", "PROJETO V", "PROJETO 5"},
		{"Roman inside word untouched", "HIDROSTÁTICA", "HIDROSTÁTICA"},
		{"Comma removed", "REDES, PROTOCOLOS", "REDES PROTOCOLOS"},
		{"Whitespace collapsed", "BANCO  DE   DADOS I", "BANCO DE DADOS 1"},
		{"Trimmed and upper-cased", "  algoritmos  ", "ALGORITMOS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSubject(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeSubject(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSaveAndGetScheduleRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveCourse(ctx, &Course{Code: "cc", FullName: "ciência da computação"}))

	rows := []ScheduleRow{
		{Subject: "CÁLCULO I", TimeRange: "08:00 - 10:00", Professor: "Ana", Room: "101"},
		{Subject: "FÍSICA I", TimeRange: "10:00 - 12:00", Professor: "Bruno", Room: "102"},
	}
	require.NoError(t, db.SaveScheduleRowsBatch(ctx, "cc", rows))

	got, err := db.GetScheduleRows(ctx, "cc")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Subjects normalized on insert, insertion order preserved.
	require.Equal(t, "CÁLCULO 1", got[0].Subject)
	require.Equal(t, "08:00 - 10:00", got[0].TimeRange)
	require.Equal(t, "FÍSICA 1", got[1].Subject)
	require.Equal(t, "cc", got[1].CourseCode)
}

func TestSaveScheduleRowsBatchReplaces(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveCourse(ctx, &Course{Code: "cc", FullName: "ciência da computação"}))
	require.NoError(t, db.SaveScheduleRowsBatch(ctx, "cc", []ScheduleRow{
		{Subject: "ALGORITMOS", TimeRange: "14:00 - 16:00", Professor: "Carla", Room: "Lab 1"},
	}))
	require.NoError(t, db.SaveScheduleRowsBatch(ctx, "cc", []ScheduleRow{
		{Subject: "REDES", TimeRange: "16:00 - 18:00", Professor: "Diego", Room: "103"},
	}))

	got, err := db.GetScheduleRows(ctx, "cc")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "REDES", got[0].Subject)
}

func TestSeed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Seed(ctx))

	courses, err := db.GetAllCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 6)

	count, err := db.CountScheduleRows(ctx)
	require.NoError(t, err)
	require.Greater(t, count, 0)

	// Seeding twice must not duplicate rows.
	require.NoError(t, db.Seed(ctx))
	again, err := db.CountScheduleRows(ctx)
	require.NoError(t, err)
	require.Equal(t, count, again)
}

package sliceutil

import (
	"strconv"
	"testing"
)

type row struct {
	Subject   string
	Professor string
}

func TestDeduplicate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		rows []row
		want []row
	}{
		{
			name: "no duplicates",
			rows: []row{
				{Subject: "CÁLCULO 1", Professor: "Ana"},
				{Subject: "FÍSICA 1", Professor: "Bruno"},
			},
			want: []row{
				{Subject: "CÁLCULO 1", Professor: "Ana"},
				{Subject: "FÍSICA 1", Professor: "Bruno"},
			},
		},
		{
			name: "duplicate subject keeps first row",
			rows: []row{
				{Subject: "CÁLCULO 1", Professor: "Ana"},
				{Subject: "FÍSICA 1", Professor: "Bruno"},
				{Subject: "CÁLCULO 1", Professor: "Carla"},
			},
			want: []row{
				{Subject: "CÁLCULO 1", Professor: "Ana"},
				{Subject: "FÍSICA 1", Professor: "Bruno"},
			},
		},
		{
			name: "all duplicates",
			rows: []row{
				{Subject: "ALGORITMOS", Professor: "Ana"},
				{Subject: "ALGORITMOS", Professor: "Bruno"},
				{Subject: "ALGORITMOS", Professor: "Carla"},
			},
			want: []row{
				{Subject: "ALGORITMOS", Professor: "Ana"},
			},
		},
		{
			name: "empty slice",
			rows: []row{},
			want: []row{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Deduplicate(tt.rows, func(r row) string { return r.Subject })
			if len(got) != len(tt.want) {
				t.Fatalf("Deduplicate() length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Deduplicate()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Order of first occurrences must survive deduplication; the subject list
// shown to the resolver depends on it.
func TestDeduplicatePreservesOrder(t *testing.T) {
	t.Parallel()
	rows := []row{
		{Subject: "ROBÓTICA 2", Professor: "Karen"},
		{Subject: "ALGORITMOS", Professor: "Ana"},
		{Subject: "FÍSICA 1", Professor: "Bruno"},
		{Subject: "ROBÓTICA 2", Professor: "João"},
		{Subject: "ALGORITMOS", Professor: "Carla"},
	}

	got := Deduplicate(rows, func(r row) string { return r.Subject })

	want := []row{
		{Subject: "ROBÓTICA 2", Professor: "Karen"},
		{Subject: "ALGORITMOS", Professor: "Ana"},
		{Subject: "FÍSICA 1", Professor: "Bruno"},
	}

	if len(got) != len(want) {
		t.Fatalf("Deduplicate() length = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Deduplicate()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func BenchmarkDeduplicate(b *testing.B) {
	rows := make([]row, 1000)
	for i := range rows {
		rows[i] = row{Subject: strconv.Itoa(i % 100), Professor: "x"}
	}

	keyFunc := func(r row) string { return r.Subject }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Deduplicate(rows, keyFunc)
	}
}

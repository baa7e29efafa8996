package generator

import (
	"errors"
	"reflect"
	"testing"

	"tabquiz/internal/placeholder"
	"tabquiz/internal/table"
)

func mustTable(t *testing.T, columns []string, rows [][]string) *table.Table {
	t.Helper()
	tbl, err := table.New(columns, rows)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return tbl
}

// TestNeededColumnsUnion verifies fields and answers are merged in order.
func TestNeededColumnsUnion(t *testing.T) {
	columns, err := NeededColumns([]Template{
		{Format: "Where is {city} in {country}?", AnswerColumn: "region"},
		{Format: "What is the capital of {country}?", AnswerColumn: "city"},
	})
	if err != nil {
		t.Fatalf("needed columns: %v", err)
	}
	want := []string{"city", "country", "region"}
	if !reflect.DeepEqual(columns, want) {
		t.Fatalf("expected %v, got %v", want, columns)
	}
}

// TestNeededColumnsFormatError verifies malformed templates are reported.
func TestNeededColumnsFormatError(t *testing.T) {
	_, err := NeededColumns([]Template{{Format: "broken {", AnswerColumn: "a"}})
	if !errors.Is(err, placeholder.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

// TestNewPoolProjectsAndClearsFlags verifies the pool only keeps needed columns.
func TestNewPoolProjectsAndClearsFlags(t *testing.T) {
	tbl := mustTable(t, []string{"country", "capital", "population"}, [][]string{
		{"France", "Paris", "68"},
		{"Peru", "Lima", "34"},
	})
	pool, err := NewPool(tbl, []Template{{Format: "Capital of {country}?", AnswerColumn: "capital"}})
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	if !reflect.DeepEqual(pool.Columns(), []string{"country", "capital"}) {
		t.Fatalf("unexpected columns %v", pool.Columns())
	}
	if pool.UsedCount() != 0 || len(pool.Unused()) != 2 {
		t.Fatalf("expected all rows unused")
	}
}

// TestNewPoolMissingColumn verifies absent columns fail the projection.
func TestNewPoolMissingColumn(t *testing.T) {
	tbl := mustTable(t, []string{"country"}, [][]string{{"France"}})
	_, err := NewPool(tbl, []Template{{Format: "Capital of {country}?", AnswerColumn: "capital"}})
	if !errors.Is(err, table.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

// TestMarkIsIdempotent verifies re-marking leaves the pool unchanged.
func TestMarkIsIdempotent(t *testing.T) {
	tbl := mustTable(t, []string{"k", "v"}, [][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}})
	pool, err := NewPool(tbl, []Template{{Format: "{k}", AnswerColumn: "v"}})
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	if got := pool.Mark(0, 2); got != 2 {
		t.Fatalf("expected 2 newly marked rows, got %d", got)
	}
	before := pool.Unused()
	if got := pool.Mark(0, 2, 0); got != 0 {
		t.Fatalf("expected no newly marked rows, got %d", got)
	}
	if pool.UsedCount() != 2 || !reflect.DeepEqual(pool.Unused(), before) {
		t.Fatalf("expected pool state unchanged, used=%d unused=%v", pool.UsedCount(), pool.Unused())
	}
}

// TestMatchScansUsedRows verifies the match set ignores used flags.
func TestMatchScansUsedRows(t *testing.T) {
	tbl := mustTable(t, []string{"k", "g", "v"}, [][]string{
		{"a", "x", "1"},
		{"a", "y", "2"},
		{"a", "x", "3"},
		{"b", "x", "4"},
	})
	pool, err := NewPool(tbl, []Template{{Format: "{k} {g}", AnswerColumn: "v"}})
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	pool.Mark(2)
	got := pool.Match(map[string]string{"k": "a", "g": "x"})
	if !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("expected rows [0 2], got %v", got)
	}
}

// TestCandidatesExcludeUsedAndValues verifies candidate filtering.
func TestCandidatesExcludeUsedAndValues(t *testing.T) {
	tbl := mustTable(t, []string{"k", "v"}, [][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}, {"d", "2"}})
	pool, err := NewPool(tbl, []Template{{Format: "{k}", AnswerColumn: "v"}})
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	pool.Mark(0)
	got := pool.Candidates("v", map[string]struct{}{"2": {}})
	if !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("expected [2], got %v", got)
	}
}

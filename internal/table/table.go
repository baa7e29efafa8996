package table

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumn indicates a referenced column is absent from a table.
var ErrMissingColumn = errors.New("missing column")

// MissingColumnError names every column that could not be found.
type MissingColumnError struct {
	Columns   []string
	Available []string
}

// Error renders the missing and available column names.
func (err *MissingColumnError) Error() string {
	if err == nil || len(err.Columns) == 0 {
		return ErrMissingColumn.Error()
	}
	quoted := make([]string, 0, len(err.Columns))
	for _, col := range err.Columns {
		quoted = append(quoted, fmt.Sprintf("%q", col))
	}
	return fmt.Sprintf("%s: %s (available: %s)", ErrMissingColumn, strings.Join(quoted, ", "), strings.Join(err.Available, ", "))
}

// Unwrap lets errors.Is match ErrMissingColumn.
func (err *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// Source loads a table from some backing store.
type Source interface {
	Load(ctx context.Context) (*Table, error)
}

// Table is an in-memory dataset of textual cells.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a table, rejecting duplicate column names and ragged rows.
func New(columns []string, rows [][]string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, exists := index[col]; exists {
			return nil, fmt.Errorf("duplicate column %q", col)
		}
		index[col] = i
	}
	copied := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(columns))
		}
		copied[i] = append([]string(nil), row...)
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    copied,
	}, nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the table has a column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of a column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	idx, ok := t.index[name]
	return idx, ok
}

// Value returns the cell at row and column index.
func (t *Table) Value(row, col int) string {
	return t.rows[row][col]
}

// Row returns a copy of a row as a column→value map.
func (t *Table) Row(row int) map[string]string {
	out := make(map[string]string, len(t.columns))
	for i, col := range t.columns {
		out[col] = t.rows[row][i]
	}
	return out
}

// Project returns a new table restricted to columns, in the given order.
func (t *Table) Project(columns []string) (*Table, error) {
	var missing []string
	positions := make([]int, 0, len(columns))
	for _, col := range columns {
		idx, ok := t.index[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		positions = append(positions, idx)
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing, Available: t.Columns()}
	}
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		projected := make([]string, len(positions))
		for j, pos := range positions {
			projected[j] = row[pos]
		}
		rows[i] = projected
	}
	return New(columns, rows)
}

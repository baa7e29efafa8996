package generator

import (
	"fmt"

	"tabquiz/internal/placeholder"
	"tabquiz/internal/table"
)

// Pool is the working copy of a table for one generation run: the columns
// the templates need plus a used flag per row. Flags are never cleared.
type Pool struct {
	table     *table.Table
	used      []bool
	usedCount int
}

// NeededColumns returns the union of placeholder fields and answer columns
// across templates, in first-seen order.
func NeededColumns(templates []Template) ([]string, error) {
	var columns []string
	for i, tmpl := range templates {
		fields, err := placeholder.Extract(tmpl.Format)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		columns = append(columns, fields...)
		columns = append(columns, tmpl.AnswerColumn)
	}
	return placeholder.Unique(columns), nil
}

// NewPool projects tbl onto the columns templates need and clears every used flag.
func NewPool(tbl *table.Table, templates []Template) (*Pool, error) {
	columns, err := NeededColumns(templates)
	if err != nil {
		return nil, err
	}
	projected, err := tbl.Project(columns)
	if err != nil {
		return nil, err
	}
	return &Pool{
		table: projected,
		used:  make([]bool, projected.Len()),
	}, nil
}

// Len returns the number of rows in the pool.
func (p *Pool) Len() int {
	return p.table.Len()
}

// Columns returns the projected column names.
func (p *Pool) Columns() []string {
	return p.table.Columns()
}

// UsedCount returns how many rows are flagged used.
func (p *Pool) UsedCount() int {
	return p.usedCount
}

// IsUsed reports whether a row is flagged used.
func (p *Pool) IsUsed(row int) bool {
	return p.used[row]
}

// Value returns a row's value for a column that is part of the pool.
func (p *Pool) Value(row int, column string) string {
	idx, ok := p.table.ColumnIndex(column)
	if !ok {
		panic(fmt.Sprintf("generator: column %q is not in the pool", column))
	}
	return p.table.Value(row, idx)
}

// Values returns a row's values for columns.
func (p *Pool) Values(row int, columns []string) map[string]string {
	out := make(map[string]string, len(columns))
	for _, col := range columns {
		out[col] = p.Value(row, col)
	}
	return out
}

// Unused returns the indexes of rows not yet flagged used.
func (p *Pool) Unused() []int {
	out := make([]int, 0, len(p.used)-p.usedCount)
	for i, used := range p.used {
		if !used {
			out = append(out, i)
		}
	}
	return out
}

// Match returns every row, used or not, whose values equal values on all of
// the given columns.
func (p *Pool) Match(values map[string]string) []int {
	type condition struct {
		col   int
		value string
	}
	conditions := make([]condition, 0, len(values))
	for column, value := range values {
		idx, ok := p.table.ColumnIndex(column)
		if !ok {
			return nil
		}
		conditions = append(conditions, condition{col: idx, value: value})
	}
	var out []int
	for row := 0; row < p.table.Len(); row++ {
		matched := true
		for _, cond := range conditions {
			if p.table.Value(row, cond.col) != cond.value {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, row)
		}
	}
	return out
}

// Candidates returns unused rows whose value in column is not in exclude.
func (p *Pool) Candidates(column string, exclude map[string]struct{}) []int {
	idx, ok := p.table.ColumnIndex(column)
	if !ok {
		return nil
	}
	var out []int
	for row, used := range p.used {
		if used {
			continue
		}
		if _, skip := exclude[p.table.Value(row, idx)]; skip {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Mark flags rows used and returns how many were newly flagged.
// Marking an already used row is a no-op.
func (p *Pool) Mark(rows ...int) int {
	marked := 0
	for _, row := range rows {
		if p.used[row] {
			continue
		}
		p.used[row] = true
		p.usedCount++
		marked++
	}
	return marked
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tabquiz/internal/table"
)

// TableSource reads a whole PostgreSQL table, casting every column to text.
type TableSource struct {
	DSN   string
	Table string
	Pool  PoolConfig
}

// Load opens a short-lived pool, reads the table and closes the pool.
func (s TableSource) Load(ctx context.Context) (*table.Table, error) {
	ident, err := ParseIdentifier(s.Table)
	if err != nil {
		return nil, err
	}
	pool, err := NewPool(ctx, s.DSN, s.Pool)
	if err != nil {
		return nil, err
	}
	defer pool.Close()
	return ReadTable(ctx, pool, ident)
}

// ParseIdentifier splits an optionally schema-qualified table name.
func ParseIdentifier(name string) (pgx.Identifier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("postgres: table name is empty")
	}
	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("postgres: invalid table name %q", name)
	}
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			return nil, fmt.Errorf("postgres: invalid table name %q", name)
		}
	}
	return pgx.Identifier(parts), nil
}

// ReadTable selects every row of ident with each column cast to text,
// preserving column order. NULL cells become empty strings.
func ReadTable(ctx context.Context, pool *pgxpool.Pool, ident pgx.Identifier) (*table.Table, error) {
	columns, err := columnNames(ctx, pool, ident)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, SelectText(ident, columns))
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", ident.Sanitize(), err)
	}
	defer rows.Close()

	var records [][]string
	for rows.Next() {
		cells := make([]*string, len(columns))
		dest := make([]any, len(columns))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(records), err)
		}
		record := make([]string, len(columns))
		for i, cell := range cells {
			if cell != nil {
				record[i] = *cell
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return table.New(columns, records)
}

// SelectText builds the text-cast projection over ident.
func SelectText(ident pgx.Identifier, columns []string) string {
	exprs := make([]string, 0, len(columns))
	for _, column := range columns {
		quoted := pgx.Identifier{column}.Sanitize()
		exprs = append(exprs, quoted+"::text AS "+quoted)
	}
	return "SELECT " + strings.Join(exprs, ", ") + " FROM " + ident.Sanitize()
}

func columnNames(ctx context.Context, pool *pgxpool.Pool, ident pgx.Identifier) ([]string, error) {
	rows, err := pool.Query(ctx, "SELECT * FROM "+ident.Sanitize()+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", ident.Sanitize(), err)
	}
	defer rows.Close()
	fields := rows.FieldDescriptions()
	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		columns = append(columns, field.Name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describe %s: %w", ident.Sanitize(), err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("postgres: table %s has no columns", ident.Sanitize())
	}
	return columns, nil
}

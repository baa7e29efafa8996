package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"tabquiz/internal/table"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DriverName is the database/sql driver registered by duckdb-go.
const DriverName = "duckdb"

// ErrUnsupportedFormat reports a file extension DuckDB is not asked to read.
var ErrUnsupportedFormat = errors.New("duckdb: unsupported file format")

// FileSource loads a table from a local data file through an in-memory
// DuckDB instance. Every cell is read as text.
type FileSource struct {
	Path string
}

// Load reads the whole file. NULL cells become empty strings.
func (s FileSource) Load(ctx context.Context) (*table.Table, error) {
	query, err := ScanQuery(s.Path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(DriverName, "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	tbl, err := QueryTable(ctx, db, query)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Path, err)
	}
	return tbl, nil
}

// ScanQuery builds the SELECT used to read path, chosen by file extension.
func ScanQuery(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("duckdb: source path is empty")
	}
	literal := quoteLiteral(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return fmt.Sprintf("SELECT * FROM read_csv(%s, header = true, all_varchar = true)", literal), nil
	case ".tsv":
		return fmt.Sprintf("SELECT * FROM read_csv(%s, header = true, delim = '\\t', all_varchar = true)", literal), nil
	case ".json", ".ndjson", ".jsonl":
		return fmt.Sprintf("SELECT COLUMNS(*)::VARCHAR FROM read_json_auto(%s)", literal), nil
	case ".parquet":
		return fmt.Sprintf("SELECT COLUMNS(*)::VARCHAR FROM read_parquet(%s)", literal), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// QueryTable runs query on db and collects the result as a text table.
func QueryTable(ctx context.Context, db *sql.DB, query string) (*table.Table, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	cells := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range cells {
		dest[i] = &cells[i]
	}
	var records [][]string
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(records), err)
		}
		record := make([]string, len(columns))
		for i, cell := range cells {
			if cell.Valid {
				record[i] = cell.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return table.New(columns, records)
}

func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

package duckdbtesting

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tabquiz/internal/duckdb"
	"tabquiz/internal/testutil"
)

const (
	defaultTimeout = 5 * time.Second
)

// Open opens a DuckDB connection and verifies it responds within a short timeout.
func Open(t testing.TB, dsn string) *sql.DB {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	conn, err := sql.Open(duckdb.DriverName, dsn)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		t.Fatalf("ping duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

// WriteFile writes content under dir and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// CopyQuery exports the result of query to path using DuckDB's COPY with
// the given format, for producing parquet fixtures.
func CopyQuery(t testing.TB, ctx context.Context, db *sql.DB, query, path, format string) {
	t.Helper()
	stmt := "COPY (" + query + ") TO '" + strings.ReplaceAll(path, "'", "''") + "' (FORMAT " + format + ")"
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		t.Fatalf("copy to %s: %v", path, err)
	}
}

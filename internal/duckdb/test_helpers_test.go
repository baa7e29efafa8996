package duckdb_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	duckdbtesting "tabquiz/internal/duckdb/testing"
	"tabquiz/internal/testutil"
)

const (
	testTimeout = 5 * time.Second
)

// openTestDB opens an in-memory DuckDB instance.
func openTestDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	db := duckdbtesting.Open(t, "")
	return db, ctx
}

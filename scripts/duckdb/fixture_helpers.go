package main

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	duckdbdriver "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
)

// newFixtureAppender creates a DuckDB appender for bulk row inserts.
func newFixtureAppender(conn *sql.Conn) (*duckdbdriver.Appender, error) {
	var appender *duckdbdriver.Appender
	if err := conn.Raw(func(driverConn any) error {
		rawConn, ok := driverConn.(driver.Conn)
		if !ok {
			return fmt.Errorf("duckdb driver connection unavailable (got %T)", driverConn)
		}
		var err error
		appender, err = duckdbdriver.NewAppenderFromConn(rawConn, "", "fixture")
		return err
	}); err != nil {
		return nil, err
	}
	if appender == nil {
		return nil, fmt.Errorf("duckdb appender initialization failed")
	}
	return appender, nil
}

// copyQuery builds the COPY statement for the output extension.
func copyQuery(path string) (string, error) {
	target := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return fmt.Sprintf("COPY fixture TO %s (HEADER, DELIMITER ',')", target), nil
	case ".parquet":
		return fmt.Sprintf("COPY fixture TO %s (FORMAT PARQUET)", target), nil
	default:
		return "", fmt.Errorf("unsupported fixture format %q", filepath.Ext(path))
	}
}

// dirOf returns the parent directory for a file path.
func dirOf(path string) string {
	if path == "" {
		return "."
	}
	if idx := len(path) - 1; idx >= 0 && path[idx] == os.PathSeparator {
		return path
	}
	return filepath.Dir(path)
}

// removeIfExists deletes an existing fixture file so we always start fresh.
func removeIfExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove existing fixture: %w", err)
		}
		return nil
	}
	if os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("stat fixture: %w", err)
}

// deterministicID generates a repeatable UUID for fixture rows.
func deterministicID(prefix string, index int) string {
	return uuid.NewSHA1(fixtureNamespace, []byte(fmt.Sprintf("%s-%d", prefix, index))).String()
}

// fixtureNamespace keeps ids stable across fixture runs.
var fixtureNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

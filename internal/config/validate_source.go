package config

import (
	"fmt"
	"os"
	"strings"

	"tabquiz/internal/duckdb"
	"tabquiz/internal/postgres"
	"tabquiz/internal/spec"
)

func validateSource(source spec.SourceConfig, baseDir string, add issueAdder) {
	hasPath := source.Path != ""
	hasPostgres := source.Postgres != nil
	switch {
	case hasPath && hasPostgres:
		add("source", "set either path or postgres, not both")
		return
	case !hasPath && !hasPostgres:
		add("source", "path or postgres is required")
		return
	}

	if hasPath {
		if _, err := duckdb.ScanQuery(source.Path); err != nil {
			add("source.path", err.Error())
			return
		}
		info, err := os.Stat(ResolvePath(baseDir, source.Path))
		if err != nil {
			add("source.path", fmt.Sprintf("file not found at %q", source.Path))
		} else if info.IsDir() {
			add("source.path", fmt.Sprintf("path %q is a directory", source.Path))
		}
		return
	}

	pg := source.Postgres
	if strings.TrimSpace(pg.DSNEnv) == "" {
		add("source.postgres.dsn_env", "is required")
	}
	if strings.TrimSpace(pg.Table) == "" {
		add("source.postgres.table", "is required")
	} else if _, err := postgres.ParseIdentifier(pg.Table); err != nil {
		add("source.postgres.table", err.Error())
	}
	if pg.MaxConns < 0 {
		add("source.postgres.max_conns", "must be >= 0")
	}
}

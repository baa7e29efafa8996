// Command generate_fixture writes a synthetic quiz table for load testing the
// generator against large inputs.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"tabquiz/internal/duckdb"
)

// fixtureConfig defines the JSON config for generating a table fixture.
type fixtureConfig struct {
	Name   string `json:"name"`
	Rows   int    `json:"rows"`
	Groups int    `json:"groups"`
}

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outPath := flag.String("out", "", "output table file (.csv or .parquet)")
	flag.Parse()
	if *configPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --config <path> --out <table file>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(dirOf(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}
	if err := removeIfExists(*outPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s\n", cfg.Rows, *outPath)
}

func loadConfig(path string) (fixtureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtureConfig{}, err
	}
	var cfg fixtureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fixtureConfig{}, err
	}
	if cfg.Rows < 1 {
		return fixtureConfig{}, fmt.Errorf("rows must be >= 1")
	}
	if cfg.Groups < 1 {
		cfg.Groups = cfg.Rows
	}
	return cfg, nil
}

// generateFixture fills an in-memory table with the appender and copies it out.
func generateFixture(ctx context.Context, path string, cfg fixtureConfig) error {
	db, err := sql.Open(duckdb.DriverName, "")
	if err != nil {
		return err
	}
	defer db.Close()
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	if _, err := conn.ExecContext(ctx, "CREATE TABLE fixture (id VARCHAR, item VARCHAR, grp VARCHAR, value VARCHAR)"); err != nil {
		return err
	}
	appender, err := newFixtureAppender(conn)
	if err != nil {
		return err
	}
	for i := 0; i < cfg.Rows; i++ {
		group := i % cfg.Groups
		if err := appender.AppendRow(
			deterministicID(cfg.Name, i),
			fmt.Sprintf("%s item %d", cfg.Name, i),
			fmt.Sprintf("group %d", group),
			fmt.Sprintf("value %d", group),
		); err != nil {
			_ = appender.Close()
			return fmt.Errorf("append row %d: %w", i, err)
		}
	}
	if err := appender.Close(); err != nil {
		return fmt.Errorf("flush appender: %w", err)
	}
	query, err := copyQuery(path)
	if err != nil {
		return err
	}
	_, err = conn.ExecContext(ctx, query)
	return err
}

//go:build cucumber
// +build cucumber

package cucumber

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cucumber/godog"

	"tabquiz/internal/config"
)

const tableFile = "data/table.csv"

// aProjectWithTable creates a temp project holding the table as CSV.
func (s *featureState) aProjectWithTable(table *godog.Table) error {
	if len(table.Rows) == 0 {
		return fmt.Errorf("table needs a header row")
	}
	dir, err := os.MkdirTemp("", "tabquiz-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.repoDir = dir
	s.configPath = config.ConfigPath(dir)

	s.header = cellValues(table.Rows[0])
	for _, row := range table.Rows[1:] {
		s.rows = append(s.rows, cellValues(row))
	}

	path := filepath.Join(dir, filepath.FromSlash(tableFile))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	if err := writer.Write(s.header); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	if err := writer.WriteAll(s.rows); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

// theTemplate records the single question template for the scenario.
func (s *featureState) theTemplate(question, answer string) error {
	s.question = question
	s.answer = answer
	return nil
}

// theOptionIs records one options entry for the scenario config.
func (s *featureState) theOptionIs(key, value string) error {
	s.options[key] = value
	return nil
}

// writeConfig persists the scenario config before a command runs.
func (s *featureState) writeConfig() error {
	if s.configPath == "" || s.question == "" {
		return nil
	}
	var b strings.Builder
	b.WriteString("version: 1\n")
	fmt.Fprintf(&b, "source:\n  path: %s\n", tableFile)
	fmt.Fprintf(&b, "templates:\n  - question: %q\n    answer: %s\n", s.question, s.answer)
	if len(s.options) > 0 {
		keys := make([]string, 0, len(s.options))
		for key := range s.options {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		b.WriteString("options:\n")
		for _, key := range keys {
			fmt.Fprintf(&b, "  %s: %s\n", key, s.options[key])
		}
	}
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.configPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func cellValues(row *godog.TableRow) []string {
	values := make([]string, 0, len(row.Cells))
	for _, cell := range row.Cells {
		values = append(values, strings.TrimSpace(cell.Value))
	}
	return values
}

package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tabquiz/internal/config"
)

const capitalsCSV = `country,capital,continent
France,Paris,Europe
Japan,Tokyo,Asia
Peru,Lima,South America
Kenya,Nairobi,Africa
Canada,Ottawa,North America
`

// writeProject creates a project with a capitals table and the given options
// block, returning the config path.
func writeProject(t *testing.T, options string) string {
	t.Helper()
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "data", "capitals.csv"), capitalsCSV)
	cfg := "version: 1\n" +
		"source:\n  path: data/capitals.csv\n" +
		"templates:\n  - question: \"What is the capital of {country}?\"\n    answer: capital\n" +
		"options:\n" + options
	path := config.ConfigPath(root)
	writeTestFile(t, path, cfg)
	return path
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// withInput swaps the reader used by a command for the test duration.
func withInput(t *testing.T, target *io.Reader, lines ...string) {
	t.Helper()
	original := *target
	*target = strings.NewReader(strings.Join(lines, "\n") + "\n")
	t.Cleanup(func() { *target = original })
}

// withClock fixes the command clock.
func withClock(t *testing.T, ts time.Time) {
	t.Helper()
	original := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = original })
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"tabquiz/internal/spec"
)

// validConfig returns a normalized config whose source lives in dir.
func validConfig(t *testing.T, dir string) spec.Config {
	t.Helper()
	writeFile(t, filepath.Join(dir, "capitals.csv"), "country,capital\nFrance,Paris\n")
	cfg := spec.Config{
		Version: 1,
		Source:  spec.SourceConfig{Path: "capitals.csv"},
		Templates: []spec.TemplateConfig{
			{Question: "What is the capital of {country}?", Answer: "capital"},
		},
	}
	Normalize(&cfg)
	return cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

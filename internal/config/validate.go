package config

import (
	"fmt"

	"tabquiz/internal/spec"
)

// Validate checks a normalized config and the files it references.
// Relative source paths resolve against baseDir.
func Validate(cfg *spec.Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if baseDir == "" {
		baseDir = "."
	}

	validateSource(cfg.Source, baseDir, collector.add)
	validateTemplates(cfg.Templates, collector.add)
	validateOptions(cfg.Options, collector.add)

	return collector.result()
}

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tabquiz/internal/spec"
)

// ScaffoldOptions carries the answers collected by `tabquiz init`.
type ScaffoldOptions struct {
	SourcePath   string
	Question     string
	AnswerColumn string
	MultiChoice  bool
	OutputDir    string
}

// DefaultScaffoldOptions mirrors the sample capitals quiz.
func DefaultScaffoldOptions() ScaffoldOptions {
	return ScaffoldOptions{
		SourcePath:   "data/capitals.csv",
		Question:     "What is the capital of {country}?",
		AnswerColumn: "capital",
		MultiChoice:  true,
		OutputDir:    DefaultOutputDir,
	}
}

const scaffoldHeader = "# tabquiz configuration. Relative paths resolve against the project root.\n"

// ScaffoldConfig builds the config written by Scaffold.
func ScaffoldConfig(opts ScaffoldOptions) spec.Config {
	multi := opts.MultiChoice
	return spec.Config{
		Version: 1,
		Source:  spec.SourceConfig{Path: opts.SourcePath},
		Templates: []spec.TemplateConfig{
			{Question: opts.Question, Answer: opts.AnswerColumn},
		},
		Options: spec.OptionsConfig{
			MultiChoice:        &multi,
			NumQuestions:       DefaultNumQuestions,
			MultiChoiceOptions: DefaultMultiChoiceOptions,
		},
		Output: spec.OutputConfig{Dir: opts.OutputDir},
	}
}

// Scaffold writes a new config file at specPath. It refuses to overwrite.
func Scaffold(specPath string, opts ScaffoldOptions) error {
	if specPath == "" {
		return fmt.Errorf("spec path is required")
	}
	if info, err := os.Stat(specPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("spec path %q is a directory", specPath)
		}
		return fmt.Errorf("spec file already exists at %q", specPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat spec file: %w", err)
	}
	if strings.TrimSpace(opts.OutputDir) == "" {
		opts.OutputDir = DefaultOutputDir
	}

	var buf bytes.Buffer
	buf.WriteString(scaffoldHeader)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(ScaffoldConfig(opts)); err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(specPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(specPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write spec file: %w", err)
	}
	return nil
}

package config

import (
	"strings"

	"tabquiz/internal/quiz"
	"tabquiz/internal/spec"
)

// Option defaults applied by Normalize.
const (
	DefaultNumQuestions       = 10
	DefaultMultiChoiceOptions = 4
	DefaultScorePerQuestion   = 1
	DefaultFirstQuestionNum   = 1
)

// Normalize trims string fields and fills unset options with defaults.
// Negative numbers are left for Validate to report.
func Normalize(cfg *spec.Config) {
	cfg.Source.Path = strings.TrimSpace(cfg.Source.Path)
	if pg := cfg.Source.Postgres; pg != nil {
		pg.DSNEnv = strings.TrimSpace(pg.DSNEnv)
		pg.Table = strings.TrimSpace(pg.Table)
	}
	for i := range cfg.Templates {
		cfg.Templates[i].Answer = strings.TrimSpace(cfg.Templates[i].Answer)
	}

	opts := &cfg.Options
	if opts.MultiChoice == nil {
		multi := true
		opts.MultiChoice = &multi
	}
	if opts.NumQuestions == 0 {
		opts.NumQuestions = DefaultNumQuestions
	}
	if opts.MultiChoiceOptions == 0 {
		opts.MultiChoiceOptions = DefaultMultiChoiceOptions
	}
	if opts.ScorePerQuestion == 0 {
		opts.ScorePerQuestion = DefaultScorePerQuestion
	}
	if opts.Separator == "" {
		opts.Separator = quiz.DefaultSeparator
	}
	if opts.FirstQuestionNum == 0 {
		opts.FirstQuestionNum = DefaultFirstQuestionNum
	}
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		cfg.Output.Dir = DefaultOutputDir
	}
}

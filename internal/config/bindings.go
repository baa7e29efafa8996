package config

import (
	"fmt"
	"strings"

	"tabquiz/internal/duckdb"
	"tabquiz/internal/generator"
	"tabquiz/internal/postgres"
	"tabquiz/internal/quiz"
	"tabquiz/internal/spec"
	"tabquiz/internal/table"
)

// Templates converts configured templates in order.
func Templates(cfg spec.Config) []generator.Template {
	out := make([]generator.Template, 0, len(cfg.Templates))
	for _, tmpl := range cfg.Templates {
		out = append(out, generator.Template{Format: tmpl.Question, AnswerColumn: tmpl.Answer})
	}
	return out
}

// GeneratorOptions returns the generation settings of a normalized config.
func GeneratorOptions(cfg spec.Config) generator.Options {
	return generator.Options{
		MultiChoice:        cfg.Options.IsMultiChoice(),
		NumQuestions:       cfg.Options.NumQuestions,
		MultiChoiceOptions: cfg.Options.MultiChoiceOptions,
	}
}

// QuizOptions returns the console settings of a normalized config.
func QuizOptions(cfg spec.Config) quiz.Options {
	return quiz.Options{
		ScorePerQuestion: cfg.Options.ScorePerQuestion,
		Separator:        cfg.Options.Separator,
		FirstQuestionNum: cfg.Options.FirstQuestionNum,
		MaxAttempts:      cfg.Options.MaxAttempts,
	}
}

// Source builds the table source for cfg. root resolves relative file paths
// and getenv looks up the Postgres DSN variable.
func Source(cfg spec.Config, root string, getenv func(string) string) (table.Source, error) {
	if pg := cfg.Source.Postgres; pg != nil {
		dsn := strings.TrimSpace(getenv(pg.DSNEnv))
		if dsn == "" {
			return nil, fmt.Errorf("environment variable %s is not set", pg.DSNEnv)
		}
		return postgres.TableSource{
			DSN:   dsn,
			Table: pg.Table,
			Pool:  postgres.PoolConfig{MaxConns: pg.MaxConns},
		}, nil
	}
	if cfg.Source.Path == "" {
		return nil, fmt.Errorf("no table source configured")
	}
	return duckdb.FileSource{Path: ResolvePath(root, cfg.Source.Path)}, nil
}

// SourceLabel describes the configured source for question-set metadata.
func SourceLabel(cfg spec.Config) string {
	if pg := cfg.Source.Postgres; pg != nil {
		return "postgres:" + pg.Table
	}
	return cfg.Source.Path
}

package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"tabquiz/internal/config"
	"tabquiz/internal/generator"
	"tabquiz/internal/question"
	"tabquiz/internal/spec"
	"tabquiz/internal/verbose"
)

// session is a loaded config plus the randomness and logging for one command.
type session struct {
	cfg    spec.Config
	root   string
	seed   int64
	rng    *rand.Rand
	logger verbose.Logger
}

// now is overridden in tests for stable timestamps.
var now = time.Now

// openSession resolves and loads the config, applies overrides and seeds the RNG.
func openSession(specPath string, overrides *overrideFlags, logger verbose.Logger) (*session, error) {
	resolved, err := resolveSpecPath(specPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return nil, err
	}
	if err := overrides.apply(&cfg); err != nil {
		return nil, err
	}
	if err := config.Validate(&cfg, config.RootFromConfigPath(resolved)); err != nil {
		return nil, err
	}
	seed := cfg.Options.Seed
	if seed == 0 {
		seed = now().UnixNano()
	}
	logger.Logf(verbose.StyleStep, "config %s, seed %d", resolved, seed)
	return &session{
		cfg:    cfg,
		root:   config.RootFromConfigPath(resolved),
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}, nil
}

// loadEnv reads <root>/.env when present. Variables already set win.
func (s *session) loadEnv() error {
	path := filepath.Join(s.root, ".env")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat .env: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	s.logger.Logf(verbose.StyleStep, "loaded %s", path)
	return nil
}

// fail records err in the verbose log and returns it unchanged.
func (s *session) fail(stage string, err error) error {
	s.logger.Logf(verbose.StyleError, "%s failed: %v", stage, err)
	return err
}

// generate loads the configured table and produces questions.
func (s *session) generate(ctx context.Context) ([]question.Question, error) {
	if err := s.loadEnv(); err != nil {
		return nil, s.fail("load env", err)
	}
	source, err := config.Source(s.cfg, s.root, os.Getenv)
	if err != nil {
		return nil, s.fail("open source", err)
	}
	tbl, err := source.Load(ctx)
	if err != nil {
		return nil, s.fail("load table", err)
	}
	s.logger.Logf(verbose.StyleStep, "loaded %d rows from %s", tbl.Len(), config.SourceLabel(s.cfg))
	result, err := generator.New(s.rng, s.logger).Generate(ctx, tbl, config.Templates(s.cfg), config.GeneratorOptions(s.cfg))
	if err != nil {
		return nil, s.fail("generate", err)
	}
	stats := result.Stats
	s.logger.Logf(verbose.StyleMetrics, "stats: %d questions, %d rows used, %d distractor rounds", stats.Questions, stats.RowsUsed, stats.DistractorRounds)
	return result.Questions, nil
}

// questions returns a saved set when path is given, otherwise generates.
func (s *session) questions(ctx context.Context, path string) ([]question.Question, string, error) {
	if path == "" {
		questions, err := s.generate(ctx)
		return questions, config.SourceLabel(s.cfg), err
	}
	set, err := question.LoadSet(path)
	if err != nil {
		return nil, "", s.fail("load questions", err)
	}
	questions, err := set.Build()
	if err != nil {
		return nil, "", s.fail("load questions", err)
	}
	s.logger.Logf(verbose.StyleStep, "loaded %d questions from %s", len(questions), path)
	return questions, set.Source, nil
}

// outputPath resolves a user path or falls back to a file in the output dir.
func (s *session) outputPath(path, defaultName string) string {
	if path != "" {
		return path
	}
	return filepath.Join(config.ResolvePath(s.root, s.cfg.Output.Dir), defaultName)
}

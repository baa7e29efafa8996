package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"tabquiz/internal/placeholder"
	"tabquiz/internal/question"
	"tabquiz/internal/table"
	"tabquiz/internal/verbose"
)

var (
	// ErrInsufficientData indicates the requested counts exceed what the table can supply.
	ErrInsufficientData = errors.New("too many questions requested for the size of data provided")
	// ErrExhausted indicates the pool ran out of eligible unused rows mid-run.
	ErrExhausted = errors.New("not enough unused data to generate question")
)

// Template pairs a question format with the column holding the answer.
type Template struct {
	Format       string
	AnswerColumn string
}

// Options controls a generation run.
type Options struct {
	MultiChoice        bool
	NumQuestions       int
	MultiChoiceOptions int
}

// Stats summarizes pool usage for a run. MatchedRows counts only rows a
// match set newly marked, so RowsUsed is always MatchedRows plus
// DistractorRows.
type Stats struct {
	Questions        int
	MatchedRows      int
	DistractorRows   int
	DistractorRounds int
	RowsUsed         int
}

// Result holds the generated questions and run statistics.
type Result struct {
	Questions []question.Question
	Stats     Stats
}

// Generator builds questions from tables. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
	log verbose.Logger
}

// New creates a generator drawing randomness from rng. A nil rng is seeded
// from the clock.
func New(rng *rand.Rand, logger verbose.Logger) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, log: logger}
}

type compiledTemplate struct {
	tmpl   placeholder.Template
	fields []string
	answer string
}

// Generate checks the coarse size bounds, builds a pool from tbl and produces
// opts.NumQuestions questions. Any failure aborts the run without a partial result.
func (g *Generator) Generate(ctx context.Context, tbl *table.Table, templates []Template, opts Options) (Result, error) {
	if err := checkOptions(tbl.Len(), len(templates), opts); err != nil {
		return Result{}, err
	}
	compiled := make([]compiledTemplate, 0, len(templates))
	for i, tmpl := range templates {
		parsed, err := placeholder.Parse(tmpl.Format)
		if err != nil {
			return Result{}, fmt.Errorf("template %d: %w", i, err)
		}
		compiled = append(compiled, compiledTemplate{tmpl: parsed, fields: parsed.Fields(), answer: tmpl.AnswerColumn})
	}
	pool, err := NewPool(tbl, templates)
	if err != nil {
		return Result{}, fmt.Errorf("build row pool: %w", err)
	}
	g.log.Logf(verbose.StyleStep, "row pool: %d rows, columns %v", pool.Len(), pool.Columns())
	return g.generate(ctx, pool, compiled, opts)
}

// checkOptions runs the up-front checks. The row bound is coarse: grouped rows
// can still exhaust the pool later.
func checkOptions(rows, templates int, opts Options) error {
	if templates == 0 {
		return fmt.Errorf("%w: at least one template is required", question.ErrConfiguration)
	}
	if opts.NumQuestions < 1 {
		return fmt.Errorf("%w: number of questions must be at least 1, got %d", question.ErrConfiguration, opts.NumQuestions)
	}
	if opts.MultiChoice && (opts.MultiChoiceOptions < 1 || opts.MultiChoiceOptions > question.MaxOptions) {
		return fmt.Errorf("%w: multiple choice options must be between 1 and %d, got %d", question.ErrConfiguration, question.MaxOptions, opts.MultiChoiceOptions)
	}
	if opts.NumQuestions > rows {
		return fmt.Errorf("%w: %d questions, %d rows", ErrInsufficientData, opts.NumQuestions, rows)
	}
	if opts.MultiChoice && opts.NumQuestions*opts.MultiChoiceOptions > rows {
		return fmt.Errorf("%w: %d questions x %d options, %d rows", ErrInsufficientData, opts.NumQuestions, opts.MultiChoiceOptions, rows)
	}
	return nil
}

func (g *Generator) generate(ctx context.Context, pool *Pool, templates []compiledTemplate, opts Options) (Result, error) {
	questions := make([]question.Question, 0, opts.NumQuestions)
	var stats Stats
	for i := 0; i < opts.NumQuestions; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		tmpl := templates[g.rng.Intn(len(templates))]

		unused := pool.Unused()
		if len(unused) == 0 {
			return Result{}, fmt.Errorf("question %d: %w", i+1, ErrExhausted)
		}
		seed := unused[g.rng.Intn(len(unused))]
		values := pool.Values(seed, tmpl.fields)

		text, err := tmpl.tmpl.Render(values)
		if err != nil {
			return Result{}, fmt.Errorf("question %d: %w", i+1, err)
		}

		matches := pool.Match(values)
		answers := distinctValues(pool, matches, tmpl.answer)
		stats.MatchedRows += pool.Mark(matches...)

		var q question.Question
		if opts.MultiChoice {
			distractors, rows, rounds, err := g.backfill(pool, tmpl.answer, answers, opts.MultiChoiceOptions)
			if err != nil {
				return Result{}, fmt.Errorf("question %d: %w", i+1, err)
			}
			stats.DistractorRows += rows
			stats.DistractorRounds += rounds
			q, err = question.NewMultiChoice(text, answers, distractors)
			if err != nil {
				return Result{}, fmt.Errorf("question %d: %w", i+1, err)
			}
		} else {
			q, err = question.NewPlain(text, answers)
			if err != nil {
				return Result{}, fmt.Errorf("question %d: %w", i+1, err)
			}
		}
		g.log.Logf(verbose.StyleDefault, "question %d: seed row %d, %d matching rows, %d answers, %d options, %d rows used",
			i+1, seed, len(matches), len(answers), len(q.Options()), pool.UsedCount())
		questions = append(questions, q)
	}
	stats.Questions = len(questions)
	stats.RowsUsed = pool.UsedCount()
	g.log.Logf(verbose.StyleMetrics, "generated %d questions, %d of %d rows used", stats.Questions, stats.RowsUsed, pool.Len())
	return Result{Questions: questions, Stats: stats}, nil
}

// backfill samples distractors from unused rows whose answers are neither
// correct nor already chosen, until the question has options entries.
func (g *Generator) backfill(pool *Pool, column string, answers []string, options int) ([]string, int, int, error) {
	var distractors []string
	sampledRows := 0
	rounds := 0
	needed := options - len(answers)
	for needed > 0 {
		exclude := make(map[string]struct{}, len(answers)+len(distractors))
		for _, value := range answers {
			exclude[value] = struct{}{}
		}
		for _, value := range distractors {
			exclude[value] = struct{}{}
		}
		candidates := pool.Candidates(column, exclude)
		if len(candidates) < needed {
			return nil, 0, 0, fmt.Errorf("%w: need %d distractors, %d candidate rows", ErrExhausted, needed, len(candidates))
		}
		sampled := sampleWithoutReplacement(g.rng, candidates, needed)
		distractors = append(distractors, distinctValues(pool, sampled, column)...)
		sampledRows += pool.Mark(sampled...)
		rounds++
		needed = options - len(answers) - len(distractors)
	}
	return distractors, sampledRows, rounds, nil
}

// distinctValues returns the distinct values of column over rows in
// first-encountered order.
func distinctValues(pool *Pool, rows []int, column string) []string {
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		value := pool.Value(row, column)
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

// sampleWithoutReplacement picks n distinct elements of items.
func sampleWithoutReplacement(rng *rand.Rand, items []int, n int) []int {
	shuffled := append([]int(nil), items...)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:n]
}

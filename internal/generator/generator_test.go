package generator

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"tabquiz/internal/placeholder"
	"tabquiz/internal/question"
	"tabquiz/internal/table"
	"tabquiz/internal/verbose"
)

var capitalTemplate = Template{Format: "What is the capital of {country}?", AnswerColumn: "capital"}

func capitalsTable(t *testing.T) *table.Table {
	t.Helper()
	return mustTable(t, []string{"country", "capital", "continent"}, [][]string{
		{"France", "Paris", "Europe"},
		{"Japan", "Tokyo", "Asia"},
		{"Peru", "Lima", "South America"},
		{"Kenya", "Nairobi", "Africa"},
		{"Canada", "Ottawa", "North America"},
	})
}

func capitalOf(t *testing.T, tbl *table.Table) map[string]string {
	t.Helper()
	out := map[string]string{}
	for i := 0; i < tbl.Len(); i++ {
		row := tbl.Row(i)
		out[row["country"]] = row["capital"]
	}
	return out
}

func newTestGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)), verbose.Logger{})
}

// TestGenerateFreeTextScenario verifies three plain questions over five countries.
func TestGenerateFreeTextScenario(t *testing.T) {
	tbl := capitalsTable(t)
	capitals := capitalOf(t, tbl)
	for seed := int64(0); seed < 20; seed++ {
		result, err := newTestGenerator(seed).Generate(context.Background(), tbl, []Template{capitalTemplate}, Options{NumQuestions: 3})
		if err != nil {
			t.Fatalf("seed %d: generate: %v", seed, err)
		}
		if len(result.Questions) != 3 {
			t.Fatalf("seed %d: expected 3 questions, got %d", seed, len(result.Questions))
		}
		seen := map[string]bool{}
		for _, q := range result.Questions {
			if q.Kind() != question.KindPlain {
				t.Fatalf("seed %d: expected plain question", seed)
			}
			country := strings.TrimSuffix(strings.TrimPrefix(q.Text(), "What is the capital of "), "?")
			if seen[country] {
				t.Fatalf("seed %d: country %q asked twice", seed, country)
			}
			seen[country] = true
			answers := q.CorrectAnswers()
			if len(answers) != 1 || answers[0] != capitals[country] {
				t.Fatalf("seed %d: unexpected answers %v for %q", seed, answers, country)
			}
		}
		if result.Stats.RowsUsed != 3 {
			t.Fatalf("seed %d: expected 3 rows used, got %d", seed, result.Stats.RowsUsed)
		}
	}
}

// TestGenerateMultiChoiceScenario verifies one question with three distractors.
func TestGenerateMultiChoiceScenario(t *testing.T) {
	tbl := capitalsTable(t)
	capitals := capitalOf(t, tbl)
	known := map[string]bool{}
	for _, capital := range capitals {
		known[capital] = true
	}
	for seed := int64(0); seed < 20; seed++ {
		result, err := newTestGenerator(seed).Generate(context.Background(), tbl, []Template{capitalTemplate}, Options{
			MultiChoice:        true,
			NumQuestions:       1,
			MultiChoiceOptions: 4,
		})
		if err != nil {
			t.Fatalf("seed %d: generate: %v", seed, err)
		}
		q := result.Questions[0]
		if q.Kind() != question.KindMultiChoice {
			t.Fatalf("seed %d: expected multi choice", seed)
		}
		if len(q.CorrectAnswers()) != 1 || len(q.Distractors()) != 3 {
			t.Fatalf("seed %d: expected 1 answer and 3 distractors, got %v / %v", seed, q.CorrectAnswers(), q.Distractors())
		}
		distinct := map[string]bool{}
		for _, option := range q.Options() {
			if !known[option] {
				t.Fatalf("seed %d: option %q not from table", seed, option)
			}
			distinct[option] = true
		}
		if len(distinct) != 4 {
			t.Fatalf("seed %d: expected 4 distinct options, got %v", seed, q.Options())
		}
		if result.Stats.RowsUsed != 4 {
			t.Fatalf("seed %d: expected 4 rows used, got %d", seed, result.Stats.RowsUsed)
		}
	}
}

// TestGenerateInvariantsOnGroupedData checks answer and option invariants
// across many seeds on a table with repeated keys.
func TestGenerateInvariantsOnGroupedData(t *testing.T) {
	rows := make([][]string, 0, 60)
	for i := 0; i < 60; i++ {
		rows = append(rows, []string{
			"team" + strconv.Itoa(i%12),
			"city" + strconv.Itoa(i%7),
			"player" + strconv.Itoa(i%25),
		})
	}
	tbl := mustTable(t, []string{"team", "city", "player"}, rows)
	templates := []Template{
		{Format: "Who played for {team}?", AnswerColumn: "player"},
		{Format: "Which city hosts {team}?", AnswerColumn: "city"},
	}
	for seed := int64(0); seed < 30; seed++ {
		for _, multi := range []bool{false, true} {
			gen := newTestGenerator(seed)
			result, err := gen.Generate(context.Background(), tbl, templates, Options{
				MultiChoice:        multi,
				NumQuestions:       4,
				MultiChoiceOptions: 3,
			})
			if errors.Is(err, ErrExhausted) {
				continue
			}
			if err != nil {
				t.Fatalf("seed %d multi=%v: generate: %v", seed, multi, err)
			}
			for _, q := range result.Questions {
				answers := q.CorrectAnswers()
				if len(answers) == 0 {
					t.Fatalf("seed %d: empty answers", seed)
				}
				set := map[string]bool{}
				for _, option := range q.Options() {
					if set[option] {
						t.Fatalf("seed %d: duplicate option %q in %v", seed, option, q.Options())
					}
					set[option] = true
				}
				if len(set) > question.MaxOptions {
					t.Fatalf("seed %d: too many options", seed)
				}
			}
		}
	}
}

// TestGenerateUsedRowsAccounting verifies used rows equal matched plus sampled rows.
func TestGenerateUsedRowsAccounting(t *testing.T) {
	rows := make([][]string, 0, 30)
	for i := 0; i < 30; i++ {
		rows = append(rows, []string{"k" + strconv.Itoa(i), "v" + strconv.Itoa(i)})
	}
	tbl := mustTable(t, []string{"k", "v"}, rows)
	for seed := int64(0); seed < 10; seed++ {
		result, err := newTestGenerator(seed).Generate(context.Background(), tbl, []Template{{Format: "{k}?", AnswerColumn: "v"}}, Options{
			MultiChoice:        true,
			NumQuestions:       5,
			MultiChoiceOptions: 4,
		})
		if err != nil {
			t.Fatalf("seed %d: generate: %v", seed, err)
		}
		stats := result.Stats
		if stats.RowsUsed != stats.MatchedRows+stats.DistractorRows {
			t.Fatalf("seed %d: used %d != matched %d + distractors %d", seed, stats.RowsUsed, stats.MatchedRows, stats.DistractorRows)
		}
		if stats.RowsUsed != 20 {
			t.Fatalf("seed %d: expected 20 used rows, got %d", seed, stats.RowsUsed)
		}
	}
}

// TestGenerateUsedRowsAccountingOverlappingMatches verifies rows already used
// by an earlier question are not counted again when a later match set covers them.
func TestGenerateUsedRowsAccountingOverlappingMatches(t *testing.T) {
	rows := make([][]string, 0, 8)
	for i := 0; i < 8; i++ {
		continent := "Atlantis"
		if i >= 4 {
			continent = "Lemuria"
		}
		rows = append(rows, []string{"c" + strconv.Itoa(i), continent, "r" + strconv.Itoa(i)})
	}
	tbl := mustTable(t, []string{"country", "continent", "id"}, rows)
	templates := []Template{
		{Format: "Where is {country}?", AnswerColumn: "id"},
		{Format: "Name a place in {continent}", AnswerColumn: "id"},
	}
	overlaps := 0
	for seed := int64(0); seed < 100; seed++ {
		result, err := newTestGenerator(seed).Generate(context.Background(), tbl, templates, Options{NumQuestions: 2})
		if err != nil {
			t.Fatalf("seed %d: generate: %v", seed, err)
		}
		stats := result.Stats
		if stats.RowsUsed != stats.MatchedRows+stats.DistractorRows {
			t.Fatalf("seed %d: used %d != matched %d + distractors %d", seed, stats.RowsUsed, stats.MatchedRows, stats.DistractorRows)
		}
		answered := 0
		for _, q := range result.Questions {
			answered += len(q.CorrectAnswers())
		}
		if answered > stats.RowsUsed {
			overlaps++
		}
	}
	if overlaps == 0 {
		t.Fatalf("expected some seeds to match rows used by an earlier question")
	}
}

// TestGenerateGroupsAnswersBySharedFields verifies every row sharing the
// placeholder values contributes an answer, in table order.
func TestGenerateGroupsAnswersBySharedFields(t *testing.T) {
	tbl := mustTable(t, []string{"country", "city"}, [][]string{
		{"Spain", "Madrid"},
		{"Spain", "Barcelona"},
		{"Spain", "Madrid"},
		{"Spain", "Seville"},
	})
	result, err := newTestGenerator(5).Generate(context.Background(), tbl, []Template{{Format: "Name a city in {country}", AnswerColumn: "city"}}, Options{NumQuestions: 1})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	got := result.Questions[0].CorrectAnswers()
	want := []string{"Madrid", "Barcelona", "Seville"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if result.Stats.RowsUsed != 4 {
		t.Fatalf("expected all 4 rows used, got %d", result.Stats.RowsUsed)
	}
}

// TestGenerateMatchIncludesUsedRows verifies used rows still join the answer group.
func TestGenerateMatchIncludesUsedRows(t *testing.T) {
	tbl := mustTable(t, []string{"k", "v"}, [][]string{{"a", "x"}, {"a", "y"}, {"b", "z"}})
	templates := []Template{{Format: "{k}", AnswerColumn: "v"}}
	pool, err := NewPool(tbl, templates)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	pool.Mark(1, 2)
	parsed, err := placeholder.Parse(templates[0].Format)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	compiled := []compiledTemplate{{tmpl: parsed, fields: parsed.Fields(), answer: "v"}}
	result, err := newTestGenerator(1).generate(context.Background(), pool, compiled, Options{NumQuestions: 1})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := result.Questions[0].CorrectAnswers(); strings.Join(got, ",") != "x,y" {
		t.Fatalf("expected [x y], got %v", got)
	}
}

// TestGenerateDistractorDedupLoops verifies duplicate sampled answers trigger another round.
func TestGenerateDistractorDedupLoops(t *testing.T) {
	tbl := mustTable(t, []string{"k", "v"}, [][]string{
		{"k1", "P"},
		{"k2", "Q"},
		{"k3", "Q"},
		{"k4", "Q"},
		{"k5", "R"},
		{"k6", "S"},
	})
	sawExtraRound := false
	for seed := int64(0); seed < 200; seed++ {
		result, err := newTestGenerator(seed).Generate(context.Background(), tbl, []Template{{Format: "{k}", AnswerColumn: "v"}}, Options{
			MultiChoice:        true,
			NumQuestions:       1,
			MultiChoiceOptions: 3,
		})
		if errors.Is(err, ErrExhausted) {
			continue
		}
		if err != nil {
			t.Fatalf("seed %d: generate: %v", seed, err)
		}
		q := result.Questions[0]
		if len(q.Options()) != 3 {
			t.Fatalf("seed %d: expected 3 options, got %v", seed, q.Options())
		}
		if result.Stats.DistractorRounds > 1 {
			sawExtraRound = true
		}
	}
	if !sawExtraRound {
		t.Fatalf("expected at least one seed to need a second distractor round")
	}
}

// TestGenerateDistractorExhaustion verifies too few distinct answers fail.
func TestGenerateDistractorExhaustion(t *testing.T) {
	tbl := mustTable(t, []string{"k", "v"}, [][]string{{"k1", "P"}, {"k2", "Q"}, {"k3", "Q"}, {"k4", "Q"}})
	for seed := int64(0); seed < 10; seed++ {
		_, err := newTestGenerator(seed).Generate(context.Background(), tbl, []Template{{Format: "{k}", AnswerColumn: "v"}}, Options{
			MultiChoice:        true,
			NumQuestions:       1,
			MultiChoiceOptions: 3,
		})
		if !errors.Is(err, ErrExhausted) {
			t.Fatalf("seed %d: expected ErrExhausted, got %v", seed, err)
		}
	}
}

// TestGenerateExhaustionBoundary verifies N distinct rows cover N questions and
// losing one distinct key exhausts the pool mid-run.
func TestGenerateExhaustionBoundary(t *testing.T) {
	templates := []Template{{Format: "{k}", AnswerColumn: "v"}}
	opts := Options{MultiChoice: true, NumQuestions: 4, MultiChoiceOptions: 1}

	exact := mustTable(t, []string{"k", "v"}, [][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}, {"d", "4"}})
	if _, err := newTestGenerator(1).Generate(context.Background(), exact, templates, opts); err != nil {
		t.Fatalf("expected success with exactly enough rows, got %v", err)
	}

	grouped := mustTable(t, []string{"k", "v"}, [][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}, {"c", "4"}})
	_, err := newTestGenerator(1).Generate(context.Background(), grouped, templates, opts)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}

	short := mustTable(t, []string{"k", "v"}, [][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}})
	_, err = newTestGenerator(1).Generate(context.Background(), short, templates, opts)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

// TestGenerateInsufficientDataBeforeSampling verifies the pre-check consumes no randomness.
func TestGenerateInsufficientDataBeforeSampling(t *testing.T) {
	tbl := capitalsTable(t)
	cases := []Options{
		{NumQuestions: 6},
		{MultiChoice: true, NumQuestions: 2, MultiChoiceOptions: 3},
	}
	for _, opts := range cases {
		rng := rand.New(rand.NewSource(42))
		_, err := New(rng, verbose.Logger{}).Generate(context.Background(), tbl, []Template{capitalTemplate}, opts)
		if !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("%+v: expected ErrInsufficientData, got %v", opts, err)
		}
		if got, want := rng.Int63(), rand.New(rand.NewSource(42)).Int63(); got != want {
			t.Fatalf("%+v: expected rng untouched", opts)
		}
	}
}

// TestGenerateErrorsPropagate verifies configuration, column and format errors.
func TestGenerateErrorsPropagate(t *testing.T) {
	tbl := capitalsTable(t)
	gen := newTestGenerator(1)
	ctx := context.Background()

	if _, err := gen.Generate(ctx, tbl, nil, Options{NumQuestions: 1}); !errors.Is(err, question.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for no templates, got %v", err)
	}
	if _, err := gen.Generate(ctx, tbl, []Template{capitalTemplate}, Options{NumQuestions: 0}); !errors.Is(err, question.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for zero questions, got %v", err)
	}
	if _, err := gen.Generate(ctx, tbl, []Template{capitalTemplate}, Options{MultiChoice: true, NumQuestions: 1, MultiChoiceOptions: 27}); !errors.Is(err, question.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for 27 options, got %v", err)
	}
	if _, err := gen.Generate(ctx, tbl, []Template{{Format: "{flag}", AnswerColumn: "capital"}}, Options{NumQuestions: 1}); !errors.Is(err, table.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if _, err := gen.Generate(ctx, tbl, []Template{{Format: "{country", AnswerColumn: "capital"}}, Options{NumQuestions: 1}); !errors.Is(err, placeholder.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

// TestGenerateHonoursCancellation verifies a cancelled context aborts the run.
func TestGenerateHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestGenerator(1).Generate(ctx, capitalsTable(t), []Template{capitalTemplate}, Options{NumQuestions: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// TestGenerateDeterministicForSeed verifies equal seeds give equal questions.
func TestGenerateDeterministicForSeed(t *testing.T) {
	tbl := capitalsTable(t)
	opts := Options{MultiChoice: true, NumQuestions: 1, MultiChoiceOptions: 4}
	first, err := newTestGenerator(9).Generate(context.Background(), tbl, []Template{capitalTemplate}, opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := newTestGenerator(9).Generate(context.Background(), tbl, []Template{capitalTemplate}, opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first.Questions[0].Text() != second.Questions[0].Text() ||
		strings.Join(first.Questions[0].Options(), ",") != strings.Join(second.Questions[0].Options(), ",") {
		t.Fatalf("expected identical questions for identical seeds")
	}
}

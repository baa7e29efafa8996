package quiz

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"tabquiz/internal/question"
)

// ErrNoQuestions is returned when a quiz is started with nothing to ask.
var ErrNoQuestions = fmt.Errorf("%w: no questions provided for the quiz", question.ErrConfiguration)

// DefaultSeparator frames question headers and the final score.
const DefaultSeparator = "-----------"

// Options controls how a quiz is administered.
type Options struct {
	ScorePerQuestion int
	Separator        string
	FirstQuestionNum int
	// MaxAttempts bounds invalid answers per question; zero or less re-prompts forever.
	MaxAttempts int
}

// DefaultOptions returns the console defaults.
func DefaultOptions() Options {
	return Options{
		ScorePerQuestion: 1,
		Separator:        DefaultSeparator,
		FirstQuestionNum: 1,
	}
}

// Answered records the outcome of one asked question.
type Answered struct {
	Number   int
	Question question.Question
	Outcome  question.Outcome
	Points   int
}

// Result is the in-memory summary of a finished quiz.
type Result struct {
	Score    int
	Answered []Answered
}

// Correct counts the correctly answered questions.
func (r Result) Correct() int {
	count := 0
	for _, answered := range r.Answered {
		if answered.Outcome.Correct {
			count++
		}
	}
	return count
}

// Run asks every question in order through surface and totals the score.
func Run(ctx context.Context, questions []question.Question, surface question.Interaction, opts Options, rng *rand.Rand) (Result, error) {
	if len(questions) == 0 {
		return Result{}, ErrNoQuestions
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	result := Result{Answered: make([]Answered, 0, len(questions))}
	for i, q := range questions {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		number := opts.FirstQuestionNum + i
		header := fmt.Sprintf("%s\nQuestion %d\n%s\n", opts.Separator, number, opts.Separator)
		if err := surface.Write(header); err != nil {
			return result, fmt.Errorf("question %d: write header: %w", number, err)
		}
		outcome, err := question.AskPresented(question.Present(q, rng), surface, opts.MaxAttempts)
		if err != nil {
			return result, fmt.Errorf("question %d: %w", number, err)
		}
		points := 0
		if outcome.Correct {
			points = opts.ScorePerQuestion
		}
		result.Score += points
		result.Answered = append(result.Answered, Answered{Number: number, Question: q, Outcome: outcome, Points: points})
	}
	summary := fmt.Sprintf("%s\nYour score: %d\n%s\n", opts.Separator, result.Score, opts.Separator)
	if err := surface.Write(summary); err != nil {
		return result, fmt.Errorf("write score: %w", err)
	}
	return result, nil
}

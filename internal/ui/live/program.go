package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"

	"tabquiz/internal/question"
	"tabquiz/internal/quiz"
)

// ErrAborted is returned when the user leaves the quiz before finishing.
var ErrAborted = errors.New("quiz aborted")

// Run administers questions in a full-screen Bubble Tea program reading
// keys from in and drawing to out.
func Run(ctx context.Context, questions []question.Question, opts Options, rng *rand.Rand, in io.Reader, out io.Writer) (quiz.Result, error) {
	if len(questions) == 0 {
		return quiz.Result{}, quiz.ErrNoQuestions
	}
	model := NewModel(questions, opts, rng)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return quiz.Result{}, fmt.Errorf("live ui: %w", err)
	}
	finished, ok := final.(Model)
	if !ok {
		return quiz.Result{}, fmt.Errorf("live ui: unexpected model %T", final)
	}
	return finished.Result(), finished.Err()
}

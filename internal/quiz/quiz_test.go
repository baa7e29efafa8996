package quiz

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"tabquiz/internal/question"
	"tabquiz/internal/testutil"
)

func mustPlain(t *testing.T, text string, answers ...string) question.Question {
	t.Helper()
	q, err := question.NewPlain(text, answers)
	if err != nil {
		t.Fatalf("new plain: %v", err)
	}
	return q
}

// TestRunScoresAndFrames verifies headers, feedback and the final score.
func TestRunScoresAndFrames(t *testing.T) {
	questions := []question.Question{
		mustPlain(t, "Capital of France?", "Paris"),
		mustPlain(t, "Capital of Peru?", "Lima"),
		mustPlain(t, "Capital of Japan?", "Tokyo"),
	}
	script := testutil.NewScript("paris", "Quito", "TOKYO")
	opts := Options{ScorePerQuestion: 2, Separator: "---", FirstQuestionNum: 1}
	result, err := Run(context.Background(), questions, script, opts, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Score != 4 || result.Correct() != 2 {
		t.Fatalf("expected score 4 with 2 correct, got %d / %d", result.Score, result.Correct())
	}
	want := strings.Join([]string{
		"---", "Question 1", "---", "Capital of France?", "Your answer: Correct!",
		"---", "Question 2", "---", "Capital of Peru?", "Your answer: Incorrect! The answer was Lima",
		"---", "Question 3", "---", "Capital of Japan?", "Your answer: Correct!",
		"---", "Your score: 4", "---", "",
	}, "\n")
	if got := script.Transcript(); got != want {
		t.Fatalf("unexpected transcript:\n%s\nwant:\n%s", got, want)
	}
	if result.Answered[1].Points != 0 || result.Answered[1].Outcome.Input != "Quito" {
		t.Fatalf("unexpected second outcome %+v", result.Answered[1])
	}
}

// TestRunFirstQuestionNumber verifies numbering starts from the option.
func TestRunFirstQuestionNumber(t *testing.T) {
	script := testutil.NewScript("x")
	opts := DefaultOptions()
	opts.FirstQuestionNum = 7
	if _, err := Run(context.Background(), []question.Question{mustPlain(t, "Q?", "x")}, script, opts, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(script.Transcript(), "Question 7\n") {
		t.Fatalf("expected numbering from 7, got %q", script.Transcript())
	}
}

// TestRunNoQuestions verifies the configuration error.
func TestRunNoQuestions(t *testing.T) {
	_, err := Run(context.Background(), nil, testutil.NewScript(), DefaultOptions(), nil)
	if !errors.Is(err, ErrNoQuestions) || !errors.Is(err, question.ErrConfiguration) {
		t.Fatalf("expected ErrNoQuestions wrapping ErrConfiguration, got %v", err)
	}
}

// TestRunMultiChoiceByCode verifies options are answered by code.
func TestRunMultiChoiceByCode(t *testing.T) {
	q, err := question.NewMultiChoice("Capital of France?", []string{"Paris"}, []string{"Lima", "Tokyo"})
	if err != nil {
		t.Fatalf("new multi choice: %v", err)
	}
	rng := rand.New(rand.NewSource(3))
	presentation := question.Present(q, rand.New(rand.NewSource(3)))
	code := ""
	for _, option := range presentation.Options() {
		if option.Text == "Paris" {
			code = option.Code
		}
	}
	script := testutil.NewScript("z", strings.ToUpper(code))
	result, err := Run(context.Background(), []question.Question{q}, script, DefaultOptions(), rng)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Score != 1 {
		t.Fatalf("expected score 1, got %d", result.Score)
	}
	if !strings.Contains(script.Transcript(), "Please enter one of the options!") {
		t.Fatalf("expected retry hint, got %q", script.Transcript())
	}
}

// TestRunInputClosed verifies EOF aborts the quiz with the partial result.
func TestRunInputClosed(t *testing.T) {
	questions := []question.Question{mustPlain(t, "A?", "a"), mustPlain(t, "B?", "b")}
	result, err := Run(context.Background(), questions, testutil.NewScript("a"), DefaultOptions(), nil)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if len(result.Answered) != 1 || result.Score != 1 {
		t.Fatalf("expected one answered question, got %+v", result)
	}
}

// TestRunCancelled verifies the context is checked between questions.
func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, []question.Question{mustPlain(t, "A?", "a")}, testutil.NewScript("a"), DefaultOptions(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// TestConsoleReadLine verifies line endings and a final unterminated line.
func TestConsoleReadLine(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("first\r\nlast"), &out)
	line, err := console.ReadLine()
	if err != nil || line != "first" {
		t.Fatalf("expected first, got %q (%v)", line, err)
	}
	line, err = console.ReadLine()
	if !errors.Is(err, io.EOF) || line != "last" {
		t.Fatalf("expected last with EOF, got %q (%v)", line, err)
	}
	if err := console.Write("hello"); err != nil || out.String() != "hello" {
		t.Fatalf("unexpected write %q (%v)", out.String(), err)
	}
}

// TestConsoleDrivesRun verifies the console works as the quiz surface.
func TestConsoleDrivesRun(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("Paris\n"), &out)
	result, err := Run(context.Background(), []question.Question{mustPlain(t, "Capital of France?", "Paris")}, console, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Score != 1 || !strings.HasSuffix(out.String(), "Your score: 1\n-----------\n") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

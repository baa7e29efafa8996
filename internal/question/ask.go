package question

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
)

// ErrTooManyAttempts indicates a bounded ask ran out of attempts.
var ErrTooManyAttempts = errors.New("too many invalid answers")

// Interaction is the surface a question is asked through.
type Interaction interface {
	Write(text string) error
	ReadLine() (string, error)
}

// Option is a multiple choice entry with its single-letter code.
type Option struct {
	Code string
	Text string
}

// Outcome describes how one input resolved.
type Outcome struct {
	Input   string
	Chosen  string
	Correct bool
}

// Presentation is what the user sees for a question, with options already shuffled.
type Presentation struct {
	question Question
	options  []Option
}

// Present shuffles multi-choice options and assigns codes a, b, c...
func Present(q Question, rng *rand.Rand) Presentation {
	if q.kind != KindMultiChoice {
		return Presentation{question: q}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	all := q.Options()
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	options := make([]Option, 0, len(all))
	for i, text := range all {
		options = append(options, Option{Code: string(rune('a' + i)), Text: text})
	}
	return Presentation{question: q, options: options}
}

// Question returns the presented question.
func (p Presentation) Question() Question {
	return p.question
}

// Options returns the coded options; empty for plain questions.
func (p Presentation) Options() []Option {
	return append([]Option(nil), p.options...)
}

// Prompt renders the question text followed by one "code) option" line per option.
func (p Presentation) Prompt() string {
	if len(p.options) == 0 {
		return p.question.text
	}
	lines := make([]string, 0, len(p.options)+1)
	lines = append(lines, p.question.text)
	for _, option := range p.options {
		lines = append(lines, fmt.Sprintf("%s) %s", option.Code, option.Text))
	}
	return strings.Join(lines, "\n")
}

// Resolve classifies one input. ok is false when a multi-choice input names
// neither an option code nor an option text.
func (p Presentation) Resolve(input string) (Outcome, bool) {
	if p.question.kind != KindMultiChoice {
		return Outcome{Input: input, Chosen: input, Correct: p.question.IsCorrect(input)}, true
	}
	normalized := NormalizeAnswerText(input)
	for _, option := range p.options {
		if option.Code == normalized {
			return Outcome{Input: input, Chosen: option.Text, Correct: p.isCorrectOption(option.Text)}, true
		}
	}
	for _, option := range p.options {
		if NormalizeAnswerText(option.Text) == normalized {
			return Outcome{Input: input, Chosen: option.Text, Correct: p.question.IsCorrect(option.Text)}, true
		}
	}
	return Outcome{Input: input}, false
}

// isCorrectOption compares an option to the correct answers exactly.
func (p Presentation) isCorrectOption(text string) bool {
	for _, answer := range p.question.answers {
		if answer == text {
			return true
		}
	}
	return false
}

// Feedback returns the line shown after an answer.
func (p Presentation) Feedback(outcome Outcome) string {
	if outcome.Correct {
		return "Correct!"
	}
	return fmt.Sprintf("Incorrect! The answer was %s", p.question.answers[0])
}

// Ask presents q, reads answers until one is valid and returns 1 when it is
// correct and 0 otherwise. maxAttempts <= 0 re-prompts without limit.
func Ask(q Question, surface Interaction, rng *rand.Rand, maxAttempts int) (int, error) {
	presentation := Present(q, rng)
	outcome, err := AskPresented(presentation, surface, maxAttempts)
	if err != nil {
		return 0, err
	}
	if outcome.Correct {
		return 1, nil
	}
	return 0, nil
}

// AskPresented runs the ask loop for an already built presentation.
func AskPresented(p Presentation, surface Interaction, maxAttempts int) (Outcome, error) {
	if err := surface.Write(p.Prompt() + "\n"); err != nil {
		return Outcome{}, fmt.Errorf("write question: %w", err)
	}
	for attempt := 1; ; attempt++ {
		if err := surface.Write("Your answer: "); err != nil {
			return Outcome{}, fmt.Errorf("write prompt: %w", err)
		}
		line, readErr := surface.ReadLine()
		if readErr != nil && !(errors.Is(readErr, io.EOF) && line != "") {
			return Outcome{}, fmt.Errorf("read answer: %w", readErr)
		}
		outcome, ok := p.Resolve(line)
		if ok {
			if err := surface.Write(p.Feedback(outcome) + "\n"); err != nil {
				return Outcome{}, fmt.Errorf("write feedback: %w", err)
			}
			return outcome, nil
		}
		if readErr != nil {
			return Outcome{}, fmt.Errorf("read answer: %w", readErr)
		}
		if maxAttempts > 0 && attempt >= maxAttempts {
			return Outcome{}, fmt.Errorf("%w: %d attempts", ErrTooManyAttempts, attempt)
		}
		if err := surface.Write("Please enter one of the options!\n"); err != nil {
			return Outcome{}, fmt.Errorf("write retry hint: %w", err)
		}
	}
}

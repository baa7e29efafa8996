package question

import (
	"errors"
	"fmt"
)

// MaxOptions is the number of single-letter option codes available.
const MaxOptions = 26

// ErrConfiguration indicates a question or quiz was configured with invalid counts.
var ErrConfiguration = errors.New("invalid quiz configuration")

// Kind tags the question variant.
type Kind string

const (
	// KindPlain is answered with free text.
	KindPlain Kind = "plain"
	// KindMultiChoice is answered by picking one of the listed options.
	KindMultiChoice Kind = "multi_choice"
)

// Question is an immutable quiz question with one or more correct answers.
// Multi-choice questions also carry distractors.
type Question struct {
	kind        Kind
	text        string
	answers     []string
	distractors []string
}

// NewPlain builds a free-text question.
func NewPlain(text string, answers []string) (Question, error) {
	answers = uniqueKeepOrder(answers)
	if len(answers) == 0 {
		return Question{}, fmt.Errorf("%w: question %q has no correct answers", ErrConfiguration, text)
	}
	return Question{kind: KindPlain, text: text, answers: answers}, nil
}

// NewMultiChoice builds a multiple choice question. The combined number of
// correct answers and distractors must not exceed MaxOptions.
func NewMultiChoice(text string, answers, distractors []string) (Question, error) {
	answers = uniqueKeepOrder(answers)
	distractors = uniqueKeepOrder(distractors)
	if len(answers) == 0 {
		return Question{}, fmt.Errorf("%w: question %q has no correct answers", ErrConfiguration, text)
	}
	if total := len(answers) + len(distractors); total > MaxOptions {
		return Question{}, fmt.Errorf("%w: combined length of correct and incorrect answer lists must be %d or less, got %d", ErrConfiguration, MaxOptions, total)
	}
	correct := make(map[string]struct{}, len(answers))
	for _, answer := range answers {
		correct[answer] = struct{}{}
	}
	for _, distractor := range distractors {
		if _, ok := correct[distractor]; ok {
			return Question{}, fmt.Errorf("%w: distractor %q is also a correct answer", ErrConfiguration, distractor)
		}
	}
	return Question{kind: KindMultiChoice, text: text, answers: answers, distractors: distractors}, nil
}

// Kind returns the question variant.
func (q Question) Kind() Kind {
	return q.kind
}

// Text returns the rendered question text.
func (q Question) Text() string {
	return q.text
}

// CorrectAnswers returns a copy of the correct answers in derivation order.
func (q Question) CorrectAnswers() []string {
	return append([]string(nil), q.answers...)
}

// Distractors returns a copy of the incorrect options.
func (q Question) Distractors() []string {
	return append([]string(nil), q.distractors...)
}

// Options returns correct answers followed by distractors.
func (q Question) Options() []string {
	out := make([]string, 0, len(q.answers)+len(q.distractors))
	out = append(out, q.answers...)
	return append(out, q.distractors...)
}

// IsCorrect reports whether value matches a correct answer, ignoring case
// and surrounding whitespace.
func (q Question) IsCorrect(value string) bool {
	normalized := NormalizeAnswerText(value)
	for _, answer := range q.answers {
		if NormalizeAnswerText(answer) == normalized {
			return true
		}
	}
	return false
}

// uniqueKeepOrder removes duplicates while preserving the original order.
func uniqueKeepOrder(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

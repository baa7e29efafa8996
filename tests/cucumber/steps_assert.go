//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"reflect"
	"strings"

	"tabquiz/internal/question"
)

// theExitCodeIs asserts the exact CLI exit code.
func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) theQuestionSetHas(path string, count int) error {
	set, err := question.LoadSet(path)
	if err != nil {
		return err
	}
	if len(set.Questions) != count {
		return fmt.Errorf("expected %d questions, got %d", count, len(set.Questions))
	}
	return nil
}

// everyQuestionOffers checks answers plus distractors per question.
func (s *featureState) everyQuestionOffers(path string, count int) error {
	set, err := question.LoadSet(path)
	if err != nil {
		return err
	}
	for _, record := range set.Questions {
		if got := len(record.CorrectAnswers) + len(record.Distractors); got != count {
			return fmt.Errorf("question %q offers %d options, want %d", record.Prompt, got, count)
		}
	}
	return nil
}

// everyQuestionUsesDifferentRow checks that no question text repeats.
func (s *featureState) everyQuestionUsesDifferentRow(path string) error {
	set, err := question.LoadSet(path)
	if err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, record := range set.Questions {
		if seen[record.Prompt] {
			return fmt.Errorf("question %q was asked twice", record.Prompt)
		}
		seen[record.Prompt] = true
	}
	return nil
}

func (s *featureState) theQuestionSetsAreIdentical(first, second string) error {
	a, err := question.LoadSet(first)
	if err != nil {
		return err
	}
	b, err := question.LoadSet(second)
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(a.Questions, b.Questions) {
		return fmt.Errorf("question sets differ:\n%+v\n%+v", a.Questions, b.Questions)
	}
	return nil
}

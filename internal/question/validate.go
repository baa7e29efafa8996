package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question set.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question set validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSet fills in missing kinds and validates a set. Prompts, answers
// and distractors are kept exactly as written, since generated values can be
// empty or differ only in whitespace.
func NormalizeSet(set Set) (Set, error) {
	collector := &issueCollector{}
	if set.Version == 0 {
		collector.add("version", "is required")
	} else if set.Version != SetVersion {
		collector.add("version", fmt.Sprintf("unsupported version %d", set.Version))
	}
	set.ID = strings.TrimSpace(set.ID)
	if len(set.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	questions := make([]Record, len(set.Questions))
	for i, record := range set.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if record.Kind == "" {
			record.Kind = KindPlain
			if len(record.Distractors) > 0 {
				record.Kind = KindMultiChoice
			}
		}
		switch record.Kind {
		case KindPlain:
			if len(record.Distractors) > 0 {
				collector.add(prefix+".distractors", "only allowed for multi_choice questions")
			}
		case KindMultiChoice:
		default:
			collector.add(prefix+".kind", fmt.Sprintf("unsupported kind %q", record.Kind))
		}

		if strings.TrimSpace(record.Prompt) == "" {
			collector.add(prefix+".question", "is required")
		}

		record.CorrectAnswers = copyStrings(record.CorrectAnswers)
		if len(record.CorrectAnswers) == 0 {
			collector.add(prefix+".correct_answers", "must include at least one entry")
		}
		correct := make(map[string]struct{}, len(record.CorrectAnswers))
		for _, answer := range record.CorrectAnswers {
			correct[answer] = struct{}{}
		}

		record.Distractors = copyStrings(record.Distractors)
		for distractorIndex, distractor := range record.Distractors {
			if _, ok := correct[distractor]; ok {
				field := fmt.Sprintf("%s.distractors[%d]", prefix, distractorIndex)
				collector.add(field, fmt.Sprintf("%q is also a correct answer", distractor))
			}
		}
		if total := len(uniqueKeepOrder(record.CorrectAnswers)) + len(uniqueKeepOrder(record.Distractors)); total > MaxOptions {
			collector.add(prefix, fmt.Sprintf("has %d options, at most %d are allowed", total, MaxOptions))
		}
		questions[i] = record
	}

	if err := collector.result(); err != nil {
		return Set{}, err
	}
	set.Questions = questions
	return set, nil
}

func copyStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}

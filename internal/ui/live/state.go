package live

import "tabquiz/internal/question"

// RowStatus tracks where a question is in the quiz.
type RowStatus int

const (
	StatusPending RowStatus = iota
	StatusCorrect
	StatusIncorrect
)

// QuestionRow holds UI state for a single question.
type QuestionRow struct {
	Index    int
	Number   int
	Text     string
	Expected string
	Status   RowStatus
	Attempts int
	Outcome  question.Outcome
	Points   int
}

// State captures the live UI state for a quiz.
type State struct {
	Title     string
	Current   int
	Score     int
	Hint      string
	LastEvent string
	Done      bool
	Aborted   bool
	Rows      []QuestionRow
}

// Answered counts questions with a recorded outcome.
func (s State) Answered() int {
	count := 0
	for _, row := range s.Rows {
		if row.Status != StatusPending {
			count++
		}
	}
	return count
}

package live

import "tabquiz/internal/question"

// EventKind identifies the type of quiz UI event.
type EventKind int

const (
	// EventInvalid records input that named no option.
	EventInvalid EventKind = iota
	// EventAnswered records a resolved answer.
	EventAnswered
	// EventAborted signals the user left the quiz early.
	EventAborted
)

// Event carries a UI update payload.
type Event struct {
	Kind     EventKind
	Index    int
	Input    string
	Outcome  question.Outcome
	Feedback string
	Points   int
}

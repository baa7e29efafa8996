package live

import "tabquiz/internal/question"

// retryHint matches the console prompt for unrecognized options.
const retryHint = "Please enter one of the options!"

// NewState builds the initial state, numbering questions from first.
func NewState(title string, questions []question.Question, first int) State {
	rows := make([]QuestionRow, 0, len(questions))
	for i, q := range questions {
		rows = append(rows, QuestionRow{
			Index:    i,
			Number:   first + i,
			Text:     q.Text(),
			Expected: q.CorrectAnswers()[0],
		})
	}
	return State{Title: title, Rows: rows, Done: len(rows) == 0}
}

// Reduce applies a quiz event to the UI state.
func Reduce(state State, event Event) State {
	if state.Done {
		return state
	}
	switch event.Kind {
	case EventAborted:
		state.Done = true
		state.Aborted = true
		state.Hint = ""
		state.LastEvent = "Quiz aborted"
		return state
	case EventInvalid:
		if !validIndex(state, event.Index) {
			return state
		}
		state.Rows = cloneRows(state.Rows)
		state.Rows[event.Index].Attempts++
		state.Hint = retryHint
		return state
	case EventAnswered:
		if !validIndex(state, event.Index) {
			return state
		}
		state.Rows = cloneRows(state.Rows)
		row := &state.Rows[event.Index]
		row.Attempts++
		row.Outcome = event.Outcome
		row.Points = event.Points
		if event.Outcome.Correct {
			row.Status = StatusCorrect
		} else {
			row.Status = StatusIncorrect
		}
		state.Score += event.Points
		state.Hint = ""
		state.LastEvent = event.Feedback
		state.Current = event.Index + 1
		if state.Current >= len(state.Rows) {
			state.Done = true
		}
	}
	return state
}

func validIndex(state State, index int) bool {
	return index >= 0 && index < len(state.Rows) && index == state.Current
}

func cloneRows(rows []QuestionRow) []QuestionRow {
	return append([]QuestionRow(nil), rows...)
}

package report

import (
	"math/rand"
	"time"

	"tabquiz/internal/question"
)

// DefaultTitle heads a worksheet when none is given.
const DefaultTitle = "Quiz"

// Sheet is a printable rendering of a question set with its answer key.
type Sheet struct {
	Title       string
	Source      string
	GeneratedAt time.Time
	Questions   []SheetQuestion
}

// SheetQuestion is one numbered entry with options already coded.
type SheetQuestion struct {
	Number  int
	Text    string
	Options []question.Option
	Answers []string
}

// BuildSheet numbers questions from first and shuffles multi-choice options
// with rng so the sheet matches what a console quiz would show.
func BuildSheet(title, source string, generatedAt time.Time, questions []question.Question, first int, rng *rand.Rand) Sheet {
	if title == "" {
		title = DefaultTitle
	}
	sheet := Sheet{Title: title, Source: source, GeneratedAt: generatedAt}
	for i, q := range questions {
		presentation := question.Present(q, rng)
		sheet.Questions = append(sheet.Questions, SheetQuestion{
			Number:  first + i,
			Text:    q.Text(),
			Options: presentation.Options(),
			Answers: answerKey(q, presentation.Options()),
		})
	}
	return sheet
}

// answerKey lists correct answers, prefixed by their option code when coded.
func answerKey(q question.Question, options []question.Option) []string {
	correct := q.CorrectAnswers()
	if len(options) == 0 {
		return correct
	}
	var out []string
	for _, option := range options {
		for _, answer := range correct {
			if option.Text == answer {
				out = append(out, formatOption(option))
			}
		}
	}
	return out
}

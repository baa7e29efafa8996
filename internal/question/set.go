package question

import (
	"time"

	"github.com/google/uuid"
)

// SetVersion is the current question set schema version.
const SetVersion = 1

// Set is a generated quiz saved to disk so it can be replayed.
type Set struct {
	Version     int       `json:"version" yaml:"version"`
	ID          string    `json:"id" yaml:"id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Source      string    `json:"source,omitempty" yaml:"source,omitempty"`
	Questions   []Record  `json:"questions" yaml:"questions"`
}

// Record is the serialized form of a Question.
type Record struct {
	Kind           Kind     `json:"kind" yaml:"kind"`
	Prompt         string   `json:"question" yaml:"question"`
	CorrectAnswers []string `json:"correct_answers" yaml:"correct_answers"`
	Distractors    []string `json:"distractors,omitempty" yaml:"distractors,omitempty"`
}

// NewSet wraps questions in a set with a fresh id.
func NewSet(questions []Question, source string, now time.Time) Set {
	records := make([]Record, 0, len(questions))
	for _, q := range questions {
		records = append(records, RecordOf(q))
	}
	return Set{
		Version:     SetVersion,
		ID:          uuid.NewString(),
		GeneratedAt: now.UTC(),
		Source:      source,
		Questions:   records,
	}
}

// RecordOf converts a question into its serialized form.
func RecordOf(q Question) Record {
	return Record{
		Kind:           q.kind,
		Prompt:         q.text,
		CorrectAnswers: q.CorrectAnswers(),
		Distractors:    q.Distractors(),
	}
}

// Build converts the records back into questions.
func (s Set) Build() ([]Question, error) {
	out := make([]Question, 0, len(s.Questions))
	for _, record := range s.Questions {
		q, err := record.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// Build converts a record into a question.
func (r Record) Build() (Question, error) {
	if r.Kind == KindMultiChoice {
		return NewMultiChoice(r.Prompt, r.CorrectAnswers, r.Distractors)
	}
	return NewPlain(r.Prompt, r.CorrectAnswers)
}

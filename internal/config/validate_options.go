package config

import (
	"fmt"

	"tabquiz/internal/question"
	"tabquiz/internal/spec"
)

func validateOptions(opts spec.OptionsConfig, add issueAdder) {
	if opts.NumQuestions < 1 {
		add("options.num_questions", "must be >= 1")
	}
	if opts.MultiChoiceOptions < 1 || opts.MultiChoiceOptions > question.MaxOptions {
		add("options.multi_choice_options", fmt.Sprintf("must be between 1 and %d", question.MaxOptions))
	}
	if opts.ScorePerQuestion < 0 {
		add("options.score_per_question", "must be >= 0")
	}
	if opts.FirstQuestionNum < 0 {
		add("options.first_question_num", "must be >= 0")
	}
	if opts.MaxAttempts < 0 {
		add("options.max_attempts", "must be >= 0")
	}
}

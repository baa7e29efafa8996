package report

import (
	"fmt"
	"time"

	"tabquiz/internal/question"
)

func formatOption(option question.Option) string {
	return fmt.Sprintf("%s) %s", option.Code, option.Text)
}

func formatGeneratedAt(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format("2006-01-02 15:04 MST")
}

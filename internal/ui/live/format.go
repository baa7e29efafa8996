package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// formatNumber formats a question number for the summary table.
func formatNumber(number int) string {
	if number >= 0 && number < 10 {
		return "Q0" + strconv.Itoa(number)
	}
	return "Q" + strconv.Itoa(number)
}

// formatQuestionText truncates question text for display.
func formatQuestionText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if limit <= 3 || len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

// statusLabel names a row status.
func statusLabel(status RowStatus) string {
	switch status {
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return "skipped"
	}
}

// formatStatus renders a status string for a row.
func formatStatus(row QuestionRow, noColor bool) string {
	return stylize(statusLabel(row.Status), noColor, statusColor(row.Status))
}

func statusColor(status RowStatus) lipgloss.Color {
	switch status {
	case StatusCorrect:
		return lipgloss.Color("42")
	case StatusIncorrect:
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("246")
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

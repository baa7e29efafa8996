package live

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the quiz title and progress line.
func renderHeader(state State, noColor bool) string {
	line := state.Title
	if len(state.Rows) > 0 && !state.Done {
		line += " | Question " + fmtInt(state.Current+1) + " of " + fmtInt(len(state.Rows))
	}
	line += " | Score: " + fmtInt(state.Score)
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderPrompt renders the current question with its coded options.
func renderPrompt(prompt, separator string, number int, noColor bool) string {
	lines := []string{
		separator,
		stylize("Question "+fmtInt(number), noColor, lipgloss.Color("252")),
		separator,
		prompt,
	}
	return strings.Join(lines, "\n")
}

// renderFeedback renders the previous answer's feedback and any retry hint.
func renderFeedback(state State, noColor bool) string {
	var lines []string
	if state.LastEvent != "" {
		color := lipgloss.Color("42")
		if strings.HasPrefix(state.LastEvent, "Incorrect") {
			color = lipgloss.Color("220")
		}
		lines = append(lines, stylize(state.LastEvent, noColor, color))
	}
	if state.Hint != "" {
		lines = append(lines, stylize(state.Hint, noColor, lipgloss.Color("196")))
	}
	return strings.Join(lines, "\n")
}

// renderScore renders the closing score line.
func renderScore(state State, separator string) string {
	return strings.Join([]string{separator, "Your score: " + fmtInt(state.Score), separator}, "\n")
}

// renderFooter renders key help.
func renderFooter(state State, noColor bool) string {
	help := "enter: submit | esc: quit"
	if state.Done {
		help = "enter: exit"
	}
	return stylize(help, noColor, lipgloss.Color("244"))
}

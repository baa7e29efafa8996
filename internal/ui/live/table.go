package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// defaultColumns returns the summary table columns.
func defaultColumns() []table.Column {
	return columnsForWidth(0)
}

// columnsForWidth sizes the question column to the terminal width.
func columnsForWidth(width int) []table.Column {
	questionWidth := 44
	if width > 0 {
		questionWidth = max(width-4-12-20-10-8, 16)
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: questionWidth},
		{Title: "Your answer", Width: 20},
		{Title: "Answer", Width: 12},
		{Title: "Result", Width: 10},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, questionWidth int, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatNumber(row.Number),
			formatQuestionText(row.Text, questionWidth),
			row.Outcome.Chosen,
			row.Expected,
			formatStatus(row, noColor),
		})
	}
	return rows
}

// summaryHeight keeps the table tall enough for every row plus its header.
func summaryHeight(state State) int {
	return len(state.Rows) + 1
}

func fmtInt(value int) string {
	return strconv.Itoa(value)
}

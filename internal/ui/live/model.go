package live

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabquiz/internal/question"
	"tabquiz/internal/quiz"
)

// Model renders an interactive quiz using Bubble Tea.
type Model struct {
	state         State
	questions     []question.Question
	presentations []question.Presentation
	input         textinput.Model
	summary       table.Model
	quiz          quiz.Options
	noColor       bool
	questionWidth int
	err           error
}

// Options configures the live UI model.
type Options struct {
	Title   string
	Quiz    quiz.Options
	NoColor bool
}

// NewModel presents every question up front so option codes stay stable
// for the whole session.
func NewModel(questions []question.Question, opts Options, rng *rand.Rand) Model {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	title := opts.Title
	if title == "" {
		title = "tabquiz"
	}
	presentations := make([]question.Presentation, 0, len(questions))
	for _, q := range questions {
		presentations = append(presentations, question.Present(q, rng))
	}

	input := textinput.New()
	input.Prompt = "Your answer: "
	input.CharLimit = 256
	input.Focus()

	state := NewState(title, questions, opts.Quiz.FirstQuestionNum)
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(summaryHeight(state)),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		state:         state,
		questions:     append([]question.Question(nil), questions...),
		presentations: presentations,
		input:         input,
		summary:       t,
		quiz:          opts.Quiz,
		noColor:       opts.NoColor,
		questionWidth: defaultColumns()[1].Width,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		columns := columnsForWidth(typed.Width)
		m.questionWidth = columns[1].Width
		m.summary.SetColumns(columns)
		m.summary.SetWidth(typed.Width)
		m.summary.SetRows(rowsForState(m.state, m.questionWidth, m.noColor))
		return m, nil
	case tea.KeyMsg:
		switch typed.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if !m.state.Done {
				m.state = Reduce(m.state, Event{Kind: EventAborted})
				m.err = ErrAborted
			}
			return m, tea.Quit
		case tea.KeyEnter:
			if m.state.Done {
				return m, tea.Quit
			}
			return m.submit()
		}
	}
	if m.state.Done {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit resolves the typed answer for the current question.
func (m Model) submit() (tea.Model, tea.Cmd) {
	index := m.state.Current
	presentation := m.presentations[index]
	input := m.input.Value()
	m.input.SetValue("")

	outcome, ok := presentation.Resolve(input)
	if !ok {
		m.state = Reduce(m.state, Event{Kind: EventInvalid, Index: index, Input: input})
		attempts := m.state.Rows[index].Attempts
		if m.quiz.MaxAttempts > 0 && attempts >= m.quiz.MaxAttempts {
			m.err = fmt.Errorf("question %d: %w: %d attempts", m.state.Rows[index].Number, question.ErrTooManyAttempts, attempts)
			return m, tea.Quit
		}
		return m, nil
	}
	points := 0
	if outcome.Correct {
		points = m.quiz.ScorePerQuestion
	}
	m.state = Reduce(m.state, Event{
		Kind:     EventAnswered,
		Index:    index,
		Input:    input,
		Outcome:  outcome,
		Feedback: presentation.Feedback(outcome),
		Points:   points,
	})
	if m.state.Done {
		m.input.Blur()
		m.summary.SetRows(rowsForState(m.state, m.questionWidth, m.noColor))
	}
	return m, nil
}

// View renders the live UI.
func (m Model) View() string {
	header := renderHeader(m.state, m.noColor)
	feedback := renderFeedback(m.state, m.noColor)
	footer := renderFooter(m.state, m.noColor)
	if m.state.Done {
		return lipgloss.JoinVertical(lipgloss.Left, header, feedback, m.summary.View(), renderScore(m.state, m.quiz.Separator), footer)
	}
	row := m.state.Rows[m.state.Current]
	prompt := renderPrompt(m.presentations[m.state.Current].Prompt(), m.quiz.Separator, row.Number, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, prompt, feedback, m.input.View(), footer)
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Err reports why the session ended early, if it did.
func (m Model) Err() error {
	return m.err
}

// Result converts answered rows into a quiz result.
func (m Model) Result() quiz.Result {
	result := quiz.Result{Score: m.state.Score}
	for _, row := range m.state.Rows {
		if row.Status == StatusPending {
			continue
		}
		result.Answered = append(result.Answered, quiz.Answered{
			Number:   row.Number,
			Question: m.questions[row.Index],
			Outcome:  row.Outcome,
			Points:   row.Points,
		})
	}
	return result
}

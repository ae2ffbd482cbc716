// Package tui provides the Bubble Tea interface for the recommendation quiz.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"speechbench/internal/app/recommend"
	"speechbench/internal/app/render"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	stepStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1).
			MarginBottom(1)
)

// QuizModel walks the three quiz questions and shows the top providers
type QuizModel struct {
	quiz     *recommend.Quiz
	cursor   int
	err      error
	quitting bool
}

// NewQuizModel wraps a quiz for interactive use
func NewQuizModel(q *recommend.Quiz) QuizModel {
	return QuizModel{quiz: q}
}

// Init implements tea.Model
func (m QuizModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "r":
		m.quiz.Reset()
		m.cursor = 0
		m.err = nil
		return m, nil
	}

	question, ok := m.quiz.Current()
	if !ok {
		return m, nil
	}

	switch s := key.String(); s {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(question.Options)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.choose(question.Options[m.cursor].Tag)
	default:
		if len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(question.Options) {
			m.choose(question.Options[s[0]-'1'].Tag)
		}
	}

	return m, nil
}

func (m *QuizModel) choose(tag string) {
	m.err = m.quiz.Answer(tag)
	m.cursor = 0
}

// View implements tea.Model
func (m QuizModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Find your speech AI provider"))
	b.WriteString("\n\n")

	if question, ok := m.quiz.Current(); ok {
		b.WriteString(stepStyle.Render(fmt.Sprintf("Question %d of %d", question.Step, len(recommend.Questions()))))
		b.WriteString("\n")
		b.WriteString(question.Question)
		b.WriteString("\n\n")

		for i, o := range question.Options {
			line := fmt.Sprintf("%d. %s", i+1, o.Label)
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString(" " + descStyle.Render(o.Description) + "\n")
		}
		if m.err != nil {
			b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ move • enter select • 1-5 pick • r restart • q quit"))
		return b.String()
	}

	b.WriteString("Your top matches\n\n")
	for i, r := range m.quiz.Results() {
		card := fmt.Sprintf("%d. %s (%s)  score %s\n%s",
			i+1, r.Provider.Name, r.Provider.Modality, render.Score(r.Score), descStyle.Render(r.Provider.Description))
		b.WriteString(cardStyle.Render(card))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("r restart • q quit"))
	return b.String()
}

// Quiz returns the underlying quiz state
func (m QuizModel) Quiz() *recommend.Quiz {
	return m.quiz
}

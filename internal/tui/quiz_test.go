package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speechbench/internal/app/catalog"
	"speechbench/internal/app/recommend"
)

func press(t *testing.T, m QuizModel, keys ...tea.KeyMsg) QuizModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(QuizModel)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func newModel() QuizModel {
	return NewQuizModel(recommend.NewQuiz(catalog.Default(), 3))
}

func TestQuizModel_Navigation(t *testing.T) {
	m := newModel()
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "What are you building?")

	m = press(t, m, up)
	assert.Equal(t, 0, m.cursor, "cursor stays at the top")

	m = press(t, m, down, down, down, down, down, down)
	assert.Equal(t, 4, m.cursor, "cursor stops at the last option")

	m = press(t, m, enter)
	assert.Equal(t, recommend.StateQuestion2, m.Quiz().State())
	assert.Equal(t, recommend.UseCaseBudget, m.Quiz().Answers().UseCase)
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), "What is your top priority?")
}

func TestQuizModel_NumberKeysToResults(t *testing.T) {
	m := newModel()

	// budget, price, high
	m = press(t, m, runes("5"), runes("3"), runes("3"))
	require.True(t, m.Quiz().Done())

	results := m.Quiz().Results()
	require.Len(t, results, 3)
	assert.Equal(t, "kokoro", results[0].Provider.ID)

	view := m.View()
	assert.Contains(t, view, "Your top matches")
	assert.Contains(t, view, "Kokoro")

	// Option keys do nothing once results are shown
	m = press(t, m, runes("1"), enter)
	assert.True(t, m.Quiz().Done())
}

func TestQuizModel_OutOfRangeNumberIgnored(t *testing.T) {
	m := newModel()
	m = press(t, m, runes("1"))
	require.Equal(t, recommend.StateQuestion2, m.Quiz().State())

	m = press(t, m, runes("5"))
	assert.Equal(t, recommend.StateQuestion2, m.Quiz().State(), "question 2 has three options")
}

func TestQuizModel_Reset(t *testing.T) {
	m := newModel()
	m = press(t, m, runes("1"), runes("2"), runes("r"))

	assert.Equal(t, recommend.StateQuestion1, m.Quiz().State())
	assert.Equal(t, recommend.Answers{}, m.Quiz().Answers())
}

func TestQuizModel_Quit(t *testing.T) {
	m := newModel()
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestQuizModel_IgnoresOtherMessages(t *testing.T) {
	m := newModel()
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, recommend.StateQuestion1, next.(QuizModel).Quiz().State())
}

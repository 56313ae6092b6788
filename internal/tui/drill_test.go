package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertrainer/trainer"
)

func newTestModel(t *testing.T) *DrillModel {
	t.Helper()
	return NewDrillModel(log.New(io.Discard))
}

func press(m *DrillModel, key string) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m.Update(msg)
}

func TestTopicMenuNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Equal(t, statePickTopic, m.state)

	// First item drills a random preflop topic
	press(m, "enter")
	require.Equal(t, statePickDifficulty, m.state)
	require.NotNil(t, m.selection.Street)
	assert.Equal(t, trainer.Preflop, *m.selection.Street)
}

func TestTopicMenuSelectsSpecificTopic(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "j") // move to the first concrete topic
	press(m, "enter")

	require.Equal(t, statePickDifficulty, m.state)
	require.Nil(t, m.selection.Street)
	assert.Equal(t, trainer.PreflopDecision, m.selection.Topic)
}

func TestDifficultySelectionDealsQuestion(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "j")
	press(m, "enter")
	press(m, "j") // Intermediate
	press(m, "enter")

	require.Equal(t, stateQuestion, m.state)
	assert.Equal(t, trainer.Intermediate, m.difficulty)
	assert.Equal(t, trainer.PreflopDecision, m.scenario.Topic)
	assert.NotEmpty(t, m.scenario.Question)
}

func TestAnsweringTracksScore(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "j")
	press(m, "enter")
	press(m, "enter")
	require.Equal(t, stateQuestion, m.state)

	correct := m.scenario.CorrectAnswer()
	press(m, strings.ToLower(correct.ID))

	require.Equal(t, stateFeedback, m.state)
	assert.Equal(t, 1, m.answered)
	assert.Equal(t, 1, m.correct)
	assert.True(t, m.chosen.IsCorrect)

	// Next question resets to the question state
	press(m, "n")
	require.Equal(t, stateQuestion, m.state)
}

func TestWrongAnswerFeedbackNamesCorrectOption(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "j")
	press(m, "enter")
	press(m, "enter")

	correct := m.scenario.CorrectAnswer()
	for _, a := range m.scenario.Answers {
		if !a.IsCorrect {
			press(m, strings.ToLower(a.ID))
			break
		}
	}

	require.Equal(t, stateFeedback, m.state)
	assert.Equal(t, 0, m.correct)
	assert.Contains(t, m.viewFeedback(), correct.ID+")")
}

func TestStyleToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Equal(t, trainer.Simple, m.style)
	press(m, "t")
	assert.Equal(t, trainer.Technical, m.style)
	press(m, "t")
	assert.Equal(t, trainer.Simple, m.style)
}

func TestViewRendersQuestion(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	press(m, "j")
	press(m, "enter")
	press(m, "enter")

	view := m.View()
	assert.Contains(t, view, m.scenario.ScenarioID)
	for _, a := range m.scenario.Answers {
		assert.Contains(t, view, a.Text)
	}
}

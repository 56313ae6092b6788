// Package tui implements the interactive drill session. It is a Bubble Tea
// program that walks the player through topic and difficulty selection, then
// loops on generated questions while keeping a running score.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/pokertrainer/poker"
	"github.com/lox/pokertrainer/trainer"
)

// keyMap defines the session key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Next   key.Binding
	Menu   key.Binding
	Style  key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Back:   key.NewBinding(key.WithKeys("esc")),
	Next:   key.NewBinding(key.WithKeys("n", "enter", " ")),
	Menu:   key.NewBinding(key.WithKeys("m", "esc")),
	Style:  key.NewBinding(key.WithKeys("t")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

type sessionState int

const (
	statePickTopic sessionState = iota
	statePickDifficulty
	stateQuestion
	stateFeedback
)

// topicItem is one selectable row in the topic menu. A street item drills a
// random topic from that street each question.
type topicItem struct {
	label  string
	topic  trainer.TrainingTopic
	street *trainer.Street
}

// DrillModel is the Bubble Tea model for a drill session.
type DrillModel struct {
	logger *log.Logger

	state      sessionState
	topicItems []topicItem
	cursor     int

	selection  trainer.TopicSelector
	difficulty trainer.DifficultyLevel
	style      trainer.TextStyle

	scenario trainer.TrainingScenario
	chosen   trainer.AnswerOption

	answered int
	correct  int

	width    int
	height   int
	quitting bool
}

// NewDrillModel creates a drill session model.
func NewDrillModel(logger *log.Logger) *DrillModel {
	var items []topicItem
	for _, street := range trainer.Streets {
		st := street
		items = append(items, topicItem{
			label:  fmt.Sprintf("Random %s topic", street),
			street: &st,
		})
		for _, topic := range street.Topics() {
			items = append(items, topicItem{label: topic.Title(), topic: topic})
		}
	}

	return &DrillModel{
		logger:     logger.WithPrefix("tui"),
		topicItems: items,
		difficulty: trainer.Beginner,
		style:      trainer.Simple,
	}
}

// Init implements tea.Model.
func (m *DrillModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *DrillModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		}
		if key.Matches(msg, keys.Style) && m.state != stateQuestion {
			if m.style == trainer.Simple {
				m.style = trainer.Technical
			} else {
				m.style = trainer.Simple
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *DrillModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case statePickTopic:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.topicItems)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Select):
			item := m.topicItems[m.cursor]
			if item.street != nil {
				m.selection = trainer.TopicSelector{Street: item.street}
			} else {
				m.selection = trainer.TopicSelector{Topic: item.topic}
			}
			m.state = statePickDifficulty
			m.cursor = 0
		}

	case statePickDifficulty:
		levels := []trainer.DifficultyLevel{
			trainer.Beginner, trainer.Intermediate, trainer.Advanced,
		}
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(levels)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Back):
			m.state = statePickTopic
			m.cursor = 0
		case key.Matches(msg, keys.Select):
			m.difficulty = levels[m.cursor]
			m.nextQuestion()
		}

	case stateQuestion:
		pressed := msg.String()
		for i, a := range m.scenario.Answers {
			if pressed == strings.ToLower(a.ID) || pressed == fmt.Sprintf("%d", i+1) {
				m.chosen = a
				m.answered++
				if a.IsCorrect {
					m.correct++
				}
				m.logger.Debug("Answered",
					"scenario", m.scenario.ScenarioID,
					"answer", a.ID, "correct", a.IsCorrect)
				m.state = stateFeedback
				break
			}
		}

	case stateFeedback:
		switch {
		case key.Matches(msg, keys.Next):
			m.nextQuestion()
		case key.Matches(msg, keys.Menu):
			m.state = statePickTopic
			m.cursor = 0
		}
	}

	return m, nil
}

func (m *DrillModel) nextQuestion() {
	m.scenario = trainer.GenerateTraining(trainer.TrainingRequest{
		Topic:      m.selection,
		Difficulty: m.difficulty,
		TextStyle:  m.style,
	})
	m.logger.Debug("Dealt scenario",
		"id", m.scenario.ScenarioID, "branch", m.scenario.BranchKey)
	m.state = stateQuestion
}

// View implements tea.Model.
func (m *DrillModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" Poker Trainer "))
	b.WriteString("\n\n")

	switch m.state {
	case statePickTopic:
		b.WriteString(m.viewTopicMenu())
	case statePickDifficulty:
		b.WriteString(m.viewDifficultyMenu())
	case stateQuestion:
		b.WriteString(m.viewQuestion())
	case stateFeedback:
		b.WriteString(m.viewFeedback())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m *DrillModel) viewTopicMenu() string {
	var b strings.Builder
	b.WriteString("Pick a topic:\n\n")

	for i, item := range m.topicItems {
		// Street items open each group, so they double as section markers
		if item.street != nil {
			b.WriteString(DimStyle.Render(strings.ToUpper(string(*item.street))))
			b.WriteString("\n")
		}
		cursor := "  "
		line := item.label
		if i == m.cursor {
			cursor = "> "
			line = SelectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m *DrillModel) viewDifficultyMenu() string {
	var b strings.Builder
	b.WriteString("Pick a difficulty:\n\n")
	for i, level := range []trainer.DifficultyLevel{
		trainer.Beginner, trainer.Intermediate, trainer.Advanced,
	} {
		cursor := "  "
		line := string(level)
		if i == m.cursor {
			cursor = "> "
			line = SelectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m *DrillModel) viewQuestion() string {
	var b strings.Builder
	s := &m.scenario
	setup := s.TableSetup

	b.WriteString(HandInfoStyle.Render(s.Topic.Title()))
	b.WriteString(DimStyle.Render(fmt.Sprintf("  [%s]", s.ScenarioID)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Position: %s   Hand: %s\n",
		setup.HeroPosition.Code(),
		FormatCards(setup.HeroHand[:])))
	if len(setup.Board) > 0 {
		b.WriteString(fmt.Sprintf("Board: %s\n", FormatCards(setup.Board)))
	}
	b.WriteString(fmt.Sprintf("Pot: %d", setup.PotSize))
	if setup.CurrentBet > 0 {
		b.WriteString(fmt.Sprintf("   To call: %d", setup.CurrentBet))
	}
	b.WriteString("\n\n")

	b.WriteString(QuestionStyle.Render(s.Question))
	b.WriteString("\n\n")

	for _, a := range s.Answers {
		b.WriteString(AnswerStyle.Render(a.ID+")") + " " + a.Text + "\n")
	}
	return b.String()
}

func (m *DrillModel) viewFeedback() string {
	var b strings.Builder

	if m.chosen.IsCorrect {
		b.WriteString(CorrectStyle.Render("Correct!"))
	} else {
		correct := m.scenario.CorrectAnswer()
		b.WriteString(WrongStyle.Render(
			fmt.Sprintf("Wrong. The answer was %s) %s", correct.ID, correct.Text)))
	}
	b.WriteString("\n\n")
	b.WriteString(QuestionStyle.Render(m.chosen.Explanation))
	b.WriteString("\n")
	return b.String()
}

func (m *DrillModel) viewFooter() string {
	score := ""
	if m.answered > 0 {
		score = ScoreStyle.Render(
			fmt.Sprintf("Score: %d/%d", m.correct, m.answered)) + "  "
	}

	var help string
	switch m.state {
	case statePickTopic, statePickDifficulty:
		help = fmt.Sprintf("up/down: move  enter: select  t: style (%s)  q: quit", m.style)
	case stateQuestion:
		help = "a-d: answer  q: quit"
	case stateFeedback:
		help = "n: next  m: menu  q: quit"
	}
	return score + DimStyle.Render(help)
}

// FormatCards renders cards with suit coloring, red for hearts and diamonds.
func FormatCards(cards []poker.Card) string {
	formatted := make([]string, len(cards))
	for i, card := range cards {
		style := BlackCardStyle
		if card.Suit == poker.Hearts || card.Suit == poker.Diamonds {
			style = RedCardStyle
		}
		formatted[i] = style.Render(card.String())
	}
	return strings.Join(formatted, " ")
}

// Run starts the drill session and blocks until the player quits.
func Run(logger *log.Logger) error {
	model := NewDrillModel(logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("drill session failed: %w", err)
	}
	if model.answered > 0 {
		fmt.Printf("Final score: %d/%d (%.0f%%)\n",
			model.correct, model.answered,
			float64(model.correct)/float64(model.answered)*100)
	}
	return nil
}

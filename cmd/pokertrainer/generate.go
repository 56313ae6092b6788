package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lox/pokertrainer/internal/ntclient"
	"github.com/lox/pokertrainer/poker"
	"github.com/lox/pokertrainer/trainer"
)

// GenerateCmd prints one training scenario to stdout.
type GenerateCmd struct {
	Topic      string  `arg:"" help:"Topic name or street (e.g. PreflopDecision, Flop)"`
	Difficulty string  `short:"d" default:"Beginner" help:"Beginner, Intermediate or Advanced"`
	Seed       *uint64 `short:"s" help:"Deterministic RNG seed (optional)"`
	Style      string  `default:"Simple" help:"Text style: Simple or Technical"`
	JSON       bool    `help:"Emit the table-state JSON the web client consumes"`
	Answers    bool    `help:"Include correct answer and explanations in plain output"`
}

func (c *GenerateCmd) Run() error {
	req, err := buildRequest(c.Topic, c.Difficulty, c.Seed, c.Style)
	if err != nil {
		return err
	}

	scenario := trainer.GenerateTraining(req)

	if c.JSON {
		state := ntclient.ToTableState(&scenario, 1)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}

	printScenario(&scenario, c.Answers)
	return nil
}

func buildRequest(topic, difficulty string, seed *uint64, style string) (trainer.TrainingRequest, error) {
	var req trainer.TrainingRequest

	if street, err := trainer.ParseStreet(topic); err == nil {
		req.Topic = trainer.TopicSelector{Street: &street}
	} else {
		t, err := trainer.ParseTopic(topic)
		if err != nil {
			return req, err
		}
		req.Topic = trainer.TopicSelector{Topic: t}
	}

	diff, err := trainer.ParseDifficulty(difficulty)
	if err != nil {
		return req, err
	}
	req.Difficulty = diff

	ts, err := trainer.ParseTextStyle(style)
	if err != nil {
		return req, err
	}
	req.TextStyle = ts

	req.Seed = seed
	return req, nil
}

func printScenario(s *trainer.TrainingScenario, withAnswers bool) {
	setup := s.TableSetup

	fmt.Printf("%s  [%s]\n", s.Topic.Title(), s.ScenarioID)
	fmt.Printf("%s, %s\n\n", setup.GameType.Name(), setup.HeroPosition)

	fmt.Printf("Hand:  %s\n", formatCards(setup.HeroHand[:]))
	if len(setup.Board) > 0 {
		fmt.Printf("Board: %s\n", formatCards(setup.Board))
	}
	fmt.Printf("Pot:   %d\n", setup.PotSize)
	if setup.CurrentBet > 0 {
		fmt.Printf("Bet:   %d to call\n", setup.CurrentBet)
	}

	fmt.Printf("\n%s\n\n", s.Question)
	for _, a := range s.Answers {
		fmt.Printf("  %s) %s\n", a.ID, a.Text)
	}

	if withAnswers {
		correct := s.CorrectAnswer()
		fmt.Printf("\nCorrect: %s\n%s\n", correct.ID, correct.Explanation)
	}
}

// formatCards colors red suits when the terminal supports it.
func formatCards(cards []poker.Card) string {
	profile := termenv.ColorProfile()
	red := termenv.String().Foreground(profile.Color("#FF6B6B"))

	parts := make([]string, len(cards))
	for i, card := range cards {
		if card.Suit == poker.Hearts || card.Suit == poker.Diamonds {
			parts[i] = red.Styled(card.String())
		} else {
			parts[i] = card.String()
		}
	}
	return strings.Join(parts, " ")
}

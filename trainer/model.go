// Package trainer generates deterministic multiple-choice poker training
// scenarios. Given a topic, a difficulty, and an optional seed it deals a
// concrete situation, classifies it, and applies a fixed per-topic decision
// table to produce a question with exactly one correct answer.
package trainer

import (
	"encoding/json"
	"fmt"

	"github.com/lox/pokertrainer/poker"
)

// GameType distinguishes cash games (fixed blinds) from tournaments (ICM).
type GameType string

const (
	CashGame   GameType = "CashGame"
	Tournament GameType = "Tournament"
)

// Name returns the display form, e.g. "Cash Game".
func (g GameType) Name() string {
	if g == Tournament {
		return "Tournament"
	}
	return "Cash Game"
}

// Position encodes the 9-max table seats.
type Position uint8

const (
	UTG Position = iota
	UTG1
	UTG2
	LJ
	HJ
	CO
	BTN
	SB
	BB
)

var positionCodes = [...]string{"UTG", "UTG+1", "UTG+2", "LJ", "HJ", "CO", "BTN", "SB", "BB"}

var positionNames = [...]string{
	"UTG", "UTG+1", "UTG+2", "Lojack", "Hijack", "Cutoff", "Button",
	"Small Blind", "Big Blind",
}

// String returns the long display name, e.g. "Button".
func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return "?"
}

// Code returns the short table code, e.g. "BTN".
func (p Position) Code() string {
	if int(p) < len(positionCodes) {
		return positionCodes[p]
	}
	return "?"
}

// IsLate reports whether the position acts last postflop (CO or BTN).
func (p Position) IsLate() bool {
	return p == CO || p == BTN
}

// MarshalJSON writes the short code form.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Code())
}

// UnmarshalJSON accepts the short code form.
func (p *Position) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, code := range positionCodes {
		if code == s {
			*p = Position(i)
			return nil
		}
	}
	return fmt.Errorf("trainer: unknown position %q", s)
}

// PlayerState carries the per-seat info a scenario UI renders.
type PlayerState struct {
	Seat     int      `json:"seat"`
	Position Position `json:"position"`
	Stack    int      `json:"stack"`
	IsHero   bool     `json:"is_hero"`
	IsActive bool     `json:"is_active"`
}

// DifficultyLevel controls stack-depth ranges and bet-size variance.
// Beginner keeps stacks narrow and predictable; Advanced spans 15-300 BB.
type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "Beginner"
	Intermediate DifficultyLevel = "Intermediate"
	Advanced     DifficultyLevel = "Advanced"
)

// TextStyle controls the language of question and explanation text. Simple is
// plain English; Technical uses standard poker terminology (SPR, EV, fold
// equity). Style never changes which answer is correct.
type TextStyle string

const (
	Simple    TextStyle = "Simple"
	Technical TextStyle = "Technical"
)

// TrainingRequest is the input to GenerateTraining. Only Topic is required;
// zero values of the other fields mean Beginner difficulty, entropy seeding,
// and Simple text.
type TrainingRequest struct {
	Topic      TopicSelector   `json:"topic"`
	Difficulty DifficultyLevel `json:"difficulty,omitempty"`
	Seed       *uint64         `json:"rng_seed,omitempty"`
	TextStyle  TextStyle       `json:"text_style,omitempty"`
}

// NewRequest builds a request for a specific topic with all defaults.
func NewRequest(topic TrainingTopic) TrainingRequest {
	return TrainingRequest{Topic: TopicSelector{Topic: topic}}
}

// NewStreetRequest builds a request that drills a random topic on a street.
func NewStreetRequest(street Street) TrainingRequest {
	return TrainingRequest{Topic: TopicSelector{Street: &street}}
}

// TopicSelector chooses what to drill: a specific topic, or a random topic
// from a street when Street is set.
type TopicSelector struct {
	Topic  TrainingTopic `json:"topic,omitempty"`
	Street *Street       `json:"street,omitempty"`
}

// TableSetup is the physical table state: cards, positions, stacks, pot.
// Board length depends on the street: 0 preflop, 3 flop, 4 turn, 5 river.
type TableSetup struct {
	GameType     GameType      `json:"game_type"`
	HeroPosition Position      `json:"hero_position"`
	HeroHand     [2]poker.Card `json:"hero_hand"`
	Board        []poker.Card  `json:"board"`
	Players      []PlayerState `json:"players"`
	PotSize      int           `json:"pot_size"`
	// CurrentBet is the amount hero must call; 0 when hero acts first.
	CurrentBet int `json:"current_bet"`
}

// AnswerOption is one answer choice. Exactly one per scenario is correct.
// The explanation is generated from the dealt cards and the active TextStyle.
type AnswerOption struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
}

// TrainingScenario is the complete output of GenerateTraining: table state,
// question, and all answer options. ScenarioID is unique per generation; the
// branch key identifies the logical decision class and is stable across seeds
// for the same underlying situation.
type TrainingScenario struct {
	ScenarioID string        `json:"scenario_id"`
	Topic      TrainingTopic `json:"topic"`
	BranchKey  string        `json:"branch_key"`
	TableSetup TableSetup    `json:"table_setup"`
	Question   string        `json:"question"`
	Answers    []AnswerOption `json:"answers"`
}

// CorrectAnswer returns the single correct answer option.
func (s *TrainingScenario) CorrectAnswer() AnswerOption {
	for _, a := range s.Answers {
		if a.IsCorrect {
			return a
		}
	}
	panic("trainer: scenario has no correct answer")
}

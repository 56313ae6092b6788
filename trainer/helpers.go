package trainer

import (
	rand "math/rand/v2"
	"strings"

	"github.com/lox/pokertrainer/poker"
)

// bigBlind is the chip value of one big blind in generated scenarios.
const bigBlind = 2

// deal shuffles a fresh deck and draws hero's 2 hole cards followed by
// boardCards community cards. This is the standard deal sequence; topics that
// draw from the RNG before dealing build their deck explicitly to keep their
// draw order fixed.
func deal(rng *rand.Rand, boardCards int) ([2]poker.Card, []poker.Card) {
	deck := poker.NewShuffledDeck(rng)
	hand := [2]poker.Card{deck.Deal(), deck.Deal()}
	board := deck.DealN(boardCards)
	return hand, board
}

// handStr formats hero's hand as compact notation, e.g. "AcKs".
func handStr(hand [2]poker.Card) string {
	return hand[0].String() + hand[1].String()
}

// boardStr formats the board as space-separated notation, e.g. "Ac Ks 7h".
func boardStr(board []poker.Card) string {
	parts := make([]string, len(board))
	for i, c := range board {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// styled picks the wording for the active text style. Game logic is identical
// in both modes; only prose differs.
func styled(ts TextStyle, simple, technical string) string {
	if ts == Technical {
		return technical
	}
	return simple
}

// headsUp builds the standard 2-player setup: villain on seat 1, hero on
// seat 2.
func headsUp(heroPos, villainPos Position, heroStack, villainStack int) []PlayerState {
	return []PlayerState{
		{Seat: 1, Position: villainPos, Stack: villainStack, IsHero: false, IsActive: true},
		{Seat: 2, Position: heroPos, Stack: heroStack, IsHero: true, IsActive: true},
	}
}

// scenario assembles the final TrainingScenario. It is the last call in every
// topic generator.
func scenario(
	id string, topic TrainingTopic, branchKey string,
	gameType GameType, heroPos Position, heroHand [2]poker.Card,
	board []poker.Card, players []PlayerState,
	pot, bet int, question string, answers []AnswerOption,
) TrainingScenario {
	return TrainingScenario{
		ScenarioID: id,
		Topic:      topic,
		BranchKey:  branchKey,
		TableSetup: TableSetup{
			GameType:     gameType,
			HeroPosition: heroPos,
			HeroHand:     heroHand,
			Board:        board,
			Players:      players,
			PotSize:      pot,
			CurrentBet:   bet,
		},
		Question: question,
		Answers:  answers,
	}
}

// round converts a float chip amount to the nearest whole chip.
func round(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}

// intIn returns a uniform value in the inclusive range [lo, hi].
func intIn(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// coinFlip returns true half the time.
func coinFlip(rng *rand.Rand) bool {
	return rng.IntN(2) == 0
}

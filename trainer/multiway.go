package trainer

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/pokertrainer/poker"
)

// multiStrength is hero's flop hand tier in a multiway pot.
type multiStrength uint8

const (
	multiStrong  multiStrength = iota // set, two pair, overpair
	multiTopPair                      // top pair, good kicker
	multiWeak                         // middle pair or worse
)

func (s multiStrength) String() string {
	switch s {
	case multiStrong:
		return "strong (set / two pair / overpair)"
	case multiTopPair:
		return "top pair (good kicker)"
	default:
		return "weak (middle pair or worse)"
	}
}

// generateMultiway builds the multiway flop drill. Against two or more
// opponents, strong hands bet large, top pair bets small, and weak hands
// check. The question and explanations use a single prose register.
func generateMultiway(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, _ TextStyle) TrainingScenario {
	deck := poker.NewShuffledDeck(rng)
	heroHand := [2]poker.Card{deck.Deal(), deck.Deal()}
	board := deck.DealN(3)

	strength := multiStrength(rng.IntN(3))

	opponents := 2
	switch difficulty {
	case Intermediate:
		opponents = intIn(rng, 2, 3)
	case Advanced:
		opponents = intIn(rng, 2, 4)
	}

	bb := bigBlind
	potBB, stackBB := 0, 100
	switch difficulty {
	case Intermediate:
		potBB = intIn(rng, 6, 20)
		stackBB = intIn(rng, 50, 120)
	case Advanced:
		potBB = intIn(rng, 4, 30)
		stackBB = intIn(rng, 20, 150)
	default:
		potBB = intIn(rng, 8, 16)
	}
	pot := potBB * bb
	stack := stackBB * bb

	smallBet := round(float64(pot) * 0.33)
	largeBet := round(float64(pot) * 0.67)

	var correct, branchKey string
	switch strength {
	case multiStrong:
		correct, branchKey = "C", "Strong:BetLarge"
	case multiTopPair:
		correct, branchKey = "B", "TopPair:BetSmall"
	default:
		correct, branchKey = "A", "Weak:Check"
	}

	heroPos := CO
	handS := handStr(heroHand)
	boardS := boardStr(board)
	oppStr := fmt.Sprintf("%d opponents", opponents)
	if opponents == 1 {
		oppStr = "1 opponent"
	}

	question := fmt.Sprintf(
		"Multiway flop. You hold %s (%s) in the Cutoff. Board: %s. Pot: %d chips (%d BB). Stack: %d chips. You are first to act against %s. Bet options: small (%d chips ~33%%), large (%d chips ~67%%). What do you do?",
		handS, strength, boardS, pot, potBB, stack, oppStr, smallBet, largeBet)

	checkExp := fmt.Sprintf("Checking a %s in a multiway pot is too passive. More opponents mean more draws and speculative hands - you need to charge them to see more cards. Checking gives a free card to %s and reduces your protection against improving hands. Bet to build the pot and deny equity.", strength, oppStr)
	if strength == multiWeak {
		checkExp = fmt.Sprintf("Correct. Checking a %s in a multiway pot is right. In multiway pots, the probability that at least one opponent has a strong hand rises significantly with each extra player. Betting a %s risks being called or raised by better hands with minimal protection value. Check and re-evaluate on the turn.", strength, strength)
	}

	var smallExp string
	switch strength {
	case multiTopPair:
		smallExp = fmt.Sprintf("Correct. A small bet (~33%% pot) with %s in a multiway pot is the right approach. Top pair with a good kicker has value but is vulnerable to draws and stronger made hands. A small bet extracts thin value, applies some protection, and keeps the pot manageable if you encounter resistance from %s.", strength, oppStr)
	case multiStrong:
		smallExp = fmt.Sprintf("A small bet with %s in a multiway pot undersizes the protection needed. With %s in the hand, draw combinations multiply and you need to charge them appropriately. A larger bet (~67%%) protects your equity and builds a pot worth winning.", strength, oppStr)
	default:
		smallExp = fmt.Sprintf("Betting small with a %s into %s is a marginal bluff with poor equity. Multiway bluffs have lower success rates because all opponents must fold. Check and control the pot.", strength, oppStr)
	}

	var largeExp string
	switch strength {
	case multiStrong:
		largeExp = fmt.Sprintf("Correct. A large bet (~67%% pot) with %s against %s is the highest-EV play. In multiway pots, draw combinations multiply with each opponent - sets and two pair need to charge draws immediately. A larger bet denies equity, protects your made hand, and builds a significant pot that you are heavily favoured to win.", strength, oppStr)
	case multiTopPair:
		largeExp = fmt.Sprintf("A large bet with %s against %s over-commits to a vulnerable holding. Top pair faces real reverse-implied odds in multiway pots - at least one opponent may already have two pair or better. A small bet (~33%%) achieves the same protection at much lower risk.", strength, oppStr)
	default:
		largeExp = fmt.Sprintf("Betting large with a %s into %s is a costly bluff. Multiway pot bluffs require all opponents to fold, which rarely happens with a large bet at the flop stage. Check instead.", strength, oppStr)
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Check", IsCorrect: correct == "A", Explanation: checkExp},
		{ID: "B", Text: fmt.Sprintf("Bet small (%d chips ~33%%)", smallBet), IsCorrect: correct == "B", Explanation: smallExp},
		{ID: "C", Text: fmt.Sprintf("Bet large (%d chips ~67%%)", largeBet), IsCorrect: correct == "C", Explanation: largeExp},
	}

	players := []PlayerState{
		{Seat: 2, Position: heroPos, Stack: stack, IsHero: true, IsActive: true},
		{Seat: 3, Position: BTN, Stack: stack, IsHero: false, IsActive: true},
	}
	if opponents >= 2 {
		players = append(players, PlayerState{Seat: 4, Position: BB, Stack: stack, IsActive: true})
	}
	if opponents >= 3 {
		players = append(players, PlayerState{Seat: 5, Position: SB, Stack: stack, IsActive: true})
	}
	if opponents >= 4 {
		players = append(players, PlayerState{Seat: 1, Position: HJ, Stack: stack, IsActive: true})
	}

	return scenario(scenarioID, MultiwayPot, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, 0, question, answers)
}

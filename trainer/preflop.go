package trainer

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/pokertrainer/poker"
)

// Preflop topic generators: open-raise, ICM push/fold, anti-limper isolation,
// squeeze play, and big blind defense. All five deal an empty board.

type preflopSpot uint8

const (
	openRaise preflopSpot = iota
	facingOpen
	threeBetPot
)

func selectSpot(rng *rand.Rand) preflopSpot {
	switch rng.IntN(3) {
	case 0:
		return openRaise
	case 1:
		return facingOpen
	default:
		return threeBetPot
	}
}

var positions6Max = []Position{UTG, HJ, CO, BTN, SB, BB}

var positions9Max = []Position{UTG, UTG1, UTG2, LJ, HJ, CO, BTN, SB, BB}

func randomPosition(rng *rand.Rand, is6Max bool) Position {
	pool := positions9Max
	if is6Max {
		pool = positions6Max
	}
	return pool[rng.IntN(len(pool))]
}

func stackForDifficulty(rng *rand.Rand, diff DifficultyLevel) int {
	switch diff {
	case Intermediate:
		return intIn(rng, 40, 150)
	case Advanced:
		return intIn(rng, 15, 300)
	default:
		return intIn(rng, 80, 120)
	}
}

// generatePreflop builds the open-raise / facing-open / 3-bet-pot drill.
//
// RNG order: table size coin flip, spot, position, stack, shuffle, deal x2,
// then per-player stacks. Changing the order changes every seeded output.
func generatePreflop(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	is6Max := coinFlip(rng)
	tableSize := 9
	if is6Max {
		tableSize = 6
	}
	spot := selectSpot(rng)
	heroPos := randomPosition(rng, is6Max)
	effectiveStack := stackForDifficulty(rng, difficulty)

	deck := poker.NewShuffledDeck(rng)
	heroHand := [2]poker.Card{deck.Deal(), deck.Deal()}

	cat := poker.ClassifyHand(heroHand)
	posType := "OOP"
	if heroPos.IsLate() {
		posType = "IP"
	}
	var branchKey string
	switch spot {
	case threeBetPot:
		branchKey = fmt.Sprintf("ThreeBetPot:%s", cat.Name())
	case openRaise:
		branchKey = fmt.Sprintf("OpenRaise:%s:%s", cat.Name(), posType)
	default:
		branchKey = fmt.Sprintf("FacingOpen:%s:%s", cat.Name(), posType)
	}

	pool := positions9Max
	if is6Max {
		pool = positions6Max
	}
	players := make([]PlayerState, len(pool))
	for i, pos := range pool {
		stack := effectiveStack
		if pos != heroPos {
			stack = stackForDifficulty(rng, difficulty)
		}
		players[i] = PlayerState{
			Seat:     i + 1,
			Position: pos,
			Stack:    stack,
			IsHero:   pos == heroPos,
			IsActive: true,
		}
	}

	pot, currentBet, question, answers := buildPreflopSpot(spot, heroPos, heroHand, effectiveStack, tableSize, ts)

	return scenario(scenarioID, PreflopDecision, branchKey, CashGame, heroPos,
		heroHand, []poker.Card{}, players, pot, currentBet, question, answers)
}

func buildPreflopSpot(
	spot preflopSpot, pos Position, hand [2]poker.Card,
	stack, tableSize int, ts TextStyle,
) (pot, currentBet int, question string, answers []AnswerOption) {
	cat := poker.ClassifyHand(hand)
	catName := cat.Name()
	hs := handStr(hand)
	posStr := pos.String()
	stackBB := stack // stacks in this drill are denominated in big blinds
	bb := bigBlind

	switch spot {
	case openRaise:
		pot = bb + bb/2
		openSize := bb * 2
		if stackBB >= 40 {
			openSize = bb * 3
		}
		question = styled(ts,
			fmt.Sprintf("You have %s in %s at a %d-handed table. Stack: %d big blinds. Everyone before you folded. What do you do?",
				hs, posStr, tableSize, stackBB),
			fmt.Sprintf("You hold %s in %s at a %d-handed table. Effective stack is %d BB. Action folds to you. What is your action?",
				hs, posStr, tableSize, stackBB),
		)

		// Limping is never correct in an open spot.
		shouldRaise := cat == poker.Premium || cat == poker.Strong ||
			(pos.IsLate() && (cat == poker.Playable || cat == poker.Marginal))
		correct := "A"
		if shouldRaise {
			correct = "B"
		}

		foldBody := fmt.Sprintf("Too tight. %s (%s) from %s with %d BB has enough value to open-raise profitably.", hs, catName, posStr, stackBB)
		if correct == "A" {
			foldBody = fmt.Sprintf("Correct. A %s hand from %s lacks the equity and playability to justify entering the pot against a full range.", catName, posStr)
		}
		raiseBody := fmt.Sprintf("Raising with a %s hand from %s over-commits your stack (%d BB) with insufficient equity. A fold is better.", catName, posStr, stackBB)
		if correct == "B" {
			raiseBody = fmt.Sprintf("Correct. %s (%s) from %s merits an open-raise. A standard 2-3x sizing builds a pot with the best of it and denies equity to weaker holdings.", hs, catName, posStr)
		}

		foldSimple := fmt.Sprintf("Folding is a mistake here. %s is strong enough to bet from %s. Don't throw away the opportunity.", hs, posStr)
		if correct == "A" {
			foldSimple = fmt.Sprintf("Correct. %s is too weak for %s. Folding saves your chips for a better hand.", hs, posStr)
		}
		raiseSimple := fmt.Sprintf("Raising is too risky here - %s isn't strong enough from %s with %d big blinds. Fold instead.", hs, posStr, stackBB)
		if correct == "B" {
			raiseSimple = fmt.Sprintf("Raise! %s is a good hand in %s. Bet %d chips and take control of the pot.", hs, posStr, openSize)
		}

		answers = []AnswerOption{
			{
				ID: "A", Text: "Fold", IsCorrect: correct == "A",
				Explanation: styled(ts, foldSimple,
					fmt.Sprintf("Folding %s (%s) from %s with %d BB: %s", hs, catName, posStr, stackBB, foldBody)),
			},
			{
				ID: "B", Text: fmt.Sprintf("Raise to %d BB", openSize/bb), IsCorrect: correct == "B",
				Explanation: styled(ts, raiseSimple,
					fmt.Sprintf("Raising to %d chips (%d BB) with %s (%s) from %s: %s", openSize, openSize/bb, hs, catName, posStr, raiseBody)),
			},
			{
				ID: "C", Text: "Call", IsCorrect: false,
				Explanation: styled(ts,
					"Just calling the big blind here is a bad idea. It lets everyone in cheaply, and you lose control of the hand. Either raise or fold.",
					fmt.Sprintf("Limping with %s from %s: In most cash game formats limping is a leak - it invites multiway pots with no initiative, weakening your range and giving the BB a free squeeze opportunity.", hs, posStr)),
			},
		}
		return pot, 0, question, answers

	case facingOpen:
		raiserSize := bb * 2
		if stackBB >= 40 {
			raiserSize = bb * 3
		}
		pot = bb/2 + bb + raiserSize
		threeBet := raiserSize * 3
		question = styled(ts,
			fmt.Sprintf("You have %s in %s (%d big blinds). Someone raised to %d big blinds. What do you do?",
				hs, posStr, stackBB, raiserSize/bb),
			fmt.Sprintf("You hold %s in %s (%d BB deep). A player raises to %d BB. Action is on you. What do you do?",
				hs, posStr, stackBB, raiserSize/bb),
		)

		var correct string
		switch cat {
		case poker.Premium, poker.Strong:
			correct = "C"
		case poker.Playable:
			if pos.IsLate() {
				correct = "C"
			} else {
				correct = "B"
			}
		default:
			correct = "A"
		}

		foldBody := fmt.Sprintf("Too tight. %s (%s) has sufficient equity against a typical raising range to continue from %s.", hs, catName, posStr)
		if correct == "A" {
			foldBody = fmt.Sprintf("Correct. A %s hand vs a raise from %s is an easy fold. This hand lacks equity to continue profitably against a raising range.", catName, posStr)
		}
		var callBody string
		switch correct {
		case "B":
			callBody = fmt.Sprintf("Correct. Calling with %s (%s) from %s retains pot control and lets you realize equity with positional advantage.", hs, catName, posStr)
		case "A":
			callBody = fmt.Sprintf("Calling with a %s hand invests chips without sufficient equity. A fold is cleaner from %s.", catName, posStr)
		default:
			callBody = fmt.Sprintf("Calling with %s (%s) is too passive - a 3-bet for value is higher EV here from %s.", hs, catName, posStr)
		}
		threeBetBody := fmt.Sprintf("3-betting a %s hand bloats the pot unfavourably from %s. You risk a 4-bet or playing a large pot with insufficient hand strength.", catName, posStr)
		if correct == "C" {
			threeBetBody = fmt.Sprintf("Correct. A 3-bet with %s (%s) from %s extracts value from worse hands, denies equity, and builds a pot with an equity advantage.", hs, catName, posStr)
		}

		foldSimple := fmt.Sprintf("Folding is too cautious - %s is good enough to continue here.", hs)
		if correct == "A" {
			foldSimple = fmt.Sprintf("Correct. %s from %s isn't strong enough to call or re-raise here. Save your chips.", hs, posStr)
		}
		var callSimple string
		switch correct {
		case "B":
			callSimple = fmt.Sprintf("Correct. Call with %s from %s. You have a decent hand and a good position - see the flop.", hs, posStr)
		case "A":
			callSimple = fmt.Sprintf("Calling with %s isn't worth it - this hand can't beat a raise. Fold.", hs)
		default:
			callSimple = fmt.Sprintf("Calling is too passive here - re-raise with %s to build the pot while you have the advantage.", hs)
		}
		raiseSimple := fmt.Sprintf("Re-raising %s here is too risky. You'd be putting in a lot of chips with a hand that isn't strong enough.", hs)
		if correct == "C" {
			raiseSimple = fmt.Sprintf("Re-raise! %s from %s is strong enough to bet big. This builds the pot when you have the best hand.", hs, posStr)
		}

		answers = []AnswerOption{
			{
				ID: "A", Text: "Fold", IsCorrect: correct == "A",
				Explanation: styled(ts, foldSimple,
					fmt.Sprintf("Folding %s (%s) vs a raise from %s: %s", hs, catName, posStr, foldBody)),
			},
			{
				ID: "B", Text: "Call", IsCorrect: correct == "B",
				Explanation: styled(ts, callSimple,
					fmt.Sprintf("Calling with %s (%s) in %s: %s", hs, catName, posStr, callBody)),
			},
			{
				ID: "C", Text: fmt.Sprintf("Raise to %d BB", threeBet/bb), IsCorrect: correct == "C",
				Explanation: styled(ts, raiseSimple,
					fmt.Sprintf("3-betting to %d with %s (%s) from %s: %s", threeBet, hs, catName, posStr, threeBetBody)),
			},
		}
		return pot, raiserSize, question, answers

	default: // threeBetPot
		heroOpen := bb * 3
		threeBetSize := heroOpen * 3
		pot = bb/2 + bb + heroOpen + threeBetSize
		fourBet := threeBetSize * 3
		question = styled(ts,
			fmt.Sprintf("You bet %d big blinds with %s from %s (%d big blinds). Your opponent re-raised to %d big blinds. What do you do?",
				heroOpen/bb, hs, posStr, stackBB, threeBetSize/bb),
			fmt.Sprintf("You opened to %d BB with %s from %s (%d BB deep). A player re-raises to %d BB. What do you do?",
				heroOpen/bb, hs, posStr, stackBB, threeBetSize/bb),
		)

		var correct string
		switch cat {
		case poker.Premium:
			correct = "C"
		case poker.Strong, poker.Playable:
			correct = "B"
		default:
			correct = "A"
		}

		foldBody := "Folding is too tight here. Your hand has sufficient equity against a balanced 3-bet range to continue."
		if correct == "A" {
			foldBody = fmt.Sprintf("Correct. A %s hand cannot profitably continue vs a 3-bet given the pot odds and likely 3-bet range of your opponent.", catName)
		}
		callBody := "Simply calling here leaves money on the table with a premium holding - 4-betting for value is higher EV against a 3-bet range."
		if correct == "B" {
			callBody = "Correct. Calling preserves stack depth and lets you navigate postflop with good implied odds, avoiding getting all-in preflop with a dominated or marginal hand."
		}
		fourBetBody := fmt.Sprintf("4-betting a %s hand turns your hand face-up and gets called (or shoved) by hands that dominate you, resulting in a large pot with negative EV.", catName)
		if correct == "C" {
			fourBetBody = "Correct. With a premium hand you should 4-bet for value. This polarizes your range, forces folds of hands with equity against you, and builds the pot with the best of it."
		}

		foldSimple := "Folding here is too cautious - you have enough of a hand to continue."
		if correct == "A" {
			foldSimple = fmt.Sprintf("Correct. %s can't beat your opponent's re-raise range profitably. Let this one go.", hs)
		}
		callSimple := "Just calling here wastes the opportunity - re-raise for value with this strong hand."
		if correct == "B" {
			callSimple = fmt.Sprintf("Correct. Call and see the flop. %s has good enough potential and you keep the pot manageable.", hs)
		}
		raiseSimple := fmt.Sprintf("Re-raising here puts too many chips at risk with %s. Call or fold instead.", hs)
		if correct == "C" {
			raiseSimple = fmt.Sprintf("Correct. Re-raise again! %s is a premium hand. Build the pot - you have the best of it here.", hs)
		}

		answers = []AnswerOption{
			{
				ID: "A", Text: "Fold", IsCorrect: correct == "A",
				Explanation: styled(ts, foldSimple,
					fmt.Sprintf("Folding %s (%s) vs 3-bet: %s", hs, catName, foldBody)),
			},
			{
				ID: "B", Text: "Call", IsCorrect: correct == "B",
				Explanation: styled(ts, callSimple,
					fmt.Sprintf("Calling the 3-bet with %s (%s) from %s: %s", hs, catName, posStr, callBody)),
			},
			{
				ID: "C", Text: fmt.Sprintf("Raise to %d BB", fourBet/bb), IsCorrect: correct == "C",
				Explanation: styled(ts, raiseSimple,
					fmt.Sprintf("4-betting with %s (%s): %s", hs, catName, fourBetBody)),
			},
		}
		return pot, threeBetSize, question, answers
	}
}

// tournamentStage is the phase of a tournament, which sets the base push
// threshold.
type tournamentStage uint8

const (
	earlyLevels tournamentStage = iota
	middleStages
	bubble
	finalTable
)

func (s tournamentStage) String() string {
	switch s {
	case earlyLevels:
		return "Early Levels"
	case middleStages:
		return "Middle Stages"
	case bubble:
		return "Bubble"
	default:
		return "Final Table"
	}
}

func (s tournamentStage) branchName() string {
	switch s {
	case earlyLevels:
		return "Early"
	case middleStages:
		return "Middle"
	case bubble:
		return "Bubble"
	default:
		return "FinalTable"
	}
}

func randomStage(rng *rand.Rand) tournamentStage {
	return tournamentStage(rng.IntN(4))
}

// pushTier is the simplified hand tier used for push/fold thresholds.
type pushTier uint8

const (
	pushPremium pushTier = iota
	pushStrong
	pushPlayable
	pushWeak
)

func classifyPushTier(hand [2]poker.Card) pushTier {
	r1, r2 := hand[0].Rank, hand[1].Rank
	if r1 < r2 {
		r1, r2 = r2, r1
	}
	suited := hand[0].Suit == hand[1].Suit
	pair := r1 == r2

	switch {
	case pair && r1 >= poker.Queen:
		return pushPremium
	case r1 == poker.Ace && r2 == poker.King && suited:
		return pushPremium
	case pair && r1 >= poker.Ten:
		return pushStrong
	case r1 == poker.Ace && r2 >= poker.Queen:
		return pushStrong
	case pair && r1 >= poker.Seven:
		return pushPlayable
	case r1 == poker.Ace && r2 >= poker.Ten && suited:
		return pushPlayable
	case r1 >= poker.Queen && r2 >= poker.Jack && suited:
		return pushPlayable
	default:
		return pushWeak
	}
}

// pushThresholdBB is the simplified ICM pressure model: a base stack
// threshold per stage, shifted by hand tier. Real ICM needs payouts; the
// drill uses these fixed thresholds.
func pushThresholdBB(stage tournamentStage, tier pushTier) int {
	var base int
	switch stage {
	case earlyLevels:
		base = 20
	case middleStages:
		base = 15
	case bubble:
		base = 10
	default:
		base = 12
	}
	switch tier {
	case pushPremium:
		return base + 8
	case pushStrong:
		return base + 3
	case pushPlayable:
		return base
	default:
		if base < 4 {
			return 0
		}
		return base - 4
	}
}

// generateICM builds the tournament push/fold drill.
//
// RNG order: stage, hero stack, villain stack, players remaining, shuffle,
// deal x2.
func generateICM(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	stage := randomStage(rng)
	bb := 100 // tournament chips, 100 = 1 BB

	var heroStackBB int
	switch difficulty {
	case Intermediate:
		heroStackBB = intIn(rng, 4, 25)
	case Advanced:
		heroStackBB = intIn(rng, 3, 30)
	default:
		heroStackBB = intIn(rng, 6, 18)
	}

	villainStackBB := intIn(rng, 20, 60)
	heroStack := heroStackBB * bb
	villainStack := villainStackBB * bb

	var playersRemaining int
	switch stage {
	case earlyLevels:
		playersRemaining = intIn(rng, 60, 120)
	case middleStages:
		playersRemaining = intIn(rng, 25, 60)
	case bubble:
		playersRemaining = intIn(rng, 10, 18)
	default:
		playersRemaining = intIn(rng, 3, 9)
	}

	paidSpots := (playersRemaining*15 + 99) / 100 // ceil(15%)

	deck := poker.NewShuffledDeck(rng)
	heroHand := [2]poker.Card{deck.Deal(), deck.Deal()}
	heroPos := BTN
	posStr := heroPos.String()
	hs := handStr(heroHand)

	tier := classifyPushTier(heroHand)
	threshold := pushThresholdBB(stage, tier)
	shouldPush := heroStackBB <= threshold

	pushFold := "Fold"
	if shouldPush {
		pushFold = "Push"
	}
	branchKey := fmt.Sprintf("%s:%s", stage.branchName(), pushFold)

	pot := bb + bb/2

	var riskPremiumPct float64
	switch stage {
	case bubble:
		riskPremiumPct = 20
	case finalTable:
		riskPremiumPct = 15
	case middleStages:
		riskPremiumPct = 8
	default:
		riskPremiumPct = 3
	}

	question := styled(ts,
		fmt.Sprintf("Tournament: %s. %d players left, top %d get paid. You have %s on the Button with %d big blinds. Your opponent in the Big Blind has %d big blinds. Everyone else folded. Go all-in or fold?",
			stage, playersRemaining, paidSpots, hs, heroStackBB, villainStackBB),
		fmt.Sprintf("Tournament: %s. %d players remain, top %d paid. You hold %s on the %s with %d BB. Villain on the BB has %d BB. Action folds to you. Do you shove all-in or fold?",
			stage, playersRemaining, paidSpots, hs, posStr, heroStackBB, villainStackBB),
	)

	pushBody := fmt.Sprintf("Shoving with %d BB is premature. At this stack depth the ICM risk premium (~%.0f%% at %s) means you over-risk your tournament equity. Wait for a better spot or a stronger hand.",
		heroStackBB, riskPremiumPct, stage)
	if shouldPush {
		pushBody = fmt.Sprintf("Correct. At %d BB, your stack faces significant blind pressure (you'll lose ~%.0f%% per orbit). ICM risk premium at this stage is ~%.0f%%, but your hand still has enough equity to profitably shove against a wide BB calling range. Stack preservation via folding only deepens the blinds crisis.",
			heroStackBB, 100.0/float64(heroStackBB), riskPremiumPct)
	}
	pushSimple := fmt.Sprintf("Going all-in too early at %d big blinds risks your tournament life needlessly. You still have time to find a better spot.", heroStackBB)
	if shouldPush {
		pushSimple = fmt.Sprintf("Correct - go all-in! With only %d big blinds, your stack is shrinking fast. Waiting for a perfect hand will cost you too much. Shove now.", heroStackBB)
	}
	pushExplanation := styled(ts, pushSimple,
		fmt.Sprintf("Shoving %d BB with %s from %s during %s: %s", heroStackBB, hs, posStr, stage, pushBody))

	foldBody := fmt.Sprintf("Folding is too passive here. With only %d BB and increasing blind levels, you must find spots to accumulate chips. Folding here leaves you critically short and forces even worse all-in spots later with less fold equity.", heroStackBB)
	if !shouldPush {
		foldBody = fmt.Sprintf("Correct. With %d BB you are not yet in desperation territory. Preserving your stack when ICM pressure is ~%.0f%% is rational - a marginal shove risks your entire tournament life for a modest chip gain.",
			heroStackBB, riskPremiumPct)
	}
	foldSimple := fmt.Sprintf("Folding here is wrong - with %d big blinds your stack is getting dangerously low. You need to shove while you still have some chips to be scary.", heroStackBB)
	if !shouldPush {
		foldSimple = fmt.Sprintf("Correct - fold. You still have enough chips (%d big blinds) to wait for a better spot. Don't risk elimination unnecessarily.", heroStackBB)
	}
	foldExplanation := styled(ts, foldSimple,
		fmt.Sprintf("Folding %s from %s with %d BB during %s: %s", hs, posStr, heroStackBB, stage, foldBody))

	answers := []AnswerOption{
		{ID: "A", Text: "All-in", IsCorrect: shouldPush, Explanation: pushExplanation},
		{ID: "B", Text: "Fold", IsCorrect: !shouldPush, Explanation: foldExplanation},
	}

	players := headsUp(heroPos, BB, heroStack, villainStack)

	return scenario(scenarioID, ICMAndTournamentDecision, branchKey, Tournament,
		heroPos, heroHand, []poker.Card{}, players, pot, 0, question, answers)
}

func isoRaiseBB(limperCount int) int {
	switch limperCount {
	case 1:
		return 4
	case 2:
		return 5
	default:
		return 6
	}
}

// generateAntiLimper builds the iso-raise drill.
//
// RNG order: shuffle, deal x2, position, limper count, stack.
func generateAntiLimper(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	deck := poker.NewShuffledDeck(rng)
	heroHand := [2]poker.Card{deck.Deal(), deck.Deal()}

	var heroPos Position
	switch rng.IntN(3) {
	case 0:
		heroPos = CO
	case 1:
		heroPos = BTN
	default:
		heroPos = SB
	}

	limperCount := intIn(rng, 1, 3)
	ip := heroPos.IsLate()

	bb := bigBlind
	var stackBB int
	switch difficulty {
	case Intermediate:
		stackBB = intIn(rng, 30, 150)
	case Advanced:
		stackBB = intIn(rng, 15, 200)
	default:
		stackBB = intIn(rng, 60, 120)
	}
	stack := stackBB * bb
	pot := bb + bb/2 + bb*limperCount

	cat := poker.ClassifyHand(heroHand)
	catName := cat.Name()
	isoBB := isoRaiseBB(limperCount)
	isoChips := isoBB * bb

	hs := handStr(heroHand)
	posStr := heroPos.String()
	limperWord := "limpers"
	if limperCount == 1 {
		limperWord = "limper"
	}
	posQualifier := "out of position"
	if ip {
		posQualifier = "in position"
	}

	var correct string
	switch {
	case cat == poker.Premium || cat == poker.Strong:
		correct = "C"
	case cat == poker.Playable && ip:
		correct = "C"
	case cat == poker.Playable:
		correct = "B"
	default:
		correct = "A"
	}

	var branchKey string
	switch {
	case cat == poker.Playable && ip:
		branchKey = "Playable:IP"
	case cat == poker.Playable:
		branchKey = "Playable:OOP"
	default:
		branchKey = string(cat)
	}

	question := styled(ts,
		fmt.Sprintf("You have %s in %s (%d big blinds). %d player(s) just called the big blind without raising. Pot: %d chips. What do you do?",
			hs, posStr, stackBB, limperCount, pot),
		fmt.Sprintf("You hold %s (%s) on the %s (%s, %d BB deep). %d player(s) limp in front of you. Pot is %d chips. What is your action?",
			hs, catName, posStr, posQualifier, stackBB, limperCount, pot),
	)

	weak := cat == poker.Marginal || cat == poker.Trash

	foldSimple := fmt.Sprintf("Folding %s here is too cautious - you have enough of a hand to bet and take control.", hs)
	if weak {
		foldSimple = fmt.Sprintf("Correct - fold. %s isn't strong enough here, even against players who just called. Wait for a better hand.", hs)
	}
	foldTech := fmt.Sprintf("Folding %s (%s) from %s is too tight. You have enough hand strength and/or positional advantage to profitably enter the pot here. Limpers have shown weakness - exploit it.", hs, catName, posStr)
	if weak {
		foldTech = fmt.Sprintf("Correct. A %s hand from %s against %d %s is a clear fold. Iso-raising with %s builds a large pot without sufficient equity against even limping ranges. Overlimping is even worse - it invites more players and removes any initiative. Fold and wait for a stronger hand.",
			catName, posStr, limperCount, limperWord, hs)
	}

	var overlimpSimple, overlimpTech string
	if cat == poker.Playable && !ip {
		overlimpSimple = fmt.Sprintf("Correct - just call. With %s from the Small Blind (you'll act first all game), raising is risky. Call cheaply and see if you hit the flop.", hs)
		overlimpTech = fmt.Sprintf("Correct. Overlimping with %s (%s) from the Small Blind is the best play. Iso-raising to %d chips would build a large pot that you'll play from the worst position at the table (OOP every street). Instead, calling 1 BB lets you see a cheap flop with a speculative hand and realise implied odds without committing too many chips. Note: iso-raise from CO or BTN with this hand.",
			hs, catName, isoChips)
	} else {
		if ip {
			overlimpSimple = "Just calling here wastes your positional advantage. You're acting last - raise to take control and play heads-up."
			overlimpTech = fmt.Sprintf("Overlimping with %s (%s) from %s is too passive. You have positional advantage (IP) - iso-raising to %d chips (%d BB) is higher EV. It denies limpers' cheap flops, wins dead money outright sometimes, and sets up a profitable postflop spot in position.",
				hs, catName, posStr, isoChips, isoBB)
		} else {
			overlimpSimple = fmt.Sprintf("Just calling here is too passive with %s. Raise - you have a strong enough hand to take control.", hs)
			overlimpTech = fmt.Sprintf("Overlimping with %s (%s) from %s is too passive. This hand is too strong to just call - iso-raise to %d chips (%d BB) to punish the limpers and build the pot with initiative.",
				hs, catName, posStr, isoChips, isoBB)
		}
	}

	var isoSimple, isoTech string
	switch {
	case cat == poker.Premium || cat == poker.Strong:
		isoSimple = fmt.Sprintf("Correct - raise to %d chips (%d big blinds)! You have a strong hand. Don't let the other players see a cheap flop - make them pay or fold.", isoChips, isoBB)
		isoTech = fmt.Sprintf("Correct. Iso-raising to %d chips (%d BB) with %s (%s) is mandatory from %s. You never let limpers see a cheap flop with a premium or strong hand. The raise: (1) defines your hand as strong, (2) builds a pot with an equity advantage, (3) often wins uncontested vs %d %s. Size is %d BB to account for %d limper(s) already in the pot.",
			isoChips, isoBB, hs, catName, posStr, limperCount, limperWord, isoBB, limperCount)
	case cat == poker.Playable && ip:
		isoSimple = fmt.Sprintf("Correct - raise to %d chips (%d big blinds)! You'll be acting last all hand, which is a big advantage. Raise to play heads-up in a strong position.", isoChips, isoBB)
		isoTech = fmt.Sprintf("Correct. Iso-raising to %d chips (%d BB) with %s (%s) from %s (IP) is correct. Limpers are almost always weaker than a raiser's range. With positional advantage postflop you can: c-bet profitably on a wide range of boards, win with fold equity, and extract value when you connect. %d BB accounts for %d %s already limped.",
			isoChips, isoBB, hs, catName, posStr, isoBB, limperCount, limperWord)
	default:
		isoSimple = fmt.Sprintf("Raising here puts a lot of chips into a pot where you'll be acting first every street - a tough spot with %s. Call or fold instead.", hs)
		isoTech = fmt.Sprintf("Iso-raising to %d chips with %s (%s) from %s (OOP) builds too large a pot to play from the worst position at the table. With a %s hand OOP, overlimping or folding is better than iso-raising.",
			isoChips, hs, catName, posStr, catName)
	}

	players := []PlayerState{
		{Seat: 1, Position: UTG, Stack: stack, IsHero: false, IsActive: true},
		{Seat: 2, Position: heroPos, Stack: stack, IsHero: true, IsActive: true},
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Fold", IsCorrect: correct == "A", Explanation: styled(ts, foldSimple, foldTech)},
		{ID: "B", Text: "Call", IsCorrect: correct == "B", Explanation: styled(ts, overlimpSimple, overlimpTech)},
		{ID: "C", Text: fmt.Sprintf("Raise to %d BB", isoBB), IsCorrect: correct == "C", Explanation: styled(ts, isoSimple, isoTech)},
	}

	return scenario(scenarioID, AntiLimperIsolation, branchKey, CashGame, heroPos,
		heroHand, []poker.Card{}, players, pot, bb, question, answers)
}

// holeStrength is the squeeze-spot tier of hero's holding.
type holeStrength uint8

const (
	holePremium holeStrength = iota
	holeSpeculative
	holeWeak
)

func (s holeStrength) String() string {
	switch s {
	case holePremium:
		return "premium (AA/KK/QQ/AKs)"
	case holeSpeculative:
		return "speculative (mid pair / suited connector)"
	default:
		return "weak (off-suit rag / dominated hand)"
	}
}

// generateSqueeze builds the squeeze-play drill.
//
// RNG order: shuffle, deal x2, strength, callers, sizing.
func generateSqueeze(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	deck := poker.NewShuffledDeck(rng)
	heroHand := [2]poker.Card{deck.Deal(), deck.Deal()}

	strength := holeStrength(rng.IntN(3))

	callers := 1
	switch difficulty {
	case Intermediate:
		callers = intIn(rng, 1, 2)
	case Advanced:
		callers = intIn(rng, 1, 3)
	}

	bb := bigBlind
	openBB, stackBB := 3, 100
	switch difficulty {
	case Intermediate:
		openBB = intIn(rng, 2, 4)
		stackBB = intIn(rng, 60, 120)
	case Advanced:
		openBB = intIn(rng, 2, 5)
		stackBB = intIn(rng, 25, 150)
	}

	// Dead money before hero acts: open + callers x open + SB (1 BB simplified).
	potBB := openBB + callers*openBB + 1
	pot := potBB * bb
	stack := stackBB * bb

	// Squeeze sizing: ~3x the open plus one open per caller.
	squeezeBB := openBB*3 + callers*openBB
	squeeze := squeezeBB * bb

	var correct, branchKey string
	switch strength {
	case holePremium:
		correct, branchKey = "C", "Premium:Squeeze"
	case holeSpeculative:
		correct, branchKey = "B", "Speculative:Call"
	default:
		correct, branchKey = "A", "Weak:Fold"
	}

	heroPos, openerPos := BTN, UTG
	hs := handStr(heroHand)
	callerStr := fmt.Sprintf("%d callers", callers)
	if callers == 1 {
		callerStr = "1 caller"
	}

	question := styled(ts,
		fmt.Sprintf("Before the flop. You have %s on the Button. One player raised to %d big blinds and %s called. Pot: %d chips. Stack: %d chips. A big re-raise would be ~%d big blinds. What do you do?",
			hs, openBB, callerStr, pot, stack, squeezeBB),
		fmt.Sprintf("Preflop squeeze. You hold %s (%s) on the Button. UTG opens to %d BB, %s in between. Pot: %d chips (%d BB). Stack: %d chips. A squeeze would be ~%d chips (%d BB). What do you do?",
			hs, strength, openBB, callerStr, pot, potBB, stack, squeeze, squeezeBB),
	)

	foldSimple := "Folding here is too cautious - you have a good enough hand to re-raise or call."
	foldTech := fmt.Sprintf("Folding a %s gives up significant equity. Premium hands profit most when the pot is large and opponents are dominated. Speculative hands need callers for implied odds. Only fold genuinely weak holdings.", strength)
	if strength == holeWeak {
		foldSimple = "Correct - fold. Your hand isn't strong enough to enter a large pot against multiple active players."
		foldTech = fmt.Sprintf("Correct. Folding a %s in this squeeze spot is the right play. Your hand has poor equity against the opener's range and the callers - even the BTN pot-odds discount doesn't compensate for dominated equity. Wait for a better spot.", strength)
	}

	callSimple := "Just calling isn't the best play here - re-raise to take control and thin the field."
	var callTech string
	switch strength {
	case holeSpeculative:
		callSimple = "Correct - call. With a hand that plays well in big pots, you can call and try to hit a big hand on the flop."
		callTech = fmt.Sprintf("Correct. Calling with a %s is optimal. Multiple callers create a large pot and improve your implied odds for sets, straights, and flushes. Squeezing bloats the pot where you may be dominated. Calling keeps your range disguised and preserves the implied-odds edge.", strength)
	case holePremium:
		callTech = fmt.Sprintf("Calling with a %s leaves too much value on the table. You have a massive equity edge - squeezing forces dominated hands to pay a steep price, often winning the dead money outright or playing a large pot as a significant favourite.", strength)
	default:
		callTech = fmt.Sprintf("Calling with a %s is -EV. You have poor equity against both the opener and the callers with no strong implied-odds potential. Fold.", strength)
	}

	squeezeSimple := fmt.Sprintf("Re-raising here with %s isn't justified. Your hand isn't strong enough to play a huge pot.", hs)
	var squeezeTech string
	switch strength {
	case holePremium:
		squeezeSimple = fmt.Sprintf("Correct - re-raise big! With %s you have a great hand. A big re-raise will often win the pot right now, or leave you heads-up against one player with the best hand.", hs)
		squeezeTech = fmt.Sprintf("Correct. Squeezing to %d BB with a %s is the highest-EV play. Your hand has dominant equity over the field. A squeeze isolates, collects dead money when folds come, and builds a large pot played as a heavy favourite when called. Never limp or flat with premium hands in a squeeze spot.", squeezeBB, strength)
	case holeSpeculative:
		squeezeTech = fmt.Sprintf("Squeezing with a %s turns a good implied-odds hand into a commitment bluff. If called, you are out of position with a hand that needs to hit the board - facing a range that calls 3-bets and likely dominates you. Calling is higher EV.", strength)
	default:
		squeezeTech = fmt.Sprintf("Squeezing with a %s is a low-equity bluff. The opener and callers have uncapped ranges - expect 4-bets and calls from better hands. This play has strongly negative expected value.", strength)
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Fold", IsCorrect: correct == "A", Explanation: styled(ts, foldSimple, foldTech)},
		{ID: "B", Text: fmt.Sprintf("Call (%d BB)", openBB), IsCorrect: correct == "B", Explanation: styled(ts, callSimple, callTech)},
		{ID: "C", Text: fmt.Sprintf("Squeeze to %d chips (%d BB)", squeeze, squeezeBB), IsCorrect: correct == "C", Explanation: styled(ts, squeezeSimple, squeezeTech)},
	}

	players := []PlayerState{
		{Seat: 1, Position: openerPos, Stack: stack, IsHero: false, IsActive: true},
		{Seat: 2, Position: heroPos, Stack: stack, IsHero: true, IsActive: true},
	}

	return scenario(scenarioID, SqueezePlay, branchKey, CashGame, heroPos,
		heroHand, []poker.Card{}, players, pot, openBB*bb, question, answers)
}

// defenseStrength is hero's tier when defending the big blind.
type defenseStrength uint8

const (
	defenseStrong defenseStrength = iota
	defensePlayable
	defenseWeak
)

func (s defenseStrength) String() string {
	switch s {
	case defenseStrong:
		return "strong (JJ+/AK/AQs)"
	case defensePlayable:
		return "playable (mid pair / suited connector / broadway)"
	default:
		return "weak (off-suit trash)"
	}
}

// generateBBDefense builds the big blind defense drill.
//
// RNG order: shuffle, deal x2, strength, villain position, sizing.
func generateBBDefense(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	deck := poker.NewShuffledDeck(rng)
	heroHand := [2]poker.Card{deck.Deal(), deck.Deal()}

	strength := defenseStrength(rng.IntN(3))

	// Villain's position sets their opening range width.
	var villainPos Position
	switch rng.IntN(3) {
	case 0:
		villainPos = UTG
	case 1:
		villainPos = CO
	default:
		villainPos = BTN
	}

	bb := bigBlind
	raiseBB, stackBB := 3, 100
	switch difficulty {
	case Intermediate:
		raiseBB = intIn(rng, 2, 4)
		stackBB = intIn(rng, 60, 120)
	case Advanced:
		raiseBB = intIn(rng, 2, 5)
		stackBB = intIn(rng, 25, 150)
	}

	// Pot before hero acts: raise + hero's dead big blind; SB folds.
	potBB := raiseBB + 1
	pot := potBB * bb
	stack := stackBB * bb

	// Standard BB 3-bet sizing: ~3x raise plus the dead BB re-invested.
	threeBetBB := raiseBB*3 + 1
	threeBet := threeBetBB * bb

	var correct, branchKey string
	switch strength {
	case defenseStrong:
		correct, branchKey = "C", "Strong:ThreeBet"
	case defensePlayable:
		correct, branchKey = "B", "Playable:Call"
	default:
		correct, branchKey = "A", "Weak:Fold"
	}

	heroPos := BB
	hs := handStr(heroHand)

	question := styled(ts,
		fmt.Sprintf("Before the flop. You have %s in the Big Blind. %s raised to %d big blinds. Everyone else folded. Pot: %d chips. Stack: %d chips. A re-raise would be ~%d big blinds. What do you do?",
			hs, villainPos, raiseBB, pot, stack, threeBetBB),
		fmt.Sprintf("Big Blind defense. You hold %s (%s) in the Big Blind. %s raises to %d BB. Action folds to you. Pot: %d chips (%d BB). Stack: %d chips. A 3-bet would be ~%d chips (%d BB). What do you do?",
			hs, strength, villainPos, raiseBB, pot, potBB, stack, threeBet, threeBetBB),
	)

	foldSimple := "Folding here throws away money you already put in. You have a playable hand - call at minimum."
	foldTech := fmt.Sprintf("Folding a %s from the BB is too tight. You already have 1 BB invested and are getting a direct pot-odds discount. Strong hands should 3-bet; playable hands should call. Only trash warrants a fold here.", strength)
	if strength == defenseWeak {
		foldSimple = fmt.Sprintf("Correct - fold. Even with your money already in, %s isn't strong enough continue against this raise.", hs)
		foldTech = fmt.Sprintf("Correct. Folding a %s from the BB is correct even with the pot-odds discount. Off-suit non-broadway hands have poor equity and will routinely flop dominated pairs, no draws, and difficult second-best spots. Save the chips for a better hand.", strength)
	}

	callSimple := "Just calling is too passive - re-raise with this strong hand to build the pot."
	var callTech string
	switch strength {
	case defensePlayable:
		callSimple = fmt.Sprintf("Correct - call! You're already part-way in with the Big Blind and %s can see a flop at a discount. Don't fold this away.", hs)
		callTech = fmt.Sprintf("Correct. Calling with a %s from the BB is the best play. Your pot-odds discount and direct equity make defence profitable. Playable hands (pairs, suited connectors, broadways) have enough equity and implied odds to justify calling %d BB and seeing a flop. Avoid 3-betting marginal hands OOP.", strength, raiseBB)
	case defenseStrong:
		callTech = fmt.Sprintf("Calling with a %s from the BB misses a value opportunity. You have a large equity advantage over %s's range - a 3-bet builds the pot while you're ahead and may win the dead money outright. Calling allows villain to realise their equity cheaply.", strength, villainPos)
	default:
		callTech = fmt.Sprintf("Calling with a %s from the BB is still -EV. The pot-odds discount helps but doesn't overcome the fact that off-suit trash has minimal equity, poor flop-hit rate, and faces a strong opening range. Fold and wait.", strength)
	}

	threeBetSimple := fmt.Sprintf("Re-raising here is too aggressive with %s. Just call and see the flop.", hs)
	var threeBetTech string
	switch strength {
	case defenseStrong:
		threeBetSimple = fmt.Sprintf("Correct - re-raise to %d big blinds! %s is a strong hand. Make your opponent pay to continue and take control of the pot.", threeBetBB, hs)
		threeBetTech = fmt.Sprintf("Correct. 3-betting to %d BB with a %s from the BB is the highest-EV play. You have a significant equity advantage over %s's opening range. A 3-bet builds the pot while you're ahead, denies equity to dominated hands, and forces a tough decision. Against a wide opener (CO/BTN) this is even more profitable.", threeBetBB, strength, villainPos)
	case defensePlayable:
		threeBetTech = fmt.Sprintf("3-betting with a %s from the BB turns a +EV call into a marginal bluff-raise. Playable hands do not have enough raw equity to 3-bet for value against most opening ranges, and bloating the pot OOP with a speculative hand is risky. Calling preserves implied odds.", strength)
	default:
		threeBetTech = fmt.Sprintf("3-betting with a %s from the BB is a bluff with no equity foundation. Even if it works occasionally, this play has poor risk-to-reward - villain can 4-bet or call with many better hands. Fold instead.", strength)
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Fold", IsCorrect: correct == "A", Explanation: styled(ts, foldSimple, foldTech)},
		{ID: "B", Text: fmt.Sprintf("Call (%d BB)", raiseBB), IsCorrect: correct == "B", Explanation: styled(ts, callSimple, callTech)},
		{ID: "C", Text: fmt.Sprintf("3-bet to %d chips (%d BB)", threeBet, threeBetBB), IsCorrect: correct == "C", Explanation: styled(ts, threeBetSimple, threeBetTech)},
	}

	players := headsUp(heroPos, villainPos, stack, stack)

	return scenario(scenarioID, BigBlindDefense, branchKey, CashGame, heroPos,
		heroHand, []poker.Card{}, players, pot, raiseBB*bb, question, answers)
}

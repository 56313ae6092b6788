package trainer

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/pokertrainer/classification"
	"github.com/lox/pokertrainer/poker"
)

// Turn topic generators: double barrel, probe bet, and delayed c-bet. All
// three deal a 4-card board (flop plus turn) and ask hero for the turn action.

// generateBarrel builds the double-barrel drill. The turn card type decides:
// draw completions check, scare broadways bet large, blanks bet medium on wet
// flops and check on dry ones.
func generateBarrel(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	deck := poker.NewShuffledDeck(rng)
	heroHand := [2]poker.Card{deck.Deal(), deck.Deal()}
	flop := deck.DealN(3)
	turn := deck.Deal()

	texture := classification.Texture(flop)
	turnType := classification.ClassifyBarrelTurn(flop, turn)

	bb := bigBlind
	stackBB, potBB := 100, 0
	switch difficulty {
	case Intermediate:
		stackBB = intIn(rng, 50, 130)
		potBB = intIn(rng, 10, 28)
	case Advanced:
		stackBB = intIn(rng, 25, 200)
		potBB = intIn(rng, 8, 40)
	default:
		potBB = intIn(rng, 14, 22)
	}
	pot := potBB * bb
	stack := stackBB * bb

	heroPos := CO
	if coinFlip(rng) {
		heroPos = BTN
	}

	players := headsUp(heroPos, BB, stack, stack)

	var branchKey string
	switch turnType {
	case classification.BarrelDrawComplete:
		branchKey = "DrawComplete"
	case classification.BarrelScareBroadway:
		branchKey = "ScareBroadway"
	default:
		if texture == classification.Dry {
			branchKey = "Blank:Dry"
		} else {
			branchKey = "Blank:Wet"
		}
	}

	flopS := boardStr(flop)
	hs := handStr(heroHand)
	posStr := heroPos.String()
	textureStr := texture.String()
	turnStr := turn.String()

	var turnLabel, turnLabelSimple string
	switch turnType {
	case classification.BarrelBlank:
		turnLabel = "blank"
		turnLabelSimple = "blank (doesn't help either player much)"
	case classification.BarrelScareBroadway:
		turnLabel = "scare Broadway card"
		turnLabelSimple = "big card (J, Q, K, or A)"
	default:
		turnLabel = "draw-completing card"
		turnLabelSimple = "possible draw-completing card"
	}

	medium := pot / 2
	large := pot * 4 / 5

	question := styled(ts,
		fmt.Sprintf("You bet after the first three cards and your opponent called. You have %s in %s. First three cards: %s. Fourth card: %s (a %s). Pot: %d chips. Stack: %d chips. Your opponent checks to you. Options: check, bet medium (~%d chips), bet big (~%d chips). What do you do?",
			hs, posStr, flopS, turnStr, turnLabelSimple, pot, stack, medium, large),
		fmt.Sprintf("You c-bet the flop and villain called. You hold %s from %s. Flop: %s (%s). Turn: %s (a %s). Pot is %d chips (%d BB), stack %d chips (%d BB). Villain checks to you. Bet options: medium (~50%% pot = %d chips) or large (~80%% pot = %d chips). What do you do?",
			hs, posStr, flopS, textureStr, turnStr, turnLabel, pot, potBB, stack, stackBB, medium, large),
	)

	var correct string
	switch turnType {
	case classification.BarrelDrawComplete:
		correct = "A"
	case classification.BarrelScareBroadway:
		correct = "C"
	default:
		if texture == classification.Dry {
			correct = "A"
		} else {
			correct = "B"
		}
	}

	var checkSimple, checkTech string
	switch turnType {
	case classification.BarrelDrawComplete:
		checkSimple = "Correct - check. The new card may have completed your opponent's draw. Betting here is risky - take a free look at the next card."
		checkTech = fmt.Sprintf("Correct. The %s completes potential draws - villain's check-calling range is now stronger and your bluff equity has collapsed. Checking back controls the pot and takes a free showdown or river spot.", turnStr)
	case classification.BarrelScareBroadway:
		checkSimple = "Checking here lets your opponent off the hook. The big card actually helps your story - bet to take the pot."
		checkTech = fmt.Sprintf("The %s is a scare card that actually hits your late-position preflop range harder than villain's calling range. Checking surrenders fold equity when barrelling is profitable.", turnStr)
	default:
		if correct == "A" {
			checkSimple = "Correct - check. The new card doesn't change much on a dry board. No need to bet without a strong hand."
			checkTech = fmt.Sprintf("Correct. On a %s dry board a blank turn (%s) gives you no reason to barrel without a value hand or clear draw. Checking back to control pot size is the strongest play.", textureStr, turnStr)
		} else {
			checkSimple = "Checking gives your opponent a free card when draws are still possible. Bet to make them pay."
			checkTech = fmt.Sprintf("Checking on a %s board with draws still live gives villain a free card. You should charge draws with a medium-sized bet.", textureStr)
		}
	}

	var mediumSimple, mediumTech string
	switch turnType {
	case classification.BarrelDrawComplete:
		mediumSimple = "Betting into a possible completed draw is risky - your opponent may now have a better hand than you. Check."
		mediumTech = fmt.Sprintf("Barrelling into a completed draw is a leak. The %s strengthens villain's check-calling range; a bet risks getting check-raised or called by made hands that now beat you.", turnStr)
	case classification.BarrelScareBroadway:
		mediumSimple = "A medium bet works but a bigger bet puts more pressure on your opponent when the big card hits."
		mediumTech = fmt.Sprintf("A 50%% pot bet is an option but undersizes the scare-card advantage. When a Broadway card (%s) hits, your polarised range can support a larger barrel to maximise fold equity from villain's medium-strength hands.", turnStr)
	default:
		if correct == "B" {
			mediumSimple = "Correct - bet medium. Draws are still possible and a medium bet makes it expensive for your opponent to chase them."
			mediumTech = fmt.Sprintf("Correct. A ~50%% pot barrel on a %s board gives villain incorrect pot odds to continue with flush draws (~20%% equity on the turn). It charges draws without over-committing.", textureStr)
		} else {
			mediumSimple = "Betting medium on a dry board without a strong hand wastes chips. Check instead."
			mediumTech = fmt.Sprintf("Betting 50%% pot on a %s dry board without a value hand or draw is a marginal bluff with little fold equity. Checking back is higher EV.", textureStr)
		}
	}

	var largeSimple, largeTech string
	switch turnType {
	case classification.BarrelDrawComplete:
		largeSimple = "Betting big into a possible completed draw is a big mistake - you could be betting into a made hand."
		largeTech = fmt.Sprintf("A large barrel into a completed draw board is a significant mistake. Villain's check-calling range is polarised toward made hands after the %s; an 80%% pot bet as a bluff has very low fold equity and costs you a lot when called.", turnStr)
	case classification.BarrelScareBroadway:
		largeSimple = "Correct - bet big! The big card (J/Q/K/A) looks scary to your opponent and suggests you have a strong hand. A big bet here forces tough decisions."
		largeTech = fmt.Sprintf("Correct. An ~80%% pot barrel on the %s leverages the scare card to maximise fold equity. Your range (opening from %s) is heavily weighted toward Broadway cards, making this bet highly credible and difficult for villain's medium pairs and draws to continue against.", turnStr, posStr)
	default:
		largeSimple = "Betting big without a good reason on this board is too aggressive. Check or bet medium."
		largeTech = fmt.Sprintf("An 80%% pot bet on a blank turn without a strong hand or draw over-commits resources. Size down or check back - large barrels on %s boards without the nuts can become difficult to follow through on the river.", textureStr)
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Check", IsCorrect: correct == "A", Explanation: styled(ts, checkSimple, checkTech)},
		{ID: "B", Text: "Bet medium", IsCorrect: correct == "B", Explanation: styled(ts, mediumSimple, mediumTech)},
		{ID: "C", Text: "Bet large", IsCorrect: correct == "C", Explanation: styled(ts, largeSimple, largeTech)},
	}

	board := append(flop, turn)

	return scenario(scenarioID, TurnBarrelDecision, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, 0, question, answers)
}

// probeStrength is hero's tier for the OOP probe-bet decision.
type probeStrength uint8

const (
	probeStrong probeStrength = iota
	probeMedium
	probeWeak
)

func (s probeStrength) String() string {
	switch s {
	case probeStrong:
		return "strong (top pair+ / strong draw)"
	case probeMedium:
		return "medium (middle pair / weak draw)"
	default:
		return "weak (bottom pair / air)"
	}
}

func (s probeStrength) simple() string {
	switch s {
	case probeStrong:
		return "strong hand"
	case probeMedium:
		return "medium hand"
	default:
		return "weak hand"
	}
}

// generateProbe builds the turn probe drill. The flop checked through, so
// villain's range is capped: strong hands probe large, medium hands small,
// weak hands check.
func generateProbe(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	deck := poker.NewShuffledDeck(rng)
	heroHand := [2]poker.Card{deck.Deal(), deck.Deal()}
	board := deck.DealN(4)

	strength := probeStrength(rng.IntN(3))

	bb := bigBlind
	potBB, stackBB := 0, 80
	switch difficulty {
	case Intermediate:
		potBB = intIn(rng, 4, 20)
		stackBB = intIn(rng, 40, 100)
	case Advanced:
		potBB = intIn(rng, 4, 30)
		stackBB = intIn(rng, 20, 150)
	default:
		potBB = intIn(rng, 6, 14)
	}
	pot := potBB * bb
	stack := stackBB * bb

	smallProbe := round(float64(pot) * 0.40)
	largeProbe := round(float64(pot) * 0.70)

	var correct, branchKey string
	switch strength {
	case probeStrong:
		correct, branchKey = "C", "Strong:ProbeLarge"
	case probeMedium:
		correct, branchKey = "B", "Medium:ProbeSmall"
	default:
		correct, branchKey = "A", "Weak:Check"
	}

	heroPos := BB
	hs := handStr(heroHand)
	bs := boardStr(board)

	question := styled(ts,
		fmt.Sprintf("Both players checked after the first three cards. Fourth card: %s. You have %s (%s) in the Big Blind (you act first). Pot: %d chips. Stack: %d chips. Options: check, bet small (%d chips), bet big (%d chips). What do you do?",
			bs, hs, strength.simple(), pot, stack, smallProbe, largeProbe),
		fmt.Sprintf("Turn probe spot. You hold %s (%s) in the Big Blind (OOP). The flop was checked through by both players. Board (flop + turn): %s. Pot: %d chips (%d BB). Stack: %d chips. You are first to act on the turn. Probe options: small (%d chips ~40%%), large (%d chips ~70%%). What do you do?",
			hs, strength, bs, pot, potBB, stack, smallProbe, largeProbe),
	)

	checkSimple := "Checking here misses an opportunity. Your hand is strong enough to bet and take the pot."
	checkTech := fmt.Sprintf("Checking a %s when you can take the initiative is too passive. Villain checked back the flop - their range is capped (no sets, no strong top pairs). Use that information and probe to build the pot or apply pressure.", strength)
	if strength == probeWeak {
		checkSimple = "Correct - check. Your hand is weak and your opponent didn't bet on the flop - no reason to bet now."
		checkTech = fmt.Sprintf("Correct. Checking a %s in this OOP probe spot is right. You have no equity justification to bet - a probe would be a pure bluff into a player who checked back the flop (a capped but still medium-strong range). Check, and consider check-folding if villain bets.", strength)
	}

	smallSimple := "A small bet doesn't do enough here - bet bigger to put real pressure on, or just check."
	var smallTech string
	switch strength {
	case probeMedium:
		smallSimple = "Correct - bet small. Your hand is decent but not great. A small bet tests the water and may win the pot without risking too much."
		smallTech = fmt.Sprintf("Correct. A small probe (~40%% pot) with a %s is the best line. Your hand has some equity (a pair or draw) and a small bet applies pressure without over-committing. If called, you have reasonable pot odds for a river bet or free showdown. If raised, you can fold without a catastrophic loss.", strength)
	case probeStrong:
		smallTech = fmt.Sprintf("A small probe with a %s undersizes the value available. Villain's flop check-back range includes top pairs and floats - a larger probe (~70%%) extracts more from one-pair hands and charges any draws more effectively.", strength)
	default:
		smallTech = fmt.Sprintf("Probing small with a %s is a bluff with poor equity. Villain may have floated the flop with a medium hand and will call or raise. Without equity to fall back on, this bet risks chips without justification.", strength)
	}

	largeSimple := "Betting big here is too aggressive for your hand strength. Bet small or check."
	var largeTech string
	switch strength {
	case probeStrong:
		largeSimple = "Correct - bet big! You have a strong hand and the Button didn't bet after the flop (a sign of weakness). Take the pot now with a big bet."
		largeTech = fmt.Sprintf("Correct. A large probe (~70%% pot) with a %s is the highest-EV play. Villain's check-back range is capped and contains many one-pair and draw hands. A larger bet extracts maximum value, charges draws effectively, and builds a significant pot worth fighting for on the river.", strength)
	case probeMedium:
		largeTech = fmt.Sprintf("A large probe with a %s over-commits to a hand with moderate equity. If raised, you face a tough spot with a middle pair or weak draw. A smaller probe (~40%%) achieves semi-bluff value at lower risk.", strength)
	default:
		largeTech = fmt.Sprintf("Probing large with a %s is a high-risk bluff with minimal equity. Villain's check-back range often contains medium-strength hands that call or raise large bets. Check to preserve your stack.", strength)
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Check", IsCorrect: correct == "A", Explanation: styled(ts, checkSimple, checkTech)},
		{ID: "B", Text: fmt.Sprintf("Probe small (%d chips ~40%%)", smallProbe), IsCorrect: correct == "B", Explanation: styled(ts, smallSimple, smallTech)},
		{ID: "C", Text: fmt.Sprintf("Probe large (%d chips ~70%%)", largeProbe), IsCorrect: correct == "C", Explanation: styled(ts, largeSimple, largeTech)},
	}

	players := headsUp(heroPos, BTN, stack, stack)

	return scenario(scenarioID, TurnProbeBet, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, 0, question, answers)
}

func delayedStrengthLabel(s classification.TurnStrength) string {
	switch s {
	case classification.TurnStrong:
		return "strong (overpair / top pair good kicker / two pair / set)"
	case classification.TurnMedium:
		return "medium (middle pair / weak top pair / underpair)"
	default:
		return "weak (missed / low pair / air)"
	}
}

func delayedStrengthSimple(s classification.TurnStrength) string {
	switch s {
	case classification.TurnStrong:
		return "strong hand"
	case classification.TurnMedium:
		return "medium hand"
	default:
		return "weak hand"
	}
}

// generateDelayedCbet builds the delayed c-bet drill. Hero checked back the
// flop in position; hand strength and the turn card type set the sizing.
func generateDelayedCbet(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	deck := poker.NewShuffledDeck(rng)
	heroHand := [2]poker.Card{deck.Deal(), deck.Deal()}
	board := deck.DealN(4)

	flop := board[:3]
	turn := board[3]

	strength := classification.ClassifyTurnStrength(heroHand, board)
	turnType := classification.ClassifyTurnCard(flop, turn)

	bb := bigBlind
	potBB, stackBB := 0, 80
	switch difficulty {
	case Intermediate:
		potBB = intIn(rng, 4, 20)
		stackBB = intIn(rng, 40, 100)
	case Advanced:
		potBB = intIn(rng, 4, 30)
		stackBB = intIn(rng, 20, 150)
	default:
		potBB = intIn(rng, 6, 14)
	}
	pot := potBB * bb
	stack := stackBB * bb

	smallCbet := round(float64(pot) * 0.33)
	mediumCbet := round(float64(pot) * 0.60)

	var correct string
	switch {
	case strength == classification.TurnStrong:
		correct = "C"
	case strength == classification.TurnMedium && turnType == classification.TurnBlank:
		correct = "B"
	default:
		correct = "A"
	}

	turnLabel := "Blank"
	if turnType == classification.TurnScare {
		turnLabel = "Scare"
	}
	var strengthLabel string
	switch strength {
	case classification.TurnStrong:
		strengthLabel = "Strong"
	case classification.TurnMedium:
		strengthLabel = "Medium"
	default:
		strengthLabel = "Weak"
	}
	branchKey := fmt.Sprintf("%s:%s", strengthLabel, turnLabel)

	heroPos := BTN
	hs := handStr(heroHand)
	bs := boardStr(board)
	texture := classification.Texture(board)
	strengthStr := delayedStrengthLabel(strength)
	strengthSimple := delayedStrengthSimple(strength)

	question := styled(ts,
		fmt.Sprintf("You raised before the flop from the Button. The Big Blind called. On the flop you checked behind. Now on the turn the board is: %s. You have %s (%s). Pot: %d chips. Stack: %d chips. Villain checks to you. What do you do?",
			bs, hs, strengthSimple, pot, stack),
		fmt.Sprintf("Delayed c-bet spot. You opened BTN, BB called. You checked back the flop (no c-bet). Board: %s (%s). You hold %s (%s). Turn card is a %s. Pot: %d chips (%d BB). Stack: %d chips. Villain checks. Delayed c-bet options: small (%d ~33%%), medium (%d ~60%%), or check. What is your play?",
			bs, texture, hs, strengthStr, turnLabel, pot, potBB, stack, smallCbet, mediumCbet),
	)

	scare := turnType == classification.TurnScare

	var checkSimple, checkTech string
	switch {
	case strength == classification.TurnWeak:
		checkSimple = "Correct - check. Your hand missed the board. Betting here with nothing risks chips for no reason. Check and see a free river."
		checkTech = fmt.Sprintf("Correct. With a %s you have no equity to justify a delayed c-bet. Villain's flop check/check line doesn't cap their range enough to bluff profitably. Check and realise any equity you have.", strengthStr)
	case strength == classification.TurnMedium && scare:
		checkSimple = "Correct - check for pot control. The turn card changed the board and your medium hand may no longer be best. Keep the pot small."
		checkTech = fmt.Sprintf("Correct. The scare turn card (overcard / draw completion) devalues your %s. A delayed c-bet here bloats the pot when villain's continuing range has improved. Check for pot control and reassess on the river.", strengthStr)
	case strength == classification.TurnMedium:
		checkSimple = "Checking here is too passive. You have a decent hand on a quiet turn card - a small bet would get value and protect against draws."
		checkTech = fmt.Sprintf("Checking a %s on a blank turn is too passive. The blank didn't change the board - a small delayed c-bet (~33%%) extracts thin value and denies equity to overcards.", strengthStr)
	default:
		checkSimple = "Checking here wastes your strong hand. You skipped the flop - now is the time to bet and build the pot."
		checkTech = fmt.Sprintf("Checking a %s on the turn after already checking the flop forfeits too much value. You must fire a delayed c-bet to build the pot - villain's range includes many hands that will call a medium sizing.", strengthStr)
	}

	var smallSimple, smallTech string
	switch {
	case strength == classification.TurnMedium && !scare:
		smallSimple = "Correct - bet small. You have a decent hand on a quiet board. A small bet gets value from worse hands and makes draws pay a bit, without risking too much."
		smallTech = fmt.Sprintf("Correct. A small delayed c-bet (~33%% pot) with a %s on a blank turn is optimal. You extract thin value, deny equity to overcards and gutshots, and keep the pot manageable if raised.", strengthStr)
	case strength == classification.TurnStrong:
		smallSimple = "A small bet is too timid with a strong hand. Bet bigger to build the pot and charge draws properly."
		smallTech = fmt.Sprintf("A 33%% sizing with a %s leaves too much value on the table. Villain's range includes one-pair and draw hands that will call ~60%%. Size up to maximise EV.", strengthStr)
	case strength == classification.TurnMedium:
		smallSimple = "A small bet here doesn't accomplish much. With your hand, either check back or bet bigger."
		smallTech = fmt.Sprintf("Betting small on a scare turn with a %s risks getting raised off the best hand. The scare card improves villain's continuing range - pot control via check is preferred.", strengthStr)
	default:
		smallSimple = "A small bet here doesn't accomplish much. With your hand, either check back or bet bigger."
		smallTech = fmt.Sprintf("A small delayed c-bet with a %s is a bluff with poor equity. Villain's calling range on this runout beats you. Save chips and check.", strengthStr)
	}

	var medSimple, medTech string
	switch strength {
	case classification.TurnStrong:
		medSimple = "Correct - bet medium! You have a strong hand and you already checked the flop. Time to get value. A ~60% pot bet puts pressure on weaker hands and makes draws pay."
		medTech = fmt.Sprintf("Correct. A medium delayed c-bet (~60%% pot) with a %s is highest-EV. After checking the flop your range is perceived as weak, so villain will call more liberally. This sizing extracts max value from one-pair and draw hands while setting up a river shove.", strengthStr)
	case classification.TurnMedium:
		medSimple = "A medium bet is too big for your hand strength. You risk too many chips when you might not have the best hand."
		medTech = fmt.Sprintf("A 60%% pot delayed c-bet over-commits a %s. If raised, you're in a tough spot with a marginal hand. A smaller sizing (~33%%) achieves the same protection at lower risk, or check on a scare card.", strengthStr)
	default:
		medSimple = "Betting big with a weak hand is reckless. Check and save your chips."
		medTech = fmt.Sprintf("A large delayed c-bet with a %s is a high-risk bluff. Villain's range after calling preflop and seeing a check-through includes many sticky hands. Check to preserve your stack.", strengthStr)
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Check", IsCorrect: correct == "A", Explanation: styled(ts, checkSimple, checkTech)},
		{ID: "B", Text: fmt.Sprintf("Small delayed c-bet (%d chips ~33%%)", smallCbet), IsCorrect: correct == "B", Explanation: styled(ts, smallSimple, smallTech)},
		{ID: "C", Text: fmt.Sprintf("Medium delayed c-bet (%d chips ~60%%)", mediumCbet), IsCorrect: correct == "C", Explanation: styled(ts, medSimple, medTech)},
	}

	players := headsUp(heroPos, BB, stack, stack)

	return scenario(scenarioID, DelayedCbet, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, 0, question, answers)
}

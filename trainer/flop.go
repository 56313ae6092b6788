package trainer

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/pokertrainer/classification"
	"github.com/lox/pokertrainer/poker"
)

// Flop topic generators: c-bet sizing, pot odds, check-raise, semi-bluff,
// and 3-bet pot c-bet. All five deal a 3-card flop. Board texture drives
// c-bet sizing; draw classification drives the call/raise decisions.

// drawSimpleLabel is the beginner-friendly wording for a draw type.
func drawSimpleLabel(dt classification.DrawType) string {
	switch dt {
	case classification.FlushDraw:
		return "flush draw (you need one more card of the same suit to make a flush)"
	case classification.OESD:
		return "straight draw (you can complete a straight on either end)"
	case classification.ComboDraw:
		return "two-way draw (flush or straight possible)"
	default:
		return "inside straight draw (only one card completes your straight)"
	}
}

// generateCbet builds the c-bet sizing drill. Dry board with range advantage
// favours a small bet, wet boards a large bet, and no advantage a check.
func generateCbet(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	heroHand, board := deal(rng, 3)

	texture := classification.Texture(board)

	bb := bigBlind
	stackBB, potBB := 100, 0
	switch difficulty {
	case Intermediate:
		stackBB = intIn(rng, 60, 130)
		potBB = intIn(rng, 6, 20)
	case Advanced:
		stackBB = intIn(rng, 20, 200)
		potBB = intIn(rng, 4, 30)
	default:
		potBB = intIn(rng, 8, 14)
	}
	pot := potBB * bb
	stack := stackBB * bb

	heroPos := CO
	if coinFlip(rng) {
		heroPos = BTN
	}

	players := headsUp(heroPos, BB, stack, stack)

	// Simplified range advantage: late position on a low board.
	lowestRank := poker.Ace
	for _, c := range board {
		if c.Rank < lowestRank {
			lowestRank = c.Rank
		}
	}
	rangeAdv := heroPos.IsLate() && lowestRank <= poker.Eight

	boardS := boardStr(board)
	handS := handStr(heroHand)
	posStr := heroPos.String()
	textureStr := texture.String()

	var branchKey string
	switch {
	case texture == classification.Dry && rangeAdv:
		branchKey = "Dry:RangeAdv"
	case texture == classification.Dry:
		branchKey = "Dry:NoRangeAdv"
	case texture == classification.SemiWet:
		branchKey = "SemiWet"
	default:
		branchKey = "Wet"
	}

	small := pot / 3
	large := pot * 3 / 4
	overbet := pot * 5 / 4

	question := styled(ts,
		fmt.Sprintf("You bet before the flop and your opponent checked. You have %s in %s. The first three cards: %s. Pot: %d chips. Stack: %d chips. Options: check, bet small (~%d chips), bet big (~%d chips), or overbet (~%d chips). What do you do?",
			handS, posStr, boardS, pot, stack, small, large, overbet),
		fmt.Sprintf("You raised preflop and are the aggressor. You hold %s on %s. The flop comes %s (a %s board). The pot is %d chips (%d BB). Your stack is %d chips (%d BB). Villain checks to you. Bet options: small (~33%% pot = %d chips), large (~75%% pot = %d chips), or overbet (~125%% pot = %d chips). What do you do?",
			handS, posStr, boardS, textureStr, pot, potBB, stack, stackBB, small, large, overbet),
	)

	var correct, checkExp, smallExp, largeExp, overbetExp string
	switch {
	case texture == classification.Dry && rangeAdv:
		correct = "B"
		checkExp = styled(ts,
			"Checking gives your opponent a free card. You're in a strong position here - a small bet is the better play.",
			fmt.Sprintf("Checking with %s on a %s board (%s) sacrifices fold equity and gives villain a free card. From %s with range advantage, betting is better than checking.", handS, textureStr, boardS, posStr))
		smallExp = styled(ts,
			"Correct. A small bet works well here. The board is dry (no likely draws), so a cheap bet is enough to keep the pressure on and collect chips.",
			fmt.Sprintf("A 33%% pot c-bet on a %s board is correct here. It exploits your range advantage from %s, applies pressure at low risk, and denies equity to villain's backdoor draws and overcards.", textureStr, posStr))
		largeExp = styled(ts,
			"Betting this big on a dry board is too much. A small bet gets the same job done for less risk.",
			fmt.Sprintf("A 75%% pot sizing on a %s board is unnecessarily large. Villain folds hands you beat and calls with hands that have equity, making this sizing -EV on a board where a small bet achieves the same goals.", textureStr))
		overbetExp = styled(ts,
			"Overbetting on a dry board is too aggressive - a small bet achieves the same goal more cheaply.",
			fmt.Sprintf("An overbet on a %s board from %s is exploitable. Villain's calling range will have enough equity against an overbet that you cannot profitably use this sizing as a bluff.", textureStr, posStr))
	case texture == classification.Dry:
		correct = "A"
		checkExp = styled(ts,
			"Correct. Check here. The board is dry (no likely draws) and you don't have a big advantage. A free card costs you little and lets you see how the hand develops.",
			fmt.Sprintf("Checking with %s on a %s board (%s) from %s is correct when you lack clear range advantage. A check allows you to control pot size and reassess on the turn.", handS, textureStr, boardS, posStr))
		smallExp = styled(ts,
			"A small bet can work but checking is safer here - you don't have a clear advantage on this board.",
			fmt.Sprintf("A small c-bet can work here but without range advantage you may be building a pot when your range is symmetric with villain's. Checking back and re-evaluating is higher EV from %s.", posStr))
		largeExp = styled(ts,
			"Betting big here over-commits your chips. Check or fold is better when you don't have the advantage.",
			fmt.Sprintf("A 75%% pot c-bet on a %s board without range advantage over-commits with a polarized-looking line when your range may not support the sizing.", textureStr))
		overbetExp = styled(ts,
			"Overbetting without an advantage on this board is a big mistake. Check instead.",
			fmt.Sprintf("Overbetting a %s board without a clear nut advantage is a leak. Reserve overbets for boards where your range is significantly stronger than villain's.", textureStr))
	default: // SemiWet or Wet
		correct = "C"
		checkExp = styled(ts,
			"Checking here lets your opponent draw to a better hand for free. Bet to make them pay.",
			fmt.Sprintf("Checking on a %s board (%s) surrenders too much equity and gives villain free cards with flush/straight draws. From %s you should charge draws with a sizable bet.", textureStr, boardS, posStr))
		smallExp = styled(ts,
			"A small bet is too cheap - your opponent can afford to call and try to improve. Bet bigger to make it expensive.",
			fmt.Sprintf("A 33%% pot bet on a %s board is too small - it gives villain correct pot odds to call with flush draws (~35%% equity) without paying a premium, diluting your fold equity.", textureStr))
		largeExp = styled(ts,
			"Correct. Bet big! The board has draws (possible flush or straight). Make your opponent pay a lot to try to beat you.",
			fmt.Sprintf("A 75%% pot c-bet on a %s board is correct. It charges draws incorrect pot odds (%.0f%% required equity vs ~35%% actual for flush draw), protects your hand, and maintains fold equity against weak pairs.",
				textureStr, classification.RequiredEquity(int(float64(pot)*0.75), pot)*100))
		overbetExp = styled(ts,
			"An overbet on the first three cards is usually too much too soon. A big bet (75%) already does the job.",
			fmt.Sprintf("An overbet on a %s board with %d BB remaining can be used as a polarized bluff, but is generally reserved for the river or specific high-equity situations. On the flop it often folds too much equity and collapses your range.", textureStr, stackBB))
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Check", IsCorrect: correct == "A", Explanation: checkExp},
		{ID: "B", Text: "Bet small", IsCorrect: correct == "B", Explanation: smallExp},
		{ID: "C", Text: "Bet large", IsCorrect: correct == "C", Explanation: largeExp},
		{ID: "D", Text: "Overbet", IsCorrect: false, Explanation: overbetExp},
	}

	return scenario(scenarioID, PostflopContinuationBet, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, 0, question, answers)
}

// generatePotOdds builds the call-or-fold drill: compare the board's draw
// equity (two streets to come) against the required equity of the price.
func generatePotOdds(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	heroHand, board := deal(rng, 3)

	flush := classification.HasFlushDraw(board)
	straight := classification.HasStraightDraw(board)
	var drawType classification.DrawType
	switch {
	case flush && straight:
		drawType = classification.ComboDraw
	case flush:
		drawType = classification.FlushDraw
	case straight:
		drawType = classification.OESD
	default:
		drawType = classification.GutShot
	}

	bb := bigBlind
	var potBB int
	var betPct float64
	switch difficulty {
	case Intermediate:
		potBB = intIn(rng, 6, 20)
		betPct = 0.33 + rng.Float64()*(1.0-0.33)
	case Advanced:
		potBB = intIn(rng, 4, 30)
		betPct = 0.25 + rng.Float64()*(1.5-0.25)
	default:
		potBB = intIn(rng, 8, 12)
		betPct = 0.50
	}
	pot := potBB * bb
	bet := round(float64(pot) * betPct)
	const streetsRemaining = 2

	reqEq := classification.RequiredEquity(bet, pot)
	actualEq := classification.DrawEquity(drawType, streetsRemaining)
	shouldCall := actualEq >= reqEq

	var drawName string
	switch drawType {
	case classification.FlushDraw:
		drawName = "FlushDraw"
	case classification.OESD:
		drawName = "OESD"
	case classification.ComboDraw:
		drawName = "ComboDraw"
	default:
		drawName = "GutShot"
	}
	callFold := "Fold"
	if shouldCall {
		callFold = "Call"
	}
	branchKey := fmt.Sprintf("%s:%s", drawName, callFold)

	handS := handStr(heroHand)
	boardS := boardStr(board)
	heroPos := BB

	drawLabel := drawType.String()
	drawSimple := drawSimpleLabel(drawType)

	question := styled(ts,
		fmt.Sprintf("You have %s and are chasing a %s after the first three cards: %s. Pot: %d chips. Your opponent bet %d chips. Do you call or fold?",
			handS, drawSimple, boardS, pot, bet),
		fmt.Sprintf("You hold %s and have a %s on the flop %s. The pot is %d chips (%d BB). Villain bets %d chips (%.0f%% of pot). Do you call or fold?",
			handS, drawLabel, boardS, pot, potBB, bet, betPct*100),
	)

	callSimple := fmt.Sprintf("Calling here is a mistake. Your hand (%s) doesn't have a good enough chance of improving to make this call worth the price.", drawSimple)
	if shouldCall {
		callSimple = fmt.Sprintf("Correct - call! You have a good chance of improving your hand (%.0f%% roughly), and the price to call is fair. You'll win enough when you hit to make this worthwhile.", actualEq*100)
	}
	above := "Your equity is BELOW the required equity."
	isCorrectWord := "is NOT"
	if shouldCall {
		above = "Your equity EXCEEDS the required equity."
		isCorrectWord = "IS"
	}
	callExp := styled(ts, callSimple,
		fmt.Sprintf("Call analysis: Pot after call = %d chips. You are calling %d chips. Required equity = %d/%d = %.1f%%. Approximate %s equity with 2 streets = %.1f%%. %s Therefore calling %s correct here.",
			pot+bet, bet, bet, pot+bet, reqEq*100, drawLabel, actualEq*100, above, isCorrectWord))

	foldSimple := "Folding is wrong here - your hand has a good enough chance of improving to make this call worth it."
	if !shouldCall {
		foldSimple = fmt.Sprintf("Correct - fold. Your hand (%s) only improves roughly %.0f%% of the time, and the price to call is too high for those odds. Save your chips.", drawSimple, actualEq*100)
	}
	foldVerdict := "However, folding here discards positive expected value since your draw exceeds the required equity."
	foldWord := "is NOT"
	if !shouldCall {
		foldVerdict = "Since your equity is below the break-even threshold, folding preserves chips."
		foldWord = "IS"
	}
	foldExp := styled(ts, foldSimple,
		fmt.Sprintf("Fold analysis: You need %.1f%% equity to call (calling %d into a pot of %d chips). Your %s has approximately %.1f%% equity with 2 cards to come. %s Folding %s correct.",
			reqEq*100, bet, pot+bet, drawLabel, actualEq*100, foldVerdict, foldWord))

	answers := []AnswerOption{
		{ID: "A", Text: "Call", IsCorrect: shouldCall, Explanation: callExp},
		{ID: "B", Text: "Fold", IsCorrect: !shouldCall, Explanation: foldExp},
	}

	players := headsUp(heroPos, BTN, 200, 200)

	return scenario(scenarioID, PotOddsAndEquity, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, bet, question, answers)
}

// boardFavour says whose preflop range the flop hits harder.
type boardFavour uint8

const (
	bbFavorable boardFavour = iota // low/connected, hits the BB's wide range
	ipFavorable                    // high/dry, hits the IP raiser's range
)

func classifyBoardFavour(board []poker.Card) boardFavour {
	sum := 0
	for _, c := range board {
		sum += c.Rank
	}
	if sum <= 20 {
		return bbFavorable
	}
	return ipFavorable
}

// handInteraction says how hero's hole cards connect with the flop.
type handInteraction uint8

const (
	interactionStrong handInteraction = iota // pairs a board card
	interactionDraw                          // flush and/or straight draw
	interactionWeak                          // no pair, no draw
)

func classifyHandInteraction(hand [2]poker.Card, board []poker.Card) handInteraction {
	if classification.HeroHasFlushDraw(hand, board) || classification.HeroHasStraightDraw(hand, board) {
		return interactionDraw
	}
	for _, hc := range hand {
		for _, bc := range board {
			if hc.Rank == bc.Rank {
				return interactionStrong
			}
		}
	}
	return interactionWeak
}

func isComboDraw(hand [2]poker.Card, board []poker.Card) bool {
	return classification.HeroHasFlushDraw(hand, board) && classification.HeroHasStraightDraw(hand, board)
}

// generateCheckRaise builds the OOP flop drill: check-raise strong hands and
// combo draws, check-call medium holdings, fold air on boards that favour the
// in-position raiser.
func generateCheckRaise(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	heroHand, board := deal(rng, 3)

	favour := classifyBoardFavour(board)
	interaction := classifyHandInteraction(heroHand, board)
	combo := isComboDraw(heroHand, board)

	favName := "IPFav"
	if favour == bbFavorable {
		favName = "BBFav"
	}
	var branchKey string
	switch {
	case interaction == interactionStrong:
		branchKey = favName + ":Strong"
	case interaction == interactionDraw && combo:
		branchKey = favName + ":ComboDraw"
	case interaction == interactionDraw:
		branchKey = favName + ":Draw"
	default:
		branchKey = favName + ":Weak"
	}

	bb := bigBlind
	stackBB, potBB := 100, 0
	switch difficulty {
	case Intermediate:
		stackBB = intIn(rng, 50, 130)
		potBB = intIn(rng, 6, 20)
	case Advanced:
		stackBB = intIn(rng, 20, 200)
		potBB = intIn(rng, 4, 30)
	default:
		potBB = intIn(rng, 8, 14)
	}
	pot := potBB * bb
	stack := stackBB * bb

	villainBetPct := intIn(rng, 50, 70)
	villainBet := pot * villainBetPct / 100
	if villainBet < bb {
		villainBet = bb
	}
	crSize := villainBet * 5 / 2

	heroPos, villainPos := BB, BTN

	boardS := boardStr(board)
	handS := handStr(heroHand)
	favourStr := "IP-favorable (high/dry)"
	if favour == bbFavorable {
		favourStr = "BB-favorable (low/connected)"
	}
	var interactionStr string
	switch {
	case interaction == interactionDraw && combo:
		interactionStr = "combo draw"
	case interaction == interactionDraw:
		interactionStr = "draw"
	case interaction == interactionStrong:
		interactionStr = "strong hand (pairs the board)"
	default:
		interactionStr = "weak/air"
	}

	var correct string
	switch {
	case favour == bbFavorable && interaction == interactionStrong:
		correct = "C"
	case interaction == interactionDraw && combo:
		correct = "C"
	case favour == ipFavorable && interaction == interactionWeak:
		correct = "A"
	default:
		correct = "B"
	}

	question := styled(ts,
		fmt.Sprintf("You're in the Big Blind (you act first). First three cards: %s. You have %s. The Button bet %d chips. Pot: %d chips. Stack: %d chips. What do you do?",
			boardS, handS, villainBet, pot, stack),
		fmt.Sprintf("You are in the Big Blind (OOP). Flop: %s (%s). You hold %s (%s). Villain on the Button bets %d chips (%d%% pot). Pot is %d chips (%d BB). Stack: %d chips (%d BB). What is your action?",
			boardS, favourStr, handS, interactionStr, villainBet, villainBetPct, pot, potBB, stack, stackBB),
	)

	hopelessFold := favour == ipFavorable && interaction == interactionWeak

	foldSimple := "Folding here is too cautious - you have enough of a hand to continue. Call or raise."
	foldTech := fmt.Sprintf("Folding %s (%s) here is too tight. You have enough equity or positional leverage to continue, either by calling or check-raising. A fold surrenders too much to villain's %d%% pot bet.",
		handS, interactionStr, villainBetPct)
	if hopelessFold {
		foldSimple = "Correct - fold. You have nothing and the cards favour your opponent's hand. Putting more chips in would be throwing them away."
		foldTech = fmt.Sprintf("Correct. With %s on a %s board (%s), you have no pair, no draw, and the board heavily favours villain's preflop range. Calling invests %d chips with almost no equity. Fold.",
			interactionStr, favourStr, boardS, villainBet)
	}

	var callSimple, callTech string
	switch {
	case correct == "B":
		callSimple = fmt.Sprintf("Correct - call. You have enough of a hand to continue, but not quite enough to raise. Call %d chips and see the next card.", villainBet)
		callTech = fmt.Sprintf("Correct. Check-calling with %s (%s) on %s is the best play. You have equity to continue but not the ideal conditions for a check-raise (either the board doesn't favour your range, or your draw alone doesn't justify building a large pot OOP). Call %d and re-evaluate on the turn.",
			handS, interactionStr, boardS, villainBet)
	case favour == bbFavorable && interaction == interactionStrong:
		callSimple = "Just calling here leaves money on the table. You have a strong hand on a board that favours you - raise to build the pot!"
		callTech = fmt.Sprintf("Check-calling with a strong hand on a BB-favorable board leaves value on the table. You should check-raise to %d chips to build the pot while you're ahead and deny villain's equity from backdoor draws and overcards.", crSize)
	default:
		callSimple = "Just calling here is too passive. With a powerful draw, raise to put maximum pressure on your opponent."
		callTech = fmt.Sprintf("Check-calling is passive here. With %s on %s, a check-raise to %d chips extracts more value and applies pressure. Calling gives villain a free turn card to improve or bluff again cheaply.",
			interactionStr, boardS, crSize)
	}

	var crSimple, crTech string
	switch {
	case favour == bbFavorable && interaction == interactionStrong && correct == "C":
		crSimple = fmt.Sprintf("Correct - raise to %d chips! You have a strong hand and the cards are in your favour. Build the pot while you're ahead.", crSize)
		crTech = fmt.Sprintf("Correct. Check-raising to %d chips (2.5x villain's %d) with %s (%s) on a %s board (%s) is the highest-EV play. This board hits your BB defending range (low/connected) much harder than villain's late-position range. You protect your hand, build the pot with the best of it, and deny villain cheap equity.",
			crSize, villainBet, handS, interactionStr, favourStr, boardS)
	case interaction == interactionDraw && correct == "C":
		crSimple = fmt.Sprintf("Correct - raise to %d chips! You have a powerful draw with about a 54%% chance of winning. Raising wins the pot immediately if your opponent folds, and builds a big pot when they call.", crSize)
		crTech = fmt.Sprintf("Correct. Check-raising to %d chips (2.5x villain's %d) as a combo-draw semi-bluff with %s on %s is correct. Your combo draw has ~54%% equity on the flop - you are a slight favourite! The check-raise wins the pot outright when villain folds, and builds a large pot when villain calls into your equity advantage.",
			crSize, villainBet, handS, boardS)
	case favour == ipFavorable:
		crSimple = "Raising here is a bluff into your opponent's strong card range. They're unlikely to fold and you risk a lot of chips with a weak hand."
		crTech = fmt.Sprintf("Check-raising on a %s board (%s) with %s (%s) is a bluff into villain's strongest range. This board connects heavily with late-position preflop hands; your check-raise has very low fold equity and risks getting 3-bet off a weak hand.",
			favourStr, boardS, handS, interactionStr)
	default:
		crSimple = "Raising without a very strong hand or a powerful draw is too aggressive here. Call instead."
		crTech = fmt.Sprintf("Check-raising with only a %s (not a combo draw) may be too aggressive here. Without either a very strong made hand or a combo draw, the check-raise over-commits chips OOP without sufficient equity to back it up.", interactionStr)
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Fold", IsCorrect: correct == "A", Explanation: styled(ts, foldSimple, foldTech)},
		{ID: "B", Text: "Call", IsCorrect: correct == "B", Explanation: styled(ts, callSimple, callTech)},
		{ID: "C", Text: fmt.Sprintf("Raise to %d BB", crSize/bb), IsCorrect: correct == "C", Explanation: styled(ts, crSimple, crTech)},
	}

	// Hero sits in seat 1 here, the IP villain in seat 2.
	players := []PlayerState{
		{Seat: 1, Position: heroPos, Stack: stack, IsHero: true, IsActive: true},
		{Seat: 2, Position: villainPos, Stack: stack, IsHero: false, IsActive: true},
	}

	return scenario(scenarioID, CheckRaiseSpot, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, villainBet, question, answers)
}

// generateSemiBluff builds the raise-with-a-draw drill. Combo draws and deep
// OESDs raise, flush draws call, gutshots fold.
func generateSemiBluff(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	heroHand, board := deal(rng, 3)

	drawType := classification.ClassifyDraw(board)

	bb := bigBlind
	stackBB, potBB := 60, 0
	switch difficulty {
	case Intermediate:
		stackBB = intIn(rng, 35, 120)
		potBB = intIn(rng, 6, 20)
	case Advanced:
		stackBB = intIn(rng, 20, 200)
		potBB = intIn(rng, 4, 30)
	default:
		potBB = intIn(rng, 8, 14)
	}
	pot := potBB * bb
	stack := stackBB * bb

	villainBetPct := intIn(rng, 50, 75)
	villainBet := pot * villainBetPct / 100
	if villainBet < bb {
		villainBet = bb
	}
	raiseSize := villainBet * 5 / 2

	heroIsIP := coinFlip(rng)
	heroPos, villainPos := BB, CO
	if heroIsIP {
		heroPos, villainPos = BTN, BB
	}

	var branchKey string
	switch drawType {
	case classification.ComboDraw:
		branchKey = "ComboDraw"
	case classification.FlushDraw:
		branchKey = "FlushDraw"
	case classification.OESD:
		if stackBB >= 40 {
			branchKey = "OESD:Deep"
		} else {
			branchKey = "OESD:Short"
		}
	default:
		branchKey = "GutShot"
	}

	boardS := boardStr(board)
	handS := handStr(heroHand)
	posStr := heroPos.String()
	equity := classification.DrawEquity(drawType, 2)
	positionLabel := "out of position"
	positionLabelSimple := "acting first (tough position)"
	if heroIsIP {
		positionLabel = "in position"
		positionLabelSimple = "acting last (good position)"
	}

	drawLabel := drawType.String()
	drawSimple := drawSimpleLabel(drawType)

	var correct string
	switch {
	case drawType == classification.ComboDraw:
		correct = "C"
	case drawType == classification.OESD && stackBB >= 40:
		correct = "C"
	case drawType == classification.FlushDraw || drawType == classification.OESD:
		correct = "B"
	default:
		correct = "A"
	}

	question := styled(ts,
		fmt.Sprintf("You have %s and are chasing a %s after the first three cards: %s. You're %s. Your opponent bet %d chips. Pot: %d chips. Your draw wins roughly %.0f%% of the time. What do you do?",
			handS, drawSimple, boardS, positionLabelSimple, villainBet, pot, equity*100),
		fmt.Sprintf("You hold %s and have a %s on the flop %s. You are %s (%s, %d BB deep). Villain bets %d chips (%d%% pot). Pot is %d chips (%d BB). Your %s has ~%.0f%% equity. What do you do?",
			handS, drawLabel, boardS, positionLabel, posStr, stackBB, villainBet, villainBetPct, pot, potBB, drawLabel, equity*100),
	)

	gutshot := drawType == classification.GutShot

	foldSimple := fmt.Sprintf("Folding is a mistake - your %s wins often enough to continue.", drawSimple)
	foldTech := fmt.Sprintf("Folding a %s (~%.0f%% equity) is too tight here. You have enough equity to continue - either by calling to realise it, or raising as a semi-bluff when conditions are right.", drawLabel, equity*100)
	if gutshot {
		foldSimple = "Correct - fold. An inside straight draw only wins about 17% of the time (roughly 1 in 6). The price to call is too high for those odds. Save your chips."
		foldTech = fmt.Sprintf("Correct. A gutshot (~17%% equity) gives you roughly 4 outs. To call %d chips into a %d-chip pot you need %.1f%% equity - your draw falls well short at 17%%. Even with implied odds, a gutshot rarely justifies the call, and raising as a semi-bluff risks too many chips with insufficient raw equity.",
			villainBet, pot+villainBet, float64(villainBet)/float64(pot+villainBet)*100)
	}

	var callSimple, callTech string
	switch {
	case drawType == classification.FlushDraw && heroIsIP && correct == "B":
		callSimple = "Correct - call. You have a flush draw (~35% chance) and you're in good position (acting last). Call and see the next card - if you hit your flush you can bet big."
		callTech = fmt.Sprintf("Correct. Calling with a %s (~%.0f%% equity) from %s (IP) is the best play. You have position to control the pot on future streets - check back or bet when you hit, give up cheaply when you miss. Raising risks bloating the pot without the positional advantage needed to navigate it well.",
			drawLabel, equity*100, posStr)
	case correct == "B":
		callSimple = "Correct - call. Your draw wins enough of the time to make calling worth it here. Just calling is safer than raising when you're acting first."
		callTech = fmt.Sprintf("Correct. Calling with a %s (~%.0f%% equity) %s is correct here. Your stack depth (%d BB) and/or position make a semi-bluff raise suboptimal - calling lets you realise equity without bloating the pot OOP or risking a re-raise at shallow depth.",
			drawLabel, equity*100, positionLabel, stackBB)
	default:
		callSimple = fmt.Sprintf("Calling is an option, but raising with your %s puts more pressure on your opponent and wins the pot more often.", drawSimple)
		callTech = fmt.Sprintf("Calling is an option but not the highest-EV line here. With a %s (~%.0f%% equity) %s, a semi-bluff raise to %d chips adds fold equity on top of your draw equity, making raising more profitable.",
			drawLabel, equity*100, positionLabel, raiseSize)
	}

	var raiseSimple, raiseTech string
	switch {
	case drawType == classification.ComboDraw && correct == "C":
		raiseSimple = fmt.Sprintf("Correct - raise to %d chips! Your two-way draw wins about 54%% of the time - you're actually a slight favourite! Raising wins the pot right now if your opponent folds, or builds a big pot when you're favoured.", raiseSize)
		raiseTech = fmt.Sprintf("Correct. Raising to %d chips (2.5x villain's %d) with a %s on %s is the highest-EV play. Your combo draw has ~54%% equity - you are a slight favourite! Raising wins the pot outright when villain folds (~40%% of the time) and builds a large pot when villain calls into your equity edge. Never just call with a combo draw when you can apply maximum pressure.",
			raiseSize, villainBet, drawLabel, boardS)
	case drawType == classification.OESD && correct == "C":
		raiseSimple = fmt.Sprintf("Correct - raise to %d chips! A straight draw on both ends wins about 32%% of the time, plus raising might make your opponent fold right now. The raise pays off whether they fold or call.", raiseSize)
		raiseTech = fmt.Sprintf("Correct. Raising to %d chips (2.5x villain's %d) with an %s at %d BB depth is correct. Your OESD has ~32%% equity plus significant fold equity: villain must fold hands like top pair to avoid getting stacked. At %d BB the semi-bluff raise sets up a profitable shove on the turn or a clean check when you miss.",
			raiseSize, villainBet, drawLabel, stackBB, stackBB)
	default:
		raiseSimple = "Raising here is too risky. Your draw doesn't win often enough to justify putting in so many chips. Just call."
		raiseTech = fmt.Sprintf("Raising to %d chips as a semi-bluff with a %s %s is too aggressive here. You risk building a large pot without sufficient equity to back it up. Calling is the stronger line.",
			raiseSize, drawLabel, positionLabel)
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Fold", IsCorrect: correct == "A", Explanation: styled(ts, foldSimple, foldTech)},
		{ID: "B", Text: "Call", IsCorrect: correct == "B", Explanation: styled(ts, callSimple, callTech)},
		{ID: "C", Text: fmt.Sprintf("Raise to %d BB", raiseSize/bb), IsCorrect: correct == "C", Explanation: styled(ts, raiseSimple, raiseTech)},
	}

	players := headsUp(heroPos, villainPos, stack, stack)

	return scenario(scenarioID, SemiBluffDecision, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, villainBet, question, answers)
}

// flopTexture is the coarse texture split used in 3-bet pots.
type flopTexture uint8

const (
	flopDry flopTexture = iota
	flopWet
)

func (t flopTexture) String() string {
	if t == flopDry {
		return "dry (rainbow, uncoordinated)"
	}
	return "wet (two-tone / connected)"
}

// flopStrength is hero's made-hand tier as the 3-better.
type flopStrength uint8

const (
	flopStrong flopStrength = iota
	flopWeak
)

func (s flopStrength) String() string {
	if s == flopStrong {
		return "strong (top pair+ / overpair / set)"
	}
	return "weak (missed / underpair to board)"
}

// generateThreeBetCbet builds the low-SPR 3-bet pot c-bet drill.
//
// Dry boards with a strong hand take a small c-bet, wet boards a large one,
// and weak hands check back because any bet commits the stack.
func generateThreeBetCbet(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	heroHand, board := deal(rng, 3)

	texture := flopWet
	if coinFlip(rng) {
		texture = flopDry
	}
	fstrength := flopWeak
	if coinFlip(rng) {
		fstrength = flopStrong
	}

	bb := bigBlind
	potBB, stackBB := 0, 100
	switch difficulty {
	case Intermediate:
		potBB = intIn(rng, 8, 18)
		stackBB = intIn(rng, 50, 100)
	case Advanced:
		potBB = intIn(rng, 6, 22)
		stackBB = intIn(rng, 30, 150)
	default:
		potBB = intIn(rng, 10, 14)
	}
	pot := potBB * bb
	stack := stackBB * bb

	spr := float64(stack) / float64(pot)

	smallBet := round(float64(pot) * 0.33)
	largeBet := round(float64(pot) * 0.67)

	var correct, branchKey string
	switch {
	case texture == flopDry && fstrength == flopStrong:
		correct, branchKey = "B", "Dry:Strong:SmallCbet"
	case texture == flopWet && fstrength == flopStrong:
		correct, branchKey = "C", "Wet:Strong:LargeCbet"
	case texture == flopDry:
		correct, branchKey = "A", "Dry:Weak:Check"
	default:
		correct, branchKey = "A", "Wet:Weak:Check"
	}

	heroPos := BTN
	handS := handStr(heroHand)
	boardS := boardStr(board)

	question := styled(ts,
		fmt.Sprintf("You re-raised before the flop and your opponent called. First three cards: %s. You have %s on the Button. Pot: %d chips. Stack: %d chips. Your opponent checked to you. What do you do?",
			boardS, handS, pot, stack),
		fmt.Sprintf("3-bet pot c-bet. You hold %s (%s) on the Button (the 3-better). Villain called your 3-bet from the Big Blind. Board: %s (%s). Pot: %d chips (%d BB). Stack: %d chips (SPR ~%.1f). Villain checks to you. What do you do?",
			handS, fstrength, boardS, texture, pot, potBB, stack, spr),
	)

	weak := fstrength == flopWeak

	checkSimple := "Checking here gives up on a hand worth betting. Take the initiative."
	checkTech := fmt.Sprintf("Checking a %s in this 3-bet pot surrenders value. The low SPR (%.1f) means bets are decisive - extract now while you have the equity lead. Villain's BB calling range is wide and misses the board frequently. C-bet to build the pot you are likely to win.", fstrength, spr)
	if weak {
		checkSimple = "Correct - check. Your hand is weak here. No need to bet - see the next card for free."
		checkTech = fmt.Sprintf("Correct. Checking back a %s on a %s board is right in this 3-bet pot. With SPR ~%.1f, any c-bet represents a meaningful commitment - if villain check-raises, folding is costly and calling risks stacking off with poor equity. Check to keep the pot small and preserve the option to bluff a favourable turn card.", fstrength, texture, spr)
	}

	smallSimple := "A small bet isn't enough on this type of board. Bet bigger or check."
	var smallTech string
	switch {
	case texture == flopDry && fstrength == flopStrong:
		smallSimple = "Correct - bet small. The board is dry (no likely draws). A small bet is enough to collect chips and keep pressure on."
		smallTech = fmt.Sprintf("Correct. A small c-bet (~33%% pot) with a %s on a %s board is optimal. Dry boards miss villain's wide BB calling range frequently, so a small probe achieves two goals: it extracts value from any pair or draw while, given SPR ~%.1f, starting to build toward a natural stack commitment. Villain must act immediately with limited backdoor outs.", fstrength, texture, spr)
	case texture == flopWet && fstrength == flopStrong:
		smallTech = fmt.Sprintf("A small c-bet on a %s board undersizes the protection needed. Villain has many draws (flush draws, straight draws) that can call 33%% cheaply and realise equity. A larger bet (~67%%) forces them to pay the correct price and extracts more from made hands that call.", texture)
	default:
		smallTech = fmt.Sprintf("C-betting 33%% with a %s is still a significant commitment at SPR ~%.1f. Any bet is hard to walk back in a 3-bet pot. Check back and reassess on the turn.", fstrength, spr)
	}

	largeSimple := "Betting big here is too much - a check or small bet fits this situation better."
	var largeTech string
	switch {
	case texture == flopWet && fstrength == flopStrong:
		largeSimple = "Correct - bet big! The board has possible draws. Make your opponent pay dearly to chase them."
		largeTech = fmt.Sprintf("Correct. A large c-bet (~67%% pot) with a %s on a %s board is the highest-EV line. Wet boards give villain flush draws, straight draws, and top pairs. Betting large charges every draw immediately, denies cheap equity, and naturally commits the remaining stack at SPR ~%.1f.", fstrength, texture, spr)
	case texture == flopDry && fstrength == flopStrong:
		largeTech = fmt.Sprintf("A large c-bet on a %s board slightly over-bets the situation. Dry boards rarely hit villain's calling range - a smaller bet (33%%) achieves the same fold equity while sizing more accurately to the low-draw texture. Save larger sizings for boards with more draws.", texture)
	default:
		largeTech = fmt.Sprintf("C-betting 67%% with a %s at SPR ~%.1f puts a large portion of your stack in with poor equity. If called or raised, you have little fold equity and a tough decision. Check back instead.", fstrength, spr)
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Check back", IsCorrect: correct == "A", Explanation: styled(ts, checkSimple, checkTech)},
		{ID: "B", Text: fmt.Sprintf("C-bet small (%d chips ~33%%)", smallBet), IsCorrect: correct == "B", Explanation: styled(ts, smallSimple, smallTech)},
		{ID: "C", Text: fmt.Sprintf("C-bet large (%d chips ~67%%)", largeBet), IsCorrect: correct == "C", Explanation: styled(ts, largeSimple, largeTech)},
	}

	players := headsUp(heroPos, BB, stack, stack)

	return scenario(scenarioID, ThreeBetPotCbet, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, 0, question, answers)
}

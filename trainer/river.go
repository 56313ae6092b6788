package trainer

import (
	"fmt"
	rand "math/rand/v2"
)

// River topic generators: bluff spot, value bet, and call-or-fold. All three
// deal a full 5-card board.

// bluffType is the reason hero has no showdown value, which shapes the story
// a river bluff tells.
type bluffType uint8

const (
	missedFlushDraw bluffType = iota
	cappedRange
	overcardBrick
)

func (b bluffType) String() string {
	switch b {
	case missedFlushDraw:
		return "missed flush draw"
	case cappedRange:
		return "capped / checked-back range"
	default:
		return "bricked overcards"
	}
}

// requiredFoldFrequency is how often villain must fold for a bluff of this
// size to break even.
func requiredFoldFrequency(betSize, potBeforeBet int) float64 {
	denom := potBeforeBet + betSize
	if denom == 0 {
		return 0
	}
	return float64(betSize) / float64(denom)
}

// generateBluff builds the busted-hand river drill. Capped ranges and low SPR
// check; missed draws and bricked overcards with stack depth bluff large.
func generateBluff(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	heroHand, board := deal(rng, 5)

	bt := bluffType(rng.IntN(3))

	bb := bigBlind
	potBB, stackBB := 0, 50
	switch difficulty {
	case Intermediate:
		potBB = intIn(rng, 8, 24)
		stackBB = intIn(rng, 30, 80)
	case Advanced:
		potBB = intIn(rng, 6, 40)
		stackBB = intIn(rng, 15, 150)
	default:
		potBB = intIn(rng, 10, 16)
	}
	pot := potBB * bb
	stack := stackBB * bb
	spr := float64(stack) / float64(pot)

	smallBet := round(float64(pot) * 0.40)
	largeBet := round(float64(pot) * 0.75)
	shove := stack

	sprBucket := "HighSPR"
	if spr < 2.0 {
		sprBucket = "LowSPR"
	}
	var branchKey string
	switch bt {
	case cappedRange:
		branchKey = "CappedRange"
	case missedFlushDraw:
		branchKey = fmt.Sprintf("MissedFlushDraw:%s", sprBucket)
	default:
		branchKey = fmt.Sprintf("OvercardBrick:%s", sprBucket)
	}

	heroPos := BTN
	hs := handStr(heroHand)
	bs := boardStr(board)

	correct := "C"
	if bt == cappedRange || spr < 2.0 {
		correct = "A"
	}

	foldFreqSmall := requiredFoldFrequency(smallBet, pot)
	foldFreqLarge := requiredFoldFrequency(largeBet, pot)
	foldFreqShove := requiredFoldFrequency(shove, pot)

	question := styled(ts,
		fmt.Sprintf("Last card. You have %s and missed - your hand can't win at showdown. Board: %s. Pot: %d chips. Stack: %d chips. Your opponent checks to you. Options: check, bet small (%d chips), bet big (%d chips), go all-in (%d chips). What do you do?",
			hs, bs, pot, stack, smallBet, largeBet, shove),
		fmt.Sprintf("River spot. You hold %s (%s) on %s. Board: %s. Pot: %d chips (%d BB). Stack: %d chips (SPR = %.1f). Villain checks to you. Bet options: small (%d chips ~40%% pot), large (%d chips ~75%% pot), or shove (%d chips). What do you do?",
			hs, bt, heroPos, bs, pot, potBB, stack, spr, smallBet, largeBet, shove),
	)

	checkBody := fmt.Sprintf("Checking surrenders value. With a %s and SPR = %.1f, you have no showdown value and checking guarantees a loss. A well-sized bluff can generate positive EV.", bt, spr)
	if correct == "A" {
		checkBody = fmt.Sprintf("Correct. With SPR = %.1f and a %s, villain's calling range is too wide to generate sufficient fold equity. Bluffing here would require villain to fold >%.0f%% of the time (for a large bet), which is unrealistic.", spr, bt, foldFreqLarge*100)
	}
	checkSimple := "Checking gives up - you have no chance to win at showdown, so a bet is your only way to take this pot."
	if correct == "A" {
		checkSimple = "Correct - check. Your opponent will call any bet you make here, so betting loses more chips than checking."
	}

	smallSimple := "A small bet won't scare your opponent into folding. Either bet big enough to be threatening or just check."
	smallVerdict := "A small bluff is unlikely to fold out strong hands. Either check or bet large enough to credibly represent your value range."
	smallTech := fmt.Sprintf("Small bluff (%d chips) with %s (%s): Requires villain to fold %.1f%% of the time to break even. %s",
		smallBet, hs, bt, foldFreqSmall*100, smallVerdict)

	largeSimple := "A big bet here throws too many chips away - your opponent isn't folding. Check instead."
	largeRationale := "A large bluff here over-commits with no fold equity. At this SPR, villain will call too frequently for this sizing to be profitable."
	if correct == "C" {
		largeSimple = "Correct - bet big! You have nothing, so your only way to win is to make your opponent fold. A big bet is the most believable and gives you the best chance they give up."
		largeRationale = fmt.Sprintf("A 75%% pot bluff applies significant pressure and is credible with a %s. Villain must fold a realistic portion of their range, and blockers in your hand make their strong hands less likely.", bt)
	}
	largeTech := fmt.Sprintf("Large bluff (%d chips) with %s (%s): Requires villain to fold %.1f%% of the time to break even. SPR = %.1f. %s",
		largeBet, hs, bt, foldFreqLarge*100, spr, largeRationale)

	shoveSimple := "Going all-in here is too extreme. Unless you have almost no chips left compared to the pot, a well-sized big bet does the same job at lower risk."
	shoveTech := fmt.Sprintf("Shoving %d chips with %s (%s): Requires villain to fold %.1f%% of the time. A pot-sized or overbet shove can be valid with a polarized range and nut blockers, but is generally too large here unless SPR < 1.5 and villain's range is very capped.",
		shove, hs, bt, foldFreqShove*100)

	answers := []AnswerOption{
		{ID: "A", Text: "Check", IsCorrect: correct == "A",
			Explanation: styled(ts, checkSimple, fmt.Sprintf("Checking with a %s from %s: %s", bt, heroPos, checkBody))},
		{ID: "B", Text: "Bet small", IsCorrect: false, Explanation: styled(ts, smallSimple, smallTech)},
		{ID: "C", Text: "Bet large", IsCorrect: correct == "C", Explanation: styled(ts, largeSimple, largeTech)},
		{ID: "D", Text: "All-in", IsCorrect: false, Explanation: styled(ts, shoveSimple, shoveTech)},
	}

	players := headsUp(heroPos, BB, stack, stack)

	return scenario(scenarioID, BluffSpot, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, 0, question, answers)
}

// valueStrength is how strong hero's made hand is, which drives the value
// bet sizing.
type valueStrength uint8

const (
	valueNuts valueStrength = iota
	valueStrong
	valueMedium
)

func (v valueStrength) String() string {
	switch v {
	case valueNuts:
		return "nutted hand (top set / straight / flush)"
	case valueStrong:
		return "strong hand (top two pair / second set)"
	default:
		return "medium hand (one pair / weak two pair)"
	}
}

func (v valueStrength) simple() string {
	switch v {
	case valueNuts:
		return "very strong hand"
	case valueStrong:
		return "strong hand"
	default:
		return "medium hand"
	}
}

// generateValueBet builds the river value-sizing drill: overbet the nuts,
// bet large with strong hands, check back medium strength.
func generateValueBet(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	heroHand, board := deal(rng, 5)

	strength := valueStrength(rng.IntN(3))

	bb := bigBlind
	potBB, stackBB := 0, 60
	switch difficulty {
	case Intermediate:
		potBB = intIn(rng, 8, 28)
		stackBB = intIn(rng, 30, 80)
	case Advanced:
		potBB = intIn(rng, 6, 40)
		stackBB = intIn(rng, 15, 150)
	default:
		potBB = intIn(rng, 10, 18)
	}
	pot := potBB * bb
	stack := stackBB * bb

	smallBet := round(float64(pot) * 0.33)
	largeBet := round(float64(pot) * 0.75)
	overbet := round(float64(pot) * 1.25)

	var correct, branchKey string
	switch strength {
	case valueNuts:
		correct, branchKey = "D", "Nuts:Overbet"
	case valueStrong:
		correct, branchKey = "C", "Strong:LargeBet"
	default:
		correct, branchKey = "A", "Medium:Check"
	}

	heroPos := BTN
	hs := handStr(heroHand)
	bs := boardStr(board)

	question := styled(ts,
		fmt.Sprintf("Last card. You have %s (a %s) on the Button. Board: %s. Pot: %d chips. Your opponent checked to you. Options: check, bet small (%d chips), bet big (%d chips), overbet (%d chips). What do you do?",
			hs, strength.simple(), bs, pot, smallBet, largeBet, overbet),
		fmt.Sprintf("River spot. You hold %s (%s) on Button. Board: %s. Pot: %d chips (%d BB). Stack: %d chips. Villain checks to you. Bet options: small (%d chips ~33%%), large (%d chips ~75%%), overbet (%d chips ~125%%). What do you do?",
			hs, strength, bs, pot, potBB, stack, smallBet, largeBet, overbet),
	)

	checkSimple := "Checking here loses value - you have a strong hand and your opponent will likely call a bet. Bet!"
	checkTech := fmt.Sprintf("Checking with a %s surrenders significant value. Villain will rarely bet into you on the river with hands that can pay off a bet. Always bet for value when you have a strong made hand and villain checks.", strength)
	if strength == valueMedium {
		checkSimple = "Correct - check. Your hand is decent but not dominant. Betting risks giving your opponent a reason to raise and win a big pot."
		checkTech = fmt.Sprintf("Correct. Checking back with a %s on the river controls the pot. Betting risks getting check-raised by better hands (two pair, sets) and called only by hands that beat you - a classic thin-value trap. Take the free showdown.", strength)
	}

	smallSimple := "Betting too small here leaves money behind. Your hand is strong - bet bigger to win more."
	smallTech := fmt.Sprintf("A 33%% pot bet with a %s undersizes the value. Villain's calling range is capped by the river action - they will call a larger bet just as often with hands that beat you, and fold the same weak hands. Size up to extract more EV.", strength)

	var largeSimple, largeTech string
	switch strength {
	case valueStrong:
		largeSimple = "Correct - bet big! You have a strong hand and your opponent is likely to call. Get paid as much as possible."
		largeTech = fmt.Sprintf("Correct. A 75%% pot value bet with a %s is optimal. It maximises value from villain's weaker made hands (top pair, second pair) while remaining credible - not so large that villain folds everything that can call. This is the standard value sizing on the river.", strength)
	case valueNuts:
		largeSimple = "Going overboard on the bet size risks your opponent folding a hand that would have called a normal big bet."
		largeTech = fmt.Sprintf("A 75%% pot bet is good but leaves value on the table with a %s. Consider an overbet - your hand can credibly represent a polarised value range and villain must call off a large portion of their stack.", strength)
	default:
		largeSimple = "Betting big here is risky when your hand isn't quite strong enough for it."
		largeTech = fmt.Sprintf("Betting 75%% pot with a %s is a risky thin value bet. You risk being called by better hands and raised off a marginal holding. Check is higher EV here.", strength)
	}

	overbetSimple := "Going overboard on the bet size risks your opponent folding a hand that would have called a normal big bet."
	overbetTech := fmt.Sprintf("Overbetting with a %s is too ambitious. An overbet signals a polarised range (nuts or bluff) - villain will call with better hands and fold hands you dominate. Use 75%% pot sizing instead.", strength)
	if strength == valueNuts {
		overbetSimple = "Correct - go big! You have the strongest possible hand here. Bet as much as you can - your opponent will likely call."
		overbetTech = fmt.Sprintf("Correct. An overbet with a %s is the highest-EV play. Your hand is at the top of your range - you can represent a polarised range that includes both bluffs and the nuts. Villain cannot fold their strong hands here, and weak hands that would call 75%% will also call 125%%. Maximise the pot.", strength)
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Check", IsCorrect: correct == "A", Explanation: styled(ts, checkSimple, checkTech)},
		{ID: "B", Text: fmt.Sprintf("Bet small (%d chips ~33%%)", smallBet), IsCorrect: false, Explanation: styled(ts, smallSimple, smallTech)},
		{ID: "C", Text: fmt.Sprintf("Bet large (%d chips ~75%%)", largeBet), IsCorrect: correct == "C", Explanation: styled(ts, largeSimple, largeTech)},
		{ID: "D", Text: fmt.Sprintf("Overbet (%d chips ~125%%)", overbet), IsCorrect: correct == "D", Explanation: styled(ts, overbetSimple, overbetTech)},
	}

	players := headsUp(heroPos, BB, stack, stack)

	return scenario(scenarioID, RiverValueBet, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, 0, question, answers)
}

// callerStrength is hero's hand tier when facing a river bet.
type callerStrength uint8

const (
	callerStrong callerStrength = iota
	callerMarginal
	callerWeak
)

func (c callerStrength) String() string {
	switch c {
	case callerStrong:
		return "strong hand (two pair+ / top pair strong kicker)"
	case callerMarginal:
		return "marginal hand (top pair weak kicker / middle pair)"
	default:
		return "weak hand (bottom pair / missed draw)"
	}
}

func (c callerStrength) simple() string {
	switch c {
	case callerStrong:
		return "strong hand"
	case callerMarginal:
		return "medium hand"
	default:
		return "weak hand"
	}
}

// riverBetSize is the size of villain's river bet relative to the pot.
type riverBetSize uint8

const (
	betSmall riverBetSize = iota
	betStandard
	betLarge
)

func (b riverBetSize) String() string {
	switch b {
	case betSmall:
		return "small (~33%)"
	case betStandard:
		return "standard (~67%)"
	default:
		return "large (~pot)"
	}
}

func (b riverBetSize) simple() string {
	switch b {
	case betSmall:
		return "small bet"
	case betStandard:
		return "normal-sized bet"
	default:
		return "large bet"
	}
}

// generateCallOrFold builds the facing-a-river-bet drill. Strong hands raise
// small bets, marginal hands call standard bets, weak hands fold large bets.
func generateCallOrFold(rng *rand.Rand, difficulty DifficultyLevel, scenarioID string, ts TextStyle) TrainingScenario {
	heroHand, board := deal(rng, 5)

	var strength callerStrength
	var betSize riverBetSize
	switch rng.IntN(3) {
	case 0:
		strength, betSize = callerStrong, betSmall
	case 1:
		strength, betSize = callerMarginal, betStandard
	default:
		strength, betSize = callerWeak, betLarge
	}

	bb := bigBlind
	potBB, stackBB := 0, 80
	switch difficulty {
	case Intermediate:
		potBB = intIn(rng, 8, 28)
		stackBB = intIn(rng, 30, 100)
	case Advanced:
		potBB = intIn(rng, 6, 40)
		stackBB = intIn(rng, 15, 150)
	default:
		potBB = intIn(rng, 10, 20)
	}
	pot := potBB * bb
	stack := stackBB * bb

	var villainBet int
	switch betSize {
	case betSmall:
		villainBet = round(float64(pot) * 0.33)
	case betStandard:
		villainBet = round(float64(pot) * 0.67)
	default:
		villainBet = pot
	}

	requiredEquityPct := round(float64(villainBet) / (float64(pot) + float64(villainBet)*2) * 100)
	raiseSize := round(float64(villainBet) * 2.5)

	var correct, branchKey string
	switch {
	case strength == callerStrong:
		correct, branchKey = "C", "Strong:SmallBet:Raise"
	case strength == callerMarginal:
		correct, branchKey = "B", "Marginal:StdBet:Call"
	default:
		correct, branchKey = "A", "Weak:LargeBet:Fold"
	}

	heroPos := BTN
	hs := handStr(heroHand)
	bs := boardStr(board)

	question := styled(ts,
		fmt.Sprintf("Last card. You have %s (%s) on the Button. Board: %s. Pot: %d chips. Stack: %d chips. Your opponent bets %d chips (%s) into you. What do you do?",
			hs, strength.simple(), bs, pot, stack, villainBet, betSize.simple()),
		fmt.Sprintf("River call or fold. You hold %s (%s) on the Button. Board: %s. Pot: %d chips (%d BB). Stack: %d chips. Villain bets %d chips (%s) into you. You need ~%d%% equity to break even on a call. What do you do?",
			hs, strength, bs, pot, potBB, stack, villainBet, betSize, requiredEquityPct),
	)

	weakFold := strength == callerWeak

	foldSimple := "Folding here gives up too easily - you have enough of a hand to call."
	foldTech := fmt.Sprintf("Folding here surrenders too much value. Against a %s bet you need only ~%d%% equity - your %s exceeds that. Either call to realise your equity, or raise to extract more value.",
		betSize, requiredEquityPct, strength)
	if weakFold {
		foldSimple = "Correct - fold. Your hand is weak and your opponent made a large bet. You don't win often enough here to make calling worth it."
		foldTech = fmt.Sprintf("Correct. Folding a %s against a %s bet is right. You need ~%d%% equity to break even, but a %s is unlikely to have that against a polarised river betting range. Villain's large bet signals a strong hand or bluff - your weak hand loses to the former and gains nothing against the latter. Fold.",
			strength, betSize, requiredEquityPct, strength)
	}

	callSimple := "Just calling here misses a chance to win more - raise with this strong hand!"
	var callTech string
	switch strength {
	case callerMarginal:
		callSimple = "Correct - call. Your hand wins often enough at this price to make calling worthwhile."
		callTech = fmt.Sprintf("Correct. Calling %d chips against a %s bet with a %s is the right play. You need ~%d%% equity and your hand is likely ahead of villain's bluffing frequency at this sizing. Folding is too tight; raising turns a thin call into an aggressive bluff-raise that few worse hands will call.",
			villainBet, betSize, strength, requiredEquityPct)
	case callerStrong:
		callTech = fmt.Sprintf("Calling with a %s against a %s bet is fine but leaves value behind. Villain is likely betting thin for value with hands you beat - a raise to ~%d chips extracts more EV and is credible given your strong range on the river.",
			strength, betSize, raiseSize)
	default:
		callTech = fmt.Sprintf("Calling %d chips with a %s against a %s bet is -EV. You need ~%d%% equity and your hand is unlikely to have it against a polarised river bet at this sizing. Fold.",
			villainBet, strength, betSize, requiredEquityPct)
	}

	raiseSimple := "Raising here is too aggressive for your hand strength. Just call or fold."
	raiseTech := fmt.Sprintf("Raising with a %s against a %s bet is too aggressive. A raise commits a large portion of the stack with a hand that cannot profitably call many re-raises. Only raise on the river when your hand is strong enough to comfortably stack off.",
		strength, betSize)
	if strength == callerStrong {
		raiseSimple = "Correct - raise! Your opponent made a small bet and you have a strong hand. Raise to win more chips - they're likely to call."
		raiseTech = fmt.Sprintf("Correct. Raising to ~%d chips with a %s against a %s villain bet maximises value. A small river bet from villain often represents a thin value bet or a small bluff - your strong hand is ahead of much of that range. A raise to ~2.5x the bet is credible and extracts significantly more EV than a flat call. Villain will call with weaker top pairs and strong one-pair hands.",
			raiseSize, strength, betSize)
	}

	answers := []AnswerOption{
		{ID: "A", Text: "Fold", IsCorrect: correct == "A", Explanation: styled(ts, foldSimple, foldTech)},
		{ID: "B", Text: fmt.Sprintf("Call (%d chips)", villainBet), IsCorrect: correct == "B", Explanation: styled(ts, callSimple, callTech)},
		{ID: "C", Text: fmt.Sprintf("Raise to %d chips", raiseSize), IsCorrect: correct == "C", Explanation: styled(ts, raiseSimple, raiseTech)},
	}

	players := headsUp(heroPos, BB, stack, stack)

	return scenario(scenarioID, RiverCallOrFold, branchKey, CashGame,
		heroPos, heroHand, board, players, pot, villainBet, question, answers)
}

package trainer

import "fmt"

// Street is one of the four betting phases a topic drills.
type Street string

const (
	Preflop Street = "Preflop"
	Flop    Street = "Flop"
	Turn    Street = "Turn"
	River   Street = "River"
)

// Streets lists all streets in play order.
var Streets = []Street{Preflop, Flop, Turn, River}

// Topics returns the training topics that belong to this street.
func (s Street) Topics() []TrainingTopic {
	switch s {
	case Preflop:
		return []TrainingTopic{
			PreflopDecision,
			ICMAndTournamentDecision,
			AntiLimperIsolation,
			SqueezePlay,
			BigBlindDefense,
		}
	case Flop:
		return []TrainingTopic{
			PostflopContinuationBet,
			PotOddsAndEquity,
			CheckRaiseSpot,
			SemiBluffDecision,
			ThreeBetPotCbet,
			MultiwayPot,
		}
	case Turn:
		return []TrainingTopic{
			TurnBarrelDecision,
			TurnProbeBet,
			DelayedCbet,
		}
	case River:
		return []TrainingTopic{
			BluffSpot,
			RiverValueBet,
			RiverCallOrFold,
		}
	}
	return nil
}

// TrainingTopic identifies one of the poker skills the engine can drill.
type TrainingTopic string

const (
	// PreflopDecision (PF-): open-raise vs fold by hand strength and position.
	PreflopDecision TrainingTopic = "PreflopDecision"
	// PostflopContinuationBet (CB-): c-bet sizing on the flop by texture.
	PostflopContinuationBet TrainingTopic = "PostflopContinuationBet"
	// PotOddsAndEquity (PO-): call vs fold with a draw by pot odds.
	PotOddsAndEquity TrainingTopic = "PotOddsAndEquity"
	// BluffSpot (BL-): river bluff sizing with no showdown value.
	BluffSpot TrainingTopic = "BluffSpot"
	// ICMAndTournamentDecision (IC-): tournament push/fold under ICM pressure.
	ICMAndTournamentDecision TrainingTopic = "ICMAndTournamentDecision"
	// TurnBarrelDecision (TB-): double-barrel vs check back by turn card.
	TurnBarrelDecision TrainingTopic = "TurnBarrelDecision"
	// CheckRaiseSpot (CR-): check-raise, check-call, or fold from the BB.
	CheckRaiseSpot TrainingTopic = "CheckRaiseSpot"
	// SemiBluffDecision (SB-): semi-bluff raise with a draw on the flop.
	SemiBluffDecision TrainingTopic = "SemiBluffDecision"
	// AntiLimperIsolation (AL-): iso-raise a limper vs overlimp vs fold.
	AntiLimperIsolation TrainingTopic = "AntiLimperIsolation"
	// RiverValueBet (RV-): value bet sizing; overbet nuts, check medium.
	RiverValueBet TrainingTopic = "RiverValueBet"
	// SqueezePlay (SQ-): squeeze preflop vs an open and callers.
	SqueezePlay TrainingTopic = "SqueezePlay"
	// BigBlindDefense (BD-): 3-bet, call, or fold facing a single raise.
	BigBlindDefense TrainingTopic = "BigBlindDefense"
	// ThreeBetPotCbet (3B-): c-bet sizing in 3-bet pots at low SPR.
	ThreeBetPotCbet TrainingTopic = "ThreeBetPotCbet"
	// RiverCallOrFold (RF-): facing a river bet; call, fold, or raise.
	RiverCallOrFold TrainingTopic = "RiverCallOrFold"
	// TurnProbeBet (PB-): probe bet OOP after the flop checks through.
	TurnProbeBet TrainingTopic = "TurnProbeBet"
	// DelayedCbet (DC-): delayed c-bet after checking back the flop IP.
	DelayedCbet TrainingTopic = "DelayedCbet"
	// MultiwayPot (MW-): flop bet sizing against two or more opponents.
	MultiwayPot TrainingTopic = "MultiwayPot"
)

// Topics lists every topic the dispatcher supports, grouped by street.
var Topics = []TrainingTopic{
	PreflopDecision, ICMAndTournamentDecision, AntiLimperIsolation,
	SqueezePlay, BigBlindDefense,
	PostflopContinuationBet, PotOddsAndEquity, CheckRaiseSpot,
	SemiBluffDecision, ThreeBetPotCbet, MultiwayPot,
	TurnBarrelDecision, TurnProbeBet, DelayedCbet,
	BluffSpot, RiverValueBet, RiverCallOrFold,
}

var topicPrefixes = map[TrainingTopic]string{
	PreflopDecision:          "PF",
	PostflopContinuationBet:  "CB",
	PotOddsAndEquity:         "PO",
	BluffSpot:                "BL",
	ICMAndTournamentDecision: "IC",
	TurnBarrelDecision:       "TB",
	CheckRaiseSpot:           "CR",
	SemiBluffDecision:        "SB",
	AntiLimperIsolation:      "AL",
	RiverValueBet:            "RV",
	SqueezePlay:              "SQ",
	BigBlindDefense:          "BD",
	ThreeBetPotCbet:          "3B",
	RiverCallOrFold:          "RF",
	TurnProbeBet:             "PB",
	DelayedCbet:              "DC",
	MultiwayPot:              "MW",
}

var topicTitles = map[TrainingTopic]string{
	PreflopDecision:          "Preflop Decision",
	PostflopContinuationBet:  "Postflop Continuation Bet",
	PotOddsAndEquity:         "Pot Odds & Equity",
	BluffSpot:                "Bluff Spot",
	ICMAndTournamentDecision: "ICM & Tournament Decision",
	TurnBarrelDecision:       "Turn Barrel Decision",
	CheckRaiseSpot:           "Check-Raise Spot",
	SemiBluffDecision:        "Semi-Bluff Decision",
	AntiLimperIsolation:      "Anti-Limper Isolation",
	RiverValueBet:            "River Value Bet",
	SqueezePlay:              "Squeeze Play",
	BigBlindDefense:          "Big Blind Defense",
	ThreeBetPotCbet:          "3-Bet Pot C-Bet",
	RiverCallOrFold:          "River Call or Fold",
	TurnProbeBet:             "Turn Probe Bet",
	DelayedCbet:              "Delayed C-Bet",
	MultiwayPot:              "Multiway Pot",
}

// Prefix returns the fixed 2-character scenario id prefix for the topic.
func (t TrainingTopic) Prefix() string {
	p, ok := topicPrefixes[t]
	if !ok {
		panic(fmt.Sprintf("trainer: no prefix for topic %q", string(t)))
	}
	return p
}

// Title returns the human-readable topic name, e.g. "Pot Odds & Equity".
func (t TrainingTopic) Title() string {
	if title, ok := topicTitles[t]; ok {
		return title
	}
	return string(t)
}

// Street returns the street this topic belongs to.
func (t TrainingTopic) Street() Street {
	switch t {
	case PreflopDecision, ICMAndTournamentDecision, AntiLimperIsolation,
		SqueezePlay, BigBlindDefense:
		return Preflop
	case PostflopContinuationBet, PotOddsAndEquity, CheckRaiseSpot,
		SemiBluffDecision, ThreeBetPotCbet, MultiwayPot:
		return Flop
	case TurnBarrelDecision, TurnProbeBet, DelayedCbet:
		return Turn
	case BluffSpot, RiverValueBet, RiverCallOrFold:
		return River
	}
	panic(fmt.Sprintf("trainer: unknown topic %q", string(t)))
}

// ParseTopic converts the external topic identifier into a TrainingTopic.
func ParseTopic(s string) (TrainingTopic, error) {
	for _, t := range Topics {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("trainer: unknown topic %q", s)
}

// ParseDifficulty converts the external difficulty name. An empty string
// means Beginner.
func ParseDifficulty(s string) (DifficultyLevel, error) {
	switch s {
	case "", string(Beginner):
		return Beginner, nil
	case string(Intermediate):
		return Intermediate, nil
	case string(Advanced):
		return Advanced, nil
	}
	return "", fmt.Errorf("trainer: unknown difficulty %q", s)
}

// ParseTextStyle converts the external style name. An empty string means
// Simple.
func ParseTextStyle(s string) (TextStyle, error) {
	switch s {
	case "", string(Simple):
		return Simple, nil
	case string(Technical):
		return Technical, nil
	}
	return "", fmt.Errorf("trainer: unknown text style %q", s)
}

// ParseStreet converts the external street name.
func ParseStreet(s string) (Street, error) {
	for _, st := range Streets {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("trainer: unknown street %q", s)
}

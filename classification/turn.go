package classification

import "github.com/lox/pokertrainer/poker"

// BarrelTurnCard describes how a turn card changes the board relative to the
// flop, for double-barrel decisions.
type BarrelTurnCard uint8

const (
	// BarrelBlank is a low card that completes no draws and adds no scare.
	BarrelBlank BarrelTurnCard = iota
	// BarrelScareBroadway is a broadway card (T+) favouring the opener.
	BarrelScareBroadway
	// BarrelDrawComplete completes a likely flush or straight draw.
	BarrelDrawComplete
)

func (b BarrelTurnCard) String() string {
	switch b {
	case BarrelBlank:
		return "blank"
	case BarrelScareBroadway:
		return "scare card"
	default:
		return "draw-completing card"
	}
}

// ClassifyBarrelTurn classifies the turn card for barrel decisions. Checks
// run in priority order: flush completion, straight completion, broadway.
func ClassifyBarrelTurn(flop []poker.Card, turn poker.Card) BarrelTurnCard {
	suitCount := 0
	for _, c := range flop {
		if c.Suit == turn.Suit {
			suitCount++
		}
	}
	if suitCount >= 2 {
		return BarrelDrawComplete
	}

	if fourStraightWindow(flop, turn) {
		return BarrelDrawComplete
	}

	if turn.Rank >= poker.Ten {
		return BarrelScareBroadway
	}
	return BarrelBlank
}

// TurnCard is the 2-way blank/scare classification used by delayed c-bet
// decisions.
type TurnCard uint8

const (
	TurnBlank TurnCard = iota
	TurnScare
)

func (t TurnCard) String() string {
	if t == TurnScare {
		return "scare"
	}
	return "blank"
}

// ClassifyTurnCard marks a turn as a scare card when it is an overcard to the
// flop, completes a front-door flush, or makes a four-straight window.
func ClassifyTurnCard(flop []poker.Card, turn poker.Card) TurnCard {
	flopMax := 0
	for _, c := range flop {
		if c.Rank > flopMax {
			flopMax = c.Rank
		}
	}
	if turn.Rank > flopMax {
		return TurnScare
	}

	suitCount := 0
	for _, c := range flop {
		if c.Suit == turn.Suit {
			suitCount++
		}
	}
	if suitCount >= 2 {
		return TurnScare
	}

	if fourStraightWindow(flop, turn) {
		return TurnScare
	}

	return TurnBlank
}

// TurnStrength buckets hero's made-hand strength against a 4-card board.
type TurnStrength uint8

const (
	TurnStrong TurnStrength = iota
	TurnMedium
	TurnWeak
)

func (s TurnStrength) String() string {
	switch s {
	case TurnStrong:
		return "strong"
	case TurnMedium:
		return "medium"
	default:
		return "weak"
	}
}

// ClassifyTurnStrength buckets hero's hand against the board: sets, overpairs,
// two pair, and top pair with a jack-or-better kicker are Strong; lesser pairs
// are Medium; no pair is Weak.
func ClassifyTurnStrength(hero [2]poker.Card, board []poker.Card) TurnStrength {
	h0, h1 := hero[0].Rank, hero[1].Rank
	high := h0
	if h1 > high {
		high = h1
	}

	boardMax := 0
	matches0, matches1 := 0, 0
	for _, c := range board {
		if c.Rank > boardMax {
			boardMax = c.Rank
		}
		if c.Rank == h0 {
			matches0++
		}
		if c.Rank == h1 {
			matches1++
		}
	}

	if h0 == h1 {
		if matches0 >= 1 {
			return TurnStrong
		}
		if high > boardMax {
			return TurnStrong
		}
		return TurnMedium
	}

	if matches0 >= 1 && matches1 >= 1 {
		return TurnStrong
	}

	if matches0 >= 1 || matches1 >= 1 {
		pairedRank, kicker := h0, h1
		if matches1 >= 1 && matches0 == 0 {
			pairedRank, kicker = h1, h0
		}
		if pairedRank == boardMax {
			if kicker >= poker.Jack {
				return TurnStrong
			}
			return TurnMedium
		}
		return TurnMedium
	}

	return TurnWeak
}

func fourStraightWindow(flop []poker.Card, turn poker.Card) bool {
	ranks := dedupSortedRanks(append(append([]poker.Card{}, flop...), turn))
	for i := 0; i+3 < len(ranks); i++ {
		if ranks[i+3]-ranks[i] <= 4 {
			return true
		}
	}
	return false
}

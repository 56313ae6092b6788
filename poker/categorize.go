package poker

// HandCategory is the strategic tier of a 2-card starting hand. The
// classification is intentionally coarse; it captures the tier without any
// equity calculation.
//
//	Premium  - AA, KK, QQ, AKs
//	Strong   - JJ, TT, AQ, AKo
//	Playable - 99-77, ATs+, KQs, high suited connectors
//	Marginal - 66-22, KQo, everything in between
//	Trash    - low unconnected offsuit hands
type HandCategory string

const (
	Premium  HandCategory = "Premium"
	Strong   HandCategory = "Strong"
	Playable HandCategory = "Playable"
	Marginal HandCategory = "Marginal"
	Trash    HandCategory = "Trash"
)

// Name returns the lowercase category name used in explanation prose.
func (c HandCategory) Name() string {
	switch c {
	case Premium:
		return "premium"
	case Strong:
		return "strong"
	case Playable:
		return "playable"
	case Marginal:
		return "marginal"
	default:
		return "trash"
	}
}

// ClassifyHand sorts a 2-card hand into its category. The table is a fixed
// decision surface; changing any row changes correct answers downstream.
func ClassifyHand(hand [2]Card) HandCategory {
	r1, r2 := hand[0].Rank, hand[1].Rank
	if r1 < r2 {
		r1, r2 = r2, r1
	}
	suited := hand[0].Suit == hand[1].Suit

	if r1 == r2 {
		switch {
		case r1 >= Queen:
			return Premium
		case r1 >= Ten:
			return Strong
		case r1 >= Seven:
			return Playable
		default:
			return Marginal
		}
	}

	switch {
	case r1 == Ace && r2 == King && suited:
		return Premium
	case r1 == Ace && r2 == King:
		return Strong
	case r1 == Ace && r2 == Queen:
		return Strong
	case r1 == Ace && r2 == Jack && suited:
		return Playable
	case r1 == Ace && r2 >= Nine && suited:
		return Playable
	case r1 == King && r2 == Queen && suited:
		return Playable
	case r1 == King && r2 == Queen:
		return Marginal
	case suited && r1 >= Nine && r1-r2 == 1:
		return Playable
	case r1 <= Nine:
		return Trash
	default:
		return Marginal
	}
}

package classification

import "github.com/lox/pokertrainer/poker"

// DrawType identifies the strongest draw present on a board. ComboDraw is the
// strongest, GutShot the weakest. GutShot doubles as the "no clean draw"
// bucket rather than a true gutshot detector.
type DrawType uint8

const (
	ComboDraw DrawType = iota
	FlushDraw
	OESD
	GutShot
)

func (d DrawType) String() string {
	switch d {
	case ComboDraw:
		return "combo draw (flush + straight)"
	case FlushDraw:
		return "flush draw"
	case OESD:
		return "open-ended straight draw"
	default:
		return "gutshot straight draw"
	}
}

// ClassifyDraw classifies the draw type present on the board.
func ClassifyDraw(board []poker.Card) DrawType {
	flush, straight := HasFlushDraw(board), HasStraightDraw(board)
	switch {
	case flush && straight:
		return ComboDraw
	case flush:
		return FlushDraw
	case straight:
		return OESD
	default:
		return GutShot
	}
}

// DrawEquity returns the heuristic hero equity for a draw type with the given
// number of streets remaining. These are fixed training constants, not
// computed probabilities.
func DrawEquity(d DrawType, streetsRemaining int) float64 {
	type key struct {
		d       DrawType
		streets int
	}
	switch (key{d, streetsRemaining}) {
	case key{FlushDraw, 2}:
		return 0.35
	case key{FlushDraw, 1}:
		return 0.20
	case key{OESD, 2}:
		return 0.32
	case key{OESD, 1}:
		return 0.17
	case key{ComboDraw, 2}:
		return 0.54
	case key{ComboDraw, 1}:
		return 0.30
	case key{GutShot, 2}:
		return 0.17
	case key{GutShot, 1}:
		return 0.09
	}
	return 0
}

// RequiredEquity computes the break-even equity for a call:
// call / (pot + call).
func RequiredEquity(callAmount, potBeforeCall int) float64 {
	total := potBeforeCall + callAmount
	if total == 0 {
		return 0
	}
	return float64(callAmount) / float64(total)
}

// HeroHasFlushDraw reports whether hero holds a card matching a suit with 2+
// board cards.
func HeroHasFlushDraw(hand [2]poker.Card, board []poker.Card) bool {
	var counts [4]int
	for _, c := range board {
		counts[c.Suit]++
	}
	return counts[hand[0].Suit] >= 2 || counts[hand[1].Suit] >= 2
}

// HeroHasStraightDraw reports whether hero participates in a straight draw:
// the board itself draws to a straight and either hole card sits within 3
// ranks of a board card.
func HeroHasStraightDraw(hand [2]poker.Card, board []poker.Card) bool {
	if !HasStraightDraw(board) {
		return false
	}
	for _, hc := range hand {
		for _, bc := range board {
			diff := hc.Rank - bc.Rank
			if diff < 0 {
				diff = -diff
			}
			if diff <= 3 {
				return true
			}
		}
	}
	return false
}

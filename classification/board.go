// Package classification holds the pure situation classifiers shared by the
// topic generators: board texture, draw detection, heuristic draw equity, and
// turn-card classification. Topic generators consume these and never redefine
// them.
package classification

import (
	"sort"

	"github.com/lox/pokertrainer/poker"
)

// BoardTexture describes how draw-heavy a board is.
type BoardTexture uint8

const (
	// Dry boards offer neither flush nor straight draws.
	Dry BoardTexture = iota
	// SemiWet boards offer exactly one of the two draw signals.
	SemiWet
	// Wet boards offer both flush and straight draws.
	Wet
)

func (t BoardTexture) String() string {
	switch t {
	case Dry:
		return "dry"
	case SemiWet:
		return "semi-wet"
	default:
		return "wet"
	}
}

// Texture classifies the texture of up to 5 board cards.
func Texture(board []poker.Card) BoardTexture {
	if len(board) == 0 {
		return Dry
	}

	flush := HasFlushDraw(board)
	straight := HasStraightDraw(board)

	switch {
	case flush && straight:
		return Wet
	case flush || straight:
		return SemiWet
	default:
		return Dry
	}
}

// HasFlushDraw reports whether 2+ board cards share a suit.
func HasFlushDraw(board []poker.Card) bool {
	var counts [4]int
	for _, c := range board {
		counts[c.Suit]++
		if counts[c.Suit] >= 2 {
			return true
		}
	}
	return false
}

// HasStraightDraw reports whether the board carries straight-draw potential:
// two ranks exactly 1 apart, or any 3 deduplicated ranks spanning at most 4.
func HasStraightDraw(board []poker.Card) bool {
	ranks := dedupSortedRanks(board)
	for i := 1; i < len(ranks); i++ {
		if ranks[i]-ranks[i-1] == 1 {
			return true
		}
	}
	for i := 0; i+2 < len(ranks); i++ {
		if ranks[i+2]-ranks[i] <= 4 {
			return true
		}
	}
	return false
}

func dedupSortedRanks(cards []poker.Card) []int {
	ranks := make([]int, 0, len(cards))
	for _, c := range cards {
		ranks = append(ranks, c.Rank)
	}
	sort.Ints(ranks)
	out := ranks[:0]
	for i, r := range ranks {
		if i == 0 || r != out[len(out)-1] {
			out = append(out, r)
		}
	}
	return out
}

package poker

import (
	"encoding/json"
	"fmt"
)

// Suit identifies one of the four card suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-character suit symbol used in card notation.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	}
	return "?"
}

// Suits lists all suits in deck-construction order.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// Rank constants. Ranks run 2 through 14 with 14 as the ace.
const (
	Two   = 2
	Three = 3
	Four  = 4
	Five  = 5
	Six   = 6
	Seven = 7
	Eight = 8
	Nine  = 9
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an immutable (rank, suit) value. Rank is 2-14, 14 being the ace.
type Card struct {
	Rank int
	Suit Suit
}

// RankSymbol returns the printable symbol for a rank (2-9, T, J, Q, K, A).
func RankSymbol(rank int) string {
	switch rank {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

// String returns the two-character card notation, e.g. "As" or "7c".
func (c Card) String() string {
	return RankSymbol(c.Rank) + c.Suit.String()
}

// ParseCard parses two-character notation like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	var rank int
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = int(s[0] - '0')
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank: %c", s[0])
	}

	var suit Suit
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit: %c", s[1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MarshalJSON writes the two-character notation.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON reads the two-character notation.
func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCard(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MustParseCard is ParseCard for fixed notation; it panics on bad input.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

package poker

import rand "math/rand/v2"

// Deck is a shuffled 52-card deck with a deal cursor. A deck is built fresh
// for each scenario and discarded afterwards; it is never reshuffled.
type Deck struct {
	cards [52]Card
	next  int
}

// NewShuffledDeck builds the ordered 52-card deck and applies an in-place
// Fisher-Yates shuffle driven entirely by rng. The permutation is fully
// determined by the RNG state, so callers that fix a seed and a draw order
// get a reproducible deal.
func NewShuffledDeck(rng *rand.Rand) *Deck {
	d := &Deck{}

	i := 0
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = Card{Rank: rank, Suit: suit}
			i++
		}
	}

	for i := len(d.cards) - 1; i >= 1; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}

	return d
}

// Deal deals the next card. Dealing past 52 cards is a caller bug and panics;
// no generator requests more than 7 cards.
func (d *Deck) Deal() Card {
	if d.next >= len(d.cards) {
		panic("poker: deck exhausted")
	}
	card := d.cards[d.next]
	d.next++
	return card
}

// DealN deals n cards in dealing order.
func (d *Deck) DealN(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = d.Deal()
	}
	return cards
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Dealt returns the cards dealt so far, in order.
func (d *Deck) Dealt() []Card {
	return d.cards[:d.next]
}

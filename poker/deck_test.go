package poker

import (
	"testing"

	"github.com/lox/pokertrainer/internal/randutil"
)

func TestNewShuffledDeck(t *testing.T) {
	t.Parallel()

	deck := NewShuffledDeck(randutil.New(42))
	if deck.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", deck.Remaining())
	}

	seen := make(map[Card]bool)
	for deck.Remaining() > 0 {
		card := deck.Deal()
		if seen[card] {
			t.Fatalf("card %v dealt twice", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 distinct cards, got %d", len(seen))
	}
}

func TestDeckDeterminism(t *testing.T) {
	t.Parallel()

	a := NewShuffledDeck(randutil.New(7))
	b := NewShuffledDeck(randutil.New(7))
	for i := 0; i < 52; i++ {
		if ca, cb := a.Deal(), b.Deal(); ca != cb {
			t.Fatalf("card %d differs: %v vs %v", i, ca, cb)
		}
	}

	c := NewShuffledDeck(randutil.New(8))
	d := NewShuffledDeck(randutil.New(7))
	same := true
	for i := 0; i < 52; i++ {
		if c.Deal() != d.Deal() {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical shuffles")
	}
}

func TestDeckDealN(t *testing.T) {
	t.Parallel()

	deck := NewShuffledDeck(randutil.New(1))
	first := deck.Deal()
	board := deck.DealN(3)
	if len(board) != 3 {
		t.Fatalf("DealN(3) returned %d cards", len(board))
	}
	if deck.Remaining() != 48 {
		t.Errorf("expected 48 remaining, got %d", deck.Remaining())
	}

	dealt := deck.Dealt()
	if len(dealt) != 4 {
		t.Fatalf("Dealt() returned %d cards, want 4", len(dealt))
	}
	if dealt[0] != first {
		t.Errorf("Dealt()[0] = %v, want %v", dealt[0], first)
	}
}

func TestDeckExhaustionPanics(t *testing.T) {
	t.Parallel()

	deck := NewShuffledDeck(randutil.New(1))
	deck.DealN(52)

	defer func() {
		if recover() == nil {
			t.Error("Deal on exhausted deck should panic")
		}
	}()
	deck.Deal()
}

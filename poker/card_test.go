package poker

import (
	"encoding/json"
	"testing"
)

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		rank int
		suit Suit
	}{
		{"As", Ace, Spades},
		{"Kh", King, Hearts},
		{"Qd", Queen, Diamonds},
		{"Jc", Jack, Clubs},
		{"Ts", Ten, Spades},
		{"9h", Nine, Hearts},
		{"2c", Two, Clubs},
	}

	for _, tt := range tests {
		card, err := ParseCard(tt.in)
		if err != nil {
			t.Fatalf("ParseCard(%q) failed: %v", tt.in, err)
		}
		if card.Rank != tt.rank || card.Suit != tt.suit {
			t.Errorf("ParseCard(%q) = %v, want rank %d suit %v", tt.in, card, tt.rank, tt.suit)
		}
		if card.String() != tt.in {
			t.Errorf("String() = %q, want %q", card.String(), tt.in)
		}
	}
}

func TestParseCardInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "A", "Ax", "1s", "Asd", "Zs"} {
		if _, err := ParseCard(in); err == nil {
			t.Errorf("ParseCard(%q) should fail", in)
		}
	}
}

func TestCardJSONRoundTrip(t *testing.T) {
	t.Parallel()

	card := MustParseCard("Th")
	data, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"Th"` {
		t.Errorf("Marshal = %s, want \"Th\"", data)
	}

	var decoded Card
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded != card {
		t.Errorf("round trip = %v, want %v", decoded, card)
	}
}

func TestRankSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rank int
		want string
	}{
		{Two, "2"},
		{Nine, "9"},
		{Ten, "T"},
		{Jack, "J"},
		{Queen, "Q"},
		{King, "K"},
		{Ace, "A"},
	}
	for _, tt := range tests {
		if got := RankSymbol(tt.rank); got != tt.want {
			t.Errorf("RankSymbol(%d) = %q, want %q", tt.rank, got, tt.want)
		}
	}
}

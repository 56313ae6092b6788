package classification

import (
	"testing"

	"github.com/lox/pokertrainer/poker"
)

// Test helper to parse board cards
func board(cardStrs ...string) []poker.Card {
	cards := make([]poker.Card, len(cardStrs))
	for i, s := range cardStrs {
		cards[i] = poker.MustParseCard(s)
	}
	return cards
}

func TestTexture(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		board []poker.Card
		want  BoardTexture
	}{
		{"empty board", nil, Dry},
		{"rainbow disconnected", board("Ks", "8h", "2c"), Dry},
		{"two-tone no straight", board("Kh", "8h", "2c"), SemiWet},
		{"rainbow connected", board("9s", "8h", "2c"), SemiWet},
		{"two-tone connected", board("9h", "8h", "2c"), Wet},
		{"monotone connected", board("Th", "9h", "8h"), Wet},
		{"three-rank span of four", board("9s", "7h", "5c"), SemiWet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Texture(tt.board); got != tt.want {
				t.Errorf("Texture(%v) = %s, want %s", tt.board, got, tt.want)
			}
		})
	}
}

func TestHasFlushDraw(t *testing.T) {
	t.Parallel()

	if HasFlushDraw(board("Ks", "8h", "2c")) {
		t.Error("rainbow board should offer no flush draw")
	}
	if !HasFlushDraw(board("Ks", "8s", "2c")) {
		t.Error("two spades should offer a flush draw")
	}
}

func TestHasStraightDraw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		board []poker.Card
		want  bool
	}{
		{"disconnected", board("Ks", "8h", "2c"), false},
		{"adjacent ranks", board("9s", "8h", "2c"), true},
		{"span of four", board("9s", "7h", "5c"), true},
		{"span of five", board("Ts", "7h", "5c"), false},
		{"paired adjacent", board("8s", "8h", "7c"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HasStraightDraw(tt.board); got != tt.want {
				t.Errorf("HasStraightDraw(%v) = %v, want %v", tt.board, got, tt.want)
			}
		})
	}
}

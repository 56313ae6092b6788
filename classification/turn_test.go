package classification

import (
	"testing"

	"github.com/lox/pokertrainer/poker"
)

func TestClassifyTurnCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		flop []poker.Card
		turn string
		want TurnCard
	}{
		{"low blank", board("Qc", "7d", "3h"), "5s", TurnBlank},
		{"overcard", board("Qc", "7d", "3h"), "As", TurnScare},
		{"flush completing", board("Qh", "7h", "3c"), "5h", TurnScare},
		{"four straight", board("9c", "7d", "Th"), "8s", TurnScare},
		{"repeat low rank", board("Qc", "7d", "3h"), "7s", TurnBlank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ClassifyTurnCard(tt.flop, poker.MustParseCard(tt.turn))
			if got != tt.want {
				t.Errorf("ClassifyTurnCard(%v, %s) = %s, want %s",
					tt.flop, tt.turn, got, tt.want)
			}
		})
	}
}

func TestClassifyBarrelTurn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		flop []poker.Card
		turn string
		want BarrelTurnCard
	}{
		{"low blank", board("Qc", "7d", "3h"), "5s", BarrelBlank},
		{"broadway scare", board("Qc", "7d", "3h"), "Ks", BarrelScareBroadway},
		{"flush completing", board("Qh", "7h", "3c"), "2h", BarrelDrawComplete},
		{"straight completing", board("9c", "7d", "Th"), "8s", BarrelDrawComplete},
		{"flush beats broadway", board("Qh", "7h", "3c"), "Kh", BarrelDrawComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ClassifyBarrelTurn(tt.flop, poker.MustParseCard(tt.turn))
			if got != tt.want {
				t.Errorf("ClassifyBarrelTurn(%v, %s) = %s, want %s",
					tt.flop, tt.turn, got, tt.want)
			}
		})
	}
}

func TestClassifyTurnStrength(t *testing.T) {
	t.Parallel()

	b := board("Qc", "7d", "3h", "5s")

	tests := []struct {
		name string
		hand [2]poker.Card
		want TurnStrength
	}{
		{"set", hands("Qs", "Qh"), TurnStrong},
		{"overpair", hands("As", "Ah"), TurnStrong},
		{"two pair", hands("Qs", "7h"), TurnStrong},
		{"top pair good kicker", hands("Qs", "Ah"), TurnStrong},
		{"top pair weak kicker", hands("Qs", "8h"), TurnMedium},
		{"underpair", hands("9s", "9h"), TurnMedium},
		{"middle pair", hands("7s", "Ah"), TurnMedium},
		{"no pair", hands("As", "Kh"), TurnWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyTurnStrength(tt.hand, b); got != tt.want {
				t.Errorf("ClassifyTurnStrength(%v, %v) = %s, want %s",
					tt.hand, b, got, tt.want)
			}
		})
	}
}

func hands(a, b string) [2]poker.Card {
	return [2]poker.Card{poker.MustParseCard(a), poker.MustParseCard(b)}
}

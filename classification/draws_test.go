package classification

import (
	"math"
	"testing"

	"github.com/lox/pokertrainer/poker"
)

func TestClassifyDraw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		board []poker.Card
		want  DrawType
	}{
		{"flush and straight", board("9h", "8h", "2c"), ComboDraw},
		{"flush only", board("Kh", "8h", "2c"), FlushDraw},
		{"straight only", board("9s", "8h", "2c"), OESD},
		{"no clean draw", board("Ks", "8h", "2c"), GutShot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyDraw(tt.board); got != tt.want {
				t.Errorf("ClassifyDraw(%v) = %s, want %s", tt.board, got, tt.want)
			}
		})
	}
}

func TestDrawEquity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		draw    DrawType
		streets int
		want    float64
	}{
		{FlushDraw, 2, 0.35},
		{FlushDraw, 1, 0.20},
		{OESD, 2, 0.32},
		{OESD, 1, 0.17},
		{ComboDraw, 2, 0.54},
		{ComboDraw, 1, 0.30},
		{GutShot, 2, 0.17},
		{GutShot, 1, 0.09},
	}

	for _, tt := range tests {
		if got := DrawEquity(tt.draw, tt.streets); got != tt.want {
			t.Errorf("DrawEquity(%s, %d) = %v, want %v", tt.draw, tt.streets, got, tt.want)
		}
	}
}

func TestRequiredEquity(t *testing.T) {
	t.Parallel()

	// Calling 50 into a pot of 100 needs 50/150 equity
	got := RequiredEquity(50, 100)
	if math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("RequiredEquity(50, 100) = %v, want 1/3", got)
	}

	if RequiredEquity(0, 0) != 0 {
		t.Error("RequiredEquity(0, 0) should be 0")
	}
}

func TestHeroHasFlushDraw(t *testing.T) {
	t.Parallel()

	hand := [2]poker.Card{poker.MustParseCard("Ah"), poker.MustParseCard("2c")}
	if !HeroHasFlushDraw(hand, board("Kh", "8h", "3s")) {
		t.Error("hero heart should connect with two board hearts")
	}
	if HeroHasFlushDraw(hand, board("Ks", "8s", "3d")) {
		t.Error("hero holds no spade")
	}
}

func TestHeroHasStraightDraw(t *testing.T) {
	t.Parallel()

	hand := [2]poker.Card{poker.MustParseCard("Th"), poker.MustParseCard("2c")}
	if !HeroHasStraightDraw(hand, board("9s", "8h", "3d")) {
		t.Error("ten should connect with a 98 board")
	}
	if HeroHasStraightDraw(hand, board("Ks", "8h", "3d")) {
		t.Error("disconnected board offers no straight draw")
	}
}

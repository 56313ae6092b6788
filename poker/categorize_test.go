package poker

import "testing"

func hand(a, b string) [2]Card {
	return [2]Card{MustParseCard(a), MustParseCard(b)}
}

func TestClassifyHand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hand [2]Card
		want HandCategory
	}{
		{"pocket aces", hand("As", "Ah"), Premium},
		{"pocket kings", hand("Ks", "Kd"), Premium},
		{"pocket queens", hand("Qc", "Qh"), Premium},
		{"ace king suited", hand("Ah", "Kh"), Premium},
		{"ace king offsuit", hand("As", "Kd"), Strong},
		{"pocket jacks", hand("Js", "Jh"), Strong},
		{"pocket tens", hand("Ts", "Th"), Strong},
		{"ace queen offsuit", hand("Ac", "Qd"), Strong},
		{"pocket eights", hand("8s", "8h"), Playable},
		{"pocket sevens", hand("7c", "7d"), Playable},
		{"ace jack suited", hand("Ad", "Jd"), Playable},
		{"ace ten suited", hand("Ac", "Tc"), Playable},
		{"king queen suited", hand("Kh", "Qh"), Playable},
		{"jack ten suited", hand("Jc", "Tc"), Playable},
		{"pocket threes", hand("3s", "3h"), Marginal},
		{"pocket sixes", hand("6s", "6d"), Marginal},
		{"king queen offsuit", hand("Ks", "Qd"), Marginal},
		{"king jack offsuit", hand("Kc", "Jh"), Marginal},
		{"seven two offsuit", hand("7s", "2h"), Trash},
		{"eight three offsuit", hand("8d", "3c"), Trash},
		{"nine four offsuit", hand("9h", "4s"), Trash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyHand(tt.hand); got != tt.want {
				t.Errorf("ClassifyHand(%v %v) = %s, want %s",
					tt.hand[0], tt.hand[1], got, tt.want)
			}
		})
	}
}

func TestClassifyHandOrderIndependent(t *testing.T) {
	t.Parallel()

	a := ClassifyHand(hand("Kd", "As"))
	b := ClassifyHand(hand("As", "Kd"))
	if a != b {
		t.Errorf("classification depends on card order: %s vs %s", a, b)
	}
}

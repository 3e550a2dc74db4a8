package domain

import "testing"

func TestCanBeat(t *testing.T) {
	single3 := Classify([]Card{c(Rank3, SuitHearts)})
	single9 := Classify([]Card{c(Rank9, SuitHearts)})
	pair7 := Classify([]Card{c(Rank7, SuitHearts), c(Rank7, SuitSpades)})
	pair9 := Classify([]Card{c(Rank9, SuitHearts), c(Rank9, SuitSpades)})
	seq5 := Classify([]Card{c(Rank3, SuitHearts), c(Rank4, SuitSpades), c(Rank5, SuitDiamonds)})
	seq8 := Classify([]Card{c(Rank6, SuitHearts), c(Rank7, SuitSpades), c(Rank8, SuitDiamonds)})
	straight5 := Classify([]Card{c(Rank4, SuitHearts), c(Rank4, SuitSpades), c(Rank5, SuitDiamonds), c(Rank5, SuitClubs)})
	bomb5 := Classify([]Card{c(Rank5, SuitHearts), c(Rank5, SuitSpades), c(Rank5, SuitDiamonds)})
	bombK := Classify([]Card{c(RankK, SuitHearts), c(RankK, SuitSpades), c(RankK, SuitDiamonds)})
	jokerBomb := Classify([]Card{joker(), joker()})
	abomb4 := Classify([]Card{c(Rank4, SuitHearts), c(Rank4, SuitSpades), c(Rank4, SuitDiamonds), c(Rank4, SuitClubs)})
	abombQ := Classify([]Card{c(RankQ, SuitHearts), c(RankQ, SuitSpades), c(RankQ, SuitDiamonds), c(RankQ, SuitClubs)})

	tests := []struct {
		name      string
		candidate Pattern
		previous  Pattern
		want      bool
	}{
		{"higher single beats lower", single9, single3, true},
		{"lower single loses", single3, single9, false},
		{"equal singles tie never beats", single9, single9, false},
		{"pair beats weaker pair", pair9, pair7, true},
		{"single cannot answer a pair", single9, pair7, false},
		{"sequence beats weaker sequence", seq8, seq5, true},
		{"sequence cannot answer a straight", seq8, straight5, false},
		{"bomb beats any single", bomb5, single9, true},
		{"bomb beats any pair", bomb5, pair9, true},
		{"bomb beats any sequence", bomb5, seq8, true},
		{"bomb beats any straight", bomb5, straight5, true},
		{"stronger bomb beats weaker bomb", bombK, bomb5, true},
		{"weaker bomb loses to stronger bomb", bomb5, bombK, false},
		{"joker bomb tops every bomb", jokerBomb, bombK, true},
		{"abomb beats any bomb", abomb4, bombK, true},
		{"abomb beats the joker bomb", abomb4, jokerBomb, true},
		{"bomb cannot answer an abomb", bombK, abomb4, false},
		{"stronger abomb beats weaker abomb", abombQ, abomb4, true},
		{"pair cannot answer a bomb", pair9, bomb5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanBeat(tt.candidate, tt.previous); got != tt.want {
				t.Errorf("CanBeat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanBeatIrreflexive(t *testing.T) {
	patterns := []Pattern{
		Classify([]Card{c(Rank9, SuitHearts)}),
		Classify([]Card{c(Rank7, SuitHearts), c(Rank7, SuitSpades)}),
		Classify([]Card{c(Rank5, SuitHearts), c(Rank5, SuitSpades), c(Rank5, SuitDiamonds)}),
		Classify([]Card{c(RankQ, SuitHearts), c(RankQ, SuitSpades), c(RankQ, SuitDiamonds), c(RankQ, SuitClubs)}),
		Classify([]Card{c(Rank3, SuitHearts), c(Rank4, SuitSpades), c(Rank5, SuitDiamonds)}),
		Classify([]Card{joker(), joker()}),
	}
	for _, p := range patterns {
		if CanBeat(p, p) {
			t.Errorf("pattern %v/%d beats itself", p.Kind, p.Strength)
		}
	}
}

func TestSameKindBeatMatchesStrength(t *testing.T) {
	pairs := []Pattern{
		Classify([]Card{c(Rank4, SuitHearts), c(Rank4, SuitSpades)}),
		Classify([]Card{c(Rank9, SuitHearts), c(Rank9, SuitSpades)}),
		Classify([]Card{c(RankA, SuitHearts), c(RankA, SuitSpades)}),
		Classify([]Card{c(Rank2, SuitHearts), c(Rank2, SuitSpades)}),
	}
	for _, a := range pairs {
		for _, b := range pairs {
			if got, want := CanBeat(a, b), a.Strength > b.Strength; got != want {
				t.Errorf("CanBeat(%d, %d) = %v, want %v", a.Strength, b.Strength, got, want)
			}
		}
	}
}

package domain

import (
	"math/rand"
	"testing"
)

func c(r Rank, s Suit) Card { return Card{Rank: r, Suit: s} }
func joker() Card           { return Card{Rank: RankJoker} }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		kind     PatternKind
		strength int
	}{
		{"single", []Card{c(Rank3, SuitHearts)}, PatternSingle, 3},
		{"single two ranks above ace", []Card{c(Rank2, SuitSpades)}, PatternSingle, 15},
		{"lone joker unplayable", []Card{joker()}, PatternInvalid, 0},
		{"pair", []Card{c(Rank7, SuitHearts), c(Rank7, SuitSpades)}, PatternPair, 7},
		{"pair with joker", []Card{c(Rank9, SuitClubs), joker()}, PatternPair, 9},
		{"joker pair is a bomb", []Card{joker(), joker()}, PatternBomb, 16},
		{"mismatched pair", []Card{c(Rank7, SuitHearts), c(Rank8, SuitSpades)}, PatternInvalid, 0},
		{"bomb", []Card{c(RankK, SuitHearts), c(RankK, SuitSpades), c(RankK, SuitDiamonds)}, PatternBomb, 13},
		{"bomb with joker", []Card{c(Rank5, SuitClubs), c(Rank5, SuitDiamonds), joker()}, PatternBomb, 5},
		{"bomb of twos with two jokers", []Card{c(Rank2, SuitHearts), joker(), joker()}, PatternBomb, 15},
		{"abomb", []Card{c(RankQ, SuitHearts), c(RankQ, SuitSpades), c(RankQ, SuitDiamonds), c(RankQ, SuitClubs)}, PatternABomb, 12},
		{"abomb with one joker", []Card{c(RankQ, SuitHearts), c(RankQ, SuitSpades), c(RankQ, SuitDiamonds), joker()}, PatternABomb, 12},
		{"abomb with two jokers", []Card{c(RankA, SuitHearts), c(RankA, SuitSpades), joker(), joker()}, PatternABomb, 14},
		{"sequence", []Card{c(Rank3, SuitHearts), c(Rank4, SuitSpades), c(Rank5, SuitDiamonds)}, PatternSequence, 5},
		{"sequence gap too wide", []Card{c(Rank3, SuitHearts), c(Rank5, SuitSpades), c(Rank7, SuitDiamonds)}, PatternInvalid, 0},
		{"sequence joker fills gap", []Card{c(Rank3, SuitHearts), c(Rank5, SuitSpades), joker()}, PatternSequence, 5},
		{"sequence joker extends high", []Card{c(Rank3, SuitHearts), c(Rank4, SuitSpades), joker()}, PatternSequence, 5},
		{"sequence topped by a two", []Card{c(RankK, SuitHearts), c(RankA, SuitSpades), joker()}, PatternSequence, 15},
		{"sequence around the ace", []Card{c(RankA, SuitHearts), c(Rank2, SuitSpades), joker()}, PatternSequence, 15},
		{"sequence duplicate rank", []Card{c(Rank3, SuitHearts), c(Rank3, SuitSpades), c(Rank4, SuitDiamonds)}, PatternInvalid, 0},
		{"straight", []Card{c(Rank4, SuitHearts), c(Rank4, SuitSpades), c(Rank5, SuitDiamonds), c(Rank5, SuitClubs)}, PatternStraight, 5},
		{"straight non-adjacent pairs", []Card{c(Rank3, SuitHearts), c(Rank3, SuitSpades), c(Rank5, SuitDiamonds), c(Rank5, SuitClubs)}, PatternInvalid, 0},
		{"straight joker completes a single", []Card{c(Rank7, SuitHearts), c(Rank7, SuitSpades), c(Rank8, SuitDiamonds), joker()}, PatternStraight, 8},
		{"straight from two singles and two jokers", []Card{c(Rank9, SuitHearts), c(Rank10, SuitSpades), joker(), joker()}, PatternStraight, 10},
		{"straight cannot contain twos", []Card{c(Rank2, SuitHearts), c(Rank2, SuitSpades), c(RankA, SuitDiamonds), c(RankA, SuitClubs)}, PatternInvalid, 0},
		{"straight joker bridges nothing over a gap", []Card{c(Rank4, SuitHearts), c(Rank4, SuitSpades), c(Rank6, SuitDiamonds), joker()}, PatternInvalid, 0},
		{"empty", nil, PatternInvalid, 0},
		{"five cards unsupported", []Card{c(Rank3, SuitHearts), c(Rank4, SuitHearts), c(Rank5, SuitHearts), c(Rank6, SuitHearts), c(Rank7, SuitHearts)}, PatternInvalid, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.cards)
			if got.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", got.Kind, tt.kind)
			}
			if got.Kind != PatternInvalid && got.Strength != tt.strength {
				t.Errorf("strength = %d, want %d", got.Strength, tt.strength)
			}
		})
	}
}

func TestClassifyOrderInvariant(t *testing.T) {
	hands := [][]Card{
		{c(Rank5, SuitClubs), c(Rank5, SuitDiamonds), joker()},
		{c(Rank4, SuitHearts), c(Rank4, SuitSpades), c(Rank5, SuitDiamonds), c(Rank5, SuitClubs)},
		{c(Rank3, SuitHearts), c(Rank4, SuitSpades), c(Rank5, SuitDiamonds)},
		{c(RankK, SuitHearts), c(RankA, SuitSpades), joker()},
	}
	rng := rand.New(rand.NewSource(7))

	for _, hand := range hands {
		want := Classify(hand)
		for i := 0; i < 10; i++ {
			shuffled := append([]Card{}, hand...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			got := Classify(shuffled)
			if got.Kind != want.Kind || got.Strength != want.Strength {
				t.Fatalf("classification of %v depends on order: got (%v,%d), want (%v,%d)",
					shuffled, got.Kind, got.Strength, want.Kind, want.Strength)
			}
		}
	}
}

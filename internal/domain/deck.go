package domain

import (
	"math/rand"
	"sort"
)

// DeckSize is the full deck: 52 suited cards plus two jokers.
const DeckSize = 54

// NewDeck returns an ordered 54-card deck.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := SuitHearts; s <= SuitSpades; s++ {
		for r := Rank3; r <= Rank2; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	deck = append(deck, Card{Rank: RankJoker}, Card{Rank: RankJoker})
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck using rng.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// SortForDisplay returns a copy of hand ordered by ascending strength.
// Gameplay indices always address the unsorted hand as held by the game;
// this ordering exists for rendering layers only.
func SortForDisplay(hand []Card) []Card {
	out := make([]Card, len(hand))
	copy(out, hand)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Suit < out[j].Suit
	})
	return out
}

package domain

// Suit identifies a card suit. Jokers carry SuitNone.
type Suit int

const (
	SuitNone Suit = iota
	SuitHearts
	SuitDiamonds
	SuitClubs
	SuitSpades
)

// Rank is a card rank encoded directly as its strength value. The 3 is the
// weakest card and the 2 outranks the ace; jokers sit above everything.
type Rank int

const (
	Rank3     Rank = 3
	Rank4     Rank = 4
	Rank5     Rank = 5
	Rank6     Rank = 6
	Rank7     Rank = 7
	Rank8     Rank = 8
	Rank9     Rank = 9
	Rank10    Rank = 10
	RankJ     Rank = 11
	RankQ     Rank = 12
	RankK     Rank = 13
	RankA     Rank = 14
	Rank2     Rank = 15
	RankJoker Rank = 16
)

// Card is a single playing card. Equality is by (rank, suit); jokers have
// no suit.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// IsJoker reports whether the card is one of the two wildcards.
func (c Card) IsJoker() bool {
	return c.Rank == RankJoker
}

// Strength returns the comparison value of the card.
func (c Card) Strength() int {
	return int(c.Rank)
}

// CompareCards orders two cards by strength, returning -1, 0 or 1.
func CompareCards(a, b Card) int {
	switch {
	case a.Strength() < b.Strength():
		return -1
	case a.Strength() > b.Strength():
		return 1
	default:
		return 0
	}
}

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "♥"
	case SuitDiamonds:
		return "♦"
	case SuitClubs:
		return "♣"
	case SuitSpades:
		return "♠"
	}
	return ""
}

func (r Rank) String() string {
	switch r {
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case RankA:
		return "A"
	case Rank2:
		return "2"
	case RankJoker:
		return "Joker"
	}
	if r >= Rank3 && r <= Rank10 {
		return [8]string{"3", "4", "5", "6", "7", "8", "9", "10"}[r-Rank3]
	}
	return "?"
}

func (c Card) String() string {
	if c.IsJoker() {
		return "Joker"
	}
	return c.Rank.String() + c.Suit.String()
}

package bot

import (
	"math/rand"

	"jokershed/internal/domain"
)

// maxPatternSize bounds candidate enumeration; no playable pattern uses
// more than four cards.
const maxPatternSize = 4

// GreedyBot sheds as many cards as it can with the weakest pattern that is
// legal, holding bombs back until nothing else answers.
type GreedyBot struct{}

func (b *GreedyBot) CalculateMove(hand []domain.Card, live *domain.Pattern) Move {
	moves := legalMoves(hand, live)
	if len(moves) == 0 {
		return Move{Pass: true}
	}

	best := moves[0]
	for _, m := range moves[1:] {
		if preferable(m, best) {
			best = m
		}
	}
	return Move{Indices: best.indices}
}

// RandomBot plays a uniformly random legal move. It never bombs an answer
// it could pass on, which keeps low-stakes tables from burning bombs.
type RandomBot struct {
	Rng *rand.Rand
}

func (b *RandomBot) CalculateMove(hand []domain.Card, live *domain.Pattern) Move {
	moves := legalMoves(hand, live)
	if live != nil {
		plain := moves[:0:0]
		for _, m := range moves {
			if !isBomb(m.pattern.Kind) {
				plain = append(plain, m)
			}
		}
		moves = plain
	}
	if len(moves) == 0 {
		return Move{Pass: true}
	}
	pick := moves[0]
	if b.Rng != nil {
		pick = moves[b.Rng.Intn(len(moves))]
	}
	return Move{Indices: pick.indices}
}

type candidate struct {
	indices []int
	pattern domain.Pattern
}

// legalMoves enumerates every index subset of the hand up to maxPatternSize
// cards that classifies as a playable pattern and, when a live pattern
// holds the round, beats it.
func legalMoves(hand []domain.Card, live *domain.Pattern) []candidate {
	var moves []candidate
	indices := make([]int, 0, maxPatternSize)

	var walk func(start int)
	walk = func(start int) {
		if len(indices) > 0 {
			cards := make([]domain.Card, len(indices))
			for i, idx := range indices {
				cards[i] = hand[idx]
			}
			pattern := domain.Classify(cards)
			if pattern.Kind != domain.PatternInvalid &&
				(live == nil || domain.CanBeat(pattern, *live)) {
				moves = append(moves, candidate{
					indices: append([]int(nil), indices...),
					pattern: pattern,
				})
			}
		}
		if len(indices) == maxPatternSize {
			return
		}
		for i := start; i < len(hand); i++ {
			indices = append(indices, i)
			walk(i + 1)
			indices = indices[:len(indices)-1]
		}
	}
	walk(0)
	return moves
}

// preferable orders candidates: non-bombs before bombs, then more cards
// shed, then lower strength.
func preferable(a, b candidate) bool {
	if isBomb(a.pattern.Kind) != isBomb(b.pattern.Kind) {
		return !isBomb(a.pattern.Kind)
	}
	if len(a.indices) != len(b.indices) {
		return len(a.indices) > len(b.indices)
	}
	return a.pattern.Strength < b.pattern.Strength
}

func isBomb(kind domain.PatternKind) bool {
	return kind == domain.PatternBomb || kind == domain.PatternABomb
}

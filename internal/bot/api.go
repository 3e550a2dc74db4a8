package bot

import (
	"jokershed/internal/domain"
)

// Move is a bot decision: a pass, or a set of hand indices to play.
type Move struct {
	Pass    bool
	Indices []int
}

// Brain is the interface that all bot strategies implement. The hand is the
// player's cards in gameplay order; live is the pattern currently holding
// the round, nil when the bot leads.
type Brain interface {
	CalculateMove(hand []domain.Card, live *domain.Pattern) Move
}

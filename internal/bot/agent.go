package bot

import (
	"jokershed/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent to calculate its move from its current hand.
func (a *Agent) Play(hand []domain.Card, live *domain.Pattern) Move {
	if len(hand) == 0 {
		return Move{Pass: true}
	}
	return a.Strategy.CalculateMove(hand, live)
}

package bot

import (
	"fmt"
	"math/rand"
)

// BotLevel selects a strategy when spawning an agent.
type BotLevel int

const (
	BotLevelEasy BotLevel = iota
	BotLevelGreedy
)

// NewBrain creates a bot strategy for the given level. The rng is only
// consulted by levels that randomize; it may be nil for the rest.
func NewBrain(level BotLevel, rng *rand.Rand) (Brain, error) {
	switch level {
	case BotLevelEasy:
		return &RandomBot{Rng: rng}, nil
	case BotLevelGreedy:
		return &GreedyBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

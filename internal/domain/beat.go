package domain

// CanBeat reports whether candidate may legally be played over previous.
// Matching kinds compare by strict strength; bombs beat anything that is
// not a bomb, and an abomb additionally beats every bomb. Ties never beat.
// Both patterns must carry a valid kind from Classify; the turn machine
// never calls this with an invalid input.
func CanBeat(candidate, previous Pattern) bool {
	if candidate.Kind == previous.Kind {
		return candidate.Strength > previous.Strength
	}
	switch candidate.Kind {
	case PatternABomb:
		return true
	case PatternBomb:
		return previous.Kind != PatternABomb
	}
	return false
}

package domain

// PatternKind enumerates the ranked combination categories.
type PatternKind int

const (
	PatternInvalid PatternKind = iota
	PatternSingle
	PatternPair
	PatternBomb     // three of a kind; a pair of jokers also counts
	PatternABomb    // four of a kind, outranks every bomb
	PatternSequence // three cards of consecutive rank
	PatternStraight // two pairs of consecutive rank
)

func (k PatternKind) String() string {
	switch k {
	case PatternSingle:
		return "single"
	case PatternPair:
		return "pair"
	case PatternBomb:
		return "bomb"
	case PatternABomb:
		return "abomb"
	case PatternSequence:
		return "sequence"
	case PatternStraight:
		return "straight"
	}
	return "invalid"
}

// Pattern is a classified combination. Strength is comparable only between
// patterns of the same kind; bombs additionally obey the cross-category
// rules in CanBeat.
type Pattern struct {
	Kind     PatternKind `json:"kind"`
	Cards    []Card      `json:"cards"`
	Strength int         `json:"strength"`
}

const (
	sequenceLen   = 3
	straightPairs = 2
	jokerStrength = int(RankJoker)
)

// Classify determines which combination the given cards form. Jokers are
// resolved to the interpretation that satisfies the highest-priority
// category for the card count, taking the strongest reading within it.
// The function is pure and total: unmatched inputs yield PatternInvalid.
func Classify(cards []Card) Pattern {
	reals, jokers := splitJokers(cards)
	kind, strength := classify(reals, jokers)
	if kind == PatternInvalid {
		return Pattern{Kind: PatternInvalid, Cards: cards}
	}
	return Pattern{Kind: kind, Cards: cards, Strength: strength}
}

func classify(reals []Card, jokers int) (PatternKind, int) {
	switch len(reals) + jokers {
	case 1:
		if jokers == 1 {
			return PatternInvalid, 0 // a joker cannot be played alone
		}
		return PatternSingle, reals[0].Strength()
	case 2:
		if jokers == 2 {
			return PatternBomb, jokerStrength // joker pair is a bomb, not a pair
		}
		if s, ok := trySameRank(reals); ok {
			return PatternPair, s
		}
	case 3:
		if s, ok := trySameRank(reals); ok {
			return PatternBomb, s
		}
		if s, ok := trySequence(reals, jokers); ok {
			return PatternSequence, s
		}
	case 4:
		if s, ok := trySameRank(reals); ok {
			return PatternABomb, s
		}
		if s, ok := tryStraight(reals, jokers); ok {
			return PatternStraight, s
		}
	}
	return PatternInvalid, 0
}

// splitJokers partitions cards into the non-joker cards and the joker count.
func splitJokers(cards []Card) ([]Card, int) {
	reals := make([]Card, 0, len(cards))
	jokers := 0
	for _, c := range cards {
		if c.IsJoker() {
			jokers++
			continue
		}
		reals = append(reals, c)
	}
	return reals, jokers
}

// trySameRank matches hands where every non-joker card shares one rank,
// jokers standing in for the missing duplicates. The caller fixes the
// target count via the input size. All-joker hands score joker strength.
func trySameRank(reals []Card) (int, bool) {
	if len(reals) == 0 {
		return jokerStrength, true
	}
	r := reals[0].Rank
	for _, c := range reals[1:] {
		if c.Rank != r {
			return 0, false
		}
	}
	return int(r), true
}

// trySequence matches three cards of consecutive rank. Candidate windows of
// three consecutive strengths are scanned from the top down; jokers fill
// the slots no real card covers, so the first affordable window is the
// strongest reading. A 2 may top a sequence; only straights exclude it.
func trySequence(reals []Card, jokers int) (int, bool) {
	if len(reals) == 0 {
		return jokerStrength, true // three jokers
	}
	counts := rankCounts(reals)
	for top := int(Rank2); top-sequenceLen+1 >= int(Rank3); top-- {
		if cost, ok := windowCost(counts, top, sequenceLen, 1); ok && cost == jokers {
			return top, true
		}
	}
	return 0, false
}

// tryStraight matches two pairs of consecutive rank. Pair ranks run 3..A;
// the 2 and the jokers have no place in the contiguous portion. A joker
// either completes a lone card into a pair or pairs with a second joker,
// which the per-slot cost accounting covers uniformly.
func tryStraight(reals []Card, jokers int) (int, bool) {
	counts := rankCounts(reals)
	for top := int(RankA); top-straightPairs+1 >= int(Rank3); top-- {
		if cost, ok := windowCost(counts, top, straightPairs, 2); ok && cost == jokers {
			return top, true
		}
	}
	return 0, false
}

func rankCounts(reals []Card) map[Rank]int {
	counts := make(map[Rank]int, len(reals))
	for _, c := range reals {
		counts[c.Rank]++
	}
	return counts
}

// windowCost prices the window [top-width+1, top]: every real rank must lie
// inside it holding at most perRank copies, and the returned cost is the
// number of jokers needed to bring each slot up to perRank.
func windowCost(counts map[Rank]int, top, width, perRank int) (int, bool) {
	lo := top - width + 1
	for r, n := range counts {
		if int(r) < lo || int(r) > top || n > perRank {
			return 0, false
		}
	}
	cost := 0
	for s := lo; s <= top; s++ {
		cost += perRank - counts[Rank(s)]
	}
	return cost, true
}

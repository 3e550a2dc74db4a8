package domain

import "errors"

// Command errors form the closed taxonomy surfaced verbatim to boundary
// layers. A failing command never mutates game state.
var (
	ErrNameTaken           = errors.New("player name already taken")
	ErrGameInProgress      = errors.New("game already in progress")
	ErrTableFull           = errors.New("table is full")
	ErrGameAlreadyStarted  = errors.New("game already started")
	ErrNotEnoughPlayers    = errors.New("not enough players")
	ErrGameNotStarted      = errors.New("game not started")
	ErrGameFinished        = errors.New("game already finished")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrInvalidCardIndices  = errors.New("invalid card indices")
	ErrInvalidPattern      = errors.New("cards do not form a valid pattern")
	ErrCannotBeatLastPlay  = errors.New("pattern does not beat the last play")
	ErrCannotPassFirstPlay = errors.New("cannot pass when leading a round")
)

const (
	// MinPlayers is the fewest players a game can start with.
	MinPlayers = 2
	// MaxPlayers keeps the 54-card deck sufficient for the deal.
	MaxPlayers = 8
	// BankerHandSize is the deal for the first player to have joined.
	BankerHandSize = 7
	// HandSize is the deal for every other player.
	HandSize = 6
)

// Player is a participant in a game. The hand is owned exclusively by the
// game; indices in Play address its current, unsorted order.
type Player struct {
	Name     string `json:"name"`
	Hand     []Card `json:"hand"`
	IsBanker bool   `json:"is_banker"`
}

// Game holds the authoritative state for one table. It assumes a single
// serialized mutator: no command suspends or blocks, and callers above the
// domain serialize concurrent access per game.
type Game struct {
	Players     []*Player
	CurrentTurn int
	Started     bool
	LastPattern *Pattern // live pattern of the round, nil when a fresh lead is due
	LastPlayer  int      // index of the last accepted play, -1 while none
	PassCount   int
	Winner      string // empty until someone sheds their last card
	Deck        []Card // undealt remainder, drawn from on round resets
}

// NewGame returns an empty, unstarted game.
func NewGame() *Game {
	return &Game{LastPlayer: -1}
}

// Join appends a player before the game starts. The first player to join
// becomes the banker.
func (g *Game) Join(name string) error {
	if g.Started {
		return ErrGameInProgress
	}
	if len(g.Players) >= MaxPlayers {
		return ErrTableFull
	}
	for _, p := range g.Players {
		if p.Name == name {
			return ErrNameTaken
		}
	}
	g.Players = append(g.Players, &Player{Name: name, IsBanker: len(g.Players) == 0})
	return nil
}

// Start deals the provided shuffled deck: seven cards to the banker, six to
// everyone else in join order. The banker leads the first round. Shuffling
// is the caller's concern; the deck must hold all 54 cards.
func (g *Game) Start(deck []Card) error {
	if g.Started {
		return ErrGameAlreadyStarted
	}
	if len(g.Players) < MinPlayers {
		return ErrNotEnoughPlayers
	}
	idx := 0
	banker := 0
	for i, p := range g.Players {
		n := HandSize
		if p.IsBanker {
			n = BankerHandSize
			banker = i
		}
		p.Hand = append([]Card{}, deck[idx:idx+n]...)
		idx += n
	}
	g.Deck = append([]Card{}, deck[idx:]...)
	g.CurrentTurn = banker
	g.Started = true
	g.LastPattern = nil
	g.LastPlayer = -1
	g.PassCount = 0
	g.Winner = ""
	return nil
}

// Play classifies and applies a card play. Indices address positions in the
// acting player's current hand. On the first play of a round any valid
// pattern is accepted; otherwise the pattern must beat the live one. An
// emptied hand wins the game and the state becomes terminal.
func (g *Game) Play(name string, indices []int) (Pattern, error) {
	if !g.Started {
		return Pattern{}, ErrGameNotStarted
	}
	if g.Winner != "" {
		return Pattern{}, ErrGameFinished
	}
	idx, p := g.findPlayer(name)
	if p == nil {
		return Pattern{}, ErrPlayerNotFound
	}
	if idx != g.CurrentTurn {
		return Pattern{}, ErrNotYourTurn
	}
	cards, ok := selectCards(p.Hand, indices)
	if !ok {
		return Pattern{}, ErrInvalidCardIndices
	}
	pattern := Classify(cards)
	if pattern.Kind == PatternInvalid {
		return Pattern{}, ErrInvalidPattern
	}
	if g.LastPattern != nil && !CanBeat(pattern, *g.LastPattern) {
		return Pattern{}, ErrCannotBeatLastPlay
	}

	p.Hand = removeIndices(p.Hand, indices)
	g.LastPattern = &pattern
	g.LastPlayer = idx
	g.PassCount = 0
	if len(p.Hand) == 0 {
		g.Winner = p.Name
		return pattern, nil
	}
	g.CurrentTurn = (idx + 1) % len(g.Players)
	return pattern, nil
}

// Pass records a pass. The player due to lead a round may never pass. When
// every player but the live-pattern holder has passed, the round resets:
// the holder draws one card from the remainder (a no-op on an empty deck)
// and leads the next round. Reports whether the round reset.
func (g *Game) Pass(name string) (bool, error) {
	if !g.Started {
		return false, ErrGameNotStarted
	}
	if g.Winner != "" {
		return false, ErrGameFinished
	}
	idx, p := g.findPlayer(name)
	if p == nil {
		return false, ErrPlayerNotFound
	}
	if idx != g.CurrentTurn {
		return false, ErrNotYourTurn
	}
	if g.LastPattern == nil {
		return false, ErrCannotPassFirstPlay
	}

	g.PassCount++
	if g.PassCount >= len(g.Players)-1 {
		holder := g.Players[g.LastPlayer]
		if len(g.Deck) > 0 {
			holder.Hand = append(holder.Hand, g.Deck[0])
			g.Deck = g.Deck[1:]
		}
		g.CurrentTurn = g.LastPlayer
		g.LastPattern = nil
		g.LastPlayer = -1
		g.PassCount = 0
		return true, nil
	}
	g.CurrentTurn = (idx + 1) % len(g.Players)
	return false, nil
}

// Hand returns a copy of the named player's current hand in gameplay order.
func (g *Game) Hand(name string) ([]Card, error) {
	_, p := g.findPlayer(name)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	return append([]Card{}, p.Hand...), nil
}

// Roster lists player names in join order.
func (g *Game) Roster() []string {
	names := make([]string, len(g.Players))
	for i, p := range g.Players {
		names[i] = p.Name
	}
	return names
}

// PlayerView is the public per-player portion of a snapshot.
type PlayerView struct {
	Name        string `json:"name"`
	CardsInHand int    `json:"cards_in_hand"`
	IsBanker    bool   `json:"is_banker"`
}

// Snapshot is a read-only view of the game consumed by rendering layers.
type Snapshot struct {
	Players     []PlayerView `json:"players"`
	CurrentTurn int          `json:"current_turn"`
	Started     bool         `json:"started"`
	LastPattern *Pattern     `json:"last_pattern,omitempty"`
	LastPlayer  int          `json:"last_player"`
	PassCount   int          `json:"pass_count"`
	Winner      string       `json:"winner,omitempty"`
	DeckLeft    int          `json:"deck_left"`
}

// Snapshot returns the current state for read-only consumption. Hands are
// reported as counts; use Hand for a player's own cards.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Players:     make([]PlayerView, len(g.Players)),
		CurrentTurn: g.CurrentTurn,
		Started:     g.Started,
		LastPlayer:  g.LastPlayer,
		PassCount:   g.PassCount,
		Winner:      g.Winner,
		DeckLeft:    len(g.Deck),
	}
	for i, p := range g.Players {
		snap.Players[i] = PlayerView{Name: p.Name, CardsInHand: len(p.Hand), IsBanker: p.IsBanker}
	}
	if g.LastPattern != nil {
		lp := *g.LastPattern
		lp.Cards = append([]Card{}, g.LastPattern.Cards...)
		snap.LastPattern = &lp
	}
	return snap
}

func (g *Game) findPlayer(name string) (int, *Player) {
	for i, p := range g.Players {
		if p.Name == name {
			return i, p
		}
	}
	return -1, nil
}

// selectCards resolves hand-relative indices into cards, rejecting out of
// bounds or duplicated positions.
func selectCards(hand []Card, indices []int) ([]Card, bool) {
	seen := make(map[int]bool, len(indices))
	cards := make([]Card, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(hand) || seen[i] {
			return nil, false
		}
		seen[i] = true
		cards = append(cards, hand[i])
	}
	return cards, true
}

func removeIndices(hand []Card, indices []int) []Card {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	out := make([]Card, 0, len(hand)-len(indices))
	for i, c := range hand {
		if drop[i] {
			continue
		}
		out = append(out, c)
	}
	return out
}

package app

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"jokershed/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrGameNotFound reports an unknown game id.
var ErrGameNotFound = errors.New("game not found")

// Service owns the game registry and serializes command application. The
// domain assumes a single mutator per game, so every command holds its
// game's lock for the whole transition; independent games stay parallel.
type Service struct {
	mu     sync.Mutex
	games  map[string]*gameEntry
	rng    *rand.Rand
	logger *zap.Logger
}

type gameEntry struct {
	mu   sync.Mutex
	game *domain.Game
}

// NewService constructs a Service. A nil rng falls back to a time-seeded
// source and a nil logger to a no-op logger.
func NewService(rng *rand.Rand, logger *zap.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		games:  make(map[string]*gameEntry),
		rng:    rng,
		logger: logger,
	}
}

// CreateGame registers a fresh game and returns its id.
func (s *Service) CreateGame() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.games[id] = &gameEntry{game: domain.NewGame()}
	s.mu.Unlock()
	s.logger.Info("game created", zap.String("game", id))
	return id
}

// DropGame removes a game from the registry.
func (s *Service) DropGame(gameID string) {
	s.mu.Lock()
	delete(s.games, gameID)
	s.mu.Unlock()
	s.logger.Info("game dropped", zap.String("game", gameID))
}

// Join adds a player and returns the updated roster.
func (s *Service) Join(gameID, name string) ([]string, error) {
	e, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.game.Join(name); err != nil {
		return nil, err
	}
	s.logger.Debug("player joined", zap.String("game", gameID), zap.String("player", name))
	return e.game.Roster(), nil
}

// Start shuffles the deck and deals, emitting one targeted HandDealt event
// per player followed by a broadcast GameStarted.
func (s *Service) Start(gameID string) ([]Event, error) {
	e, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}
	deck := s.shuffledDeck()

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.game.Start(deck); err != nil {
		return nil, err
	}

	roster := e.game.Roster()
	events := make([]Event, 0, len(roster)+1)
	for _, name := range roster {
		hand, _ := e.game.Hand(name)
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Name: name, Hand: hand},
			Recipients: []string{name},
		})
	}
	snap := e.game.Snapshot()
	events = append(events, Event{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{FirstTurn: snap.Players[snap.CurrentTurn].Name, Roster: roster},
	})
	s.logger.Info("game started",
		zap.String("game", gameID),
		zap.Int("players", len(roster)))
	return events, nil
}

// Play applies a card play addressed by hand indices.
func (s *Service) Play(gameID, name string, indices []int) ([]Event, error) {
	e, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	pattern, err := e.game.Play(name, indices)
	if err != nil {
		return nil, err
	}

	snap := e.game.Snapshot()
	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			Name:     name,
			Pattern:  pattern,
			NextTurn: currentName(snap),
		},
	}}
	s.logger.Debug("cards played",
		zap.String("game", gameID),
		zap.String("player", name),
		zap.Stringer("pattern", pattern.Kind),
		zap.Int("strength", pattern.Strength))

	if snap.Winner != "" {
		events = append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{Winner: snap.Winner},
		})
		s.logger.Info("game ended",
			zap.String("game", gameID),
			zap.String("winner", snap.Winner))
	}
	return events, nil
}

// Pass applies a pass, emitting a RoundReset event when it closes a round.
func (s *Service) Pass(gameID, name string) ([]Event, error) {
	e, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	deckBefore := e.game.Snapshot().DeckLeft
	reset, err := e.game.Pass(name)
	if err != nil {
		return nil, err
	}

	snap := e.game.Snapshot()
	events := []Event{{
		Kind:    EventTurnPassed,
		Payload: TurnPassedPayload{Name: name, NextTurn: currentName(snap)},
	}}
	if reset {
		events = append(events, Event{
			Kind: EventRoundReset,
			Payload: RoundResetPayload{
				Rewarded: currentName(snap),
				Drew:     snap.DeckLeft < deckBefore,
			},
		})
	}
	s.logger.Debug("turn passed",
		zap.String("game", gameID),
		zap.String("player", name),
		zap.Bool("reset", reset))
	return events, nil
}

// State returns a read-only snapshot of the game.
func (s *Service) State(gameID string) (domain.Snapshot, error) {
	e, err := s.lookup(gameID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Snapshot(), nil
}

// HandOf returns the named player's hand in gameplay order.
func (s *Service) HandOf(gameID, name string) ([]domain.Card, error) {
	e, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Hand(name)
}

func (s *Service) lookup(gameID string) (*gameEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return e, nil
}

func (s *Service) shuffledDeck() []domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ShuffleDeck(domain.NewDeck(), s.rng)
}

func currentName(snap domain.Snapshot) string {
	if snap.Winner != "" {
		return ""
	}
	return snap.Players[snap.CurrentTurn].Name
}

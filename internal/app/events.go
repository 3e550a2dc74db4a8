package app

import "jokershed/internal/domain"

// EventKind identifies emitted game events for boundary dispatch.
type EventKind string

const (
	EventGameStarted EventKind = "game_started"
	EventHandDealt   EventKind = "hand_dealt"
	EventCardPlayed  EventKind = "card_played"
	EventTurnPassed  EventKind = "turn_passed"
	EventRoundReset  EventKind = "round_reset"
	EventGameEnded   EventKind = "game_ended"
)

// Event is an app-level event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player names; empty means broadcast
}

type GameStartedPayload struct {
	FirstTurn string   `json:"first_turn"`
	Roster    []string `json:"roster"`
}

type HandDealtPayload struct {
	Name string        `json:"name"`
	Hand []domain.Card `json:"hand"`
}

type CardPlayedPayload struct {
	Name     string         `json:"name"`
	Pattern  domain.Pattern `json:"pattern"`
	NextTurn string         `json:"next_turn"`
}

type TurnPassedPayload struct {
	Name     string `json:"name"`
	NextTurn string `json:"next_turn"`
}

type RoundResetPayload struct {
	Rewarded string `json:"rewarded"`
	Drew     bool   `json:"drew"`
}

type GameEndedPayload struct {
	Winner string `json:"winner"`
}

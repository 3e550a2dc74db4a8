package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jokershed/internal/app"
	"jokershed/internal/bot"
	"jokershed/internal/config"
	"jokershed/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	PhaseLobby   Phase = "lobby"
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

// Label is the match label advertised for quick-match queries.
type Label struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// matchState holds authoritative state for one match instance. Players are
// keyed by Nakama user id, which doubles as the game-level player name.
type matchState struct {
	svc    *app.Service
	gameID string
	phase  Phase
	cfg    *config.Config

	presences map[string]runtime.Presence
	names     map[string]string
	owner     string

	bots     map[string]*bot.Agent
	botIndex int

	lobbySince int64 // tick of the first human join, 0 while empty
	clockTurn  int   // seat the turn clock watches, -1 before play starts
	clockSince int64 // tick the watched seat gained the turn
}

// tickRate is the match loop frequency registered in MatchInit.
const tickRate = 10

type matchHandler struct {
	cfg *config.Config
}

func newMatchHandler(cfg *config.Config) *matchHandler {
	return &matchHandler{cfg: cfg}
}

func (h *matchHandler) maxSeats() int {
	seats := h.cfg.Table.MaxSeats
	if seats <= 0 || seats > domain.MaxPlayers {
		seats = domain.MaxPlayers
	}
	return seats
}

// MatchInit boots a match in the lobby phase with a fresh game.
func (h *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	svc := app.NewService(nil, nil)
	s := &matchState{
		svc:       svc,
		gameID:    svc.CreateGame(),
		phase:     PhaseLobby,
		cfg:       h.cfg,
		presences: map[string]runtime.Presence{},
		names:     map[string]string{},
		bots:      map[string]*bot.Agent{},
		clockTurn: -1,
	}
	return s, tickRate, buildLabel(s, h.maxSeats())
}

// MatchJoinAttempt validates whether a presence may join.
func (h *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {

	s := state.(*matchState)
	uid := presence.GetUserId()

	// Rejoin is always allowed; fresh joins only in the lobby with a seat.
	if _, ok := s.presences[uid]; ok {
		return s, true, ""
	}
	if s.phase != PhaseLobby {
		if seated(s, uid) {
			return s, true, ""
		}
		return s, false, "match_in_progress"
	}
	if seatCount(s) >= h.maxSeats() {
		return s, false, "match_full"
	}
	return s, true, ""
}

// MatchJoin seats joining presences and assigns the owner.
func (h *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*matchState)
	for _, p := range presences {
		uid := p.GetUserId()
		s.presences[uid] = p
		s.names[uid] = p.GetUsername()
		if s.lobbySince == 0 {
			s.lobbySince = tick + 1 // never zero, even on the first tick
		}

		// A returning player keeps their seat and any bot stand-in retires.
		if seated(s, uid) {
			delete(s.bots, uid)
			continue
		}

		if _, err := s.svc.Join(s.gameID, uid); err != nil {
			logger.Error("join %s: %v", uid, err)
			continue
		}
		if s.owner == "" {
			s.owner = uid
		}
		broadcast(dispatcher, OpPlayerJoined, joinedPayload(s, uid), nil)
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s, h.maxSeats()))
	return s
}

// MatchLeave frees presences. A mid-game leaver keeps their seat and a bot
// plays it out; the owner role moves to the next human.
func (h *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*matchState)
	for _, p := range presences {
		uid := p.GetUserId()
		delete(s.presences, uid)

		if s.phase == PhasePlaying && seated(s, uid) {
			s.bots[uid] = newAgent(uid, s.names[uid])
		}
		broadcast(dispatcher, OpPlayerLeft, map[string]any{"user_id": uid}, nil)

		if s.owner == uid {
			s.owner = ""
			for other := range s.presences {
				s.owner = other
				break
			}
		}
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s, h.maxSeats()))
	return s
}

// MatchLoop processes client messages, then lets at most one bot act.
func (h *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {

	s := state.(*matchState)
	for _, msg := range messages {
		uid := msg.GetUserId()
		switch msg.GetOpCode() {
		case OpStartGame:
			h.handleStart(logger, dispatcher, s, uid)
		case OpPlayCards:
			h.handlePlay(logger, dispatcher, s, uid, msg.GetData())
		case OpPassTurn:
			h.handlePass(logger, dispatcher, s, uid)
		case OpAddBot:
			h.handleAddBot(logger, dispatcher, s, uid)
		case OpGetState:
			h.handleGetState(logger, dispatcher, s, uid)
		}
	}

	switch s.phase {
	case PhaseLobby:
		h.autoFill(logger, dispatcher, s, tick)
	case PhasePlaying:
		h.driveBot(logger, dispatcher, s)
		h.enforceTurnClock(logger, dispatcher, s, tick)
	}
	return s
}

// MatchTerminate drops the game on match shutdown.
func (h *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	s := state.(*matchState)
	s.svc.DropGame(s.gameID)
	return s
}

// MatchSignal handles out-of-band signals; unused.
func (h *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

/* ---- message handlers ---- */

func (h *matchHandler) handleStart(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchState, uid string) {
	if s.phase != PhaseLobby || uid != s.owner {
		return
	}

	if s.cfg.Bots.AutoFill {
		for seatCount(s) < domain.MinPlayers && seatCount(s) < h.maxSeats() {
			if !h.addBot(logger, dispatcher, s) {
				break
			}
		}
	}

	events, err := s.svc.Start(s.gameID)
	if err != nil {
		sendError(dispatcher, s, uid, err)
		return
	}
	s.phase = PhasePlaying
	dispatch(dispatcher, s, events)
	_ = dispatcher.MatchLabelUpdate(buildLabel(s, h.maxSeats()))
}

func (h *matchHandler) handlePlay(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchState, uid string, data []byte) {
	var payload struct {
		Indices []int `json:"indices"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		sendError(dispatcher, s, uid, domain.ErrInvalidCardIndices)
		return
	}

	events, err := s.svc.Play(s.gameID, uid, payload.Indices)
	if err != nil {
		sendError(dispatcher, s, uid, err)
		return
	}
	dispatch(dispatcher, s, events)
	h.finishIfEnded(dispatcher, s, events)
}

func (h *matchHandler) handlePass(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchState, uid string) {
	events, err := s.svc.Pass(s.gameID, uid)
	if err != nil {
		sendError(dispatcher, s, uid, err)
		return
	}
	dispatch(dispatcher, s, events)
}

func (h *matchHandler) handleAddBot(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchState, uid string) {
	if s.phase != PhaseLobby || uid != s.owner {
		return
	}
	if seatCount(s) >= h.maxSeats() {
		sendError(dispatcher, s, uid, domain.ErrTableFull)
		return
	}
	h.addBot(logger, dispatcher, s)
	_ = dispatcher.MatchLabelUpdate(buildLabel(s, h.maxSeats()))
}

func (h *matchHandler) handleGetState(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchState, uid string) {
	snap, err := s.svc.State(s.gameID)
	if err != nil {
		sendError(dispatcher, s, uid, err)
		return
	}
	payload := map[string]any{"state": snap, "phase": s.phase}
	if hand, err := s.svc.HandOf(s.gameID, uid); err == nil {
		payload["hand"] = hand
	}
	if p, ok := s.presences[uid]; ok {
		broadcast(dispatcher, OpState, payload, []runtime.Presence{p})
	}
}

/* ---- bots ---- */

func (h *matchHandler) addBot(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchState) bool {
	identity := bot.GetBotIdentity(s.botIndex)
	s.botIndex++

	if _, err := s.svc.Join(s.gameID, identity.UserID); err != nil {
		logger.Error("seat bot %s: %v", identity.UserID, err)
		return false
	}
	s.names[identity.UserID] = identity.DisplayName
	s.bots[identity.UserID] = newAgent(identity.UserID, identity.DisplayName)
	broadcast(dispatcher, OpPlayerJoined, joinedPayload(s, identity.UserID), nil)
	return true
}

// autoFill seats a bot once a lonely lobby has waited out the configured
// delay, so a solo human always finds an opponent.
func (h *matchHandler) autoFill(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchState, tick int64) {
	if !s.cfg.Bots.AutoFill || s.lobbySince == 0 {
		return
	}
	if len(s.presences) < s.cfg.Bots.MinHumans || seatCount(s) >= domain.MinPlayers {
		return
	}
	if tick-s.lobbySince < int64(s.cfg.Bots.FillDelaySeconds)*tickRate {
		return
	}
	if h.addBot(logger, dispatcher, s) {
		_ = dispatcher.MatchLabelUpdate(buildLabel(s, h.maxSeats()))
	}
}

// driveBot advances the game by one bot move per tick so spectating humans
// can follow the table.
func (h *matchHandler) driveBot(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchState) {
	snap, err := s.svc.State(s.gameID)
	if err != nil || snap.Winner != "" || !snap.Started {
		return
	}
	uid := snap.Players[snap.CurrentTurn].Name
	agent, ok := s.bots[uid]
	if !ok {
		return
	}

	hand, err := s.svc.HandOf(s.gameID, uid)
	if err != nil {
		logger.Error("bot hand %s: %v", uid, err)
		return
	}

	move := agent.Play(hand, snap.LastPattern)
	var events []app.Event
	if move.Pass {
		events, err = s.svc.Pass(s.gameID, uid)
	} else {
		events, err = s.svc.Play(s.gameID, uid, move.Indices)
	}
	if err != nil {
		logger.Error("bot move %s: %v", uid, err)
		return
	}
	dispatch(dispatcher, s, events)
	h.finishIfEnded(dispatcher, s, events)
}

// enforceTurnClock forces a stalled human seat to act once the configured
// turn time runs out: a pass mid-round, or the greedy lead when passing is
// not allowed.
func (h *matchHandler) enforceTurnClock(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchState, tick int64) {
	if s.cfg.Table.TurnSeconds <= 0 {
		return
	}
	snap, err := s.svc.State(s.gameID)
	if err != nil || !snap.Started || snap.Winner != "" {
		return
	}
	if snap.CurrentTurn != s.clockTurn {
		s.clockTurn = snap.CurrentTurn
		s.clockSince = tick
		return
	}
	uid := snap.Players[snap.CurrentTurn].Name
	if _, isBot := s.bots[uid]; isBot {
		return
	}
	if tick-s.clockSince < int64(s.cfg.Table.TurnSeconds)*tickRate {
		return
	}

	var events []app.Event
	if snap.LastPattern != nil {
		events, err = s.svc.Pass(s.gameID, uid)
	} else {
		hand, handErr := s.svc.HandOf(s.gameID, uid)
		if handErr != nil {
			return
		}
		move := (&bot.GreedyBot{}).CalculateMove(hand, nil)
		if move.Pass {
			return
		}
		events, err = s.svc.Play(s.gameID, uid, move.Indices)
	}
	if err != nil {
		logger.Error("turn clock for %s: %v", uid, err)
		return
	}
	s.clockSince = tick
	dispatch(dispatcher, s, events)
	h.finishIfEnded(dispatcher, s, events)
}

func newAgent(uid, name string) *bot.Agent {
	return &bot.Agent{ID: uid, Name: name, Strategy: &bot.GreedyBot{}}
}

/* ---- helpers ---- */

func (h *matchHandler) finishIfEnded(dispatcher runtime.MatchDispatcher, s *matchState, events []app.Event) {
	for _, ev := range events {
		if ev.Kind == app.EventGameEnded {
			s.phase = PhaseEnded
			_ = dispatcher.MatchLabelUpdate(buildLabel(s, h.maxSeats()))
			return
		}
	}
}

func seated(s *matchState, uid string) bool {
	snap, err := s.svc.State(s.gameID)
	if err != nil {
		return false
	}
	for _, p := range snap.Players {
		if p.Name == uid {
			return true
		}
	}
	return false
}

func seatCount(s *matchState) int {
	snap, err := s.svc.State(s.gameID)
	if err != nil {
		return 0
	}
	return len(snap.Players)
}

func buildLabel(s *matchState, maxSeats int) string {
	open := s.phase == PhaseLobby && seatCount(s) < maxSeats
	b, _ := json.Marshal(Label{Open: open, Game: labelGame, Phase: string(s.phase)})
	return string(b)
}

func joinedPayload(s *matchState, uid string) map[string]any {
	return map[string]any{
		"user_id": uid,
		"name":    s.names[uid],
		"owner":   uid == s.owner,
		"bot":     bot.IsBot(uid),
	}
}

var eventOpCodes = map[app.EventKind]int64{
	app.EventGameStarted: OpGameStarted,
	app.EventHandDealt:   OpHandDealt,
	app.EventCardPlayed:  OpCardPlayed,
	app.EventTurnPassed:  OpTurnPassed,
	app.EventRoundReset:  OpRoundReset,
	app.EventGameEnded:   OpGameEnded,
}

// dispatch relays app events to clients. Targeted events only reach their
// recipients; events aimed solely at bots or absent players are dropped.
func dispatch(dispatcher runtime.MatchDispatcher, s *matchState, events []app.Event) {
	for _, ev := range events {
		op, ok := eventOpCodes[ev.Kind]
		if !ok {
			continue
		}
		var targets []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, uid := range ev.Recipients {
				if p, ok := s.presences[uid]; ok {
					targets = append(targets, p)
				}
			}
			if len(targets) == 0 {
				continue
			}
		}
		broadcast(dispatcher, op, ev.Payload, targets)
	}
}

func broadcast(dispatcher runtime.MatchDispatcher, op int64, payload any, targets []runtime.Presence) {
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_ = dispatcher.BroadcastMessage(op, b, targets, nil, true)
}

// errorCodes gives clients stable identifiers for command failures.
var errorCodes = []struct {
	err  error
	code string
}{
	{domain.ErrNameTaken, "name_taken"},
	{domain.ErrGameInProgress, "game_in_progress"},
	{domain.ErrTableFull, "table_full"},
	{domain.ErrGameAlreadyStarted, "already_started"},
	{domain.ErrNotEnoughPlayers, "not_enough_players"},
	{domain.ErrGameNotStarted, "not_started"},
	{domain.ErrGameFinished, "game_finished"},
	{domain.ErrPlayerNotFound, "player_not_found"},
	{domain.ErrNotYourTurn, "not_your_turn"},
	{domain.ErrInvalidCardIndices, "invalid_indices"},
	{domain.ErrInvalidPattern, "invalid_pattern"},
	{domain.ErrCannotBeatLastPlay, "cannot_beat"},
	{domain.ErrCannotPassFirstPlay, "cannot_pass_first"},
	{app.ErrGameNotFound, "game_not_found"},
}

func errorCode(err error) string {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return "internal"
}

func sendError(dispatcher runtime.MatchDispatcher, s *matchState, uid string, err error) {
	p, ok := s.presences[uid]
	if !ok {
		return
	}
	payload := map[string]any{"code": errorCode(err), "message": err.Error()}
	broadcast(dispatcher, OpError, payload, []runtime.Presence{p})
}

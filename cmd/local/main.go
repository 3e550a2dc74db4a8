package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"go.uber.org/zap"

	"jokershed/internal/app"
	"jokershed/internal/bot"
	"jokershed/internal/config"
	"jokershed/internal/domain"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Mode)
	defer logger.Sync()

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Joker", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("shed", pterm.FgDarkGray.ToStyle()),
	).Render()

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").WithDefaultValue("you").Show()
	name = strings.TrimSpace(name)
	if name == "" {
		name = "you"
	}

	options := []string{"1", "2", "3"}
	picked, _ := pterm.DefaultInteractiveSelect.WithDefaultText("How many bots?").WithOptions(options).Show()
	botCount, _ := strconv.Atoi(picked)

	table, err := newTable(cfg, logger, name, botCount)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	table.run()
}

func newLogger(mode string) *zap.Logger {
	if mode == "debug" {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	// Logs would tear the rendered table apart, so the release mode of the
	// terminal client stays silent.
	return zap.NewNop()
}

// table is a local single-terminal game: one human seat, the rest bots.
type table struct {
	svc    *app.Service
	gameID string
	human  string
	agents map[string]*bot.Agent
}

func newTable(cfg *config.Config, logger *zap.Logger, human string, botCount int) (*table, error) {
	t := &table{
		svc:    app.NewService(nil, logger),
		human:  human,
		agents: map[string]*bot.Agent{},
	}
	t.gameID = t.svc.CreateGame()

	if _, err := t.svc.Join(t.gameID, human); err != nil {
		return nil, err
	}
	for i := 0; i < botCount; i++ {
		identity := bot.GetBotIdentity(i)
		if _, err := t.svc.Join(t.gameID, identity.UserID); err != nil {
			return nil, err
		}
		brain, err := bot.NewBrain(identity.Level, nil)
		if err != nil {
			return nil, err
		}
		t.agents[identity.UserID] = &bot.Agent{ID: identity.UserID, Name: identity.DisplayName, Strategy: brain}
	}
	return t, nil
}

func (t *table) run() {
	events, err := t.svc.Start(t.gameID)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	t.report(events)

	for {
		snap, err := t.svc.State(t.gameID)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if snap.Winner != "" {
			printWinner(t.displayName(snap.Winner))
			return
		}

		actor := snap.Players[snap.CurrentTurn].Name
		if agent, ok := t.agents[actor]; ok {
			t.botTurn(snap, agent)
			continue
		}
		t.humanTurn(snap)
	}
}

func (t *table) humanTurn(snap domain.Snapshot) {
	hand, err := t.svc.HandOf(t.gameID, t.human)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	order := displayOrder(hand)
	printTable(snap, hand, order, t.human, t.displayName)

	for {
		options := []string{"Play cards"}
		if snap.LastPattern != nil {
			options = append(options, "Pass")
		}
		choice, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Your move").WithOptions(options).Show()

		var events []app.Event
		if choice == "Pass" {
			events, err = t.svc.Pass(t.gameID, t.human)
		} else {
			indices, ok := t.pickCards(hand, order)
			if !ok {
				continue
			}
			events, err = t.svc.Play(t.gameID, t.human, indices)
		}
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		t.report(events)
		return
	}
}

// pickCards prompts for display positions and translates them back to
// gameplay indices.
func (t *table) pickCards(hand []domain.Card, order []int) ([]int, bool) {
	input, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Card numbers to play (e.g. 1 3 4)").Show()

	fields := strings.Fields(strings.ReplaceAll(input, ",", " "))
	if len(fields) == 0 {
		return nil, false
	}
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(order) {
			pterm.Error.Printfln("no card numbered %q", f)
			return nil, false
		}
		indices = append(indices, order[n-1])
	}
	return indices, true
}

func (t *table) botTurn(snap domain.Snapshot, agent *bot.Agent) {
	spinner, _ := pterm.DefaultSpinner.Start(pterm.Sprintf("%s is thinking...", pterm.LightCyan(agent.Name)))
	time.Sleep(400 * time.Millisecond)

	hand, err := t.svc.HandOf(t.gameID, agent.ID)
	if err != nil {
		spinner.Fail()
		pterm.Error.Println(err)
		return
	}
	move := agent.Play(hand, snap.LastPattern)

	var events []app.Event
	if move.Pass {
		events, err = t.svc.Pass(t.gameID, agent.ID)
	} else {
		events, err = t.svc.Play(t.gameID, agent.ID, move.Indices)
	}
	if err != nil {
		// A leader stuck with a lone joker can neither play nor pass.
		if errors.Is(err, domain.ErrCannotPassFirstPlay) {
			spinner.Fail()
			pterm.Warning.Printfln("%s is stuck holding only jokers, game over", agent.Name)
			os.Exit(0)
		}
		spinner.Fail()
		pterm.Error.Println(err)
		return
	}
	spinner.Success()
	t.report(events)
}

// report narrates game events in table order.
func (t *table) report(events []app.Event) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case app.GameStartedPayload:
			pterm.Info.Printfln("Cards dealt. %s leads.", t.displayName(p.FirstTurn))
		case app.CardPlayedPayload:
			pterm.Println(describePlay(t.displayName(p.Name), p.Pattern))
		case app.TurnPassedPayload:
			pterm.Printfln("%s passes.", t.displayName(p.Name))
		case app.RoundResetPayload:
			drew := ""
			if p.Drew {
				drew = " and draws a card"
			}
			pterm.Info.Printfln("%s takes the round%s.", t.displayName(p.Rewarded), drew)
		case app.GameEndedPayload:
			// The winner box renders from the final snapshot.
		}
	}
}

func (t *table) displayName(userID string) string {
	if agent, ok := t.agents[userID]; ok {
		return agent.Name
	}
	return userID
}

// displayOrder maps display positions to gameplay indices, ordered for
// reading while gameplay indices keep addressing the unsorted hand.
func displayOrder(hand []domain.Card) []int {
	order := make([]int, len(hand))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ca, cb := hand[order[a]], hand[order[b]]
		if ca.Rank != cb.Rank {
			return ca.Rank < cb.Rank
		}
		return ca.Suit < cb.Suit
	})
	return order
}

package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"jokershed/internal/domain"
)

// printTable renders opponents, the live pattern and the player's own hand.
func printTable(snap domain.Snapshot, hand []domain.Card, order []int, self string, displayName func(string) string) {
	var opponents []pterm.Panel
	for i, p := range snap.Players {
		if p.Name == self {
			continue
		}
		opponents = append(opponents, pterm.Panel{Data: printOpponent(p, displayName(p.Name), i == snap.CurrentTurn)})
	}

	board := pterm.Panel{Data: printBoard(snap)}
	own := pterm.Panel{Data: printHand(hand, order)}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		opponents,
		{board},
		{own},
	}).Render()
}

func printOpponent(p domain.PlayerView, name string, hasTurn bool) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	role := ""
	if p.IsBanker {
		role = " (banker)"
	}
	turn := ""
	if hasTurn {
		turn = pterm.LightGreen(" *")
	}
	return pbox.WithTitle(name + turn).WithTitleTopLeft().
		Sprintf("Cards: %d%s", p.CardsInHand, role)
}

func printBoard(snap domain.Snapshot) string {
	board := "fresh lead, play anything"
	if snap.LastPattern != nil {
		board = describePattern(*snap.LastPattern)
	}
	board += fmt.Sprintf("  |  deck: %d  |  passes: %d", snap.DeckLeft, snap.PassCount)
	return pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).
		WithTitle(pterm.LightYellow("|TABLE|")).WithTitleTopCenter().Sprint(board)
}

func printHand(hand []domain.Card, order []int) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	line := ""
	for pos, idx := range order {
		if pos > 0 {
			line += "  "
		}
		line += fmt.Sprintf("%d:%s", pos+1, colorCard(hand[idx]))
	}
	return pbox.WithTitle("Your hand").WithTitleTopLeft().Sprint(line)
}

func colorCard(c domain.Card) string {
	switch c.Suit {
	case domain.SuitHearts, domain.SuitDiamonds:
		return pterm.LightRed(c.String())
	case domain.SuitNone:
		return pterm.LightMagenta(c.String())
	}
	return c.String()
}

func describePattern(p domain.Pattern) string {
	cards := ""
	for i, c := range p.Cards {
		if i > 0 {
			cards += " "
		}
		cards += colorCard(c)
	}
	return fmt.Sprintf("%s (strength %d): %s", p.Kind, p.Strength, cards)
}

func describePlay(name string, p domain.Pattern) string {
	return pterm.Sprintf("%s plays %s", pterm.LightCyan(name), describePattern(p))
}

func printWinner(name string) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pterm.Println(pbox.WithTitle(pterm.LightGreen("|WINNER|")).WithTitleTopCenter().
		Sprintf("%s sheds their last card and wins!", pterm.LightCyan(name)))
}

package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"goldenflower-server/pkg/deck"
	"goldenflower-server/pkg/playable"
	"goldenflower-server/pkg/playable/goldenflower"
)

func renderTable(g *goldenflower.Game, playerID int64) {
	data := pterm.TableData{{"Seat", "Chips", "Status", "Cards"}}
	settled := g.Stage() == goldenflower.StageSettled

	for _, p := range g.Participants() {
		name := p.Name
		if active := g.Active(); active != nil && active.PlayerID == p.PlayerID {
			name = pterm.LightCyan("> " + name)
		}

		cards := "? ? ?"
		if (settled || (p.PlayerID == playerID && p.HasLooked())) && len(p.Hand()) > 0 {
			cards = describeHand(p.Hand())
		} else if len(p.Hand()) == 0 {
			cards = ""
		}

		data = append(data, []string{name, fmt.Sprint(p.Balance()), seatStatus(p), cards})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Printfln("Hand %d, round %d of %d, pot ${%d}, base bet ${%d}",
		g.HandNumber(), g.Round(), g.Options().RoundCap, g.Pot(), g.BaseBet())

	if summary := g.Summary(); settled && summary != nil {
		pterm.Success.Printfln("%s won ${%d} (%s)", playerName(g, summary.WinnerID), summary.PotWon, summary.Reason)
	}
}

func seatStatus(p *goldenflower.Participant) string {
	switch {
	case p.IsWinner():
		return pterm.LightGreen("Winner")
	case p.IsSittingOut():
		return pterm.Gray("Sitting out")
	case p.HasFolded():
		return pterm.LightRed("Folded")
	case p.HasLooked():
		return "Seen"
	default:
		return "Blind"
	}
}

func describeHand(cards []*deck.Card) string {
	result := goldenflower.AnalyzeHand(cards)
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}

	return fmt.Sprintf("%s  %s (%s)", strings.Join(names, " "), result.Type, goldenflower.HandTypeLocalName(result.Type))
}

// actionOptions lists the actions the player can afford
func actionOptions(resp *goldenflower.Response) []string {
	var options []string
	if len(resp.Hand) == 0 {
		options = append(options, string(goldenflower.ActionSeeCards))
	}

	options = append(options, string(goldenflower.ActionCall))
	if resp.CanRaise {
		options = append(options, string(goldenflower.ActionRaise))
	}

	if resp.CanCompare {
		options = append(options, string(goldenflower.ActionCompare))
	}

	return append(options, string(goldenflower.ActionAllIn), string(goldenflower.ActionFold))
}

// formatLogMessage replaces the {} placeholders with player names
func formatLogMessage(g *goldenflower.Game, msg *playable.LogMessage) string {
	text := msg.Message
	for _, id := range msg.PlayerIDs {
		text = strings.Replace(text, "{}", pterm.LightCyan(playerName(g, id)), 1)
	}

	return text
}

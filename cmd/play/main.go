package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"goldenflower-server/internal/config"
	"goldenflower-server/internal/util"
	"goldenflower-server/pkg/bot"
	"goldenflower-server/pkg/playable/goldenflower"
)

const humanPlayerID int64 = 1

var (
	bots       = flag.Int("bots", 0, "number of automated seats, defaults to the configured number")
	difficulty = flag.String("difficulty", "", "bot difficulty (easy, medium, hard), defaults to the configured difficulty")
	chips      = flag.Int("chips", 0, "starting chips, defaults to the configured amount")
	seed       = flag.Int64("seed", 0, "deals reproducible hands when positive")
	hands      = flag.Int("hands", 10, "number of hands to play when stdin is not a terminal")
	debug      = flag.Bool("debug", false, "dumps the summary of every hand")
)

func main() {
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	g, err := newGame(logger, config.Instance(), interactive)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.DefaultHeader.WithFullWidth().Println("Golden Flower")
	if !interactive {
		pterm.Info.Printfln("stdin is not a terminal, watching %d hands played by bots", *hands)
	}

	p := &player{game: g, interactive: interactive}
	for i := 0; interactive || i < *hands; i++ {
		if err := p.playHand(context.Background()); err != nil {
			var cfgErr goldenflower.ConfigurationError
			if errors.As(err, &cfgErr) {
				pterm.Info.Println("the game is over: " + cfgErr.Reason)
				return
			}

			pterm.Error.Println(err)
			os.Exit(1)
		}

		if *debug {
			litter.Dump(g.Summary())
		}

		if interactive {
			again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Deal another hand?").WithDefaultValue(true).Show()
			if !again {
				return
			}
		}
	}
}

func newGame(logger logrus.FieldLogger, cfg config.Config, interactive bool) (*goldenflower.Game, error) {
	opts := cfg.GameOptions()
	opts.Seed = *seed

	nBots := cfg.Game.AutomatedSeats
	if *bots > 0 {
		nBots = *bots
	}

	startingChips := cfg.Game.StartingChips
	if *chips > 0 {
		startingChips = *chips
	}

	d := cfg.Game.Difficulty
	if *difficulty != "" {
		d = *difficulty
	}

	level, err := bot.DifficultyFromString(d)
	if err != nil {
		return nil, err
	}

	return goldenflower.NewGame(logger, seats(nBots, startingChips, level, interactive), opts)
}

// seats builds the player's seat and the automated seats
// Without a terminal the player's seat is played by a bot as well.
func seats(nBots, startingChips int, level bot.Difficulty, interactive bool) []goldenflower.SeatConfig {
	you := goldenflower.SeatConfig{
		PlayerID: humanPlayerID,
		Name:     "You",
		Kind:     goldenflower.KindHuman,
		Chips:    startingChips,
	}

	if !interactive {
		you.Kind = goldenflower.KindAutomated
		you.Provider = bot.NewHeuristic(level, nil)
	}

	result := []goldenflower.SeatConfig{you}
	for i, name := range util.GetRandomNames(nBots) {
		result = append(result, goldenflower.SeatConfig{
			PlayerID: humanPlayerID + int64(i) + 1,
			Name:     name,
			Kind:     goldenflower.KindAutomated,
			Chips:    startingChips,
			Provider: bot.NewHeuristic(level, nil),
		})
	}

	return result
}

type player struct {
	game        *goldenflower.Game
	interactive bool
}

func (p *player) playHand(ctx context.Context) error {
	if err := p.game.StartHand(); err != nil {
		return err
	}

	p.printLogs()
	for p.game.Stage() == goldenflower.StageBetting {
		active := p.game.Active()
		if active.IsAutomated() {
			if _, err := p.game.Step(ctx); err != nil {
				return err
			}
		} else if err := p.prompt(); err != nil {
			return err
		}

		p.printLogs()
	}

	renderTable(p.game, humanPlayerID)
	return nil
}

// prompt asks the player for a decision until one is accepted
func (p *player) prompt() error {
	renderTable(p.game, humanPlayerID)

	for {
		resp, err := p.game.GetPlayerState(humanPlayerID)
		if err != nil {
			return err
		}

		options := actionOptions(resp.Data.(*goldenflower.Response))
		selected, err := pterm.DefaultInteractiveSelect.WithDefaultText("Your action").WithOptions(options).Show()
		if err != nil {
			return err
		}

		action, err := goldenflower.ActionFromString(selected)
		if err != nil {
			return err
		}

		decision := goldenflower.Decision{Action: action}
		if action == goldenflower.ActionRaise {
			ante := p.game.Options().Ante
			input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Raise the base bet by").WithDefaultValue(strconv.Itoa(ante)).Show()
			increment, err := strconv.Atoi(input)
			if err != nil {
				pterm.Warning.Printfln("%q is not a number", input)
				continue
			}

			decision.Increment = increment
		}

		if _, err := p.game.SubmitAction(humanPlayerID, decision); err != nil {
			pterm.Warning.Println(err)
			continue
		}

		return nil
	}
}

// printLogs prints every log message the game has queued
func (p *player) printLogs() {
	for {
		select {
		case messages := <-p.game.LogChan():
			for _, msg := range messages {
				pterm.Println(formatLogMessage(p.game, msg))
			}
		default:
			return
		}
	}
}

func playerName(g *goldenflower.Game, playerID int64) string {
	if participant, ok := g.Participant(playerID); ok {
		return participant.Name
	}

	return fmt.Sprintf("Player %d", playerID)
}

package gamefactory

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"goldenflower-server/pkg/playable"
	"goldenflower-server/pkg/playable/goldenflower"
)

const maxRoundCap = 20

type goldenFlowerFactory struct {
	// quick tables cap the hand at three rounds and half the pot
	quick bool
}

func (g goldenFlowerFactory) Details(defaults goldenflower.Options, additionalData playable.AdditionalData) (string, int, error) {
	opts := g.options(defaults, additionalData)
	name := fmt.Sprintf("Golden Flower (%d rounds, ${%d} pot cap)", opts.RoundCap, opts.PotCap)
	return name, opts.Ante, nil
}

func (g goldenFlowerFactory) CreateGame(logger logrus.FieldLogger, seats []goldenflower.SeatConfig, defaults goldenflower.Options, additionalData playable.AdditionalData) (*goldenflower.Game, error) {
	return goldenflower.NewGame(logger, seats, g.options(defaults, additionalData))
}

func (g goldenFlowerFactory) options(defaults goldenflower.Options, additionalData playable.AdditionalData) goldenflower.Options {
	opts := defaults
	if g.quick {
		opts.RoundCap = 3
		opts.PotCap = defaults.PotCap / 2
	}

	return getGoldenFlowerOptions(opts, additionalData)
}

// getGoldenFlowerOptions applies the client's options on top of opts
// Values out of range are ignored.
func getGoldenFlowerOptions(opts goldenflower.Options, additionalData playable.AdditionalData) goldenflower.Options {
	if ante, ok := additionalData.GetInt("ante"); ok && ante > 0 {
		opts.Ante = ante
	}

	if roundCap, ok := additionalData.GetInt("roundCap"); ok && roundCap > 0 && roundCap <= maxRoundCap {
		opts.RoundCap = roundCap
	}

	// a pot cap below two antes would end every hand at the deal
	if potCap, ok := additionalData.GetInt("potCap"); ok && potCap > opts.Ante*2 {
		opts.PotCap = potCap
	}

	if timeout, ok := additionalData.GetInt("decisionTimeoutMs"); ok && timeout >= 100 && timeout <= 60000 {
		opts.DecisionTimeout = time.Millisecond * time.Duration(timeout)
	}

	if seed, ok := additionalData.GetInt("seed"); ok && seed >= 0 {
		opts.Seed = int64(seed)
	}

	return opts
}

package bot

import (
	"context"

	"goldenflower-server/internal/rng"
	"goldenflower-server/pkg/playable/goldenflower"
)

var randomActions = []goldenflower.Action{
	goldenflower.ActionSeeCards,
	goldenflower.ActionCall,
	goldenflower.ActionRaise,
	goldenflower.ActionAllIn,
	goldenflower.ActionFold,
	goldenflower.ActionCompare,
}

// Random picks any action at random, legal or not
// Illegal picks are turned into a Call by the game.
type Random struct {
	rng rng.Generator
}

// NewRandom returns a random bot
func NewRandom(gen rng.Generator) *Random {
	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Random{rng: gen}
}

// Decide picks an action
func (r *Random) Decide(ctx context.Context, obs goldenflower.Observation) (goldenflower.Decision, error) {
	if err := ctx.Err(); err != nil {
		return goldenflower.Decision{}, err
	}

	action := randomActions[r.rng.Intn(len(randomActions))]
	if action != goldenflower.ActionRaise {
		return goldenflower.Decision{Action: action}, nil
	}

	ante := obs.Ante
	if ante <= 0 {
		ante = 1
	}

	return goldenflower.Decision{
		Action:    action,
		Increment: ante * (r.rng.Intn(3) + 1),
	}, nil
}

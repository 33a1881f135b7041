package bot

import (
	"context"
	"fmt"

	"goldenflower-server/internal/rng"
	"goldenflower-server/pkg/playable/goldenflower"
)

type thresholds struct {
	// the first round in which a blind seat looks at its cards
	lookRound int
	// seen hands scoring below this fold
	foldBelow int
	// seen hands scoring at least this raise
	raiseAbove int
	// seen hands scoring at least this challenge the next seat
	compareAbove int
	// seen hands scoring at least this go all in, 0 never does
	allInAbove int
	// one in bluffOdds weak hands raise instead of folding, 0 never bluffs
	bluffOdds int
}

var difficultyThresholds = map[Difficulty]thresholds{
	Easy:   {lookRound: 1, foldBelow: 20, raiseAbove: 70, compareAbove: 85},
	Medium: {lookRound: 3, foldBelow: 30, raiseAbove: 60, compareAbove: 75, bluffOdds: 10},
	Hard:   {lookRound: 4, foldBelow: 30, raiseAbove: 55, compareAbove: 67, allInAbove: 90, bluffOdds: 6},
}

// Heuristic plays blind in the early rounds, looks at its cards later, folds
// weak hands, and raises or compares with strong ones.
type Heuristic struct {
	Difficulty Difficulty
	rng        rng.Generator
}

// NewHeuristic returns a new heuristic bot
// If gen is nil, a crypto generator is used for bluffing
func NewHeuristic(difficulty Difficulty, gen rng.Generator) *Heuristic {
	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Heuristic{
		Difficulty: difficulty,
		rng:        gen,
	}
}

// Decide decides on an action for the seat
func (h *Heuristic) Decide(ctx context.Context, obs goldenflower.Observation) (goldenflower.Decision, error) {
	if err := ctx.Err(); err != nil {
		return goldenflower.Decision{}, err
	}

	t, ok := difficultyThresholds[h.Difficulty]
	if !ok {
		return goldenflower.Decision{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, h.Difficulty)
	}

	if !obs.Seen || obs.Hand == nil {
		if obs.Round >= t.lookRound {
			return goldenflower.Decision{Action: goldenflower.ActionSeeCards, Thought: "time to look"}, nil
		}

		return goldenflower.Decision{Action: goldenflower.ActionCall, Thought: "staying blind keeps it cheap"}, nil
	}

	score := obs.Hand.Score
	raiseCost := (obs.BaseBet + obs.Ante) * 2

	switch {
	case t.allInAbove > 0 && score >= t.allInAbove:
		return goldenflower.Decision{Action: goldenflower.ActionAllIn, Thought: fmt.Sprintf("%s, everything in", obs.Hand.Type)}, nil
	case score >= t.compareAbove && len(obs.Opponents()) > 0 && obs.Balance >= obs.CallCost:
		return goldenflower.Decision{Action: goldenflower.ActionCompare, Thought: fmt.Sprintf("%s should hold up", obs.Hand.Type)}, nil
	case score >= t.raiseAbove && obs.Balance >= raiseCost:
		return goldenflower.Decision{Action: goldenflower.ActionRaise, Increment: obs.Ante, Thought: "strong hand, building the pot"}, nil
	case score < t.foldBelow:
		if t.bluffOdds > 0 && obs.Balance >= raiseCost && h.rng.Intn(t.bluffOdds) == 0 {
			return goldenflower.Decision{Action: goldenflower.ActionRaise, Increment: obs.Ante, Thought: "bluff"}, nil
		}

		return goldenflower.Decision{Action: goldenflower.ActionFold, Thought: "not worth it"}, nil
	}

	return goldenflower.Decision{Action: goldenflower.ActionCall, Thought: "good enough to stay"}, nil
}

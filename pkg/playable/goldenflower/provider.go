package goldenflower

import (
	"context"

	"goldenflower-server/pkg/deck"
)

// DecisionProvider decides what an automated seat does on its turn
// Decide may take a long time (for instance a remote call), but it must respect
// ctx. A returned error makes the game Call on the seat's behalf.
type DecisionProvider interface {
	Decide(ctx context.Context, obs Observation) (Decision, error)
}

// DecisionProviderFunc adapts a function to a DecisionProvider
type DecisionProviderFunc func(ctx context.Context, obs Observation) (Decision, error)

// Decide calls f
func (f DecisionProviderFunc) Decide(ctx context.Context, obs Observation) (Decision, error) {
	return f(ctx, obs)
}

// SeatView is what every seat can see about another seat
type SeatView struct {
	PlayerID   int64  `json:"playerId"`
	Name       string `json:"name"`
	Kind       Kind   `json:"kind"`
	Balance    int    `json:"balance"`
	Seen       bool   `json:"seen"`
	Folded     bool   `json:"folded"`
	SittingOut bool   `json:"sittingOut"`
}

// Observation is the table as seen by the seat that has to decide
// Hand and Cards are only set once the seat has looked at its cards.
type Observation struct {
	PlayerID int64        `json:"playerId"`
	Seats    []SeatView   `json:"seats"`
	Balance  int          `json:"balance"`
	Seen     bool         `json:"seen"`
	Hand     *HandResult  `json:"hand,omitempty"`
	Cards    []*deck.Card `json:"cards,omitempty"`

	Pot      int `json:"pot"`
	BaseBet  int `json:"baseBet"`
	CallCost int `json:"callCost"`
	Round    int `json:"round"`
	RoundCap int `json:"roundCap"`
	Ante     int `json:"ante"`
	PotCap   int `json:"potCap"`
}

// Opponents returns the other seats that are still in the hand
func (o Observation) Opponents() []SeatView {
	opponents := make([]SeatView, 0, len(o.Seats))
	for _, s := range o.Seats {
		if s.PlayerID != o.PlayerID && !s.Folded {
			opponents = append(opponents, s)
		}
	}

	return opponents
}

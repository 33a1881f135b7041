package goldenflower

import (
	"fmt"
	"strings"
)

// Action represents an action a seat can take on its turn
type Action string

// action constants
const (
	ActionSeeCards Action = "see"
	ActionCall     Action = "call"
	ActionRaise    Action = "raise"
	ActionAllIn    Action = "allIn"
	ActionFold     Action = "fold"
	ActionCompare  Action = "compare"
)

var allowedActions = []Action{
	ActionSeeCards,
	ActionCall,
	ActionRaise,
	ActionAllIn,
	ActionFold,
	ActionCompare,
}

// ActionFromString returns an action for the given string
func ActionFromString(s string) (Action, error) {
	for _, a := range allowedActions {
		if strings.EqualFold(string(a), s) {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownAction, s)
}

func (a Action) String() string {
	switch a {
	case ActionSeeCards:
		return "See Cards"
	case ActionCall:
		return "Call"
	case ActionRaise:
		return "Raise"
	case ActionAllIn:
		return "All In"
	case ActionFold:
		return "Fold"
	case ActionCompare:
		return "Compare"
	}

	return string(a)
}

// Decision is what a seat wants to do on its turn
type Decision struct {
	Action Action `json:"action"`
	// Increment is added to the base bet unit on a Raise
	Increment int `json:"increment,omitempty"`
	// Thought is an optional explanation from an automated seat, for display only
	Thought string `json:"thought,omitempty"`
}

// SettleReason explains how a hand ended
type SettleReason string

// settle reasons
const (
	SettleFoldOut  SettleReason = "foldOut"
	SettlePotCap   SettleReason = "potCap"
	SettleRoundCap SettleReason = "roundCap"
)

// Outcome describes what happened when a decision was applied
type Outcome struct {
	PlayerID int64  `json:"playerId"`
	Action   Action `json:"action"`
	// Amount is the number of chips the seat put into the pot
	Amount int `json:"amount"`
	// AllIn is true when a Call could not be covered and the seat's balance went in instead
	AllIn bool `json:"allIn,omitempty"`
	// Fallback is true when an automated seat's decision was replaced by a Call
	Fallback bool `json:"fallback,omitempty"`

	DuelOpponentID int64 `json:"duelOpponentId,omitempty"`
	DuelLoserID    int64 `json:"duelLoserId,omitempty"`

	Settled  bool         `json:"settled"`
	Reason   SettleReason `json:"reason,omitempty"`
	WinnerID int64        `json:"winnerId,omitempty"`
	PotWon   int          `json:"potWon,omitempty"`
}

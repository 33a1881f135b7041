package goldenflower

import (
	"errors"
	"fmt"
)

// ErrNotBetting is returned when an action is submitted outside of the betting stage
var ErrNotBetting = errors.New("the hand is not in the betting stage")

// ErrNotYourTurn is returned when a seat acts out of turn
var ErrNotYourTurn = errors.New("it is not your turn")

// ErrPlayerNotFound is returned when a player is not seated at the table
var ErrPlayerNotFound = errors.New("player not found")

// ErrInsufficientBalance is returned when a seat cannot cover the cost of an action
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrNoDuelTarget is returned when there is nobody left to compare against
var ErrNoDuelTarget = errors.New("no opponent to compare against")

// ErrAlreadyLooked is returned when a seat looks at a hand it has already seen
var ErrAlreadyLooked = errors.New("cards have already been seen")

// ErrInvalidIncrement is returned when a raise does not increase the base bet
var ErrInvalidIncrement = errors.New("raise increment must be positive")

// ErrUnknownAction is returned for an action the game does not know
var ErrUnknownAction = errors.New("unknown action")

// ErrHandInProgress is returned when a new hand is requested while one is being played
var ErrHandInProgress = errors.New("a hand is already in progress")

// ErrNotAutomated is returned by Step() when the seat on turn is waiting for a human
var ErrNotAutomated = errors.New("the active seat is not automated")

// ErrNotEnoughPlayers is returned when fewer than two seats can pay the ante
var ErrNotEnoughPlayers = errors.New("need at least two players who can pay the ante")

// ErrNoRemainingSeats is returned when a showdown finds no seat still in the hand
var ErrNoRemainingSeats = errors.New("no seats remain in the hand")

// ConfigurationError is returned when a game cannot be set up or a hand cannot start
type ConfigurationError struct {
	Reason string
	Err    error
}

func (c ConfigurationError) Error() string {
	if c.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", c.Reason, c.Err)
	}

	return fmt.Sprintf("configuration error: %s", c.Reason)
}

// Unwrap returns the underlying error
func (c ConfigurationError) Unwrap() error {
	return c.Err
}

// InvalidActionError is returned when an action is rejected
// A rejected action never changes the state of the game
type InvalidActionError struct {
	PlayerID int64
	Action   Action
	Err      error
}

func (i InvalidActionError) Error() string {
	return fmt.Sprintf("%s rejected for player %d: %v", i.Action, i.PlayerID, i.Err)
}

// Unwrap returns the underlying error
func (i InvalidActionError) Unwrap() error {
	return i.Err
}

func invalidAction(playerID int64, action Action, err error) error {
	return InvalidActionError{
		PlayerID: playerID,
		Action:   action,
		Err:      err,
	}
}

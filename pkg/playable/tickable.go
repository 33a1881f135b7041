package playable

import "time"

// Tickable is a game that advances on its own between player actions
type Tickable interface {
	// Interval is the wait between ticks
	Interval() time.Duration

	// Tick is called by the dealer every Interval
	// It returns true when the state changed and clients need an update
	Tick() (bool, error)
}

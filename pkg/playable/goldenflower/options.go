package goldenflower

import (
	"fmt"
	"time"
)

// Options are options for creating a new Golden Flower game
type Options struct {
	Ante     int // Default: 10, collected from every seat at the deal and the first base bet unit
	RoundCap int // Default: 5, a showdown is forced once more rounds than this have elapsed
	PotCap   int // Default: 1000, a showdown is forced as soon as the pot reaches this

	// DecisionTimeout bounds how long an automated seat may think
	DecisionTimeout time.Duration
	// TickInterval is how often Tick() should be called by a dealer
	TickInterval time.Duration
	// Seed fixes the shuffle of the next hands, 0 picks a random seed for each hand
	Seed int64
}

// DefaultOptions returns the default options for a Golden Flower game
func DefaultOptions() Options {
	return Options{
		Ante:            10,
		RoundCap:        5,
		PotCap:          1000,
		DecisionTimeout: time.Second * 10,
		TickInterval:    time.Millisecond * 1200,
	}
}

func (o Options) validate() error {
	if o.Ante <= 0 {
		return ConfigurationError{Reason: fmt.Sprintf("ante must be positive, got %d", o.Ante)}
	}

	if o.RoundCap <= 0 {
		return ConfigurationError{Reason: fmt.Sprintf("round cap must be positive, got %d", o.RoundCap)}
	}

	if o.PotCap <= 0 {
		return ConfigurationError{Reason: fmt.Sprintf("pot cap must be positive, got %d", o.PotCap)}
	}

	if o.Seed < 0 {
		return ConfigurationError{Reason: "seed cannot be negative"}
	}

	return nil
}

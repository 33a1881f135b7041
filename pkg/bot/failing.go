package bot

import (
	"context"
	"errors"

	"goldenflower-server/pkg/playable/goldenflower"
)

// ErrUnavailable is what a Failing bot returns when no error is set
var ErrUnavailable = errors.New("decision service unavailable")

// Failing never decides, which makes the game call for the seat
type Failing struct {
	Err error
}

// Decide returns the error
func (f Failing) Decide(ctx context.Context, obs goldenflower.Observation) (goldenflower.Decision, error) {
	if f.Err != nil {
		return goldenflower.Decision{}, f.Err
	}

	return goldenflower.Decision{}, ErrUnavailable
}

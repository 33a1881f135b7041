package room

import (
	"time"
)

// pendingHand is the next hand of an auto dealing table
type pendingHand struct {
	Start time.Time `json:"start"`
	timer *time.Timer
}

func newPendingHand(delay time.Duration) *pendingHand {
	return &pendingHand{
		Start: time.Now().Add(delay),
		timer: time.NewTimer(delay),
	}
}

// C returns the channel that fires when the hand should be dealt
// A nil pendingHand returns a nil channel, which never fires
func (p *pendingHand) C() <-chan time.Time {
	if p == nil {
		return nil
	}

	return p.timer.C
}

func (p *pendingHand) stop() {
	if p != nil {
		p.timer.Stop()
	}
}

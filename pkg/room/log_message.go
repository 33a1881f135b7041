package room

import (
	"goldenflower-server/pkg/playable"
)

const logMessageLimit = 50

// addLogMessages keeps the most recent log messages for clients that connect later
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

package goldenflower

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"goldenflower-server/pkg/playable"
)

// sendLogMessages never blocks: the log is for display only, and a table
// nobody is watching must keep playing
func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if g.logChan == nil || len(msg) == 0 {
		return
	}

	select {
	case g.logChan <- msg:
	default:
		g.logger.WithField("messages", len(msg)).Debug("log channel is full, dropping messages")
	}
}

func newLogMessage(playerID int64, format string, a ...interface{}) *playable.LogMessage {
	return playable.SimpleLogMessage(playerID, format, a...)
}

func newLogMessageWithAmount(playerID int64, amount int, format string, a ...interface{}) *playable.LogMessage {
	msg := playable.SimpleLogMessage(playerID, format, a...)
	msg.Amount = amount
	return msg
}

func newLogMessageWithPlayers(playerIDs []int64, amount int, format string, a ...interface{}) *playable.LogMessage {
	return &playable.LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Amount:    amount,
		Time:      time.Now(),
	}
}

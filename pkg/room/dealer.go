package room

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"goldenflower-server/pkg/playable"
	"goldenflower-server/pkg/playable/goldenflower"
)

// ErrShiftEnded is returned when the dealer of a table has stopped dealing
var ErrShiftEnded = errors.New("the table is closed")

const defaultTickInterval = time.Second

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
)

// Dealer is responsible for controlling the game
// The game is only ever touched from the run loop, which makes every action,
// automated step and state read happen one at a time.
type Dealer struct {
	pitBoss *PitBoss
	table   *Table
	game    *goldenflower.Game
	clients map[*Client]bool
	lock    sync.RWMutex
	logger  logrus.FieldLogger

	logMessages  []*playable.LogMessage
	reportedHand int
	pending      *pendingHand

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, table *Table, game *goldenflower.Game, logger logrus.FieldLogger) *Dealer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Dealer{
		pitBoss: pitBoss,
		table:   table,
		game:    game,
		clients: make(map[*Client]bool),
		logger: logger.WithFields(logrus.Fields{
			"uuid": table.UUID,
			"name": table.Name,
		}),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Table returns the table the dealer is running
func (d *Dealer) Table() *Table {
	return d.table
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	interval := d.game.Interval()
	if interval <= 0 {
		interval = defaultTickInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendClientState()
			case stateGameEvent:
				d.sendGameData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case <-ticker.C:
			d.tick()
		case messages := <-d.game.LogChan():
			d.addLogMessages(messages)
			d.broadcast(&playable.Response{
				Key:  "logs",
				Data: messages,
			})
		case <-d.pending.C():
			d.pending = nil
			d.startHand()
		case <-d.close:
			d.pending.stop()
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

// Do runs fn inside the run loop and waits for it to return
// Do must never be called from the run loop itself
func (d *Dealer) Do(fn func() error) error {
	done := make(chan error, 1)

	select {
	case d.execInRunLoop <- func() { done <- fn() }:
	case <-d.close:
		return ErrShiftEnded
	}

	select {
	case err := <-done:
		return err
	case <-d.close:
		return ErrShiftEnded
	}
}

// StartHand deals the next hand
func (d *Dealer) StartHand() error {
	return d.Do(func() error {
		d.pending.stop()
		d.pending = nil

		if err := d.game.StartHand(); err != nil {
			return err
		}

		d.gameChanged()
		return nil
	})
}

// Action performs an action for the player
func (d *Dealer) Action(playerID int64, msg *playable.PayloadIn) (*playable.Response, error) {
	var response *playable.Response
	err := d.Do(func() error {
		var err error
		response, err = d.action(playerID, msg)
		return err
	})

	return response, err
}

// State returns the state of the game as seen by the player
func (d *Dealer) State(playerID int64) (*playable.Response, error) {
	var response *playable.Response
	err := d.Do(func() error {
		var err error
		response, err = d.game.GetPlayerState(playerID)
		return err
	})

	return response, err
}

// Logs returns the most recent log messages
func (d *Dealer) Logs() ([]*playable.LogMessage, error) {
	var logs []*playable.LogMessage
	err := d.Do(func() error {
		logs = append([]*playable.LogMessage{}, d.logMessages...)
		return nil
	})

	return logs, err
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.stateChanged <- stateClientEvent
	d.execInRunLoop <- func() {
		if len(d.logMessages) > 0 {
			client.Send(&playable.Response{
				Key:  "logs",
				Data: append([]*playable.LogMessage{}, d.logMessages...),
			})
		}

		gs, err := d.game.GetPlayerState(client.playerID)
		if err != nil {
			d.logger.WithError(err).Error("could not get player state")
			return
		}

		client.Send(gs)
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	fn := func() {
		response, err := d.action(c.playerID, msg)
		if err != nil {
			d.logger.WithError(err).WithField("client", c.String()).Info("could not perform action")
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		if response != nil {
			response.Context = msg.Context
			c.Send(response)
		}
	}

	select {
	case d.execInRunLoop <- fn:
	case <-d.close:
		c.Send(newErrorResponse(msg.Context, ErrShiftEnded))
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) action(playerID int64, msg *playable.PayloadIn) (*playable.Response, error) {
	if playerID == 0 {
		return nil, goldenflower.ErrPlayerNotFound
	}

	if msg.Action == "startHand" {
		d.pending.stop()
		d.pending = nil
	}

	response, updateState, err := d.game.Action(playerID, msg)
	if err != nil {
		return nil, err
	}

	if updateState {
		d.gameChanged()
	}

	return response, nil
}

// NOTE: must only be called from the run loop
func (d *Dealer) tick() {
	changed, err := d.game.Tick()
	if err != nil {
		d.logger.WithError(err).Error("could not tick")
		return
	}

	if changed {
		d.gameChanged()
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) startHand() {
	if err := d.game.StartHand(); err != nil {
		d.logger.WithError(err).Warn("could not deal the next hand")
		d.broadcast(newErrorResponse("", err))
		return
	}

	d.gameChanged()
}

// NOTE: must only be called from the run loop
func (d *Dealer) gameChanged() {
	d.sendGameData()

	details, isOver := d.game.GetEndOfGameDetails()
	if !isOver || d.reportedHand == d.game.HandNumber() {
		return
	}

	d.reportedHand = d.game.HandNumber()
	d.logger.WithFields(logrus.Fields{
		"hand":        d.reportedHand,
		"adjustments": details.BalanceAdjustments,
	}).Info("hand ended")

	d.broadcast(&playable.Response{
		Key:  "handEnded",
		Data: details,
	})

	if delay := d.table.config.AutoDealMS; delay > 0 {
		d.pending = newPendingHand(time.Millisecond * time.Duration(delay))
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	for _, client := range d.Clients() {
		data, err := d.game.GetPlayerState(client.playerID)
		if err != nil {
			d.logger.WithError(err).Error("could not get player state")
			continue
		}

		client.Send(data)
	}
}

func (d *Dealer) sendClientState() {
	clients := d.Clients()
	connected := make([]int64, 0, len(clients))
	for _, client := range clients {
		connected = append(connected, client.playerID)
	}

	d.broadcast(&playable.Response{
		Key: "clientState",
		Data: &clientState{
			Table:            d.table,
			ConnectedPlayers: connected,
		},
	})
}

func (d *Dealer) broadcast(msg *playable.Response) {
	for _, client := range d.Clients() {
		client.Send(msg)
	}
}

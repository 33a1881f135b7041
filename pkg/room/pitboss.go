package room

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"goldenflower-server/pkg/playable/goldenflower"
	"goldenflower-server/pkg/room/gamefactory"
)

// PitBoss is responsible for opening tables and dispatching players to them
type PitBoss struct {
	dealers  map[string]*Dealer
	lock     sync.RWMutex
	logger   logrus.FieldLogger
	defaults goldenflower.Options

	connect    chan *Client
	disconnect chan *Client
	close      chan bool
}

// NewPitBoss returns a new dispatch object
// defaults are the game options a table starts from before its own options apply
func NewPitBoss(logger logrus.FieldLogger, defaults goldenflower.Options) *PitBoss {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &PitBoss{
		dealers:    make(map[string]*Dealer),
		logger:     logger,
		defaults:   defaults,
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
		close:      make(chan bool),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

// EndShift closes every table and stops the run loop
func (p *PitBoss) EndShift() {
	p.lock.Lock()
	for uuid, dealer := range p.dealers {
		dealer.EndShift()
		delete(p.dealers, uuid)
	}
	p.lock.Unlock()

	close(p.close)
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			p.logger.WithField("client", client.String()).Debug("client connected")
			dealer, found := p.Dealer(client.tableUUID)
			if !found {
				select {
				case client.Close <- "table not found":
				default:
				}
				continue
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			p.logger.WithField("client", client.String()).Debug("client disconnected")
			dealer, found := p.Dealer(client.tableUUID)
			if !found {
				continue
			}

			dealer.RemoveClient(client)
		case <-p.close:
			return
		}
	}
}

// OpenTable creates a table from the config and starts dealing it
// The first hand waits for StartHand().
func (p *PitBoss) OpenTable(cfg TableConfig) (*Dealer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	table, err := newTable(cfg, p.defaults)
	if err != nil {
		return nil, err
	}

	logger := p.logger.WithField("table", table.UUID)
	factory, err := gamefactory.Get(cfg.game())
	if err != nil {
		return nil, err
	}

	game, err := factory.CreateGame(logger, cfg.seats(), p.defaults, cfg.Options)
	if err != nil {
		return nil, err
	}

	dealer := NewDealer(p, table, game, p.logger)
	dealer.StartShift()

	p.lock.Lock()
	p.dealers[table.UUID] = dealer
	p.lock.Unlock()

	p.logger.WithFields(logrus.Fields{
		"uuid":           table.UUID,
		"game":           table.Game,
		"automatedSeats": cfg.AutomatedSeats,
	}).Info("table opened")

	return dealer, nil
}

// Dealer returns the dealer for the table
func (p *PitBoss) Dealer(uuid string) (*Dealer, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, ok := p.dealers[uuid]
	return dealer, ok
}

// CloseTable stops dealing the table and forgets it
// Returns false if the table does not exist
func (p *PitBoss) CloseTable(uuid string) bool {
	p.lock.Lock()
	dealer, ok := p.dealers[uuid]
	delete(p.dealers, uuid)
	p.lock.Unlock()

	if !ok {
		return false
	}

	for _, client := range dealer.Clients() {
		select {
		case client.Close <- "table closed":
		default:
		}
	}

	dealer.EndShift()
	p.logger.WithField("uuid", uuid).Info("table closed")
	return true
}

// Tables returns the open tables, oldest first
func (p *PitBoss) Tables() []*Table {
	p.lock.RLock()
	tables := make([]*Table, 0, len(p.dealers))
	for _, dealer := range p.dealers {
		tables = append(tables, dealer.table)
	}
	p.lock.RUnlock()

	sort.Slice(tables, func(i, j int) bool {
		return tables[i].CreatedAt.Before(tables[j].CreatedAt)
	})

	return tables
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}

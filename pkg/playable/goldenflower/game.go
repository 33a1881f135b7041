package goldenflower

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"goldenflower-server/pkg/deck"
	"goldenflower-server/pkg/playable"
)

// MinSeats and MaxSeats bound the number of seats at a table
const (
	MinSeats  = 2
	MaxSeats  = 6
	cardCount = 3
)

// Stage represents the current stage of a hand
type Stage int

const (
	// StageIdle is before the first hand is dealt
	StageIdle Stage = iota
	// StageDealing is while cards are dealt and antes are collected
	StageDealing
	// StageBetting is when seats take turns acting
	StageBetting
	// StageSettled is after the pot has been paid out, until the next hand starts
	StageSettled
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageDealing:
		return "dealing"
	case StageBetting:
		return "betting"
	case StageSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// HandSummary describes how the last hand was settled
type HandSummary struct {
	HandNumber int          `json:"handNumber"`
	WinnerID   int64        `json:"winnerId"`
	Reason     SettleReason `json:"reason"`
	PotWon     int          `json:"potWon"`
	Winning    HandResult   `json:"winning"`
	Seed       int64        `json:"seed"`
}

var (
	_ playable.Playable = (*Game)(nil)
	_ playable.Tickable = (*Game)(nil)
)

// Game is a table of Golden Flower
// A Game is not safe for concurrent use. The owner must make sure only one
// action, step or state read happens at a time.
type Game struct {
	options         Options
	participants    []*Participant
	idToParticipant map[int64]*Participant

	ledger *Ledger
	deck   *deck.Deck

	stage       Stage
	activeIndex int
	round       int
	handNumber  int

	summary *HandSummary

	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage
}

// NewGame returns a new game in the idle stage
// Call StartHand() to deal the first hand.
func NewGame(logger logrus.FieldLogger, seats []SeatConfig, opts Options) (*Game, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if len(seats) < MinSeats || len(seats) > MaxSeats {
		return nil, ConfigurationError{
			Reason: fmt.Sprintf("expected between %d and %d seats, got %d", MinSeats, MaxSeats, len(seats)),
		}
	}

	participants := make([]*Participant, len(seats))
	idToParticipant := make(map[int64]*Participant)

	for i, seat := range seats {
		if seat.PlayerID <= 0 {
			return nil, ConfigurationError{Reason: fmt.Sprintf("seat %d has an invalid player ID", i)}
		}

		if _, ok := idToParticipant[seat.PlayerID]; ok {
			return nil, ConfigurationError{Reason: fmt.Sprintf("player %d is seated twice", seat.PlayerID)}
		}

		if seat.Chips < 0 {
			return nil, ConfigurationError{Reason: fmt.Sprintf("player %d has a negative balance", seat.PlayerID)}
		}

		switch seat.Kind {
		case KindHuman:
			if seat.Provider != nil {
				return nil, ConfigurationError{Reason: fmt.Sprintf("human player %d cannot have a decision provider", seat.PlayerID)}
			}
		case KindAutomated:
			if seat.Provider == nil {
				return nil, ConfigurationError{Reason: fmt.Sprintf("automated player %d needs a decision provider", seat.PlayerID)}
			}
		default:
			return nil, ConfigurationError{Reason: fmt.Sprintf("player %d has an unknown kind %q", seat.PlayerID, seat.Kind)}
		}

		p := NewParticipant(seat)
		participants[i] = p
		idToParticipant[seat.PlayerID] = p
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Game{
		options:         opts,
		participants:    participants,
		idToParticipant: idToParticipant,
		ledger:          NewLedger(opts.Ante),
		stage:           StageIdle,
		logger:          logger,
		logChan:         make(chan []*playable.LogMessage, 256),
	}, nil
}

// Name returns "golden-flower"
func (g *Game) Name() string {
	return "golden-flower"
}

// LogChan returns a channel for receiving log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Interval determines how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return g.options.TickInterval
}

// Tick lets an automated seat act when it is their turn
// Returns true if the state of the game changed
func (g *Game) Tick() (bool, error) {
	if g.stage != StageBetting || !g.participants[g.activeIndex].IsAutomated() {
		return false, nil
	}

	if _, err := g.Step(context.Background()); err != nil {
		return false, err
	}

	return true, nil
}

// StartHand deals a new hand
// Seats that cannot pay the ante sit the hand out. At least two seats must be
// able to play, otherwise a ConfigurationError is returned and nothing changes.
func (g *Game) StartHand() error {
	if g.stage == StageDealing || g.stage == StageBetting {
		return ErrHandInProgress
	}

	eligible := 0
	for _, p := range g.participants {
		if p.balance >= g.options.Ante {
			eligible++
		}
	}

	if eligible < MinSeats {
		return ConfigurationError{
			Reason: fmt.Sprintf("%d of %d seats can pay the ${%d} ante", eligible, len(g.participants), g.options.Ante),
			Err:    ErrNotEnoughPlayers,
		}
	}

	g.stage = StageDealing
	g.handNumber++
	g.summary = nil

	d := deck.New()
	seed := g.options.Seed
	if seed > 0 {
		seed += int64(g.handNumber - 1)
	}
	d.Shuffle(seed)
	g.deck = d

	// cannot happen with MaxSeats against a full deck, but dealing must never run dry
	if !d.CanDraw(cardCount * eligible) {
		g.stage = StageIdle
		g.handNumber--
		return ConfigurationError{Reason: "not enough cards to deal", Err: deck.ErrEndOfDeck}
	}

	g.ledger.Reset(g.options.Ante)

	messages := make([]*playable.LogMessage, 0, len(g.participants)+1)
	paid := make([]*Participant, 0, eligible)
	firstActive := -1
	for i, p := range g.participants {
		p.resetForHand()

		if err := g.ledger.Ante(p, g.options.Ante); err != nil {
			p.sitOut()
			messages = append(messages, newLogMessage(p.PlayerID, "{} cannot cover the ante and sits out"))
			continue
		}
		paid = append(paid, p)

		cards, err := d.DrawN(cardCount)
		if err != nil {
			g.abortDeal(paid)
			return ConfigurationError{Reason: "not enough cards to deal", Err: err}
		}

		for _, c := range cards {
			p.AddCard(c)
		}

		if firstActive < 0 {
			firstActive = i
		}

		messages = append(messages, newLogMessageWithAmount(p.PlayerID, g.options.Ante, "{} paid the ${%d} ante", g.options.Ante))
	}

	g.activeIndex = firstActive
	g.round = 1
	g.stage = StageBetting

	messages = append(messages, newLogMessage(0, "Hand %d dealt with a pot of ${%d}", g.handNumber, g.ledger.Pot()))
	g.sendLogMessages(messages...)

	g.logger.WithFields(logrus.Fields{
		"hand": g.handNumber,
		"seed": d.GetSeed(),
		"pot":  g.ledger.Pot(),
	}).Debug("hand dealt")

	return nil
}

// abortDeal gives the ante back to every seat that paid and returns the game
// to the idle stage
func (g *Game) abortDeal(paid []*Participant) {
	for _, p := range paid {
		g.ledger.Refund(p, g.options.Ante)
		p.ClearHand()
	}

	g.ledger.Reset(g.options.Ante)
	g.deck = nil
	g.stage = StageIdle
	g.handNumber--
}

// SubmitAction applies an action for the seat on turn
// A rejected action returns an InvalidActionError and leaves the game untouched
func (g *Game) SubmitAction(playerID int64, decision Decision) (*Outcome, error) {
	if g.stage != StageBetting {
		return nil, invalidAction(playerID, decision.Action, ErrNotBetting)
	}

	p, ok := g.idToParticipant[playerID]
	if !ok {
		return nil, invalidAction(playerID, decision.Action, ErrPlayerNotFound)
	}

	if g.participants[g.activeIndex] != p {
		return nil, invalidAction(playerID, decision.Action, ErrNotYourTurn)
	}

	return g.apply(p, decision)
}

// Step asks the DecisionProvider of the automated seat on turn for a decision
// and applies it. If the provider fails, times out, or decides on something
// that is rejected, the seat calls instead, so a step always moves the game on.
func (g *Game) Step(ctx context.Context) (*Outcome, error) {
	if g.stage != StageBetting {
		return nil, ErrNotBetting
	}

	p := g.participants[g.activeIndex]
	if !p.IsAutomated() {
		return nil, ErrNotAutomated
	}

	log := g.logger.WithFields(logrus.Fields{
		"hand":     g.handNumber,
		"playerID": p.PlayerID,
	})

	decision, err := g.decide(ctx, p)
	if err == nil {
		outcome, applyErr := g.apply(p, decision)
		if applyErr == nil {
			return outcome, nil
		}

		err = applyErr
	}

	log.WithError(err).WithField("action", decision.Action).Warn("automated decision failed, calling instead")

	outcome, err := g.apply(p, Decision{Action: ActionCall})
	if err != nil {
		return nil, err
	}

	outcome.Fallback = true
	return outcome, nil
}

type decisionResult struct {
	decision Decision
	err      error
}

func (g *Game) decide(ctx context.Context, p *Participant) (Decision, error) {
	if g.options.DecisionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.options.DecisionTimeout)
		defer cancel()
	}

	obs := g.observation(p)
	ch := make(chan decisionResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- decisionResult{err: fmt.Errorf("decision provider panicked: %v", r)}
			}
		}()

		d, err := p.provider.Decide(ctx, obs)
		ch <- decisionResult{decision: d, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return res.decision, res.err
		}

		if res.decision.Action == ActionRaise && res.decision.Increment <= 0 {
			res.decision.Increment = g.options.Ante
		}

		return res.decision, nil
	case <-ctx.Done():
		return Decision{}, ctx.Err()
	}
}

func (g *Game) apply(p *Participant, decision Decision) (*Outcome, error) {
	outcome := &Outcome{
		PlayerID: p.PlayerID,
		Action:   decision.Action,
	}

	var messages []*playable.LogMessage

	switch decision.Action {
	case ActionSeeCards:
		if p.seen {
			return nil, invalidAction(p.PlayerID, decision.Action, ErrAlreadyLooked)
		}

		g.ledger.MarkLooked(p)
		messages = append(messages, newLogMessage(p.PlayerID, "{} looked at their cards"))
	case ActionCall:
		paid, allIn := g.ledger.Call(p)
		outcome.Amount = paid
		outcome.AllIn = allIn
		if allIn {
			messages = append(messages, newLogMessageWithAmount(p.PlayerID, paid, "{} is all in with ${%d}", paid))
		} else {
			messages = append(messages, newLogMessageWithAmount(p.PlayerID, paid, "{} called ${%d}", paid))
		}
	case ActionRaise:
		paid, err := g.ledger.Raise(p, decision.Increment)
		if err != nil {
			return nil, invalidAction(p.PlayerID, decision.Action, err)
		}

		outcome.Amount = paid
		messages = append(messages, newLogMessageWithAmount(p.PlayerID, paid, "{} raised the base bet to ${%d}, paying ${%d}", g.ledger.BaseBet(), paid))
	case ActionAllIn:
		paid := g.ledger.AllIn(p)
		outcome.Amount = paid
		outcome.AllIn = true
		messages = append(messages, newLogMessageWithAmount(p.PlayerID, paid, "{} went all in with ${%d}", paid))
	case ActionFold:
		p.folded = true
		messages = append(messages, newLogMessage(p.PlayerID, "{} folded"))
	case ActionCompare:
		target := g.duelTarget(g.activeIndex)
		if target == nil {
			return nil, invalidAction(p.PlayerID, decision.Action, ErrNoDuelTarget)
		}

		paid, err := g.ledger.DuelStake(p)
		if err != nil {
			return nil, invalidAction(p.PlayerID, decision.Action, err)
		}

		// only a strict win knocks out the opponent; a tie goes against the challenger
		loser := p
		if CompareHands(p.hand, target.hand) > 0 {
			loser = target
		}
		loser.folded = true

		outcome.Amount = paid
		outcome.DuelOpponentID = target.PlayerID
		outcome.DuelLoserID = loser.PlayerID
		messages = append(messages,
			newLogMessageWithPlayers([]int64{p.PlayerID, target.PlayerID}, paid, "{} paid ${%d} to compare hands with {}", paid),
			newLogMessage(loser.PlayerID, "{} lost the comparison and is out"),
		)
	default:
		return nil, invalidAction(p.PlayerID, decision.Action, ErrUnknownAction)
	}

	g.sendLogMessages(messages...)

	if remaining := g.remaining(); len(remaining) == 1 {
		g.settle(remaining[0], SettleFoldOut, outcome)
		return outcome, nil
	}

	if g.ledger.Pot() >= g.options.PotCap {
		g.sendLogMessages(newLogMessage(0, "The pot reached ${%d}, forcing a showdown", g.ledger.Pot()))
		if err := g.showdown(SettlePotCap, outcome); err != nil {
			return nil, err
		}

		return outcome, nil
	}

	next, wrapped := g.nextActiveIndex(g.activeIndex)
	if wrapped {
		g.round++
		if g.round > g.options.RoundCap {
			g.sendLogMessages(newLogMessage(0, "Round limit of %d reached, forcing a showdown", g.options.RoundCap))
			if err := g.showdown(SettleRoundCap, outcome); err != nil {
				return nil, err
			}

			return outcome, nil
		}
	}

	g.activeIndex = next
	return outcome, nil
}

// nextActiveIndex returns the next seat after from that is still in the hand
// wrapped is true when the turn passes the end of the table and starts a new round
func (g *Game) nextActiveIndex(from int) (next int, wrapped bool) {
	n := len(g.participants)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if !g.participants[idx].folded {
			return idx, idx <= from
		}
	}

	return from, true
}

// duelTarget returns the next seat after from that is still in the hand, or
// nil if the seat at from is alone
func (g *Game) duelTarget(from int) *Participant {
	n := len(g.participants)
	for i := 1; i < n; i++ {
		p := g.participants[(from+i)%n]
		if !p.folded {
			return p
		}
	}

	return nil
}

func (g *Game) remaining() []*Participant {
	remaining := make([]*Participant, 0, len(g.participants))
	for _, p := range g.participants {
		if !p.folded {
			remaining = append(remaining, p)
		}
	}

	return remaining
}

// showdown settles the hand in favor of the best remaining hand
// Identical hands go to the seat closest to the first seat.
func (g *Game) showdown(reason SettleReason, outcome *Outcome) error {
	var best *Participant
	var bestResult HandResult
	for _, p := range g.remaining() {
		result := AnalyzeHand(p.hand)
		if best == nil || Compare(result, bestResult) > 0 {
			best = p
			bestResult = result
		}
	}

	if best == nil {
		return ErrNoRemainingSeats
	}

	g.settle(best, reason, outcome)
	return nil
}

func (g *Game) settle(winner *Participant, reason SettleReason, outcome *Outcome) {
	result := AnalyzeHand(winner.hand)
	won := g.ledger.Payout(winner)
	winner.winner = true
	g.stage = StageSettled

	seed := int64(0)
	if g.deck != nil {
		seed = g.deck.GetSeed()
	}

	g.summary = &HandSummary{
		HandNumber: g.handNumber,
		WinnerID:   winner.PlayerID,
		Reason:     reason,
		PotWon:     won,
		Winning:    result,
		Seed:       seed,
	}

	outcome.Settled = true
	outcome.Reason = reason
	outcome.WinnerID = winner.PlayerID
	outcome.PotWon = won

	msg := newLogMessageWithAmount(winner.PlayerID, won, "{} wins ${%d} with %s (%s)", won, HandTypeName(result.Type), HandTypeLocalName(result.Type))
	msg.Cards = winner.Hand()
	g.sendLogMessages(msg)

	g.logger.WithFields(logrus.Fields{
		"hand":     g.handNumber,
		"winnerID": winner.PlayerID,
		"reason":   reason,
		"pot":      won,
	}).Info("hand settled")
}

// Action performs an action from a client payload
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	if message.Action == "startHand" {
		if _, ok := g.idToParticipant[playerID]; !ok {
			return nil, false, ErrPlayerNotFound
		}

		if err := g.StartHand(); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	}

	action, err := ActionFromString(message.Action)
	if err != nil {
		return nil, false, err
	}

	decision := Decision{Action: action}
	if action == ActionRaise {
		if _, present := message.AdditionalData["increment"]; !present {
			return nil, false, invalidAction(playerID, action, errors.New("missing 'increment' parameter"))
		}

		increment, ok := message.AdditionalData.GetInt("increment")
		if !ok {
			return nil, false, invalidAction(playerID, action, errors.New("'increment' must be a whole number"))
		}

		decision.Increment = increment
	}

	if _, err := g.SubmitAction(playerID, decision); err != nil {
		return nil, false, err
	}

	return playable.OK(message.Context), true, nil
}

// GetEndOfGameDetails returns the chip movement of the last hand once it is settled
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if g.stage != StageSettled {
		return nil, false
	}

	adjustments := make(map[int64]int)
	for _, p := range g.participants {
		adjustments[p.PlayerID] = p.balance - p.startBalance
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                g.summary,
	}, true
}

// Stage returns the current stage
func (g *Game) Stage() Stage {
	return g.stage
}

// Pot returns the current pot
func (g *Game) Pot() int {
	return g.ledger.Pot()
}

// BaseBet returns the current base bet unit
func (g *Game) BaseBet() int {
	return g.ledger.BaseBet()
}

// Round returns the current betting round, starting at 1
func (g *Game) Round() int {
	return g.round
}

// HandNumber returns how many hands have been dealt
func (g *Game) HandNumber() int {
	return g.handNumber
}

// Summary returns how the last hand was settled, or nil while a hand is in progress
func (g *Game) Summary() *HandSummary {
	return g.summary
}

// Active returns the seat on turn, or nil outside of the betting stage
func (g *Game) Active() *Participant {
	if g.stage != StageBetting {
		return nil
	}

	return g.participants[g.activeIndex]
}

// Participants returns the seats in table order
func (g *Game) Participants() []*Participant {
	return append([]*Participant{}, g.participants...)
}

// Participant returns the seat for the player
func (g *Game) Participant(playerID int64) (*Participant, bool) {
	p, ok := g.idToParticipant[playerID]
	return p, ok
}

// Options returns the options the game was created with
func (g *Game) Options() Options {
	return g.options
}

package goldenflower

import "goldenflower-server/pkg/deck"

// Kind is who makes the decisions for a seat
type Kind string

// seat kinds
const (
	KindHuman     Kind = "human"
	KindAutomated Kind = "automated"
)

// SeatConfig describes a seat when the table is set up
type SeatConfig struct {
	PlayerID int64
	Name     string
	Kind     Kind
	Chips    int
	// Provider decides for automated seats and must be nil for human seats
	Provider DecisionProvider
}

// Participant is an individual seat in the game
// The balance carries over from hand to hand; everything else resets on each deal
type Participant struct {
	PlayerID int64
	Name     string
	Kind     Kind

	provider DecisionProvider

	balance int
	// balance before the ante of the current hand
	startBalance int
	hand         []*deck.Card

	seen       bool
	folded     bool
	winner     bool
	sittingOut bool
}

// NewParticipant returns a new participant
func NewParticipant(cfg SeatConfig) *Participant {
	return &Participant{
		PlayerID:     cfg.PlayerID,
		Name:         cfg.Name,
		Kind:         cfg.Kind,
		provider:     cfg.Provider,
		balance:      cfg.Chips,
		startBalance: cfg.Chips,
		hand:         make([]*deck.Card, 0, 3),
	}
}

// AddCard adds a card to the participant's hand
func (p *Participant) AddCard(card *deck.Card) {
	p.hand = append(p.hand, card)
}

// Hand returns a shallow copy of the participant's hand
func (p *Participant) Hand() []*deck.Card {
	return append([]*deck.Card{}, p.hand...)
}

// ClearHand removes all cards from the participant's hand
func (p *Participant) ClearHand() {
	p.hand = make([]*deck.Card, 0, 3)
}

// Balance returns the participant's chip balance
func (p *Participant) Balance() int {
	return p.balance
}

// HasLooked returns true if the participant has seen their cards this hand
func (p *Participant) HasLooked() bool {
	return p.seen
}

// HasFolded returns true if the participant is out of the current hand
// Seats that could not pay the ante are also considered folded
func (p *Participant) HasFolded() bool {
	return p.folded
}

// IsWinner returns true if the participant won the last settled hand
func (p *Participant) IsWinner() bool {
	return p.winner
}

// IsSittingOut returns true if the participant could not pay the ante for the current hand
func (p *Participant) IsSittingOut() bool {
	return p.sittingOut
}

// IsAutomated returns true if a DecisionProvider acts for the seat
func (p *Participant) IsAutomated() bool {
	return p.Kind == KindAutomated
}

func (p *Participant) resetForHand() {
	p.ClearHand()
	p.startBalance = p.balance
	p.seen = false
	p.folded = false
	p.winner = false
	p.sittingOut = false
}

func (p *Participant) sitOut() {
	p.sittingOut = true
	p.folded = true
}

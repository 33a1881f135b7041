package goldenflower

// Ledger tracks the pot and the base bet unit for a hand and applies the cost
// of each action to the acting seat.
// The ledger is the only thing that moves chips between seats and the pot, so
// the pot is always Collected() - PaidOut().
type Ledger struct {
	pot       int
	baseBet   int
	collected int
	paidOut   int
}

// NewLedger returns a ledger with an empty pot and the ante as the base bet unit
func NewLedger(ante int) *Ledger {
	l := &Ledger{}
	l.Reset(ante)
	return l
}

// Reset prepares the ledger for a new hand
func (l *Ledger) Reset(ante int) {
	l.pot = 0
	l.baseBet = ante
	l.collected = 0
	l.paidOut = 0
}

// Pot returns the current pot
func (l *Ledger) Pot() int {
	return l.pot
}

// BaseBet returns the current base bet unit
func (l *Ledger) BaseBet() int {
	return l.baseBet
}

// Collected returns everything paid into the pot this hand
func (l *Ledger) Collected() int {
	return l.collected
}

// PaidOut returns everything paid out of the pot this hand
func (l *Ledger) PaidOut() int {
	return l.paidOut
}

// Multiplier is 2 for a seat that has seen its cards and 1 for a seat playing blind
func (l *Ledger) Multiplier(p *Participant) int {
	if p.seen {
		return 2
	}

	return 1
}

// CallCost returns what a Call or a duel stake costs the seat
func (l *Ledger) CallCost(p *Participant) int {
	return l.baseBet * l.Multiplier(p)
}

// RaiseCost returns what raising the base bet by increment costs the seat
func (l *Ledger) RaiseCost(p *Participant, increment int) int {
	return (l.baseBet + increment) * l.Multiplier(p)
}

func (l *Ledger) commit(p *Participant, amount int) {
	p.balance -= amount
	l.pot += amount
	l.collected += amount
}

// Ante collects the ante from the seat
// A seat that cannot cover it pays nothing and ErrInsufficientBalance is returned
func (l *Ledger) Ante(p *Participant, amount int) error {
	if p.balance < amount {
		return ErrInsufficientBalance
	}

	l.commit(p, amount)
	return nil
}

// Call pays the base bet unit times the seat's multiplier
// A seat that cannot cover the cost pays its whole balance instead, and allIn is true
func (l *Ledger) Call(p *Participant) (paid int, allIn bool) {
	cost := l.CallCost(p)
	if p.balance < cost {
		paid = p.balance
		l.commit(p, paid)
		return paid, true
	}

	l.commit(p, cost)
	return cost, false
}

// Raise increases the base bet unit by increment for everyone and charges the
// seat the new unit times its multiplier. Nothing changes if the seat cannot pay.
func (l *Ledger) Raise(p *Participant, increment int) (int, error) {
	if increment <= 0 {
		return 0, ErrInvalidIncrement
	}

	// checked before multiplying so a huge increment cannot overflow the cost
	if increment > p.balance/l.Multiplier(p)-l.baseBet {
		return 0, ErrInsufficientBalance
	}

	cost := l.RaiseCost(p, increment)
	l.baseBet += increment
	l.commit(p, cost)
	return cost, nil
}

// AllIn pays the seat's entire balance, whatever the base bet unit is
func (l *Ledger) AllIn(p *Participant) int {
	paid := p.balance
	l.commit(p, paid)
	return paid
}

// DuelStake charges the cost of a comparison. The stake stays in the pot
// whoever wins. Nothing changes if the seat cannot pay.
func (l *Ledger) DuelStake(p *Participant) (int, error) {
	cost := l.CallCost(p)
	if p.balance < cost {
		return 0, ErrInsufficientBalance
	}

	l.commit(p, cost)
	return cost, nil
}

// MarkLooked flags the seat as having seen its cards. No chips move, but every
// later cost for the seat is doubled.
func (l *Ledger) MarkLooked(p *Participant) {
	p.seen = true
}

// Refund gives amount back to the seat out of the pot
func (l *Ledger) Refund(p *Participant, amount int) {
	p.balance += amount
	l.pot -= amount
	l.collected -= amount
}

// Payout moves the whole pot to the seat
func (l *Ledger) Payout(p *Participant) int {
	won := l.pot
	p.balance += won
	l.paidOut += won
	l.pot = 0
	return won
}

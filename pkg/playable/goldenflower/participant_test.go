package goldenflower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"goldenflower-server/pkg/deck"
)

func TestNewParticipant(t *testing.T) {
	p := NewParticipant(SeatConfig{PlayerID: 123, Name: "Ann", Kind: KindHuman, Chips: 500})

	assert.Equal(t, int64(123), p.PlayerID)
	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, 500, p.Balance())
	assert.False(t, p.IsAutomated())
	assert.Empty(t, p.hand)
}

func TestParticipant_Hand(t *testing.T) {
	p := NewParticipant(SeatConfig{PlayerID: 1})

	card1 := deck.CardFromString("14c")
	card2 := deck.CardFromString("13d")
	p.AddCard(card1)
	p.AddCard(card2)

	hand := p.Hand()
	assert.Len(t, hand, 2)

	// Verify it's a copy
	hand[0] = deck.CardFromString("2c")
	assert.Equal(t, card1, p.hand[0])

	p.ClearHand()
	assert.Empty(t, p.hand)
}

func TestParticipant_resetForHand(t *testing.T) {
	a := assert.New(t)
	p := NewParticipant(SeatConfig{PlayerID: 1, Kind: KindAutomated, Chips: 10})
	p.AddCard(deck.CardFromString("14c"))
	p.seen = true
	p.winner = true
	p.sitOut()
	a.True(p.HasFolded())
	a.True(p.IsSittingOut())

	p.balance = 40
	p.resetForHand()
	a.Empty(p.hand)
	a.False(p.HasLooked())
	a.False(p.HasFolded())
	a.False(p.IsWinner())
	a.False(p.IsSittingOut())
	a.Equal(40, p.startBalance)
	a.True(p.IsAutomated())
}

package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"goldenflower-server/internal/rng"
)

func TestBuild(t *testing.T) {
	a := assert.New(t)
	cards := Build()
	a.Equal(52, len(cards))

	a.Equal(Card{Rank: 2, Suit: Spades}, *cards[0])
	a.Equal(Card{Rank: 14, Suit: Spades}, *cards[12])
	a.Equal(Card{Rank: 2, Suit: Hearts}, *cards[13])
	a.Equal(Card{Rank: 14, Suit: Diamonds}, *cards[51])

	seen := make(map[string]bool)
	for _, c := range cards {
		seen[CardToString(c)] = true
	}
	a.Equal(52, len(seen))

	// deterministic
	a.Equal(CardsToString(cards), CardsToString(Build()))
}

func TestShuffled(t *testing.T) {
	a := assert.New(t)
	cards := Build()
	before := CardsToString(cards)

	shuffled := Shuffled(cards, rng.Seeded(1))
	a.Equal(before, CardsToString(cards), "input must not be reordered")
	a.Equal(52, len(shuffled))
	a.NotEqual(before, CardsToString(shuffled))

	again := Shuffled(cards, rng.Seeded(1))
	a.Equal(CardsToString(shuffled), CardsToString(again))

	seen := make(map[string]bool)
	for _, c := range shuffled {
		seen[CardToString(c)] = true
	}
	a.Equal(52, len(seen))
}

func TestShuffled_uniformFirstCard(t *testing.T) {
	gen := rng.Seeded(7)
	counts := make(map[string]int)
	cards := CardsFromString("2s,3s,4s")
	for i := 0; i < 3000; i++ {
		counts[CardToString(Shuffled(cards, gen)[0])]++
	}

	for _, c := range []string{"2s", "3s", "4s"} {
		assert.InDelta(t, 1000, counts[c], 150, c)
	}
}

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, int64(-1), deck.GetSeed())
	unshuffled := deck.HashCode()

	deck.Shuffle(1)
	assert.Equal(t, int64(1), deck.GetSeed())
	assert.Equal(t, 52, deck.CardsLeft())
	shuffled := deck.HashCode()
	assert.NotEqual(t, unshuffled, shuffled)

	deck.Shuffle(1)
	assert.Equal(t, shuffled, deck.HashCode())

	deck.Shuffle(0)
	assert.Greater(t, deck.GetSeed(), int64(0))
	assert.Panics(t, func() { deck.Shuffle(-1) })
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := deck.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}

	deck.Shuffle(5)
	if !deck.CanDraw(52) {
		t.Errorf("expected Shuffle() to reshuffle the deck")
	}
}

func TestDeck_DrawN(t *testing.T) {
	a := assert.New(t)
	d := New()
	d.Cards = CardsFromString("2c,3c,4c,5c")

	cards, err := d.DrawN(3)
	a.NoError(err)
	a.Equal("2c,3c,4c", CardsToString(cards))
	a.Equal(1, d.CardsLeft())

	cards, err = d.DrawN(3)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(cards)
	a.Equal(1, d.CardsLeft(), "a failed draw consumes nothing")
}

package goldenflower

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"goldenflower-server/pkg/deck"
)

func TestAnalyzeHand(t *testing.T) {
	tests := []struct {
		name      string
		cards     string
		wantType  HandType
		wantRanks []int
		wantScore int
	}{
		{"Trio of Aces", "14s,14h,14c", Trio, []int{14}, 100},
		{"Trio of Kings", "13s,13h,13c", Trio, []int{13}, 96},
		{"Trio of Twos", "2s,2h,2d", Trio, []int{2}, 85},
		{"Straight flush A-K-Q", "14h,13h,12h", StraightFlush, []int{14, 13, 12}, 84},
		{"Straight flush K-Q-J", "13h,11h,12h", StraightFlush, []int{13, 12, 11}, 84},
		{"Straight flush 4-3-2", "2d,3d,4d", StraightFlush, []int{4, 3, 2}, 76},
		{"Straight flush A-3-2", "14c,2c,3c", StraightFlush, []int{3, 2, 1}, 75},
		{"Flush ace high", "14s,9s,2s", Flush, []int{14, 9, 2}, 73},
		{"Flush five high", "5s,3s,2s", Flush, []int{5, 3, 2}, 67},
		{"Straight K-Q-J", "13s,12h,11c", Straight, []int{13, 12, 11}, 65},
		{"Straight A-K-Q", "12s,14h,13c", Straight, []int{14, 13, 12}, 66},
		{"Straight A-3-2", "3s,14h,2c", Straight, []int{3, 2, 1}, 55},
		{"Straight 4-3-2", "3s,4h,2c", Straight, []int{4, 3, 2}, 56},
		{"Pair high kicker", "9s,9h,14c", Pair, []int{9, 14}, 47},
		{"Pair low kicker", "9s,2h,9c", Pair, []int{9, 2}, 47},
		{"Pair of aces", "14s,14h,3c", Pair, []int{14, 3}, 52},
		{"Ace high", "14s,10h,7c", HighCard, []int{14, 10, 7}, 24},
		{"Five high", "5s,3h,2c", HighCard, []int{5, 3, 2}, 6},
		{"A-4-2 is not a straight", "14s,4h,2c", HighCard, []int{14, 4, 2}, 24},
		{"A-2-K is not a straight", "14s,2h,13c", HighCard, []int{14, 13, 2}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeHand(deck.CardsFromString(tt.cards))
			assert.Equal(t, tt.wantType, result.Type)
			assert.Equal(t, tt.wantRanks, result.Ranks)
			assert.Equal(t, tt.wantScore, result.Score)
		})
	}
}

func TestAnalyzeHand_Invalid(t *testing.T) {
	for _, cards := range []string{"", "14s", "14s,14h", "14s,14h,14c,14d"} {
		result := AnalyzeHand(deck.CardsFromString(cards))
		assert.Equal(t, Invalid, result.Type, cards)
		assert.Equal(t, 0, result.Score, cards)
		assert.Empty(t, result.Ranks, cards)
	}

	assert.Less(t, Compare(AnalyzeHand(nil), AnalyzeHand(deck.CardsFromString("5s,3h,2c"))), 0)
}

func TestAnalyzeHand_doesNotReorderInput(t *testing.T) {
	cards := deck.CardsFromString("2s,14h,9c")
	_ = AnalyzeHand(cards)
	assert.Equal(t, "2s,14h,9c", deck.CardsToString(cards))
}

func TestCompareHands(t *testing.T) {
	tests := []struct {
		name   string
		better string
		worse  string
	}{
		{"Trio beats straight flush", "2s,2h,2c", "14h,13h,12h"},
		{"Straight flush beats flush", "4d,3d,2d", "14s,13s,11s"},
		{"Flush beats straight", "5s,3s,2s", "14s,13h,12c"},
		{"Straight beats pair", "14s,3h,2c", "14d,14h,13c"},
		{"Pair beats high card", "2s,2h,3c", "14s,13h,11c"},
		{"Higher trio", "3s,3h,3c", "2s,2h,2c"},
		{"Wheel loses to 4-3-2", "4s,3h,2c", "14s,3d,2c"},
		{"Wheel straight flush loses to 4-3-2 straight flush", "4h,3h,2h", "14d,3d,2d"},
		{"Higher pair", "10s,10h,2c", "9s,9h,14c"},
		{"Pair kicker", "10s,10h,5c", "10d,10c,4c"},
		{"High card second rank", "14s,10h,7c", "14d,9h,8c"},
		{"High card third rank", "14s,10h,7c", "14d,10c,6c"},
		{"Flush by top rank", "14s,5s,3s", "13d,12d,10d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			better := deck.CardsFromString(tt.better)
			worse := deck.CardsFromString(tt.worse)
			assert.Equal(t, 1, CompareHands(better, worse))
			assert.Equal(t, -1, CompareHands(worse, better))
		})
	}
}

func TestCompareHands_Tie(t *testing.T) {
	assert.Equal(t, 0, CompareHands(deck.CardsFromString("13s,12h,11c"), deck.CardsFromString("13d,12c,11h")))
	assert.Equal(t, 0, CompareHands(deck.CardsFromString("14s,10h,7c"), deck.CardsFromString("14d,10c,7h")))

	h := AnalyzeHand(deck.CardsFromString("9s,9h,14c"))
	assert.Equal(t, 0, Compare(h, h))
}

func TestCompare_scoreIsNotAuthoritative(t *testing.T) {
	// K-Q-J and A-K-Q straight flushes share a capped score but are not equal
	akq := AnalyzeHand(deck.CardsFromString("14h,13h,12h"))
	kqj := AnalyzeHand(deck.CardsFromString("13s,12s,11s"))
	assert.Equal(t, akq.Score, kqj.Score)
	assert.Greater(t, Compare(akq, kqj), 0)
}

func allHands() []HandResult {
	cards := deck.Build()
	hands := make([]HandResult, 0, 22100)
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			for k := j + 1; k < len(cards); k++ {
				hands = append(hands, AnalyzeHand([]*deck.Card{cards[i], cards[j], cards[k]}))
			}
		}
	}

	return hands
}

func TestCompare_totalOrderOverAllHands(t *testing.T) {
	hands := allHands()
	assert.Equal(t, 22100, len(hands))

	sort.SliceStable(hands, func(i, j int) bool {
		return Compare(hands[i], hands[j]) < 0
	})

	for i := 1; i < len(hands); i++ {
		prev, cur := hands[i-1], hands[i]
		if !assert.LessOrEqual(t, Compare(prev, cur), 0) {
			return
		}

		// classification order is respected
		if !assert.LessOrEqual(t, int(prev.Type), int(cur.Type)) {
			return
		}

		// the advisory score never disagrees with the authoritative order
		if !assert.LessOrEqual(t, prev.Score, cur.Score, "%v vs %v", prev, cur) {
			return
		}
	}
}

func TestScore_bandsDoNotOverlap(t *testing.T) {
	minScore := make(map[HandType]int)
	maxScore := make(map[HandType]int)
	for _, h := range allHands() {
		if cur, ok := minScore[h.Type]; !ok || h.Score < cur {
			minScore[h.Type] = h.Score
		}
		if h.Score > maxScore[h.Type] {
			maxScore[h.Type] = h.Score
		}
		assert.True(t, h.Score >= 0 && h.Score <= 100)
	}

	types := []HandType{HighCard, Pair, Straight, Flush, StraightFlush, Trio}
	for i := 1; i < len(types); i++ {
		assert.Greater(t, minScore[types[i]], maxScore[types[i-1]], "%s vs %s", types[i], types[i-1])
	}
	assert.Equal(t, 100, maxScore[Trio])
}

func TestCompare_antisymmetric(t *testing.T) {
	hands := allHands()
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		a := hands[r.Intn(len(hands))]
		b := hands[r.Intn(len(hands))]
		ab, ba := Compare(a, b), Compare(b, a)
		switch {
		case ab > 0:
			assert.Less(t, ba, 0)
		case ab < 0:
			assert.Greater(t, ba, 0)
		default:
			assert.Equal(t, 0, ba)
		}
	}
}

func TestHandTypeName(t *testing.T) {
	assert.Equal(t, "Trio", HandTypeName(Trio))
	assert.Equal(t, "Straight Flush", StraightFlush.String())
	assert.Equal(t, "High Card", HandTypeName(HighCard))
	assert.Equal(t, "Unknown", HandTypeName(Invalid))
	assert.Equal(t, "金花", HandTypeLocalName(Flush))
	assert.Equal(t, "未知", HandTypeLocalName(Invalid))
}

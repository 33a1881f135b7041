package goldenflower

import (
	"sort"

	"goldenflower-server/pkg/deck"
)

// HandType represents the classification of a 3-card hand
// Higher values beat lower values
type HandType int

const (
	// Invalid is the classification of anything that is not exactly three cards
	Invalid HandType = iota - 1
	// HighCard is three unrelated cards
	HighCard
	// Pair is two cards of the same rank
	Pair
	// Straight is three consecutive ranks in mixed suits
	Straight
	// Flush is three cards of the same suit
	Flush
	// StraightFlush is three consecutive ranks of the same suit
	StraightFlush
	// Trio is three cards of the same rank
	Trio
)

// HandResult contains the analysis of a 3-card hand
type HandResult struct {
	Type HandType `json:"type"`
	// Ranks is the tie-break key, compared left to right
	//   Trio: [rank]
	//   Straight, StraightFlush: the run, high to low ([3,2,1] for A-3-2)
	//   Flush, HighCard: all three ranks, high to low
	//   Pair: [pairRank, kicker]
	Ranks []int `json:"ranks"`
	// Score is an advisory 0-100 strength used by bots. Never use it to decide a hand.
	Score int `json:"score"`
}

// AnalyzeHand classifies a 3-card hand
// Anything other than three cards is Invalid with a zero score.
func AnalyzeHand(cards []*deck.Card) HandResult {
	if len(cards) != 3 {
		return HandResult{Type: Invalid}
	}

	ranks := make([]int, 3)
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	isFlush := cards[0].Suit == cards[1].Suit && cards[1].Suit == cards[2].Suit

	// A-3-2 counts as a straight, but ranks below 4-3-2
	isStraight := false
	straightRanks := ranks
	if ranks[0] == deck.Ace && ranks[1] == deck.Three && ranks[2] == deck.Two {
		isStraight = true
		straightRanks = []int{deck.Three, deck.Two, deck.LowAce}
	} else if ranks[0] == ranks[1]+1 && ranks[1] == ranks[2]+1 {
		isStraight = true
	}

	var result HandResult
	switch {
	case ranks[0] == ranks[1] && ranks[1] == ranks[2]:
		result = HandResult{Type: Trio, Ranks: []int{ranks[0]}}
	case isFlush && isStraight:
		result = HandResult{Type: StraightFlush, Ranks: straightRanks}
	case isFlush:
		result = HandResult{Type: Flush, Ranks: ranks}
	case isStraight:
		result = HandResult{Type: Straight, Ranks: straightRanks}
	case ranks[0] == ranks[1]:
		result = HandResult{Type: Pair, Ranks: []int{ranks[0], ranks[2]}}
	case ranks[1] == ranks[2]:
		result = HandResult{Type: Pair, Ranks: []int{ranks[1], ranks[0]}}
	default:
		result = HandResult{Type: HighCard, Ranks: ranks}
	}

	result.Score = score(result)
	return result
}

// score bands never overlap: every hand of a higher type scores above every
// hand of a lower type, and scores never decrease as the top rank rises
//
//	HighCard       6..24
//	Pair          40..52
//	Straight      55..66
//	Flush         67..73
//	StraightFlush 75..84
//	Trio          85..97, AAA = 100
func score(h HandResult) int {
	top := h.Ranks[0]

	var s int
	switch h.Type {
	case Trio:
		s = 85 + (top - 2)
		if top == deck.Ace {
			s = 100
		}
	case StraightFlush:
		s = 75 + (top - 3)
		if s > 84 {
			s = 84
		}
	case Flush:
		// 65 + (top-2)*0.7, floored
		s = 65 + (top-2)*7/10
	case Straight:
		s = 55 + (top - 3)
	case Pair:
		s = 40 + (top - 2)
	case HighCard:
		s = (top - 2) * 2
	}

	if s > 100 {
		s = 100
	}

	return s
}

// Compare compares two analyzed hands and returns:
// a positive number if a wins, a negative number if b wins, 0 if they are identical
// Type is compared first, then the rank keys element by element.
func Compare(a, b HandResult) int {
	if a.Type != b.Type {
		return int(a.Type) - int(b.Type)
	}

	n := len(a.Ranks)
	if len(b.Ranks) > n {
		n = len(b.Ranks)
	}

	for i := 0; i < n; i++ {
		ra, rb := rankAt(a.Ranks, i), rankAt(b.Ranks, i)
		if ra != rb {
			return ra - rb
		}
	}

	return 0
}

func rankAt(ranks []int, i int) int {
	if i < len(ranks) {
		return ranks[i]
	}

	return 0
}

// CompareHands compares two hands and returns:
// 1 if hand1 wins, -1 if hand2 wins, 0 if tie
func CompareHands(hand1, hand2 []*deck.Card) int {
	cmp := Compare(AnalyzeHand(hand1), AnalyzeHand(hand2))
	if cmp > 0 {
		return 1
	}
	if cmp < 0 {
		return -1
	}
	return 0
}

// HandTypeName returns a human-readable name for the hand type
func HandTypeName(t HandType) string {
	switch t {
	case Trio:
		return "Trio"
	case StraightFlush:
		return "Straight Flush"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case Pair:
		return "Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// HandTypeLocalName returns the traditional table name for the hand type
func HandTypeLocalName(t HandType) string {
	switch t {
	case Trio:
		return "豹子"
	case StraightFlush:
		return "顺金"
	case Flush:
		return "金花"
	case Straight:
		return "顺子"
	case Pair:
		return "对子"
	case HighCard:
		return "单张"
	default:
		return "未知"
	}
}

func (h HandType) String() string {
	return HandTypeName(h)
}

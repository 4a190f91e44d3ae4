package hand

import (
	"testing"

	"PokerAssist/internal/game/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(tokens ...string) []card.Card {
	out := make([]card.Card, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, card.MustParse(t))
	}
	return out
}

func TestRankBonus(t *testing.T) {
	assert.InDelta(t, 15.0, RankBonus(14, 10), 1e-9)
	assert.InDelta(t, 12.0, RankBonus(13, 10), 1e-9)
	assert.InDelta(t, 12.0, RankBonus(11, 10), 1e-9)
	assert.InDelta(t, 10.0*8/12, RankBonus(10, 10), 1e-9)
	assert.InDelta(t, 0.0, RankBonus(2, 10), 1e-9)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		hole     []string
		board    []string
		category Category
		label    string
		strength float64
	}{
		{"royal flush", []string{"AS", "KS"}, []string{"QS", "JS", "10S"}, RoyalFlush, "Royal Flush", 100},
		{"straight flush", []string{"9H", "8H"}, []string{"7H", "6H", "5H", "2C", "KD"}, StraightFlush, "Straight Flush", 100},
		{"straight flush on board", []string{"2C", "3D"}, []string{"9H", "8H", "7H", "6H", "5H"}, StraightFlush, "Straight Flush", 95},
		{"straight flush improved", []string{"10H", "3D"}, []string{"9H", "8H", "7H", "6H", "5H"}, StraightFlush, "Straight Flush", 100},
		{"quad aces", []string{"AS", "AH"}, []string{"AD", "AC", "KH"}, FourOfAKind, LabelQuadAces, 100},
		{"quad kings capped", []string{"KS", "KH"}, []string{"KD", "KC", "2S"}, FourOfAKind, "Four of a Kind", 98},
		{"quad fives", []string{"5S", "5H"}, []string{"5D", "5C", "2S"}, FourOfAKind, "Four of a Kind", 88.75},
		{"full house", []string{"KS", "KH"}, []string{"KD", "2C", "2S"}, FullHouse, "Full House", 94.4},
		{"full house capped", []string{"AS", "AH"}, []string{"AD", "KS", "KH"}, FullHouse, "Full House", 95},
		{"two trips make a full house", []string{"9S", "9H"}, []string{"9D", "4C", "4S", "4H"}, FullHouse, "Full House", 80 + 7*12.0/12 + 2*6.0/12},
		{"own flush", []string{"AH", "2H"}, []string{"5H", "9H", "KH", "3C"}, Flush, "Flush", 92},
		{"board flush", []string{"AS", "3C"}, []string{"5H", "9H", "KH", "2H", "7H"}, Flush, "Flush", 79.6},
		{"own straight", []string{"9S", "8D"}, []string{"7C", "6H", "5S"}, Straight, "Straight", 88.2},
		{"board straight", []string{"2H", "3D"}, []string{"5S", "6H", "7D", "8C", "9S"}, Straight, "Straight", 68.2},
		{"wheel scores from the ace", []string{"AS", "2H"}, []string{"3D", "4C", "5S"}, Straight, "Straight", 89},
		{"wheel with king", []string{"AS", "2H"}, []string{"3D", "4C", "5S", "KD"}, Straight, "Straight", 89},
		{"straight with higher king", []string{"9S", "8D"}, []string{"7C", "6H", "5S", "KD"}, Straight, "Straight", 89},
		{"straight with higher eight", []string{"6S", "5D"}, []string{"4C", "3H", "2S", "8D"}, Straight, "Straight", 85 + 3*0.8},
		{"own trips", []string{"7S", "7H"}, []string{"7D", "KC", "2S"}, ThreeOfAKind, "Three of a Kind", 70 + 5*20.0/12 + 3.3},
		{"board trips", []string{"KC", "2S"}, []string{"7S", "7H", "7D"}, ThreeOfAKind, "Three of a Kind", 50 + 5*20.0/12 + 3.3},
		{"own two pair", []string{"8S", "5H"}, []string{"8D", "5C", "2S"}, TwoPair, "Two Pair", 70},
		{"two pair capped", []string{"KS", "9H"}, []string{"KD", "9C", "2S"}, TwoPair, "Two Pair", 83},
		{"board two pair", []string{"2C", "3H"}, []string{"8D", "8C", "5S", "5H", "KD"}, TwoPair, "Two Pair", 40 + 7.5 + 2.5 + 3.3},
		{"overpair capped", []string{"AS", "AH"}, []string{"7D", "4C", "2S"}, OnePair, "One Pair", 75},
		{"own pair", []string{"6S", "6H"}, []string{"9D", "4C", "2S"}, OnePair, "One Pair", 45 + 4*25.0/12 + 2.8 + 0.4},
		{"board pair", []string{"2H", "4D"}, []string{"KD", "KC", "7S"}, OnePair, "One Pair", 30 + 30 + 2 + 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Evaluate(cards(tt.hole...), cards(tt.board...))
			assert.Equal(t, tt.category, h.Category)
			assert.Equal(t, tt.label, h.Label)
			assert.InDelta(t, tt.strength, h.Strength, 1e-9)
			assert.Nil(t, h.Potential, "made hands carry no draw potential")
		})
	}
}

func TestEvaluateHighCardPreflop(t *testing.T) {
	h := Evaluate(cards("AS", "KD"), nil)

	assert.Equal(t, HighCard, h.Category)
	assert.InDelta(t, 30+6+2.75, h.Strength, 1e-9)
	require.NotNil(t, h.Potential)
	assert.Equal(t, 0, h.Potential.Strength)
}

func TestEvaluateHighCardWithDrawIsCapped(t *testing.T) {
	h := Evaluate(cards("AH", "KH"), cards("2H", "7H", "9S"))

	assert.Equal(t, HighCard, h.Category)
	assert.InDelta(t, 45, h.Strength, 1e-9)
	require.NotNil(t, h.Potential)
	assert.True(t, h.Potential.FlushDraw)
}

func TestEvaluateHighCardTurnDrawBonus(t *testing.T) {
	// 4 suited on the turn: 45 * 0.8 = 36 bonus, capped total 45
	h := Evaluate(cards("4H", "3H"), cards("8H", "9H", "KC", "QD"))
	require.NotNil(t, h.Potential)
	assert.Equal(t, HighCard, h.Category)
	assert.LessOrEqual(t, h.Strength, 45.0)
}

func TestEvaluateUnknown(t *testing.T) {
	h := Evaluate(cards("AS"), nil)
	assert.Equal(t, LabelUnknown, h.Label)
	assert.Zero(t, h.Strength)
}

func TestCategoryOrder(t *testing.T) {
	for c := HighCard; c < RoyalFlush; c++ {
		assert.Less(t, c, c+1)
		assert.GreaterOrEqual(t, c.OpponentPenalty(), (c + 1).OpponentPenalty())
	}
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "Unknown", Category(99).String())
}

func TestStrengthAlwaysInRange(t *testing.T) {
	for seed := int64(0); seed < 300; seed++ {
		d := card.NewDealer(seed)
		d.NewDeck()
		hole := d.DealHoleCards(1)[0]
		boardSize := []int{0, 3, 4, 5}[seed%4]
		b := d.DealCommunity(boardSize)

		h := Evaluate(hole[:], b)
		assert.GreaterOrEqual(t, h.Strength, 0.0, "seed %d", seed)
		assert.LessOrEqual(t, h.Strength, 100.0, "seed %d", seed)
	}
}

func TestCategoryText(t *testing.T) {
	for c := HighCard; c <= RoyalFlush; c++ {
		b, err := c.MarshalText()
		require.NoError(t, err)
		var back Category
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, c, back)
	}
	var c Category
	assert.Error(t, c.UnmarshalText([]byte("Five of a Kind")))
}

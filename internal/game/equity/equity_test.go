package equity

import (
	"testing"

	"PokerAssist/internal/game/draw"
	"PokerAssist/internal/game/hand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageOf(t *testing.T) {
	assert.Equal(t, PreFlop, StageOf(0))
	assert.Equal(t, Flop, StageOf(1))
	assert.Equal(t, Flop, StageOf(2), "partial boards never get the river multiplier")
	assert.Equal(t, Flop, StageOf(3))
	assert.Equal(t, Turn, StageOf(4))
	assert.Equal(t, River, StageOf(5))

	assert.Equal(t, 0.9, PreFlop.Multiplier())
	assert.Equal(t, 1.0, Flop.Multiplier())
	assert.Equal(t, 1.1, Turn.Multiplier())
	assert.Equal(t, 1.2, River.Multiplier())
	assert.Equal(t, "turn", Turn.String())
}

func TestWinProbabilityHeadsUp(t *testing.T) {
	h := hand.Hand{Category: hand.OnePair, Strength: 60}

	assert.InDelta(t, 60, WinProbability(h, 3, 1), 1e-9)
	assert.InDelta(t, 72, WinProbability(h, 5, 1), 1e-9)
	assert.InDelta(t, 54, WinProbability(h, 0, 1), 1e-9)
}

func TestWinProbabilityOpponentPenalty(t *testing.T) {
	h := hand.Hand{Category: hand.OnePair, Strength: 60}
	// 60 / (1 + 2*0.35)
	assert.InDelta(t, 60/1.7, WinProbability(h, 3, 3), 1e-9)
}

func TestWinProbabilityDrawBonus(t *testing.T) {
	h := hand.Hand{
		Category:  hand.HighCard,
		Strength:  40,
		Potential: &draw.Potential{FlushDraw: true, Strength: 35},
	}
	// flop: 2 cards to come, 40 + 35 = 75
	assert.InDelta(t, 75, WinProbability(h, 3, 1), 1e-9)
	// river: nothing left to draw, 40 * 1.2
	assert.InDelta(t, 48, WinProbability(h, 5, 1), 1e-9)
}

func TestWinProbabilityCapped(t *testing.T) {
	h := hand.Hand{Category: hand.RoyalFlush, Strength: 100}
	assert.Equal(t, 100.0, WinProbability(h, 5, 1))
}

func TestWinProbabilityMonotonicInOpponents(t *testing.T) {
	for c := hand.HighCard; c <= hand.RoyalFlush; c++ {
		h := hand.Hand{Category: c, Strength: 70}
		prev := WinProbability(h, 3, 1)
		for n := 2; n <= 8; n++ {
			w := WinProbability(h, 3, n)
			require.LessOrEqual(t, w, prev, "%s with %d opponents", c, n)
			prev = w
		}
	}
}

func TestWinProbabilityRiverBeatsFlop(t *testing.T) {
	for _, strength := range []float64{10, 45, 70, 90} {
		h := hand.Hand{Category: hand.TwoPair, Strength: strength}
		for n := 1; n <= 9; n++ {
			assert.GreaterOrEqual(t, WinProbability(h, 5, n), WinProbability(h, 3, n))
		}
	}
}

// Package equity turns an evaluated hand into a win estimate and the money
// figures derived from it.
package equity

import (
	"fmt"
	"math"

	"PokerAssist/internal/game/hand"
)

// Stage 牌局阶段，按公共牌数量划分
type Stage int

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
)

var stageNames = [...]string{"preflop", "flop", "turn", "river"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Stage) UnmarshalText(b []byte) error {
	for i, name := range stageNames {
		if name == string(b) {
			*s = Stage(i)
			return nil
		}
	}
	return fmt.Errorf("unknown stage %q", b)
}

// StageOf maps a board size to its stage. A partially dealt flop counts as
// the flop.
func StageOf(boardSize int) Stage {
	switch {
	case boardSize <= 0:
		return PreFlop
	case boardSize <= 3:
		return Flop
	case boardSize == 4:
		return Turn
	}
	return River
}

// Multiplier grows as more of the board is known.
func (s Stage) Multiplier() float64 {
	switch s {
	case PreFlop:
		return 0.9
	case Turn:
		return 1.1
	case River:
		return 1.2
	}
	return 1.0
}

// WinProbability estimates the chance of winning, in percent.
func WinProbability(h hand.Hand, boardSize, opponents int) float64 {
	win := h.Strength
	if h.Potential != nil {
		if cardsToSee := 5 - boardSize; cardsToSee > 0 {
			win += float64(h.Potential.Strength) * float64(cardsToSee) / 2
		}
	}
	win = math.Min(win, 100)

	if opponents < 1 {
		opponents = 1
	}
	penalty := 1 + float64(opponents-1)*h.Category.OpponentPenalty()

	return clamp(win*StageOf(boardSize).Multiplier()/penalty, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

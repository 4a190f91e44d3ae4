// Package draw detects drawing hands and counts the outs that get reported to
// the player.
package draw

import (
	"PokerAssist/internal/game/card"
)

// Draw strength weights.
const (
	weightFlushDraw         = 35
	weightStraightDraw      = 30
	weightStraightFlushDraw = 40
	weightGutshot           = 15
	weightDoubleGutshot     = 20
	weightBackdoorFlush     = 10
	weightBackdoorStraight  = 8
	weightOverCard          = 5
)

// Potential is every draw the combined cards hold. Strength is the weighted
// sum and is not capped here.
type Potential struct {
	FlushDraw         bool `json:"flushDraw"`
	StraightDraw      bool `json:"straightDraw"`
	StraightFlushDraw bool `json:"straightFlushDraw"`
	Gutshot           bool `json:"gutshot"`
	DoubleGutshot     bool `json:"doubleGutshot"`
	BackdoorFlush     bool `json:"backdoorFlush"`
	BackdoorStraight  bool `json:"backdoorStraight"`
	OverCards         int  `json:"overCards"`
	Strength          int  `json:"drawStrength"`
}

// Analyze looks at hole and board cards together.
func Analyze(hole, board []card.Card) Potential {
	all := make([]card.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)

	bySuit := make(map[card.Suit][]int, 4)
	for _, c := range all {
		bySuit[c.Suit] = append(bySuit[c.Suit], c.Value)
	}

	var p Potential
	for _, vals := range bySuit {
		switch len(vals) {
		case 4:
			p.FlushDraw = true
		case 3:
			p.BackdoorFlush = true
		}
		if len(vals) >= 3 {
			sd := analyzeStraightDraws(vals)
			if sd.open || sd.gutshot {
				p.StraightFlushDraw = true
			}
		}
	}

	sd := analyzeStraightDraws(card.Values(all))
	p.StraightDraw = sd.open
	p.Gutshot = sd.gutshot
	p.DoubleGutshot = sd.doubleGutshot
	p.BackdoorStraight = sd.backdoor

	p.OverCards = overCards(hole, board)
	p.Strength = p.strength()
	return p
}

func overCards(hole, board []card.Card) int {
	if len(board) == 0 {
		return 0
	}
	high := 0
	for _, c := range board {
		if c.Value > high {
			high = c.Value
		}
	}
	n := 0
	for _, c := range hole {
		if c.Value > high {
			n++
		}
	}
	return n
}

func (p Potential) strength() int {
	s := 0
	if p.FlushDraw {
		s += weightFlushDraw
	}
	if p.StraightDraw {
		s += weightStraightDraw
	}
	if p.StraightFlushDraw {
		s += weightStraightFlushDraw
	}
	if p.Gutshot {
		s += weightGutshot
	}
	if p.DoubleGutshot {
		s += weightDoubleGutshot
	}
	if p.BackdoorFlush {
		s += weightBackdoorFlush
	}
	if p.BackdoorStraight {
		s += weightBackdoorStraight
	}
	return s + p.OverCards*weightOverCard
}

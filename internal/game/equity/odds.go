package equity

import (
	"fmt"
	"math"
	"strings"
)

// Position 位置：前/中/后
type Position string

const (
	Early  Position = "early"
	Middle Position = "middle"
	Late   Position = "late"
)

// ParsePosition accepts early, middle or late in any case. Empty means
// middle.
func ParsePosition(s string) (Position, error) {
	switch p := Position(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return Middle, nil
	case Early, Middle, Late:
		return p, nil
	}
	return "", fmt.Errorf("unknown position %q", s)
}

type positionParams struct {
	potMultiplier float64
	foldBase      float64
	foldEquityCap float64
}

var positions = map[Position]positionParams{
	Early:  {potMultiplier: 0.8, foldBase: 10, foldEquityCap: 15},
	Middle: {potMultiplier: 1.0, foldBase: 15, foldEquityCap: 25},
	Late:   {potMultiplier: 1.3, foldBase: 20, foldEquityCap: 35},
}

func paramsFor(p Position) positionParams {
	if pp, ok := positions[p]; ok {
		return pp
	}
	return positions[Middle]
}

// PotOdds is the share of the final pot the caller puts in, in percent.
func PotOdds(pot, bet float64) float64 {
	if pot+bet <= 0 {
		return 0
	}
	return bet / (pot + bet) * 100
}

// ImpliedOdds is PotOdds against a pot inflated by position and, for hands
// likely to win, expected future bets.
func ImpliedOdds(pot, bet, win float64, pos Position) float64 {
	implied := pot * paramsFor(pos).potMultiplier
	if win > 30 {
		implied *= 1.2
	}
	return PotOdds(implied, bet)
}

func ExpectedValue(win, pot, bet float64) float64 {
	p := win / 100
	return p*pot - (1-p)*bet
}

// FoldEquity is the chance, in percent, that a bet takes the pot uncontested.
func FoldEquity(strength float64, pos Position) float64 {
	pp := paramsFor(pos)
	return math.Min(pp.foldBase*(1+strength/100), pp.foldEquityCap)
}

// ShouldCall is true when the estimate beats either threshold.
func ShouldCall(win, potOdds, impliedOdds float64) bool {
	return win > potOdds || win > impliedOdds
}

package draw

import (
	"fmt"

	"PokerAssist/internal/game/card"
)

// Kind of a reported draw.
type Kind int

const (
	FlushDraw Kind = iota
	OpenEndedStraight
	Gutshot
)

func (k Kind) String() string {
	switch k {
	case FlushDraw:
		return "Flush Draw"
	case OpenEndedStraight:
		return "Open-Ended Straight"
	case Gutshot:
		return "Gutshot"
	default:
		return "Unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for _, c := range []Kind{FlushDraw, OpenEndedStraight, Gutshot} {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown draw kind %q", b)
}

// Draw is a user-facing draw with its completion odds in percent.
type Draw struct {
	Kind        Kind    `json:"type"`
	Outs        int     `json:"outs"`
	Probability float64 `json:"probability"`
}

const (
	flushDrawOuts        = 9
	flushDrawProbability = 19.1
	maxOuts              = 20
)

// CountOuts reports outs for four-card flushes only. Straight draws are found
// by Analyze but are not reported here.
func CountOuts(cards []card.Card) (int, []Draw) {
	suits := make(map[card.Suit]int, 4)
	for _, c := range cards {
		suits[c.Suit]++
	}

	outs := 0
	draws := []Draw{}
	for _, s := range card.Suits {
		if suits[s] == 4 {
			outs += flushDrawOuts
			draws = append(draws, Draw{Kind: FlushDraw, Outs: flushDrawOuts, Probability: flushDrawProbability})
		}
	}
	if outs > maxOuts {
		outs = maxOuts
	}
	return outs, draws
}

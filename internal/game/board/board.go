// Package board estimates what the community cards alone already give every
// player at the table.
package board

import (
	"fmt"
	"sort"

	"PokerAssist/internal/game/card"
)

// Texture is the best hand category reachable on the board alone.
type Texture int

const (
	Unknown Texture = iota
	HighCard
	OnePair
	TwoPair
	Trips
	StraightPossible
	FlushPossible
	FullHousePossible
	Quads
)

var textureNames = [...]string{
	Unknown:           "Unknown",
	HighCard:          "High Card",
	OnePair:           "One Pair",
	TwoPair:           "Two Pair",
	Trips:             "Three of a Kind",
	StraightPossible:  "Straight Possible",
	FlushPossible:     "Flush Possible",
	FullHousePossible: "Full House",
	Quads:             "Four of a Kind",
}

func (t Texture) String() string {
	if t < 0 || int(t) >= len(textureNames) {
		return "Unknown"
	}
	return textureNames[t]
}

func (t Texture) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Texture) UnmarshalText(b []byte) error {
	for i, name := range textureNames {
		if name == string(b) {
			*t = Texture(i)
			return nil
		}
	}
	return fmt.Errorf("unknown board texture %q", b)
}

// Baseline 公共牌基准
type Baseline struct {
	Texture  Texture `json:"texture"`
	Strength int     `json:"strength"`
}

// Evaluate checks the board from the strongest texture down; the first match wins.
func Evaluate(cards []card.Card) Baseline {
	if len(cards) == 0 {
		return Baseline{Texture: Unknown, Strength: 0}
	}

	suits := make(map[card.Suit]int, 4)
	ranks := make(map[int]int, len(cards))
	for _, c := range cards {
		suits[c.Suit]++
		ranks[c.Value]++
	}

	maxOfAKind, pairs := 0, 0
	for _, n := range ranks {
		if n > maxOfAKind {
			maxOfAKind = n
		}
		if n == 2 {
			pairs++
		}
	}

	flushPossible := false
	for _, n := range suits {
		if n >= 3 {
			flushPossible = true
		}
	}

	switch {
	case maxOfAKind == 4:
		return Baseline{Texture: Quads, Strength: 90}
	case maxOfAKind == 3 && pairs > 0:
		return Baseline{Texture: FullHousePossible, Strength: 85}
	case flushPossible:
		return Baseline{Texture: FlushPossible, Strength: 80}
	case straightPossible(ranks):
		return Baseline{Texture: StraightPossible, Strength: 75}
	case maxOfAKind == 3:
		return Baseline{Texture: Trips, Strength: 65}
	case pairs >= 2:
		return Baseline{Texture: TwoPair, Strength: 55}
	case maxOfAKind == 2:
		return Baseline{Texture: OnePair, Strength: 45}
	}
	return Baseline{Texture: HighCard, Strength: 30}
}

// straightPossible: three distinct board ranks inside a span of five.
func straightPossible(ranks map[int]int) bool {
	if len(ranks) < 3 {
		return false
	}
	unique := make([]int, 0, len(ranks))
	for v := range ranks {
		unique = append(unique, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(unique)))
	for i := 0; i+2 < len(unique); i++ {
		if unique[i]-unique[i+2] <= 4 {
			return true
		}
	}
	return false
}

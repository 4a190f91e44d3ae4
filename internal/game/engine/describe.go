package engine

import (
	"github.com/paulhankin/poker"

	"PokerAssist/internal/game/card"
)

var suitToLib = map[card.Suit]poker.Suit{
	card.Clubs:    poker.Club,
	card.Diamonds: poker.Diamond,
	card.Hearts:   poker.Heart,
	card.Spades:   poker.Spade,
}

func toLib(c card.Card) (poker.Card, error) {
	r := c.Value
	if r == 14 {
		r = 1
	}
	return poker.MakeCard(suitToLib[c.Suit], poker.Rank(r))
}

// describe names the best five-card hand, e.g. "ace-high flush". It needs at
// least five cards and returns "" otherwise.
func describe(cards []card.Card) string {
	if len(cards) < 5 || len(cards) > 7 {
		return ""
	}
	lib := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := toLib(c)
		if err != nil {
			return ""
		}
		lib[i] = pc
	}
	if len(lib) == 6 {
		lib = bestFive(lib)
	}
	desc, err := poker.Describe(lib)
	if err != nil {
		return ""
	}
	return desc
}

// bestFive drops each card in turn and keeps the highest scoring five.
func bestFive(six []poker.Card) []poker.Card {
	var best [5]poker.Card
	var bestScore int16 = -1
	for skip := range six {
		var five [5]poker.Card
		n := 0
		for i, c := range six {
			if i != skip {
				five[n] = c
				n++
			}
		}
		if s := poker.Eval5(&five); s > bestScore {
			best, bestScore = five, s
		}
	}
	return best[:]
}

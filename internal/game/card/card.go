package card

import (
	"errors"
	"fmt"
)

// Suit 花色 (S/H/D/C)
type Suit byte

const (
	Spades   Suit = 'S'
	Hearts   Suit = 'H'
	Diamonds Suit = 'D'
	Clubs    Suit = 'C'
)

// Suits in deck order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// Ranks in deck order, low to high.
var Ranks = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var rankValues = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8,
	"9": 9, "10": 10, "J": 11, "Q": 12, "K": 13, "A": 14,
}

var suitSymbols = map[Suit]string{
	Spades:   "♠",
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
}

func (s Suit) Valid() bool {
	_, ok := suitSymbols[s]
	return ok
}

func (s Suit) Symbol() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return "?"
}

func (s Suit) String() string { return string(s) }

func (s Suit) MarshalText() ([]byte, error) {
	return []byte{byte(s)}, nil
}

func (s *Suit) UnmarshalText(b []byte) error {
	if len(b) != 1 || !Suit(b[0]).Valid() {
		return fmt.Errorf("unknown suit %q", b)
	}
	*s = Suit(b[0])
	return nil
}

// Card 一张牌 (value 2-14, A = 14)
type Card struct {
	Rank  string `json:"rank"`
	Suit  Suit   `json:"suit"`
	Value int    `json:"value"`
}

// String returns the token form, e.g. "10S".
func (c Card) String() string {
	return c.Rank + string(c.Suit)
}

// Pretty returns the rank with the suit symbol, e.g. "A♠".
func (c Card) Pretty() string {
	return c.Rank + c.Suit.Symbol()
}

// RankValue looks up a rank string; ok is false for unknown ranks.
func RankValue(rank string) (int, bool) {
	v, ok := rankValues[rank]
	return v, ok
}

// RankName is the inverse of RankValue. Value 1 (low ace) maps to "A".
func RankName(value int) string {
	if value == 1 {
		return "A"
	}
	if value < 2 || value > 14 {
		return "?"
	}
	return Ranks[value-2]
}

// ---------------------
//       PARSING
// ---------------------

var ErrInvalidCard = errors.New("invalid card")

type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid card %q: %s", e.Token, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidCard }

// Parse reads a "<rank><suit>" token such as "AS" or "10H".
func Parse(token string) (Card, error) {
	if token == "" {
		return Card{}, &ParseError{Token: token, Reason: "empty token"}
	}
	if len(token) < 2 {
		return Card{}, &ParseError{Token: token, Reason: "too short"}
	}
	rank := token[:len(token)-1]
	suit := Suit(token[len(token)-1])

	value, ok := rankValues[rank]
	if !ok {
		return Card{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown rank %q", rank)}
	}
	if !suit.Valid() {
		return Card{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown suit %q", string(suit))}
	}
	return Card{Rank: rank, Suit: suit, Value: value}, nil
}

// MustParse panics on a bad token. Tests and tables only.
func MustParse(token string) Card {
	c, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseAll parses every non-empty token. Empty slots are skipped, the way an
// unfilled board position is left blank by the card picker.
func ParseAll(tokens []string) ([]Card, error) {
	out := make([]Card, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		c, err := Parse(t)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Duplicates reports tokens that appear more than once, in first-seen order.
// The set is rebuilt on every call.
func Duplicates(tokens ...string) []string {
	seen := make(map[string]int, len(tokens))
	var dups []string
	for _, t := range tokens {
		if t == "" {
			continue
		}
		seen[t]++
		if seen[t] == 2 {
			dups = append(dups, t)
		}
	}
	return dups
}

// Values returns the card values in input order.
func Values(cards []Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.Value
	}
	return out
}

// Strings is the token form of a card slice.
func Strings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

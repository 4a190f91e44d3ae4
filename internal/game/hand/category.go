package hand

import "fmt"

// Category 牌型，从低到高
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	for i, name := range categoryNames {
		if name == string(b) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown hand category %q", b)
}

// OpponentPenalty is how much each extra opponent discounts the category.
// Stronger hands lose less.
func (c Category) OpponentPenalty() float64 {
	switch c {
	case HighCard:
		return 0.4
	case OnePair:
		return 0.35
	case TwoPair:
		return 0.3
	case ThreeOfAKind:
		return 0.25
	case Straight, Flush:
		return 0.2
	case FullHouse:
		return 0.15
	case FourOfAKind:
		return 0.1
	case StraightFlush, RoyalFlush:
		return 0.05
	}
	return 0.3
}

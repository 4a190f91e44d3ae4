package card

import (
	"math/rand"
)

// Dealer 只负责洗牌与发牌（练习局用）
type Dealer struct {
	deck []Card
	rnd  *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return &Dealer{
		deck: make([]Card, 0, 52),
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// NewDeck 初始化一副牌并洗牌
func (d *Dealer) NewDeck() {
	d.deck = d.makeDeck()
	d.shuffle()
}

func (d *Dealer) makeDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Rank: r, Suit: s, Value: rankValues[r]})
		}
	}
	return deck
}

func (d *Dealer) shuffle() {
	d.rnd.Shuffle(len(d.deck), func(i, j int) {
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	})
}

// Remaining returns how many cards are left in the deck.
func (d *Dealer) Remaining() int {
	return len(d.deck)
}

// DealHoleCards 给每个座位发 2 张底牌，轮流发牌
func (d *Dealer) DealHoleCards(seats int) [][2]Card {
	out := make([][2]Card, seats)
	for i := 0; i < 2; i++ {
		for s := 0; s < seats; s++ {
			out[s][i] = d.draw()
		}
	}
	return out
}

// DealCommunity 发公共牌 n 张（burn 忽略）
func (d *Dealer) DealCommunity(n int) []Card {
	out := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.draw())
	}
	return out
}

func (d *Dealer) draw() Card {
	if len(d.deck) == 0 {
		// should not happen if properly invoked
		d.NewDeck()
	}
	c := d.deck[0]
	d.deck = d.deck[1:]
	return c
}

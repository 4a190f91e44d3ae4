package card

import (
	"testing"
	"time"
)

// 工具：检查是否有重复牌
func hasDuplicates(cards []Card) bool {
	seen := make(map[string]bool)
	for _, c := range cards {
		if seen[c.String()] {
			return true
		}
		seen[c.String()] = true
	}
	return false
}

func TestNewDeck(t *testing.T) {
	d := NewDealer(time.Now().UnixNano())
	d.NewDeck()

	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}
	if hasDuplicates(d.deck) {
		t.Fatalf("deck should not contain duplicates")
	}

	suits := make(map[Suit]bool)
	ranks := make(map[int]bool)
	for _, c := range d.deck {
		suits[c.Suit] = true
		ranks[c.Value] = true
		if _, err := Parse(c.String()); err != nil {
			t.Fatalf("dealt card %s does not parse: %v", c, err)
		}
	}
	if len(suits) != 4 {
		t.Fatalf("expected 4 suits, got %d", len(suits))
	}
	if len(ranks) != 13 {
		t.Fatalf("expected 13 ranks, got %d", len(ranks))
	}
}

func TestShuffleIsSeeded(t *testing.T) {
	d1 := NewDealer(42)
	d1.NewDeck()
	d2 := NewDealer(42)
	d2.NewDeck()

	for i := range d1.deck {
		if d1.deck[i] != d2.deck[i] {
			t.Fatalf("expected identical decks for same seed")
		}
	}

	d3 := NewDealer(99)
	d3.NewDeck()
	diff := false
	for i := range d1.deck {
		if d1.deck[i] != d3.deck[i] {
			diff = true
			break
		}
	}
	if !diff {
		t.Fatalf("expected deck with different seed to differ")
	}
}

func TestDealHoleCards(t *testing.T) {
	d := NewDealer(1)
	d.NewDeck()
	hands := d.DealHoleCards(3)

	if len(hands) != 3 {
		t.Fatalf("expected 3 hands, got %d", len(hands))
	}
	all := []Card{}
	for _, h := range hands {
		all = append(all, h[0], h[1])
	}
	if hasDuplicates(all) {
		t.Fatalf("hole cards contain duplicates")
	}
	if d.Remaining() != 52-6 {
		t.Fatalf("expected remaining deck 46, got %d", d.Remaining())
	}
}

func TestDealCommunity(t *testing.T) {
	d := NewDealer(2)
	d.NewDeck()

	flop := d.DealCommunity(3)
	turn := d.DealCommunity(1)
	river := d.DealCommunity(1)

	if len(flop) != 3 || len(turn) != 1 || len(river) != 1 {
		t.Fatalf("expected 3+1+1 cards, got %d %d %d", len(flop), len(turn), len(river))
	}

	all := append(append(flop, turn...), river...)
	if hasDuplicates(all) {
		t.Fatalf("community cards contain duplicates")
	}
	if d.Remaining() != 52-5 {
		t.Fatalf("expected 47 remaining, got %d", d.Remaining())
	}
}

func TestDrawResetsDeck(t *testing.T) {
	d := NewDealer(3)
	d.NewDeck()
	for i := 0; i < 52; i++ {
		d.draw()
	}
	c := d.draw()
	if c.Value < 2 || c.Value > 14 || !c.Suit.Valid() {
		t.Fatalf("invalid card returned after deck reset")
	}
}

// Package hand classifies hole plus board cards and scores them on a 0-100
// heuristic scale. The bands are tuned by hand and are not a calibrated
// equity model.
package hand

import (
	"math"
	"sort"

	"PokerAssist/internal/game/board"
	"PokerAssist/internal/game/card"
	"PokerAssist/internal/game/draw"
)

const (
	LabelQuadAces = "Quad Aces"
	LabelUnknown  = "Unknown"

	maxDrawBonus = 40
)

// Hand is the evaluated result. Potential is only set when there is no made
// hand, since that is the only case where draws feed the score.
type Hand struct {
	Category  Category        `json:"category"`
	Label     string          `json:"label"`
	Strength  float64         `json:"strength"`
	Potential *draw.Potential `json:"drawPotential,omitempty"`
}

func made(c Category, strength float64) Hand {
	return Hand{Category: c, Label: c.String(), Strength: strength}
}

// RankBonus: aces get 1.5x base, faces 1.2x, everything else a linear ramp.
func RankBonus(value int, base float64) float64 {
	switch {
	case value == 14:
		return base * 1.5
	case value >= 11:
		return base * 1.2
	}
	return float64(value-2) * (base / 12)
}

// Evaluate classifies the combined cards top-down and stops at the first
// category that holds.
func Evaluate(hole, boardCards []card.Card) Hand {
	all := make([]card.Card, 0, len(hole)+len(boardCards))
	all = append(all, hole...)
	all = append(all, boardCards...)
	if len(all) < 2 {
		return Hand{Category: HighCard, Label: LabelUnknown}
	}

	values := card.Values(all)
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	counts := make(map[int]int, len(all))
	for _, v := range values {
		counts[v]++
	}
	baseline := board.Evaluate(boardCards)

	flushVals := flushValues(all)
	sfHigh := 0
	if len(flushVals) > 0 {
		sfHigh = draw.StraightHigh(flushVals)
	}

	// 同花顺
	if sfHigh == 14 {
		return made(RoyalFlush, 100)
	}
	if sfHigh > 0 {
		if len(boardCards) == 5 && draw.StraightHigh(flushValues(boardCards)) == sfHigh {
			return made(StraightFlush, 95)
		}
		return made(StraightFlush, 100)
	}

	// 四条
	if quad := highestWithCount(counts, 4, 0); quad > 0 {
		if quad == 14 {
			return Hand{Category: FourOfAKind, Label: LabelQuadAces, Strength: 100}
		}
		return made(FourOfAKind, math.Min(85+RankBonus(quad, 15), 98))
	}

	// 葫芦
	if trips := highestWithCount(counts, 3, 0); trips > 0 {
		if pair := highestWithCount(counts, 2, trips); pair > 0 {
			s := 80 + RankBonus(trips, 12) + RankBonus(pair, 6)
			return made(FullHouse, math.Min(s, 95))
		}
	}

	// 同花
	if len(flushVals) > 0 {
		base := 90.0
		if sameTopFive(flushValues(boardCards), flushVals) {
			base = 70
		}
		return made(Flush, math.Min(base+RankBonus(flushVals[0], 8), 92))
	}

	// 顺子
	if high := draw.StraightHigh(values); high > 0 {
		base := 85.0
		if draw.StraightHigh(card.Values(boardCards)) == high {
			base = 65
		}
		// bonus comes from the top combined card, not the straight's own top
		return made(Straight, math.Min(base+float64(values[0]-5)*0.8, 89))
	}

	// 三条
	if trips := highestWithCount(counts, 3, 0); trips > 0 {
		base := 70.0
		if baseline.Texture == board.Trips {
			base = 50
		}
		kickers := without(values, trips)
		kickerBonus := 0.0
		for _, v := range firstN(kickers, 2) {
			kickerBonus += float64(v-2) * 0.3
		}
		return made(ThreeOfAKind, math.Min(base+RankBonus(trips, 20)+kickerBonus, 88))
	}

	// 两对
	if high := highestWithCount(counts, 2, 0); high > 0 {
		if low := highestWithCount(counts, 2, high); low > 0 {
			base := 60.0
			if baseline.Texture == board.TwoPair {
				base = 40
			}
			kickerBonus := 0.0
			if kickers := without(without(values, high), low); len(kickers) > 0 {
				kickerBonus = float64(kickers[0]-2) * 0.3
			}
			s := base + RankBonus(high, 15) + RankBonus(low, 10) + kickerBonus
			return made(TwoPair, math.Min(s, 83))
		}

		// 一对
		base := 45.0
		if baseline.Texture == board.OnePair {
			base = 30
		}
		kickerBonus := 0.0
		for i, v := range firstN(without(values, high), 3) {
			kickerBonus += float64(v-2) * (0.4 / float64(i+1))
		}
		return made(OnePair, math.Min(base+RankBonus(high, 25)+kickerBonus, 75))
	}

	// 高牌
	base := 30.0
	if baseline.Texture == board.HighCard {
		base = 20
	}
	kickerBonus := 0.0
	for i, v := range firstN(values, 5) {
		kickerBonus += float64(v-2) * (0.5 / float64(i+1))
	}
	potential := draw.Analyze(hole, boardCards)
	h := made(HighCard, math.Min(base+kickerBonus+drawBonus(potential, len(boardCards)), 45))
	h.Potential = &potential
	return h
}

// drawBonus weighs draws more on the flop than on the turn.
func drawBonus(p draw.Potential, boardSize int) float64 {
	bonus := float64(p.Strength)
	switch boardSize {
	case 3:
		bonus *= 1.2
	case 4:
		bonus *= 0.8
	}
	return math.Min(bonus, maxDrawBonus)
}

// flushValues returns the values of the first suit holding five or more
// cards, highest first, or nil.
func flushValues(cards []card.Card) []int {
	bySuit := make(map[card.Suit][]int, 4)
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], c.Value)
	}
	for _, s := range card.Suits {
		if vals := bySuit[s]; len(vals) >= 5 {
			sort.Sort(sort.Reverse(sort.IntSlice(vals)))
			return vals
		}
	}
	return nil
}

// sameTopFive reports whether the board flush already is the best flush.
func sameTopFive(boardVals, allVals []int) bool {
	if len(boardVals) < 5 || len(allVals) < 5 {
		return false
	}
	for i := 0; i < 5; i++ {
		if boardVals[i] != allVals[i] {
			return false
		}
	}
	return true
}

// highestWithCount returns the highest value seen at least n times, skipping
// skip, or 0.
func highestWithCount(counts map[int]int, n, skip int) int {
	best := 0
	for v, c := range counts {
		if v != skip && c >= n && v > best {
			best = v
		}
	}
	return best
}

func without(values []int, drop int) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if v != drop {
			out = append(out, v)
		}
	}
	return out
}

func firstN(values []int, n int) []int {
	if len(values) < n {
		return values
	}
	return values[:n]
}

package draw

import "sort"

// IsStraight reports five consecutive values; an ace also plays low (A-2-3-4-5).
func IsStraight(values []int) bool {
	return StraightHigh(values) > 0
}

// StraightHigh returns the top card of the best straight in values, 5 for the
// wheel, or 0 when there is none.
func StraightHigh(values []int) int {
	present := [15]bool{}
	for _, v := range values {
		if v >= 2 && v <= 14 {
			present[v] = true
		}
	}
	present[1] = present[14]

	for high := 14; high >= 5; high-- {
		run := true
		for v := high; v > high-5; v-- {
			if !present[v] {
				run = false
				break
			}
		}
		if run {
			return high
		}
	}
	return 0
}

// straightDraws 结果
type straightDraws struct {
	open          bool
	gutshot       bool
	doubleGutshot bool
	backdoor      bool
}

// lowAceValues returns sorted unique values, with 1 added in front when an ace
// is present.
func lowAceValues(values []int) []int {
	set := make(map[int]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	out := make([]int, 0, len(set)+1)
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	if _, ok := set[14]; ok {
		out = append([]int{1}, out...)
	}
	return out
}

// analyzeStraightDraws slides a window of up to five values across vals.
// A window starts wherever at least four values remain.
func analyzeStraightDraws(values []int) straightDraws {
	vals := lowAceValues(values)

	var d straightDraws
	for i := 0; i+3 < len(vals); i++ {
		end := i + 5
		if end > len(vals) {
			end = len(vals)
		}
		window := vals[i:end]

		switch countGaps(window) {
		case 1:
			d.open = true
		case 2:
			if window[len(window)-1]-window[0] == 4 {
				if !d.gutshot {
					d.gutshot = true
				} else {
					d.doubleGutshot = true
				}
			}
		case 3:
			d.backdoor = true
		}
	}
	return d
}

func countGaps(window []int) int {
	gaps := 0
	for i := 1; i < len(window); i++ {
		gaps += window[i] - window[i-1] - 1
	}
	return gaps
}

package advisor

import "slices"

// ---------------------
//    PREFLOP TABLES
// ---------------------

var openingRanges = map[Seat][]string{
	UTG: {
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s",
		"AKo", "AQo", "AJo",
		"KQs", "KJs", "KTs",
		"QJs", "QTs",
		"JTs",
	},
	MP: {
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s",
		"AKo", "AQo", "AJo", "ATo",
		"KQs", "KJs", "KTs", "K9s",
		"QJs", "QTs", "Q9s",
		"JTs", "J9s",
		"T9s",
	},
	CO: {
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"AKo", "AQo", "AJo", "ATo", "A9o",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s",
		"KQo", "KJo", "KTo",
		"QJs", "QTs", "Q9s", "Q8s",
		"QJo", "QTo",
		"JTs", "J9s", "J8s",
		"JTo",
		"T9s", "T8s",
		"98s", "87s", "76s", "65s",
	},
	BTN: {
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s",
		"KQo", "KJo", "KTo", "K9o",
		"QJs", "QTs", "Q9s", "Q8s", "Q7s", "Q6s",
		"QJo", "QTo", "Q9o",
		"JTs", "J9s", "J8s", "J7s",
		"JTo", "J9o",
		"T9s", "T8s", "T7s",
		"T9o",
		"98s", "97s", "87s", "76s", "65s", "54s",
	},
	SB: {
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s",
		"AKo", "AQo", "AJo", "ATo", "A9o",
		"KQs", "KJs", "KTs", "K9s", "K8s",
		"KQo", "KJo", "KTo",
		"QJs", "QTs", "Q9s",
		"QJo", "QTo",
		"JTs", "J9s",
		"T9s",
		"98s", "87s", "76s",
	},
	BB: {
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s",
		"KQo", "KJo", "KTo", "K9o",
		"QJs", "QTs", "Q9s", "Q8s",
		"QJo", "QTo", "Q9o",
		"JTs", "J9s", "J8s",
		"JTo", "J9o",
		"T9s", "T8s",
		"98s", "87s", "76s", "65s",
	},
}

// 3-bet ranges keyed by the seat that faces the raise. BB has none.
var threeBetRanges = map[Seat][]string{
	UTG: {
		"AA", "KK", "QQ", "JJ",
		"AKs", "AQs", "AJs",
		"AKo", "AQo",
		"KQs",
	},
	MP: {
		"AA", "KK", "QQ", "JJ", "TT",
		"AKs", "AQs", "AJs", "ATs",
		"AKo", "AQo", "AJo",
		"KQs", "KJs",
	},
	CO: {
		"AA", "KK", "QQ", "JJ", "TT", "99",
		"AKs", "AQs", "AJs", "ATs", "A9s",
		"AKo", "AQo", "AJo", "ATo",
		"KQs", "KJs", "KTs",
		"QJs",
	},
	BTN: {
		"AA", "KK", "QQ", "JJ", "TT", "99", "88",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s",
		"AKo", "AQo", "AJo", "ATo", "A9o",
		"KQs", "KJs", "KTs", "K9s",
		"KQo", "KJo",
		"QJs", "QTs",
	},
	SB: {
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s",
		"AKo", "AQo", "AJo", "ATo", "A9o",
		"KQs", "KJs", "KTs", "K9s", "K8s",
		"KQo", "KJo", "KTo",
		"QJs", "QTs", "Q9s",
	},
}

// Relative preflop strength on a 1-10 scale.
var preflopStrength = map[string]float64{
	"AA": 10.0, "KK": 9.5, "QQ": 9.0, "JJ": 8.5, "TT": 8.0,
	"99": 7.5, "88": 7.0, "77": 6.5, "66": 6.0, "55": 5.5,
	"44": 5.0, "33": 4.5, "22": 4.0,
	"AKs": 8.5, "AQs": 8.0, "AJs": 7.8, "ATs": 7.5, "A9s": 7.0, "A8s": 6.8,
	"A7s": 6.5, "A6s": 6.3, "A5s": 6.8, "A4s": 6.5, "A3s": 6.3, "A2s": 6.0,
	"AKo": 8.0, "AQo": 7.5, "AJo": 7.3, "ATo": 7.0, "A9o": 6.5, "A8o": 6.0,
	"KQs": 7.5, "KJs": 7.3, "KTs": 7.0, "K9s": 6.5, "K8s": 6.0,
	"KQo": 7.0, "KJo": 6.8, "KTo": 6.5, "K9o": 6.0,
	"QJs": 7.0, "QTs": 6.8, "Q9s": 6.5, "Q8s": 6.0,
	"QJo": 6.5, "QTo": 6.3, "Q9o": 5.8,
	"JTs": 6.8, "J9s": 6.3, "J8s": 6.0,
	"JTo": 6.3, "J9o": 5.8,
	"T9s": 6.3, "T8s": 6.0,
	"98s": 6.0, "87s": 5.8, "76s": 5.5, "65s": 5.3, "54s": 5.0,
}

const defaultPreflopStrength = 5.0

// ShouldOpen reports whether code is in the opening range for seat.
func ShouldOpen(code string, seat Seat) bool {
	return slices.Contains(openingRanges[seat], code)
}

// ShouldThreeBet reports whether code re-raises from seat.
func ShouldThreeBet(code string, seat Seat) bool {
	return slices.Contains(threeBetRanges[seat], code)
}

// PreflopStrength rates a starting hand 1-10. Unlisted hands get 5.
func PreflopStrength(code string) float64 {
	if s, ok := preflopStrength[code]; ok {
		return s
	}
	return defaultPreflopStrength
}

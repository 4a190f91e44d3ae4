// Package advisor picks an action (raise, call or fold) from preflop ranges
// and, after the flop, from the estimated equity against the price to call.
package advisor

import (
	"fmt"
	"math"
	"strings"

	"PokerAssist/internal/game/card"
	"PokerAssist/internal/game/equity"
)

// Seat 六人桌座位
type Seat string

const (
	UTG Seat = "UTG"
	MP  Seat = "MP"
	CO  Seat = "CO"
	BTN Seat = "BTN"
	SB  Seat = "SB"
	BB  Seat = "BB"
)

var Seats = []Seat{UTG, MP, CO, BTN, SB, BB}

// ParseSeat is case-insensitive. Empty returns "" with no error so callers
// can fall back to SeatFor.
func ParseSeat(s string) (Seat, error) {
	seat := Seat(strings.ToUpper(strings.TrimSpace(s)))
	if seat == "" {
		return "", nil
	}
	for _, known := range Seats {
		if seat == known {
			return seat, nil
		}
	}
	return "", fmt.Errorf("unknown seat %q", s)
}

// SeatFor picks a representative seat for a coarse position.
func SeatFor(pos equity.Position) Seat {
	switch pos {
	case equity.Early:
		return UTG
	case equity.Late:
		return BTN
	}
	return MP
}

// HandCode writes two hole cards in range notation: "AA", "AKs", "T9o".
func HandCode(a, b card.Card) string {
	if b.Value > a.Value {
		a, b = b, a
	}
	hi, lo := codeRank(a.Value), codeRank(b.Value)
	if a.Value == b.Value {
		return hi + lo
	}
	if a.Suit == b.Suit {
		return hi + lo + "s"
	}
	return hi + lo + "o"
}

func codeRank(v int) string {
	if v == 10 {
		return "T"
	}
	return card.RankName(v)
}

// ---------------------
//   OPPONENT PROFILE
// ---------------------

const (
	StyleTight = "tight"
	StyleLoose = "loose"

	AggressionPassive    = "passive"
	AggressionAggressive = "aggressive"
)

// Profile 对手画像，字段为空表示未知
type Profile struct {
	Style      string `json:"style,omitempty"`
	Aggression string `json:"aggression,omitempty"`
}

// ProfileFoldEquity is how often, in percent, this opponent gives up to a bet.
func ProfileFoldEquity(p Profile) float64 {
	fe := 50.0
	switch p.Style {
	case StyleTight:
		fe += 15
	case StyleLoose:
		fe -= 15
	}
	switch p.Aggression {
	case AggressionPassive:
		fe += 10
	case AggressionAggressive:
		fe -= 10
	}
	return math.Max(0, math.Min(100, fe))
}

// BetSize sizes a value bet at 65% of the pot and a bluff at 40%, adjusted
// for the opponent. Rounded to cents.
func BetSize(pot float64, value bool, p Profile) float64 {
	var size float64
	if value {
		size = 0.65 * pot
		switch p.Style {
		case StyleLoose:
			size *= 1.2
		case StyleTight:
			size *= 0.8
		}
	} else {
		size = 0.4 * pot
		switch p.Aggression {
		case AggressionPassive:
			size *= 0.8
		case AggressionAggressive:
			size *= 1.2
		}
	}
	return math.Round(size*100) / 100
}

// ---------------------
//    RECOMMENDATION
// ---------------------

type Action string

const (
	Raise Action = "raise"
	Call  Action = "call"
	Fold  Action = "fold"
)

type Advice struct {
	Action Action  `json:"action"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// Situation is everything Recommend looks at. Stack <= 0 means the stack is
// unknown and bets are not capped.
type Situation struct {
	Hole      [2]card.Card
	BoardSize int
	Seat      Seat
	Pot       float64
	ToCall    float64
	Stack     float64
	Win       float64
	Profile   Profile
}

func Recommend(s Situation) Advice {
	if s.BoardSize == 0 {
		return preflop(s)
	}
	return postflop(s)
}

func preflop(s Situation) Advice {
	code := HandCode(s.Hole[0], s.Hole[1])

	if ShouldOpen(code, s.Seat) {
		return Advice{
			Action: Raise,
			Amount: capStack(3*s.Pot, s.Stack),
			Reason: fmt.Sprintf("%s is in the %s opening range", code, s.Seat),
		}
	}
	if ShouldThreeBet(code, s.Seat) {
		return Advice{
			Action: Raise,
			Amount: capStack(3*s.ToCall, s.Stack),
			Reason: fmt.Sprintf("%s is a 3-bet from %s", code, s.Seat),
		}
	}
	if equity.PotOdds(s.Pot, s.ToCall) < 20 {
		return Advice{Action: Fold, Reason: "pot odds do not justify a call"}
	}
	return Advice{Action: Call, Amount: s.ToCall, Reason: "pot odds justify a call"}
}

func postflop(s Situation) Advice {
	potOdds := equity.PotOdds(s.Pot, s.ToCall)
	foldEquity := ProfileFoldEquity(s.Profile)

	switch {
	case s.Win > potOdds+5:
		return Advice{
			Action: Raise,
			Amount: capStack(BetSize(s.Pot, true, s.Profile), s.Stack),
			Reason: fmt.Sprintf("value bet: %.1f%% equity vs %.1f%% pot odds", s.Win, potOdds),
		}
	case foldEquity > 60 && s.Win > 30:
		return Advice{
			Action: Raise,
			Amount: capStack(BetSize(s.Pot, false, s.Profile), s.Stack),
			Reason: fmt.Sprintf("semi-bluff: %.0f%% fold equity with %.1f%% equity", foldEquity, s.Win),
		}
	case s.Win > potOdds-5:
		return Advice{
			Action: Call,
			Amount: s.ToCall,
			Reason: fmt.Sprintf("marginal call: %.1f%% equity vs %.1f%% pot odds", s.Win, potOdds),
		}
	}
	return Advice{
		Action: Fold,
		Reason: fmt.Sprintf("not enough equity: %.1f%% vs %.1f%% needed", s.Win, potOdds),
	}
}

func capStack(amount, stack float64) float64 {
	if stack <= 0 {
		return amount
	}
	return math.Min(amount, stack)
}

// Package engine runs one analysis: it validates the input, evaluates the
// board and the hand, then derives equity, odds and an action.
//
// Callers must reject duplicate cards beforehand. Analyze treats every token
// as a distinct card.
package engine

import (
	"fmt"
	"math"

	"PokerAssist/internal/game/advisor"
	"PokerAssist/internal/game/board"
	"PokerAssist/internal/game/card"
	"PokerAssist/internal/game/draw"
	"PokerAssist/internal/game/equity"
	"PokerAssist/internal/game/hand"
)

const (
	MinOpponents = 1
	MaxOpponents = 9
	MaxBoard     = 5
)

// ---------------------
//     INPUT / OUTPUT
// ---------------------

// Input 一次分析的全部输入。PotSize/BetToCall 为 nil 表示未填写
type Input struct {
	Hole      []string
	Board     []string
	PotSize   *float64
	BetToCall *float64
	Opponents int
	Position  string

	// Seat, Stack and Profile only steer the action advice.
	Seat    string
	Stack   float64
	Profile advisor.Profile
}

type Result struct {
	Hole  []card.Card  `json:"hole"`
	Board []card.Card  `json:"board"`
	Stage equity.Stage `json:"stage"`

	Category    hand.Category   `json:"category"`
	Hand        string          `json:"hand"`
	Strength    float64         `json:"strength"`
	Description string          `json:"description,omitempty"`
	Baseline    board.Baseline  `json:"boardBaseline"`
	Potential   *draw.Potential `json:"drawPotential,omitempty"`

	Outs  int         `json:"outs"`
	Draws []draw.Draw `json:"draws"`

	WinProbability float64 `json:"winProbability"`
	PotOdds        float64 `json:"potOdds"`
	ImpliedOdds    float64 `json:"impliedOdds"`
	ExpectedValue  float64 `json:"expectedValue"`
	ShouldCall     bool    `json:"shouldCall"`
	FoldEquity     float64 `json:"foldEquity"`

	Position equity.Position `json:"position"`
	Seat     advisor.Seat    `json:"seat"`
	Advice   advisor.Advice  `json:"advice"`
}

// ---------------------
//       ANALYZE
// ---------------------

// Analyze is a pure function of its input.
func Analyze(in Input) (*Result, error) {
	pos, seat, err := validate(in)
	if err != nil {
		return nil, err
	}

	hole, err := card.ParseAll(in.Hole)
	if err != nil {
		return nil, err
	}
	boardCards, err := card.ParseAll(in.Board)
	if err != nil {
		return nil, err
	}
	all := append(append(make([]card.Card, 0, len(hole)+len(boardCards)), hole...), boardCards...)

	pot, bet := *in.PotSize, *in.BetToCall

	baseline := board.Evaluate(boardCards)
	h := hand.Evaluate(hole, boardCards)
	outs, draws := draw.CountOuts(all)

	win := equity.WinProbability(h, len(boardCards), in.Opponents)
	potOdds := equity.PotOdds(pot, bet)
	implied := equity.ImpliedOdds(pot, bet, win, pos)

	advice := advisor.Recommend(advisor.Situation{
		Hole:      [2]card.Card{hole[0], hole[1]},
		BoardSize: len(boardCards),
		Seat:      seat,
		Pot:       pot,
		ToCall:    bet,
		Stack:     in.Stack,
		Win:       win,
		Profile:   in.Profile,
	})

	return &Result{
		Hole:           hole,
		Board:          boardCards,
		Stage:          equity.StageOf(len(boardCards)),
		Category:       h.Category,
		Hand:           h.Label,
		Strength:       round(h.Strength, 1),
		Description:    describe(all),
		Baseline:       baseline,
		Potential:      h.Potential,
		Outs:           outs,
		Draws:          draws,
		WinProbability: round(win, 1),
		PotOdds:        round(potOdds, 1),
		ImpliedOdds:    round(implied, 1),
		ExpectedValue:  round(equity.ExpectedValue(win, pot, bet), 2),
		ShouldCall:     equity.ShouldCall(win, potOdds, implied),
		FoldEquity:     round(equity.FoldEquity(h.Strength, pos), 1),
		Position:       pos,
		Seat:           seat,
		Advice:         advice,
	}, nil
}

func validate(in Input) (equity.Position, advisor.Seat, error) {
	if len(in.Hole) != 2 || in.Hole[0] == "" || in.Hole[1] == "" {
		return "", "", invalid("hole", "two hole cards are required")
	}
	if n := countNonEmpty(in.Board); n > MaxBoard {
		return "", "", invalid("board", fmt.Sprintf("at most %d cards, got %d", MaxBoard, n))
	}
	if err := checkAmount("potSize", in.PotSize); err != nil {
		return "", "", err
	}
	if err := checkAmount("betToCall", in.BetToCall); err != nil {
		return "", "", err
	}
	if in.Opponents < MinOpponents || in.Opponents > MaxOpponents {
		return "", "", invalid("opponents", fmt.Sprintf("must be between %d and %d", MinOpponents, MaxOpponents))
	}
	pos, err := equity.ParsePosition(in.Position)
	if err != nil {
		return "", "", invalid("position", err.Error())
	}
	seat, err := advisor.ParseSeat(in.Seat)
	if err != nil {
		return "", "", invalid("seat", err.Error())
	}
	if seat == "" {
		seat = advisor.SeatFor(pos)
	}
	return pos, seat, nil
}

func countNonEmpty(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if t != "" {
			n++
		}
	}
	return n
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

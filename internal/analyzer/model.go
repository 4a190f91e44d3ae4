package analyzer

import (
	"time"

	"PokerAssist/internal/game/advisor"
	"PokerAssist/internal/game/engine"
)

// AnalyzeRequest 前端提交的分析请求。金额为 null/缺省时视为未填写
type AnalyzeRequest struct {
	Hole      []string        `json:"hole" binding:"required"`
	Board     []string        `json:"board"`
	PotSize   *float64        `json:"potSize"`
	BetToCall *float64        `json:"betToCall"`
	Opponents int             `json:"opponents"`
	Position  string          `json:"position"`
	Seat      string          `json:"seat,omitempty"`
	Stack     float64         `json:"stack,omitempty"`
	Profile   advisor.Profile `json:"profile"`
}

func (r AnalyzeRequest) input() engine.Input {
	return engine.Input{
		Hole:      r.Hole,
		Board:     r.Board,
		PotSize:   r.PotSize,
		BetToCall: r.BetToCall,
		Opponents: r.Opponents,
		Position:  r.Position,
		Seat:      r.Seat,
		Stack:     r.Stack,
		Profile:   r.Profile,
	}
}

// PracticeRequest deals a random spot. Zero values fall back to the
// service defaults; a nil Seed picks one from the clock.
type PracticeRequest struct {
	Opponents int      `form:"opponents" json:"opponents"`
	Position  string   `form:"position" json:"position"`
	Street    string   `form:"street" json:"street"`
	Seed      *int64   `form:"seed" json:"seed"`
	PotSize   *float64 `form:"potSize" json:"potSize"`
	BetToCall *float64 `form:"betToCall" json:"betToCall"`
}

// Analysis 一次分析的返回
type Analysis struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Seed      *int64         `json:"seed,omitempty"`
	Result    *engine.Result `json:"result"`
}

// ErrorCode is the machine readable part of an error response.
type ErrorCode string

const (
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeInvalidCard   ErrorCode = "INVALID_CARD"
	CodeDuplicateCard ErrorCode = "DUPLICATE_CARD"
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Code  ErrorCode `json:"code"`
	Error string    `json:"error"`
}

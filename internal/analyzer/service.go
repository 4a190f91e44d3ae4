package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"PokerAssist/internal/game/card"
	"PokerAssist/internal/game/engine"
	"PokerAssist/internal/utils"
)

// Analyzer is what the HTTP and websocket layers depend on.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*Analysis, error)
	Practice(ctx context.Context, req PracticeRequest) (*Analysis, error)
}

// PracticeDefaults fill the blanks of a PracticeRequest.
type PracticeDefaults struct {
	Opponents int
	Position  string
	PotSize   float64
	BetToCall float64
}

type Service struct {
	defaults PracticeDefaults
	now      func() time.Time
}

var _ Analyzer = (*Service)(nil)

func NewService(defaults PracticeDefaults) *Service {
	if defaults.Opponents <= 0 {
		defaults.Opponents = 1
	}
	if defaults.PotSize <= 0 {
		defaults.PotSize = 100
	}
	if defaults.BetToCall <= 0 {
		defaults.BetToCall = 20
	}
	return &Service{defaults: defaults, now: time.Now}
}

// Analyze rejects repeated cards, then runs the engine.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (*Analysis, error) {
	tokens := make([]string, 0, len(req.Hole)+len(req.Board))
	tokens = append(tokens, req.Hole...)
	tokens = append(tokens, req.Board...)
	if dups := card.Duplicates(tokens...); len(dups) > 0 {
		return nil, &DuplicateCardError{Cards: dups}
	}

	res, err := engine.Analyze(req.input())
	if err != nil {
		return nil, err
	}
	a := &Analysis{ID: uuid.NewString(), CreatedAt: s.now(), Result: res}
	utils.Log.Debug("analysis done", "id", a.ID, "hand", res.Hand, "win", res.WinProbability, "advice", res.Advice.Action)
	return a, nil
}

var streetCards = map[string]int{
	"preflop": 0,
	"flop":    3,
	"turn":    4,
	"river":   5,
}

// Practice deals a fresh hand from a seeded deck and analyzes it.
func (s *Service) Practice(ctx context.Context, req PracticeRequest) (*Analysis, error) {
	street := strings.ToLower(req.Street)
	if street == "" {
		street = "flop"
	}
	n, ok := streetCards[street]
	if !ok {
		return nil, &engine.ValidationError{Field: "street", Reason: fmt.Sprintf("unknown street %q", req.Street)}
	}

	seed := s.now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	d := card.NewDealer(seed)
	d.NewDeck()
	hole := d.DealHoleCards(1)[0]
	board := d.DealCommunity(n)

	in := AnalyzeRequest{
		Hole:      card.Strings(hole[:]),
		Board:     card.Strings(board),
		PotSize:   req.PotSize,
		BetToCall: req.BetToCall,
		Opponents: req.Opponents,
		Position:  req.Position,
	}
	if in.Opponents == 0 {
		in.Opponents = s.defaults.Opponents
	}
	if in.Position == "" {
		in.Position = s.defaults.Position
	}
	if in.PotSize == nil {
		pot := s.defaults.PotSize
		in.PotSize = &pot
	}
	if in.BetToCall == nil {
		bet := s.defaults.BetToCall
		in.BetToCall = &bet
	}

	a, err := s.Analyze(ctx, in)
	if err != nil {
		return nil, err
	}
	a.Seed = &seed
	return a, nil
}

// Command assist analyzes one spot from the terminal.
//
//	assist --hole AS,KS --board QS,JS,10S --pot 100 --bet 20 --opponents 2 --position late
//	assist --practice --street turn --seed 42
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"PokerAssist/internal/analyzer"
	"PokerAssist/internal/game/advisor"
	"PokerAssist/internal/game/engine"
)

type options struct {
	hole       []string
	board      []string
	pot        string
	bet        string
	opponents  int
	position   string
	seat       string
	stack      float64
	style      string
	aggression string

	practice bool
	street   string
	seed     int64

	json bool
}

func parseFlags(args []string) (*options, error) {
	o := &options{}
	fs := pflag.NewFlagSet("assist", pflag.ContinueOnError)
	fs.StringSliceVar(&o.hole, "hole", nil, "two hole cards, e.g. AS,KD")
	fs.StringSliceVar(&o.board, "board", nil, "0-5 board cards, e.g. QS,JS,10S")
	fs.StringVar(&o.pot, "pot", "", "pot size")
	fs.StringVar(&o.bet, "bet", "", "bet to call")
	fs.IntVarP(&o.opponents, "opponents", "n", 1, "opponents still in the hand (1-9)")
	fs.StringVarP(&o.position, "position", "p", "middle", "early, middle or late")
	fs.StringVar(&o.seat, "seat", "", "UTG, MP, CO, BTN, SB or BB (default from position)")
	fs.Float64Var(&o.stack, "stack", 0, "your stack, 0 for unlimited")
	fs.StringVar(&o.style, "style", "", "opponent style: tight or loose")
	fs.StringVar(&o.aggression, "aggression", "", "opponent aggression: passive or aggressive")
	fs.BoolVar(&o.practice, "practice", false, "deal a random spot instead of reading cards")
	fs.StringVar(&o.street, "street", "flop", "practice street: preflop, flop, turn or river")
	fs.Int64Var(&o.seed, "seed", 0, "practice seed (0 picks one)")
	fs.BoolVar(&o.json, "json", false, "print the raw result as JSON")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *options) request() (analyzer.AnalyzeRequest, error) {
	pot, err := engine.ParseAmount("pot", o.pot)
	if err != nil {
		return analyzer.AnalyzeRequest{}, err
	}
	bet, err := engine.ParseAmount("bet", o.bet)
	if err != nil {
		return analyzer.AnalyzeRequest{}, err
	}
	return analyzer.AnalyzeRequest{
		Hole:      o.hole,
		Board:     o.board,
		PotSize:   pot,
		BetToCall: bet,
		Opponents: o.opponents,
		Position:  o.position,
		Seat:      o.seat,
		Stack:     o.stack,
		Profile:   advisor.Profile{Style: o.style, Aggression: o.aggression},
	}, nil
}

// optionalAmount is ParseAmount for flags that may be left blank.
func optionalAmount(field, raw string) (*float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	return engine.ParseAmount(field, raw)
}

// practiceRequest leaves pot and bet nil when unset so the service defaults apply.
func (o *options) practiceRequest() (analyzer.PracticeRequest, error) {
	req := analyzer.PracticeRequest{Opponents: o.opponents, Position: o.position, Street: o.street}
	if o.seed != 0 {
		req.Seed = &o.seed
	}
	var err error
	if req.PotSize, err = optionalAmount("pot", o.pot); err != nil {
		return analyzer.PracticeRequest{}, err
	}
	if req.BetToCall, err = optionalAmount("bet", o.bet); err != nil {
		return analyzer.PracticeRequest{}, err
	}
	return req, nil
}

func run(ctx context.Context, args []string, out io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	svc := analyzer.NewService(analyzer.PracticeDefaults{Opponents: o.opponents, Position: o.position})

	var a *analyzer.Analysis
	if o.practice {
		var req analyzer.PracticeRequest
		if req, err = o.practiceRequest(); err == nil {
			a, err = svc.Practice(ctx, req)
		}
	} else {
		var req analyzer.AnalyzeRequest
		if req, err = o.request(); err == nil {
			a, err = svc.Analyze(ctx, req)
		}
	}
	if err != nil {
		return err
	}

	if o.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}
	return render(out, a)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		_, code := analyzer.Classify(err)
		pterm.Error.Printfln("%s: %v", code, err)
		os.Exit(1)
	}
}

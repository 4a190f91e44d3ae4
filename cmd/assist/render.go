package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"PokerAssist/internal/analyzer"
	"PokerAssist/internal/game/advisor"
	"PokerAssist/internal/game/card"
	"PokerAssist/internal/game/engine"
)

func pretty(cards []card.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.Pretty()
	}
	return strings.Join(s, " ")
}

func yesNo(b bool) string {
	if b {
		return pterm.LightGreen("yes")
	}
	return pterm.LightRed("no")
}

// tableRows is the body of the summary table.
func tableRows(r *engine.Result) [][]string {
	rows := [][]string{
		{"Hole", pretty(r.Hole)},
		{"Board", fmt.Sprintf("%s (%s)", pretty(r.Board), r.Stage)},
		{"Hand", fmt.Sprintf("%s  %.1f", r.Hand, r.Strength)},
	}
	if r.Description != "" {
		rows = append(rows, []string{"Best five", r.Description})
	}
	rows = append(rows,
		[]string{"Board texture", r.Baseline.Texture.String()},
		[]string{"Win probability", fmt.Sprintf("%.1f%%", r.WinProbability)},
		[]string{"Pot odds", fmt.Sprintf("%.1f%%", r.PotOdds)},
		[]string{"Implied odds", fmt.Sprintf("%.1f%%", r.ImpliedOdds)},
		[]string{"Expected value", fmt.Sprintf("%+.2f", r.ExpectedValue)},
		[]string{"Fold equity", fmt.Sprintf("%.1f%%", r.FoldEquity)},
		[]string{"Call", yesNo(r.ShouldCall)},
		[]string{"Outs", fmt.Sprintf("%d", r.Outs)},
	)
	for _, d := range r.Draws {
		rows = append(rows, []string{"  " + d.Kind.String(), fmt.Sprintf("%d outs, %.1f%%", d.Outs, d.Probability)})
	}
	return rows
}

func adviceLine(a advisor.Advice) string {
	action := strings.ToUpper(string(a.Action))
	switch a.Action {
	case advisor.Raise:
		action = pterm.LightGreen(fmt.Sprintf("%s %.2f", action, a.Amount))
	case advisor.Call:
		action = pterm.LightYellow(fmt.Sprintf("%s %.2f", action, a.Amount))
	default:
		action = pterm.LightRed(action)
	}
	return action + "\n" + a.Reason
}

func render(out io.Writer, a *analyzer.Analysis) error {
	r := a.Result
	header := pterm.DefaultHeader.WithWriter(out).WithFullWidth()
	header.Println("PokerAssist")

	if err := pterm.DefaultTable.WithWriter(out).WithData(tableRows(r)).Render(); err != nil {
		return err
	}

	title := fmt.Sprintf("|ADVICE %s|", r.Seat)
	box := pterm.DefaultBox.WithWriter(out).WithHorizontalPadding(4).WithTitle(pterm.LightCyan(title)).WithTitleTopCenter()
	box.Println(adviceLine(r.Advice))
	if a.Seed != nil {
		pterm.Info.WithWriter(out).Printfln("seed %d", *a.Seed)
	}
	return nil
}

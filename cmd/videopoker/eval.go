package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
	"github.com/lox/videopoker/internal/paytable"
)

// EvalCmd classifies a hand given on the command line
type EvalCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. As Ks Qs Js 10s"`
}

func (c *EvalCmd) Run(g *Globals) error {
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}
	table, err := cfg.PaytableTable()
	if err != nil {
		return err
	}
	return c.run(os.Stdout, table)
}

func (c *EvalCmd) run(w io.Writer, table paytable.Paytable) error {
	cards, err := deck.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	result, err := evaluator.Evaluate(cards)
	if err != nil {
		return err
	}

	line := paytable.LineFor(result)
	fmt.Fprintf(w, "Hand:     %s\n", deck.Format(cards))
	fmt.Fprintf(w, "Category: %s\n", result.Category)
	fmt.Fprintf(w, "Result:   %s\n", result)
	fmt.Fprintf(w, "Pays:     %s x%d\n", line, table.LineMultiplier(line))
	return nil
}

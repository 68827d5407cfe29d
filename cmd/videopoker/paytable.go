package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/videopoker/internal/console"
	"github.com/lox/videopoker/internal/display"
	"github.com/lox/videopoker/internal/paytable"
)

// PaytableCmd prints the payout table in effect
type PaytableCmd struct {
	Plain bool `help:"Print the classic plain layout"`
}

func (c *PaytableCmd) Run(g *Globals) error {
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}
	display.ConfigureColor(cfg.UI.NoColor)

	table, err := cfg.PaytableTable()
	if err != nil {
		return err
	}
	return c.run(os.Stdout, table)
}

func (c *PaytableCmd) run(w io.Writer, table paytable.Paytable) error {
	if c.Plain {
		_, err := io.WriteString(w, console.Paytable(table))
		return err
	}
	out, err := display.Paytable(table)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"
	"github.com/lox/videopoker/cmd/videopoker/shared"
	"github.com/lox/videopoker/internal/display"
	"github.com/lox/videopoker/internal/paytable"
	"github.com/lox/videopoker/internal/randutil"
	"github.com/lox/videopoker/internal/simulator"
	"github.com/rs/zerolog"
)

// SimulateCmd plays hands with a fixed strategy and reports the return
type SimulateCmd struct {
	Hands    int    `default:"100000" help:"Number of hands to play"`
	Workers  int    `default:"0" help:"Parallel workers (0 for CPU count)"`
	Seed     *int64 `help:"Deterministic seed (optional)"`
	Strategy string `default:"made" enum:"made,nothing" help:"Hold strategy: made or nothing"`
	Bet      int    `default:"1" help:"Bet per hand"`
	Decks    *int   `help:"Number of 52-card decks"`
	JSON     bool   `help:"Log as JSON instead of console output"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}
	display.ConfigureColor(cfg.UI.NoColor)

	logger := shared.SetupLogger(os.Stderr, g.Debug)
	if c.JSON {
		logger = shared.SetupStructuredLogger(os.Stderr, g.Debug)
	}

	table, err := cfg.PaytableTable()
	if err != nil {
		return err
	}
	decks := cfg.Game.Decks
	if c.Decks != nil {
		decks = *c.Decks
	}
	if c.Seed == nil {
		c.Seed = cfg.Game.Seed
	}

	ctx := shared.SetupSignalHandlerWithLogger(logger)
	return c.run(ctx, os.Stdout, &logger, table, decks, quartz.NewReal())
}

func (c *SimulateCmd) run(ctx context.Context, w io.Writer, logger *zerolog.Logger, table paytable.Paytable, decks int, clock quartz.Clock) error {
	strategy, err := simulator.StrategyByName(c.Strategy)
	if err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info().Int64("seed", seed).Msg("Using deterministic seed")
	} else {
		seed = randutil.Seed(clock)
		logger.Info().Int64("seed", seed).Msg("Using random seed")
	}

	report, err := simulator.Run(ctx, simulator.Config{
		Hands:    c.Hands,
		Workers:  c.Workers,
		Seed:     seed,
		Decks:    decks,
		Bet:      c.Bet,
		Strategy: strategy,
		Paytable: table,
		Logger:   logger,
		Clock:    clock,
	})
	if err != nil {
		return err
	}

	out, err := display.Report(report)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

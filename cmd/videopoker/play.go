package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/videopoker/cmd/videopoker/shared"
	"github.com/lox/videopoker/internal/config"
	"github.com/lox/videopoker/internal/console"
	"github.com/lox/videopoker/internal/display"
	"github.com/lox/videopoker/internal/game"
	"github.com/lox/videopoker/internal/history"
	"github.com/lox/videopoker/internal/randutil"
	"github.com/lox/videopoker/internal/tui"
	"golang.org/x/term"
)

// PlayCmd runs an interactive session
type PlayCmd struct {
	Balance *int   `help:"Starting balance"`
	Decks   *int   `help:"Number of 52-card decks shuffled together"`
	MaxBet  *int   `help:"Largest single bet (0 for no cap)"`
	Seed    *int64 `help:"Deterministic shuffle seed (optional)"`
	Plain   bool   `help:"Use the line-oriented console instead of the full screen UI"`
	NoColor bool   `help:"Disable colour output"`
	History string `type:"path" help:"Save settled hands to this TOML file"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := g.FileLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	display.ConfigureColor(cfg.UI.NoColor)

	opts, closeHistory, err := sessionOptions(cfg, logger)
	if err != nil {
		return err
	}
	defer closeHistory()

	session, err := game.NewSession(opts...)
	if err != nil {
		return err
	}

	ctx, stop := shared.SetupSignalHandler()
	defer stop()

	if cfg.UI.Plain || !term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Info("Starting console session", "session", session.ID(), "balance", session.Balance())
		err := console.New(session, os.Stdin, os.Stdout, logger).Run(ctx)
		if errors.Is(err, context.Canceled) {
			logger.Info("Console session interrupted", "hands", session.HandsPlayed())
			fmt.Printf("\nFinal balance: $%d after %d hands\n", session.Balance(), session.HandsPlayed())
			return nil
		}
		return err
	}

	logger.Info("Starting TUI session", "session", session.ID(), "balance", session.Balance())
	err = tui.Run(session, logger, tea.WithAltScreen(), tea.WithContext(ctx))
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err == nil {
		fmt.Printf("Thanks for playing! Final balance: $%d after %d hands\n", session.Balance(), session.HandsPlayed())
	}
	return err
}

// apply copies flags that were set over the loaded configuration
func (c *PlayCmd) apply(cfg *config.Config) {
	if c.Balance != nil {
		cfg.Game.StartingBalance = *c.Balance
	}
	if c.Decks != nil {
		cfg.Game.Decks = *c.Decks
	}
	if c.MaxBet != nil {
		cfg.Game.MaxBet = *c.MaxBet
	}
	if c.Seed != nil {
		cfg.Game.Seed = c.Seed
	}
	if c.Plain {
		cfg.UI.Plain = true
	}
	if c.NoColor {
		cfg.UI.NoColor = true
	}
	if c.History != "" {
		cfg.History.File = c.History
	}
}

// sessionOptions builds the session from configuration. The returned
// function flushes the hand history, if one is kept.
func sessionOptions(cfg *config.Config, logger *log.Logger) ([]game.Option, func(), error) {
	table, err := cfg.PaytableTable()
	if err != nil {
		return nil, nil, err
	}

	opts := []game.Option{
		game.WithBalance(cfg.Game.StartingBalance),
		game.WithDecks(cfg.Game.Decks),
		game.WithMaxBet(cfg.Game.MaxBet),
		game.WithPaytable(table),
		game.WithLogger(logger),
	}
	if cfg.Game.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *cfg.Game.Seed)
		opts = append(opts, game.WithRand(randutil.New(*cfg.Game.Seed)))
	}

	if cfg.History.File == "" {
		return opts, func() {}, nil
	}

	rec, err := history.OpenFile(cfg.History.File)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Recording hands", "file", rec.Path(), "existing", rec.Len())
	closer := func() {
		if err := rec.Close(); err != nil {
			logger.Error("Failed to save hand history", "file", rec.Path(), "error", err)
		}
	}
	return append(opts, game.WithRecorder(rec)), closer, nil
}

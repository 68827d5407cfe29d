package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/videopoker/internal/config"
	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/display"
	"github.com/lox/videopoker/internal/game"
	"github.com/lox/videopoker/internal/history"
	"github.com/lox/videopoker/internal/paytable"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	display.ConfigureColor(true)
	os.Exit(m.Run())
}

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("videopoker"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseDefaultsToPlay(t *testing.T) {
	t.Parallel()

	cli, ctx := parse(t)
	assert.Equal(t, "play", ctx.Command())
	assert.Equal(t, "videopoker.hcl", filepath.Base(cli.Config))
	assert.Nil(t, cli.Play.Balance)
}

func TestParsePlayFlags(t *testing.T) {
	t.Parallel()

	cli, ctx := parse(t, "play", "--balance", "250", "--seed", "7", "--plain", "--debug")
	assert.Equal(t, "play", ctx.Command())
	require.NotNil(t, cli.Play.Balance)
	assert.Equal(t, 250, *cli.Play.Balance)
	require.NotNil(t, cli.Play.Seed)
	assert.Equal(t, int64(7), *cli.Play.Seed)
	assert.True(t, cli.Play.Plain)
	assert.True(t, cli.Debug)
}

func TestParseSimulate(t *testing.T) {
	t.Parallel()

	cli, ctx := parse(t, "simulate", "--hands", "500", "--strategy", "nothing")
	assert.Equal(t, "simulate", ctx.Command())
	assert.Equal(t, 500, cli.Simulate.Hands)
	assert.Equal(t, "nothing", cli.Simulate.Strategy)
	assert.Equal(t, 1, cli.Simulate.Bet)

	var bad CLI
	parser, err := kong.New(&bad, kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse([]string{"simulate", "--strategy", "optimal"})
	assert.Error(t, err)
}

func TestParseEval(t *testing.T) {
	t.Parallel()

	cli, ctx := parse(t, "eval", "As", "Ks", "Qs", "Js", "10s")
	assert.Equal(t, "eval <cards>", ctx.Command())
	assert.Equal(t, []string{"As", "Ks", "Qs", "Js", "10s"}, cli.Eval.Cards)
}

func TestEval(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := EvalCmd{Cards: []string{"8s", "Jd", "8c", "Js", "8d"}}
	require.NoError(t, cmd.run(&buf, paytable.Default()))

	out := buf.String()
	assert.Contains(t, out, "Category: Full House")
	assert.Contains(t, out, "Result:   Full House, 8's over J's")
	assert.Contains(t, out, "Pays:     Full House x9")
}

func TestEvalErrors(t *testing.T) {
	t.Parallel()

	cmd := EvalCmd{Cards: []string{"As", "Ks"}}
	assert.Error(t, cmd.run(io.Discard, paytable.Default()))

	cmd = EvalCmd{Cards: []string{"As", "Ks", "Qs", "Js", "1x"}}
	assert.ErrorIs(t, cmd.run(io.Discard, paytable.Default()), deck.ErrInvalidCard)
}

func TestPaytableCmd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, (&PaytableCmd{Plain: true}).run(&buf, paytable.Default()))
	assert.Contains(t, buf.String(), "Royal Flush\t|\t250")

	buf.Reset()
	require.NoError(t, (&PaytableCmd{}).run(&buf, paytable.Default()))
	assert.Contains(t, buf.String(), "Royal Flush")
	assert.Contains(t, buf.String(), "Multiplier")
}

func TestSimulateCmd(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	logger := zerolog.New(&logs)
	seed := int64(3)
	cmd := SimulateCmd{Hands: 2000, Workers: 2, Seed: &seed, Strategy: "made", Bet: 1}

	err := cmd.run(context.Background(), &out, &logger, paytable.Default(), 1, quartz.NewMock(t))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Hands:    2000")
	assert.Contains(t, out.String(), "RTP:")
	assert.Contains(t, logs.String(), `"seed":3`)
	assert.Contains(t, logs.String(), "Simulation complete")
}

func TestSimulateCmdUnknownStrategy(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	cmd := SimulateCmd{Hands: 10, Strategy: "optimal"}
	err := cmd.run(context.Background(), io.Discard, &logger, paytable.Default(), 1, quartz.NewMock(t))
	assert.Error(t, err)
}

func TestPlayApply(t *testing.T) {
	t.Parallel()

	balance, decks, seed := 500, 2, int64(9)
	cmd := PlayCmd{Balance: &balance, Decks: &decks, Seed: &seed, Plain: true, History: "hands.toml"}

	cfg := config.Default()
	cmd.apply(cfg)
	assert.Equal(t, 500, cfg.Game.StartingBalance)
	assert.Equal(t, 2, cfg.Game.Decks)
	require.NotNil(t, cfg.Game.Seed)
	assert.Equal(t, int64(9), *cfg.Game.Seed)
	assert.True(t, cfg.UI.Plain)
	assert.Equal(t, "hands.toml", cfg.History.File)

	untouched := config.Default()
	(&PlayCmd{}).apply(untouched)
	assert.Equal(t, config.Default(), untouched)
}

func TestSessionOptionsRecordsHistory(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	seed := int64(42)
	cfg.Game.Seed = &seed
	cfg.History.File = filepath.Join(t.TempDir(), "hands.toml")

	opts, closeHistory, err := sessionOptions(cfg, log.New(io.Discard))
	require.NoError(t, err)

	session, err := game.NewSession(opts...)
	require.NoError(t, err)
	require.NoError(t, session.Bet(1))
	_, err = session.Deal()
	require.NoError(t, err)
	_, err = session.Draw()
	require.NoError(t, err)
	closeHistory()

	rec, err := history.OpenFile(cfg.History.File)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Len())
}

func TestZeroSeedIsDeterministic(t *testing.T) {
	t.Parallel()

	zero := int64(0)
	cmd := PlayCmd{Seed: &zero}

	deal := func() []deck.Card {
		cfg := config.Default()
		cmd.apply(cfg)
		require.NotNil(t, cfg.Game.Seed)

		opts, closeHistory, err := sessionOptions(cfg, log.New(io.Discard))
		require.NoError(t, err)
		defer closeHistory()

		session, err := game.NewSession(opts...)
		require.NoError(t, err)
		require.NoError(t, session.Bet(1))
		hand, err := session.Deal()
		require.NoError(t, err)
		return hand
	}

	first := deal()
	for range 3 {
		assert.Equal(t, first, deal())
	}
}

func TestSessionOptionsRejectsBadPaytable(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Paytable["five_of_a_kind"] = 100
	_, _, err := sessionOptions(cfg, log.New(io.Discard))
	assert.ErrorIs(t, err, paytable.ErrUnknownHand)
}

package simulator

import (
	"bytes"
	"context"
	"testing"

	"github.com/coder/quartz"
	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
	"github.com/lox/videopoker/internal/paytable"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cfg Config) Report {
	t.Helper()
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewMock(t)
	}
	report, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	return report
}

func TestRunCountsEveryHand(t *testing.T) {
	t.Parallel()

	report := run(t, Config{Hands: 1001, Workers: 4, Seed: 1})

	assert.Equal(t, 1001, report.Hands)
	assert.Equal(t, int64(1001), report.Wagered)
	assert.Equal(t, 1001, report.Returns.Hands)

	total := 0
	for _, n := range report.Counts {
		total += n
	}
	assert.Equal(t, 1001, total)

	lines := 0
	for _, n := range report.Lines {
		lines += n
	}
	assert.Equal(t, 1001, lines)
	assert.Equal(t, report.Counts[evaluator.OnePair], report.Lines[paytable.LowPair]+report.Lines[paytable.RoyalPair])

	assert.InDelta(t, report.RTP(), report.Returns.Mean(), 1e-9)
	require.NoError(t, report.Returns.Validate())
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	cfg := Config{Hands: 5000, Workers: 3, Seed: 99}
	a := run(t, cfg)
	b := run(t, cfg)
	assert.Equal(t, a, b)

	other := run(t, Config{Hands: 5000, Workers: 3, Seed: 100})
	assert.NotEqual(t, a.Counts, other.Counts)
}

func TestRunBetScalesMoney(t *testing.T) {
	t.Parallel()

	one := run(t, Config{Hands: 2000, Workers: 2, Seed: 5, Bet: 1})
	five := run(t, Config{Hands: 2000, Workers: 2, Seed: 5, Bet: 5})

	assert.Equal(t, one.Counts, five.Counts)
	assert.Equal(t, 5*one.Wagered, five.Wagered)
	assert.Equal(t, 5*one.Returned, five.Returned)
	assert.InDelta(t, one.RTP(), five.RTP(), 1e-9)
}

func TestHoldNothingMatchesDealtOdds(t *testing.T) {
	t.Parallel()

	report := run(t, Config{Hands: 20000, Workers: 4, Seed: 3, Strategy: HoldNothing{}})

	// five fresh cards: one pair about 42%, no pair about 50%
	assert.InDelta(t, 0.4226, report.Frequency(evaluator.OnePair), 0.02)
	assert.InDelta(t, 0.5012, report.Frequency(evaluator.NoPair), 0.02)
	assert.InDelta(t, 0.34, report.RTP(), 0.05)

	lo, hi := report.RTPInterval()
	assert.Less(t, lo, report.RTP())
	assert.Greater(t, hi, report.RTP())
}

func TestHoldingMadeHandsBeatsHoldingNothing(t *testing.T) {
	t.Parallel()

	nothing := run(t, Config{Hands: 20000, Workers: 4, Seed: 11, Strategy: HoldNothing{}})
	made := run(t, Config{Hands: 20000, Workers: 4, Seed: 11, Strategy: HoldMadeHands{}})

	assert.Greater(t, made.RTP(), nothing.RTP())
}

func TestRunZeroPaytableDefaults(t *testing.T) {
	t.Parallel()

	withDefault := run(t, Config{Hands: 500, Workers: 1, Seed: 8})
	explicit := run(t, Config{Hands: 500, Workers: 1, Seed: 8, Paytable: paytable.Default()})
	assert.Equal(t, withDefault, explicit)
}

func TestRunCustomPaytable(t *testing.T) {
	t.Parallel()

	table, err := paytable.Default().WithOverrides(map[string]int{"royal_pair": 0, "two_pair": 0})
	require.NoError(t, err)

	report := run(t, Config{Hands: 3000, Workers: 2, Seed: 8, Paytable: table, Strategy: HoldNothing{}})
	base := run(t, Config{Hands: 3000, Workers: 2, Seed: 8, Strategy: HoldNothing{}})
	assert.Less(t, report.Returned, base.Returned)
}

func TestRunMoreWorkersThanHands(t *testing.T) {
	t.Parallel()

	report := run(t, Config{Hands: 3, Workers: 16, Seed: 2})
	assert.Equal(t, 3, report.Hands)
}

func TestRunMultiDeck(t *testing.T) {
	t.Parallel()

	report := run(t, Config{Hands: 2000, Workers: 2, Seed: 2, Decks: 6})
	assert.Equal(t, 2000, report.Hands)
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), Config{Hands: 0})
	assert.ErrorIs(t, err, ErrInvalidHands)

	_, err = Run(context.Background(), Config{Hands: 10, Decks: -1})
	assert.ErrorIs(t, err, deck.ErrInvalidDeckCount)

	bad := StrategyFunc(func([]deck.Card, evaluator.Result) []int { return []int{7} })
	_, err = Run(context.Background(), Config{Hands: 10, Strategy: bad})
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Hands: 100000, Workers: 2, Clock: quartz.NewMock(t)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	run(t, Config{Hands: 100, Workers: 1, Seed: 1, Logger: &logger})
	assert.Contains(t, buf.String(), `"message":"Simulation complete"`)
	assert.Contains(t, buf.String(), `"hands":100`)
	assert.NotContains(t, buf.String(), "Simulation starting")
}

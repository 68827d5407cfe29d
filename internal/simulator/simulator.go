// Package simulator plays large numbers of hands to estimate how often each
// hand comes up and what share of the money wagered a strategy returns.
package simulator

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
	"github.com/lox/videopoker/internal/paytable"
	"github.com/lox/videopoker/internal/randutil"
	"github.com/lox/videopoker/internal/statistics"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidHands is returned when asked to simulate fewer than one hand
var ErrInvalidHands = errors.New("hands must be at least 1")

// checkEvery is how many hands a worker plays between cancellation checks
const checkEvery = 1024

// Config describes a simulation run. Zero fields take defaults.
type Config struct {
	Hands    int
	Workers  int   // default: CPU count, at most 8
	Seed     int64 // same seed and worker count gives the same report
	Decks    int   // default: 1
	Bet      int   // default: 1
	Strategy Strategy
	Paytable paytable.Paytable // default: Jacks or Better
	Logger   *zerolog.Logger
	Clock    quartz.Clock
}

func (c Config) withDefaults() (Config, error) {
	if c.Hands < 1 {
		return c, fmt.Errorf("%w: got %d", ErrInvalidHands, c.Hands)
	}
	if c.Workers <= 0 {
		c.Workers = min(runtime.NumCPU(), 8)
	}
	c.Workers = min(c.Workers, c.Hands)
	if c.Decks == 0 {
		c.Decks = 1
	}
	if c.Bet <= 0 {
		c.Bet = 1
	}
	if c.Strategy == nil {
		c.Strategy = HoldMadeHands{}
	}
	if c.Paytable == (paytable.Paytable{}) {
		c.Paytable = paytable.Default()
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	if c.Clock == nil {
		c.Clock = quartz.NewReal()
	}
	return c, nil
}

// Report summarises a run
type Report struct {
	Hands    int
	Counts   map[evaluator.Category]int
	Lines    map[paytable.Line]int
	Wagered  int64
	Returned int64
	Returns  statistics.Statistics // per-hand payout divided by bet
	Elapsed  time.Duration
}

// RTP is the return to player: money paid back per unit wagered
func (r Report) RTP() float64 {
	if r.Wagered == 0 {
		return 0
	}
	return float64(r.Returned) / float64(r.Wagered)
}

// RTPInterval returns the 95% confidence interval around RTP
func (r Report) RTPInterval() (float64, float64) {
	return r.Returns.ConfidenceInterval95()
}

// Frequency returns the share of hands that finished in category c
func (r Report) Frequency(c evaluator.Category) float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(r.Counts[c]) / float64(r.Hands)
}

func (r *Report) merge(o workerResult) {
	r.Hands += o.hands
	r.Wagered += o.wagered
	r.Returned += o.returned
	r.Returns.Merge(o.returns)
	for c, n := range o.counts {
		if n > 0 {
			r.Counts[evaluator.Category(c)] += n
		}
	}
	for l, n := range o.lines {
		if n > 0 {
			r.Lines[paytable.Line(l)] += n
		}
	}
}

// workerResult holds the tallies from one worker
type workerResult struct {
	hands    int
	wagered  int64
	returned int64
	returns  statistics.Statistics
	counts   [evaluator.NumCategories]int
	lines    [paytable.RoyalFlush + 1]int
}

// Run plays cfg.Hands hands split across cfg.Workers goroutines. Each worker
// owns its deck and a random stream derived from cfg.Seed.
func Run(ctx context.Context, cfg Config) (Report, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return Report{}, err
	}

	logger := cfg.Logger
	start := cfg.Clock.Now()
	logger.Debug().
		Int("hands", cfg.Hands).
		Int("workers", cfg.Workers).
		Int64("seed", cfg.Seed).
		Msg("Simulation starting")

	perWorker := cfg.Hands / cfg.Workers
	remainder := cfg.Hands % cfg.Workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan workerResult, cfg.Workers)

	for w := range cfg.Workers {
		hands := perWorker
		if w < remainder {
			hands++
		}
		rng := randutil.NewStream(cfg.Seed, uint64(w))

		g.Go(func() error {
			result, err := runWorker(ctx, cfg, hands, rng)
			if err != nil {
				return err
			}
			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	report := Report{
		Counts: make(map[evaluator.Category]int),
		Lines:  make(map[paytable.Line]int),
	}
	for result := range results {
		report.merge(result)
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report.Elapsed = cfg.Clock.Since(start)
	logger.Info().
		Int("hands", report.Hands).
		Float64("rtp", report.RTP()).
		Dur("elapsed", report.Elapsed).
		Msg("Simulation complete")

	return report, nil
}

func runWorker(ctx context.Context, cfg Config, hands int, rng *rand.Rand) (workerResult, error) {
	var result workerResult

	d, err := deck.NewDeck(cfg.Decks, rng)
	if err != nil {
		return result, err
	}

	hand := make([]deck.Card, evaluator.HandSize)
	for i := range hands {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return result, err
			}
		}

		d.Reset()
		d.Shuffle()
		dealt, err := d.Deal(evaluator.HandSize)
		if err != nil {
			return result, err
		}
		copy(hand, dealt)

		first, err := evaluator.Evaluate(hand)
		if err != nil {
			return result, err
		}

		var held [evaluator.HandSize]bool
		for _, pos := range cfg.Strategy.Hold(dealt, first) {
			if pos < 1 || pos > evaluator.HandSize {
				return result, fmt.Errorf("strategy held position %d", pos)
			}
			held[pos-1] = true
		}

		for j := range hand {
			if held[j] {
				continue
			}
			card, err := d.Deal(1)
			if err != nil {
				return result, err
			}
			hand[j] = card[0]
		}

		final, err := evaluator.Evaluate(hand)
		if err != nil {
			return result, err
		}

		result.hands++
		result.wagered += int64(cfg.Bet)
		payout := cfg.Paytable.Payout(final, cfg.Bet)
		result.returned += int64(payout)
		result.returns.Add(float64(payout) / float64(cfg.Bet))
		result.counts[final.Category]++
		result.lines[paytable.LineFor(final)]++
	}

	return result, nil
}

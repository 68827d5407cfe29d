package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/videopoker/internal/history"
	"github.com/lox/videopoker/internal/paytable"
)

// DefaultBalance is the balance a new session starts with
const DefaultBalance = 100

// Option configures a Session during creation.
type Option func(*sessionConfig)

// sessionConfig holds all configuration for creating a session.
type sessionConfig struct {
	balance  int
	decks    int
	maxBet   int // 0 means bets are limited only by the balance
	rng      *rand.Rand
	paytable paytable.Paytable
	logger   *log.Logger
	clock    quartz.Clock
	recorder history.Recorder
}

func defaultConfig() *sessionConfig {
	return &sessionConfig{
		balance:  DefaultBalance,
		decks:    1,
		paytable: paytable.Default(),
	}
}

// WithBalance sets the starting balance
func WithBalance(balance int) Option {
	return func(c *sessionConfig) {
		c.balance = balance
	}
}

// WithDecks sets how many 52-card decks are shuffled together
func WithDecks(n int) Option {
	return func(c *sessionConfig) {
		c.decks = n
	}
}

// WithMaxBet caps a single bet. Zero removes the cap.
func WithMaxBet(n int) Option {
	return func(c *sessionConfig) {
		c.maxBet = n
	}
}

// WithRand sets the random source used to shuffle.
// Without it the deck is seeded from the session clock.
func WithRand(rng *rand.Rand) Option {
	return func(c *sessionConfig) {
		c.rng = rng
	}
}

// WithPaytable replaces the Jacks or Better pay table
func WithPaytable(p paytable.Paytable) Option {
	return func(c *sessionConfig) {
		c.paytable = p
	}
}

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(logger *log.Logger) Option {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithClock sets the clock used for record timestamps and default seeding
func WithClock(clock quartz.Clock) Option {
	return func(c *sessionConfig) {
		c.clock = clock
	}
}

// WithRecorder logs every settled hand to r
func WithRecorder(r history.Recorder) Option {
	return func(c *sessionConfig) {
		c.recorder = r
	}
}

func (c *sessionConfig) fill() {
	if c.clock == nil {
		c.clock = quartz.NewReal()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
}

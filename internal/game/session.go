package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
	"github.com/lox/videopoker/internal/history"
	"github.com/lox/videopoker/internal/paytable"
	"github.com/lox/videopoker/internal/randutil"
)

var (
	// ErrInvalidBet is returned for bets outside 1..balance (or above the cap)
	ErrInvalidBet = errors.New("invalid bet")

	// ErrInvalidBalance is returned when a session would start with nothing to bet
	ErrInvalidBalance = errors.New("starting balance must be positive")

	// ErrWrongPhase is returned when an action is not allowed in the current phase
	ErrWrongPhase = errors.New("action not allowed now")

	// ErrNoBet is returned when dealing before a bet is placed
	ErrNoBet = errors.New("place a bet before dealing")

	// ErrInvalidPosition is returned for hold positions outside 1-5
	ErrInvalidPosition = errors.New("position must be between 1 and 5")

	// ErrBroke is returned when betting with an empty balance
	ErrBroke = errors.New("balance exhausted")
)

// Phase is a point in the betting cycle of a session
type Phase int

const (
	PhaseBetting Phase = iota
	PhaseHolding
	PhaseSettled
	PhaseBroke
)

func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhaseHolding:
		return "holding"
	case PhaseSettled:
		return "settled"
	case PhaseBroke:
		return "broke"
	default:
		return "unknown"
	}
}

// Outcome is the settlement of one hand
type Outcome struct {
	Hand    []deck.Card
	Held    []int
	Result  evaluator.Result
	Line    paytable.Line
	Bet     int
	Payout  int
	Balance int
	Won     bool
}

// Session is one player's run of hands against a private deck.
// It is not safe for concurrent use.
type Session struct {
	id       string
	balance  int
	bet      int
	maxBet   int
	phase    Phase
	hands    int
	dealt    []deck.Card
	hand     []deck.Card
	held     [evaluator.HandSize]bool
	last     *Outcome
	deck     *deck.Deck
	paytable paytable.Paytable
	logger   *log.Logger
	clock    quartz.Clock
	recorder history.Recorder
}

// NewSession creates a session ready to take its first bet
func NewSession(opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.fill()

	if cfg.balance <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBalance, cfg.balance)
	}
	if cfg.maxBet < 0 {
		return nil, fmt.Errorf("%w: max bet %d", ErrInvalidBet, cfg.maxBet)
	}

	rng := cfg.rng
	if rng == nil {
		rng = randutil.New(randutil.Seed(cfg.clock))
	}
	d, err := deck.NewDeck(cfg.decks, rng)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:       uuid.New().String(),
		balance:  cfg.balance,
		maxBet:   cfg.maxBet,
		phase:    PhaseBetting,
		deck:     d,
		paytable: cfg.paytable,
		clock:    cfg.clock,
		recorder: cfg.recorder,
	}
	s.logger = cfg.logger.With("session", s.id)
	s.logger.Debug("Session started", "balance", s.balance, "decks", cfg.decks)
	return s, nil
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Balance returns the player's current balance
func (s *Session) Balance() int { return s.balance }

// CurrentBet returns the stake on the hand in play, or 0
func (s *Session) CurrentBet() int { return s.bet }

// MaxBet returns the largest bet currently allowed
func (s *Session) MaxBet() int {
	if s.maxBet > 0 && s.maxBet < s.balance {
		return s.maxBet
	}
	return s.balance
}

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.phase }

// HandsPlayed returns how many hands have been settled
func (s *Session) HandsPlayed() int { return s.hands }

// Paytable returns the pay table in use
func (s *Session) Paytable() paytable.Paytable { return s.paytable }

// Hand returns a copy of the cards in front of the player
func (s *Session) Hand() []deck.Card { return slices.Clone(s.hand) }

// Held reports which of the five positions are held
func (s *Session) Held() [evaluator.HandSize]bool { return s.held }

// Last returns the most recent outcome, if a hand has been settled
func (s *Session) Last() (Outcome, bool) {
	if s.last == nil {
		return Outcome{}, false
	}
	return *s.last, true
}

// Bet stakes amount on the next hand and removes it from the balance
func (s *Session) Bet(amount int) error {
	switch {
	case s.phase == PhaseBroke:
		return ErrBroke
	case s.phase == PhaseHolding:
		return fmt.Errorf("%w: hand in progress", ErrWrongPhase)
	case s.bet > 0:
		return fmt.Errorf("%w: bet already placed", ErrWrongPhase)
	}

	if amount <= 0 || amount > s.MaxBet() {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidBet, amount, s.MaxBet())
	}

	s.bet = amount
	s.balance -= amount
	s.phase = PhaseBetting
	s.hand = nil
	s.logger.Debug("Bet placed", "bet", amount, "balance", s.balance)
	return nil
}

// Deal resets and shuffles the deck, then deals a fresh five card hand
func (s *Session) Deal() ([]deck.Card, error) {
	if s.phase != PhaseBetting {
		return nil, fmt.Errorf("%w: cannot deal while %s", ErrWrongPhase, s.phase)
	}
	if s.bet == 0 {
		return nil, ErrNoBet
	}

	s.deck.Reset()
	s.deck.Shuffle()
	cards, err := s.deck.Deal(evaluator.HandSize)
	if err != nil {
		return nil, err
	}

	s.dealt = cards
	s.hand = slices.Clone(cards)
	s.held = [evaluator.HandSize]bool{}
	s.phase = PhaseHolding
	s.logger.Debug("Hand dealt", "cards", deck.Format(cards))
	return slices.Clone(cards), nil
}

// ToggleHold flips the hold flag on a 1-based position
func (s *Session) ToggleHold(pos int) error {
	if s.phase != PhaseHolding {
		return fmt.Errorf("%w: nothing to hold", ErrWrongPhase)
	}
	if pos < 1 || pos > evaluator.HandSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPosition, pos)
	}
	s.held[pos-1] = !s.held[pos-1]
	return nil
}

// Hold replaces the held set with exactly the given 1-based positions
func (s *Session) Hold(positions ...int) error {
	if s.phase != PhaseHolding {
		return fmt.Errorf("%w: nothing to hold", ErrWrongPhase)
	}

	var held [evaluator.HandSize]bool
	for _, pos := range positions {
		if pos < 1 || pos > evaluator.HandSize {
			return fmt.Errorf("%w: got %d", ErrInvalidPosition, pos)
		}
		held[pos-1] = true
	}
	s.held = held
	return nil
}

// Draw replaces every card not held, settles the hand and credits any payout
func (s *Session) Draw() (Outcome, error) {
	if s.phase != PhaseHolding {
		return Outcome{}, fmt.Errorf("%w: no hand to draw to", ErrWrongPhase)
	}

	var held []int
	for i, h := range s.held {
		if h {
			held = append(held, i+1)
		}
	}

	replacements, err := s.deck.Deal(evaluator.HandSize - len(held))
	if err != nil {
		return Outcome{}, err
	}
	for i := range s.hand {
		if !s.held[i] {
			s.hand[i], replacements = replacements[0], replacements[1:]
		}
	}

	result, err := evaluator.Evaluate(s.hand)
	if err != nil {
		return Outcome{}, err
	}

	payout := s.paytable.Payout(result, s.bet)
	s.balance += payout
	s.hands++

	outcome := Outcome{
		Hand:    slices.Clone(s.hand),
		Held:    held,
		Result:  result,
		Line:    paytable.LineFor(result),
		Bet:     s.bet,
		Payout:  payout,
		Balance: s.balance,
		Won:     payout > 0,
	}
	s.last = &outcome

	s.logger.Info("Hand settled",
		"hand", s.hands,
		"cards", deck.Format(s.hand),
		"result", result.String(),
		"bet", s.bet,
		"payout", payout,
		"balance", s.balance)

	if err := s.record(outcome); err != nil {
		s.logger.Warn("Failed to record hand", "error", err)
	}

	s.bet = 0
	s.phase = PhaseSettled
	if s.balance <= 0 {
		s.phase = PhaseBroke
		s.logger.Info("Balance exhausted", "hands", s.hands)
	}

	return outcome, nil
}

func (s *Session) record(o Outcome) error {
	if s.recorder == nil {
		return nil
	}
	return s.recorder.Record(history.Record{
		Session:  s.id,
		Hand:     s.hands,
		Time:     s.clock.Now(),
		Dealt:    history.CardNames(s.dealt),
		Held:     o.Held,
		Final:    history.CardNames(o.Hand),
		Category: o.Result.Category.String(),
		Result:   o.Result.Describe(),
		Bet:      o.Bet,
		Payout:   o.Payout,
		Balance:  o.Balance,
	})
}

package evaluator

import (
	"errors"
	"fmt"

	"github.com/lox/videopoker/internal/deck"
)

// HandSize is the number of cards in a video poker hand
const HandSize = 5

// ErrInvalidHandSize is returned when a hand does not hold exactly five cards
var ErrInvalidHandSize = errors.New("hand must have exactly 5 cards")

// shape is the rank and suit structure of a five card hand.
//
// sameCards/largeRank is the largest rank group and sameCards2/smallRank the
// next largest. Tracking two groups is only sufficient because five cards
// cannot hold three pairs, so shape must not be built for other hand sizes.
type shape struct {
	counts [deck.King + 1]int

	sameCards  int
	largeRank  deck.Rank
	sameCards2 int
	smallRank  deck.Rank

	flush    bool
	straight bool
	top      deck.Rank
}

func newShape(hand []deck.Card) *shape {
	s := &shape{sameCards: 1, sameCards2: 1}
	for _, c := range hand {
		s.counts[c.Rank()]++
	}

	for r := deck.King; r >= deck.Ace; r-- {
		n := s.counts[r]
		switch {
		case n > s.sameCards:
			if s.sameCards > 1 {
				s.sameCards2, s.smallRank = s.sameCards, s.largeRank
			}
			s.sameCards, s.largeRank = n, r
		case n > s.sameCards2:
			s.sameCards2, s.smallRank = n, r
		}
	}

	s.flush = true
	for _, c := range hand[1:] {
		if c.Suit() != hand[0].Suit() {
			s.flush = false
			break
		}
	}

	s.straight, s.top = s.findStraight()
	return s
}

// findStraight looks for five consecutive ranks that each appear exactly once.
// The ace plays low in A-2-3-4-5 (top 5) and high in 10-J-Q-K-A (top AceHigh).
func (s *shape) findStraight() (bool, deck.Rank) {
	for low := deck.Ace; low <= deck.Nine; low++ {
		if s.run(low, low+4) {
			return true, low + 4
		}
	}
	if s.run(deck.Ten, deck.King) && s.counts[deck.Ace] == 1 {
		return true, deck.AceHigh
	}
	return false, 0
}

func (s *shape) run(from, to deck.Rank) bool {
	for r := from; r <= to; r++ {
		if s.counts[r] != 1 {
			return false
		}
	}
	return true
}

// ranks lists ranks from high to low with aces high. With singles set only
// ranks held exactly once are included, otherwise every card's rank is.
func (s *shape) ranks(singles bool) []deck.Rank {
	var out []deck.Rank
	for _, r := range descending {
		n := s.counts[r]
		if singles && n != 1 {
			continue
		}
		for range n {
			out = append(out, r.High())
		}
	}
	return out
}

var descending = []deck.Rank{
	deck.Ace, deck.King, deck.Queen, deck.Jack, deck.Ten, deck.Nine, deck.Eight,
	deck.Seven, deck.Six, deck.Five, deck.Four, deck.Three, deck.Two,
}

type rule struct {
	category Category
	match    func(s *shape) bool
}

// rules are checked strongest first; the first match decides the category
var rules = []rule{
	{RoyalFlush, func(s *shape) bool { return s.straight && s.flush && s.top == deck.AceHigh }},
	{StraightFlush, func(s *shape) bool { return s.straight && s.flush }},
	{FourOfAKind, func(s *shape) bool { return s.sameCards >= 4 }},
	{FullHouse, func(s *shape) bool { return s.sameCards == 3 && s.sameCards2 == 2 }},
	{Flush, func(s *shape) bool { return s.flush }},
	{Straight, func(s *shape) bool { return s.straight }},
	{ThreeOfAKind, func(s *shape) bool { return s.sameCards == 3 }},
	{TwoPair, func(s *shape) bool { return s.sameCards == 2 && s.sameCards2 == 2 }},
	{OnePair, func(s *shape) bool { return s.sameCards == 2 }},
	{NoPair, func(*shape) bool { return true }},
}

func (s *shape) category() Category {
	for _, r := range rules {
		if r.match(s) {
			return r.category
		}
	}
	return NoPair
}

func (s *shape) result(c Category) Result {
	res := Result{Category: c}

	switch c {
	case RoyalFlush, StraightFlush, Straight:
		res.High = s.top
	case Flush, NoPair:
		all := s.ranks(false)
		res.High, res.Kickers = all[0], all[1:]
	case TwoPair:
		hi, lo := s.largeRank.High(), s.smallRank.High()
		if lo > hi {
			hi, lo = lo, hi
		}
		res.High, res.Low = hi, lo
		res.Kickers = s.ranks(true)
	case FullHouse:
		res.High, res.Low = s.largeRank.High(), s.smallRank.High()
	default:
		res.High = s.largeRank.High()
		res.Kickers = s.ranks(true)
	}

	return res
}

// Evaluate classifies a five card hand. Cards may be in any order.
func Evaluate(hand []deck.Card) (Result, error) {
	if len(hand) != HandSize {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(hand))
	}
	for i, c := range hand {
		if !c.Rank().Valid() || !c.Suit().Valid() {
			return Result{}, fmt.Errorf("%w: position %d", deck.ErrInvalidCard, i+1)
		}
	}

	s := newShape(hand)
	return s.result(s.category()), nil
}

// MustEvaluate is like Evaluate but panics on error
func MustEvaluate(hand []deck.Card) Result {
	r, err := Evaluate(hand)
	if err != nil {
		panic(err)
	}
	return r
}

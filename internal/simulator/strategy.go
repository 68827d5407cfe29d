package simulator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
)

// ErrUnknownStrategy is returned by StrategyByName for names it does not know
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy chooses which dealt cards to keep. It returns 1-based positions.
type Strategy interface {
	Hold(hand []deck.Card, r evaluator.Result) []int
}

// StrategyFunc adapts a function to Strategy
type StrategyFunc func(hand []deck.Card, r evaluator.Result) []int

// Hold calls f
func (f StrategyFunc) Hold(hand []deck.Card, r evaluator.Result) []int {
	return f(hand, r)
}

// HoldNothing always draws five new cards
type HoldNothing struct{}

// Hold returns no positions
func (HoldNothing) Hold([]deck.Card, evaluator.Result) []int {
	return nil
}

// HoldMadeHands keeps whatever already pays: the cards that make a pair of
// jacks or better, two pair, trips or quads, and all five cards of a
// straight, flush or better. Low pairs and high cards are thrown away.
type HoldMadeHands struct{}

// Hold returns the positions of the paying cards
func (HoldMadeHands) Hold(hand []deck.Card, r evaluator.Result) []int {
	switch r.Category {
	case evaluator.Straight, evaluator.Flush, evaluator.FullHouse,
		evaluator.StraightFlush, evaluator.RoyalFlush:
		return []int{1, 2, 3, 4, 5}
	case evaluator.FourOfAKind, evaluator.ThreeOfAKind:
		return positionsOf(hand, r.High)
	case evaluator.TwoPair:
		return positionsOf(hand, r.High, r.Low)
	case evaluator.OnePair:
		if r.IsRoyalPair() {
			return positionsOf(hand, r.High)
		}
	}
	return nil
}

// positionsOf returns the 1-based positions of cards with any of the given
// ranks, which are in ace-high form.
func positionsOf(hand []deck.Card, ranks ...deck.Rank) []int {
	var out []int
	for i, c := range hand {
		if slices.Contains(ranks, c.Rank().High()) {
			out = append(out, i+1)
		}
	}
	return out
}

var strategies = map[string]Strategy{
	"nothing": HoldNothing{},
	"made":    HoldMadeHands{},
}

// StrategyNames lists the names accepted by StrategyByName
func StrategyNames() []string {
	return []string{"made", "nothing"}
}

// StrategyByName returns a built-in strategy
func StrategyByName(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownStrategy, name, StrategyNames())
	}
	return s, nil
}

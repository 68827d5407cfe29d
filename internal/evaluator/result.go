package evaluator

import (
	"fmt"

	"github.com/lox/videopoker/internal/deck"
)

// Result is the outcome of evaluating a five card hand.
//
// High and Low carry the ranks that define the category, with aces reported
// as deck.AceHigh except at the bottom of a wheel:
//
//	OnePair       High = pair
//	TwoPair       High = higher pair, Low = lower pair
//	ThreeOfAKind  High = trips
//	FullHouse     High = trips, Low = pair
//	FourOfAKind   High = quads
//	Straight*     High = top card (5 for a wheel, AceHigh for broadway)
//	Flush, NoPair High = highest card
//
// Kickers holds the remaining ranks from high to low.
type Result struct {
	Category Category
	High     deck.Rank
	Low      deck.Rank
	Kickers  []deck.Rank
}

// IsRoyalPair reports whether the hand is a single pair of jacks or better
func (r Result) IsRoyalPair() bool {
	if r.Category != OnePair {
		return false
	}
	return r.High >= deck.Jack
}

// Describe returns the short message shown to the player after a draw
func (r Result) Describe() string {
	switch r.Category {
	case OnePair:
		return fmt.Sprintf("Pair of %s's", r.High)
	case ThreeOfAKind:
		return fmt.Sprintf("Three %s's", r.High)
	case FourOfAKind:
		return fmt.Sprintf("Four %s's", r.High)
	default:
		return r.Category.String()
	}
}

// String returns the category with the ranks that define it
func (r Result) String() string {
	switch r.Category {
	case OnePair, ThreeOfAKind, FourOfAKind:
		return r.Describe()
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s's and %s's", r.High, r.Low)
	case FullHouse:
		return fmt.Sprintf("Full House, %s's over %s's", r.High, r.Low)
	case Straight, StraightFlush, Flush, NoPair:
		return fmt.Sprintf("%s, %s high", r.Category, r.High)
	default:
		return r.Category.String()
	}
}

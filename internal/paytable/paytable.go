// Package paytable maps evaluated hands to bet multipliers.
package paytable

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/lox/videopoker/internal/evaluator"
)

var (
	// ErrUnknownHand is returned when an override names a hand the table does not pay
	ErrUnknownHand = errors.New("unknown hand")

	// ErrInvalidMultiplier is returned for negative multipliers
	ErrInvalidMultiplier = errors.New("multiplier cannot be negative")
)

// Line is a row of the pay table. It follows evaluator.Category except that
// one pair is split at jacks.
type Line uint8

const (
	NoPair Line = iota
	LowPair
	RoyalPair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

const numLines = int(RoyalFlush) + 1

var lineKeys = [numLines]string{
	"no_pair",
	"low_pair",
	"royal_pair",
	"two_pair",
	"three_of_a_kind",
	"straight",
	"flush",
	"full_house",
	"four_of_a_kind",
	"straight_flush",
	"royal_flush",
}

var lineLabels = [numLines]string{
	"No Pair",
	"Low Pair",
	"Royal Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

// Key returns the snake_case name used in configuration, e.g. "royal_pair"
func (l Line) Key() string {
	if int(l) >= numLines {
		return "unknown"
	}
	return lineKeys[l]
}

// String returns the label shown in the pay table
func (l Line) String() string {
	if int(l) >= numLines {
		return "Unknown"
	}
	return lineLabels[l]
}

// LineFor returns the pay table line an evaluated hand falls on
func LineFor(r evaluator.Result) Line {
	switch r.Category {
	case evaluator.OnePair:
		if r.IsRoyalPair() {
			return RoyalPair
		}
		return LowPair
	case evaluator.NoPair:
		return NoPair
	default:
		// categories above one pair keep their relative order
		return Line(int(r.Category) - int(evaluator.TwoPair) + int(TwoPair))
	}
}

// Paytable holds the multiplier for every line. The zero value pays nothing.
type Paytable struct {
	multipliers [numLines]int
}

// Default returns the Jacks or Better pay table
func Default() Paytable {
	return Paytable{multipliers: [numLines]int{
		NoPair:        0,
		LowPair:       0,
		RoyalPair:     1,
		TwoPair:       2,
		ThreeOfAKind:  3,
		Straight:      5,
		Flush:         6,
		FullHouse:     9,
		FourOfAKind:   25,
		StraightFlush: 50,
		RoyalFlush:    250,
	}}
}

// Multiplier returns how many times the bet an evaluated hand pays
func (p Paytable) Multiplier(r evaluator.Result) int {
	return p.multipliers[LineFor(r)]
}

// LineMultiplier returns the multiplier for a single line
func (p Paytable) LineMultiplier(l Line) int {
	if int(l) >= numLines {
		return 0
	}
	return p.multipliers[l]
}

// Payout returns the amount credited for a hand at the given bet
func (p Paytable) Payout(r evaluator.Result, bet int) int {
	return bet * p.Multiplier(r)
}

// Row is one printed line of the pay table
type Row struct {
	Line       Line
	Label      string
	Multiplier int
}

// Rows returns the paying lines from strongest to weakest
func (p Paytable) Rows() []Row {
	var rows []Row
	for l := RoyalFlush; l >= RoyalPair; l-- {
		rows = append(rows, Row{Line: l, Label: l.String(), Multiplier: p.multipliers[l]})
	}
	return rows
}

// WithOverrides returns a copy of the table with multipliers replaced by key.
// Keys are the names returned by Line.Key.
func (p Paytable) WithOverrides(overrides map[string]int) (Paytable, error) {
	out := p
	// sorted so the first bad key reported is stable
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		value := overrides[key]
		l, ok := lineByKey(key)
		if !ok {
			return Paytable{}, fmt.Errorf("%w: %q", ErrUnknownHand, key)
		}
		if value < 0 {
			return Paytable{}, fmt.Errorf("%w: %s = %d", ErrInvalidMultiplier, key, value)
		}
		out.multipliers[l] = value
	}
	return out, nil
}

// Keys returns every valid override key from weakest to strongest line
func Keys() []string {
	return slices.Clone(lineKeys[:])
}

func lineByKey(key string) (Line, bool) {
	i := slices.Index(lineKeys[:], key)
	if i < 0 {
		return 0, false
	}
	return Line(i), true
}

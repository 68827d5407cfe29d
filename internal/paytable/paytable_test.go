package paytable

import (
	"testing"

	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eval(t *testing.T, cards string) evaluator.Result {
	t.Helper()
	r, err := evaluator.Evaluate(deck.MustParseCards(cards))
	require.NoError(t, err)
	return r
}

func TestDefaultMultipliers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cards      string
		line       Line
		multiplier int
	}{
		{"royal flush", "As 10s Js Qs Ks", RoyalFlush, 250},
		{"straight flush", "9s 10s Js Qs Ks", StraightFlush, 50},
		{"four of a kind", "8s 8c 8d 8h Qs", FourOfAKind, 25},
		{"full house", "8s 8c 8d Js Jd", FullHouse, 9},
		{"flush", "9s 10s Js Qs 5s", Flush, 6},
		{"straight", "9s 10s Jc Qs Ks", Straight, 5},
		{"three of a kind", "8s 8c 8d Qs Js", ThreeOfAKind, 3},
		{"two pair", "3s 3d Jd Js 9d", TwoPair, 2},
		{"pair of jacks", "Js Jd 2c 5h 9s", RoyalPair, 1},
		{"pair of aces", "As Ad 2c 5h 9s", RoyalPair, 1},
		{"pair of tens", "10s 10d 2c 5h 9s", LowPair, 0},
		{"pair of threes", "3s 3d Qd Js 9d", LowPair, 0},
		{"no pair", "As 3d Qd Js 9d", NoPair, 0},
	}

	table := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := eval(t, tt.cards)
			assert.Equal(t, tt.line, LineFor(r))
			assert.Equal(t, tt.multiplier, table.Multiplier(r))
			assert.Equal(t, tt.multiplier*7, table.Payout(r, 7))
		})
	}
}

func TestLineForCoversEveryCategory(t *testing.T) {
	t.Parallel()

	seen := map[Line]bool{}
	for _, c := range evaluator.Categories() {
		r := evaluator.Result{Category: c, High: deck.AceHigh}
		l := LineFor(r)
		if c != evaluator.OnePair {
			assert.Equal(t, c.String(), l.String())
		}
		assert.False(t, seen[l], "line %s reached twice", l)
		seen[l] = true
	}
	assert.Equal(t, LowPair, LineFor(evaluator.Result{Category: evaluator.OnePair, High: deck.Ten}))
}

func TestRows(t *testing.T) {
	t.Parallel()

	rows := Default().Rows()
	require.Len(t, rows, 9)

	labels := make([]string, len(rows))
	multipliers := make([]int, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
		multipliers[i] = r.Multiplier
	}

	assert.Equal(t, []string{
		"Royal Flush", "Straight Flush", "Four of a Kind", "Full House",
		"Flush", "Straight", "Three of a Kind", "Two Pair", "Royal Pair",
	}, labels)
	assert.Equal(t, []int{250, 50, 25, 9, 6, 5, 3, 2, 1}, multipliers)
}

func TestWithOverrides(t *testing.T) {
	t.Parallel()

	base := Default()
	table, err := base.WithOverrides(map[string]int{
		"full_house": 8,
		"flush":      5,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, table.LineMultiplier(FullHouse))
	assert.Equal(t, 5, table.LineMultiplier(Flush))
	assert.Equal(t, 250, table.LineMultiplier(RoyalFlush))

	// the receiver is left untouched
	assert.Equal(t, 9, base.LineMultiplier(FullHouse))
}

func TestWithOverridesErrors(t *testing.T) {
	t.Parallel()

	_, err := Default().WithOverrides(map[string]int{"five_of_a_kind": 1000})
	assert.ErrorIs(t, err, ErrUnknownHand)

	_, err = Default().WithOverrides(map[string]int{"royal_pair": -1})
	assert.ErrorIs(t, err, ErrInvalidMultiplier)
}

func TestKeys(t *testing.T) {
	t.Parallel()

	keys := Keys()
	require.Len(t, keys, 11)
	assert.Equal(t, "no_pair", keys[0])
	assert.Equal(t, "royal_flush", keys[len(keys)-1])
	assert.Equal(t, "royal_pair", RoyalPair.Key())
	assert.Equal(t, "unknown", Line(99).Key())
	assert.Equal(t, 0, Default().LineMultiplier(Line(99)))
}

func TestZeroValuePaysNothing(t *testing.T) {
	t.Parallel()

	var table Paytable
	assert.Equal(t, 0, table.Payout(eval(t, "As 10s Js Qs Ks"), 100))
}

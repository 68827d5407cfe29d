package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"
)

// StandardSize is the number of cards in one deck
const StandardSize = NumSuits * NumRanks

var (
	// ErrInsufficientCards is returned when a deal asks for more cards than remain
	ErrInsufficientCards = errors.New("not enough cards to deal")

	// ErrInvalidDeckCount is returned when a deck is built from fewer than one 52-card set
	ErrInvalidDeckCount = errors.New("deck count must be at least 1")

	// ErrInvalidDealCount is returned for a negative deal count
	ErrInvalidDealCount = errors.New("deal count cannot be negative")

	// ErrNilRand is returned when a deck is built without a random source
	ErrNilRand = errors.New("deck needs a random source")
)

// Deck is one or more 52-card decks dealt without replacement.
//
// The original sequence is fixed at construction; the draw pile starts as a
// copy of it, shrinks as cards are dealt and is restored by Reset. A Deck is
// owned by a single session and is not safe for concurrent use.
type Deck struct {
	original []Card
	pile     []Card
	decks    int
	rng      *rand.Rand
}

// NewDeck creates n decks in fixed order: suits clubs to spades and, within
// each suit, ace to king. The draw pile is unshuffled; call Shuffle before
// dealing. The deck shuffles with rng, which callers seed from their own
// clock or a fixed seed.
func NewDeck(n int, rng *rand.Rand) (*Deck, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDeckCount, n)
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	d := &Deck{
		original: make([]Card, 0, n*StandardSize),
		decks:    n,
		rng:      rng,
	}

	for range n {
		for suit := Clubs; suit <= Spades; suit++ {
			for rank := Ace; rank <= King; rank++ {
				d.original = append(d.original, Card{rank: rank, suit: suit})
			}
		}
	}

	d.Reset()
	return d, nil
}

// Shuffle randomizes the order of the draw pile in place using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.pile) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.pile[i], d.pile[j] = d.pile[j], d.pile[i]
	}
}

// Deal removes the first k cards from the draw pile and returns them in pile
// order. If fewer than k cards remain nothing is dealt and an error wrapping
// ErrInsufficientCards is returned.
func (d *Deck) Deal(k int) ([]Card, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDealCount, k)
	}
	if k > len(d.pile) {
		return nil, fmt.Errorf("%w: want %d, %d remain", ErrInsufficientCards, k, len(d.pile))
	}

	cards := make([]Card, k)
	copy(cards, d.pile[:k])
	d.pile = d.pile[k:]
	return cards, nil
}

// Reset restores the draw pile to the full original sequence, in original order
func (d *Deck) Reset() {
	d.pile = slices.Clone(d.original)
}

// Remain returns the number of cards left in the draw pile
func (d *Deck) Remain() int {
	return len(d.pile)
}

// Size returns the number of cards in a full draw pile
func (d *Deck) Size() int {
	return len(d.original)
}

// Decks returns how many 52-card decks this deck was built from
func (d *Deck) Decks() int {
	return d.decks
}

// Cards returns a copy of the draw pile
func (d *Deck) Cards() []Card {
	return slices.Clone(d.pile)
}

// String lists the draw pile
func (d *Deck) String() string {
	return "[" + Format(d.pile) + "]"
}

// Format joins the short forms of cards with spaces, e.g. "A♠ 10♦ Q♥"
func Format(cards []Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}

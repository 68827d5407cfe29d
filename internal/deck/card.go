package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidCard is returned when a card has a rank or suit outside the valid range
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit. Suits carry no ordering.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the long suit name, e.g. "Spades"
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Rank represents a card rank. Aces are stored as 1.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// AceHigh is the value an ace takes when it ranks above a king.
// It never appears on a Card; evaluation results use it.
const AceHigh Rank = King + 1

// NumRanks is the number of ranks in a suit
const NumRanks = 13

var rankNames = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// String returns the display form of a rank: A, 2..10, J, Q, K
func (r Rank) String() string {
	if r < Ace || r > AceHigh {
		return "?"
	}
	return rankNames[r]
}

// Valid reports whether r is a rank a card can hold (1-13)
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// High returns the rank with aces counted above kings
func (r Rank) High() Rank {
	if r == Ace {
		return AceHigh
	}
	return r
}

// Card represents a playing card. The zero value is not a valid card.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card, rejecting ranks outside 1-13 and suits outside 0-3
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidCard, int(rank))
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d", ErrInvalidCard, int(suit))
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics on invalid input.
// It is intended for static tables and tests.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the card's rank (1-13)
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the card's suit (0-3)
func (c Card) Suit() Suit {
	return c.suit
}

// String returns the short display form of a card (e.g., "A♠", "10♦")
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Name returns the long display form of a card (e.g., "A Spades")
func (c Card) Name() string {
	return c.rank.String() + " " + c.suit.Name()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.suit.IsRed()
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.rank >= Jack && c.rank <= King
}

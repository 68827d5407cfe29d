package deck

import (
	"fmt"
	"unicode"
)

// ParseCard parses a single card such as "As", "10h", "Td" or "Q♠"
func ParseCard(s string) (Card, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Card{}, err
	}
	if len(cards) != 1 {
		return Card{}, fmt.Errorf("%w: %q is not a single card", ErrInvalidCard, s)
	}
	return cards[0], nil
}

// ParseCards parses a list of cards. Cards may be separated by spaces or
// commas ("As Ks, Qs") or written back to back ("AsKsQsJsTs").
// The empty string yields an empty slice.
func ParseCards(s string) ([]Card, error) {
	runes := []rune(s)
	cards := []Card{}

	for i := 0; i < len(runes); {
		if isSeparator(runes[i]) {
			i++
			continue
		}

		rank, width, ok := parseRank(runes[i:])
		if !ok {
			return nil, fmt.Errorf("%w: bad rank %q in %q", ErrInvalidCard, string(runes[i]), s)
		}
		i += width

		if i >= len(runes) {
			return nil, fmt.Errorf("%w: missing suit in %q", ErrInvalidCard, s)
		}
		suit, ok := parseSuit(runes[i])
		if !ok {
			return nil, fmt.Errorf("%w: bad suit %q in %q", ErrInvalidCard, string(runes[i]), s)
		}
		i++

		cards = append(cards, Card{rank: rank, suit: suit})
	}

	return cards, nil
}

// MustParseCards is like ParseCards but panics on error
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func parseRank(runes []rune) (Rank, int, bool) {
	if len(runes) >= 2 && runes[0] == '1' && runes[1] == '0' {
		return Ten, 2, true
	}

	switch unicode.ToUpper(runes[0]) {
	case 'A':
		return Ace, 1, true
	case 'K':
		return King, 1, true
	case 'Q':
		return Queen, 1, true
	case 'J':
		return Jack, 1, true
	case 'T':
		return Ten, 1, true
	}

	if runes[0] >= '2' && runes[0] <= '9' {
		return Rank(runes[0] - '0'), 1, true
	}

	return 0, 0, false
}

func parseSuit(r rune) (Suit, bool) {
	switch unicode.ToLower(r) {
	case 'c', '♣', '♧':
		return Clubs, true
	case 'd', '♦', '♢':
		return Diamonds, true
	case 'h', '♥', '♡':
		return Hearts, true
	case 's', '♠', '♤':
		return Spades, true
	default:
		return 0, false
	}
}

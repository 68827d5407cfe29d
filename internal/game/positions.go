package game

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/lox/videopoker/internal/evaluator"
)

// ParsePositions reads the cards a player wants to keep, e.g. "1 4 5",
// "145" or "1,4,5". Positions are 1-based, returned sorted without
// duplicates. A blank line keeps nothing.
func ParsePositions(s string) ([]int, error) {
	positions := []int{}
	for _, r := range s {
		switch {
		case r == ',' || unicode.IsSpace(r):
			continue
		case r >= '1' && r <= '0'+evaluator.HandSize:
			pos := int(r - '0')
			if !slices.Contains(positions, pos) {
				positions = append(positions, pos)
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidPosition, string(r))
		}
	}
	slices.Sort(positions)
	return positions, nil
}

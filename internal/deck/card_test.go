package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rank    Rank
		suit    Suit
		wantErr bool
	}{
		{"ace of spades", Ace, Spades, false},
		{"ten of clubs", Ten, Clubs, false},
		{"king of hearts", King, Hearts, false},
		{"rank zero", 0, Clubs, true},
		{"rank fourteen", 14, Clubs, true},
		{"negative suit", Ace, -1, true},
		{"suit four", Ten, 4, true},
		{"suit five", Ten, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := NewCard(tt.rank, tt.suit)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				assert.Equal(t, Card{}, card)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rank, card.Rank())
			assert.Equal(t, tt.suit, card.Suit())
		})
	}
}

func TestMustCardPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustCard(0, Spades) })
	assert.NotPanics(t, func() { MustCard(Queen, Diamonds) })
}

func TestCardDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card  Card
		short string
		long  string
	}{
		{MustCard(Ace, Spades), "A♠", "A Spades"},
		{MustCard(Ten, Clubs), "10♣", "10 Clubs"},
		{MustCard(Jack, Diamonds), "J♦", "J Diamonds"},
		{MustCard(Queen, Hearts), "Q♥", "Q Hearts"},
		{MustCard(King, Spades), "K♠", "K Spades"},
		{MustCard(Two, Hearts), "2♥", "2 Hearts"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.short, tt.card.String())
		assert.Equal(t, tt.long, tt.card.Name())
	}
}

func TestRankHigh(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AceHigh, Ace.High())
	assert.Equal(t, King, King.High())
	assert.Equal(t, "A", AceHigh.String())
	assert.Equal(t, "?", Rank(0).String())
	assert.False(t, AceHigh.Valid())
}

func TestCardColour(t *testing.T) {
	t.Parallel()

	assert.True(t, MustCard(Ace, Hearts).IsRed())
	assert.True(t, MustCard(Ace, Diamonds).IsRed())
	assert.False(t, MustCard(Ace, Clubs).IsRed())
	assert.False(t, MustCard(Ace, Spades).IsRed())
	assert.True(t, MustCard(Jack, Spades).IsFaceCard())
	assert.False(t, MustCard(Ace, Spades).IsFaceCard())
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				MustCard(Ace, Spades),
				MustCard(King, Spades),
				MustCard(Queen, Spades),
				MustCard(Jack, Spades),
				MustCard(Ten, Spades),
			},
		},
		{
			name:  "spaced with tens",
			input: "10h 9d 8c",
			expected: []Card{
				MustCard(Ten, Hearts),
				MustCard(Nine, Diamonds),
				MustCard(Eight, Clubs),
			},
		},
		{
			name:  "comma separated symbols",
			input: "A♠, 10♦,Q♥",
			expected: []Card{
				MustCard(Ace, Spades),
				MustCard(Ten, Diamonds),
				MustCard(Queen, Hearts),
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				MustCard(Ace, Spades),
				MustCard(King, Hearts),
				MustCard(Queen, Diamonds),
				MustCard(Jack, Clubs),
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "missing suit",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:    "one is not a rank",
			input:   "1s",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	card, err := ParseCard("Jd")
	require.NoError(t, err)
	assert.Equal(t, MustCard(Jack, Diamonds), card)

	_, err = ParseCard("JdQd")
	assert.ErrorIs(t, err, ErrInvalidCard)

	_, err = ParseCard("")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestMustParseCards(t *testing.T) {
	t.Parallel()

	assert.Len(t, MustParseCards("AsKs"), 2)
	assert.Panics(t, func() { MustParseCards("invalid") })
}

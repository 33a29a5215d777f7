package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nawan/internal/deck"
)

func cards(cs ...deck.Card) []deck.Card { return cs }

func card(suit deck.Suit, rank deck.Rank) deck.Card { return deck.NewCard(suit, rank) }

func TestScoreExamples(t *testing.T) {
	tests := []struct {
		name  string
		hand  []deck.Card
		score int
	}{
		{
			name:  "trio of aces is the best possible hand",
			hand:  cards(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Ace), card(deck.Clubs, deck.Ace)),
			score: 0,
		},
		{
			name:  "trio of twos is the weakest trio",
			hand:  cards(card(deck.Spades, deck.Two), card(deck.Hearts, deck.Two), card(deck.Clubs, deck.Two)),
			score: 12,
		},
		{
			name:  "suited run scored off its high card",
			hand:  cards(card(deck.Spades, deck.Seven), card(deck.Spades, deck.Nine), card(deck.Spades, deck.Two)),
			score: 105,
		},
		{
			name:  "mixed-suit face trio",
			hand:  cards(card(deck.Spades, deck.Jack), card(deck.Hearts, deck.Queen), card(deck.Clubs, deck.King)),
			score: 201,
		},
		{
			name: "nine points with an ace kicker is the best point hand",
			// A(1) + 8 + K(0) = 9 points, max rank 14
			hand:  cards(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Eight), card(deck.Clubs, deck.King)),
			score: 300,
		},
		{
			name: "zero points is the weakest bucket",
			// 10 + J + 10 = 0 points, not a face trio because of the tens
			hand:  cards(card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Jack), card(deck.Clubs, deck.Ten)),
			score: 300 + 9*100 + (14 - 11),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.hand)
			require.NoError(t, err)
			assert.Equal(t, tt.score, got)
		})
	}
}

func TestTiersStrictlyOrdered(t *testing.T) {
	// Weakest representative of each tier must still beat the strongest
	// representative of the tier below.
	weakestTrio := cards(card(deck.Spades, deck.Two), card(deck.Hearts, deck.Two), card(deck.Clubs, deck.Two))
	strongestSuited := cards(card(deck.Spades, deck.Ace), card(deck.Spades, deck.King), card(deck.Spades, deck.Queen))
	weakestSuited := cards(card(deck.Spades, deck.Two), card(deck.Spades, deck.Three), card(deck.Spades, deck.Five))
	strongestFace := cards(card(deck.Spades, deck.King), card(deck.Hearts, deck.King), card(deck.Clubs, deck.Queen))
	weakestFace := cards(card(deck.Spades, deck.Jack), card(deck.Hearts, deck.Jack), card(deck.Clubs, deck.Queen))
	strongestPoints := cards(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Eight), card(deck.Clubs, deck.King))

	score := func(h []deck.Card) int {
		s, err := Score(h)
		require.NoError(t, err)
		return s
	}

	assert.Less(t, score(weakestTrio), score(strongestSuited))
	assert.Less(t, score(weakestSuited), score(strongestFace))
	assert.Less(t, score(weakestFace), score(strongestPoints))
}

func TestSuitedTrioScoresAsTrio(t *testing.T) {
	// Impossible off a real deck, but the trio check must win the tie
	// over the suited check.
	h := cards(card(deck.Spades, deck.Nine), card(deck.Spades, deck.Nine), card(deck.Spades, deck.Nine))
	assert.Equal(t, Trio, Categorize(h))

	got, err := Score(h)
	require.NoError(t, err)
	assert.Equal(t, 14-9, got)
}

func TestDisplayPointsPermutationInvariant(t *testing.T) {
	h := cards(card(deck.Spades, deck.Four), card(deck.Hearts, deck.Seven), card(deck.Clubs, deck.Ace))
	want := DisplayPoints(h)
	assert.Equal(t, (4+7+1)%10, want)

	perms := [][]deck.Card{
		{h[0], h[2], h[1]},
		{h[1], h[0], h[2]},
		{h[1], h[2], h[0]},
		{h[2], h[0], h[1]},
		{h[2], h[1], h[0]},
	}
	for _, p := range perms {
		assert.Equal(t, want, DisplayPoints(p))
	}

	// Suits never affect points.
	resuited := cards(card(deck.Diamonds, deck.Four), card(deck.Diamonds, deck.Seven), card(deck.Diamonds, deck.Ace))
	assert.Equal(t, want, DisplayPoints(resuited))
}

func TestDisplayPointsRange(t *testing.T) {
	// Tens and faces are worth zero, aces one.
	h := cards(card(deck.Spades, deck.Ten), card(deck.Hearts, deck.King), card(deck.Clubs, deck.Queen))
	assert.Equal(t, 0, DisplayPoints(h))

	h = cards(card(deck.Spades, deck.Nine), card(deck.Hearts, deck.Nine), card(deck.Clubs, deck.Ace))
	assert.Equal(t, 9, DisplayPoints(h))
}

func TestDegenerateHandSize(t *testing.T) {
	short := cards(card(deck.Spades, deck.Ace))

	score, err := Score(short)
	require.ErrorIs(t, err, ErrHandSize)
	assert.Equal(t, WorstScore, score)

	assert.Equal(t, 0, DisplayPoints(short))
	assert.Equal(t, Points, Categorize(short))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "KORA", Label(cards(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Ace), card(deck.Clubs, deck.Ace))))
	assert.Equal(t, "NAWAN", Label(cards(card(deck.Spades, deck.Two), card(deck.Spades, deck.Nine), card(deck.Spades, deck.King))))
	assert.Equal(t, "SIANG", Label(cards(card(deck.Spades, deck.Jack), card(deck.Hearts, deck.Queen), card(deck.Clubs, deck.King))))
	assert.Equal(t, "2 Pts", Label(cards(card(deck.Spades, deck.Four), card(deck.Hearts, deck.Seven), card(deck.Clubs, deck.Ace))))
}

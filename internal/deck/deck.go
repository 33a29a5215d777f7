package deck

import (
	rand "math/rand/v2"
)

// HandSize is the number of cards dealt to each seat.
const HandSize = 3

// Deck is a freshly shuffled ordering of the 52 distinct cards. A deck is
// materialized per hand and not retained after dealing; there is no draw
// pile or discard tracking.
type Deck struct {
	cards []Card
}

// New creates a standard 52-card deck, uniformly shuffled with the provided
// source. Passing the rng in keeps shuffles reproducible under test seeds.
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.shuffle(rng)
	return d
}

// shuffle applies a Fisher-Yates permutation
func (d *Deck) shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Hands slices the first HandSize*n cards into n disjoint 3-card hands, one
// per seat in seat order. Every seat gets cards regardless of whether it is
// participating in the hand; a non-participating seat's cards are inert.
func (d *Deck) Hands(n int) [][]Card {
	hands := make([][]Card, n)
	for i := 0; i < n; i++ {
		hand := make([]Card, HandSize)
		copy(hand, d.cards[i*HandSize:(i+1)*HandSize])
		hands[i] = hand
	}
	return hands
}

// Cards returns the full shuffled ordering, top of the deck first.
func (d *Deck) Cards() []Card {
	return d.cards
}

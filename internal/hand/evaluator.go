// Package hand scores fixed three-card hands. Scores form a single total
// order where lower is stronger, split into four disjoint tiers: trios
// ("kora"), suited runs ("nawan"), face trios ("siang"), then point hands
// ranked by their digit sum mod 10.
package hand

import (
	"errors"
	"fmt"

	"github.com/lox/nawan/internal/deck"
)

// Score tier bases. Each tier occupies its own bracket so any hand in a
// stronger tier beats every hand in a weaker one.
const (
	baseTrio      = 0
	baseSuitedRun = 100
	baseFaceTrio  = 200
	basePoints    = 300

	// WorstScore is the defensive sentinel for degenerate input. It sits
	// beyond every reachable point-hand score.
	WorstScore = 9999
)

// ErrHandSize is returned when a hand does not have exactly three cards.
// Correct dealing never produces such a hand; callers treat the sentinel
// score as an automatic loss rather than crashing.
var ErrHandSize = errors.New("hand must have exactly 3 cards")

// Category identifies the display tier of a hand
type Category int

const (
	Trio Category = iota
	SuitedRun
	FaceTrio
	Points
)

// String returns the traditional tier name. The label is cosmetic; winner
// resolution uses only the numeric score.
func (c Category) String() string {
	switch c {
	case Trio:
		return "KORA"
	case SuitedRun:
		return "NAWAN"
	case FaceTrio:
		return "SIANG"
	default:
		return "Pts"
	}
}

// Score computes the comparison score for a three-card hand. Lower is
// stronger: AAA scores 0, the weakest point hand scores just under 1300.
// Two hands with an identical score are a true tie and split the pot.
func Score(cards []deck.Card) (int, error) {
	if len(cards) != deck.HandSize {
		return WorstScore, ErrHandSize
	}

	maxRank := maxCardRank(cards)

	switch {
	case isTrio(cards):
		return baseTrio + (14 - int(cards[0].Rank)), nil
	case isSuitedRun(cards):
		return baseSuitedRun + (14 - maxRank), nil
	case isFaceTrio(cards):
		return baseFaceTrio + (14 - maxRank), nil
	default:
		points := displayPoints(cards)
		// (9-points)*100 makes 9 beat 8 and so on; the rank term breaks
		// ties within the same points bucket.
		return basePoints + (9-points)*100 + (14 - maxRank), nil
	}
}

// Categorize returns the display tier of a hand, with "<n> Pts" style text
// available via Label.
func Categorize(cards []deck.Card) Category {
	if len(cards) != deck.HandSize {
		return Points
	}
	switch {
	case isTrio(cards):
		return Trio
	case isSuitedRun(cards):
		return SuitedRun
	case isFaceTrio(cards):
		return FaceTrio
	default:
		return Points
	}
}

// Label returns the display text for a hand, e.g. "KORA" or "7 Pts".
func Label(cards []deck.Card) string {
	cat := Categorize(cards)
	if cat == Points {
		return fmt.Sprintf("%d Pts", DisplayPoints(cards))
	}
	return cat.String()
}

// DisplayPoints returns the point total of a hand in [0,9]: aces count 1,
// tens and face cards count 0, everything else its face value, summed mod
// 10. Invariant under suit and card order.
func DisplayPoints(cards []deck.Card) int {
	if len(cards) != deck.HandSize {
		return 0
	}
	return displayPoints(cards)
}

func displayPoints(cards []deck.Card) int {
	total := 0
	for _, c := range cards {
		total += cardPoints(c)
	}
	return total % 10
}

func cardPoints(c deck.Card) int {
	switch {
	case c.Rank == deck.Ace:
		return 1
	case c.Rank >= deck.Ten:
		return 0
	default:
		return int(c.Rank)
	}
}

func isTrio(cards []deck.Card) bool {
	return cards[0].Rank == cards[1].Rank && cards[1].Rank == cards[2].Rank
}

func isSuitedRun(cards []deck.Card) bool {
	return cards[0].Suit == cards[1].Suit && cards[1].Suit == cards[2].Suit
}

func isFaceTrio(cards []deck.Card) bool {
	for _, c := range cards {
		if !c.IsFaceCard() {
			return false
		}
	}
	return true
}

func maxCardRank(cards []deck.Card) int {
	max := int(cards[0].Rank)
	for _, c := range cards[1:] {
		if int(c.Rank) > max {
			max = int(c.Rank)
		}
	}
	return max
}

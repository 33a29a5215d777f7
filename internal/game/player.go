package game

import (
	"github.com/lox/nawan/internal/deck"
)

// Status represents a player's participation in the current hand
type Status int

const (
	// StatusWaiting means the player has no cards and takes no part in
	// turn order or pot computation (pre-first-hand, or could not ante).
	StatusWaiting Status = iota
	// StatusActive means the player is live in the current hand
	StatusActive
	// StatusPacked means the player folded; committed chips stay in the pot
	StatusPacked
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "Waiting"
	case StatusActive:
		return "Active"
	case StatusPacked:
		return "Packed"
	default:
		return "Unknown"
	}
}

// Player represents one seat at the table. Seats are created once at
// startup and never removed; a seat that cannot ante simply sits out the
// hand and becomes eligible again when solvent.
type Player struct {
	ID     string
	Name   string
	Avatar string // presentation only

	Balance    int
	Cards      []deck.Card
	Seen       bool
	Status     Status
	CurrentBet int  // chips committed this hand, reset at hand boundaries
	Dealer     bool // reserved, unused by current rules
}

// clone returns a deep copy of the player for snapshots
func (p Player) clone() Player {
	cp := p
	if p.Cards != nil {
		cp.Cards = make([]deck.Card, len(p.Cards))
		copy(cp.Cards, p.Cards)
	}
	return cp
}

package game

import "errors"

// Validation sentinels. A transition that returns one of these has mutated
// nothing; callers may safely ignore them (the UI surfaces them only as
// disabled controls) but they never panic through to the presentation layer.
var (
	ErrNotYourTurn       = errors.New("not this seat's turn")
	ErrWrongPhase        = errors.New("operation not valid in current phase")
	ErrSeatOutOfRange    = errors.New("seat index out of range")
	ErrPlayerNotActive   = errors.New("player is not active in this hand")
	ErrAlreadySeen       = errors.New("player has already seen their cards")
	ErrInvalidMultiplier = errors.New("bet multiplier must be 1 or 2")
	ErrShowNotHeadsUp    = errors.New("show requires exactly two active players")
	ErrNotEnoughPlayers  = errors.New("need at least two solvent players to deal")
)

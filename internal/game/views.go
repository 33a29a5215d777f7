package game

// Derived read-only views for the presentation layer, so it never has to
// duplicate betting rules.

// BetAmounts returns what the given seat would pay right now at 1x and 2x
// multipliers, accounting for the seen/blind doubling.
func (e *Engine) BetAmounts(seat int) (x1, x2 int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if seat < 0 || seat >= len(e.state.Players) {
		return 0, 0
	}
	base := e.state.CurrentStake
	if e.state.Players[seat].Seen {
		base *= 2
	}
	return base, base * 2
}

// PotFull reports whether the pot has reached the table limit
func (e *Engine) PotFull() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Pot >= e.cfg.PotLimit
}

// PotLimit returns the configured hard ceiling for the pot
func (e *Engine) PotLimit() int {
	return e.cfg.PotLimit
}

// Ante returns the configured ante amount
func (e *Engine) Ante() int {
	return e.cfg.Ante
}

// HumanSeat returns the seat controlled by the user, or -1 if none
func (e *Engine) HumanSeat() int {
	return e.cfg.HumanSeat
}

// CurrentSeat returns the seat whose turn it is
func (e *Engine) CurrentSeat() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.CurrentTurn
}

// IsHumanTurn reports whether the hand is live and waiting on the user
func (e *Engine) IsHumanTurn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Phase == PhaseBetting && e.cfg.HumanSeat == e.state.CurrentTurn
}

// ActiveCount returns the number of players live in the hand
func (e *Engine) ActiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.ActiveCount()
}

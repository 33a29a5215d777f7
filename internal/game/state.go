package game

// Phase represents the hand lifecycle phase. Phases only move forward:
// Idle -> Betting -> Showdown, then back to Betting via a new hand.
type Phase int

const (
	PhaseIdle Phase = iota
	// PhaseDealing is reserved for animated presentation layers; the
	// engine deals atomically so it is never observable in a snapshot.
	PhaseDealing
	PhaseBetting
	PhaseShowdown
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseDealing:
		return "Dealing"
	case PhaseBetting:
		return "Betting"
	case PhaseShowdown:
		return "Showdown"
	default:
		return "Unknown"
	}
}

// State is an immutable snapshot of the table. The engine hands out deep
// copies; consumers must treat a State as read-only.
type State struct {
	// HandID identifies the hand being played; empty until the first deal.
	HandID       string
	Players      []Player
	Pot          int
	CurrentTurn  int
	CurrentStake int
	Phase        Phase
	// WinnerIDs is nil until showdown, then holds the winning player ids.
	WinnerIDs []string
	// LastAction is a human-readable trace of the most recent transition.
	// Log/display only, never authoritative.
	LastAction string
	// Generation increments on every applied transition. Deferred work
	// (AI think timers) captures it at scheduling time and drops itself
	// if the state has moved on.
	Generation uint64
}

// clone returns a deep copy of the state
func (s State) clone() State {
	cp := s
	cp.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		cp.Players[i] = p.clone()
	}
	if s.WinnerIDs != nil {
		cp.WinnerIDs = make([]string, len(s.WinnerIDs))
		copy(cp.WinnerIDs, s.WinnerIDs)
	}
	return cp
}

// ActiveCount returns the number of players live in the hand
func (s State) ActiveCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Status == StatusActive {
			n++
		}
	}
	return n
}

// CurrentPlayer returns the player whose turn it is
func (s State) CurrentPlayer() Player {
	return s.Players[s.CurrentTurn]
}

// IsWinner reports whether the given player id is among the winners
func (s State) IsWinner(id string) bool {
	for _, w := range s.WinnerIDs {
		if w == id {
			return true
		}
	}
	return false
}

// Package ai implements the scripted opponent: a randomized decision policy
// over the hand score, and a clock-driven scheduler that paces opponent
// turns with cancellable think delays.
package ai

import (
	rand "math/rand/v2"

	"github.com/lox/nawan/internal/game"
	"github.com/lox/nawan/internal/hand"
)

// Action is what the policy wants to do with its turn. Every decision
// terminates in exactly one engine call.
type Action int

const (
	ActionBet1 Action = iota
	ActionBet2
	ActionPack
	ActionShow
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case ActionBet1:
		return "bet 1x"
	case ActionBet2:
		return "bet 2x"
	case ActionPack:
		return "pack"
	case ActionShow:
		return "show"
	default:
		return "unknown"
	}
}

// Score buckets for seen hands. Anything under strongScore is worth
// pressing; under mediumScore is worth staying in; beyond that the hand is
// mostly a fold.
const (
	strongScore = 400
	mediumScore = 800
)

// Policy makes randomized decisions from a fixed table keyed by seen/blind
// status and hand strength. It is a heuristic, not an optimizer.
type Policy struct {
	rng *rand.Rand
}

// NewPolicy creates a policy with the given randomness source
func NewPolicy(rng *rand.Rand) *Policy {
	return &Policy{rng: rng}
}

// ShouldPeek decides whether a still-blind player looks at their cards
// before acting. Fixed low probability.
func (p *Policy) ShouldPeek() bool {
	return p.rng.Float64() > 0.8
}

// Decide chooses the action for the given seat from a read-only snapshot.
// potLimit is the table's hard pot ceiling.
func (p *Policy) Decide(st game.State, seat int, potLimit int) Action {
	player := st.Players[seat]
	score, _ := hand.Score(player.Cards)
	active := st.ActiveCount()

	// One betting unit from this seat's perspective.
	unit := st.CurrentStake
	if player.Seen {
		unit *= 2
	}

	// Heads-up with a seen strong hand: sometimes just force the showdown.
	if active == 2 && player.Seen && score < strongScore && p.rng.Float64() > 0.7 {
		return ActionShow
	}

	// The next unit would hit the ceiling: resolve rather than bet into it.
	if st.Pot+unit >= potLimit {
		if active == 2 {
			return ActionShow
		}
		return ActionPack
	}

	roll := p.rng.Float64()

	if player.Seen {
		switch {
		case score < strongScore:
			if roll > 0.4 {
				return ActionBet2
			}
			return ActionBet1
		case score < mediumScore:
			if roll > 0.8 {
				return ActionBet2
			}
			if roll < 0.1 {
				return ActionPack
			}
			return ActionBet1
		default:
			if roll > 0.6 {
				return ActionPack
			}
			return ActionBet1
		}
	}

	// Blind play: mostly call, rare raise, rare fold.
	if roll > 0.9 {
		return ActionBet2
	}
	if roll < 0.05 {
		return ActionPack
	}
	return ActionBet1
}

// Apply executes the decided action against the engine for the given seat
func Apply(engine *game.Engine, seat int, action Action) error {
	switch action {
	case ActionBet2:
		_, err := engine.Bet(seat, 2)
		return err
	case ActionPack:
		return engine.Pack(seat)
	case ActionShow:
		return engine.Show(seat)
	default:
		_, err := engine.Bet(seat, 1)
		return err
	}
}

package ai

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/nawan/internal/game"
)

// Scheduler drives opponent turns. It subscribes to the engine's event bus;
// whenever the turn lands on a non-human seat it schedules a two-stage
// think via the injected clock: stage one may reveal the hand, stage two
// applies exactly one policy decision.
//
// Timers are the only deferred work in the system. Every fired callback
// re-validates the phase, the expected seat and the state generation before
// touching the engine, so a human action or a new hand racing a timer
// leaves the stale callback as a no-op. Tests drive this with quartz.Mock.
type Scheduler struct {
	engine     *game.Engine
	policy     *Policy
	clock      quartz.Clock
	logger     *log.Logger
	thinkDelay time.Duration
	actDelay   time.Duration

	mu      sync.Mutex
	pending *quartz.Timer
}

// NewScheduler creates a scheduler for the engine's opponents
func NewScheduler(engine *game.Engine, policy *Policy, clock quartz.Clock, logger *log.Logger, thinkDelay, actDelay time.Duration) *Scheduler {
	return &Scheduler{
		engine:     engine,
		policy:     policy,
		clock:      clock,
		logger:     logger,
		thinkDelay: thinkDelay,
		actDelay:   actDelay,
	}
}

// OnEvent implements game.EventSubscriber
func (s *Scheduler) OnEvent(event game.GameEvent) {
	switch ev := event.(type) {
	case game.TurnChangeEvent:
		s.onTurn(ev.Seat, ev.Generation)
	case game.ShowdownEvent:
		s.Cancel()
	}
}

func (s *Scheduler) onTurn(seat int, generation uint64) {
	if seat == s.engine.HumanSeat() {
		// The human superseded any pending opponent decision.
		s.Cancel()
		return
	}
	s.schedule(s.thinkDelay, func() { s.think(seat, generation) })
}

// think is stage one: optionally peek at the cards, then schedule the act
// stage against the post-peek generation.
func (s *Scheduler) think(seat int, generation uint64) {
	snap := s.engine.Snapshot()
	if stale(snap, seat, generation) {
		s.logger.Debug("dropping stale think timer", "seat", seat, "generation", generation)
		return
	}

	if !snap.Players[seat].Seen && s.policy.ShouldPeek() {
		if err := s.engine.See(seat); err != nil {
			// Lost a race with another transition; let the turn events
			// reschedule if this seat still has the action.
			return
		}
	}

	snap = s.engine.Snapshot()
	if snap.Phase != game.PhaseBetting || snap.CurrentTurn != seat {
		return
	}
	generation = snap.Generation

	s.schedule(s.actDelay, func() { s.act(seat, generation) })
}

// act is stage two: one policy decision, one engine call.
func (s *Scheduler) act(seat int, generation uint64) {
	snap := s.engine.Snapshot()
	if stale(snap, seat, generation) {
		s.logger.Debug("dropping stale act timer", "seat", seat, "generation", generation)
		return
	}

	action := s.policy.Decide(snap, seat, s.engine.PotLimit())
	s.logger.Debug("opponent action", "seat", seat, "player", snap.Players[seat].Name, "action", action)

	if err := Apply(s.engine, seat, action); err != nil {
		s.logger.Debug("opponent action rejected", "seat", seat, "action", action, "error", err)
	}
}

// schedule replaces any pending timer with a new one
func (s *Scheduler) schedule(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
	}
	s.pending = s.clock.AfterFunc(d, fn)
}

// Cancel stops any pending opponent decision
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// stale reports whether the state moved on since the timer was scheduled
func stale(snap game.State, seat int, generation uint64) bool {
	return snap.Phase != game.PhaseBetting ||
		snap.CurrentTurn != seat ||
		snap.Generation != generation
}

package game

import (
	"fmt"
	rand "math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/nawan/internal/deck"
	"github.com/lox/nawan/internal/hand"
	"github.com/lox/nawan/internal/handid"
)

// BetResult distinguishes the defined outcomes of a Bet transition. None of
// these are errors; an auto-pack and a limit showdown are game events.
type BetResult int

const (
	// BetPlaced means chips went in and the turn advanced
	BetPlaced BetResult = iota
	// BetAutoPacked means the player could not cover the bet and folded;
	// chips already committed stay in the pot
	BetAutoPacked
	// BetLimitShowdown means the bet was clamped to the pot limit and the
	// hand resolved immediately among all remaining active players
	BetLimitShowdown
)

// Engine owns the table state. Every transition takes the acting seat
// explicitly, validates phase and turn, and applies atomically under the
// engine lock; no partial update is ever observable. Events are published
// after the lock is released so subscribers may call back in.
type Engine struct {
	mu     sync.Mutex
	cfg    Config
	rng    *rand.Rand
	ids    *handid.Generator
	logger *log.Logger
	bus    EventBus
	state  State
}

// NewEngine creates an engine for the configured table. All seats start
// Waiting with their configured balances; the idle stake is half the ante
// until the first deal.
func NewEngine(cfg Config, rng *rand.Rand, logger *log.Logger) *Engine {
	players := make([]Player, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		players[i] = Player{
			ID:      strconv.Itoa(i + 1),
			Name:    seat.Name,
			Avatar:  seat.Avatar,
			Balance: seat.Balance,
			Status:  StatusWaiting,
		}
	}

	return &Engine{
		cfg:    cfg,
		rng:    rng,
		ids:    handid.NewGenerator(rng),
		logger: logger,
		bus:    NewEventBus(),
		state: State{
			Players:      players,
			CurrentStake: cfg.Ante / 2,
			Phase:        PhaseIdle,
			LastAction:   "Deal to start",
		},
	}
}

// Events returns the bus the engine publishes game events on
func (e *Engine) Events() EventBus {
	return e.bus
}

// Snapshot returns a deep copy of the current table state
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// StartNewHand deals a fresh hand. Valid only from Idle or Showdown. Every
// seat receives three cards positionally so indices stay stable; seats that
// can cover the ante go Active and pay it, the rest sit the hand out Packed.
func (e *Engine) StartNewHand() error {
	e.mu.Lock()
	events, err := e.startNewHandLocked()
	e.mu.Unlock()
	e.publish(events)
	return err
}

func (e *Engine) startNewHandLocked() ([]GameEvent, error) {
	if e.state.Phase != PhaseIdle && e.state.Phase != PhaseShowdown {
		return nil, ErrWrongPhase
	}

	solvent := 0
	for _, p := range e.state.Players {
		if p.Balance >= e.cfg.Ante {
			solvent++
		}
	}
	if solvent < 2 {
		return nil, ErrNotEnoughPlayers
	}

	d := deck.New(e.rng)
	hands := d.Hands(len(e.state.Players))

	active := 0
	for i := range e.state.Players {
		p := &e.state.Players[i]
		p.Cards = hands[i]
		p.Seen = false
		if p.Balance >= e.cfg.Ante {
			p.Status = StatusActive
			p.Balance -= e.cfg.Ante
			p.CurrentBet = e.cfg.Ante
			active++
		} else {
			// Insolvent seats sit out with nothing committed so the
			// pot always equals the sum of current bets.
			p.Status = StatusPacked
			p.CurrentBet = 0
		}
	}

	e.state.HandID = e.ids.Generate()
	e.state.Pot = e.cfg.Ante * active
	e.state.CurrentStake = e.cfg.Ante
	e.state.CurrentTurn = e.firstActiveFromLocked(0)
	e.state.Phase = PhaseBetting
	e.state.WinnerIDs = nil
	e.state.LastAction = "New round started"
	e.bump()

	e.logger.Debug("new hand dealt", "hand", e.state.HandID, "active", active, "pot", e.state.Pot, "ante", e.cfg.Ante)

	return []GameEvent{
		HandStartEvent{State: e.state.clone(), Ante: e.cfg.Ante, PotLimit: e.cfg.PotLimit, timestamp: time.Now()},
		TurnChangeEvent{Seat: e.state.CurrentTurn, Generation: e.state.Generation, timestamp: time.Now()},
	}, nil
}

// See marks the acting player as having looked at their cards. It does not
// consume the turn; from here on the player's bet unit doubles, but bets
// already placed are untouched.
func (e *Engine) See(seat int) error {
	e.mu.Lock()
	events, err := e.seeLocked(seat)
	e.mu.Unlock()
	e.publish(events)
	return err
}

func (e *Engine) seeLocked(seat int) ([]GameEvent, error) {
	if err := e.validateActorLocked(seat); err != nil {
		return nil, err
	}
	p := &e.state.Players[seat]
	if p.Seen {
		return nil, ErrAlreadySeen
	}
	p.Seen = true
	e.state.LastAction = fmt.Sprintf("%s is viewing cards", p.Name)
	e.bump()

	return []GameEvent{e.actionEventLocked(seat, ActionSee, 0)}, nil
}

// Bet places a blind or seen bet at the given multiplier (1 or 2) for the
// acting seat. A multiplier of 2 permanently doubles the stake for the rest
// of the hand. Reaching the pot limit clamps the charge and forces an
// immediate showdown; an unaffordable bet auto-packs the player instead of
// partially betting.
func (e *Engine) Bet(seat, multiplier int) (BetResult, error) {
	e.mu.Lock()
	result, events, err := e.betLocked(seat, multiplier)
	e.mu.Unlock()
	e.publish(events)
	return result, err
}

func (e *Engine) betLocked(seat, multiplier int) (BetResult, []GameEvent, error) {
	if err := e.validateActorLocked(seat); err != nil {
		return 0, nil, err
	}
	if multiplier != 1 && multiplier != 2 {
		return 0, nil, ErrInvalidMultiplier
	}

	p := &e.state.Players[seat]
	amount := e.state.CurrentStake * multiplier
	if p.Seen {
		amount *= 2
	}
	kind := ActionBetBlind
	if p.Seen {
		kind = ActionBetChaal
	}

	if e.state.Pot+amount >= e.cfg.PotLimit {
		// Hard ceiling: charge exactly up to the limit and resolve the
		// hand among everyone still in, regardless of count.
		actual := e.cfg.PotLimit - e.state.Pot
		p.Balance -= actual
		p.CurrentBet += actual
		e.state.Pot = e.cfg.PotLimit
		e.bump()

		e.logger.Debug("pot limit reached", "seat", seat, "charged", actual, "pot", e.state.Pot)

		events := []GameEvent{e.actionEventLocked(seat, kind, actual)}
		events = append(events, e.resolveShowdownLocked(true))
		return BetLimitShowdown, events, nil
	}

	if p.Balance < amount {
		p.Status = StatusPacked
		e.state.LastAction = fmt.Sprintf("%s packed", p.Name)
		e.bump()

		e.logger.Debug("auto-pack on insufficient funds", "seat", seat, "balance", p.Balance, "needed", amount)

		events := []GameEvent{e.actionEventLocked(seat, ActionPack, 0)}
		if e.activeCountLocked() <= 1 {
			events = append(events, e.resolveShowdownLocked(false))
		} else if tc := e.advanceTurnLocked(); tc != nil {
			events = append(events, *tc)
		}
		return BetAutoPacked, events, nil
	}

	p.Balance -= amount
	p.CurrentBet += amount
	e.state.Pot += amount
	if multiplier == 2 {
		// Raises ratchet the stake upward for the rest of the hand.
		e.state.CurrentStake *= 2
	}
	e.state.LastAction = fmt.Sprintf("%s bet Rs.%d", p.Name, amount)
	e.bump()

	events := []GameEvent{e.actionEventLocked(seat, kind, amount)}
	if tc := e.advanceTurnLocked(); tc != nil {
		events = append(events, *tc)
	}
	return BetPlaced, events, nil
}

// Pack folds the acting seat. Committed chips stay in the pot. If at most
// one active player remains the hand resolves immediately; the sole
// survivor takes the pot without a hand comparison mattering.
func (e *Engine) Pack(seat int) error {
	e.mu.Lock()
	events, err := e.packLocked(seat)
	e.mu.Unlock()
	e.publish(events)
	return err
}

func (e *Engine) packLocked(seat int) ([]GameEvent, error) {
	if err := e.validateActorLocked(seat); err != nil {
		return nil, err
	}
	p := &e.state.Players[seat]
	p.Status = StatusPacked
	e.state.LastAction = fmt.Sprintf("%s packed", p.Name)
	e.bump()

	events := []GameEvent{e.actionEventLocked(seat, ActionPack, 0)}
	if e.activeCountLocked() <= 1 {
		events = append(events, e.resolveShowdownLocked(false))
	} else if tc := e.advanceTurnLocked(); tc != nil {
		events = append(events, *tc)
	}
	return events, nil
}

// Show forces a showdown. Valid only heads-up (exactly two active players).
// Calling it when the hand is already resolved is a harmless no-op.
func (e *Engine) Show(seat int) error {
	e.mu.Lock()
	events, err := e.showLocked(seat)
	e.mu.Unlock()
	e.publish(events)
	return err
}

func (e *Engine) showLocked(seat int) ([]GameEvent, error) {
	if e.state.Phase == PhaseShowdown {
		return nil, nil
	}
	if err := e.validateActorLocked(seat); err != nil {
		return nil, err
	}
	if e.activeCountLocked() != 2 {
		return nil, ErrShowNotHeadsUp
	}
	e.bump()

	events := []GameEvent{e.actionEventLocked(seat, ActionShow, 0)}
	events = append(events, e.resolveShowdownLocked(false))
	return events, nil
}

// resolveShowdownLocked compares the hands of every active player, pays the
// winners and moves the hand to Showdown. Shared by show, the pot-limit
// clamp and the last-player-standing paths.
func (e *Engine) resolveShowdownLocked(limitReached bool) GameEvent {
	type finalist struct {
		seat  int
		score int
	}

	finalists := make([]finalist, 0, len(e.state.Players))
	for i, p := range e.state.Players {
		if p.Status != StatusActive {
			continue
		}
		// Degenerate hands score as an automatic loss rather than
		// aborting the payout.
		score, _ := hand.Score(p.Cards)
		finalists = append(finalists, finalist{seat: i, score: score})
	}

	winners := make([]string, 0, 2)
	winnerNames := ""
	category := ""
	share := 0

	if len(finalists) > 0 {
		minScore := finalists[0].score
		for _, f := range finalists[1:] {
			if f.score < minScore {
				minScore = f.score
			}
		}
		for _, f := range finalists {
			if f.score != minScore {
				continue
			}
			p := e.state.Players[f.seat]
			winners = append(winners, p.ID)
			if winnerNames != "" {
				winnerNames += " & "
			}
			winnerNames += p.Name
			if hand.Categorize(p.Cards) != hand.Points {
				category = " with " + hand.Label(p.Cards)
			}
		}

		// Floor split; any remainder from non-divisibility is dropped,
		// matching the table's house behaviour.
		share = e.state.Pot / len(winners)
	}

	for i := range e.state.Players {
		e.state.Players[i].CurrentBet = 0
	}
	for _, id := range winners {
		for i := range e.state.Players {
			if e.state.Players[i].ID == id {
				e.state.Players[i].Balance += share
			}
		}
	}

	switch {
	case len(winners) == 0:
		e.state.LastAction = "No active players"
	case len(winners) > 1:
		e.state.LastAction = fmt.Sprintf("Split Rs.%d%s", share, category)
	default:
		e.state.LastAction = fmt.Sprintf("%s wins Rs.%d%s!", winnerNames, e.state.Pot, category)
	}
	if limitReached {
		e.state.LastAction = "LIMIT REACHED! " + e.state.LastAction
	}

	e.state.Phase = PhaseShowdown
	e.state.WinnerIDs = winners
	e.bump()

	e.logger.Debug("showdown resolved",
		"winners", winnerNames,
		"share", share,
		"pot", e.state.Pot,
		"limitReached", limitReached)

	return ShowdownEvent{
		State:        e.state.clone(),
		WinnerIDs:    winners,
		Share:        share,
		Pot:          e.state.Pot,
		LimitReached: limitReached,
		timestamp:    time.Now(),
	}
}

// advanceTurnLocked moves the turn to the next active seat, wrapping past
// the last index. Bounded to one full scan as a guard against an
// all-inactive table, which showdown-at-one-player makes unreachable.
func (e *Engine) advanceTurnLocked() *TurnChangeEvent {
	if e.state.Phase != PhaseBetting {
		return nil
	}
	n := len(e.state.Players)
	next := (e.state.CurrentTurn + 1) % n
	for probes := 0; probes < n && e.state.Players[next].Status != StatusActive; probes++ {
		next = (next + 1) % n
	}
	e.state.CurrentTurn = next
	return &TurnChangeEvent{Seat: next, Generation: e.state.Generation, timestamp: time.Now()}
}

// firstActiveFromLocked returns the first active seat at or after start
func (e *Engine) firstActiveFromLocked(start int) int {
	n := len(e.state.Players)
	idx := start % n
	for probes := 0; probes < n && e.state.Players[idx].Status != StatusActive; probes++ {
		idx = (idx + 1) % n
	}
	return idx
}

func (e *Engine) validateActorLocked(seat int) error {
	if seat < 0 || seat >= len(e.state.Players) {
		return ErrSeatOutOfRange
	}
	if e.state.Phase != PhaseBetting {
		return ErrWrongPhase
	}
	if seat != e.state.CurrentTurn {
		return ErrNotYourTurn
	}
	if e.state.Players[seat].Status != StatusActive {
		return ErrPlayerNotActive
	}
	return nil
}

func (e *Engine) activeCountLocked() int {
	return e.state.ActiveCount()
}

func (e *Engine) bump() {
	e.state.Generation++
}

func (e *Engine) actionEventLocked(seat int, kind ActionKind, amount int) PlayerActionEvent {
	p := e.state.Players[seat]
	return PlayerActionEvent{
		Seat:      seat,
		PlayerID:  p.ID,
		Name:      p.Name,
		Action:    kind,
		Amount:    amount,
		PotAfter:  e.state.Pot,
		timestamp: time.Now(),
	}
}

func (e *Engine) publish(events []GameEvent) {
	for _, ev := range events {
		e.bus.Publish(ev)
	}
}

// Package simulator runs AI-only tables to exercise the engine at volume:
// every seat is played by the opponent policy, hands run back to back with
// no think delays, and chip totals are verified after every hand.
package simulator

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/nawan/internal/ai"
	"github.com/lox/nawan/internal/game"
	"github.com/lox/nawan/internal/randutil"
	"github.com/lox/nawan/internal/stats"
)

// Options configures a simulation batch
type Options struct {
	Tables int   // concurrent tables
	Hands  int   // hands per table
	Seed   int64 // base seed; table i uses Seed+i
}

// TableResult aggregates one table's run
type TableResult struct {
	HandsPlayed    int
	Showdowns      int
	LimitShowdowns int
	FoldWins       int // hands won by everyone else packing
	SplitPots      int
	RemainderLost  int // chips dropped by floor splits
	WinsByName     map[string]int
	FinalBalances  map[string]int
	StoppedEarly   bool // table ran out of solvent players

	// Tracked is seat 0's session, net chips per hand
	Tracked *stats.Session
}

// Summary aggregates all tables
type Summary struct {
	Tables  []TableResult
	Hands   int
	Dropped int
}

// Run executes the batch, one goroutine per table
func Run(opts Options, logger *log.Logger) (*Summary, error) {
	if opts.Tables < 1 || opts.Hands < 1 {
		return nil, fmt.Errorf("tables and hands must be positive, got %d/%d", opts.Tables, opts.Hands)
	}

	results := make([]TableResult, opts.Tables)

	var g errgroup.Group
	for t := 0; t < opts.Tables; t++ {
		g.Go(func() error {
			res, err := runTable(opts.Seed+int64(t), opts.Hands, logger.With("table", t))
			if err != nil {
				return fmt.Errorf("table %d: %w", t, err)
			}
			results[t] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{Tables: results}
	for _, r := range results {
		summary.Hands += r.HandsPlayed
		summary.Dropped += r.RemainderLost
	}
	return summary, nil
}

// collector tallies showdown events for a single table
type collector struct {
	result *TableResult
}

func (c *collector) OnEvent(event game.GameEvent) {
	ev, ok := event.(game.ShowdownEvent)
	if !ok {
		return
	}
	c.result.Showdowns++
	if ev.LimitReached {
		c.result.LimitShowdowns++
	}
	if len(ev.WinnerIDs) > 1 {
		c.result.SplitPots++
	}
	c.result.RemainderLost += ev.Pot - ev.Share*len(ev.WinnerIDs)
	if ev.State.ActiveCount() == 1 {
		c.result.FoldWins++
	}
	for _, p := range ev.State.Players {
		if ev.State.IsWinner(p.ID) {
			c.result.WinsByName[p.Name]++
		}
	}
}

func runTable(seed int64, hands int, logger *log.Logger) (TableResult, error) {
	cfg := game.DefaultConfig()
	cfg.HumanSeat = -1

	rng := randutil.New(seed)
	engine := game.NewEngine(cfg, rng, logger)
	policy := ai.NewPolicy(rng)

	result := TableResult{
		WinsByName:    make(map[string]int),
		FinalBalances: make(map[string]int),
		Tracked:       &stats.Session{},
	}
	engine.Events().Subscribe(&collector{result: &result})

	expectedChips := totalChips(engine.Snapshot())

	for h := 0; h < hands; h++ {
		trackedBefore := engine.Snapshot().Players[0].Balance

		if err := engine.StartNewHand(); err != nil {
			if errors.Is(err, game.ErrNotEnoughPlayers) {
				result.StoppedEarly = true
				break
			}
			return result, err
		}

		if err := playHand(engine, policy); err != nil {
			return result, err
		}
		result.HandsPlayed++

		st := engine.Snapshot()
		result.Tracked.Add(stats.HandOutcome{
			NetChips:       st.Players[0].Balance - trackedBefore,
			WentToShowdown: st.ActiveCount() > 1,
			Pot:            st.Pot,
		})

		// Chips only leave the table through floor-split remainders.
		expectedChips -= handRemainder(st)
		if got := totalChips(st); got != expectedChips {
			return result, fmt.Errorf("chip conservation violated after hand %d: have %d, want %d", h, got, expectedChips)
		}
	}

	if result.HandsPlayed > 0 {
		if err := result.Tracked.Validate(); err != nil {
			return result, fmt.Errorf("tracked seat statistics: %w", err)
		}
	}

	for _, p := range engine.Snapshot().Players {
		result.FinalBalances[p.Name] = p.Balance
	}

	logger.Info("table finished",
		"hands", result.HandsPlayed,
		"showdowns", result.Showdowns,
		"foldWins", result.FoldWins,
		"splits", result.SplitPots,
		"dropped", result.RemainderLost,
		"trackedMean", result.Tracked.Mean())

	return result, nil
}

// playHand drives policy decisions synchronously until the hand resolves.
// The peek stage runs inline instead of on a timer.
func playHand(engine *game.Engine, policy *ai.Policy) error {
	// The pot limit bounds every hand; the cap here only guards against a
	// stuck turn if the engine regresses.
	const maxActions = 10000

	for i := 0; i < maxActions; i++ {
		snap := engine.Snapshot()
		if snap.Phase != game.PhaseBetting {
			return nil
		}
		seat := snap.CurrentTurn

		if !snap.Players[seat].Seen && policy.ShouldPeek() {
			if err := engine.See(seat); err != nil {
				return err
			}
			snap = engine.Snapshot()
		}

		action := policy.Decide(snap, seat, engine.PotLimit())
		if err := ai.Apply(engine, seat, action); err != nil {
			return err
		}
	}
	return fmt.Errorf("hand did not resolve after %d actions", maxActions)
}

func totalChips(st game.State) int {
	total := 0
	for _, p := range st.Players {
		total += p.Balance
	}
	return total
}

// handRemainder recomputes the floor-split loss for the just-resolved hand
func handRemainder(st game.State) int {
	if st.Phase != game.PhaseShowdown || len(st.WinnerIDs) == 0 {
		return 0
	}
	return st.Pot % len(st.WinnerIDs)
}

package ai

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nawan/internal/game"
	"github.com/lox/nawan/internal/randutil"
)

const (
	testThinkDelay = 1 * time.Second
	testActDelay   = 500 * time.Millisecond
)

func newTestScheduler(t *testing.T, humanSeat int) (*game.Engine, *Scheduler, *quartz.Mock) {
	t.Helper()

	cfg := game.Config{Ante: 100, PotLimit: 10000, HumanSeat: humanSeat}
	for _, name := range []string{"A", "B", "C"} {
		cfg.Seats = append(cfg.Seats, game.SeatConfig{Name: name, Balance: 10000})
	}

	logger := log.New(io.Discard)
	engine := game.NewEngine(cfg, randutil.New(1), logger)

	mockClock := quartz.NewMock(t)
	sched := NewScheduler(engine, NewPolicy(randutil.New(2)), mockClock, logger, testThinkDelay, testActDelay)
	engine.Events().Subscribe(sched)

	return engine, sched, mockClock
}

func advance(t *testing.T, mockClock *quartz.Mock, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	mockClock.Advance(d).MustWait(ctx)
}

func TestSchedulerActsAfterBothDelays(t *testing.T) {
	engine, _, mockClock := newTestScheduler(t, -1)

	require.NoError(t, engine.StartNewHand())
	before := engine.Snapshot()
	require.Equal(t, 0, before.CurrentTurn)

	// Stage one thinks (and may peek); nothing is bet yet.
	advance(t, mockClock, testThinkDelay)
	mid := engine.Snapshot()
	assert.Equal(t, 0, mid.CurrentTurn)
	assert.Equal(t, before.Pot, mid.Pot)

	// Stage two commits exactly one decision for seat 0.
	advance(t, mockClock, testActDelay)
	after := engine.Snapshot()
	assert.Greater(t, after.Generation, mid.Generation)
	if after.Phase == game.PhaseBetting {
		assert.NotEqual(t, 0, after.CurrentTurn)
	}
}

func TestSchedulerPlaysFullHand(t *testing.T) {
	engine, _, mockClock := newTestScheduler(t, -1)
	require.NoError(t, engine.StartNewHand())

	// Each advance pair fires one opponent decision; the hand has to
	// terminate well before the pot limit forces it.
	for i := 0; i < 200; i++ {
		if engine.Snapshot().Phase == game.PhaseShowdown {
			break
		}
		advance(t, mockClock, testThinkDelay)
		advance(t, mockClock, testActDelay)
	}

	st := engine.Snapshot()
	require.Equal(t, game.PhaseShowdown, st.Phase)
	assert.NotEmpty(t, st.WinnerIDs)
}

func TestSchedulerDropsStaleTimer(t *testing.T) {
	engine, sched, mockClock := newTestScheduler(t, -1)

	require.NoError(t, engine.StartNewHand())

	// The seat-0 timer is pending. Detach the scheduler and move the game
	// on underneath it, so the timer fires against a stale turn.
	engine.Events().Unsubscribe(sched)
	require.NoError(t, engine.Pack(0))
	before := engine.Snapshot()
	require.Equal(t, 1, before.CurrentTurn)

	advance(t, mockClock, testThinkDelay)
	advance(t, mockClock, testActDelay)

	after := engine.Snapshot()
	assert.Equal(t, before.Generation, after.Generation, "stale timer must not act")
	assert.Equal(t, 1, after.CurrentTurn)
}

func TestSchedulerLeavesHumanTurnAlone(t *testing.T) {
	engine, _, mockClock := newTestScheduler(t, 0)

	require.NoError(t, engine.StartNewHand())
	before := engine.Snapshot()

	advance(t, mockClock, testThinkDelay)
	advance(t, mockClock, testActDelay)

	after := engine.Snapshot()
	assert.Equal(t, before.Generation, after.Generation)
	assert.Equal(t, 0, after.CurrentTurn, "the table waits on the human")

	// Once the human acts, seat 1 gets scheduled as usual.
	_, err := engine.Bet(0, 1)
	require.NoError(t, err)
	mid := engine.Snapshot()

	advance(t, mockClock, testThinkDelay)
	advance(t, mockClock, testActDelay)

	final := engine.Snapshot()
	assert.Greater(t, final.Generation, mid.Generation)
}

func TestSchedulerCancelStopsPendingDecision(t *testing.T) {
	engine, sched, mockClock := newTestScheduler(t, -1)

	require.NoError(t, engine.StartNewHand())
	before := engine.Snapshot()

	sched.Cancel()
	advance(t, mockClock, testThinkDelay)
	advance(t, mockClock, testActDelay)

	assert.Equal(t, before.Generation, engine.Snapshot().Generation)
}

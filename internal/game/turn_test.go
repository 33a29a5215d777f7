package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnSkipsPackedSeatsAndWraps(t *testing.T) {
	e := newTestEngine(t, 5)
	require.NoError(t, e.StartNewHand())

	// Seats 1 and 2 pack out of turn order by direct state edit so the
	// scan itself is what is under test.
	e.state.Players[1].Status = StatusPacked
	e.state.Players[2].Status = StatusPacked

	_, err := e.Bet(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Snapshot().CurrentTurn, "packed seats are skipped")

	_, err = e.Bet(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, e.Snapshot().CurrentTurn)

	_, err = e.Bet(4, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Snapshot().CurrentTurn, "turn wraps past the last seat")
}

func TestTurnSkipsWaitingSeats(t *testing.T) {
	e := newTestEngine(t, 3)
	require.NoError(t, e.StartNewHand())

	e.state.Players[1].Status = StatusWaiting

	_, err := e.Bet(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Snapshot().CurrentTurn)
}

func TestTurnUnchangedOutsideBetting(t *testing.T) {
	e := newTestEngine(t, 3)

	// advanceTurnLocked is a no-op unless a hand is live.
	e.mu.Lock()
	ev := e.advanceTurnLocked()
	e.mu.Unlock()

	assert.Nil(t, ev)
	assert.Equal(t, 0, e.Snapshot().CurrentTurn)
}

func TestTurnScanIsBounded(t *testing.T) {
	e := newTestEngine(t, 3)
	require.NoError(t, e.StartNewHand())

	// Structurally unreachable (showdown fires at one active player),
	// but the guard must not spin forever on an all-packed table.
	for i := range e.state.Players {
		e.state.Players[i].Status = StatusPacked
	}

	e.mu.Lock()
	ev := e.advanceTurnLocked()
	e.mu.Unlock()
	require.NotNil(t, ev)
	assert.GreaterOrEqual(t, ev.Seat, 0)
	assert.Less(t, ev.Seat, 3)
}

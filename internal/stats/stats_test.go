package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptySession(t *testing.T) {
	s := &Session{}

	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdDev())
	assert.Zero(t, s.StdError())
	assert.Zero(t, s.Median())
	assert.Zero(t, s.Percentile(0.5))
}

func TestSingleOutcome(t *testing.T) {
	s := &Session{}
	s.Add(HandOutcome{NetChips: 250, WentToShowdown: true, Pot: 600})

	assert.Equal(t, 1, s.Hands)
	assert.Equal(t, 250.0, s.Mean())
	assert.Zero(t, s.Variance(), "single value has no spread")
	assert.Equal(t, 250.0, s.Median())
	assert.Equal(t, 1, s.ShowdownWins)
	assert.Zero(t, s.NonShowdownWins)
	assert.Equal(t, 600, s.MaxPot)
	require.NoError(t, s.Validate())
}

func TestBucketsSplitByShowdown(t *testing.T) {
	s := &Session{}
	s.Add(HandOutcome{NetChips: 400, WentToShowdown: true, Pot: 500})
	s.Add(HandOutcome{NetChips: 300, WentToShowdown: false, Pot: 400})
	s.Add(HandOutcome{NetChips: -100, WentToShowdown: true, Pot: 700})

	assert.Equal(t, 1, s.ShowdownWins)
	assert.Equal(t, 1, s.NonShowdownWins)
	assert.Equal(t, 300.0, s.ShowdownNet, "losses land in the showdown bucket too")
	assert.Equal(t, 300.0, s.NonShowdownNet)
	assert.True(t, s.IsLedgerBalanced())
	require.NoError(t, s.Validate())
}

func TestSpread(t *testing.T) {
	s := &Session{}
	for _, net := range []int{-100, 0, 100} {
		s.Add(HandOutcome{NetChips: net, WentToShowdown: true, Pot: 300})
	}

	assert.Equal(t, 0.0, s.Mean())
	assert.InDelta(t, 10000.0, s.Variance(), 1e-9)
	assert.InDelta(t, 100.0, s.StdDev(), 1e-9)
	assert.InDelta(t, 100.0/math.Sqrt(3), s.StdError(), 1e-9)

	low, high := s.ConfidenceInterval95()
	assert.Less(t, low, 0.0)
	assert.Greater(t, high, 0.0)
}

func TestMedianAndPercentile(t *testing.T) {
	s := &Session{}
	for _, net := range []int{10, 20, 30, 40} {
		s.Add(HandOutcome{NetChips: net, WentToShowdown: true, Pot: 100})
	}

	assert.Equal(t, 25.0, s.Median())
	assert.Equal(t, 10.0, s.Percentile(0))
	assert.Equal(t, 40.0, s.Percentile(1))
	assert.InDelta(t, 25.0, s.Percentile(0.5), 1e-9)
}

func TestBigPotTracking(t *testing.T) {
	s := &Session{}
	s.Add(HandOutcome{NetChips: 0, WentToShowdown: true, Pot: 4999})
	s.Add(HandOutcome{NetChips: 0, WentToShowdown: true, Pot: 5000})
	s.Add(HandOutcome{NetChips: 0, WentToShowdown: true, Pot: 10000})

	assert.Equal(t, 2, s.BigPots)
	assert.Equal(t, 10000, s.MaxPot)
}

func TestValidateCatchesCorruption(t *testing.T) {
	s := &Session{}
	s.Add(HandOutcome{NetChips: 100, WentToShowdown: true, Pot: 300})

	s.ShowdownNet += 1 // corrupt the ledger
	assert.Error(t, s.Validate())
}

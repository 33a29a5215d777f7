// Package stats accumulates per-seat session statistics over many hands:
// net chips per hand with mean, spread and confidence interval, split into
// showdown and fold-win buckets.
package stats

import (
	"fmt"
	"math"
	"sort"
)

// HandOutcome is one hand's result from the tracked seat's perspective
type HandOutcome struct {
	NetChips       int  // chips won (positive) or lost (negative)
	WentToShowdown bool // false when everyone else packed
	Pot            int  // final pot size in chips
}

// Session tracks statistics for one seat across a run of hands
type Session struct {
	Hands    int
	Sum      float64
	SumSq    float64 // sum of squares for variance
	Values   []float64

	ShowdownWins    int
	NonShowdownWins int // hands won because everyone else packed
	ShowdownNet     float64
	NonShowdownNet  float64
	AllNet          float64

	MaxPot  int
	BigPots int // pots past half the table limit
}

// BigPotThreshold marks a pot as a high-action hand
const BigPotThreshold = 5000

// Add incorporates a hand outcome
func (s *Session) Add(outcome HandOutcome) {
	net := float64(outcome.NetChips)
	s.Hands++
	s.Sum += net
	s.SumSq += net * net
	s.Values = append(s.Values, net)

	if outcome.NetChips > 0 {
		if outcome.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}

	if outcome.WentToShowdown {
		s.ShowdownNet += net
	} else {
		s.NonShowdownNet += net
	}
	s.AllNet += net

	if outcome.Pot > s.MaxPot {
		s.MaxPot = outcome.Pot
	}
	if outcome.Pot >= BigPotThreshold {
		s.BigPots++
	}
}

// Mean returns the arithmetic mean of net chips per hand
func (s *Session) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.Sum / float64(s.Hands)
}

// Variance returns the sample variance of net chips per hand
func (s *Session) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation
func (s *Session) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Session) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Session) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median net result
func (s *Session) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// linearly interpolated
func (s *Session) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IsLedgerBalanced checks that the bucket totals add up
func (s *Session) IsLedgerBalanced() bool {
	return math.Abs(s.AllNet-s.ShowdownNet-s.NonShowdownNet) <= 1e-6
}

// Validate checks the session data for internal consistency
func (s *Session) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: all=%.2f, showdown=%.2f, foldwins=%.2f",
			s.AllNet, s.ShowdownNet, s.NonShowdownNet)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values length (%d) does not match hands count (%d)", len(s.Values), s.Hands)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", wins, s.Hands)
	}
	return nil
}

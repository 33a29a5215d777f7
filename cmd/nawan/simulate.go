package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/nawan/internal/simulator"
)

// SimulateCmd runs AI-only tables for engine statistics
type SimulateCmd struct {
	Hands  int   `short:"n" help:"Hands per table" default:"1000"`
	Tables int   `short:"t" help:"Concurrent tables" default:"4"`
	Seed   int64 `help:"Base random seed" default:"1"`
	Debug  bool  `help:"Enable debug logging"`
}

// Run executes the simulation batch
func (c *SimulateCmd) Run() error {
	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	start := time.Now()
	summary, err := simulator.Run(simulator.Options{
		Tables: c.Tables,
		Hands:  c.Hands,
		Seed:   c.Seed,
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("simulation complete",
		"tables", c.Tables,
		"hands", summary.Hands,
		"chipsDropped", summary.Dropped,
		"elapsed", time.Since(start).Round(time.Millisecond))

	for i, table := range summary.Tables {
		logger.Info("table summary",
			"table", i,
			"hands", table.HandsPlayed,
			"showdowns", table.Showdowns,
			"limitShowdowns", table.LimitShowdowns,
			"foldWins", table.FoldWins,
			"splitPots", table.SplitPots,
			"stoppedEarly", table.StoppedEarly)

		low, high := table.Tracked.ConfidenceInterval95()
		logger.Info("tracked seat",
			"table", i,
			"mean", fmt.Sprintf("%.1f", table.Tracked.Mean()),
			"stddev", fmt.Sprintf("%.1f", table.Tracked.StdDev()),
			"ci95", fmt.Sprintf("[%.1f, %.1f]", low, high),
			"maxPot", table.Tracked.MaxPot,
			"bigPots", table.Tracked.BigPots)
	}
	return nil
}

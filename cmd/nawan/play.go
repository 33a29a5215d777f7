package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/nawan/internal/ai"
	"github.com/lox/nawan/internal/game"
	"github.com/lox/nawan/internal/history"
	"github.com/lox/nawan/internal/randutil"
	"github.com/lox/nawan/internal/tui"
)

// PlayCmd runs the interactive table
type PlayCmd struct {
	Config     string `short:"c" help:"Path to table config file" default:"nawan.hcl"`
	Seed       int64  `help:"Random seed (0 = time-based)"`
	LogFile    string `help:"Debug log file" default:"nawan.log"`
	HistoryDir string `help:"Directory for hand history files (empty = no history)"`
	Debug      bool   `help:"Enable debug logging"`
}

// Run starts the TUI session
func (c *PlayCmd) Run() error {
	cfg, err := game.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.HumanSeat < 0 {
		return fmt.Errorf("config has no human seat; use `nawan simulate` for AI-only play")
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	rng := randutil.NewFromTime()
	if c.Seed != 0 {
		rng = randutil.New(c.Seed)
	}

	engine := game.NewEngine(cfg, rng, logger)
	policy := ai.NewPolicy(rng)
	scheduler := ai.NewScheduler(engine, policy, quartz.NewReal(), logger,
		cfg.ThinkDelay(), cfg.ActDelay())

	program := tea.NewProgram(tui.New(engine), tea.WithAltScreen())
	engine.Events().Subscribe(tui.NewForwarder(program))
	engine.Events().Subscribe(scheduler)

	if c.HistoryDir != "" {
		recorder, err := history.NewRecorder(c.HistoryDir, logger)
		if err != nil {
			return fmt.Errorf("creating history recorder: %w", err)
		}
		engine.Events().Subscribe(recorder)
	}

	logger.Info("starting table", "seats", len(cfg.Seats), "ante", cfg.Ante, "potLimit", cfg.PotLimit)

	_, err = program.Run()
	scheduler.Cancel()
	return err
}

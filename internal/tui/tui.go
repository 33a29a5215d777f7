// Package tui renders the table in the terminal. It is a pure consumer of
// the engine: it reads snapshots and derived views, calls transition
// operations on keypresses, and never mutates game state directly.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/nawan/internal/game"
)

// EventMsg wraps an engine event for delivery into the bubbletea loop
type EventMsg struct {
	Event game.GameEvent
}

// Forwarder bridges the engine's event bus to a running bubbletea program
type Forwarder struct {
	program *tea.Program
}

// NewForwarder creates a bus subscriber that feeds events to the program
func NewForwarder(program *tea.Program) *Forwarder {
	return &Forwarder{program: program}
}

// OnEvent implements game.EventSubscriber
func (f *Forwarder) OnEvent(event game.GameEvent) {
	f.program.Send(EventMsg{Event: event})
}

// KeyMap defines the table controls
type KeyMap struct {
	Deal      key.Binding
	See       key.Binding
	BetBlind  key.Binding
	BetDouble key.Binding
	Show      key.Binding
	Pack      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Deal:      key.NewBinding(key.WithKeys("d", "enter"), key.WithHelp("d", "deal")),
		See:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "see cards")),
		BetBlind:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bet 1x")),
		BetDouble: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "bet 2x")),
		Show:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "show")),
		Pack:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pack")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Deal, k.See, k.BetBlind, k.BetDouble, k.Show, k.Pack, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Deal, k.See, k.BetBlind},
		{k.BetDouble, k.Show, k.Pack, k.Quit},
	}
}

// Model is the bubbletea model for the table view
type Model struct {
	engine *game.Engine
	keys   KeyMap
	help   help.Model
	snap   game.State
	width  int
}

// New creates a table view bound to the engine
func New(engine *game.Engine) Model {
	return Model{
		engine: engine,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		snap:   engine.Snapshot(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case EventMsg:
		// Whatever the event was, re-render from a fresh snapshot.
		m.snap = m.engine.Snapshot()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey maps keys to engine operations. Errors are deliberately
// swallowed: a rejected operation is the engine saying the control is
// disabled right now, and the view already reflects that.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	human := m.engine.HumanSeat()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Deal):
		if m.snap.Phase == game.PhaseIdle || m.snap.Phase == game.PhaseShowdown {
			_ = m.engine.StartNewHand()
		}

	case key.Matches(msg, m.keys.See):
		_ = m.engine.See(human)

	case key.Matches(msg, m.keys.BetBlind):
		_, _ = m.engine.Bet(human, 1)

	case key.Matches(msg, m.keys.BetDouble):
		_, _ = m.engine.Bet(human, 2)

	case key.Matches(msg, m.keys.Show):
		_ = m.engine.Show(human)

	case key.Matches(msg, m.keys.Pack):
		_ = m.engine.Pack(human)
	}

	m.snap = m.engine.Snapshot()
	return m, nil
}

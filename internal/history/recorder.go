package history

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/nawan/internal/game"
)

// Recorder subscribes to the engine's event bus and writes one record per
// resolved hand into its directory, named by hand ID. A write failure is
// logged but never interrupts play.
type Recorder struct {
	dir    string
	logger *log.Logger

	mu   sync.Mutex
	open *Record
}

// NewRecorder creates a recorder writing into dir, creating it if needed
func NewRecorder(dir string, logger *log.Logger) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Recorder{dir: dir, logger: logger}, nil
}

// OnEvent implements game.EventSubscriber
func (r *Recorder) OnEvent(event game.GameEvent) {
	switch ev := event.(type) {
	case game.HandStartEvent:
		r.begin(ev)
	case game.PlayerActionEvent:
		r.action(ev)
	case game.ShowdownEvent:
		r.finish(ev)
	}
}

func (r *Recorder) begin(ev game.HandStartEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := &Record{
		HandID:   ev.State.HandID,
		Time:     ev.Timestamp().UTC().Format(time.RFC3339),
		Ante:     ev.Ante,
		PotLimit: ev.PotLimit,
	}
	for _, p := range ev.State.Players {
		rec.Players = append(rec.Players, p.Name)
		// The snapshot is post-ante; the committed bet restores the
		// pre-deal balance.
		rec.StartingBalances = append(rec.StartingBalances, p.Balance+p.CurrentBet)
	}
	r.open = rec
}

func (r *Recorder) action(ev game.PlayerActionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.open == nil {
		return
	}
	if line, ok := FormatAction(ev.Seat, ev.Action, ev.Amount); ok {
		r.open.Actions = append(r.open.Actions, line)
	}
}

func (r *Recorder) finish(ev game.ShowdownEvent) {
	r.mu.Lock()
	rec := r.open
	r.open = nil
	r.mu.Unlock()

	// A showdown with no open record means we subscribed mid-hand.
	if rec == nil {
		return
	}

	rec.Pot = ev.Pot
	rec.Share = ev.Share
	rec.LimitReached = ev.LimitReached
	for _, p := range ev.State.Players {
		rec.Hands = append(rec.Hands, formatCards(p))
		rec.FinishingBalances = append(rec.FinishingBalances, p.Balance)
		if ev.State.IsWinner(p.ID) {
			rec.Winners = append(rec.Winners, p.Name)
		}
	}

	if err := r.save(rec); err != nil {
		r.logger.Error("failed to write hand history", "hand", rec.HandID, "error", err)
		return
	}
	r.logger.Debug("hand history written", "hand", rec.HandID)
}

func (r *Recorder) save(rec *Record) error {
	data, err := EncodeToBytes(rec)
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(r.dir, rec.HandID+".toml"), data, 0o644)
}

func formatCards(p game.Player) string {
	cards := make([]string, len(p.Cards))
	for i, c := range p.Cards {
		cards[i] = c.String()
	}
	return strings.Join(cards, " ")
}

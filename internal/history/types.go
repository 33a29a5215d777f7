// Package history records finished hands to disk, one TOML document per
// hand, so sessions can be reviewed or replayed later.
package history

import (
	"fmt"

	"github.com/lox/nawan/internal/game"
)

// Record is the on-disk form of one completed hand
type Record struct {
	HandID   string `toml:"hand"`
	Time     string `toml:"time,omitempty"`
	Ante     int    `toml:"ante"`
	PotLimit int    `toml:"pot_limit"`

	Players          []string `toml:"players"`
	StartingBalances []int    `toml:"starting_balances"`

	// Actions are "p<seat+1> <verb> [amount]" strings in play order.
	Actions []string `toml:"actions"`

	// Hands holds every seat's cards as dealt, revealed by the showdown.
	Hands []string `toml:"hands"`

	Winners           []string `toml:"winners,omitempty"`
	Pot               int      `toml:"pot"`
	Share             int      `toml:"share,omitempty"`
	LimitReached      bool     `toml:"limit_reached,omitempty"`
	FinishingBalances []int    `toml:"finishing_balances"`
}

// FormatAction converts an engine action into its history string. The deal
// pseudo-action is captured by the record header, not the action list.
func FormatAction(seat int, action game.ActionKind, amount int) (string, bool) {
	player := fmt.Sprintf("p%d", seat+1)
	switch action {
	case game.ActionSee:
		return fmt.Sprintf("%s see", player), true
	case game.ActionBetBlind:
		return fmt.Sprintf("%s blind %d", player, amount), true
	case game.ActionBetChaal:
		return fmt.Sprintf("%s chaal %d", player, amount), true
	case game.ActionPack:
		return fmt.Sprintf("%s pack", player), true
	case game.ActionShow:
		return fmt.Sprintf("%s show", player), true
	default:
		return "", false
	}
}

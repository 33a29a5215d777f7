// Package game implements the authoritative table state machine for the
// three-card game: antes, blind/seen betting at a ratcheting stake, a hard
// pot limit, pack/show resolution and showdown payout.
//
// All mutation goes through named Engine transitions that take the acting
// seat explicitly, validate phase and turn, and run atomically under the
// engine lock. Consumers (the terminal UI, the opponent scheduler, the
// simulator) observe the game through immutable State snapshots and the
// event bus; they never write back.
package game

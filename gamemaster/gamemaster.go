package gamemaster

import (
	"errors"
	"fmt"

	"othello/game"
)

// Sentinel errors returned by Engine.Play, wrapped in a *MoveError.
var (
	ErrNotInitialized = errors.New("game not initialized")
	ErrGameOver       = errors.New("game is over - no moves allowed")
	ErrIllegalMove    = errors.New("illegal move")
	ErrPassNotAllowed = errors.New("pass not allowed while a placement is legal")
)

// MoveError carries the mover and the rejected move.
type MoveError struct {
	Player game.CellState
	Move   game.Move
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("player %s, move %s: %v", e.Player, e.Move, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Update is a move accepted by the engine and the board it produced.
type Update struct {
	Player game.CellState
	Move   game.Move
	Flips  []game.Coord
	Board  *game.Board
}

// UpdateGetter returns the next update without blocking; ok is false when none is
// pending or the game is over and every update was consumed.
type UpdateGetter func() (u Update, ok bool)

// Engine runs a game driven from outside, e.g. by a UI or a remote player.
type Engine interface {
	Init() (*game.Board, UpdateGetter)
	Play(game.Move) error
}

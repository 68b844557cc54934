package engine

import (
	"fmt"

	"othello/experiments/metrics"
	"othello/game"
)

type Engine interface {
	// Run plays a game till neither side can move, the board is full or a max number of turns is reached
	Run() (winner game.CellState, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Record is one entry of the move history.
type Record struct {
	Player game.CellState
	Move   game.Move
	Flips  int
	Hash   game.StateHash // Board after the move
}

// String formats the record as "B: d3" or "W: PASS".
func (r Record) String() string {
	return fmt.Sprintf("%s: %s", r.Player, r.Move)
}

package gamemaster

import (
	"errors"
	"fmt"

	"othello/game"
	"othello/player"
)

var errMissingUpdate = errors.New("no update after an accepted move")

// Controller drives an Engine with one agent per side until the game is over.
type Controller struct {
	engine Engine
	agents [2]player.Agent // Indexed by CellState - 1
}

func NewController(engine Engine, black, white player.Agent) *Controller {
	if engine == nil || black == nil || white == nil {
		panic("need an engine and two agents")
	}
	return &Controller{
		engine: engine,
		agents: [2]player.Agent{black, white},
	}
}

// Run plays a new game and returns the final board.
func (c *Controller) Run() (*game.Board, error) {
	board, getUpdate := c.engine.Init()
	for !isGameOver(board) {
		move, _ := c.agents[board.Turn()-1].FindMove(board)
		err := c.engine.Play(move)
		if err != nil {
			return board, fmt.Errorf("failed to play %s: %w", move, err)
		}

		u, ok := getUpdate()
		if !ok {
			return board, errMissingUpdate
		}
		board = u.Board
	}
	return board, nil
}

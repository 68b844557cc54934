package gamemaster

import (
	"github.com/rs/zerolog/log"

	"othello/engine"
	"othello/game"
	"othello/meta"
)

type Option func(e *LocalEngine)

// WithBoard starts games from a copy of board instead of the opening position. Combined
// with WithRules the copy is rescored with those rules.
func WithBoard(board *game.Board) Option {
	return func(e *LocalEngine) {
		if board != nil {
			e.start = board.Clone()
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(e *LocalEngine) {
		e.rules = rules
	}
}

type LocalEngine struct {
	rows     int
	cols     int
	rules    game.Rules
	start    *game.Board
	board    *game.Board
	updateCh chan Update
	history  []engine.Record
	gameOver bool
}

func NewLocalEngine(options ...Option) *LocalEngine {
	e := &LocalEngine{
		rows: meta.ROWS,
		cols: meta.COLS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Init starts a new game and returns a copy of the board.
func (e *LocalEngine) Init() (*game.Board, UpdateGetter) {
	switch {
	case e.start != nil && e.rules != nil:
		e.board = e.start.WithRules(e.rules)
	case e.start != nil:
		e.board = e.start.Clone()
	default:
		e.board = game.NewOpeningBoard(e.rows, e.cols, e.rules)
	}
	e.history = nil
	e.gameOver = isGameOver(e.board)

	// A game has at most one placement per cell and never two passes in a row
	e.updateCh = make(chan Update, 2*e.board.TotalCells()+1)
	updateCh := e.updateCh
	if e.gameOver {
		close(updateCh)
	}

	return e.board.Clone(), func() (Update, bool) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return Update{}, false
			}
			return u, true
		default:
			// No updates yet
			return Update{}, false
		}
	}
}

// Play applies the move for the player to move. A pass is only accepted when the
// player has no legal placement.
func (e *LocalEngine) Play(move game.Move) error {
	if e.board == nil {
		return &MoveError{Move: move, Err: ErrNotInitialized}
	}
	mover := e.board.Turn()
	if e.gameOver {
		return &MoveError{Player: mover, Move: move, Err: ErrGameOver}
	}

	var flips []game.Coord
	if move.Pass {
		if e.board.LegalMoveCount() > 0 {
			return &MoveError{Player: mover, Move: move, Err: ErrPassNotAllowed}
		}
		e.board.ChangeTurn()
	} else {
		flips = e.board.PlaceStone(move.Row, move.Col)
		if len(flips) == 0 {
			return &MoveError{Player: mover, Move: move, Err: ErrIllegalMove}
		}
	}

	record := engine.Record{Player: mover, Move: move, Flips: len(flips), Hash: e.board.Hash()}
	e.history = append(e.history, record)
	log.Debug().Msgf("played %s", record)

	e.updateCh <- Update{Player: mover, Move: move, Flips: flips, Board: e.board.Clone()}
	if isGameOver(e.board) {
		e.gameOver = true
		close(e.updateCh)
		log.Info().Msgf("game over after %d moves: B %d, W %d",
			len(e.history), e.board.StoneCount(game.PlayerA), e.board.StoneCount(game.PlayerB))
	}
	return nil
}

// Board returns a copy of the current board, or nil before Init.
func (e *LocalEngine) Board() *game.Board {
	if e.board == nil {
		return nil
	}
	return e.board.Clone()
}

func (e *LocalEngine) History() []engine.Record {
	history := make([]engine.Record, len(e.history))
	copy(history, e.history)
	return history
}

func (e *LocalEngine) GameOver() bool {
	return e.gameOver
}

// isGameOver checks if the board is full or neither player can place a stone.
func isGameOver(board *game.Board) bool {
	if board.Stage() == game.GameOver {
		return true
	}
	if board.LegalMoveCount() > 0 {
		return false
	}
	other := board.Clone()
	other.ChangeTurn()
	return other.LegalMoveCount() == 0
}

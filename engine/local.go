package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/player"
)

type Option func(e *Local)

type pacing struct {
	base         time.Duration
	perCandidate time.Duration
	pass         time.Duration
}

// Local plays two agents against each other on a board in this process.
type Local struct {
	board    *game.Board
	agents   [2]player.Agent // Indexed by CellState - 1
	maxTurns int
	pacing   *pacing
	sleep    func(time.Duration)
	history  []Record
}

// WithPacing waits before every computer move: base plus perCandidate for each legal
// placement, or pass when the mover has to pass.
func WithPacing(base, perCandidate, pass time.Duration) Option {
	return func(e *Local) {
		e.pacing = &pacing{base: base, perCandidate: perCandidate, pass: pass}
	}
}

func WithDefaultPacing() Option {
	return WithPacing(meta.BASE_DELAY, meta.CANDIDATE_DELAY, meta.PASS_DELAY)
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// LocalEngine returns an engine where agents[0] plays PlayerA and agents[1] plays PlayerB.
func LocalEngine(agents []player.Agent, board *game.Board, options ...Option) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if board == nil {
		panic("need a board")
	}

	e := &Local{
		board:    board,
		agents:   [2]player.Agent{agents[0], agents[1]},
		maxTurns: meta.MAX_TURNS,
		sleep:    time.Sleep,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) Board() *game.Board {
	return e.board
}

func (e *Local) History() []Record {
	history := make([]Record, len(e.history))
	copy(history, e.history)
	return history
}

// Run executes the entire game loop until the game is over.
func (e *Local) Run() (game.CellState, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	starting := e.board.Turn()
	log.Info().Msgf("player %s is starting", starting)

	var moveMetrics []metrics.MoveMetric
	passes, consecutive := 0, 0
	for turn := 1; !e.over(consecutive); turn++ {
		if turn > e.maxTurns {
			log.Warn().Msgf("stopped after %d turns without the game ending", e.maxTurns)
			break
		}

		mover := e.board.Turn()
		move, metric := e.agents[mover-1].FindMove(e.board.Clone())
		move = e.validate(move)
		e.pace(move)

		record := e.apply(move)
		e.history = append(e.history, record)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       mover.String(),
			Move:         move.String(),
			Flips:        record.Flips,
			SearchMetric: metric,
		})
		log.Debug().Msgf("turn %d %s", turn, record)

		if move.Pass {
			passes++
			consecutive++
		} else {
			consecutive = 0
		}
	}

	winner := e.board.Winner()
	end := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: starting.String(),
		Winner:         colorName(winner),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     len(e.history),
		Passes:         passes,
		BlackStones:    e.board.StoneCount(game.PlayerA),
		WhiteStones:    e.board.StoneCount(game.PlayerB),
	}
	log.Info().Msgf("game over after %d moves: B %d, W %d, winner %q",
		gameMetric.TotalMoves, gameMetric.BlackStones, gameMetric.WhiteStones, gameMetric.Winner)

	return winner, gameMetric, moveMetrics
}

// over reports whether both sides passed in a row or the board is full.
func (e *Local) over(consecutivePasses int) bool {
	return consecutivePasses >= 2 || e.board.Stage() == game.GameOver
}

// validate replaces a move the rules do not allow with the first legal one, or a pass.
func (e *Local) validate(move game.Move) game.Move {
	legal := e.board.LegalMoves()
	if move.Pass && len(legal) == 0 {
		return move
	}
	if !move.Pass && e.board.IsLegal(move.Row, move.Col) {
		return move
	}

	fallback := game.PassMove()
	if len(legal) > 0 {
		fallback = game.PlaceAt(legal[0].Row, legal[0].Col)
	}
	log.Warn().Msgf("player %s returned an invalid move %s, playing %s instead", e.board.Turn(), move, fallback)
	return fallback
}

func (e *Local) pace(move game.Move) {
	if e.pacing == nil {
		return
	}
	if move.Pass {
		e.sleep(e.pacing.pass)
		return
	}
	candidates := e.board.LegalMoveCount()
	e.sleep(e.pacing.base + time.Duration(candidates)*e.pacing.perCandidate)
}

func (e *Local) apply(move game.Move) Record {
	record := Record{Player: e.board.Turn(), Move: move}
	if move.Pass {
		e.board.ChangeTurn()
	} else {
		record.Flips = len(e.board.PlaceStone(move.Row, move.Col))
	}
	record.Hash = e.board.Hash()
	return record
}

// colorName returns "B", "W" or "" for a draw.
func colorName(c game.CellState) string {
	if c == game.Empty {
		return ""
	}
	return c.String()
}

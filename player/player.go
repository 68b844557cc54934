package player

import (
	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type Agent interface {
	// FindMove returns the move to play for the board's mover and metrics (if collected) from the search.
	// A pass is returned only when the mover has no legal placement.
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric)
}

type heuristicAgent struct {
	ranker *searcher.Ranker
}

// NewHeuristicAgent plays the top ranked candidate.
func NewHeuristicAgent(ranker *searcher.Ranker) Agent {
	if ranker == nil {
		panic("Must provide a ranker")
	}
	return &heuristicAgent{ranker: ranker}
}

func (a *heuristicAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	candidates, metric := a.ranker.Rank(board)
	if len(candidates) == 0 {
		return game.PassMove(), metric
	}
	best := candidates[0]
	return game.PlaceAt(best.Row, best.Col), metric
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays a uniformly random legal placement.
func NewRandomAgent(rng *rand.Rand) Agent {
	if rng == nil {
		panic("Must provide a random source")
	}
	return &randomAgent{rng: rng}
}

func (a *randomAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	moves := board.LegalMoves()
	metric := metrics.SearchMetric{
		Goroutines: 1,
		Evaluated:  board.TotalCells(),
		Candidates: len(moves),
	}
	if len(moves) == 0 {
		return game.PassMove(), metric
	}
	m := moves[a.rng.Intn(len(moves))]
	return game.PlaceAt(m.Row, m.Col), metric
}

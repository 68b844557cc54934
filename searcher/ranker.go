package searcher

import (
	"sync"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"othello/experiments/metrics"
	"othello/game"
)

// Candidate is a legal placement with its heuristic evaluation.
type Candidate struct {
	game.Coord
	game.Evaluation
}

type Option func(r *Ranker)

// Ranker scores every cell of a position and orders the legal ones best first.
// A Ranker is not safe for concurrent use.
type Ranker struct {
	goroutines int
	shallow    bool
	rules      game.Rules
	rng        *rand.Rand
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(r *Ranker) {
		if goroutines > 0 {
			r.goroutines = goroutines
		}
	}
}

// WithShallowEvaluation scores cells without the one-ply lookahead.
func WithShallowEvaluation() Option {
	return func(r *Ranker) {
		r.shallow = true
	}
}

// WithRules scores positions with rules instead of the board's own.
func WithRules(rules game.Rules) Option {
	return func(r *Ranker) {
		r.rules = rules
	}
}

func WithMetrics() Option {
	return func(r *Ranker) {
		r.metrics = metrics.NewCollector()
	}
}

func NewRanker(rng *rand.Rand, options ...Option) *Ranker {
	if rng == nil {
		panic("Must provide a random source")
	}
	r := &Ranker{ // Default values
		goroutines: 1,
		rng:        rng,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Rank returns the legal placements for the mover, highest score first with ties in
// random order. The board is not modified.
func (r *Ranker) Rank(board *game.Board) ([]Candidate, metrics.SearchMetric) {
	r.metrics.Start(r.goroutines)

	var snapshot *game.Board
	if r.rules != nil {
		snapshot = board.WithRules(r.rules)
	} else {
		snapshot = board.Clone()
	}
	evaluations := r.evaluate(snapshot)

	var candidates []Candidate
	for i, e := range evaluations {
		if !e.Legal() {
			continue
		}
		candidates = append(candidates, Candidate{
			Coord:      game.Coord{Row: i / snapshot.Cols(), Col: i % snapshot.Cols()},
			Evaluation: e,
		})
	}
	Order(candidates, r.rng)

	best := 0
	if len(candidates) > 0 {
		best = candidates[0].Score
	}
	r.metrics.SetCandidates(len(candidates), best)
	return candidates, r.metrics.Complete()
}

// evaluate scores every cell of the snapshot. Each worker writes to its own slots.
func (r *Ranker) evaluate(snapshot *game.Board) []game.Evaluation {
	cells := snapshot.TotalCells()
	evaluations := make([]game.Evaluation, cells)

	task := make(chan int, cells)
	for i := 0; i < cells; i++ {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < r.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for cell := range task {
				row, col := cell/snapshot.Cols(), cell%snapshot.Cols()
				if r.shallow {
					evaluations[cell] = snapshot.EvaluateShallow(row, col)
				} else {
					evaluations[cell] = snapshot.Evaluate(row, col)
				}
				r.metrics.AddEvaluation()
			}
		}()
	}

	wg.Wait()
	return evaluations
}

// Order sorts candidates by score, highest first. Equal scores end up in uniformly
// random order: the slice is shuffled before a stable sort.
func Order(candidates []Candidate, rng *rand.Rand) {
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return b.Score - a.Score
	})
}

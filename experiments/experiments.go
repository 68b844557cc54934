package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"
	"othello/storage"
)

type settings struct {
	root     string
	numGames int
	rows     int
	cols     int
	seed     uint64
	store    *storage.Store
}

type Option func(s *settings)

// WithOutputDir sets the directory experiment results are written under.
func WithOutputDir(root string) Option {
	return func(s *settings) {
		if root != "" {
			s.root = root
		}
	}
}

// WithGames sets the number of games per matchup.
func WithGames(games int) Option {
	return func(s *settings) {
		if games > 0 {
			s.numGames = games
		}
	}
}

func WithBoardSize(rows, cols int) Option {
	return func(s *settings) {
		if rows > 1 && cols > 1 {
			s.rows, s.cols = rows, cols
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

// WithStore also records every game in the cumulative statistics.
func WithStore(store *storage.Store) Option {
	return func(s *settings) {
		s.store = store
	}
}

// Result holds the records of one experiment and where they were written.
type Result struct {
	Dir   string
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

var strengthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.HeuristicAgent, Goroutines: meta.GO_ROUTINES},
	{ID: 2, Kind: metrics.RandomAgent},
	{ID: 3, Kind: metrics.HeuristicAgent, Goroutines: meta.GO_ROUTINES, Lookahead: game.LookaheadNone},
	{ID: 4, Kind: metrics.HeuristicAgent, Goroutines: meta.GO_ROUTINES, Multiplicative: true},
	{ID: 5, Kind: metrics.HeuristicAgent, Goroutines: meta.GO_ROUTINES, Lookahead: game.LookaheadMobility},
}

// RunStrengthExperiment pairs the default heuristic against a random baseline and its variants.
func RunStrengthExperiment(options ...Option) (*Result, error) {
	baseline := strengthConfigs[0]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range strengthConfigs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return Run("strength", strengthConfigs, matchUps, options...)
}

// Run plays every matchup, alternating which agent plays PlayerA, and writes the
// agent configs, game records and move records as CSV.
func Run(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, options ...Option) (*Result, error) {
	s := &settings{ // Default values
		root:     "experiments",
		numGames: meta.NUM_GAMES,
		rows:     meta.ROWS,
		cols:     meta.COLS,
		seed:     1,
	}
	for _, option := range options {
		option(s)
	}

	count := 0
	result := &Result{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		if len(matchup) != 2 {
			return nil, fmt.Errorf("matchup %d has %d agents, want 2", mi+1, len(matchup))
		}
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < s.numGames; i++ {
			black, white := matchup[0], matchup[1]
			if i%2 == 1 {
				black, white = white, black
			}

			count++
			winner, gameMetric, moveMetrics := runGame(black, white, s, uint64(count))
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			if s.store != nil {
				err := s.store.RecordGame(storage.GameResult{
					Black:       black.Name(),
					White:       white.Name(),
					Winner:      winner,
					BlackStones: gameMetric.BlackStones,
					WhiteStones: gameMetric.WhiteStones,
					Duration:    gameMetric.Duration,
				})
				if err != nil {
					return nil, err
				}
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %q", mi+1, len(matchUps), i+1, s.numGames, gameMetric.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := write(s.root, name, configs, result)
	if err != nil {
		return nil, err
	}
	result.Dir = dir
	return result, nil
}

func write(root, name string, configs []metrics.AgentConfig, result *Result) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(black, white metrics.AgentConfig, s *settings, gameID uint64) (game.CellState, metrics.GameMetric, []metrics.MoveMetric) {
	// Each game and side gets its own reproducible random source
	seed := s.seed*1_000_003 + gameID*2
	agents := []player.Agent{
		createAgent(black, rand.New(rand.NewSource(seed))),
		createAgent(white, rand.New(rand.NewSource(seed+1))),
	}
	board := game.NewOpeningBoard(s.rows, s.cols, nil)
	e := engine.LocalEngine(agents, board)

	return e.Run()
}

func createAgent(config metrics.AgentConfig, rng *rand.Rand) player.Agent {
	if config.Kind == metrics.RandomAgent {
		return player.NewRandomAgent(rng)
	}

	rules := game.NewStandardRules()
	if config.Multiplicative {
		rules = game.NewMultiplicativeRules()
	}
	rules.Depth = config.Lookahead

	options := []searcher.Option{searcher.WithRules(rules), searcher.WithMetrics()}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return player.NewHeuristicAgent(searcher.NewRanker(rng, options...))
}

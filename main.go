package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"
	"othello/storage"
)

func main() {
	mode := flag.String("mode", "play", "What to run: play, strength or throughput")
	games := flag.Int("games", meta.NUM_GAMES, "Number of games per experiment matchup")
	seed := flag.Uint64("seed", 1, "Seed of the random sources")
	out := flag.String("out", "experiments", "Directory experiment results are written under")
	db := flag.String("db", "", "Directory of the cumulative stats database (in memory when empty)")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines ranking moves in play mode")
	pace := flag.Bool("pace", false, "Pause before computer moves in play mode")
	verbose := flag.Bool("verbose", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "play":
		play(*seed, *goroutines, *pace)
	case "strength", "throughput":
		err = runExperiment(*mode, *games, *seed, *out, *db)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

// play runs one heuristic game and prints the move history and the final board.
func play(seed uint64, goroutines int, pace bool) {
	agents := []player.Agent{
		player.NewHeuristicAgent(searcher.NewRanker(rand.New(rand.NewSource(seed)), searcher.WithGoroutines(goroutines))),
		player.NewHeuristicAgent(searcher.NewRanker(rand.New(rand.NewSource(seed+1)), searcher.WithGoroutines(goroutines))),
	}
	options := []engine.Option{}
	if pace {
		options = append(options, engine.WithDefaultPacing())
	}
	e := engine.LocalEngine(agents, game.NewOpeningBoard(meta.ROWS, meta.COLS, nil), options...)

	_, gameMetric, _ := e.Run()

	for _, record := range e.History() {
		fmt.Println(record)
	}
	fmt.Print(e.Board())
	fmt.Printf("B %d, W %d, winner %q\n", gameMetric.BlackStones, gameMetric.WhiteStones, gameMetric.Winner)
}

func runExperiment(name string, games int, seed uint64, out, db string) error {
	store, err := storage.Open(db)
	if err != nil {
		return err
	}
	defer store.Close()

	options := []experiments.Option{
		experiments.WithGames(games),
		experiments.WithSeed(seed),
		experiments.WithOutputDir(out),
		experiments.WithStore(store),
	}

	var result *experiments.Result
	if name == "throughput" {
		result, err = experiments.RunThroughputExperiment(options...)
	} else {
		result, err = experiments.RunStrengthExperiment(options...)
	}
	if err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", result.Dir)

	agents, err := store.Agents()
	if err != nil {
		return err
	}
	for _, agent := range agents {
		stats, err := store.LoadStats(agent)
		if err != nil {
			return err
		}
		log.Info().Msgf("%s: %d games, %d wins, %d losses, %d draws (%.1f%%)",
			agent, stats.GamesPlayed, stats.Wins, stats.Losses, stats.Draws, stats.WinRate())
	}
	return nil
}

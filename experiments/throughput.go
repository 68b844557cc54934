package experiments

import (
	"othello/experiments/metrics"
)

var throughputConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.HeuristicAgent, Goroutines: 1},
	{ID: 2, Kind: metrics.HeuristicAgent, Goroutines: 2},
	{ID: 3, Kind: metrics.HeuristicAgent, Goroutines: 4},
	{ID: 4, Kind: metrics.HeuristicAgent, Goroutines: 8},
	{ID: 5, Kind: metrics.HeuristicAgent, Goroutines: 16},
}

// RunThroughputExperiment measures decision time against the number of ranking goroutines.
// Same config for both players in each game for the same playing strength and similar game length.
func RunThroughputExperiment(options ...Option) (*Result, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range throughputConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return Run("throughput", throughputConfigs, matchUps, options...)
}

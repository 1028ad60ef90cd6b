package experiments

import (
	"fmt"

	"slide/engine"
	"slide/experiments/metrics"
	"slide/game"
	"slide/searcher"
	"slide/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	NumGames  = 30 // Per agent config
	BoardSize = 4
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 0, Random: true},
	{ID: 1, MaxDepth: 2},
	{ID: 2, MaxDepth: 3},
	{ID: 3, MaxDepth: 4},
	{ID: 4, MaxDepth: 5},
}

var budgetConfigs = []metrics.AgentConfig{
	{ID: 1, MaxDepth: 6},
	{ID: 2, MaxDepth: 6, NodeBudget: 10000},
	{ID: 3, MaxDepth: 6, NodeBudget: 50000},
	{ID: 4, MaxDepth: 6, NodeBudget: 200000},
}

// RunDepthExperiment measures how search depth trades wall time for playing
// strength against the random baseline.
func RunDepthExperiment() {
	runExperiment("depth", depthConfigs)
}

// RunBudgetExperiment measures how a node budget caps worst-case move time at
// a deep search depth.
func RunBudgetExperiment() {
	runExperiment("budget", budgetConfigs)
}

func runExperiment(name string, configs []metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v...", ci+1, len(configs), config)

		for i := 0; i < NumGames; i++ {
			gameMetric, moveMetrics := runGame(config, uint64(count))
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed config %d of %d game %d of %d: moves=%d max_tile=%d",
				ci+1, len(configs), i+1, NumGames, gameMetric.TotalMoves, gameMetric.MaxTile)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored experiment records")
}

// runGame executes a single game with the configured agent and returns its
// metrics.
func runGame(config metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric) {
	rules := game.NewStandardRules()
	rng := rand.New(rand.NewSource(seed))
	e := engine.NewLocalEngine(BoardSize, rules, createAgent(config), rng)

	return e.Run()
}

func createAgent(config metrics.AgentConfig) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent()
	}

	options := []searcher.Option{}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	if config.NodeBudget > 0 {
		options = append(options, searcher.WithNodeBudget(config.NodeBudget))
	}

	return agent.NewSearchAgent(searcher.NewMinimax(options...))
}

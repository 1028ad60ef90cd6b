package main

import (
	"flag"
	"fmt"
	"time"

	"slide/engine"
	"slide/experiments"
	"slide/game"
	"slide/searcher"
	"slide/searcher/agent"

	"golang.org/x/exp/rand"
)

type config struct {
	games int
	depth int
	size  int
}

func main() {
	games := flag.Int("games", 1, "number of games to play")
	depth := flag.Int("depth", searcher.DefaultMaxDepth, "max search depth")
	size := flag.Int("size", 4, "board size")
	inspect := flag.Bool("inspect", false, "evaluate a fixed board and exit")
	experiment := flag.String("experiment", "", "run an experiment (depth or budget) and exit")
	flag.Parse()

	if *inspect {
		runInspection()
		return
	}

	switch *experiment {
	case "depth":
		experiments.RunDepthExperiment()
		return
	case "budget":
		experiments.RunBudgetExperiment()
		return
	case "":
	default:
		fmt.Printf("unknown experiment %q\n", *experiment)
		return
	}

	runGames(config{games: *games, depth: *depth, size: *size})
}

func runGames(cfg config) {
	fmt.Printf("Playing %d game(s) at depth %d...\n", cfg.games, cfg.depth)
	for i := 0; i < cfg.games; i++ {
		fmt.Printf("Game %d started...\n", i+1)

		rules := game.NewStandardRules()
		rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
		a := agent.NewSearchAgent(searcher.NewMinimax(searcher.WithMaxDepth(cfg.depth)))
		e := engine.NewLocalEngine(cfg.size, rules, a, rng)

		gameMetric, _ := e.Run()

		fmt.Printf("Game %d over! moves=%d score=%d max_tile=%d reached_target=%t\n",
			i+1, gameMetric.TotalMoves, gameMetric.Score, gameMetric.MaxTile, gameMetric.ReachedTarget)
	}
}

// runInspection feeds a fixed board through the evaluator and the search and
// prints both outputs for manual inspection.
func runInspection() {
	board := game.NewBoardFromCells([][]int{
		{0, 0, 2, 4},
		{0, 0, 2, 4},
		{0, 2, 2, 2},
		{0, 2, 2, 1024},
	})

	evaluator := searcher.NewEvaluator(searcher.DefaultWeights)
	fmt.Printf("[Utility]: %d\n", evaluator.Evaluate(board))

	minimax := searcher.NewMinimax()
	move, utility, metrics := minimax.ChooseMove(board)
	fmt.Printf("[Best Move]: %s\n", move)
	fmt.Printf("[Maximized Utility]: %d\n", utility)
	fmt.Printf("[Search Nodes]: %d in %s\n", metrics.Nodes, metrics.Duration)
}

package engine

import (
	"time"

	"slide/experiments/metrics"
	"slide/game"
	"slide/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// LocalEngine runs the game loop in process: the agent picks a shift, the
// board applies it, and the rules spawn a new tile into a random empty cell.
type LocalEngine struct {
	Board *game.Board
	rules game.Rules
	agent agent.Agent
	rng   *rand.Rand
}

func NewLocalEngine(size int, rules game.Rules, a agent.Agent, rng *rand.Rand) *LocalEngine {
	if rules == nil {
		panic("engine needs rules")
	}
	if a == nil {
		panic("engine needs an agent")
	}
	if rng == nil {
		panic("engine needs a randomizer")
	}

	e := &LocalEngine{
		Board: game.NewBoard(size),
		rules: rules,
		agent: a,
		rng:   rng,
	}
	for i := 0; i < rules.InitialTiles(); i++ {
		e.spawnTile()
	}
	return e
}

// Run executes the game loop until no legal move remains or MaxMoves is hit.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric
	score, moves := 0, 0

	for moves < MaxMoves && !e.rules.GameOver(e.Board) {
		move, searchMetrics := e.agent.FindMove(e.Board)
		if move == game.NoDirection { // Agent sees no legal move
			break
		}

		gained, moved := e.Board.Shift(move)
		if !moved {
			log.Warn().Msgf("shift %s did not change the board, stopping", move)
			break
		}
		score += gained
		moves++

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          moves,
			Move:          move,
			Score:         score,
			MaxTile:       e.Board.MaxTile(),
			SearchMetrics: searchMetrics,
		})

		e.spawnTile()

		if moves%200 == 0 {
			log.Info().Msgf("move %d: score=%d max_tile=%d", moves, score, e.Board.MaxTile())
		}
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		StartTime:     start,
		EndTime:       end,
		Duration:      end.Sub(start),
		TotalMoves:    moves,
		Score:         score,
		MaxTile:       e.Board.MaxTile(),
		ReachedTarget: e.Board.MaxTile() >= e.rules.TargetTile(),
	}
	return gameMetric, moveMetrics
}

// spawnTile inserts a tile from the rules' spawn distribution into a random
// empty cell.
func (e *LocalEngine) spawnTile() {
	cells := e.Board.AvailableCells()
	if len(cells) == 0 {
		return
	}
	pos := cells[e.rng.Intn(len(cells))]
	e.Board.SetCell(pos, e.rules.SpawnValue(e.rng))
}

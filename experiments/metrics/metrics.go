package metrics

import (
	"time"

	"slide/game"
	"slide/searcher"
)

// AgentConfig identifies one search configuration under comparison.
type AgentConfig struct {
	ID         int
	MaxDepth   int
	NodeBudget int
	Random     bool // Baseline agent without search
}

// MoveMetric records one turn of a game.
type MoveMetric struct {
	Step    int
	Move    game.Direction
	Score   int
	MaxTile int
	searcher.SearchMetrics
}

// GameMetric records the outcome of one game.
type GameMetric struct {
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
	Score         int
	MaxTile       int
	ReachedTarget bool
}

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

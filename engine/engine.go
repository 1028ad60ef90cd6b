package engine

import "slide/experiments/metrics"

// MaxMoves guards against games that never terminate.
const MaxMoves = 10000

type Engine interface {
	// Run plays a game till no legal move remains or a max number of moves
	// is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

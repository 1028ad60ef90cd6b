package agent

import (
	"slide/game"
	"slide/searcher"
)

type Agent interface {
	// FindMove returns the next shift for the board and performance metrics
	// from any search it ran
	FindMove(board *game.Board) (game.Direction, searcher.SearchMetrics)
}

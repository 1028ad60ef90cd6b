package agent

import (
	"slide/game"
	"slide/searcher"
)

type randomAgent struct{}

// NewRandomAgent returns an agent that always plays a uniformly random legal
// shift. Used as a baseline in experiments.
func NewRandomAgent() Agent {
	return randomAgent{}
}

func (randomAgent) FindMove(board *game.Board) (game.Direction, searcher.SearchMetrics) {
	return randomMove(board), searcher.SearchMetrics{}
}

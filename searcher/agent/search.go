package agent

import (
	"slide/game"
	"slide/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type searchAgent struct {
	minimax *searcher.Minimax
}

// NewSearchAgent returns an agent that searches for the best shift until the
// target tile is reached, then plays random legal shifts to finish the game
// quickly.
func NewSearchAgent(minimax *searcher.Minimax) Agent {
	if minimax == nil {
		panic("search agent needs a searcher")
	}
	return searchAgent{minimax: minimax}
}

func (a searchAgent) FindMove(board *game.Board) (game.Direction, searcher.SearchMetrics) {
	// Past the target, skip the search entirely
	if board.MaxTile() >= a.minimax.Target() {
		return randomMove(board), searcher.SearchMetrics{}
	}

	move, _, metrics := a.minimax.ChooseMove(board)
	if move == game.NoDirection {
		fallback := randomMove(board)
		if fallback != game.NoDirection {
			log.Warn().Msgf("search found no move, falling back to %s", fallback)
		}
		return fallback, metrics
	}
	return move, metrics
}

// randomMove picks uniformly among the legal shifts, or game.NoDirection if
// the game is over.
func randomMove(board *game.Board) game.Direction {
	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return game.NoDirection
	}
	return moves[rand.Intn(len(moves))]
}

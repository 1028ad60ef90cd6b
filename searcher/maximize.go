package searcher

import "slide/game"

// maximize is the agent's ply: it picks the legal shift with the highest
// utility under the (alpha, beta) bounds.
func (m *Minimax) maximize(board *game.Board, depth, alpha, beta int) (game.Direction, int) {
	m.metrics.nodes++
	if m.cutoff(board, depth) {
		return game.NoDirection, m.leaf(board)
	}

	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return game.NoDirection, m.leaf(board)
	}

	bestMove, bestUtility := game.NoDirection, -maxUtility

	for _, move := range moves {
		// Shift an independent copy so sibling moves see the original board
		child := board.Clone()
		child.Shift(move)

		_, utility := m.minimize(child, depth+1, alpha, beta)

		if utility > bestUtility {
			bestMove, bestUtility = move, utility
		}
		// Prune before raising alpha: a utility tying beta still cuts
		if utility >= beta {
			m.metrics.betaCutoffs++
			break
		}
		if utility > alpha {
			alpha = utility
		}
	}

	return bestMove, bestUtility
}

package searcher

import "slide/game"

var noCell = game.Position{Row: -1, Col: -1}

// minimize is the insertion adversary's ply: it picks the empty cell whose
// expected utility over the modeled spawn values is lowest.
func (m *Minimax) minimize(board *game.Board, depth, alpha, beta int) (game.Position, int) {
	m.metrics.nodes++
	if m.cutoff(board, depth) {
		return noCell, m.leaf(board)
	}

	cells := board.AvailableCells()
	if len(cells) == 0 {
		return noCell, m.leaf(board)
	}

	bestCell, bestUtility := noCell, maxUtility

	for _, cell := range cells {
		child := board.Clone()

		// Fold the full expectation over spawn values for this cell before
		// any bound comparison; reordering changes pruning aggressiveness
		weighted, totalWeight := 0, 0
		for _, spawn := range m.spawns {
			child.SetCell(cell, spawn.Value)
			_, conditional := m.maximize(child, depth+1, alpha, beta)
			weighted += spawn.Weight * conditional
			totalWeight += spawn.Weight
		}
		utility := floorDiv(weighted, totalWeight)

		if utility < bestUtility {
			bestCell, bestUtility = cell, utility
		}
		// Prune before lowering beta: a utility tying alpha still cuts
		if utility <= alpha {
			m.metrics.alphaCutoffs++
			break
		}
		if utility < beta {
			beta = utility
		}
	}

	return bestCell, bestUtility
}

// floorDiv divides rounding toward negative infinity; weighted sums can be
// negative and Go's integer division truncates toward zero.
func floorDiv(sum, weight int) int {
	quotient := sum / weight
	if sum%weight != 0 && (sum < 0) != (weight < 0) {
		quotient--
	}
	return quotient
}

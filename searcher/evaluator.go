package searcher

import (
	"math/bits"

	"slide/game"
)

// Weights combine the four heuristic terms into one utility.
type Weights struct {
	Smoothness   int
	Monotonicity int
	Empty        int
	MaxTile      int
}

// DefaultWeights favor keeping the board open; structure terms are
// secondary and the max tile is a minor tiebreak.
var DefaultWeights = Weights{
	Smoothness:   10,
	Monotonicity: 20,
	Empty:        80,
	MaxTile:      10,
}

// Evaluator statically scores a board; higher is better for the agent.
type Evaluator struct {
	weights Weights
}

func NewEvaluator(weights Weights) Evaluator {
	return Evaluator{weights: weights}
}

// Evaluate returns the weighted sum of smoothness, monotonicity, empty-cell
// count, and max tile value. Pure: identical boards always score the same.
func (e Evaluator) Evaluate(board *game.Board) int {
	size := board.Size()
	maxTile, empty := 0, 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			value := cellAt(board, r, c)
			if value > maxTile {
				maxTile = value
			}
			if value == 0 {
				empty++
			}
		}
	}

	return e.weights.Smoothness*smoothness(board) +
		e.weights.Monotonicity*monotonicity(board) +
		e.weights.Empty*empty +
		e.weights.MaxTile*maxTile
}

// smoothness penalizes exponent gaps between each occupied cell and the
// nearest occupied cell below and to the right of it. Zero or negative;
// higher is smoother.
func smoothness(board *game.Board) int {
	size := board.Size()
	scans := []game.Position{game.Down.Vector(), game.Right.Vector()}

	total := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			pos := game.Position{Row: r, Col: c}
			if board.CanInsert(pos) { // Empty cells do not contribute
				continue
			}
			exp := exponent(cellAt(board, r, c))

			for _, vec := range scans {
				neighbor := farthestPosition(board, pos, vec)
				value, ok := board.CellValue(neighbor)
				if !ok { // Scan ran off the board
					continue
				}
				diff := exp - exponent(value)
				if diff < 0 {
					diff = -diff
				}
				total -= diff
			}
		}
	}
	return total
}

// monotonicity rewards exponents that increase consistently along one
// orientation per axis: per column the signed exponent steps between
// successive occupied run boundaries accumulate into up/down, per row into
// left/right, and the best orientation of each axis wins.
func monotonicity(board *game.Board) int {
	size := board.Size()
	last := size - 1
	var acc [4]int // Indexed by game.Direction

	down := game.Down.Vector()
	for col := 0; col < size; col++ {
		current, next := 0, 0
		for next < size {
			next = farthestPosition(board, game.Position{Row: current, Col: col}, down).Row
			currentExp := exponent(cellAt(board, current, col))
			nextExp := exponent(cellAt(board, min(next, last), col))
			if currentExp < nextExp {
				acc[game.Down] += currentExp - nextExp
			} else {
				acc[game.Up] += nextExp - currentExp
			}
			current = next
		}
	}

	right := game.Right.Vector()
	for row := 0; row < size; row++ {
		current, next := 0, 0
		for next < size {
			next = farthestPosition(board, game.Position{Row: row, Col: current}, right).Col
			currentExp := exponent(cellAt(board, row, current))
			nextExp := exponent(cellAt(board, row, min(next, last)))
			if currentExp < nextExp {
				acc[game.Right] += currentExp - nextExp
			} else {
				acc[game.Left] += nextExp - currentExp
			}
			current = next
		}
	}

	return max(acc[game.Up], acc[game.Down]) + max(acc[game.Left], acc[game.Right])
}

// farthestPosition steps from start along vec over empty cells and returns
// the first occupied or out-of-bounds position.
func farthestPosition(board *game.Board, start, vec game.Position) game.Position {
	next := start.Step(vec)
	for board.CanInsert(next) {
		next = next.Step(vec)
	}
	return next
}

// exponent returns log2 of a power-of-two tile value, treating empty as 0.
func exponent(value int) int {
	if value == 0 {
		return 0
	}
	return bits.TrailingZeros(uint(value))
}

func cellAt(board *game.Board, row, col int) int {
	value, _ := board.CellValue(game.Position{Row: row, Col: col})
	return value
}

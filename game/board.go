package game

// Board is a square grid of tile values (0 = empty, otherwise powers of two).
// Search code never shares a board across branches: callers clone before
// mutating.
type Board struct {
	size  int
	cells [][]int
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) *Board {
	if size < 2 {
		panic("board size must be at least 2")
	}
	cells := make([][]int, size)
	for r := range cells {
		cells[r] = make([]int, size)
	}
	return &Board{size: size, cells: cells}
}

// NewBoardFromCells returns a board initialized from a square cell matrix.
func NewBoardFromCells(cells [][]int) *Board {
	b := NewBoard(len(cells))
	for r, row := range cells {
		if len(row) != b.size {
			panic("cell matrix must be square")
		}
		copy(b.cells[r], row)
	}
	return b
}

// Size returns the grid dimension N.
func (b *Board) Size() int {
	return b.size
}

// Clone returns an independent deep copy.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.size)
	for r := range b.cells {
		copy(clone.cells[r], b.cells[r])
	}
	return clone
}

// CrossBound reports whether pos lies outside the grid.
func (b *Board) CrossBound(pos Position) bool {
	return pos.Row < 0 || pos.Row >= b.size || pos.Col < 0 || pos.Col >= b.size
}

// CanInsert reports whether pos is an in-bounds empty cell.
func (b *Board) CanInsert(pos Position) bool {
	return !b.CrossBound(pos) && b.cells[pos.Row][pos.Col] == 0
}

// CellValue returns the tile value at pos; ok is false out of bounds.
func (b *Board) CellValue(pos Position) (value int, ok bool) {
	if b.CrossBound(pos) {
		return 0, false
	}
	return b.cells[pos.Row][pos.Col], true
}

// SetCell places a tile value at pos.
func (b *Board) SetCell(pos Position, value int) {
	b.cells[pos.Row][pos.Col] = value
}

// MaxTile returns the maximum tile value currently on the board.
func (b *Board) MaxTile() int {
	max := 0
	for _, row := range b.cells {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// AvailableCells returns the positions of all empty cells.
func (b *Board) AvailableCells() []Position {
	var cells []Position
	for r, row := range b.cells {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// AvailableMoves returns the directions whose shift changes the board.
func (b *Board) AvailableMoves() []Direction {
	var moves []Direction
	for _, dir := range Directions {
		probe := b.Clone()
		if _, moved := probe.Shift(dir); moved {
			moves = append(moves, dir)
		}
	}
	return moves
}

// Shift slides and merges all tiles toward dir, mutating the board in place.
// It returns the total value of merged tiles and whether anything moved.
func (b *Board) Shift(dir Direction) (score int, moved bool) {
	for i := 0; i < b.size; i++ {
		line := b.extractLine(dir, i)
		merged, lineScore := mergeLine(line)
		score += lineScore
		if b.writeLine(dir, i, merged) {
			moved = true
		}
	}
	return score, moved
}

// extractLine reads the i-th line of the board ordered so that index 0 is the
// edge tiles slide toward.
func (b *Board) extractLine(dir Direction, i int) []int {
	line := make([]int, b.size)
	for j := 0; j < b.size; j++ {
		pos := b.linePosition(dir, i, j)
		line[j] = b.cells[pos.Row][pos.Col]
	}
	return line
}

// writeLine stores a line back, reporting whether any cell changed.
func (b *Board) writeLine(dir Direction, i int, line []int) bool {
	changed := false
	for j := 0; j < b.size; j++ {
		pos := b.linePosition(dir, i, j)
		if b.cells[pos.Row][pos.Col] != line[j] {
			b.cells[pos.Row][pos.Col] = line[j]
			changed = true
		}
	}
	return changed
}

func (b *Board) linePosition(dir Direction, i, j int) Position {
	last := b.size - 1
	switch dir {
	case Up:
		return Position{Row: j, Col: i}
	case Down:
		return Position{Row: last - j, Col: i}
	case Left:
		return Position{Row: i, Col: j}
	case Right:
		return Position{Row: i, Col: last - j}
	default:
		panic("invalid shift direction")
	}
}

// mergeLine slides a line toward index 0, merging each pair of equal adjacent
// tiles once. It returns the new line and the total value of merged tiles.
func mergeLine(line []int) ([]int, int) {
	result := make([]int, len(line))
	score := 0
	write := 0
	lastMerged := -1
	for _, v := range line {
		if v == 0 {
			continue
		}
		if write > 0 && result[write-1] == v && lastMerged != write-1 {
			result[write-1] = v * 2
			score += v * 2
			lastMerged = write - 1
		} else {
			result[write] = v
			write++
		}
	}
	return result, score
}

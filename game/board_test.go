package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShift(t *testing.T) {
	t.Run("sliding and merging a row to the left", func(t *testing.T) {
		b := NewBoardFromCells([][]int{
			{2, 2, 0, 4},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		})

		score, moved := b.Shift(Left)

		require.True(t, moved, "Shift should report movement")
		require.Equal(t, 4, score, "Merging two 2s should score 4")
		wantRow := []int{4, 4, 0, 0}
		for c, want := range wantRow {
			got, _ := b.CellValue(Position{Row: 0, Col: c})
			require.Equal(t, want, got, "Row should slide and merge toward the left edge")
		}
	})

	t.Run("merging each pair only once", func(t *testing.T) {
		b := NewBoardFromCells([][]int{
			{2, 2, 4, 4},
			{2, 2, 2, 2},
			{2, 2, 2, 0},
			{0, 0, 0, 0},
		})

		score, moved := b.Shift(Left)

		require.True(t, moved)
		require.Equal(t, 4+8+4+4+4, score, "Each adjacent pair should merge exactly once")
		wantRows := [][]int{
			{4, 8, 0, 0},
			{4, 4, 0, 0},
			{4, 2, 0, 0},
			{0, 0, 0, 0},
		}
		for r, wantRow := range wantRows {
			for c, want := range wantRow {
				got, _ := b.CellValue(Position{Row: r, Col: c})
				require.Equal(t, want, got, "A merged tile should not merge again in the same shift")
			}
		}
	})

	t.Run("shifting toward each edge", func(t *testing.T) {
		cells := [][]int{
			{0, 0, 0},
			{0, 2, 0},
			{0, 0, 0},
		}
		wants := map[Direction]Position{
			Up:    {Row: 0, Col: 1},
			Down:  {Row: 2, Col: 1},
			Left:  {Row: 1, Col: 0},
			Right: {Row: 1, Col: 2},
		}

		for dir, want := range wants {
			b := NewBoardFromCells(cells)
			_, moved := b.Shift(dir)

			require.True(t, moved, "Shifting %s should move the lone tile", dir)
			got, _ := b.CellValue(want)
			require.Equal(t, 2, got, "Tile should end at the %s edge", dir)
		}
	})

	t.Run("reporting no movement on a locked board", func(t *testing.T) {
		b := NewBoardFromCells([][]int{
			{2, 4, 2},
			{4, 2, 4},
			{2, 4, 2},
		})

		for _, dir := range Directions {
			score, moved := b.Shift(dir)
			require.False(t, moved, "Alternating full board should not move %s", dir)
			require.Zero(t, score)
		}
	})
}

func TestClone(t *testing.T) {
	t.Run("mutating a clone leaves the original intact", func(t *testing.T) {
		b := NewBoardFromCells([][]int{
			{2, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 2},
		})

		clone := b.Clone()
		clone.SetCell(Position{Row: 1, Col: 1}, 8)
		clone.Shift(Left)

		got, _ := b.CellValue(Position{Row: 1, Col: 1})
		require.Zero(t, got, "Original should not see the clone's insertion")
		got, _ = b.CellValue(Position{Row: 3, Col: 3})
		require.Equal(t, 2, got, "Original should not see the clone's shift")
	})
}

func TestAvailableMoves(t *testing.T) {
	t.Run("open board allows every direction", func(t *testing.T) {
		b := NewBoardFromCells([][]int{
			{0, 0, 0},
			{0, 2, 0},
			{0, 0, 0},
		})

		require.ElementsMatch(t, Directions, b.AvailableMoves(),
			"A centered tile can shift every way")
	})

	t.Run("locked board allows nothing", func(t *testing.T) {
		b := NewBoardFromCells([][]int{
			{2, 4, 2},
			{4, 2, 4},
			{2, 4, 2},
		})

		require.Empty(t, b.AvailableMoves(), "No shift changes an alternating full board")
	})

	t.Run("full board with a mergeable pair still has moves", func(t *testing.T) {
		b := NewBoardFromCells([][]int{
			{2, 2, 4},
			{4, 8, 2},
			{2, 4, 8},
		})

		moves := b.AvailableMoves()
		require.ElementsMatch(t, []Direction{Left, Right}, moves,
			"Only the row with the equal pair can move")
	})
}

func TestCellQueries(t *testing.T) {
	b := NewBoardFromCells([][]int{
		{2, 0, 0},
		{0, 64, 0},
		{0, 0, 4},
	})

	t.Run("available cells lists all empties", func(t *testing.T) {
		require.Len(t, b.AvailableCells(), 6)
	})

	t.Run("max tile", func(t *testing.T) {
		require.Equal(t, 64, b.MaxTile())
	})

	t.Run("bounds checks", func(t *testing.T) {
		require.True(t, b.CrossBound(Position{Row: 3, Col: 0}))
		require.True(t, b.CrossBound(Position{Row: 0, Col: -1}))
		require.False(t, b.CrossBound(Position{Row: 2, Col: 2}))

		_, ok := b.CellValue(Position{Row: 3, Col: 3})
		require.False(t, ok, "Out-of-bounds value should not be ok")
	})

	t.Run("insertability", func(t *testing.T) {
		require.True(t, b.CanInsert(Position{Row: 0, Col: 1}), "Empty in-bounds cell is insertable")
		require.False(t, b.CanInsert(Position{Row: 1, Col: 1}), "Occupied cell is not insertable")
		require.False(t, b.CanInsert(Position{Row: -1, Col: 0}), "Out-of-bounds cell is not insertable")
	})
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	b := NewBoard(8, 8, nil)

	t.Run("classifying known cells", func(t *testing.T) {
		require.Equal(t, CornerCell, b.Classify(0, 0))
		require.Equal(t, CornerCell, b.Classify(7, 7))
		require.Equal(t, AroundCornerCell, b.Classify(0, 1))
		require.Equal(t, AroundCornerCell, b.Classify(1, 0))
		require.Equal(t, AroundCornerCell, b.Classify(1, 1))
		require.Equal(t, AroundCornerCell, b.Classify(6, 6))
		require.Equal(t, EdgeCell, b.Classify(0, 2))
		require.Equal(t, EdgeCell, b.Classify(5, 7))
		require.Equal(t, BaseCell, b.Classify(1, 2))
		require.Equal(t, BaseCell, b.Classify(3, 4))
	})

	t.Run("counting each class", func(t *testing.T) {
		counts := map[CellClass]int{}
		for row := 0; row < b.Rows(); row++ {
			for col := 0; col < b.Cols(); col++ {
				counts[b.Classify(row, col)]++
			}
		}
		require.Equal(t, map[CellClass]int{
			CornerCell:       4,
			AroundCornerCell: 12,
			EdgeCell:         16,
			BaseCell:         32,
		}, counts)
	})
}

func TestInitialWeights(t *testing.T) {
	b := NewBoard(8, 8, nil)

	require.Equal(t, 1000, b.Weight(0, 7))
	require.Equal(t, -100, b.Weight(6, 7))
	require.Equal(t, 100, b.Weight(0, 3))
	require.Equal(t, 0, b.Weight(4, 4))
	require.Equal(t, 0, b.Weight(-1, 0), "Out of bounds")

	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			w := b.Weight(row, col)
			require.LessOrEqual(t, w, b.Weight(0, 0), "No cell should outweigh a corner")
			require.GreaterOrEqual(t, w, b.Weight(1, 1), "No cell should weigh less than around-corner")
		}
	}
}

// cornerBoard lets PlayerA take the top-left corner by flipping (0,1).
func cornerBoard(rules Rules) *Board {
	grid := make([][]CellState, 8)
	for i := range grid {
		grid[i] = make([]CellState, 8)
	}
	grid[0][1] = PlayerB
	grid[0][2] = PlayerA
	return FromGrid(grid, PlayerA, rules)
}

func TestEntrenchCorner(t *testing.T) {
	t.Run("capturing a corner promotes its orthogonal neighbours", func(t *testing.T) {
		b := cornerBoard(nil)
		require.Equal(t, -100, b.Weight(0, 1))
		require.Equal(t, -100, b.Weight(1, 0))

		require.Equal(t, []Coord{{Row: 0, Col: 1}}, b.PlaceStone(0, 0))

		require.Equal(t, 100, b.Weight(0, 1))
		require.Equal(t, 100, b.Weight(1, 0))
		require.Equal(t, -100, b.Weight(1, 1), "The diagonal neighbour keeps its weight")
		require.Equal(t, 1000, b.Weight(0, 0))
	})

	t.Run("weights are never lowered", func(t *testing.T) {
		rules := &StandardRules{
			CellWeights: Weights{Base: 0, Corner: 50, Edge: 5, AroundCorner: 20},
			Combination: CombineAdd,
			Depth:       LookaheadFull,
		}
		b := cornerBoard(rules)

		b.PlaceStone(0, 0)

		require.Equal(t, 20, b.Weight(0, 1))
		require.Equal(t, 20, b.Weight(1, 0))
	})

	t.Run("evaluating a corner leaves weights alone", func(t *testing.T) {
		b := cornerBoard(nil)

		e := b.Evaluate(0, 0)

		require.True(t, e.Legal())
		require.Equal(t, -100, b.Weight(0, 1))
		require.Equal(t, -100, b.Weight(1, 0))
	})
}

func TestWithRules(t *testing.T) {
	b := cornerBoard(nil)
	b.PlaceStone(0, 0)

	m := b.WithRules(NewMultiplicativeRules())

	require.Equal(t, 10, m.Weight(0, 0))
	require.Equal(t, 3, m.Weight(0, 1), "Occupied corner should promote its neighbours")
	require.Equal(t, 3, m.Weight(1, 0))
	require.Equal(t, -3, m.Weight(1, 1))
	require.Equal(t, 1, m.Weight(4, 4))
	require.Equal(t, b.Hash(), m.Hash(), "Occupancy and mover are unchanged")
	require.Equal(t, 100, b.Weight(0, 1), "Original keeps its weights")
}

func TestIsCorner(t *testing.T) {
	b := NewBoard(4, 6, nil)

	require.True(t, b.IsCorner(0, 0))
	require.True(t, b.IsCorner(0, 5))
	require.True(t, b.IsCorner(3, 0))
	require.True(t, b.IsCorner(3, 5))
	require.False(t, b.IsCorner(0, 6), "Out of bounds")
	require.False(t, b.IsCorner(1, 0))
}

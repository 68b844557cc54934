package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const (
	E = Empty
	A = PlayerA
	B = PlayerB
)

// changedCells lists the coordinates whose occupancy differs between two grids.
func changedCells(before, after [][]CellState) []Coord {
	var changed []Coord
	for row := range before {
		for col := range before[row] {
			if before[row][col] != after[row][col] {
				changed = append(changed, Coord{Row: row, Col: col})
			}
		}
	}
	return changed
}

func TestNewBoard(t *testing.T) {
	t.Run("creating an empty board", func(t *testing.T) {
		b := NewBoard(6, 4, nil)

		require.Equal(t, 6, b.Rows())
		require.Equal(t, 4, b.Cols())
		require.Equal(t, PlayerA, b.Turn())
		require.Equal(t, PlayerB, b.Opponent())
		require.Equal(t, [3]int{24, 0, 0}, b.StoneCounts())
		require.Equal(t, EarlyGame, b.Stage())
		require.Zero(t, b.LegalMoveCount())
	})

	t.Run("panics with non-positive dimensions", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(0, 8, nil) })
		require.Panics(t, func() { NewBoard(8, -1, nil) })
	})
}

func TestNewOpeningBoard(t *testing.T) {
	b := NewOpeningBoard(8, 8, nil)

	want := [][]CellState{
		{E, E, E, E, E, E, E, E},
		{E, E, E, E, E, E, E, E},
		{E, E, E, E, E, E, E, E},
		{E, E, E, B, A, E, E, E},
		{E, E, E, A, B, E, E, E},
		{E, E, E, E, E, E, E, E},
		{E, E, E, E, E, E, E, E},
		{E, E, E, E, E, E, E, E},
	}
	if diff := cmp.Diff(want, b.Grid()); diff != "" {
		t.Fatalf("opening mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 2, b.StoneCount(PlayerA))
	require.Equal(t, 2, b.StoneCount(PlayerB))
	require.Equal(t, 60, b.StoneCount(Empty))
	require.Equal(t, PlayerA, b.Turn())
}

func TestFromGrid(t *testing.T) {
	t.Run("copying the grid", func(t *testing.T) {
		grid := [][]CellState{
			{A, B, E},
			{E, E, E},
		}
		b := FromGrid(grid, PlayerB, nil)
		grid[0][0] = B

		require.Equal(t, PlayerA, b.CellAt(0, 0), "Board should not alias the input grid")
		require.Equal(t, PlayerB, b.Turn())
		require.Equal(t, [3]int{4, 1, 1}, b.StoneCounts())
	})

	t.Run("panics on malformed input", func(t *testing.T) {
		require.Panics(t, func() { FromGrid(nil, PlayerA, nil) })
		require.Panics(t, func() { FromGrid([][]CellState{{E, E}, {E}}, PlayerA, nil) }, "ragged grid")
		require.Panics(t, func() { FromGrid([][]CellState{{E, 7}}, PlayerA, nil) }, "invalid cell")
		require.Panics(t, func() { FromGrid([][]CellState{{E, E}}, Empty, nil) }, "invalid mover")
	})
}

func TestCellAt(t *testing.T) {
	b := NewOpeningBoard(8, 8, nil)

	require.Equal(t, PlayerB, b.CellAt(3, 3))
	require.Equal(t, PlayerA, b.CellAt(3, 4))
	require.Equal(t, Empty, b.CellAt(0, 0))
	require.Equal(t, Empty, b.CellAt(-1, 3), "Out of bounds should read as empty")
	require.Equal(t, Empty, b.CellAt(3, 8), "Out of bounds should read as empty")
}

func TestPlaceStone(t *testing.T) {
	t.Run("applying a single-flip move", func(t *testing.T) {
		b := NewOpeningBoard(8, 8, nil)
		before := b.Grid()

		flips := b.PlaceStone(2, 3)

		require.Equal(t, []Coord{{Row: 3, Col: 3}}, flips)
		require.ElementsMatch(t, []Coord{{Row: 2, Col: 3}, {Row: 3, Col: 3}}, changedCells(before, b.Grid()),
			"Should change the played cell and the flipped disk only")
		require.Equal(t, 4, b.StoneCount(PlayerA))
		require.Equal(t, 1, b.StoneCount(PlayerB))
		require.Equal(t, 5, b.TotalStones())
		require.Equal(t, PlayerB, b.Turn(), "Turn should pass to the opponent")
	})

	t.Run("ignoring an illegal move", func(t *testing.T) {
		b := NewOpeningBoard(8, 8, nil)
		hash := b.Hash()

		require.Nil(t, b.PlaceStone(0, 0), "No flips")
		require.Nil(t, b.PlaceStone(3, 3), "Occupied")
		require.Nil(t, b.PlaceStone(-1, 9), "Out of bounds")

		require.Equal(t, hash, b.Hash(), "Board should not change")
		require.Equal(t, PlayerA, b.Turn(), "Turn should not change")
	})

	t.Run("flipping in several directions", func(t *testing.T) {
		b := FromGrid([][]CellState{
			{A, E, A, E, A},
			{E, B, B, B, E},
			{A, B, E, B, A},
			{E, B, B, B, E},
			{A, E, A, E, A},
		}, PlayerA, nil)

		flips := b.PlaceStone(2, 2)

		require.Len(t, flips, 8)
		for _, f := range flips {
			require.Equal(t, PlayerA, b.CellAt(f.Row, f.Col))
		}
		require.Zero(t, b.StoneCount(PlayerB))
		require.Equal(t, 17, b.StoneCount(PlayerA))
	})
}

func TestNoLegalMoves(t *testing.T) {
	b := FromGrid([][]CellState{
		{A, A, A, A},
		{A, A, A, A},
		{A, A, E, E},
		{E, E, E, E},
	}, PlayerB, nil)
	hash := b.Hash()

	require.Zero(t, b.LegalMoveCount())
	require.Empty(t, b.LegalMoves())
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			require.Nil(t, b.PlaceStone(row, col))
		}
	}
	require.Equal(t, hash, b.Hash(), "Placements should all be no-ops")

	b.ChangeTurn()

	require.Equal(t, PlayerA, b.Turn())
	require.Equal(t, PlayerB, b.Opponent())
	require.NotEqual(t, hash, b.Hash(), "Passing should change the side to move")
}

func TestClone(t *testing.T) {
	b := NewOpeningBoard(8, 8, nil)
	clone := b.Clone()

	clone.PlaceStone(2, 3)

	require.Equal(t, PlayerB, b.CellAt(3, 3), "Original should not see the clone's move")
	require.Equal(t, PlayerA, b.Turn())
	require.Equal(t, 4, b.TotalStones())
	require.Equal(t, 5, clone.TotalStones())
}

func TestStoneCountInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewOpeningBoard(8, 8, nil)
	passes := 0
	for passes < 2 {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			b.ChangeTurn()
			passes++
			continue
		}
		passes = 0
		m := moves[rng.Intn(len(moves))]
		b.PlaceStone(m.Row, m.Col)

		counts := b.StoneCounts()
		require.Equal(t, b.TotalCells(), counts[Empty]+counts[PlayerA]+counts[PlayerB])
		require.Equal(t, StageFor(b.TotalStones(), b.TotalCells()), b.Stage())
	}
}

func TestWinner(t *testing.T) {
	require.Equal(t, Empty, NewOpeningBoard(8, 8, nil).Winner(), "Tied counts should be a draw")
	require.Equal(t, PlayerA, FromGrid([][]CellState{{A, A, B}}, PlayerA, nil).Winner())
	require.Equal(t, PlayerB, FromGrid([][]CellState{{B, E, E}}, PlayerA, nil).Winner())
}

func TestMoveString(t *testing.T) {
	require.Equal(t, "d3", PlaceAt(2, 3).String())
	require.Equal(t, "a1", PlaceAt(0, 0).String())
	require.Equal(t, "h8", PlaceAt(7, 7).String())
	require.Equal(t, "PASS", PassMove().String())
}

func TestBoardString(t *testing.T) {
	b := FromGrid([][]CellState{{A, E}, {E, B}}, PlayerA, nil)
	require.Equal(t, "B.\n.W\n", b.String())
}

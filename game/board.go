package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Board is the authoritative game state: occupancy, positional weights, the mover and
// cached stone counts. Lookahead works on Clone()d copies and never touches the original.
type Board struct {
	rows   int
	cols   int
	cells  []CellState // row-major
	weight []int       // row-major, same shape as cells
	turn   CellState
	counts [3]int // indexed by CellState
	stage  Stage
	rules  Rules
}

// NewBoard returns an empty rows x cols board with PlayerA to move.
func NewBoard(rows, cols int, rules Rules) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", rows, cols))
	}
	if rules == nil {
		rules = NewStandardRules()
	}
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
		turn:  PlayerA,
		rules: rules,
	}
	b.initWeights()
	b.recount()
	return b
}

// NewOpeningBoard returns the standard starting position: the central 2x2 square with
// PlayerB on the main diagonal, PlayerA on the other, and PlayerA to move.
func NewOpeningBoard(rows, cols int, rules Rules) *Board {
	if rows < 2 || cols < 2 {
		panic(fmt.Sprintf("board %dx%d is too small for an opening", rows, cols))
	}
	b := NewBoard(rows, cols, rules)
	r, c := rows/2-1, cols/2-1
	b.cells[b.index(r, c)] = PlayerB
	b.cells[b.index(r, c+1)] = PlayerA
	b.cells[b.index(r+1, c)] = PlayerA
	b.cells[b.index(r+1, c+1)] = PlayerB
	b.recount()
	return b
}

// FromGrid copies an occupancy grid into a new board with the given mover.
func FromGrid(grid [][]CellState, turn CellState, rules Rules) *Board {
	if len(grid) == 0 || len(grid[0]) == 0 {
		panic("empty grid")
	}
	if !isPlayer(turn) {
		panic(fmt.Sprintf("invalid mover %d", turn))
	}
	b := NewBoard(len(grid), len(grid[0]), rules)
	for row, line := range grid {
		if len(line) != b.cols {
			panic(fmt.Sprintf("ragged grid: row %d has %d cells, want %d", row, len(line), b.cols))
		}
		for col, cell := range line {
			if cell != Empty && !isPlayer(cell) {
				panic(fmt.Sprintf("invalid cell value %d at %d,%d", cell, row, col))
			}
			b.cells[b.index(row, col)] = cell
		}
	}
	b.turn = turn
	b.recount()
	return b
}

// Clone returns a deep copy of the board; no slice is shared with the original.
func (b *Board) Clone() *Board {
	cells := make([]CellState, len(b.cells))
	copy(cells, b.cells)

	weight := make([]int, len(b.weight))
	copy(weight, b.weight)

	return &Board{
		rows:   b.rows,
		cols:   b.cols,
		cells:  cells,
		weight: weight,
		turn:   b.turn,
		counts: b.counts,
		stage:  b.stage,
		rules:  b.rules, // Rules are read-only
	}
}

// WithRules returns a copy of the board scored by rules. Weights are rebuilt for the new
// rules, treating every occupied corner as captured.
func (b *Board) WithRules(rules Rules) *Board {
	if rules == nil {
		rules = NewStandardRules()
	}
	c := b.Clone()
	c.rules = rules
	c.initWeights()
	for _, row := range []int{0, b.rows - 1} {
		for _, col := range []int{0, b.cols - 1} {
			if c.cells[c.index(row, col)] != Empty {
				c.entrenchCorner(row, col)
			}
		}
	}
	return c
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Rules returns the heuristic configuration the board scores with.
func (b *Board) Rules() Rules { return b.rules }

// CellAt returns the occupancy at (row, col), or Empty when out of bounds.
func (b *Board) CellAt(row, col int) CellState {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[b.index(row, col)]
}

// Grid returns a copy of the occupancy as rows of cells.
func (b *Board) Grid() [][]CellState {
	grid := make([][]CellState, b.rows)
	for row := range grid {
		grid[row] = make([]CellState, b.cols)
		copy(grid[row], b.cells[b.index(row, 0):b.index(row, 0)+b.cols])
	}
	return grid
}

// Weight returns the current positional weight at (row, col), or 0 when out of bounds.
func (b *Board) Weight(row, col int) int {
	if !b.InBounds(row, col) {
		return 0
	}
	return b.weight[b.index(row, col)]
}

// Turn returns the player to move.
func (b *Board) Turn() CellState { return b.turn }

// Opponent returns the player not to move.
func (b *Board) Opponent() CellState { return Opponent(b.turn) }

func (b *Board) StoneCount(c CellState) int {
	if c < Empty || c > PlayerB {
		return 0
	}
	return b.counts[c]
}

// StoneCounts returns the cached counts indexed by CellState.
func (b *Board) StoneCounts() [3]int { return b.counts }

func (b *Board) TotalStones() int {
	return b.counts[PlayerA] + b.counts[PlayerB]
}

func (b *Board) TotalCells() int {
	return b.rows * b.cols
}

func (b *Board) Stage() Stage { return b.stage }

// recount refreshes the stone counts and the stage derived from them.
func (b *Board) recount() {
	b.counts = [3]int{}
	for _, cell := range b.cells {
		b.counts[cell]++
	}
	b.stage = StageFor(b.TotalStones(), b.TotalCells())
}

// ChangeTurn hands the move to the opponent without placing a stone.
func (b *Board) ChangeTurn() {
	b.turn = Opponent(b.turn)
}

// PlaceStone plays the mover at (row, col) and returns the captured cells. An illegal
// placement is a no-op and returns nil.
func (b *Board) PlaceStone(row, col int) []Coord {
	flips, _, _ := b.scan(row, col)
	if len(flips) == 0 {
		return nil
	}

	b.cells[b.index(row, col)] = b.turn
	for _, f := range flips {
		b.cells[b.index(f.Row, f.Col)] = b.turn
	}
	if b.IsCorner(row, col) {
		b.entrenchCorner(row, col)
	}
	b.recount()
	b.ChangeTurn()
	return flips
}

// Winner returns the player with more stones, or Empty on a tie.
func (b *Board) Winner() CellState {
	a, w := b.counts[PlayerA], b.counts[PlayerB]
	switch {
	case a > w:
		return PlayerA
	case w > a:
		return PlayerB
	default:
		return Empty
	}
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.turn))
	binary.Write(hasher, binary.LittleEndian, int64(b.rows))
	binary.Write(hasher, binary.LittleEndian, int64(b.cols))
	for _, cell := range b.cells {
		hasher.Write([]byte{byte(cell)})
	}

	return StateHash(hasher.Sum64())
}

// String renders the grid with '.', 'B' and 'W', one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			switch b.CellAt(row, col) {
			case PlayerA:
				sb.WriteByte('B')
			case PlayerB:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

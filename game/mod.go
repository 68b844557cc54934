package game

import "fmt"

// CellState is the occupancy of a single cell.
type CellState int

const (
	Empty   CellState = iota
	PlayerA           // Black, moves first
	PlayerB           // White
)

func (c CellState) String() string {
	switch c {
	case PlayerA:
		return "B"
	case PlayerB:
		return "W"
	default:
		return "N"
	}
}

// Opponent returns the other player, or Empty for Empty.
func Opponent(c CellState) CellState {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

func isPlayer(c CellState) bool {
	return c == PlayerA || c == PlayerB
}

// Coord is a zero-based (row, col) cell position.
type Coord struct {
	Row int
	Col int
}

// String formats the coordinate with a column letter and a 1-based row, e.g. "d3".
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(c.Col), c.Row+1)
}

// Move is either a placement at Coord or a pass.
type Move struct {
	Coord
	Pass bool
}

func PassMove() Move {
	return Move{Pass: true}
}

func PlaceAt(row, col int) Move {
	return Move{Coord: Coord{Row: row, Col: col}}
}

func (m Move) String() string {
	if m.Pass {
		return "PASS"
	}
	return m.Coord.String()
}

type StateHash uint64

// Evaluation is the result of scoring a candidate placement. A move is legal only
// when Flips is non-empty; Score and Openness are zero otherwise.
type Evaluation struct {
	Flips    []Coord
	Score    int
	Openness int
}

func (e Evaluation) Legal() bool {
	return len(e.Flips) > 0
}

package game

import "othello/utils"

// Rotation matrix columns (cos, -sin, sin, cos) for the eight 45 degree turns of the
// unit step (1, 0). Applying column i to (d, 0) gives the i-th compass direction.
var rotations = [4][8]int{
	{1, 1, 0, -1, -1, -1, 0, 1},
	{0, 1, -1, 1, 0, -1, 1, -1},
	{0, -1, 1, -1, 0, 1, -1, 1},
	{1, 1, 0, -1, -1, -1, 0, 1},
}

var directions = buildDirections()

var orthogonals = []Coord{{0, 1}, {-1, 0}, {0, -1}, {1, 0}}

func buildDirections() [8]Coord {
	var dirs [8]Coord
	for i := range dirs {
		dx, dy := 1, 0
		dirs[i] = Coord{
			Row: dx*rotations[2][i] + dy*rotations[3][i],
			Col: dx*rotations[0][i] + dy*rotations[1][i],
		}
	}
	return dirs
}

// surroundings accumulates the neighbourhood used by the openness metric.
type surroundings struct {
	around []Coord
	empty  []Coord
}

func (s *surroundings) collect(b *Board, at, exclude Coord) {
	for _, d := range directions {
		n := Coord{Row: at.Row + d.Row, Col: at.Col + d.Col}
		if !b.InBounds(n.Row, n.Col) || n == exclude {
			continue
		}
		s.around = append(s.around, n)
		if b.cells[b.index(n.Row, n.Col)] == Empty {
			s.empty = append(s.empty, n)
		}
	}
}

func (s *surroundings) merge(other surroundings) {
	s.around = append(s.around, other.around...)
	s.empty = append(s.empty, other.empty...)
}

// scan computes the stones the mover would capture at (row, col) and the neighbourhood
// of those stones. It never mutates the board.
func (b *Board) scan(row, col int) ([]Coord, surroundings, bool) {
	var total surroundings
	if !b.InBounds(row, col) || b.cells[b.index(row, col)] != Empty {
		return nil, total, false
	}

	target := Coord{Row: row, Col: col}
	opponent := Opponent(b.turn)
	var flips []Coord
	limit := max(b.rows, b.cols)
	for _, d := range directions {
		var line []Coord
		var local surroundings
		for step := 1; step < limit; step++ {
			r, c := row+d.Row*step, col+d.Col*step
			if !b.InBounds(r, c) {
				break
			}
			cell := b.cells[b.index(r, c)]
			if cell == Empty {
				break
			}
			if cell == b.turn {
				if len(line) > 0 {
					flips = append(flips, line...)
					total.merge(local)
				}
				break
			}
			if cell == opponent {
				at := Coord{Row: r, Col: c}
				line = append(line, at)
				local.collect(b, at, target)
			}
		}
	}
	return flips, total, true
}

func (b *Board) flipCount(row, col int) int {
	flips, _, _ := b.scan(row, col)
	return len(flips)
}

// IsLegal reports whether the mover may play at (row, col).
func (b *Board) IsLegal(row, col int) bool {
	return b.flipCount(row, col) > 0
}

func (b *Board) LegalMoves() []Coord {
	var moves []Coord
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if b.IsLegal(row, col) {
				moves = append(moves, Coord{Row: row, Col: col})
			}
		}
	}
	return moves
}

func (b *Board) LegalMoveCount() int {
	count := 0
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if b.IsLegal(row, col) {
				count++
			}
		}
	}
	return count
}

// EvaluateShallow scores a placement without looking at the opponent's replies.
func (b *Board) EvaluateShallow(row, col int) Evaluation {
	e := b.evaluate(row, col)
	if !e.Legal() {
		return e
	}
	e.Score = b.rules.Combine(e.Score, b.weight[b.index(row, col)])
	return e
}

// Evaluate scores a placement including a one-ply lookahead at the opponent's options.
// The lookahead runs on clones; the board itself is left untouched.
func (b *Board) Evaluate(row, col int) Evaluation {
	e := b.evaluate(row, col)
	if !e.Legal() {
		return e
	}
	// Only the stage score is weighted; the lookahead is added on top
	e.Score = b.rules.Combine(e.Score, b.weight[b.index(row, col)]) + b.lookahead(row, col)
	return e
}

// evaluate returns the flips, openness and stage score before lookahead and weighting.
func (b *Board) evaluate(row, col int) Evaluation {
	flips, s, ok := b.scan(row, col)
	if !ok || len(flips) == 0 {
		return Evaluation{}
	}

	target := Coord{Row: row, Col: col}
	s.collect(b, target, target)

	captured := make(map[Coord]struct{}, len(flips))
	for _, f := range flips {
		captured[f] = struct{}{}
	}
	var around []Coord
	for _, c := range s.around {
		if _, ok := captured[c]; !ok {
			around = append(around, c)
		}
	}

	openness := utils.Percent(utils.CountUnique(s.empty), utils.CountUnique(around))
	return Evaluation{
		Flips:    flips,
		Score:    b.rules.StageScore(b.stage, len(flips), openness),
		Openness: openness,
	}
}

// lookahead compares the opponent's options before and after the placement.
func (b *Board) lookahead(row, col int) int {
	mode := b.rules.Lookahead()
	if mode == LookaheadNone {
		return 0
	}

	before := b.Clone()
	before.ChangeTurn()
	after := b.Clone()
	after.PlaceStone(row, col)

	nextCount := after.LegalMoveCount()
	adjust := 0
	if mode.mobility() {
		adjust -= nextCount - before.LegalMoveCount()
	}
	if !mode.unlocked() {
		return adjust
	}

	w := b.rules.Weights()
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if !after.IsLegal(r, c) || before.IsLegal(r, c) {
				continue
			}
			switch b.Classify(r, c) {
			case EdgeCell:
				adjust -= w.Edge
			case CornerCell:
				adjust -= w.Corner
			case AroundCornerCell:
				// A forced move next to a corner is less of a gift
				if nextCount == 1 {
					adjust -= w.AroundCorner
				}
			}
		}
	}
	return adjust
}

package game

// CellClass is the geometric class that decides a cell's initial weight.
type CellClass int

const (
	BaseCell CellClass = iota
	EdgeCell
	AroundCornerCell
	CornerCell
)

// Classify returns the class of (row, col); corner beats around-corner beats edge.
func (b *Board) Classify(row, col int) CellClass {
	switch {
	case b.IsCorner(row, col):
		return CornerCell
	case b.IsAroundCorner(row, col):
		return AroundCornerCell
	case b.IsEdge(row, col):
		return EdgeCell
	default:
		return BaseCell
	}
}

func (b *Board) initWeights() {
	w := b.rules.Weights()
	b.weight = make([]int, b.rows*b.cols)
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			b.weight[b.index(row, col)] = weightFor(b.Classify(row, col), w)
		}
	}
}

func weightFor(class CellClass, w Weights) int {
	switch class {
	case CornerCell:
		return w.Corner
	case AroundCornerCell:
		return w.AroundCorner
	case EdgeCell:
		return w.Edge
	default:
		return w.Base
	}
}

// entrenchCorner promotes the orthogonal neighbours of a captured corner to the edge
// weight. Weights only ever go up.
func (b *Board) entrenchCorner(row, col int) {
	edge := b.rules.Weights().Edge
	for _, d := range orthogonals {
		r, c := row+d.Row, col+d.Col
		if !b.InBounds(r, c) {
			continue
		}
		if i := b.index(r, c); b.weight[i] < edge {
			b.weight[i] = edge
		}
	}
}

func (b *Board) boundaryRow(row int) bool { return row == 0 || row == b.rows-1 }
func (b *Board) boundaryCol(col int) bool { return col == 0 || col == b.cols-1 }
func (b *Board) innerRow(row int) bool    { return row == 1 || row == b.rows-2 }
func (b *Board) innerCol(col int) bool    { return col == 1 || col == b.cols-2 }

func (b *Board) IsCorner(row, col int) bool {
	return b.InBounds(row, col) && b.boundaryRow(row) && b.boundaryCol(col)
}

// IsAroundCorner reports the three cells next to each corner: the two along the edges
// and the diagonal one.
func (b *Board) IsAroundCorner(row, col int) bool {
	if !b.InBounds(row, col) || b.IsCorner(row, col) {
		return false
	}
	if b.boundaryRow(row) {
		return b.innerCol(col)
	}
	if b.innerRow(row) {
		return b.boundaryCol(col) || b.innerCol(col)
	}
	return false
}

func (b *Board) IsEdge(row, col int) bool {
	if !b.InBounds(row, col) || b.IsCorner(row, col) || b.IsAroundCorner(row, col) {
		return false
	}
	return b.boundaryRow(row) || b.boundaryCol(col)
}

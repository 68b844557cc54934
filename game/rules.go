package game

// Weights are the positional scores assigned by cell class.
type Weights struct {
	Base         int
	Corner       int
	Edge         int
	AroundCorner int
}

// Combination selects how the positional weight of the target cell enters the score.
type Combination int

const (
	CombineAdd Combination = iota
	CombineMultiply
)

// Lookahead selects which one-ply lookahead terms are applied by Board.Evaluate.
type Lookahead int

const (
	LookaheadFull     Lookahead = iota // mobility delta and newly unlocked cells
	LookaheadMobility                  // mobility delta only
	LookaheadUnlocked                  // newly unlocked cells only
	LookaheadNone
)

func (l Lookahead) mobility() bool {
	return l == LookaheadFull || l == LookaheadMobility
}

func (l Lookahead) unlocked() bool {
	return l == LookaheadFull || l == LookaheadUnlocked
}

// Rules is the tunable part of the heuristic.
type Rules interface {
	Weights() Weights
	StageScore(stage Stage, flips, openness int) int
	// Combine applies the positional weight of the target cell to the stage score.
	Combine(score, weight int) int
	Lookahead() Lookahead
}

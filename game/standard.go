package game

type StandardRules struct {
	CellWeights Weights
	Combination Combination
	Depth       Lookahead
}

// NewStandardRules adds the cell weight to the score and applies the full lookahead.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		CellWeights: Weights{
			Base:         0,
			Corner:       1000,
			Edge:         100,
			AroundCorner: -100,
		},
		Combination: CombineAdd,
		Depth:       LookaheadFull,
	}
}

// NewMultiplicativeRules multiplies the stage score by the cell weight. The weights are
// rescaled so that interior cells keep their score instead of collapsing to zero.
func NewMultiplicativeRules() *StandardRules {
	return &StandardRules{
		CellWeights: Weights{
			Base:         1,
			Corner:       10,
			Edge:         3,
			AroundCorner: -3,
		},
		Combination: CombineMultiply,
		Depth:       LookaheadFull,
	}
}

func (sr *StandardRules) Weights() Weights {
	return sr.CellWeights
}

func (sr *StandardRules) StageScore(stage Stage, flips, openness int) int {
	switch stage {
	case EarlyGame:
		// Tight positions and few captures early on
		return 100 - openness - flips
	case MiddleGame, LateGame:
		return flips
	default:
		return 0
	}
}

func (sr *StandardRules) Combine(score, weight int) int {
	if sr.Combination == CombineMultiply {
		// The scaled score is at least one so the result has the sign of the weight
		return max(score, 1) * weight
	}
	return score + weight
}

func (sr *StandardRules) Lookahead() Lookahead {
	return sr.Depth
}

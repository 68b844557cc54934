package game

// Stage is a coarse game phase derived from how full the board is.
type Stage int

const (
	EarlyGame Stage = iota
	MiddleGame
	LateGame
	GameOver
)

func (s Stage) String() string {
	switch s {
	case EarlyGame:
		return "early"
	case MiddleGame:
		return "middle"
	case LateGame:
		return "late"
	case GameOver:
		return "over"
	default:
		return "unknown"
	}
}

// StageFor classifies a position by its number of stones on a board of totalCells cells.
func StageFor(totalStones, totalCells int) Stage {
	switch {
	case totalStones >= totalCells:
		return GameOver
	case totalStones >= totalCells*3/4:
		return LateGame
	case totalStones >= totalCells/2:
		return MiddleGame
	default:
		return EarlyGame
	}
}

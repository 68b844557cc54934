package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Evaluated  int // Cells scored
	Candidates int // Legal placements found
	BestScore  int
}

type MoveMetric struct {
	Step   int
	Player string // "B" or "W"
	Move   string // Coordinate notation or "PASS"
	Flips  int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "B", "W" or "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
	BlackStones    int
	WhiteStones    int
}

type Collector interface {
	Start(goroutines int)
	AddEvaluation()
	SetCandidates(count int, best int)
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	evaluated  atomic.Int32
	candidates atomic.Int32
	best       atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.evaluated.Store(0)
	m.candidates.Store(0)
	m.best.Store(0)
}

func (m *collector) AddEvaluation() {
	m.evaluated.Add(1)
}

func (m *collector) SetCandidates(count int, best int) {
	m.candidates.Store(int32(count))
	m.best.Store(int64(best))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Evaluated:  int(m.evaluated.Load()),
		Candidates: int(m.candidates.Load()),
		BestScore:  int(m.best.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)              {}
func (m *dummyCollector) AddEvaluation()                    {}
func (m *dummyCollector) SetCandidates(count int, best int) {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }

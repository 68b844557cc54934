// meta/meta.go
package meta

import "time"

// ROWS and COLS define the standard board size.
const ROWS = 8
const COLS = 8

// GO_ROUTINES defines the number of goroutines the ranker evaluates cells with.
const GO_ROUTINES = 8

// MAX_TURNS caps a game; an 8x8 game needs at most 60 placements plus passes.
const MAX_TURNS = 300

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 30

// Pacing of computer moves when a game is watched.
const BASE_DELAY = 100 * time.Millisecond
const CANDIDATE_DELAY = 100 * time.Millisecond
const PASS_DELAY = 1000 * time.Millisecond

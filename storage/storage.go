// Package storage keeps cumulative per-agent results across experiment runs.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"othello/game"
)

const statsPrefix = "stats/"

// AgentStats are the results of one agent over every recorded game
type AgentStats struct {
	GamesPlayed      int           `json:"games_played"`
	Wins             int           `json:"wins"`
	Losses           int           `json:"losses"`
	Draws            int           `json:"draws"`
	GamesAsBlack     int           `json:"games_as_black"`
	StonesFor        int           `json:"stones_for"`
	StonesAgainst    int           `json:"stones_against"`
	TotalPlayTime    time.Duration `json:"total_play_time"`
	LongestWinStreak int           `json:"longest_win_streak"`
	CurrentStreak    int           `json:"current_streak"`
}

// WinRate returns the win rate as a percentage (0-100)
func (s *AgentStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// GameResult is a finished game between two named agents.
type GameResult struct {
	Black       string // Agent playing PlayerA
	White       string // Agent playing PlayerB
	Winner      game.CellState
	BlackStones int
	WhiteStones int
	Duration    time.Duration
}

// Store wraps BadgerDB
type Store struct {
	db *badger.DB
}

// Open opens the database in dir, or an in-memory database when dir is empty.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable badger logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordGame updates the statistics of both agents in one transaction.
func (s *Store) RecordGame(result GameResult) error {
	if result.Black == "" || result.White == "" {
		return errors.New("game result needs both agent names")
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		black, err := loadStats(txn, result.Black)
		if err != nil {
			return err
		}
		black.GamesAsBlack++
		black.record(outcome(result.Winner, game.PlayerA), result.BlackStones, result.WhiteStones, result.Duration)
		if err := saveStats(txn, result.Black, black); err != nil {
			return err
		}

		// An agent playing itself is counted from both sides
		white, err := loadStats(txn, result.White)
		if err != nil {
			return err
		}
		white.record(outcome(result.Winner, game.PlayerB), result.WhiteStones, result.BlackStones, result.Duration)
		return saveStats(txn, result.White, white)
	})
	if err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}
	return nil
}

// LoadStats loads the statistics of an agent, returning empty stats if none were recorded.
func (s *Store) LoadStats(agent string) (*AgentStats, error) {
	var stats *AgentStats
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = loadStats(txn, agent)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load stats of %s: %w", agent, err)
	}
	return stats, nil
}

// Agents lists every agent with recorded statistics in key order.
func (s *Store) Agents() ([]string, error) {
	var agents []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(statsPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			agents = append(agents, strings.TrimPrefix(key, statsPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

type result int

const (
	loss result = iota
	draw
	win
)

func outcome(winner, side game.CellState) result {
	switch winner {
	case game.Empty:
		return draw
	case side:
		return win
	default:
		return loss
	}
}

func (s *AgentStats) record(r result, stonesFor, stonesAgainst int, duration time.Duration) {
	s.GamesPlayed++
	s.StonesFor += stonesFor
	s.StonesAgainst += stonesAgainst
	s.TotalPlayTime += duration

	switch r {
	case win:
		s.Wins++
		s.CurrentStreak++
		if s.CurrentStreak > s.LongestWinStreak {
			s.LongestWinStreak = s.CurrentStreak
		}
	case draw:
		s.Draws++
		s.CurrentStreak = 0
	default:
		s.Losses++
		s.CurrentStreak = 0
	}
}

func statsKey(agent string) []byte {
	return []byte(statsPrefix + agent)
}

func loadStats(txn *badger.Txn, agent string) (*AgentStats, error) {
	stats := &AgentStats{}

	item, err := txn.Get(statsKey(agent))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return stats, nil // Use empty stats
	}
	if err != nil {
		return nil, err
	}

	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	return stats, err
}

func saveStats(txn *badger.Txn, agent string, stats *AgentStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return txn.Set(statsKey(agent), data)
}

// Package storage records self-play match results so successive tuning runs
// can be compared.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const matchKeyPrefix = "match:"

// MatchResult is the outcome of one completed self-play game.
type MatchResult struct {
	PlayedAt      time.Time     `json:"played_at"`
	Winner        string        `json:"winner"` // "black", "white" or "draw"
	BlackDiscs    int           `json:"black_discs"`
	WhiteDiscs    int           `json:"white_discs"`
	BlackBudgetMs int64         `json:"black_budget_ms"`
	WhiteBudgetMs int64         `json:"white_budget_ms"`
	Plies         int           `json:"plies"`
	Duration      time.Duration `json:"duration"`
}

// Stats aggregates recorded match results.
type Stats struct {
	Games     int `json:"games"`
	BlackWins int `json:"black_wins"`
	WhiteWins int `json:"white_wins"`
	Draws     int `json:"draws"`
}

// BlackWinRate returns black's win rate as a percentage (0-100).
func (s Stats) BlackWinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.BlackWins) / float64(s.Games) * 100
}

// Store wraps BadgerDB for persisting match results.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordMatch appends a match result. Keys sort by record time, so iteration
// returns matches in the order they finished.
func (s *Store) RecordMatch(r MatchResult) error {
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now()
	}

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s%020d", matchKeyPrefix, r.PlayedAt.UnixNano())
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Matches returns all recorded match results in record order.
func (s *Store) Matches() ([]MatchResult, error) {
	var results []MatchResult

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(matchKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var r MatchResult
				if err := json.Unmarshal(val, &r); err != nil {
					return err
				}
				results = append(results, r)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return results, err
}

// Stats aggregates all recorded matches.
func (s *Store) Stats() (Stats, error) {
	matches, err := s.Matches()
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, m := range matches {
		stats.Games++
		switch m.Winner {
		case "black":
			stats.BlackWins++
		case "white":
			stats.WhiteWins++
		default:
			stats.Draws++
		}
	}
	return stats, nil
}

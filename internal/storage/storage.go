package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// UserPreferences stores user settings.
type UserPreferences struct {
	FlipBoard    bool      `json:"flip_board"`
	ShowMoveDots bool      `json:"show_move_dots"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		FlipBoard:    false,
		ShowMoveDots: true,
		LastPlayed:   time.Now(),
	}
}

// MatchStats stores cumulative results across sessions.
type MatchStats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
}

// NewMatchStats returns empty statistics.
func NewMatchStats() *MatchStats {
	return &MatchStats{}
}

// WinRate returns the share of finished games won by White (or Black),
// as a percentage (0-100).
func (s *MatchStats) WinRate(white bool) float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	wins := s.BlackWins
	if white {
		wins = s.WhiteWins
	}
	return float64(wins) / float64(s.GamesPlayed) * 100
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens the database at an explicit directory. Used by tests.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults when none
// are stored yet.
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves match statistics.
func (s *Storage) SaveStats(stats *MatchStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads match statistics, returning empty stats when none
// are stored yet.
func (s *Storage) LoadStats() (*MatchStats, error) {
	stats := NewMatchStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordWin records a finished game and returns the updated statistics.
func (s *Storage) RecordWin(whiteWon bool) (*MatchStats, error) {
	stats, err := s.LoadStats()
	if err != nil {
		return nil, err
	}

	stats.GamesPlayed++
	if whiteWon {
		stats.WhiteWins++
	} else {
		stats.BlackWins++
	}

	if err := s.SaveStats(stats); err != nil {
		return nil, err
	}
	return stats, nil
}

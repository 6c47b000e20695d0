package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := openTestStorage(t)

	// Nothing stored yet: defaults come back.
	prefs, err := s.LoadPreferences()
	require.NoError(t, err)
	require.False(t, prefs.FlipBoard)
	require.True(t, prefs.ShowMoveDots)

	prefs.FlipBoard = true
	prefs.ShowMoveDots = false
	require.NoError(t, s.SavePreferences(prefs))

	loaded, err := s.LoadPreferences()
	require.NoError(t, err)
	require.True(t, loaded.FlipBoard)
	require.False(t, loaded.ShowMoveDots)
	require.False(t, loaded.LastPlayed.IsZero())
}

func TestRecordWin(t *testing.T) {
	s := openTestStorage(t)

	stats, err := s.RecordWin(true)
	require.NoError(t, err)
	stats, err = s.RecordWin(false)
	require.NoError(t, err)
	stats, err = s.RecordWin(true)
	require.NoError(t, err)

	require.Equal(t, 3, stats.GamesPlayed)
	require.Equal(t, 2, stats.WhiteWins)
	require.Equal(t, 1, stats.BlackWins)

	// Survives a reload.
	loaded, err := s.LoadStats()
	require.NoError(t, err)
	require.Equal(t, stats, loaded)
}

func TestWinRate(t *testing.T) {
	stats := NewMatchStats()
	require.Zero(t, stats.WinRate(true))

	stats.GamesPlayed = 10
	stats.WhiteWins = 5
	stats.BlackWins = 3
	require.InDelta(t, 50, stats.WinRate(true), 0.01)
	require.InDelta(t, 30, stats.WinRate(false), 0.01)
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	require.NoError(t, err)
	require.NotEmpty(t, dataDir)

	_, err = os.Stat(dataDir)
	require.NoError(t, err, "data directory should exist")
}

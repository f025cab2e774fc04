package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created with its parent directories")
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveScore("alice", 120, 2, 45)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	scores, err := store.TopScores(10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "alice", scores[0].Name)
}

func TestStoreTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	entries := []struct {
		name              string
		score, level, sec int
	}{
		{"slow", 100, 2, 90},
		{"fast", 100, 2, 30},
		{"best", 250, 3, 200},
		{"low", 10, 1, 5},
	}
	for _, e := range entries {
		id, err := store.SaveScore(e.name, e.score, e.level, e.sec)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	scores, err := store.TopScores(10)
	require.NoError(t, err)
	require.Len(t, scores, 4)

	names := make([]string, len(scores))
	for i, s := range scores {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"best", "fast", "slow", "low"}, names, "score desc, then play time asc")

	assert.Equal(t, 3, scores[0].Level)
	assert.Equal(t, 200, scores[0].PlayTime)
	assert.False(t, scores[0].CreatedAt.IsZero())

	top2, err := store.TopScores(2)
	require.NoError(t, err)
	assert.Len(t, top2, 2)

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 250, high)
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	scores, err := store.TopScores(0)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestStoreSeededLevels(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.AllLevelStats()
	require.NoError(t, err)
	assert.Equal(t, []LevelStat{
		{Level: 1, CompletedTimes: 0, BestTime: DefaultBestTime},
		{Level: 2, CompletedTimes: 0, BestTime: DefaultBestTime},
		{Level: 3, CompletedTimes: 0, BestTime: DefaultBestTime},
	}, stats)
}

func TestStoreLevelCompletionsAndBestTime(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.IncrementLevelCompletions(1))
	require.NoError(t, store.IncrementLevelCompletions(1))
	require.NoError(t, store.UpdateLevelBestTime(1, 42))
	require.NoError(t, store.UpdateLevelBestTime(1, 60))
	require.NoError(t, store.UpdateLevelBestTime(1, 37))

	stat, err := store.LevelStats(1)
	require.NoError(t, err)
	assert.Equal(t, LevelStat{Level: 1, CompletedTimes: 2, BestTime: 37}, stat)
}

func TestStoreLevelBeyondSeeded(t *testing.T) {
	store := openTestStore(t)

	stat, err := store.LevelStats(7)
	require.NoError(t, err)
	assert.Equal(t, LevelStat{Level: 7, BestTime: DefaultBestTime}, stat)

	require.NoError(t, store.IncrementLevelCompletions(7))
	require.NoError(t, store.UpdateLevelBestTime(7, 80))

	stat, err = store.LevelStats(7)
	require.NoError(t, err)
	assert.Equal(t, LevelStat{Level: 7, CompletedTimes: 1, BestTime: 80}, stat)

	all, err := store.AllLevelStats()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestStorePlayerStats(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.IncrementGamesPlayed("alice"))
	require.NoError(t, store.IncrementGamesPlayed("alice"))
	require.NoError(t, store.AddDeath("alice"))
	require.NoError(t, store.AddCoins("alice", 3))
	require.NoError(t, store.AddCoins("alice", 1))
	require.NoError(t, store.AddKills("alice", 2))
	require.NoError(t, store.AddPlaytime("alice", 95))

	stat, err := store.PlayerStats("alice")
	require.NoError(t, err)
	assert.Equal(t, PlayerStat{
		Name:           "alice",
		Deaths:         1,
		CoinsCollected: 4,
		EnemiesKilled:  2,
		GamesPlayed:    2,
		PlayTime:       95,
	}, stat)
}

func TestStorePlayerStatsUnknown(t *testing.T) {
	store := openTestStore(t)

	stat, err := store.PlayerStats("nobody")
	require.NoError(t, err)
	assert.Equal(t, PlayerStat{Name: "nobody"}, stat)
}

func TestStoreAllPlayerStats(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.IncrementGamesPlayed("bob"))
	require.NoError(t, store.IncrementGamesPlayed("alice"))
	require.NoError(t, store.IncrementGamesPlayed("alice"))
	require.NoError(t, store.AddDeath("carol"))

	stats, err := store.AllPlayerStats()
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, "alice", stats[0].Name)
	assert.Equal(t, "bob", stats[1].Name)
	assert.Equal(t, "carol", stats[2].Name)
	assert.Equal(t, 1, stats[2].Deaths)
}

func TestStoreClearAll(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore("alice", 100, 1, 10)
	require.NoError(t, err)
	require.NoError(t, store.AddDeath("alice"))
	require.NoError(t, store.IncrementLevelCompletions(2))
	require.NoError(t, store.UpdateLevelBestTime(2, 15))
	require.NoError(t, store.IncrementLevelCompletions(5))

	require.NoError(t, store.ClearAll())

	scores, err := store.TopScores(10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	players, err := store.AllPlayerStats()
	require.NoError(t, err)
	assert.Empty(t, players)

	levels, err := store.AllLevelStats()
	require.NoError(t, err)
	for _, l := range levels {
		assert.Zero(t, l.CompletedTimes, "level %d", l.Level)
		assert.Equal(t, DefaultBestTime, l.BestTime, "level %d", l.Level)
	}
}

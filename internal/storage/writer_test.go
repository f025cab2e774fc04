package storage

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterDrainsOnClose(t *testing.T) {
	store := openTestStore(t)
	w := NewWriter(store, nil, 0)

	w.RecordGameStarted("alice")
	for range 5 {
		w.RecordCoin("alice", 1)
	}
	w.RecordKill("alice", 2)
	w.RecordDeath("alice")
	w.RecordPlaytime("alice", 30)
	w.RecordScore("alice", 100, 2, 30)
	w.RecordLevelCompleted(1)
	w.RecordLevelBestTime(1, 12)
	w.Close()

	stat, err := store.PlayerStats("alice")
	require.NoError(t, err)
	assert.Equal(t, PlayerStat{
		Name:           "alice",
		Deaths:         1,
		CoinsCollected: 5,
		EnemiesKilled:  2,
		GamesPlayed:    1,
		PlayTime:       30,
	}, stat)

	scores, err := store.TopScores(10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 100, scores[0].Score)

	level, err := store.LevelStats(1)
	require.NoError(t, err)
	assert.Equal(t, LevelStat{Level: 1, CompletedTimes: 1, BestTime: 12}, level)
}

func TestWriterConcurrentRecorders(t *testing.T) {
	store := openTestStore(t)
	w := NewWriter(store, nil, 1000)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				w.RecordCoin("shared", 1)
			}
		}()
	}
	wg.Wait()
	w.Close()

	stat, err := store.PlayerStats("shared")
	require.NoError(t, err)
	assert.Equal(t, 100, stat.CoinsCollected)
}

func TestWriterQueueFullDrops(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer

	// Holding the only connection stalls the writer goroutine.
	tx, err := store.db.Begin()
	require.NoError(t, err)

	w := NewWriter(store, log.New(&buf), 2)

	start := time.Now()
	for range 50 {
		w.RecordCoin("alice", 1)
	}
	assert.Less(t, time.Since(start), time.Second, "recording must not wait for the store")
	assert.Contains(t, buf.String(), "queue full")

	require.NoError(t, tx.Rollback())
	w.Close()

	stat, err := store.PlayerStats("alice")
	require.NoError(t, err)
	assert.Positive(t, stat.CoinsCollected)
	assert.Less(t, stat.CoinsCollected, 50)
}

func TestWriterAfterCloseDropsAndLogs(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	w := NewWriter(store, log.New(&buf), 0)
	w.Close()
	w.Close()

	assert.NotPanics(t, func() { w.RecordDeath("late") })
	assert.Contains(t, buf.String(), "dropping write")

	stat, err := store.PlayerStats("late")
	require.NoError(t, err)
	assert.Zero(t, stat.Deaths)
}

func TestWriterLogsFailures(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	w := NewWriter(store, log.New(&buf), 0)

	require.NoError(t, store.Close())
	w.RecordDeath("alice")
	w.Close()

	assert.Contains(t, buf.String(), "stats write failed")
}

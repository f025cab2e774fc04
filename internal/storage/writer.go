package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultQueueSize is the number of pending writes a Writer buffers.
const DefaultQueueSize = 256

// job is one deferred database write.
type job struct {
	op  string
	run func(*Store) error
}

// Writer applies statistics to a Store on its own goroutine.
// Recording never blocks the caller: when the queue is full the write is
// dropped and logged. Failed writes are logged and never reported back.
type Writer struct {
	store  *Store
	logger *log.Logger
	jobs   chan job
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var _ core.StatsRecorder = (*Writer)(nil)

// NewWriter starts a writer over store. A nil logger discards messages.
func NewWriter(store *Store, logger *log.Logger, queueSize int) *Writer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	w := &Writer{
		store:  store,
		logger: logger,
		jobs:   make(chan job, queueSize),
	}
	w.wg.Add(1)
	go w.loop()
	return w
}

func (w *Writer) loop() {
	defer w.wg.Done()
	for j := range w.jobs {
		if err := j.run(w.store); err != nil {
			w.logger.Error("stats write failed", "op", j.op, "err", err)
		}
	}
}

func (w *Writer) enqueue(op string, run func(*Store) error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		w.logger.Warn("stats writer closed, dropping write", "op", op)
		return
	}

	select {
	case w.jobs <- job{op: op, run: run}:
	default:
		w.logger.Warn("stats queue full, dropping write", "op", op)
	}
}

// Close stops accepting writes and waits for pending ones to finish.
func (w *Writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.jobs)
	w.mu.Unlock()

	w.wg.Wait()
}

// RecordScore saves a finished game.
func (w *Writer) RecordScore(name string, score, level, elapsedSecs int) {
	w.enqueue("score", func(s *Store) error {
		_, err := s.SaveScore(name, score, level, elapsedSecs)
		return err
	})
}

// RecordDeath counts a death.
func (w *Writer) RecordDeath(name string) {
	w.enqueue("death", func(s *Store) error { return s.AddDeath(name) })
}

// RecordCoin counts collected coins.
func (w *Writer) RecordCoin(name string, count int) {
	w.enqueue("coin", func(s *Store) error { return s.AddCoins(name, count) })
}

// RecordKill counts defeated enemies.
func (w *Writer) RecordKill(name string, count int) {
	w.enqueue("kill", func(s *Store) error { return s.AddKills(name, count) })
}

// RecordGameStarted counts a started game.
func (w *Writer) RecordGameStarted(name string) {
	w.enqueue("game_started", func(s *Store) error { return s.IncrementGamesPlayed(name) })
}

// RecordPlaytime adds play time.
func (w *Writer) RecordPlaytime(name string, secs int) {
	w.enqueue("playtime", func(s *Store) error { return s.AddPlaytime(name, secs) })
}

// RecordLevelCompleted counts a level completion.
func (w *Writer) RecordLevelCompleted(level int) {
	w.enqueue("level_completed", func(s *Store) error { return s.IncrementLevelCompletions(level) })
}

// RecordLevelBestTime offers a new best time for a level.
func (w *Writer) RecordLevelBestTime(level, secs int) {
	w.enqueue("level_best_time", func(s *Store) error { return s.UpdateLevelBestTime(level, secs) })
}

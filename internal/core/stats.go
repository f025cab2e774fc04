package core

// StatsRecorder receives gameplay statistics as they happen.
//
// Calls are fire-and-forget from the simulation's point of view: methods
// return nothing and must never block the tick. Implementations that touch
// slow storage defer the work.
type StatsRecorder interface {
	RecordScore(name string, score, level, elapsedSecs int)
	RecordDeath(name string)
	RecordCoin(name string, count int)
	RecordKill(name string, count int)
	RecordGameStarted(name string)
	RecordPlaytime(name string, secs int)
	RecordLevelCompleted(level int)
	RecordLevelBestTime(level, secs int)
}

// NopRecorder discards every statistic.
type NopRecorder struct{}

func (NopRecorder) RecordScore(string, int, int, int) {}
func (NopRecorder) RecordDeath(string)                {}
func (NopRecorder) RecordCoin(string, int)            {}
func (NopRecorder) RecordKill(string, int)            {}
func (NopRecorder) RecordGameStarted(string)          {}
func (NopRecorder) RecordPlaytime(string, int)        {}
func (NopRecorder) RecordLevelCompleted(int)          {}
func (NopRecorder) RecordLevelBestTime(int, int)      {}

var _ StatsRecorder = NopRecorder{}

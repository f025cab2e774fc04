package platformer

// Event is something that happened during a scene update.
// The session turns events into score, lives and statistics.
type Event interface {
	sceneEvent()
}

// CoinCollected is emitted when the player picks up a coin.
type CoinCollected struct {
	Points int
}

func (CoinCollected) sceneEvent() {}

// EnemyKilled is emitted when a sword hits an enemy.
type EnemyKilled struct {
	Points int
}

func (EnemyKilled) sceneEvent() {}

// PlayerHurt is emitted for every hit the player takes.
type PlayerHurt struct {
	Damage int
	Health int // Health after the hit
}

func (PlayerHurt) sceneEvent() {}

// PlayerFell is emitted when the player drops out of the scene and survives.
type PlayerFell struct{}

func (PlayerFell) sceneEvent() {}

// PlayerDied is emitted once per death, right before the level restarts.
type PlayerDied struct {
	Level int
}

func (PlayerDied) sceneEvent() {}

// LevelComplete is emitted when every coin and enemy is gone.
type LevelComplete struct {
	Level int
	Ticks int // Frames spent on the level
}

func (LevelComplete) sceneEvent() {}

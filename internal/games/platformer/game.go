package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Mode IDs registered with the registry.
const (
	GameID     = "platformer"
	PracticeID = "platformer_practice"
)

// bannerSeconds is how long a level/death banner stays on screen.
const bannerSeconds = 1.5

// Settings chosen on the command line before any game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       = 1
	customLayouts    []Layout
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names mean the
// config file values are used as is.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the level new sessions start on.
func SetStartLevel(level int) {
	startLevel = max(level, 1)
}

// SetLayouts replaces the built-in level table. Nil restores the built-ins.
func SetLayouts(layouts []Layout) {
	customLayouts = layouts
}

// Game is one play session: a scene plus score, lives, time and the
// statistics it reports.
type Game struct {
	id       string
	title    string
	practice bool

	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	scene   *Scene
	stats   core.StatsRecorder

	playerName string
	score      int
	lives      int
	ticks      int
	coins      int
	kills      int
	deaths     int

	paused   bool
	gameOver bool
	saved    bool

	banner      string
	bannerTicks int
}

// New creates a regular game with limited lives.
func New() *Game {
	return &Game{
		id:    GameID,
		title: "Platformer",
		stats: core.NopRecorder{},
	}
}

// NewPractice creates a game with infinite lives that records nothing.
func NewPractice() *Game {
	return &Game{
		id:       PracticeID,
		title:    "Platformer (practice)",
		practice: true,
		stats:    core.NopRecorder{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetRecorder sets where statistics go. Practice games ignore it.
func (g *Game) SetRecorder(r core.StatsRecorder) {
	if r == nil || g.practice {
		return
	}
	g.stats = r
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	if runtime.PlayerName == "" {
		runtime.PlayerName = core.DefaultConfig().PlayerName
	}
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.scene = NewScene(cfg, customLayouts)
	if startLevel > 1 {
		g.scene.LoadLevel(startLevel)
	}

	g.playerName = runtime.PlayerName
	g.score = 0
	g.lives = cfg.Session.Lives
	g.ticks = 0
	g.coins = 0
	g.kills = 0
	g.deaths = 0
	g.paused = false
	g.gameOver = false
	g.saved = false
	g.banner = ""
	g.bannerTicks = 0

	g.stats.RecordGameStarted(g.playerName)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.scene == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	for _, ev := range g.scene.Update(in) {
		g.apply(ev)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) apply(ev Event) {
	switch e := ev.(type) {
	case CoinCollected:
		g.score += e.Points
		g.coins++
		g.stats.RecordCoin(g.playerName, 1)

	case EnemyKilled:
		g.score += e.Points
		g.kills++
		g.stats.RecordKill(g.playerName, 1)

	case PlayerFell:
		g.showBanner("Ouch! Watch your step")

	case PlayerDied:
		g.deaths++
		g.stats.RecordDeath(g.playerName)
		if g.practice {
			g.showBanner(fmt.Sprintf("You died! Level %d restarts", e.Level))
			return
		}
		g.lives--
		if g.lives <= 0 {
			g.lives = 0
			g.gameOver = true
			g.saveProgress()
			return
		}
		g.showBanner(fmt.Sprintf("You died! %d lives left", g.lives))

	case LevelComplete:
		g.stats.RecordLevelCompleted(e.Level)
		g.stats.RecordLevelBestTime(e.Level, e.Ticks/g.runtime.TickRate)
		g.showBanner(fmt.Sprintf("Level %d complete!", e.Level))
	}
}

func (g *Game) showBanner(text string) {
	g.banner = text
	g.bannerTicks = int(bannerSeconds * float64(g.runtime.TickRate))
}

// saveProgress writes the final score and play time exactly once.
func (g *Game) saveProgress() {
	if g.saved {
		return
	}
	g.saved = true
	elapsed := g.elapsedSecs()
	g.stats.RecordScore(g.playerName, g.score, g.scene.Level(), elapsed)
	g.stats.RecordPlaytime(g.playerName, elapsed)
}

// Finish saves progress when the player quits mid-game.
// A session that never scored only records its play time.
func (g *Game) Finish() {
	if g.saved || g.scene == nil {
		return
	}
	if g.score > 0 {
		g.saveProgress()
		return
	}
	if g.ticks > 0 {
		g.saved = true
		g.stats.RecordPlaytime(g.playerName, g.elapsedSecs())
	}
}

func (g *Game) elapsedSecs() int {
	return g.ticks / g.runtime.TickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.practice {
		st.Lives = -1
	}
	if g.scene != nil {
		st.Level = g.scene.Level()
		st.Health = g.scene.Player().Health
		st.ElapsedSecs = g.elapsedSecs()
	}
	return st
}

// Totals returns the coins collected, enemies killed and deaths so far.
func (g *Game) Totals() (coins, kills, deaths int) {
	return g.coins, g.kills, g.deaths
}

// Scene exposes the running scene.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Banner returns the message currently overlaid on the view, if any.
func (g *Game) Banner() string {
	if g.bannerTicks <= 0 {
		return ""
	}
	return g.banner
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	if g.scene == nil {
		return
	}
	r := renderer{snap: g.scene.Snapshot(), state: g.State()}
	r.draw(dst)

	switch {
	case g.gameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Coins: %d  Kills: %d  |  R to restart", g.score, g.coins, g.kills))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.Banner() != "":
		drawCenteredMessage(dst, g.Banner(), fmt.Sprintf("Level %d: %s", g.scene.Level(), g.scene.LevelName()))
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(PracticeID, func() registry.Game {
		return NewPractice()
	})
}

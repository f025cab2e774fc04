package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelsDir  string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the platformer",
	Long: `Start playing. The default mode is "platformer" with limited lives;
"platformer_practice" has unlimited lives and records nothing.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump
  F/J, left click  - Sword attack
  P/Enter          - Pause
  R                - Restart (after game over)
  Esc/B            - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, softer hits and falls
  normal - Values from the config file
  hard   - Fewer lives, harder hits and falls

Examples:
  platformer play
  platformer play --difficulty hard --level 2
  platformer play platformer_practice
  platformer play --levels ./levels
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that shape a game session.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on")
	cmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files replacing the built-in levels")
}

// setupGame applies the game flags and returns the runtime config for
// the current terminal.
func setupGame() (core.RuntimeConfig, error) {
	gameCfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return core.RuntimeConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetStartLevel(flagLevel)

	if flagLevelsDir != "" {
		layouts, err := levels.NewLoader(flagLevelsDir).LoadLayouts()
		if err != nil {
			return core.RuntimeConfig{}, err
		}
		platformer.SetLayouts(layouts)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		PlayerName: playerName(),
		HoldTicks:  gameCfg.Input.HoldTicks,
	}, nil
}

// statsSink is the database a local session reads and writes.
// Either field is nil when the database could not be opened.
type statsSink struct {
	store  *storage.Store
	writer *storage.Writer
}

// openStats opens the database. Failing to open it only costs the
// statistics, the game still runs.
func openStats(logger *log.Logger) statsSink {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open stats database: %v\n", err)
		logger.Warn("playing without stats", "error", err)
		return statsSink{}
	}
	return statsSink{
		store:  store,
		writer: storage.NewWriter(store, logger, storage.DefaultQueueSize),
	}
}

// recorder returns the writer as a StatsRecorder, nil without a database.
func (s statsSink) recorder() core.StatsRecorder {
	if s.writer == nil {
		return nil
	}
	return s.writer
}

// Close flushes pending writes and closes the database.
func (s statsSink) Close() {
	if s.writer != nil {
		s.writer.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := platformer.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available modes.")
		os.Exit(1)
	}

	cfg, err := setupGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.PlayerName == "" {
		cfg.PlayerName = core.DefaultConfig().PlayerName
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	stats := openStats(logger)

	logger.Info("game started", "mode", gameID, "player", cfg.PlayerName)
	_, runErr := tui.Run(game, stats.recorder(), cfg)
	logger.Info("game ended", "mode", gameID, "state", fmt.Sprintf("%+v", game.State()))

	// Close before potential exit so pending stats are written
	stats.Close()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// platformer is a terminal platformer: run, jump, slash enemies with a
// sword and collect every coin to clear a level.
//
// Usage:
//
//	platformer list              - List game modes
//	platformer play [mode]       - Play (default mode: platformer)
//	platformer menu              - Start menu with name prompt and scoreboard
//	platformer serve             - Start SSH server for remote play
//	platformer scores            - Show the high score table
//	platformer stats [player]    - Show level and player statistics
//	platformer reset-stats       - Delete all recorded statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.platformer/stats.db)
//	--name <name>   - Player name statistics are recorded under
//	--log <path>    - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagName    string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - jump, slash and collect coins in your terminal",
	Long: `TUI Platformer is a side-view platformer played in the terminal.

Clear a level by collecting every coin and defeating every enemy.
Scores, deaths, kills and level times are kept in a local database.

Available commands:
  list         - Show game modes
  play         - Play directly
  menu         - Interactive menu
  serve        - Start SSH server for remote play
  scores       - View high scores
  stats        - View level and player statistics
  reset-stats  - Delete all statistics

Examples:
  platformer play
  platformer play platformer_practice
  platformer menu --name alice
  platformer serve --ssh :2222
  platformer stats alice`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/stats.db", "Path to statistics database")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Player name (default: $USER)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetStatsCmd)
}

// newLogger opens the --log file. Without one, logs are discarded so they
// never draw over the game screen.
func newLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	return logger, func() { f.Close() }
}

// playerName resolves the --name flag, falling back to the login name.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	return os.Getenv("USER")
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [player]",
	Short: "Show level and player statistics",
	Long: `Display how often each level was completed and its best time,
followed by per-player totals. With a player name only that player's
totals are shown.

Examples:
  platformer stats
  platformer stats alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

var flagResetYes bool

var resetStatsCmd = &cobra.Command{
	Use:   "reset-stats",
	Short: "Delete all recorded statistics",
	Long: `Delete every score and player total and reset level statistics.
Asks for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	Run:  runResetStats,
}

func init() {
	resetStatsCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Do not ask for confirmation")
}

func runStats(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		stat, err := store.PlayerStats(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving player stats: %v\n", err)
			os.Exit(1)
		}
		printPlayer(stat)
		return
	}

	levels, err := store.AllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving level stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Levels")
	fmt.Println()
	fmt.Printf("  %-5s  %-9s  %s\n", "Level", "Completed", "Best")
	fmt.Printf("  %-5s  %-9s  %s\n", "-----", "---------", "----")
	for _, l := range levels {
		best := "-"
		if l.BestTime < storage.DefaultBestTime {
			best = clock(l.BestTime)
		}
		fmt.Printf("  %-5d  %-9d  %s\n", l.Level, l.CompletedTimes, best)
	}

	players, err := store.AllPlayerStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving player stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Players")
	fmt.Println()
	if len(players) == 0 {
		fmt.Println("  No player statistics yet.")
		return
	}
	fmt.Printf("  %-16s  %-5s  %-5s  %-5s  %-6s  %s\n", "Name", "Games", "Coins", "Kills", "Deaths", "Played")
	fmt.Printf("  %-16s  %-5s  %-5s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----", "------", "------")
	for _, p := range players {
		fmt.Printf("  %-16s  %-5d  %-5d  %-5d  %-6d  %s\n",
			p.Name, p.GamesPlayed, p.CoinsCollected, p.EnemiesKilled, p.Deaths, clock(p.PlayTime))
	}
}

func printPlayer(p storage.PlayerStat) {
	fmt.Printf("Player %s\n", p.Name)
	fmt.Println()
	fmt.Printf("  Games played:    %d\n", p.GamesPlayed)
	fmt.Printf("  Coins collected: %d\n", p.CoinsCollected)
	fmt.Printf("  Enemies killed:  %d\n", p.EnemiesKilled)
	fmt.Printf("  Deaths:          %d\n", p.Deaths)
	fmt.Printf("  Play time:       %s\n", clock(p.PlayTime))
}

func runResetStats(_ *cobra.Command, _ []string) {
	if !flagResetYes {
		fmt.Printf("Delete all statistics in %s? [y/N] ", flagDBPath)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing statistics: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("All statistics cleared.")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the best scores. Ties are broken by the shorter play time.

Examples:
  platformer scores
  platformer scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-6s  %s\n", "Rank", "Name", "Score", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-6s  %s\n", "----", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %-5d  %-6s  %s\n",
			i+1, entry.Name, entry.Score, entry.Level,
			clock(entry.PlayTime), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// clock renders seconds as m:ss.
func clock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/orbfall/internal/platform/tui"
	"github.com/vovakirdan/orbfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top recorded rounds, with the board each was played on.

Examples:
  orbfall scores
  orbfall scores --limit 25
  orbfall scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Orbfall")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'orbfall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %-10s  %s\n", "Rank", "Score", "Board", "Seed", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %-10s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-12s  %-10d  %s\n", i+1, entry.Score, entry.Preset, entry.Seed, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil && stats.RoundsCount > 0 {
		fmt.Printf("Best: %d  (%d rounds, average %.0f)\n", stats.HighScore, stats.RoundsCount, stats.AvgScore)
	}
}

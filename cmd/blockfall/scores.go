package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the leaderboard",
	Long: fmt.Sprintf(`Display the top %d scores.

Examples:
  blockfall scores
  blockfall scores --db ./scores.db
  blockfall scores --clear`, storage.MaxEntries),
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded score")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Leaderboard cleared.")
		return nil
	}

	entries, err := store.Load()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Blockfall")
	fmt.Fprintln(out)

	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Run '%s play' to set the first high score!\n", os.Args[0])
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %s\n", "----", "----", "-----", "----")
	for i, e := range entries {
		fmt.Fprintf(out, "  %-4d  %-12s  %-8d  %s\n", i+1, e.Name, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	sum, err := store.Summary()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Average: %.0f  Last played: %s\n",
			sum.HighScore, sum.AvgScore, sum.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scenekit/internal/registry"
	"github.com/vovakirdan/scenekit/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <demo>",
	Short: "Show high scores for a demo",
	Long: `Display the top high scores for the specified demo.

Examples:
  scenekit scores runner
  scenekit scores runner --limit 20
  scenekit scores runner --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the demo")
}

func runScores(cmd *cobra.Command, args []string) error {
	id := args[0]
	out := cmd.OutOrStdout()

	info, ok := registry.Info(id)
	if !ok {
		return fmt.Errorf("unknown demo %q, run 'scenekit list' to see available demos", id)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(id); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(id, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", info.Title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'scenekit play %s' to set the first high score!\n", id)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-8s  %s\n", "Rank", "Player", "Score", "Ticks", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-8s  %s\n", "----", "------", "-----", "-----", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-12s  %-8d  %-8d  %s\n", i+1, player, e.Score, e.Ticks, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(id)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}

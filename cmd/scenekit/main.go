// scenekit runs sprite scenes in the terminal.
//
// Usage:
//
//	scenekit list              - List available demos
//	scenekit play <demo>       - Run a demo
//	scenekit menu              - Pick demos interactively
//	scenekit serve             - Start SSH server for remote play
//	scenekit scores <demo>     - Show high scores for a demo
//
// Global flags:
//
//	--fps <rate>    - Override the demos' frame rate
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.scenekit/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import demos to register them
	_ "github.com/vovakirdan/scenekit/internal/demos/bounce"
	_ "github.com/vovakirdan/scenekit/internal/demos/runner"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scenekit",
	Short: "scenekit - sprite scenes in your terminal",
	Long: `scenekit runs small sprite scenes on a half-block terminal canvas.

Available commands:
  list     - Show all available demos
  play     - Run a specific demo
  menu     - Interactive demo picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  scenekit list
  scenekit play bounce
  scenekit play runner --difficulty hard
  scenekit serve --ssh :2222
  scenekit scores runner`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use the demo's config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.scenekit/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

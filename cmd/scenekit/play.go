package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scenekit/internal/platform/tui"
	"github.com/vovakirdan/scenekit/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLog        string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Run a demo",
	Long: `Start the specified demo on the terminal canvas.

Controls:
  bounce   - W/B/S/H/C switch the bound action, R recenters
  runner   - Space/Up jump, Enter restarts, Esc/M back to the title
  Q/Ctrl+C - Quit

Difficulty options (runner):
  easy   - Lower hurdles, starts at the base speed
  normal - Starts at 30% of the speed-up
  hard   - Taller hurdles, heavier gravity, starts at 70%
  fixed  - No speed-up

Without --difficulty a tunable demo asks for one first.

Examples:
  scenekit play bounce
  scenekit play runner --difficulty easy
  scenekit play bounce --config ./my-bounce.yaml
  scenekit play runner --log ./runner.log --mute`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLog, "log", "", "Write logs to this file")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := args[0]

	info, ok := registry.Info(id)
	if !ok {
		return fmt.Errorf("unknown demo %q, run 'scenekit list' to see available demos", id)
	}

	difficulty := flagDifficulty
	if info.Tunable && difficulty == "" {
		cols, _ := terminalSize()
		preset, chosen, err := tui.RunDifficultySelector(info.Title, cols)
		if err != nil {
			return err
		}
		if !chosen {
			return nil
		}
		difficulty = string(preset)
	}

	store := openStore(cmd.ErrOrStderr())
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	return playDemo(ctx, id, difficulty, store)
}

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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick demos from an interactive menu",
	Long: `Start scenekit in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a demo.
After a demo ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select demo
  Tab          - High scores
  Q            - Quit

Examples:
  scenekit menu
  scenekit menu --fps 20
  scenekit menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLog, "log", "", "Write logs to this file")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	store := openStore(cmd.ErrOrStderr())
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	for ctx.Err() == nil {
		cols, rows := terminalSize()
		result, err := tui.RunMenu(cols, rows)
		if err != nil {
			return err
		}

		switch {
		case result.Quit:
			return nil
		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(scoreSource(store), cols, rows)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		info, _ := registry.Info(result.DemoID)
		difficulty := ""
		if info.Tunable {
			preset, chosen, err := tui.RunDifficultySelector(info.Title, cols)
			if err != nil {
				return err
			}
			if !chosen {
				continue
			}
			difficulty = string(preset)
		}

		if err := playDemo(ctx, result.DemoID, difficulty, store); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error running %s: %v\n", result.DemoID, err)
		}
	}
	return nil
}

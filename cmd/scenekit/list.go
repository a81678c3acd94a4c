package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scenekit/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Long:  `Shows a list of all demos registered in scenekit.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	demos := registry.List()

	if len(demos) == 0 {
		fmt.Fprintln(out, "No demos available.")
		return
	}

	fmt.Fprintln(out, "Available demos:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, d := range demos {
		maxIDLen = max(maxIDLen, len(d.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, d := range demos {
		title := d.Title
		if d.Tunable {
			title += " (--difficulty)"
		}
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, d.ID, title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'scenekit play <id>' to run a demo.")
}

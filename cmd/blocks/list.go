package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		games := registry.List()
		out := cmd.OutOrStdout()

		if len(games) == 0 {
			fmt.Fprintln(out, "No games available.")
			return
		}

		fmt.Fprintln(out, "Available games:")
		fmt.Fprintln(out)
		for _, g := range games {
			fmt.Fprintf(out, "  %-12s %s\n", g.ID, g.Title)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Use 'blocks play' to start playing.")
	},
}

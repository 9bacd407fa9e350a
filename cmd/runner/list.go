package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all runner modes.`,
	Run: func(cmd *cobra.Command, _ []string) {
		printList(cmd.OutOrStdout())
	},
}

func printList(w io.Writer) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Fprintln(w, "No modes available.")
		return
	}

	fmt.Fprintln(w, "Available modes:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, v := range variants {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'runner play <id>' to play.")
}

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"aoc/internal/puzzle"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List registered days and their input files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, d := range puzzle.All() {
			input := current.cfg.InputPath(d.Number)
			state := "ok"
			if _, err := os.Stat(input); err != nil {
				state = "missing"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Name(), d.Title, input, state)
		}
		return w.Flush()
	},
}

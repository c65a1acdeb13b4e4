package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc/internal/driver"
	"aoc/internal/puzzle"
)

var solveCmd = &cobra.Command{
	Use:   "solve [flags] DAY",
	Short: "Solve one day",
	Long:  `Solve runs one or both parts of a day on its input (default <inputs>/NN.txt from aoc.toml)`,
	Example: `  aoc solve 3
  aoc solve day05 --part 2 --input ~/Downloads/input.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().String("part", "", "solve only this part (1|2)")
	solveCmd.Flags().String("input", "", "input file (default <inputs>/NN.txt)")
	solveCmd.Flags().Bool("no-cache", false, "ignore and do not update the answer cache")
	solveCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	day, err := puzzle.ParseDay(args[0])
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if err := checkFormat(format); err != nil {
		return err
	}

	var parts []puzzle.Part
	partStr, err := cmd.Flags().GetString("part")
	if err != nil {
		return fmt.Errorf("failed to get part flag: %w", err)
	}
	if partStr != "" {
		part, err := puzzle.ParsePart(partStr)
		if err != nil {
			return err
		}
		parts = []puzzle.Part{part}
	}

	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return fmt.Errorf("failed to get input flag: %w", err)
	}
	if input == "" {
		input = current.cfg.InputPath(day)
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	cache, err := current.openCache(noCache)
	if err != nil {
		return err
	}

	res, err := driver.Solve(cmd.Context(), driver.SolveRequest{
		Day:            day,
		Parts:          parts,
		InputPath:      input,
		Cache:          cache,
		MaxDiagnostics: current.maxDiagnostics,
		Timer:          current.timer,
	})
	if err != nil {
		return err
	}

	if err := printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, format); err != nil {
		return err
	}
	if err := printAnswers(cmd.OutOrStdout(), []*driver.SolveResult{res}, format); err != nil {
		return err
	}
	if current.timings {
		printStageTimings(cmd.ErrOrStderr(), res.Timings)
	}
	if res.Failed() {
		return fmt.Errorf("day %d failed", day)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc/internal/driver"
	"aoc/internal/puzzle"
)

var runCmd = &cobra.Command{
	Use:   "run [flags]",
	Short: "Solve several days at once",
	Long:  `Run solves every registered day (or the ones given with --days) concurrently and prints all answers in day order`,
	Example: `  aoc run
  aoc run --days 1,3,5 --ui off --timings`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntSlice("days", nil, "days to solve (default: all registered)")
	runCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	runCmd.Flags().Int("jobs", 0, "days solved concurrently (0 = GOMAXPROCS)")
	runCmd.Flags().Bool("no-cache", false, "ignore and do not update the answer cache")
	runCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runRun(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if err := checkFormat(format); err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	dayNumbers, err := cmd.Flags().GetIntSlice("days")
	if err != nil {
		return fmt.Errorf("failed to get days flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	days, err := selectDays(dayNumbers)
	if err != nil {
		return err
	}
	cache, err := current.openCache(noCache)
	if err != nil {
		return err
	}

	req := driver.SolveAllRequest{
		Days:           dayNumbers,
		InputPath:      current.cfg.InputPath,
		Jobs:           jobs,
		Cache:          cache,
		MaxDiagnostics: current.maxDiagnostics,
		Timer:          current.timer,
	}

	var results []*driver.SolveResult
	if shouldUseTUI(mode, format, current.quiet) {
		title := fmt.Sprintf("solving %d days", len(days))
		results, err = runSolveAllWithUI(cmd.Context(), title, days, req)
	} else {
		results, err = driver.SolveAll(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Bag == nil {
			continue
		}
		if err := printDiagnostics(cmd.ErrOrStderr(), r.Bag, r.FileSet, format); err != nil {
			return err
		}
	}
	if err := printAnswers(cmd.OutOrStdout(), results, format); err != nil {
		return err
	}
	if n := failures(results); n > 0 {
		return fmt.Errorf("%d of %d days failed", n, len(results))
	}
	return nil
}

// selectDays resolves --days against the registry, keeping flag order.
func selectDays(numbers []int) ([]puzzle.Day, error) {
	if len(numbers) == 0 {
		return puzzle.All(), nil
	}
	days := make([]puzzle.Day, 0, len(numbers))
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if seen[n] {
			return nil, fmt.Errorf("day %d listed twice", n)
		}
		seen[n] = true
		d, err := puzzle.MustLookup(n)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

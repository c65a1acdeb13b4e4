package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc/internal/diagfmt"
	"aoc/internal/driver"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] file",
	Short: "Dump the numbers and symbols of a grid",
	Long:  `Scan classifies every cell of a grid input and prints the resulting numbers and symbols with their positions`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().Int("jobs", -1, "scan rows concurrently with N workers (default from aoc.toml)")
}

func runScan(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if err := checkFormat(format); err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs < 0 {
		jobs = current.cfg.Scan.Jobs
	}

	idx := current.timer.Begin("scan")
	result, err := driver.Scan(cmd.Context(), args[0], driver.ScanOptions{
		MaxDiagnostics: current.maxDiagnostics,
		Jobs:           jobs,
	})
	current.timer.End(idx, args[0])
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if err := printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, format); err != nil {
		return err
	}
	if result.Failed() {
		return fmt.Errorf("%s: input is not a valid grid: %w", result.File.Path, result.Err)
	}

	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens, result.File)
	default:
		if err := diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.File, result.FileSet); err != nil {
			return err
		}
		if !current.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d numbers, %d symbols\n", len(result.Tokens.Numbers), len(result.Tokens.Symbols))
		}
		return nil
	}
}

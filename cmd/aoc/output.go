package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"aoc/internal/diag"
	"aoc/internal/diagfmt"
	"aoc/internal/driver"
	"aoc/internal/pipeline"
	"aoc/internal/source"
)

// printDiagnostics writes the bag to w in the requested format.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, format string) error {
	if bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	bag.Dedup()

	base, err := os.Getwd()
	if err != nil {
		base = ""
	}
	if format == "json" {
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			BaseDir:          base,
		})
	}
	return diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     current.colorStderr,
		BaseDir:   base,
		ShowNotes: true,
	})
}

// answerRows flattens results into printable rows, keeping day order.
func answerRows(results []*driver.SolveResult) []diagfmt.AnswerRow {
	var rows []diagfmt.AnswerRow
	for _, r := range results {
		if r == nil {
			continue
		}
		if r.Err != nil {
			rows = append(rows, diagfmt.AnswerRow{Day: r.Day.Number, Title: r.Day.Title, Part: "-", Err: r.Err})
			continue
		}
		for _, p := range r.Parts {
			rows = append(rows, diagfmt.AnswerRow{
				Day:      r.Day.Number,
				Title:    r.Day.Title,
				Part:     strconv.Itoa(int(p.Part)),
				Value:    p.Answer,
				Err:      p.Err,
				Cached:   p.Cached,
				Duration: p.Duration,
			})
		}
	}
	return rows
}

func printAnswers(w io.Writer, results []*driver.SolveResult, format string) error {
	rows := answerRows(results)
	if format == "json" {
		return diagfmt.FormatAnswersJSON(w, rows)
	}
	return diagfmt.FormatAnswers(w, rows, diagfmt.AnswerOpts{
		Color:   current.colorStdout,
		Locale:  current.locale,
		Timings: current.timings,
	})
}

func printStageTimings(out io.Writer, timings pipeline.Timings) {
	for _, stage := range []pipeline.Stage{pipeline.StageLoad, pipeline.StageCache, pipeline.StageSolve} {
		if timings.Has(stage) {
			fmt.Fprintf(out, "%-6s %.3f ms\n", stage, toMillis(timings.Duration(stage)))
		}
	}
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

// failures counts failed days for the exit error.
func failures(results []*driver.SolveResult) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

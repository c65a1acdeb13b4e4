package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"aoc/internal/driver"
	"aoc/internal/pipeline"
	"aoc/internal/puzzle"
	"aoc/internal/ui"
)

type solveAllOutcome struct {
	results []*driver.SolveResult
	err     error
}

// runSolveAllWithUI drives SolveAll in the background and renders its
// progress events until it finishes.
func runSolveAllWithUI(ctx context.Context, title string, days []puzzle.Day, req driver.SolveAllRequest) ([]*driver.SolveResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan solveAllOutcome, 1)

	go func() {
		reqCopy := req
		reqCopy.Progress = pipeline.ChannelSink{Ch: events}
		res, err := driver.SolveAll(ctx, reqCopy)
		outcomeCh <- solveAllOutcome{results: res, err: err}
		close(events)
	}()

	items := make([]ui.Item, 0, len(days))
	for _, d := range days {
		items = append(items, ui.Item{Key: "day" + d.Name(), Label: fmt.Sprintf("day %s  %s", d.Name(), d.Title)})
	}

	model := ui.NewProgressModel(title, items, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	if uiErr != nil {
		// дочитываем события, чтобы SolveAll не заблокировался на полном канале
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}

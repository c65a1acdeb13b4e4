package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"aoc/internal/answercache"
	"aoc/internal/observ"
	"aoc/internal/pipeline"
	"aoc/internal/puzzle"
)

// SolveAllRequest describes a batch of days.
type SolveAllRequest struct {
	Days []int // empty means every registered day
	// InputPath maps a day number to its input file.
	InputPath      func(day int) string
	Parts          []puzzle.Part
	Jobs           int // 0 means GOMAXPROCS
	Cache          *answercache.Cache
	MaxDiagnostics int
	Timer          *observ.Timer
	Progress       pipeline.ProgressSink
}

// SolveAll solves several days concurrently. Results follow the order of
// req.Days (or day number when req.Days is empty) regardless of which day
// finishes first. A day that cannot run gets a result with Err set; only
// unknown days and cancellation fail the whole batch.
func SolveAll(ctx context.Context, req SolveAllRequest) ([]*SolveResult, error) {
	if req.InputPath == nil {
		return nil, fmt.Errorf("solve all: missing input path resolver")
	}

	days := make([]puzzle.Day, 0, len(req.Days))
	if len(req.Days) == 0 {
		days = puzzle.All()
	} else {
		for _, n := range req.Days {
			d, err := puzzle.MustLookup(n)
			if err != nil {
				return nil, err
			}
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return nil, nil
	}

	for _, d := range days {
		pipeline.Emit(req.Progress, pipeline.Event{Item: dayItem(d), Status: pipeline.StatusQueued})
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*SolveResult, len(days))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(days)))
	for i, d := range days {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Solve(gctx, SolveRequest{
				Day:            d.Number,
				Parts:          req.Parts,
				InputPath:      req.InputPath(d.Number),
				Cache:          req.Cache,
				MaxDiagnostics: req.MaxDiagnostics,
				Timer:          req.Timer,
				Progress:       req.Progress,
			})
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				res = &SolveResult{Day: d, Err: err}
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

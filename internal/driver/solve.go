package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"aoc/internal/answercache"
	"aoc/internal/diag"
	"aoc/internal/observ"
	"aoc/internal/pipeline"
	"aoc/internal/puzzle"
	"aoc/internal/source"
	"aoc/internal/trace"
)

// SolveRequest describes one day to solve.
type SolveRequest struct {
	Day            int
	Parts          []puzzle.Part // empty means both parts
	InputPath      string
	Cache          *answercache.Cache // nil disables caching
	MaxDiagnostics int
	Timer          *observ.Timer
	Progress       pipeline.ProgressSink
}

// PartResult is the outcome of one part.
type PartResult struct {
	Part     puzzle.Part
	Answer   int64
	Err      error
	Cached   bool
	Duration time.Duration
}

// SolveResult is the outcome of one day.
type SolveResult struct {
	Day     puzzle.Day
	FileSet *source.FileSet
	File    *source.File
	Parts   []PartResult
	Bag     *diag.Bag
	Timings pipeline.Timings
	// Err is set by SolveAll when the day could not run at all, e.g. its
	// input file is missing.
	Err error
}

// Failed reports whether the day or any of its parts failed.
func (r *SolveResult) Failed() bool {
	if r == nil || r.Err != nil {
		return true
	}
	for _, p := range r.Parts {
		if p.Err != nil {
			return true
		}
	}
	return false
}

// Solve loads the input of req.Day and runs the requested parts.
// Solver failures are recorded per part and as diagnostics; the returned
// error covers unknown days, unreadable input and cancellation.
func Solve(ctx context.Context, req SolveRequest) (*SolveResult, error) {
	day, err := puzzle.MustLookup(req.Day)
	if err != nil {
		return nil, err
	}
	item := dayItem(day)

	ctx, span := trace.Start(ctx, trace.ScopePass, "solve "+item)
	span.WithDay(day.Number, partsLabel(req.Parts))
	defer span.End("")

	fs := source.NewFileSet()
	pipeline.Emit(req.Progress, pipeline.Event{Item: item, Stage: pipeline.StageLoad, Status: pipeline.StatusWorking})
	start := time.Now()
	id, err := fs.Load(req.InputPath)
	if err != nil {
		err = fmt.Errorf("%s: load input: %w", item, err)
		pipeline.Emit(req.Progress, pipeline.Event{Item: item, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: err})
		return nil, err
	}
	loaded := time.Since(start)

	res, err := solveFile(ctx, day, fs, id, req)
	if res != nil {
		res.Timings.Set(pipeline.StageLoad, loaded)
	}
	return res, err
}

// SolveFile runs req against a file already present in fs. req.InputPath
// is ignored.
func SolveFile(ctx context.Context, fs *source.FileSet, id source.FileID, req SolveRequest) (*SolveResult, error) {
	day, err := puzzle.MustLookup(req.Day)
	if err != nil {
		return nil, err
	}
	return solveFile(ctx, day, fs, id, req)
}

func solveFile(ctx context.Context, day puzzle.Day, fs *source.FileSet, id source.FileID, req SolveRequest) (*SolveResult, error) {
	file := fs.Get(id)
	res := &SolveResult{
		Day:     day,
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(req.MaxDiagnostics),
	}
	reporter := diag.BagReporter{Bag: res.Bag}
	item := dayItem(day)

	if len(file.Content) == 0 {
		diag.ReportWarning(reporter, diag.InpEmpty, source.Span{File: id}, "input is empty")
	}

	parts := req.Parts
	if len(parts) == 0 {
		parts = puzzle.Parts
	}

	failed := false
	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pr := solvePart(ctx, day, file, part, req, reporter, &res.Timings)
		if pr.Err != nil {
			failed = true
		}
		res.Parts = append(res.Parts, pr)
	}

	status := pipeline.StatusDone
	if failed {
		status = pipeline.StatusError
	}
	pipeline.Emit(req.Progress, pipeline.Event{
		Item:    item,
		Stage:   pipeline.StageSolve,
		Status:  status,
		Elapsed: res.Timings.Sum(pipeline.StageCache, pipeline.StageSolve),
	})
	return res, nil
}

func solvePart(ctx context.Context, day puzzle.Day, file *source.File, part puzzle.Part, req SolveRequest, r diag.Reporter, timings *pipeline.Timings) PartResult {
	item := dayItem(day)
	name := partName(day, part)
	key := answercache.KeyFor(file.Hash, day.Number, uint8(part))

	if req.Cache != nil {
		cacheStart := time.Now()
		entry, ok, err := req.Cache.Get(key)
		timings.Add(pipeline.StageCache, time.Since(cacheStart))
		if err != nil {
			diag.ReportWarning(r, diag.RunCacheError, source.Span{File: file.ID}, fmt.Sprintf("%s: answer cache: %v", name, err))
		}
		if ok {
			req.Timer.Add(name, entry.Duration, "cached")
			trace.Point(trace.FromContext(ctx), trace.ScopeDay, name, "cached "+strconv.FormatInt(entry.Answer, 10))
			pipeline.Emit(req.Progress, pipeline.Event{Item: item, Stage: pipeline.StageCache, Status: pipeline.StatusDone})
			return PartResult{Part: part, Answer: entry.Answer, Cached: true, Duration: entry.Duration}
		}
	}

	pipeline.Emit(req.Progress, pipeline.Event{Item: item, Stage: pipeline.StageSolve, Status: pipeline.StatusWorking})
	_, span := trace.Start(ctx, trace.ScopeDay, name)
	span.WithDay(day.Number, strconv.Itoa(int(part)))
	idx := req.Timer.Begin(name)
	start := time.Now()
	answer, err := runSolver(day, part, file.Text())
	dur := time.Since(start)
	req.Timer.End(idx, "")
	timings.Add(pipeline.StageSolve, dur)

	if err != nil {
		reportSolveError(r, file, name, err)
		span.WithError(err).End("failed")
		return PartResult{Part: part, Err: err, Duration: dur}
	}
	span.WithAnswer(answer, false).End("")

	if req.Cache != nil {
		putErr := req.Cache.Put(key, answercache.Entry{
			Day:      day.Number,
			Part:     uint8(part),
			Answer:   answer,
			Solved:   time.Now().UTC(),
			Duration: dur,
		})
		if putErr != nil {
			diag.ReportWarning(r, diag.RunCacheError, source.Span{File: file.ID}, fmt.Sprintf("%s: answer cache: %v", name, putErr))
		}
	}
	return PartResult{Part: part, Answer: answer, Duration: dur}
}

// runSolver converts a solver panic into an error so one bad day cannot
// take down a whole run.
func runSolver(day puzzle.Day, part puzzle.Part, input string) (answer int64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s: solver panicked: %v", partName(day, part), rec)
		}
	}()
	return day.Solve(part, input)
}

// reportSolveError anchors solver failures on the input where possible:
// scanner errors on their cells, malformed lines on the whole line.
func reportSolveError(r diag.Reporter, file *source.File, name string, err error) {
	if reportScanError(r, file, err) {
		return
	}

	var inputErr *puzzle.InputError
	if errors.As(err, &inputErr) && inputErr.Line > 0 {
		line := file.GetLine(uint32(inputErr.Line))
		sp := file.PosSpan(inputErr.Line-1, 0, max(len(line)-1, 0))
		diag.ReportError(r, diag.InpMalformedLine, sp, fmt.Sprintf("%s: %s", name, inputErr.Msg))
		return
	}

	diag.ReportError(r, diag.RunSolverFail, source.Span{File: file.ID}, fmt.Sprintf("%s: %v", name, err))
}

func dayItem(d puzzle.Day) string {
	return "day" + d.Name()
}

func partName(d puzzle.Day, p puzzle.Part) string {
	return fmt.Sprintf("day%s/%d", d.Name(), p)
}

func partsLabel(parts []puzzle.Part) string {
	if len(parts) == 1 {
		return strconv.Itoa(int(parts[0]))
	}
	return "both"
}

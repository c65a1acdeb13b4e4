package driver

import (
	"context"
	"errors"
	"fmt"

	"aoc/internal/diag"
	"aoc/internal/grid"
	"aoc/internal/pipeline"
	"aoc/internal/source"
	"aoc/internal/trace"
)

// ScanOptions configures Scan.
type ScanOptions struct {
	MaxDiagnostics int
	// Jobs > 1 scans rows concurrently; 0 or 1 keeps the sequential scan.
	Jobs     int
	Progress pipeline.ProgressSink
}

// ScanResult holds everything a caller needs to print tokens or
// diagnostics for one grid.
type ScanResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  grid.Tokens
	Bag     *diag.Bag
	// Err is the scanner error (*grid.InvalidCharacterError or
	// *grid.NumericOverflowError). It is set even when the bag is full
	// and the matching diagnostic was dropped.
	Err     error
}

// Failed reports whether the grid was rejected by the scanner.
func (r *ScanResult) Failed() bool {
	return r == nil || r.Err != nil
}

// Scan loads path and scans it as a grid. Scanner errors are kept in
// the result's Err and reported as diagnostics in its bag; the returned
// error is reserved for I/O failures and cancellation.
func Scan(ctx context.Context, path string, opts ScanOptions) (*ScanResult, error) {
	fs := source.NewFileSet()
	id, err := load(ctx, fs, path, opts.Progress)
	if err != nil {
		return nil, err
	}
	return ScanFile(ctx, fs, id, opts)
}

// ScanFile scans a file already present in fs.
func ScanFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts ScanOptions) (*ScanResult, error) {
	file := fs.Get(id)
	res := &ScanResult{
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	item := itemName(file)

	ctx, span := trace.Start(ctx, trace.ScopePass, "scan")
	span.WithExtra("file", file.Path)
	pipeline.Emit(opts.Progress, pipeline.Event{Item: item, Stage: pipeline.StageScan, Status: pipeline.StatusWorking})

	lines := file.Lines()
	if len(lines) == 0 {
		diag.ReportWarning(diag.BagReporter{Bag: res.Bag}, diag.InpEmpty, source.Span{File: id}, "input is empty")
	}

	var (
		toks grid.Tokens
		err  error
	)
	if opts.Jobs > 1 {
		toks, err = grid.ScanConcurrent(ctx, lines, opts.Jobs)
	} else {
		toks, err = grid.Scan(lines)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			span.End("cancelled")
			return nil, ctxErr
		}
		if !reportScanError(diag.BagReporter{Bag: res.Bag}, file, err) {
			span.End("error")
			return nil, fmt.Errorf("scan %s: %w", file.Path, err)
		}
		res.Err = err
		span.WithError(err).End("diagnostics")
		pipeline.Emit(opts.Progress, pipeline.Event{Item: item, Stage: pipeline.StageScan, Status: pipeline.StatusError, Err: err})
		return res, nil
	}
	res.Tokens = toks

	traceRows(trace.FromContext(ctx), toks)
	span.WithGrid(len(lines), toks).End("")
	pipeline.Emit(opts.Progress, pipeline.Event{Item: item, Stage: pipeline.StageScan, Status: pipeline.StatusDone})
	return res, nil
}

func load(ctx context.Context, fs *source.FileSet, path string, sink pipeline.ProgressSink) (source.FileID, error) {
	_, span := trace.Start(ctx, trace.ScopePass, "load")
	defer span.End(path)

	id, err := fs.Load(path)
	if err != nil {
		pipeline.Emit(sink, pipeline.Event{Item: path, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: err})
		return 0, fmt.Errorf("load input: %w", err)
	}
	return id, nil
}

// traceRows emits one point per non-empty row at debug level.
func traceRows(t trace.Tracer, toks grid.Tokens) {
	if !t.Enabled() || !t.Level().ShouldEmit(trace.ScopeRow) {
		return
	}
	counts := map[int][2]int{}
	maxRow := -1
	for _, n := range toks.Numbers {
		c := counts[n.Row]
		c[0]++
		counts[n.Row] = c
		maxRow = max(maxRow, n.Row)
	}
	for _, s := range toks.Symbols {
		c := counts[s.Row]
		c[1]++
		counts[s.Row] = c
		maxRow = max(maxRow, s.Row)
	}
	for row := 0; row <= maxRow; row++ {
		c, ok := counts[row]
		if !ok {
			continue
		}
		trace.Point(t, trace.ScopeRow, fmt.Sprintf("row %d", row), fmt.Sprintf("%d numbers, %d symbols", c[0], c[1]))
	}
}

// reportScanError turns a typed scanner error into a diagnostic anchored
// on the offending cells. It returns false for errors it does not know.
func reportScanError(r diag.Reporter, file *source.File, err error) bool {
	var invalid *grid.InvalidCharacterError
	if errors.As(err, &invalid) {
		width := max(invalid.Width, 1)
		sp := file.PosSpan(invalid.Row, invalid.Col, invalid.Col+width-1)
		msg := fmt.Sprintf("invalid character %q: expected a digit, '.' or a printable symbol", invalid.Char)
		var notes []diag.Note
		if invalid.Whitespace() {
			msg = fmt.Sprintf("whitespace %q inside the grid: expected a digit, '.' or a printable symbol", invalid.Char)
			notes = []diag.Note{{Span: sp, Msg: "spaces and tabs are not grid cells; strip trailing whitespace from the input"}}
		}
		r.Report(diag.InpInvalidCharacter, diag.SevError, sp, msg, notes)
		return true
	}

	var overflow *grid.NumericOverflowError
	if errors.As(err, &overflow) {
		sp := file.PosSpan(overflow.Row, overflow.StartCol, overflow.Col)
		r.Report(diag.InpNumericOverflow, diag.SevError, sp,
			"number does not fit in a signed 64-bit integer",
			[]diag.Note{{Span: file.PosSpan(overflow.Row, overflow.StartCol, overflow.StartCol), Msg: "number starts here"}})
		return true
	}
	return false
}

func itemName(f *source.File) string {
	if f == nil {
		return ""
	}
	return f.Path
}

// Package trace records what the driver does while it scans grids and
// solves days.
//
// # Usage
//
//	aoc run --trace=- --trace-level=detail
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes each event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump on failure
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// A level admits every scope at or above its granularity:
//
//   - LevelPhase: ScopeDriver and ScopePass (load, scan, solve)
//   - LevelDetail: adds ScopeDay (one span per day and part)
//   - LevelDebug: adds ScopeRow (per-row scanner work)
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopeDay, "day03/1")
//	span.WithDay(3, "1").WithAnswer(answer, false).End("")
//
// Span attributes (day, part, answer, rows, cell, error) travel on the
// end event's Extra map.
package trace

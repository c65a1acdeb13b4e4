package trace

import (
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"aoc/internal/grid"
)

var (
	globalSeq   atomic.Uint64
	globalSpans atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 { return globalSeq.Add(1) }

// NextSpanID returns a unique span ID.
func NextSpanID() uint64 { return globalSpans.Add(1) }

// Span is one traced operation: a whole command, a scan pass, or a
// single day/part. Attributes set before End travel on the end event.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	started time.Time
	attrs   map[string]string
}

// Begin emits the begin event of a span under parent (0 for a root).
// A disabled tracer or a scope filtered by the level yields an inert span.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{tracer: Nop}
	}
	s := &Span{
		tracer:  t,
		id:      NextSpanID(),
		parent:  parent,
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	t.Emit(s.event(KindSpanBegin, s.started, ""))
	return s
}

func (s *Span) event(kind Kind, at time.Time, detail string) *Event {
	ev := &Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		Detail:   detail,
	}
	if kind == KindSpanEnd && len(s.attrs) > 0 {
		ev.Extra = s.attrs
	}
	return ev
}

func (s *Span) live() bool {
	return s != nil && s.tracer != nil && s.tracer.Enabled() && s.id != 0
}

// End emits the end event and returns the span's duration.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	now := time.Now()
	s.tracer.Emit(s.event(KindSpanEnd, now, detail))
	return now.Sub(s.started)
}

// WithExtra sets a free-form attribute.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.attrs == nil {
		s.attrs = make(map[string]string, 4)
	}
	s.attrs[key] = value
	return s
}

// WithDay tags the span with the puzzle day and part ("1", "2" or "both").
func (s *Span) WithDay(day int, part string) *Span {
	return s.WithExtra("day", strconv.Itoa(day)).WithExtra("part", part)
}

// WithGrid records the size of a scanned grid.
func (s *Span) WithGrid(rows int, toks grid.Tokens) *Span {
	return s.WithExtra("rows", strconv.Itoa(rows)).
		WithExtra("numbers", strconv.Itoa(len(toks.Numbers))).
		WithExtra("symbols", strconv.Itoa(len(toks.Symbols)))
}

// WithAnswer records a part's answer and whether it came from the cache.
func (s *Span) WithAnswer(answer int64, cached bool) *Span {
	return s.WithExtra("answer", strconv.FormatInt(answer, 10)).
		WithExtra("cached", strconv.FormatBool(cached))
}

// WithError records err; scanner errors also record the offending cell
// as "row:col".
func (s *Span) WithError(err error) *Span {
	if err == nil {
		return s
	}
	s.WithExtra("error", err.Error())
	var cell interface{ Pos() grid.Pos }
	if errors.As(err, &cell) {
		s.WithExtra("cell", cell.Pos().String())
	}
	return s
}

// ID returns the span ID, 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

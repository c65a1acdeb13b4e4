// Package puzzle holds the registry of daily solvers.
//
// Each day package registers itself from init; the CLI and the driver
// only talk to this registry, never to a day package directly.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrMalformedInput is wrapped by solvers when the input does not match
	// the expected shape.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnknownDay is returned when no solver is registered for a day.
	ErrUnknownDay = errors.New("unknown day")
)

// Solver computes one answer from the full puzzle text.
type Solver func(input string) (int64, error)

// Part selects which half of a day's puzzle to solve.
type Part uint8

const (
	PartOne Part = iota + 1
	PartTwo
)

// Parts lists both parts in order.
var Parts = []Part{PartOne, PartTwo}

func (p Part) String() string {
	switch p {
	case PartOne:
		return "part one"
	case PartTwo:
		return "part two"
	default:
		return "part ?"
	}
}

// ParsePart accepts "1", "2", "one", "two".
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "one":
		return PartOne, nil
	case "2", "two":
		return PartTwo, nil
	default:
		return 0, fmt.Errorf("invalid part %q (expected 1|2)", s)
	}
}

// Day describes one registered puzzle.
type Day struct {
	Number  int
	Title   string
	PartOne Solver
	PartTwo Solver
}

// Name returns the zero-padded form used for input files ("03").
func (d Day) Name() string {
	return fmt.Sprintf("%02d", d.Number)
}

// Solve runs the requested part.
func (d Day) Solve(part Part, input string) (int64, error) {
	var s Solver
	switch part {
	case PartOne:
		s = d.PartOne
	case PartTwo:
		s = d.PartTwo
	}
	if s == nil {
		return 0, fmt.Errorf("day %d: %s is not implemented", d.Number, part)
	}
	return s(input)
}

var (
	mu   sync.RWMutex
	days = map[int]Day{}
)

// Register adds d to the registry. It panics on a duplicate or invalid
// day number, which can only happen from a programming error in init.
func Register(d Day) {
	mu.Lock()
	defer mu.Unlock()
	if d.Number < 1 || d.Number > 25 {
		panic(fmt.Sprintf("puzzle: day %d out of range", d.Number))
	}
	if _, dup := days[d.Number]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", d.Number))
	}
	days[d.Number] = d
}

// Lookup returns the registered day n.
func Lookup(n int) (Day, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := days[n]
	return d, ok
}

// MustLookup is Lookup that reports ErrUnknownDay.
func MustLookup(n int) (Day, error) {
	d, ok := Lookup(n)
	if !ok {
		return Day{}, fmt.Errorf("day %d: %w", n, ErrUnknownDay)
	}
	return d, nil
}

// All returns every registered day ordered by number.
func All() []Day {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Day, 0, len(days))
	for _, d := range days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// ParseDay accepts "3", "03", "day3" and "day03".
func ParseDay(s string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "day")
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 25 {
		return 0, fmt.Errorf("invalid day %q (expected 1..25)", s)
	}
	return n, nil
}

// Malformed wraps ErrMalformedInput with a line reference.
// line is 1-based; 0 means the input as a whole.
func Malformed(line int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if line > 0 {
		return &InputError{Line: line, Msg: msg}
	}
	return &InputError{Msg: msg}
}

// InputError is a malformed-input error tied to a line of the puzzle text.
type InputError struct {
	Line int
	Msg  string
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

func (e *InputError) Unwrap() error { return ErrMalformedInput }

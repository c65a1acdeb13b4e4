package day05

import (
	"strings"

	"aoc/internal/puzzle"
)

// Range maps [Source, Source+Length) onto [Dest, Dest+Length).
type Range struct {
	Dest   int64
	Source int64
	Length int64
}

// Map translates v if the range covers it.
func (r Range) Map(v int64) (int64, bool) {
	if v < r.Source || v-r.Source >= r.Length {
		return 0, false
	}
	return r.Dest + (v - r.Source), true
}

// Interval is the half-open span [Start, End).
type Interval struct {
	Start int64
	End   int64
}

// Stage is one named conversion map ("seed-to-soil"). Values not covered
// by any range pass through unchanged; the first covering range wins.
type Stage struct {
	Name   string
	From   string
	To     string
	Ranges []Range
}

// Map translates a single value through the stage.
func (s Stage) Map(v int64) int64 {
	for _, r := range s.Ranges {
		if out, ok := r.Map(v); ok {
			return out
		}
	}
	return v
}

// MapIntervals translates whole intervals, splitting them where range
// boundaries cut through. Pieces claimed by an earlier range are not
// offered to later ones.
func (s Stage) MapIntervals(in []Interval) []Interval {
	var out []Interval
	pending := in
	for _, r := range s.Ranges {
		var rest []Interval
		for _, iv := range pending {
			lo := max(iv.Start, r.Source)
			hi := min(iv.End, r.Source+r.Length)
			if lo >= hi {
				rest = append(rest, iv)
				continue
			}
			shift := r.Dest - r.Source
			out = append(out, Interval{Start: lo + shift, End: hi + shift})
			if iv.Start < lo {
				rest = append(rest, Interval{Start: iv.Start, End: lo})
			}
			if hi < iv.End {
				rest = append(rest, Interval{Start: hi, End: iv.End})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

// Almanac is the seed list plus the ordered conversion stages.
type Almanac struct {
	Seeds  []int64
	Stages []Stage
}

// Locate runs v through every stage in order.
func (a Almanac) Locate(v int64) int64 {
	for _, s := range a.Stages {
		v = s.Map(v)
	}
	return v
}

// LocateIntervals runs intervals through every stage in order.
func (a Almanac) LocateIntervals(in []Interval) []Interval {
	for _, s := range a.Stages {
		in = s.MapIntervals(in)
	}
	return in
}

// Stage returns the stage called name.
func (a Almanac) Stage(name string) (Stage, bool) {
	for _, s := range a.Stages {
		if s.Name == name {
			return s, true
		}
	}
	return Stage{}, false
}

// ParseAlmanac reads the seeds line followed by "<from>-to-<to> map:" blocks.
// Consecutive stages must chain: each stage starts where the previous ends.
func ParseAlmanac(input string) (Almanac, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return Almanac{}, puzzle.Malformed(0, "empty almanac")
	}
	seedText, ok := strings.CutPrefix(lines[0], "seeds:")
	if !ok {
		return Almanac{}, puzzle.Malformed(1, "expected \"seeds:\"")
	}
	seeds, err := puzzle.Ints(1, seedText)
	if err != nil {
		return Almanac{}, err
	}

	a := Almanac{Seeds: seeds}
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		lineNo := i + 1
		switch {
		case line == "":
			continue
		case strings.HasSuffix(line, " map:"):
			name := strings.TrimSuffix(line, " map:")
			from, to, ok := strings.Cut(name, "-to-")
			if !ok {
				return Almanac{}, puzzle.Malformed(lineNo, "bad map header %q", line)
			}
			if n := len(a.Stages); n > 0 && a.Stages[n-1].To != from {
				return Almanac{}, puzzle.Malformed(lineNo, "stage %q does not follow %q", name, a.Stages[n-1].Name)
			}
			a.Stages = append(a.Stages, Stage{Name: name, From: from, To: to})
		default:
			if len(a.Stages) == 0 {
				return Almanac{}, puzzle.Malformed(lineNo, "range before any map header")
			}
			nums, err := puzzle.Ints(lineNo, line)
			if err != nil {
				return Almanac{}, err
			}
			if len(nums) != 3 || nums[2] < 0 {
				return Almanac{}, puzzle.Malformed(lineNo, "expected \"dest source length\"")
			}
			cur := &a.Stages[len(a.Stages)-1]
			cur.Ranges = append(cur.Ranges, Range{Dest: nums[0], Source: nums[1], Length: nums[2]})
		}
	}
	return a, nil
}

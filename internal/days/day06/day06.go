// Package day06 counts winning strategies for toy boat races.
package day06

import (
	"math"
	"strconv"
	"strings"

	"aoc/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 6, Title: "Wait For It", PartOne: PartOne, PartTwo: PartTwo})
}

// Race is one time limit with the record distance to beat.
type Race struct {
	Time   int64
	Record int64
}

// beats reports whether holding the button for hold ms beats the record.
func (r Race) beats(hold int64) bool {
	return hold*(r.Time-hold) > r.Record
}

// Wins counts hold times whose distance is strictly above the record.
// The winning holds form one interval symmetric around Time/2; its lower
// edge comes from the quadratic root and is then fixed up in integers.
func (r Race) Wins() int64 {
	disc := r.Time*r.Time - 4*r.Record
	if disc <= 0 {
		return 0
	}
	lo := (r.Time - int64(math.Sqrt(float64(disc)))) / 2
	lo = max(lo, 0)
	for lo > 0 && r.beats(lo-1) {
		lo--
	}
	for lo <= r.Time/2 && !r.beats(lo) {
		lo++
	}
	hi := r.Time - lo
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// PartOne multiplies the win counts of every race.
func PartOne(input string) (int64, error) {
	races, err := parse(input, false)
	if err != nil {
		return 0, err
	}
	product := int64(1)
	for _, r := range races {
		product *= r.Wins()
	}
	return product, nil
}

// PartTwo ignores the spaces between numbers: there is a single race.
func PartTwo(input string) (int64, error) {
	races, err := parse(input, true)
	if err != nil {
		return 0, err
	}
	return races[0].Wins(), nil
}

func parse(input string, kerned bool) ([]Race, error) {
	lines := puzzle.Lines(input)
	if len(lines) != 2 {
		return nil, puzzle.Malformed(0, "expected Time and Distance lines, got %d lines", len(lines))
	}
	times, err := field(1, lines[0], "Time:", kerned)
	if err != nil {
		return nil, err
	}
	records, err := field(2, lines[1], "Distance:", kerned)
	if err != nil {
		return nil, err
	}
	if len(times) != len(records) || len(times) == 0 {
		return nil, puzzle.Malformed(0, "%d times but %d distances", len(times), len(records))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: records[i]}
	}
	return races, nil
}

func field(lineNo int, line, prefix string, kerned bool) ([]int64, error) {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return nil, puzzle.Malformed(lineNo, "expected %q", prefix)
	}
	if !kerned {
		return puzzle.Ints(lineNo, rest)
	}
	joined := strings.Join(strings.Fields(rest), "")
	v, err := strconv.ParseInt(joined, 10, 64)
	if err != nil {
		return nil, puzzle.Malformed(lineNo, "expected digits, got %q", joined)
	}
	return []int64{v}, nil
}

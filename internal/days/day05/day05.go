// Package day05 follows seeds through the almanac's conversion stages.
package day05

import (
	"math"

	"aoc/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 5, Title: "If You Give A Seed A Fertilizer", PartOne: PartOne, PartTwo: PartTwo})
}

// PartOne returns the lowest location of the listed seeds.
func PartOne(input string) (int64, error) {
	a, err := ParseAlmanac(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, puzzle.Malformed(1, "no seeds")
	}
	lowest := int64(math.MaxInt64)
	for _, s := range a.Seeds {
		lowest = min(lowest, a.Locate(s))
	}
	return lowest, nil
}

// PartTwo reads the seeds line as (start, length) pairs.
func PartTwo(input string) (int64, error) {
	a, err := ParseAlmanac(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return 0, puzzle.Malformed(1, "seeds must come in (start, length) pairs")
	}
	var seeds []Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] > 0 {
			seeds = append(seeds, Interval{Start: a.Seeds[i], End: a.Seeds[i] + a.Seeds[i+1]})
		}
	}
	if len(seeds) == 0 {
		return 0, puzzle.Malformed(1, "all seed ranges are empty")
	}
	lowest := int64(math.MaxInt64)
	for _, iv := range a.LocateIntervals(seeds) {
		lowest = min(lowest, iv.Start)
	}
	return lowest, nil
}

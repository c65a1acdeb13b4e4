// Package all links every day's solver into the puzzle registry.
package all

import (
	_ "aoc/internal/days/day01"
	_ "aoc/internal/days/day02"
	_ "aoc/internal/days/day03"
	_ "aoc/internal/days/day04"
	_ "aoc/internal/days/day05"
	_ "aoc/internal/days/day06"
	_ "aoc/internal/days/day07"
)

// Package day03 finds part numbers and gear ratios in an engine schematic.
package day03

import (
	"fmt"

	"aoc/internal/grid"
	"aoc/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 3, Title: "Gear Ratios", PartOne: PartOne, PartTwo: PartTwo})
}

// Gear is the symbol that marks a potential gear.
const Gear = '*'

func scan(input string) (grid.Tokens, error) {
	toks, err := grid.Scan(puzzle.Lines(input))
	if err != nil {
		return grid.Tokens{}, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	return toks, nil
}

// PartOne sums every number adjacent to at least one symbol.
func PartOne(input string) (int64, error) {
	toks, err := scan(input)
	if err != nil {
		return 0, err
	}
	return SumPartNumbers(toks), nil
}

// PartTwo sums the ratios of all gears.
func PartTwo(input string) (int64, error) {
	toks, err := scan(input)
	if err != nil {
		return 0, err
	}
	return SumGearRatios(toks), nil
}

// SumPartNumbers counts each number once, however many symbols touch it.
func SumPartNumbers(toks grid.Tokens) int64 {
	var total int64
	for _, n := range toks.Numbers {
		for _, s := range toks.Symbols {
			if n.Adjacent(s.Pos()) {
				total += n.Value
				break
			}
		}
	}
	return total
}

// SumGearRatios adds the product of the two numbers around every '*'
// that touches exactly two numbers.
func SumGearRatios(toks grid.Tokens) int64 {
	var total int64
	for _, s := range toks.Symbols {
		if s.Char != Gear {
			continue
		}
		if parts := toks.NeighborsOf(s.Pos()); len(parts) == 2 {
			total += parts[0].Value * parts[1].Value
		}
	}
	return total
}

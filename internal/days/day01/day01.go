// Package day01 recovers calibration values from lines of text.
package day01

import (
	"strings"

	"aoc/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 1, Title: "Trebuchet?!", PartOne: PartOne, PartTwo: PartTwo})
}

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// PartOne sums first*10+last over the decimal digits of every line.
func PartOne(input string) (int64, error) {
	return sum(input, false)
}

// PartTwo is PartOne with spelled-out digits; words may overlap ("twone").
func PartTwo(input string) (int64, error) {
	return sum(input, true)
}

func sum(input string, spelled bool) (int64, error) {
	var total int64
	for i, line := range puzzle.Lines(input) {
		first, ok := firstDigit(line, spelled)
		if !ok {
			return 0, puzzle.Malformed(i+1, "no digit in %q", line)
		}
		last, _ := lastDigit(line, spelled)
		total += int64(first*10 + last)
	}
	return total, nil
}

// digitAt reports the digit starting at s[i], if any.
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

func firstDigit(s string, spelled bool) (int, bool) {
	for i := 0; i < len(s); i++ {
		if d, ok := digitAt(s, i, spelled); ok {
			return d, true
		}
	}
	return 0, false
}

func lastDigit(s string, spelled bool) (int, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if d, ok := digitAt(s, i, spelled); ok {
			return d, true
		}
	}
	return 0, false
}

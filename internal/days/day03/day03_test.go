package day03

import (
	"errors"
	"testing"

	"aoc/internal/grid"
	"aoc/internal/puzzle"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestPartOneExample(t *testing.T) {
	got, err := PartOne(example)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4361 {
		t.Errorf("PartOne = %d, want 4361", got)
	}
}

func TestPartTwoExample(t *testing.T) {
	got, err := PartTwo(example)
	if err != nil {
		t.Fatal(err)
	}
	if got != 467835 {
		t.Errorf("PartTwo = %d, want 467835", got)
	}
}

func TestNumberTouchingTwoSymbolsCountsOnce(t *testing.T) {
	got, err := PartOne("#12#\n....")
	if err != nil {
		t.Fatal(err)
	}
	if got != 12 {
		t.Errorf("PartOne = %d, want 12", got)
	}
}

func TestGearNeedsExactlyTwo(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "2*3", want: 6},
		{input: "2*3\n.4.", want: 0},
		{input: "2*.", want: 0},
		{input: "2#3", want: 0},
	}
	for _, tt := range tests {
		got, err := PartTwo(tt.input)
		if err != nil {
			t.Fatalf("%q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("PartTwo(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestInvalidCharacter(t *testing.T) {
	_, err := PartOne("..1\n. 2")
	if !errors.Is(err, puzzle.ErrMalformedInput) {
		t.Errorf("error = %v, want malformed input", err)
	}
	var invalid *grid.InvalidCharacterError
	if !errors.As(err, &invalid) || invalid.Row != 1 || invalid.Col != 1 {
		t.Errorf("error = %v, want invalid character at 1:1", err)
	}
}

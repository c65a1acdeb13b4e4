package day01

import (
	"errors"
	"testing"

	"aoc/internal/puzzle"
)

const examplePartOne = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const examplePartTwo = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestPartOneExample(t *testing.T) {
	got, err := PartOne(examplePartOne)
	if err != nil {
		t.Fatal(err)
	}
	if got != 142 {
		t.Errorf("PartOne = %d, want 142", got)
	}
}

func TestPartTwoExample(t *testing.T) {
	got, err := PartTwo(examplePartTwo)
	if err != nil {
		t.Fatal(err)
	}
	if got != 281 {
		t.Errorf("PartTwo = %d, want 281", got)
	}
}

func TestLineValues(t *testing.T) {
	tests := []struct {
		line    string
		spelled bool
		want    int64
	}{
		{line: "treb7uchet", want: 77},
		{line: "twone", spelled: true, want: 21},
		{line: "eighthree", spelled: true, want: 83},
		{line: "sevenine", spelled: true, want: 79},
		{line: "one", spelled: true, want: 11},
	}
	for _, tt := range tests {
		got, err := sum(tt.line, tt.spelled)
		if err != nil {
			t.Fatalf("%q: %v", tt.line, err)
		}
		if got != tt.want {
			t.Errorf("%q (spelled=%v) = %d, want %d", tt.line, tt.spelled, got, tt.want)
		}
	}
}

func TestNoDigit(t *testing.T) {
	_, err := PartOne("12\nabc\n")
	var ie *puzzle.InputError
	if !errors.As(err, &ie) || ie.Line != 2 {
		t.Errorf("error = %v, want malformed line 2", err)
	}
}

func TestRegistered(t *testing.T) {
	d, ok := puzzle.Lookup(1)
	if !ok || d.PartOne == nil || d.PartTwo == nil {
		t.Fatal("day 1 not registered")
	}
}

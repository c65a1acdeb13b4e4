package day04

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"aoc/internal/puzzle"
)

const example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestPartOneExample(t *testing.T) {
	got, err := PartOne(example)
	if err != nil {
		t.Fatal(err)
	}
	if got != 13 {
		t.Errorf("PartOne = %d, want 13", got)
	}
}

func TestPartTwoExample(t *testing.T) {
	got, err := PartTwo(example)
	if err != nil {
		t.Fatal(err)
	}
	if got != 30 {
		t.Errorf("PartTwo = %d, want 30", got)
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		card Card
		want int64
	}{
		{Card{Winning: []int64{1, 2, 3, 4}, Have: []int64{1, 2, 3, 4}}, 8},
		{Card{Winning: []int64{1}, Have: []int64{1}}, 1},
		{Card{Winning: []int64{1}, Have: []int64{2}}, 0},
	}
	for _, tt := range tests {
		if got := tt.card.Points(); got != tt.want {
			t.Errorf("Points(%+v) = %d, want %d", tt.card, got, tt.want)
		}
	}
}

func TestCopiesStopAtLastCard(t *testing.T) {
	got, err := PartTwo("Card 1: 1 2 | 1 2\nCard 2: 5 | 5\n")
	if err != nil {
		t.Fatal(err)
	}
	// card 1 wins one copy of card 2 (the second match has nowhere to go)
	if got != 3 {
		t.Errorf("PartTwo = %d, want 3", got)
	}
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"Card 1 1 2 | 3", "Card 1: 1 2 3", "Card 1: 1 x | 3", "Card 1: 1 |"} {
		if _, err := PartOne(in); !errors.Is(err, puzzle.ErrMalformedInput) {
			t.Errorf("PartOne(%q) error = %v", in, err)
		}
	}
}

func card(matches int) string {
	nums := make([]string, matches)
	for i := range nums {
		nums[i] = strconv.Itoa(i + 1)
	}
	list := strings.Join(nums, " ")
	return "Card 1: " + list + " | " + list
}

func TestMatchLimit(t *testing.T) {
	got, err := PartOne(card(63))
	if err != nil {
		t.Fatalf("63 matches: %v", err)
	}
	if got != 1<<62 {
		t.Errorf("PartOne = %d, want %d", got, int64(1)<<62)
	}

	_, err = PartOne(card(64))
	var inputErr *puzzle.InputError
	if !errors.As(err, &inputErr) || inputErr.Line != 1 {
		t.Fatalf("64 matches: error = %v, want InputError on line 1", err)
	}
}

package day07

import (
	"errors"
	"testing"

	"aoc/internal/puzzle"
)

const example = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestPartOneExample(t *testing.T) {
	got, err := PartOne(example)
	if err != nil {
		t.Fatal(err)
	}
	if got != 6440 {
		t.Errorf("PartOne = %d, want 6440", got)
	}
}

func TestPartTwoExample(t *testing.T) {
	got, err := PartTwo(example)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5905 {
		t.Errorf("PartTwo = %d, want 5905", got)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		cards string
		rules Rules
		want  Kind
	}{
		{"AAAAA", Standard, FiveOfAKind},
		{"AA8AA", Standard, FourOfAKind},
		{"23332", Standard, FullHouse},
		{"TTT98", Standard, ThreeOfAKind},
		{"23432", Standard, TwoPair},
		{"A23A4", Standard, OnePair},
		{"23456", Standard, HighCard},
		{"KTJJT", Standard, TwoPair},
		{"KTJJT", JokerRules, FourOfAKind},
		{"JJJJJ", JokerRules, FiveOfAKind},
		{"2345J", JokerRules, OnePair},
		{"2233J", JokerRules, FullHouse},
	}
	for _, tt := range tests {
		if got := tt.rules.Kind(tt.cards); got != tt.want {
			t.Errorf("Kind(%q, jokers=%v) = %v, want %v", tt.cards, tt.rules.Jokers, got, tt.want)
		}
	}
}

func TestCompareUsesFirstDifferentCard(t *testing.T) {
	if Standard.Compare("33332", "2AAAA") <= 0 {
		t.Error("33332 should beat 2AAAA")
	}
	if Standard.Compare("77888", "77788") <= 0 {
		t.Error("77888 should beat 77788")
	}
	if JokerRules.Compare("JKKK2", "QQQQ2") >= 0 {
		t.Error("with jokers, JKKK2 should lose to QQQQ2")
	}
	if Standard.Compare("KK677", "KK677") != 0 {
		t.Error("equal hands should compare equal")
	}
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"32T3K", "32T3 765", "32T3X 765", "32T3K x", "32T3K 1 2"} {
		if _, err := PartOne(in); !errors.Is(err, puzzle.ErrMalformedInput) {
			t.Errorf("PartOne(%q) error = %v", in, err)
		}
	}
}

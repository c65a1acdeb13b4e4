// Package day07 ranks Camel Cards hands.
package day07

import (
	"slices"
	"strconv"
	"strings"

	"aoc/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 7, Title: "Camel Cards", PartOne: PartOne, PartTwo: PartTwo})
}

// HandSize is the number of cards in a hand.
const HandSize = 5

// Hand is one line: the cards and the bid.
type Hand struct {
	Cards string
	Bid   int64
}

// PartOne is the total winnings under the standard rules.
func PartOne(input string) (int64, error) {
	return winnings(input, Standard)
}

// PartTwo is the total winnings with jokers.
func PartTwo(input string) (int64, error) {
	return winnings(input, JokerRules)
}

// Winnings sorts hands weakest first and sums rank*bid.
func Winnings(hands []Hand, rules Rules) int64 {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b Hand) int { return rules.Compare(a.Cards, b.Cards) })
	var total int64
	for i, h := range sorted {
		total += int64(i+1) * h.Bid
	}
	return total
}

func winnings(input string, rules Rules) (int64, error) {
	hands, err := parse(input, rules)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, rules), nil
}

func parse(input string, rules Rules) ([]Hand, error) {
	lines := puzzle.Lines(input)
	hands := make([]Hand, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, puzzle.Malformed(i+1, "expected \"<cards> <bid>\"")
		}
		cards := fields[0]
		if len(cards) != HandSize || !rules.Valid(cards) {
			return nil, puzzle.Malformed(i+1, "bad hand %q", cards)
		}
		bid, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, puzzle.Malformed(i+1, "bad bid %q", fields[1])
		}
		hands = append(hands, Hand{Cards: cards, Bid: bid})
	}
	return hands, nil
}

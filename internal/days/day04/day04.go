// Package day04 scores scratchcards.
package day04

import (
	"strings"

	"aoc/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 4, Title: "Scratchcards", PartOne: PartOne, PartTwo: PartTwo})
}

// Card holds the winning numbers and the numbers the card has.
type Card struct {
	Winning []int64
	Have    []int64
}

// Matches counts how many of Have appear in Winning.
func (c Card) Matches() int {
	win := make(map[int64]struct{}, len(c.Winning))
	for _, w := range c.Winning {
		win[w] = struct{}{}
	}
	n := 0
	for _, h := range c.Have {
		if _, ok := win[h]; ok {
			n++
		}
	}
	return n
}

// maxMatches keeps Points within int64.
const maxMatches = 63

// Points is 1 for the first match, doubled for each further one.
func (c Card) Points() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return int64(1) << (m - 1)
}

// PartOne sums the points of every card.
func PartOne(input string) (int64, error) {
	cards, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range cards {
		total += c.Points()
	}
	return total, nil
}

// PartTwo counts cards once every match has won copies of the following cards.
func PartTwo(input string) (int64, error) {
	cards, err := parse(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, c := range cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}

func parse(input string) ([]Card, error) {
	lines := puzzle.Lines(input)
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		_, body, ok := strings.Cut(line, ":")
		if !ok {
			return nil, puzzle.Malformed(i+1, "missing ':'")
		}
		left, right, ok := strings.Cut(body, "|")
		if !ok {
			return nil, puzzle.Malformed(i+1, "missing '|'")
		}
		win, err := puzzle.Ints(i+1, left)
		if err != nil {
			return nil, err
		}
		have, err := puzzle.Ints(i+1, right)
		if err != nil {
			return nil, err
		}
		if len(have) == 0 {
			return nil, puzzle.Malformed(i+1, "card has no numbers")
		}
		card := Card{Winning: win, Have: have}
		if m := card.Matches(); m > maxMatches {
			return nil, puzzle.Malformed(i+1, "%d matching numbers, at most %d fit the score", m, maxMatches)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Package day02 checks cube draws against a bag's contents.
package day02

import (
	"strconv"
	"strings"

	"aoc/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 2, Title: "Cube Conundrum", PartOne: PartOne, PartTwo: PartTwo})
}

// Set is one handful of cubes.
type Set struct {
	Red, Green, Blue int64
}

// Fits reports whether s could be drawn from a bag holding limit.
func (s Set) Fits(limit Set) bool {
	return s.Red <= limit.Red && s.Green <= limit.Green && s.Blue <= limit.Blue
}

// Max returns the per-colour maximum of s and o.
func (s Set) Max(o Set) Set {
	return Set{Red: max(s.Red, o.Red), Green: max(s.Green, o.Green), Blue: max(s.Blue, o.Blue)}
}

// Power is the product of the three counts.
func (s Set) Power() int64 {
	return s.Red * s.Green * s.Blue
}

// Game is one input line.
type Game struct {
	ID   int64
	Sets []Set
}

// Bag is the contents used by part one.
var Bag = Set{Red: 12, Green: 13, Blue: 14}

// PartOne sums the ids of games possible with Bag.
func PartOne(input string) (int64, error) {
	games, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range games {
		possible := true
		for _, s := range g.Sets {
			if !s.Fits(Bag) {
				possible = false
				break
			}
		}
		if possible {
			total += g.ID
		}
	}
	return total, nil
}

// PartTwo sums the power of the smallest bag for each game.
func PartTwo(input string) (int64, error) {
	games, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range games {
		var need Set
		for _, s := range g.Sets {
			need = need.Max(s)
		}
		total += need.Power()
	}
	return total, nil
}

func parse(input string) ([]Game, error) {
	lines := puzzle.Lines(input)
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := parseGame(i+1, line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// parseGame reads "Game 3: 8 green, 6 blue; 5 blue, 4 red".
func parseGame(lineNo int, line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, puzzle.Malformed(lineNo, "missing ':'")
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, puzzle.Malformed(lineNo, "expected \"Game <id>\", got %q", head)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return Game{}, puzzle.Malformed(lineNo, "bad game id %q", idText)
	}

	g := Game{ID: id}
	for _, part := range strings.Split(body, ";") {
		var s Set
		for _, draw := range strings.Split(part, ",") {
			fields := strings.Fields(draw)
			if len(fields) != 2 {
				return Game{}, puzzle.Malformed(lineNo, "bad draw %q", strings.TrimSpace(draw))
			}
			n, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				return Game{}, puzzle.Malformed(lineNo, "bad count %q", fields[0])
			}
			switch fields[1] {
			case "red":
				s.Red += n
			case "green":
				s.Green += n
			case "blue":
				s.Blue += n
			default:
				return Game{}, puzzle.Malformed(lineNo, "unknown colour %q", fields[1])
			}
		}
		g.Sets = append(g.Sets, s)
	}
	return g, nil
}

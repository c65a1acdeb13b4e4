package day05

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"aoc/internal/puzzle"
)

const example = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestPartOneExample(t *testing.T) {
	got, err := PartOne(example)
	if err != nil {
		t.Fatal(err)
	}
	if got != 35 {
		t.Errorf("PartOne = %d, want 35", got)
	}
}

func TestPartTwoExample(t *testing.T) {
	got, err := PartTwo(example)
	if err != nil {
		t.Fatal(err)
	}
	if got != 46 {
		t.Errorf("PartTwo = %d, want 46", got)
	}
}

func TestStagesAreOrdered(t *testing.T) {
	a, err := ParseAlmanac(example)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, len(a.Stages))
	for i, s := range a.Stages {
		names[i] = s.Name
	}
	want := []string{
		"seed-to-soil", "soil-to-fertilizer", "fertilizer-to-water", "water-to-light",
		"light-to-temperature", "temperature-to-humidity", "humidity-to-location",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("stage names (-want +got):\n%s", diff)
	}
	soil, ok := a.Stage("seed-to-soil")
	if !ok {
		t.Fatal("seed-to-soil missing")
	}
	for seed, want := range map[int64]int64{79: 81, 14: 14, 55: 57, 13: 13, 98: 50, 99: 51, 100: 100} {
		if got := soil.Map(seed); got != want {
			t.Errorf("seed-to-soil(%d) = %d, want %d", seed, got, want)
		}
	}
}

func TestMapIntervalsSplits(t *testing.T) {
	s := Stage{Ranges: []Range{{Dest: 100, Source: 10, Length: 5}}}
	got := s.MapIntervals([]Interval{{Start: 8, End: 20}})
	want := []Interval{{Start: 100, End: 105}, {Start: 8, End: 10}, {Start: 15, End: 20}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MapIntervals (-want +got):\n%s", diff)
	}
}

func TestMapIntervalsMatchesPointwise(t *testing.T) {
	a, err := ParseAlmanac(example)
	if err != nil {
		t.Fatal(err)
	}
	for _, iv := range []Interval{{Start: 79, End: 93}, {Start: 55, End: 68}} {
		lowest := int64(1 << 62)
		for v := iv.Start; v < iv.End; v++ {
			lowest = min(lowest, a.Locate(v))
		}
		got := int64(1 << 62)
		for _, out := range a.LocateIntervals([]Interval{iv}) {
			got = min(got, out.Start)
		}
		if got != lowest {
			t.Errorf("interval %v: split min %d, brute force %d", iv, got, lowest)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"seed: 1 2",
		"seeds: 1 2\n1 2 3",
		"seeds: 1 2\nseed-soil map:\n",
		"seeds: 1 2\nseed-to-soil map:\n1 2",
		"seeds: 1 2\nseed-to-soil map:\n1 2 3\nwater-to-light map:\n",
	} {
		if _, err := PartOne(in); !errors.Is(err, puzzle.ErrMalformedInput) {
			t.Errorf("PartOne(%q) error = %v", in, err)
		}
	}
	if _, err := PartTwo("seeds: 1 2 3\nseed-to-soil map:\n1 2 3"); !errors.Is(err, puzzle.ErrMalformedInput) {
		t.Errorf("odd seed count accepted: %v", err)
	}
}

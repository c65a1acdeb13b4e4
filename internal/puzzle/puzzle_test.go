package puzzle

import (
	"errors"
	"testing"
)

func withRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := days
	days = map[int]Day{}
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		days = saved
		mu.Unlock()
	})
}

func TestRegisterLookupAll(t *testing.T) {
	withRegistry(t)
	Register(Day{Number: 7, Title: "seven"})
	Register(Day{Number: 2, Title: "two"})

	d, ok := Lookup(2)
	if !ok || d.Title != "two" {
		t.Fatalf("Lookup(2) = %+v, %v", d, ok)
	}
	if _, ok := Lookup(3); ok {
		t.Error("Lookup(3) found an unregistered day")
	}
	if _, err := MustLookup(3); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("MustLookup(3) error = %v", err)
	}

	all := All()
	if len(all) != 2 || all[0].Number != 2 || all[1].Number != 7 {
		t.Errorf("All() = %+v", all)
	}
	if all[0].Name() != "02" {
		t.Errorf("Name = %q", all[0].Name())
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withRegistry(t)
	Register(Day{Number: 1})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate day")
		}
	}()
	Register(Day{Number: 1})
}

func TestParseDay(t *testing.T) {
	for _, in := range []string{"3", "03", "day3", "Day03", " 3 "} {
		n, err := ParseDay(in)
		if err != nil || n != 3 {
			t.Errorf("ParseDay(%q) = %d, %v", in, n, err)
		}
	}
	for _, in := range []string{"", "0", "26", "dayx", "three"} {
		if _, err := ParseDay(in); err == nil {
			t.Errorf("ParseDay(%q) succeeded", in)
		}
	}
}

func TestParsePart(t *testing.T) {
	if p, err := ParsePart("2"); err != nil || p != PartTwo {
		t.Errorf("ParsePart(2) = %v, %v", p, err)
	}
	if _, err := ParsePart("3"); err == nil {
		t.Error("ParsePart(3) succeeded")
	}
}

func TestSolve(t *testing.T) {
	d := Day{Number: 1, PartOne: func(string) (int64, error) { return 42, nil }}
	if got, err := d.Solve(PartOne, ""); err != nil || got != 42 {
		t.Errorf("Solve(PartOne) = %d, %v", got, err)
	}
	if _, err := d.Solve(PartTwo, ""); err == nil {
		t.Error("Solve(PartTwo) without solver succeeded")
	}
}

func TestMalformed(t *testing.T) {
	err := Malformed(4, "bad %s", "card")
	if !errors.Is(err, ErrMalformedInput) {
		t.Error("Malformed does not wrap ErrMalformedInput")
	}
	if err.Error() != "line 4: bad card" {
		t.Errorf("Error() = %q", err.Error())
	}
	var ie *InputError
	if !errors.As(err, &ie) || ie.Line != 4 {
		t.Errorf("errors.As = %+v", ie)
	}
	if Malformed(0, "empty").Error() != "empty" {
		t.Error("line 0 should not be rendered")
	}
}

package grid

import "fmt"

// Pos is a cell coordinate. Row and Col are 0-based and may be negative
// when a caller probes cells outside the grid.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Number is one maximal run of decimal digits on a single row.
type Number struct {
	Value    int64
	Row      int
	StartCol int
	EndCol   int
}

// Start returns the position of the first digit.
func (n Number) Start() Pos { return Pos{Row: n.Row, Col: n.StartCol} }

// End returns the position of the last digit.
func (n Number) End() Pos { return Pos{Row: n.Row, Col: n.EndCol} }

// Width reports the number of digits in the run.
func (n Number) Width() int { return n.EndCol - n.StartCol + 1 }

// Adjacent reports whether p lies in the inclusive box
// [Row-1, Row+1] x [StartCol-1, EndCol+1] around the number.
// The number itself is part of the box.
func (n Number) Adjacent(p Pos) bool {
	if p.Row < n.Row-1 || p.Row > n.Row+1 {
		return false
	}
	return p.Col >= n.StartCol-1 && p.Col <= n.EndCol+1
}

func (n Number) String() string {
	return fmt.Sprintf("%d@%d:%d-%d", n.Value, n.Row, n.StartCol, n.EndCol)
}

// Symbol is a single non-digit, non-blank character.
type Symbol struct {
	Char byte
	Row  int
	Col  int
}

// Pos returns the symbol's cell.
func (s Symbol) Pos() Pos { return Pos{Row: s.Row, Col: s.Col} }

func (s Symbol) String() string {
	return fmt.Sprintf("%q@%d:%d", s.Char, s.Row, s.Col)
}

// Tokens holds both token collections produced by one scan.
type Tokens struct {
	Symbols []Symbol
	Numbers []Number
}

// Empty reports whether the scan found nothing.
func (t Tokens) Empty() bool {
	return len(t.Symbols) == 0 && len(t.Numbers) == 0
}

// NeighborsOf returns the numbers adjacent to p, in scan order.
func (t Tokens) NeighborsOf(p Pos) []Number {
	var out []Number
	for _, n := range t.Numbers {
		if n.Adjacent(p) {
			out = append(out, n)
		}
	}
	return out
}

func (t *Tokens) append(other Tokens) {
	t.Symbols = append(t.Symbols, other.Symbols...)
	t.Numbers = append(t.Numbers, other.Numbers...)
}

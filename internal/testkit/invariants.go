// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"aoc/internal/grid"
	"aoc/internal/source"
)

// CheckTokenInvariants verifies scanner output against the scanned rows:
// 1) every token lies inside its row and matches the text under it
// 2) numbers are maximal digit runs with the value of their digits
// 3) every non-'.' cell is covered by exactly one token
// 4) tokens are ordered row-major
func CheckTokenInvariants(toks grid.Tokens, lines []string) error {
	covered := make([][]bool, len(lines))
	for i, line := range lines {
		covered[i] = make([]bool, len(line))
	}
	mark := func(row, col int) error {
		if covered[row][col] {
			return fmt.Errorf("cell %d:%d covered twice", row, col)
		}
		covered[row][col] = true
		return nil
	}

	prev := grid.Pos{Row: -1, Col: -1}
	for _, n := range toks.Numbers {
		if n.Row < 0 || n.Row >= len(lines) {
			return fmt.Errorf("number %v: row out of range", n)
		}
		line := lines[n.Row]
		if n.StartCol < 0 || n.EndCol >= len(line) || n.StartCol > n.EndCol {
			return fmt.Errorf("number %v: columns out of range for %q", n, line)
		}
		if !before(prev, n.Start()) {
			return fmt.Errorf("number %v out of order after %v", n, prev)
		}
		prev = n.End()

		digits := line[n.StartCol : n.EndCol+1]
		want, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return fmt.Errorf("number %v: text %q is not a number: %w", n, digits, err)
		}
		if want != n.Value {
			return fmt.Errorf("number %v: value differs from text %q", n, digits)
		}
		if n.StartCol > 0 && isDigit(line[n.StartCol-1]) {
			return fmt.Errorf("number %v is not maximal on the left", n)
		}
		if n.EndCol+1 < len(line) && isDigit(line[n.EndCol+1]) {
			return fmt.Errorf("number %v is not maximal on the right", n)
		}
		for col := n.StartCol; col <= n.EndCol; col++ {
			if err := mark(n.Row, col); err != nil {
				return err
			}
		}
	}

	prev = grid.Pos{Row: -1, Col: -1}
	for _, s := range toks.Symbols {
		if s.Row < 0 || s.Row >= len(lines) || s.Col < 0 || s.Col >= len(lines[s.Row]) {
			return fmt.Errorf("symbol %v out of range", s)
		}
		if !before(prev, s.Pos()) {
			return fmt.Errorf("symbol %v out of order after %v", s, prev)
		}
		prev = s.Pos()
		if got := lines[s.Row][s.Col]; got != s.Char {
			return fmt.Errorf("symbol %v: cell holds %q", s, got)
		}
		if err := mark(s.Row, s.Col); err != nil {
			return err
		}
	}

	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			if line[col] != '.' && !covered[row][col] {
				return fmt.Errorf("cell %d:%d (%q) not covered by any token", row, col, line[col])
			}
		}
	}
	return nil
}

// CheckSpanInvariants maps every token through f.PosSpan and verifies that
// the span is non-empty, stays inside the content and covers the token text.
func CheckSpanInvariants(toks grid.Tokens, f *source.File) error {
	if f == nil {
		return fmt.Errorf("nil file")
	}
	size, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	check := func(what string, sp source.Span, width int, text string) error {
		if sp.Empty() {
			return fmt.Errorf("%s: empty span", what)
		}
		if sp.File != f.ID {
			return fmt.Errorf("%s: span file mismatch: got=%d want=%d", what, sp.File, f.ID)
		}
		if sp.End > size {
			return fmt.Errorf("%s: span end beyond content: %d > %d", what, sp.End, size)
		}
		w, err := safecast.Conv[uint32](width)
		if err != nil {
			return fmt.Errorf("%s: width overflow: %w", what, err)
		}
		if sp.Len() != w {
			return fmt.Errorf("%s: span %v has length %d, want %d", what, sp, sp.Len(), w)
		}
		if got := string(f.Content[sp.Start:sp.End]); got != text {
			return fmt.Errorf("%s: span covers %q, want %q", what, got, text)
		}
		return nil
	}
	lines := f.Lines()
	for _, n := range toks.Numbers {
		sp := f.PosSpan(n.Row, n.StartCol, n.EndCol)
		if err := check(n.String(), sp, n.Width(), lines[n.Row][n.StartCol:n.EndCol+1]); err != nil {
			return err
		}
	}
	for _, s := range toks.Symbols {
		sp := f.PosSpan(s.Row, s.Col, s.Col)
		if err := check(s.String(), sp, 1, string(s.Char)); err != nil {
			return err
		}
	}
	return nil
}

func before(a, b grid.Pos) bool {
	return a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

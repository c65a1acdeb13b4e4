package grid

import (
	"fmt"
	"unicode"
)

// InvalidCharacterError reports a cell that is neither a digit, '.', nor a
// printable symbol. Width is the number of bytes the offending character
// occupies in the row; it is 1 for a byte that is not valid UTF-8.
type InvalidCharacterError struct {
	Row   int
	Col   int
	Char  rune
	Width int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at %d:%d", e.Char, e.Row, e.Col)
}

// Pos returns the offending cell.
func (e *InvalidCharacterError) Pos() Pos { return Pos{Row: e.Row, Col: e.Col} }

// Whitespace reports a blank that crept into the grid, usually trailing
// spaces or tabs left by an editor.
func (e *InvalidCharacterError) Whitespace() bool { return unicode.IsSpace(e.Char) }

// NumericOverflowError reports a digit run whose value does not fit in int64.
// Col is the column of the digit that overflowed.
type NumericOverflowError struct {
	Row      int
	StartCol int
	Col      int
}

func (e *NumericOverflowError) Error() string {
	return fmt.Sprintf("number starting at %d:%d overflows int64 at column %d", e.Row, e.StartCol, e.Col)
}

// Pos returns the first digit of the overflowing run.
func (e *NumericOverflowError) Pos() Pos { return Pos{Row: e.Row, Col: e.StartCol} }

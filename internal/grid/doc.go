// Package grid extracts number and symbol tokens from a 2-D text grid.
//
// Every cell of the grid belongs to one of three classes: a decimal digit,
// the blank '.', or a symbol (any other printable ASCII character).
// Invariants:
//   - A Number is a maximal run of digits on one row; runs never span rows.
//   - Number.StartCol <= Number.EndCol, both are 0-based byte columns.
//   - A Symbol is always exactly one character.
//   - Tokens are produced in row-major order; Scan is pure and repeatable.
//   - A character outside the three classes fails the whole scan; no
//     partial tokens are returned.
//
// Values are int64. A run that does not fit is reported as
// NumericOverflowError instead of wrapping.
package grid

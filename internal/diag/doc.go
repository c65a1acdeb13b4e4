// Package diag defines the diagnostic model shared by the scanner, the
// solvers and the CLI.
//
// A Diagnostic carries a Severity, a stable Code (rendered as INPxxxx for
// input problems and RUNxxxx for solver/run problems), a message, a primary
// source.Span and optional notes. Producers emit through a Reporter;
// BagReporter collects into a Bag, which supports a size limit, sorting
// and deduplication.
//
// Package diag does no formatting or IO; rendering lives in internal/diagfmt.
package diag

package diagfmt

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"aoc/internal/grid"
	"aoc/internal/source"
)

// NumberOutput is one number in the JSON token dump.
type NumberOutput struct {
	Value    int64       `json:"value"`
	Row      int         `json:"row"`
	StartCol int         `json:"start_col"`
	EndCol   int         `json:"end_col"`
	Span     source.Span `json:"span"`
}

// SymbolOutput is one symbol in the JSON token dump.
type SymbolOutput struct {
	Char string      `json:"char"`
	Row  int         `json:"row"`
	Col  int         `json:"col"`
	Span source.Span `json:"span"`
}

// TokensOutput is the root of the JSON token dump.
type TokensOutput struct {
	File    string         `json:"file"`
	Numbers []NumberOutput `json:"numbers"`
	Symbols []SymbolOutput `json:"symbols"`
}

type tokenLine struct {
	row, col int
	text     string
}

// FormatTokensPretty выводит токены в человекочитаемом формате,
// в порядке строк и колонок. Позиции 1-based, как в редакторе.
func FormatTokensPretty(w io.Writer, toks grid.Tokens, f *source.File, fs *source.FileSet) error {
	lines := make([]tokenLine, 0, len(toks.Numbers)+len(toks.Symbols))
	for _, n := range toks.Numbers {
		start, end := resolveCells(f, fs, n.Row, n.StartCol, n.EndCol)
		lines = append(lines, tokenLine{
			row: n.Row, col: n.StartCol,
			text: fmt.Sprintf("%-7s %-20d at %d:%d-%d:%d", "number", n.Value, start.Line, start.Col, end.Line, end.Col-1),
		})
	}
	for _, s := range toks.Symbols {
		start, _ := resolveCells(f, fs, s.Row, s.Col, s.Col)
		lines = append(lines, tokenLine{
			row: s.Row, col: s.Col,
			text: fmt.Sprintf("%-7s %-20q at %d:%d", "symbol", rune(s.Char), start.Line, start.Col),
		})
	}
	sortTokenLines(lines)

	for i, l := range lines {
		if _, err := fmt.Fprintf(w, "%4d: %s\n", i+1, l.text); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, toks grid.Tokens, f *source.File) error {
	out := TokensOutput{
		Numbers: make([]NumberOutput, 0, len(toks.Numbers)),
		Symbols: make([]SymbolOutput, 0, len(toks.Symbols)),
	}
	if f != nil {
		out.File = f.Path
	}
	for _, n := range toks.Numbers {
		out.Numbers = append(out.Numbers, NumberOutput{
			Value: n.Value, Row: n.Row, StartCol: n.StartCol, EndCol: n.EndCol,
			Span: spanOf(f, n.Row, n.StartCol, n.EndCol),
		})
	}
	for _, s := range toks.Symbols {
		out.Symbols = append(out.Symbols, SymbolOutput{
			Char: string(rune(s.Char)), Row: s.Row, Col: s.Col,
			Span: spanOf(f, s.Row, s.Col, s.Col),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func spanOf(f *source.File, row, startCol, endCol int) source.Span {
	if f == nil {
		return source.Span{}
	}
	return f.PosSpan(row, startCol, endCol)
}

// resolveCells falls back to grid coordinates when no file is attached.
func resolveCells(f *source.File, fs *source.FileSet, row, startCol, endCol int) (source.LineCol, source.LineCol) {
	if f == nil || fs == nil {
		return gridLineCol(row, startCol), gridLineCol(row, endCol+1)
	}
	return fs.Resolve(f.PosSpan(row, startCol, endCol))
}

func gridLineCol(row, col int) source.LineCol {
	return source.LineCol{Line: uint32(max(row, 0)) + 1, Col: uint32(max(col, 0)) + 1}
}

func sortTokenLines(lines []tokenLine) {
	slices.SortStableFunc(lines, func(a, b tokenLine) int {
		if a.row != b.row {
			return cmp.Compare(a.row, b.row)
		}
		return cmp.Compare(a.col, b.col)
	})
}

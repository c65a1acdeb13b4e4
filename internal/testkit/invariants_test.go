package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aoc/internal/grid"
	"aoc/internal/source"
)

func TestInvariantsHoldForTestdata(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "testdata", "grids", "*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no grids in testdata")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			fs := source.NewFileSet()
			id, err := fs.Load(path)
			if err != nil {
				t.Fatal(err)
			}
			file := fs.Get(id)
			toks, err := grid.Scan(file.Lines())
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if err := CheckTokenInvariants(toks, file.Lines()); err != nil {
				t.Error(err)
			}
			if err := CheckSpanInvariants(toks, file); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestTokenInvariantsRejectBrokenTokens(t *testing.T) {
	lines := []string{"467..114..", "...*......"}
	good := grid.Tokens{
		Numbers: []grid.Number{
			{Value: 467, Row: 0, StartCol: 0, EndCol: 2},
			{Value: 114, Row: 0, StartCol: 5, EndCol: 7},
		},
		Symbols: []grid.Symbol{{Char: '*', Row: 1, Col: 3}},
	}
	if err := CheckTokenInvariants(good, lines); err != nil {
		t.Fatalf("valid tokens rejected: %v", err)
	}

	tests := []struct {
		name string
		edit func(*grid.Tokens)
		want string
	}{
		{"wrong value", func(tk *grid.Tokens) { tk.Numbers[0].Value = 466 }, "value differs"},
		{"not maximal", func(tk *grid.Tokens) { tk.Numbers[0].StartCol = 1; tk.Numbers[0].Value = 67 }, "not maximal"},
		{"missing symbol", func(tk *grid.Tokens) { tk.Symbols = nil }, "not covered"},
		{"wrong char", func(tk *grid.Tokens) { tk.Symbols[0].Char = '#' }, "cell holds"},
		{"out of order", func(tk *grid.Tokens) {
			tk.Numbers[0], tk.Numbers[1] = tk.Numbers[1], tk.Numbers[0]
		}, "out of order"},
		{"out of range", func(tk *grid.Tokens) { tk.Symbols[0].Row = 5 }, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := grid.Tokens{
				Numbers: append([]grid.Number(nil), good.Numbers...),
				Symbols: append([]grid.Symbol(nil), good.Symbols...),
			}
			tt.edit(&toks)
			err := CheckTokenInvariants(toks, lines)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestSpanInvariantsNilFile(t *testing.T) {
	if err := CheckSpanInvariants(grid.Tokens{}, nil); err == nil {
		t.Fatal("expected error for nil file")
	}
}

func TestSpanInvariantsAfterCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	if err := os.WriteFile(path, []byte("12..#\r\n.*.56\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	file := fs.Get(id)
	toks, err := grid.Scan(file.Lines())
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckSpanInvariants(toks, file); err != nil {
		t.Fatal(err)
	}
}

package fuzztests

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"aoc/internal/driver"
	"aoc/internal/grid"
	"aoc/internal/source"
	"aoc/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzGridScan(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.txt", clampInput(input)))
		lines := file.Lines()

		toks, err := grid.Scan(lines)
		concurrent, cerr := grid.ScanConcurrent(context.Background(), lines, 4)
		if (err == nil) != (cerr == nil) {
			t.Fatalf("scan error mismatch: sequential=%v concurrent=%v", err, cerr)
		}
		if err != nil {
			var inv *grid.InvalidCharacterError
			var ovf *grid.NumericOverflowError
			if !errors.As(err, &inv) && !errors.As(err, &ovf) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			if !toks.Empty() {
				t.Fatalf("partial tokens returned with error %v", err)
			}
			return
		}
		if diff := cmp.Diff(toks, concurrent, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("concurrent scan differs (-seq +conc):\n%s", diff)
		}
		if err := testkit.CheckTokenInvariants(toks, lines); err != nil {
			t.Fatal(err)
		}
		if err := testkit.CheckSpanInvariants(toks, file); err != nil {
			t.Fatal(err)
		}
	})
}

func FuzzDriverScan(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		id := fs.AddVirtual("fuzz.txt", clampInput(input))

		res, err := driver.ScanFile(context.Background(), fs, id, driver.ScanOptions{MaxDiagnostics: 16, Jobs: 2})
		if err != nil {
			t.Fatalf("ScanFile: %v", err)
		}
		if res.Bag.HasErrors() != res.Failed() {
			t.Fatalf("bag errors = %v, but Err = %v", res.Bag.HasErrors(), res.Err)
		}
		if res.Failed() && !res.Tokens.Empty() {
			t.Fatal("tokens reported together with scan errors")
		}
		for _, d := range res.Bag.Items() {
			if int(d.Primary.End) > len(res.File.Content) {
				t.Fatalf("diagnostic %s points past content: %v", d.Code.ID(), d.Primary)
			}
		}
	})
}

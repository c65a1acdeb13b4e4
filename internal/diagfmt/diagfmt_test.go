package diagfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"aoc/internal/diag"
	"aoc/internal/grid"
	"aoc/internal/source"
)

func newInput(t *testing.T, content string) (*source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("/home/elf/aoc/inputs/03.txt", []byte(content))
	return fs, fs.Get(id)
}

func TestPrettyCaret(t *testing.T) {
	fs, f := newInput(t, "467..114..\n...*#.....\n")
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.InpInvalidCharacter,
		Message:  "invalid character '#'",
		Primary:  f.PosSpan(1, 4, 4),
	})

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	want := "03.txt:2:5: ERROR INP1001: invalid character '#'\n" +
		"  ...*#.....\n" +
		"      ^\n"
	if got := buf.String(); got != want {
		t.Errorf("Pretty output:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrettyWideUnderline(t *testing.T) {
	fs, f := newInput(t, "..99999999999999999999..\n")
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.InpNumericOverflow,
		Message:  "number too large",
		Primary:  f.PosSpan(0, 2, 21),
	})
	bag.Items()[0] = bag.Items()[0].WithNote(f.PosSpan(0, 2, 2), "number starts here")

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "    ^"+strings.Repeat("~", 19)+"\n") {
		t.Errorf("underline missing:\n%s", out)
	}
	if !strings.Contains(out, "note: 03.txt:1:3: number starts here") {
		t.Errorf("note missing:\n%s", out)
	}
}

func TestPathModes(t *testing.T) {
	fs, f := newInput(t, "a\n")
	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.InpEmpty, Message: "m", Primary: f.PosSpan(0, 0, 0)})

	tests := []struct {
		mode PathMode
		base string
		want string
	}{
		{PathModeAbsolute, "", "/home/elf/aoc/inputs/03.txt:1:1"},
		{PathModeRelative, "/home/elf/aoc", "inputs/03.txt:1:1"},
		{PathModeBasename, "", "03.txt:1:1"},
		{PathModeAuto, "/srv", "/home/elf/aoc/inputs/03.txt:1:1"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode, BaseDir: tt.base}); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(buf.String(), tt.want+": WARNING") {
			t.Errorf("mode %d: got %q, want prefix %q", tt.mode, buf.String(), tt.want)
		}
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs, f := newInput(t, "467..114..\n...*#.....\n")
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.InpInvalidCharacter, Message: "bad", Primary: f.PosSpan(1, 4, 4)})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.InpMalformedLine, Message: "other", Primary: f.PosSpan(0, 0, 0)})

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename, Max: 1}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 {
		t.Fatalf("Count = %d, want 1", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "INP1001" || d.Location.File != "03.txt" || d.Location.StartLine != 2 || d.Location.StartCol != 5 {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	if d.Location.StartByte != 15 || d.Location.EndByte != 16 {
		t.Errorf("bytes = %d-%d, want 15-16", d.Location.StartByte, d.Location.EndByte)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs, f := newInput(t, "617*......\n")
	toks := grid.Tokens{
		Numbers: []grid.Number{{Value: 617, Row: 0, StartCol: 0, EndCol: 2}},
		Symbols: []grid.Symbol{{Char: '*', Row: 0, Col: 3}},
	}
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, f, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "number") || !strings.Contains(lines[0], "617") || !strings.HasSuffix(lines[0], "at 1:1-1:3") {
		t.Errorf("line 1 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "'*'") || !strings.HasSuffix(lines[1], "at 1:4") {
		t.Errorf("line 2 = %q", lines[1])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	_, f := newInput(t, "..\n.42\n")
	toks := grid.Tokens{Numbers: []grid.Number{{Value: 42, Row: 1, StartCol: 1, EndCol: 2}}}

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks, f); err != nil {
		t.Fatal(err)
	}
	var out TokensOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Numbers) != 1 || out.Numbers[0].Span.Start != 4 || out.Numbers[0].Span.End != 6 {
		t.Errorf("numbers = %+v", out.Numbers)
	}
	if out.Symbols == nil || len(out.Symbols) != 0 {
		t.Errorf("symbols = %#v, want empty array", out.Symbols)
	}
}

func TestFormatAnswersGrouping(t *testing.T) {
	rows := []AnswerRow{
		{Day: 3, Title: "Gear Ratios", Part: "1", Value: 4361},
		{Day: 3, Title: "Gear Ratios", Part: "2", Value: 467835},
		{Day: 5, Title: "If You Give A Seed A Fertilizer", Part: "1", Err: errors.New("malformed input")},
	}

	var buf bytes.Buffer
	if err := FormatAnswers(&buf, rows, AnswerOpts{Locale: language.English}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"day 03", "4,361", "467,835", "error: malformed input", "If You Give A Seed …"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := FormatAnswers(&buf, rows[:1], AnswerOpts{Locale: language.Und}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), " 4361") {
		t.Errorf("plain output = %q", buf.String())
	}
}

func TestFormatAnswersJSON(t *testing.T) {
	rows := []AnswerRow{
		{Day: 6, Title: "Wait For It", Part: "2", Value: 71503, Cached: true},
		{Day: 7, Title: "Camel Cards", Part: "1", Err: errors.New("boom")},
	}
	var buf bytes.Buffer
	if err := FormatAnswersJSON(&buf, rows); err != nil {
		t.Fatal(err)
	}
	var out []AnswerJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out[0].Answer == nil || *out[0].Answer != 71503 || !out[0].Cached {
		t.Errorf("row 0 = %+v", out[0])
	}
	if out[1].Answer != nil || out[1].Error != "boom" {
		t.Errorf("row 1 = %+v", out[1])
	}
}

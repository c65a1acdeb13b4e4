package source

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("inputs/03.txt", []byte("467..114.."), 0)
	id2 := fs.Add("inputs/03.txt", []byte("617*......"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("ids = %d, %d, want 0, 1", id1, id2)
	}

	latest, ok := fs.GetLatest("inputs/./03.txt")
	if !ok || latest != id2 {
		t.Errorf("GetLatest = %d, %v, want %d, true", latest, ok, id2)
	}
	if got := fs.Get(id1).Text(); got != "467..114.." {
		t.Errorf("first version = %q", got)
	}
	if fs.Get(id1).Hash == fs.Get(id2).Hash {
		t.Error("different contents share a hash")
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "03.txt")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("1.\r\n.*\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if got := f.Text(); got != "1.\n.*\n" {
		t.Errorf("content = %q", got)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if f.Flags&FileVirtual != 0 {
		t.Error("loaded file marked virtual")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewFileSet().Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAddVirtualComposesNFC(t *testing.T) {
	fs := NewFileSet()
	// "e" + combining acute accent
	id := fs.AddVirtual("mem", []byte("1e\u0301"))
	f := fs.Get(id)
	if got := f.Text(); got != "1\u00e9" {
		t.Errorf("content = %q, want composed form", got)
	}
	if f.Flags&FileNormalizedNFC == 0 || f.Flags&FileVirtual == 0 {
		t.Errorf("flags = %b", f.Flags)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		content string
		want    []string
	}{
		{content: "", want: nil},
		{content: "\n", want: nil},
		{content: "abc", want: []string{"abc"}},
		{content: "abc\n", want: []string{"abc"}},
		{content: "a\n\nb\n", want: []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		fs := NewFileSet()
		got := fs.Get(fs.AddVirtual("t", []byte(tt.content))).Lines()
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lines(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("t", []byte("467..\n...*.\n..35.")))
	tests := map[uint32]string{0: "", 1: "467..", 2: "...*.", 3: "..35.", 4: ""}
	for line, want := range tests {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestPosSpanResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t", []byte("467..\n...*.\n..35."))
	f := fs.Get(id)

	sp := f.PosSpan(2, 2, 3)
	if got := string(f.Content[sp.Start:sp.End]); got != "35" {
		t.Errorf("PosSpan(2,2,3) covers %q, want \"35\"", got)
	}
	start, end := fs.Resolve(sp)
	if start != (LineCol{Line: 3, Col: 3}) || end != (LineCol{Line: 3, Col: 5}) {
		t.Errorf("Resolve = %v-%v", start, end)
	}

	if out := f.PosSpan(7, 0, 0); !out.Empty() || out.Start != uint32(len(f.Content)) {
		t.Errorf("PosSpan outside file = %v, want empty at end", out)
	}
}

func TestToLineCol(t *testing.T) {
	idx := buildLineIndex([]byte("abc\nde\n\nf"))
	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{3, LineCol{1, 4}},
		{4, LineCol{2, 1}},
		{7, LineCol{3, 1}},
		{8, LineCol{4, 1}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 6}
	b := Span{File: 1, Start: 2, End: 5}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 6}) {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 9}); got != a {
		t.Errorf("Cover across files = %v, want %v", got, a)
	}
	if a.Len() != 2 || a.Empty() {
		t.Errorf("Len/Empty wrong for %v", a)
	}
}

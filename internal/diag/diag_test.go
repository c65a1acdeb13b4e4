package diag

import (
	"testing"

	"aoc/internal/source"
)

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		InpInvalidCharacter: "INP1001",
		InpNumericOverflow:  "INP1002",
		RunSolverFail:       "RUN2001",
		UnknownCode:         "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if got := Code(1999).Title(); got != "Unknown error" {
		t.Errorf("unregistered Title = %q", got)
	}
	if got := InpEmpty.String(); got != "[INP1004]: Empty input" {
		t.Errorf("String = %q", got)
	}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		b.Add(Diagnostic{Severity: SevWarning, Code: InpMalformedLine})
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
	if !b.HasWarnings() || b.HasErrors() {
		t.Error("expected warnings only")
	}
	if NewBag(-1).Cap() != 0 || NewBag(1<<20).Cap() != ^uint16(0) {
		t.Error("limit not clamped")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	r := BagReporter{Bag: b}
	ReportWarning(r, InpMalformedLine, source.Span{Start: 8, End: 9}, "late")
	ReportError(r, InpInvalidCharacter, source.Span{Start: 2, End: 3}, "first")
	ReportWarning(r, InpMalformedLine, source.Span{Start: 2, End: 3}, "same place")
	ReportError(r, InpInvalidCharacter, source.Span{Start: 2, End: 3}, "dup")

	b.Sort()
	items := b.Items()
	if items[0].Message != "first" || items[len(items)-1].Message != "late" {
		t.Errorf("unexpected order: %+v", items)
	}

	b.Dedup()
	if b.Len() != 3 {
		t.Errorf("Len after Dedup = %d, want 3", b.Len())
	}
	if !b.HasErrors() {
		t.Error("HasErrors = false")
	}
}

func TestNilReporterIsIgnored(t *testing.T) {
	ReportError(nil, RunSolverFail, source.Span{}, "ignored")
	BagReporter{}.Report(RunSolverFail, SevError, source.Span{}, "ignored", nil)
}

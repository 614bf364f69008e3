package diag_test

import (
	"testing"

	"rlc/internal/diag"
	"rlc/internal/source"
)

func TestCodeID(t *testing.T) {
	tests := map[diag.Code]string{
		diag.LexUnknownChar:      "LEX1001",
		diag.SynExpectSemicolon:  "SYN2002",
		diag.SemUnresolvedSymbol: "SEM3001",
		diag.IOIncludeNotFound:   "IO4002",
		diag.UnknownCode:         "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if diag.Code(2999).Title() != "Unknown error" {
		t.Errorf("unknown codes must fall back to the generic title")
	}
}

func TestCountingReporter(t *testing.T) {
	bag := diag.NewBag(0)
	r := &diag.CountingReporter{Next: diag.BagReporter{Bag: bag}}
	r.Report(diag.SynExpectSemicolon, diag.SevWarning, source.Span{}, "w", nil)
	if r.Errors != 0 || bag.HasErrors() {
		t.Fatalf("warnings must not count as errors")
	}
	diag.ReportError(r, diag.SynExpectType, source.Span{Start: 3, End: 4}, "expected type").
		WithNote(source.Span{}, "here").
		Emit()
	if r.Errors != 1 || !bag.HasErrors() || bag.Len() != 2 {
		t.Fatalf("errors=%d len=%d", r.Errors, bag.Len())
	}
	d, ok := bag.FirstError()
	if !ok || d.Code != diag.SynExpectType || len(d.Notes) != 1 {
		t.Fatalf("FirstError = %+v, %v", d, ok)
	}
}

func TestBagLimitAndSort(t *testing.T) {
	bag := diag.NewBag(2)
	bag.Add(diag.NewError(diag.SynExpectType, source.Span{Start: 9}, "b"))
	bag.Add(diag.NewError(diag.SynExpectType, source.Span{Start: 1}, "a"))
	if bag.Add(diag.NewError(diag.SynExpectType, source.Span{}, "c")) {
		t.Fatal("bag must respect its limit")
	}
	bag.Sort()
	if bag.Items()[0].Message != "a" {
		t.Errorf("sort by start failed: %+v", bag.Items())
	}
}

func TestFatalErrorFormat(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("dir/x.rl", []byte("a\n  b c"))
	d := diag.NewError(diag.SemUnresolvedSymbol, source.Span{File: id, Start: 6, End: 7}, "unknown symbol 'c'")
	err := diag.NewFatal(fs, d)
	if got, want := err.Error(), "dir/x.rl:2:5: error: unknown symbol 'c'."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

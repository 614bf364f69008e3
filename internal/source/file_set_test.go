package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetPosition(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.rl", []byte("main() {\n  x: INT;\n}\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{8, LineCol{1, 9}}, // '\n' belongs to the first line
		{9, LineCol{2, 1}},
		{11, LineCol{2, 3}},
		{19, LineCol{3, 1}},
	}
	for _, tt := range tests {
		got := fs.Position(Span{File: id, Start: tt.off, End: tt.off})
		if got.LineCol != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, got.LineCol, tt.want)
		}
	}

	pos := fs.Position(Span{File: id, Start: 11, End: 12})
	if pos.String() != "a.rl:2:3" {
		t.Errorf("unexpected position string %q", pos.String())
	}
}

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()
	id1 := fs.Add("dir/../test.rl", []byte("a"), 0)
	id2 := fs.Add("test.rl", []byte("b"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids")
	}
	f, ok := fs.GetByPath("test.rl")
	if !ok || f.ID != id2 {
		t.Fatalf("GetByPath returned %v, %v", f, ok)
	}
	if string(fs.Get(id1).Content) != "a" {
		t.Errorf("old version must stay available")
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.rl")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb\rc"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\rc" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b", f.Flags)
	}
}

func TestGetLine(t *testing.T) {
	f := &File{Content: []byte("one\ntwo\n\nfour")}
	f.LineIdx = buildLineIndex(f.Content)
	for i, want := range []string{"", "one", "two", "", "four", ""} {
		if got := f.GetLine(uint32(i)); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Errorf("cross-file cover must keep the receiver, got %v", got)
	}
	if !a.Head().Empty() {
		t.Errorf("Head must be empty")
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("Vector")
	if in.Intern("Vector") != a {
		t.Fatal("intern must deduplicate")
	}
	if _, ok := in.Find("Missing"); ok {
		t.Error("Find must not intern")
	}
	if s := in.MustLookup(a); s != "Vector" {
		t.Errorf("lookup = %q", s)
	}
	if s, _ := in.Lookup(NoStringID); s != "" {
		t.Errorf("NoStringID must map to empty string")
	}
	if in.Len() != 2 {
		t.Errorf("Len = %d", in.Len())
	}
}

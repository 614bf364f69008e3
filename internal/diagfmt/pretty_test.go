package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"rlc/internal/diag"
	"rlc/internal/diagfmt"
	"rlc/internal/source"
)

func prettyOf(t *testing.T, path, content, needle string, opts diagfmt.PrettyOpts) string {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(content))
	off := strings.Index(content, needle)
	if off < 0 {
		t.Fatalf("%q not in content", needle)
	}
	bag := diag.NewBag(0)
	start := uint32(off) //nolint:gosec // test input is small
	d := diag.NewError(diag.SemUnresolvedSymbol, source.Span{File: id, Start: start, End: start + uint32(len(needle))}, "unknown symbol '"+needle+"'")
	bag.Add(d.WithNote(source.Span{File: id}, "declared here"))
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, opts)
	return buf.String()
}

func TestPrettyClassicLine(t *testing.T) {
	got := prettyOf(t, "t.rl", "abc: INT;\nfoo bar;\n", "bar", diagfmt.PrettyOpts{})
	if want := "t.rl:2:5: error: unknown symbol 'bar'.\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrettyContextCaret(t *testing.T) {
	tests := []struct {
		name    string
		content string
		needle  string
		caret   string
	}{
		{"ascii", "abc: INT;\nfoo bar;\n", "bar", "      ^~~\n"},
		{"wide runes", "s := \"世界\" + y;\n", "y", "  " + strings.Repeat(" ", 14) + "^\n"},
		{"tab", "\tbad;\n", "bad", "  \t^~~\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := prettyOf(t, "t.rl", tt.content, tt.needle, diagfmt.PrettyOpts{Context: true})
			lines := strings.SplitAfter(got, "\n")
			if len(lines) < 3 {
				t.Fatalf("short output %q", got)
			}
			if lines[2] != tt.caret {
				t.Errorf("caret line %q, want %q", lines[2], tt.caret)
			}
		})
	}
}

func TestPrettyOptions(t *testing.T) {
	got := prettyOf(t, "/very/long/dir/file.rl", "x y\n", "y",
		diagfmt.PrettyOpts{ShowCode: true, ShowNotes: true, PathMode: diagfmt.PathModeBasename})
	want := "file.rl:1:3: error [SEM3001]: unknown symbol 'y'.\n" +
		"file.rl:1:1: note: declared here.\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrettyColorOff(t *testing.T) {
	got := prettyOf(t, "t.rl", "x y\n", "y", diagfmt.PrettyOpts{Color: false})
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("escape codes with colour off: %q", got)
	}
	colored := prettyOf(t, "t.rl", "x y\n", "y", diagfmt.PrettyOpts{Color: true})
	if !strings.Contains(colored, "\x1b[") {
		t.Fatalf("no escape codes with colour on: %q", colored)
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.rl", []byte("a\nbc\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExpectSemicolon, source.Span{File: id, Start: 2, End: 4}, "expected ';'"))
	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{IncludePositions: true})
	if out.Count != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN2002" || d.Severity != "error" || d.Location.File != "t.rl" {
		t.Errorf("diagnostic = %+v", d)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 1 || d.Location.EndCol != 3 {
		t.Errorf("location = %+v", d.Location)
	}
}

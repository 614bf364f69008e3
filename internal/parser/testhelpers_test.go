package parser_test

import (
	"testing"

	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/lexer"
	"rlc/internal/parser"
	"rlc/internal/source"
	"rlc/internal/testkit"
	"rlc/internal/token"
	"rlc/internal/trace"
)

type fixture struct {
	file *source.File
	toks []token.Token
	bag  *diag.Bag
	opts parser.Options
}

func newFixture(t *testing.T, src string, tracer trace.Tracer) *fixture {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.rl", []byte(src)))
	bag := diag.NewBag(0)
	toks, ok := lexer.Tokenize(f, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if !ok {
		t.Fatalf("tokenize %q: %+v", src, bag.Items())
	}
	return &fixture{
		file: f,
		toks: toks,
		bag:  bag,
		opts: parser.Options{Reporter: diag.BagReporter{Bag: bag}, Tracer: tracer},
	}
}

func (fx *fixture) parser() *parser.Parser {
	return parser.New(fx.file, fx.toks, fx.opts)
}

// parseOK разбирает файл целиком и требует успеха.
func parseOK(t *testing.T, src string) *ast.File {
	t.Helper()
	fx := newFixture(t, src, nil)
	f, ok := parser.ParseFile(fx.file, fx.toks, fx.opts)
	if !ok {
		t.Fatalf("parse %q failed: %+v", src, fx.bag.Items())
	}
	if err := testkit.CheckEntrySpans(fx.file, f); err != nil {
		t.Fatalf("entry spans: %v", err)
	}
	return f
}

// parseFail разбирает файл и требует ровно одну ошибку с кодом want.
func parseFail(t *testing.T, src string, want diag.Code) diag.Diagnostic {
	t.Helper()
	fx := newFixture(t, src, nil)
	if _, ok := parser.ParseFile(fx.file, fx.toks, fx.opts); ok {
		t.Fatalf("parse %q: expected failure", src)
	}
	if fx.bag.Len() != 1 {
		t.Fatalf("parse %q: want exactly one diagnostic, got %+v", src, fx.bag.Items())
	}
	d := fx.bag.Items()[0]
	if d.Code != want {
		t.Fatalf("parse %q: code = %s (%s), want %s", src, d.Code.ID(), d.Message, want.ID())
	}
	return d
}

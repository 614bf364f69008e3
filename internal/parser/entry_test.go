package parser_test

import (
	"testing"

	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/parser"
	"rlc/internal/trace"
)

const program = `INCLUDE "lib\x2Fshapes.rl"

::geo {
	[T: TYPE]
	Point VIRTUAL -> PUBLIC Shape, PRIVATE VIRTUAL ::base::Thing {
		x: T;
		y: T := 0;
	PRIVATE:
		cache ::= 1;
		STATIC count: INT;
		CONSTRUCTOR(x: T, y: T): x(x), y(y) {}
		CONSTRUCTOR();
		DESTRUCTOR { }
		ABSTRACT area() FLOAT;
		PUBLIC [U: TYPE, N: NUMBER, V: U] OVERRIDE move(dx: U) VOID { .x += dx; }
		ENUM Kind { A, B := C, }
	}
}

UNION Bits { i: INT; f: FLOAT; }
TYPE Word(4);
TYPE Size := UINT;
EXTERN puts(s: CHAR \ CONST) INT;
EXTERN errno: INT;
INLINE max(a: INT, b: INT := 0) INT := a > b ? a : b;

main(VOID) INT {
	v: ::geo::Point{INT}(1, 2);
	RETURN 0;
}
`

func TestParseProgram(t *testing.T) {
	f := parseOK(t, program)

	if len(f.Includes) != 1 || f.Includes[0].Path != "lib/shapes.rl" {
		t.Fatalf("includes = %+v", f.Includes)
	}
	wantKinds := []ast.EntryKind{
		ast.EntryNamespace, ast.EntryUnion, ast.EntryRawtype, ast.EntryTypedef,
		ast.EntryExternal, ast.EntryExternal, ast.EntryFunction, ast.EntryFunction,
	}
	if len(f.Entries) != len(wantKinds) {
		t.Fatalf("got %d entries, want %d", len(f.Entries), len(wantKinds))
	}
	for i, k := range wantKinds {
		if f.Entries[i].Kind() != k {
			t.Errorf("entry %d: kind %v, want %v", i, f.Entries[i].Kind(), k)
		}
	}

	ns := f.Entries[0].(*ast.Namespace)
	if ns.Name().Text != "geo" || len(ns.Entries) != 1 {
		t.Fatalf("namespace %q with %d entries", ns.Name().Text, len(ns.Entries))
	}
	cls := ns.Entries[0].(*ast.Class)
	if !cls.Virtual || cls.Templates() == nil || len(cls.Templates().Params) != 1 {
		t.Errorf("class header: virtual=%v templates=%+v", cls.Virtual, cls.Templates())
	}
	if len(cls.Bases) != 2 {
		t.Fatalf("bases = %+v", cls.Bases)
	}
	if b := cls.Bases[1]; b.Visibility != ast.VisPrivate || !b.Virtual || b.Base.String() != "::base::Thing" {
		t.Errorf("second base = %+v (%s)", b, b.Base)
	}
	if len(cls.Constructors) != 2 || cls.Destructor == nil {
		t.Fatalf("constructors=%d destructor=%v", len(cls.Constructors), cls.Destructor)
	}
	if ctor := cls.Constructors[0].Constructor; len(ctor.Args) != 2 || len(ctor.Inits) != 2 || ctor.Body == nil {
		t.Errorf("first constructor = %+v", ctor)
	}
	if cls.Constructors[1].Constructor.Body != nil {
		t.Error("second constructor is a declaration")
	}

	names := []string{"x", "y", "cache", "count", "area", "move", "Kind"}
	if len(cls.Members) != len(names) {
		t.Fatalf("got %d members, want %d", len(cls.Members), len(names))
	}
	for i, n := range names {
		if got := cls.Members[i].Entry.Name().Text; got != n {
			t.Errorf("member %d = %s, want %s", i, got, n)
		}
	}
	if cls.Members[0].Visibility != ast.VisPublic || cls.Members[2].Visibility != ast.VisPrivate {
		t.Error("visibility sections not applied")
	}
	if !cls.Members[3].Static {
		t.Error("count must be STATIC")
	}
	if m := cls.Members[4]; m.Attribute != ast.AttrAbstract || m.Entry.(*ast.Function).HasBody() {
		t.Errorf("area = %+v", m)
	}
	move := cls.Members[5]
	if move.Attribute != ast.AttrOverride || move.Visibility != ast.VisPublic {
		t.Errorf("move = %+v", move)
	}
	params := move.Entry.Templates().Params
	if len(params) != 3 || params[0].Kind != ast.TemplateType || params[1].Kind != ast.TemplateNumber ||
		params[2].Kind != ast.TemplateValue || params[2].Type.String() != "U" {
		t.Errorf("move templates = %+v", params)
	}
	enum := cls.Members[6].Entry.(*ast.Enum)
	if len(enum.Constants) != 2 || len(enum.Constants[1].Names) != 2 {
		t.Errorf("enum constants = %+v", enum.Constants)
	}

	if rt := f.Entries[2].(*ast.Rawtype); ast.FormatExpr(rt.Size) != "4" || rt.Members != nil {
		t.Errorf("rawtype = %+v", rt)
	}
	if td := f.Entries[3].(*ast.Typedef); td.Type.String() != "UINT" {
		t.Errorf("typedef = %s", td.Type)
	}
	puts := f.Entries[4].(*ast.ExternalSymbol)
	if !puts.Function || len(puts.Args) != 1 || puts.Args[0].Type.String() != "CHAR \\ CONST" || puts.Type.String() != "INT" {
		t.Errorf("puts = %+v", puts)
	}
	if errno := f.Entries[5].(*ast.ExternalSymbol); errno.Function {
		t.Error("errno is a variable")
	}
	mx := f.Entries[6].(*ast.Function)
	if !mx.Inline || mx.Short == nil || mx.Args[1].Default == nil {
		t.Errorf("max = %+v", mx)
	}
	if got := ast.FormatExpr(mx.Short); got != "((a > b) ? a : b)" {
		t.Errorf("max body = %s", got)
	}
	mainFn := f.Entries[7].(*ast.Function)
	if len(mainFn.Args) != 0 || mainFn.Body == nil || len(mainFn.Body.Stmts) != 2 {
		t.Fatalf("main = %+v", mainFn)
	}
	v := mainFn.Body.Stmts[0].(*ast.VariableStmt).Var
	if !v.HasArgs || len(v.Args) != 2 || v.Type.String() != "::geo::Point{INT}" {
		t.Errorf("local = %+v", v)
	}
}

// Таблицы проб рекурсивно возвращаются в себя: вложенные пространства,
// класс в классе и скобки внутри инициализатора.
func TestParseNestedRecursion(t *testing.T) {
	f := parseOK(t, "::A { ::B { C { D { x: INT := (1 + (2)); } } } }")

	a := f.Entries[0].(*ast.Namespace)
	b := a.Entries[0].(*ast.Namespace)
	c := b.Entries[0].(*ast.Class)
	if len(c.Members) != 1 {
		t.Fatalf("C members = %d", len(c.Members))
	}
	d, ok := c.Members[0].Entry.(*ast.Class)
	if !ok || len(d.Members) != 1 {
		t.Fatalf("D = %+v", c.Members[0].Entry)
	}
	x := d.Members[0].Entry.(*ast.GlobalVariable)
	if x.Name().Text != "x" || x.Var.Init == nil {
		t.Errorf("x = %+v", x.Var)
	}
}

func TestParseFatalErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"second destructor", "Foo { DESTRUCTOR {} DESTRUCTOR {} }", diag.SynDuplicateDestructor},
		{"templated destructor", "Foo { [T: TYPE] DESTRUCTOR {} }", diag.SynDestructorTemplate},
		{"missing base", "Foo -> { }", diag.SynExpectSymbol},
		{"abstract with body", "Foo { ABSTRACT f() {} }", diag.SynAbstractWithBody},
		{"attribute on variable", "Foo { VIRTUAL x: INT; }", diag.SynModifierNotAllowed},
		{"static constructor", "Foo { STATIC CONSTRUCTOR(); }", diag.SynModifierNotAllowed},
		{"templated variable", "[T: TYPE] x: INT;", diag.SynTemplateNotAllowed},
		{"dangling template", "[T: TYPE]", diag.SynExpectScopeEntry},
		{"bad template param", "[T] f();", diag.SynUnexpectedToken},
		{"duplicate default", "f() { SWITCH (x) { DEFAULT: DEFAULT: } }", diag.SynDuplicateDefault},
		{"try without handler", "f() { TRY {} }", diag.SynTryWithoutHandler},
		{"missing semicolon", "x: INT", diag.SynExpectSemicolon},
		{"missing operand", "f() { x := ; }", diag.SynExpectExpression},
		{"unclosed class", "Foo { f() {}", diag.SynUnclosedBrace},
		{"unclosed block", "f() { RETURN;", diag.SynUnclosedBrace},
		{"garbage at top level", "+", diag.SynExpectScopeEntry},
		{"include without path", "INCLUDE x", diag.SynExpectInclude},
		{"empty if body", "f() { IF (x) }", diag.SynExpectStatement},
		{"bad member", "Foo { + }", diag.SynExpectMember},
		{"rawtype size", "TYPE R(;", diag.SynExpectExpression},
		{"typedef", "TYPE R;", diag.SynUnexpectedToken},
		{"namespace name", ":: { }", diag.SynExpectIdentifier},
		{"enum constant", "ENUM E { }", diag.SynExpectIdentifier},
		{"extern", "EXTERN x;", diag.SynUnexpectedToken},
		{"inline non-function", "INLINE 3", diag.SynExpectIdentifier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseFail(t, tt.src, tt.code)
		})
	}
}

func TestFatalErrorPosition(t *testing.T) {
	d := parseFail(t, "f() {\n\tx := ;\n}", diag.SynExpectExpression)
	// ошибка указывает на ';', а не на начало функции
	if d.Primary.Start != 12 {
		t.Fatalf("primary span %v", d.Primary)
	}
}

func TestDeclarationTracing(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	fx := newFixture(t, "Foo { f() {} }\n::N { g(); }", ring)
	if _, ok := parser.ParseFile(fx.file, fx.toks, fx.opts); !ok {
		t.Fatalf("parse failed: %+v", fx.bag.Items())
	}
	var ends []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanEnd && ev.Scope == trace.ScopeNode {
			ends = append(ends, ev.Name+":"+ev.Detail)
		}
	}
	want := []string{"function:f", "class:Foo", "function:g", "namespace:N"}
	if len(ends) != len(want) {
		t.Fatalf("node spans = %v, want %v", ends, want)
	}
	for i := range want {
		if ends[i] != want[i] {
			t.Errorf("span %d = %s, want %s", i, ends[i], want[i])
		}
	}
}

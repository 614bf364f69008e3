package parser_test

import (
	"testing"

	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/token"
)

func TestSymbolDestructorTemplates(t *testing.T) {
	fx := newFixture(t, "::A{T}::B::DESTRUCTOR{INT}", nil)
	p := fx.parser()
	if _, ok := p.ParseSymbol(true); ok {
		t.Fatal("destructor with template arguments accepted")
	}
	if d, _ := fx.bag.FirstError(); d.Code != diag.SynDestructorTemplate {
		t.Fatalf("code = %s, want %s", d.Code.ID(), diag.SynDestructorTemplate.ID())
	}

	// тот же путь без деструктора и с аргументами на последнем сегменте
	fx = newFixture(t, "::A{T}::B{INT}", nil)
	p = fx.parser()
	sym, ok := p.ParseSymbol(true)
	if !ok || !p.AtEOF() {
		t.Fatalf("symbol rejected: %+v", fx.bag.Items())
	}
	if !sym.Root || len(sym.Segments) != 2 || len(sym.Segments[1].Templates) != 1 {
		t.Fatalf("unexpected symbol %+v", sym)
	}
	if got := sym.String(); got != "::A{T}::B{INT}" {
		t.Errorf("String() = %s", got)
	}
}

func TestSymbolSegments(t *testing.T) {
	fx := newFixture(t, "Vec{INT}::CONSTRUCTOR::DESTRUCTOR", nil)
	sym, ok := fx.parser().ParseSymbol(true)
	if !ok {
		t.Fatalf("parse failed: %+v", fx.bag.Items())
	}
	want := []ast.SegmentKind{ast.SegIdentifier, ast.SegConstructor, ast.SegDestructor}
	if len(sym.Segments) != len(want) {
		t.Fatalf("got %d segments", len(sym.Segments))
	}
	for i, k := range want {
		if sym.Segments[i].Kind != k {
			t.Errorf("segment %d kind %v, want %v", i, sym.Segments[i].Kind, k)
		}
	}
	if sym.Segments[2].Text() != "DESTRUCTOR" {
		t.Errorf("destructor key = %q", sym.Segments[2].Text())
	}
}

func TestSymbolWithoutTemplates(t *testing.T) {
	fx := newFixture(t, "Base{INT}", nil)
	p := fx.parser()
	sym, ok := p.ParseSymbol(false)
	if !ok || len(sym.Segments) != 1 || len(sym.Segments[0].Templates) != 0 {
		t.Fatalf("unexpected %+v", sym)
	}
	if p.AtEOF() {
		t.Fatal("'{' must be left for the caller")
	}
}

func TestSymbolSoftAndFatal(t *testing.T) {
	fx := newFixture(t, "+ x", nil)
	p := fx.parser()
	if _, ok := p.ParseSymbol(true); ok || p.IsError() {
		t.Fatal("non-symbol must be a soft miss")
	}

	tests := []struct {
		src  string
		code diag.Code
	}{
		{"A::", diag.SynExpectSymbol},
		{"::", diag.SynExpectSymbol},
		{"::+", diag.SynExpectSymbol},
		{"A{}", diag.SynExpectType},
		{"A{INT", diag.SynUnclosedBrace},
		{"A{#}", diag.SynExpectExpression},
	}
	for _, tt := range tests {
		fx := newFixture(t, tt.src, nil)
		p := fx.parser()
		if _, ok := p.ParseSymbol(true); ok || !p.IsError() {
			t.Errorf("%q: expected fatal error", tt.src)
			continue
		}
		if d, _ := fx.bag.FirstError(); d.Code != tt.code {
			t.Errorf("%q: code %s, want %s", tt.src, d.Code.ID(), tt.code.ID())
		}
	}
}

func TestTypeNameModifiers(t *testing.T) {
	tests := []struct {
		src  string
		want []ast.TypeModifier
	}{
		{"INT", nil},
		{"INT * CONST *", []ast.TypeModifier{
			{Indirection: ast.IndirPointer, Qualifier: ast.QualConst},
			{Indirection: ast.IndirPointer},
		}},
		{"INT CONST * CONST", []ast.TypeModifier{
			{Qualifier: ast.QualConst},
			{Indirection: ast.IndirPointer, Qualifier: ast.QualConst},
		}},
		{"CHAR # $", []ast.TypeModifier{
			{Qualifier: ast.QualConst | ast.QualVolatile},
		}},
		{"Node \\ DYNAMIC * *", []ast.TypeModifier{
			{Indirection: ast.IndirNotNull, Qualifier: ast.QualDynamic},
			{Indirection: ast.IndirPointer},
			{Indirection: ast.IndirPointer},
		}},
	}
	for _, tt := range tests {
		fx := newFixture(t, tt.src, nil)
		p := fx.parser()
		typ, ok := p.ParseTypeName(true)
		if !ok || !p.AtEOF() {
			t.Fatalf("%q: parse failed: %+v", tt.src, fx.bag.Items())
		}
		if len(typ.Modifiers) != len(tt.want) {
			t.Fatalf("%q: got %d modifiers %+v, want %d", tt.src, len(typ.Modifiers), typ.Modifiers, len(tt.want))
		}
		for i := range tt.want {
			if typ.Modifiers[i] != tt.want[i] {
				t.Errorf("%q: modifier %d = %+v, want %+v", tt.src, i, typ.Modifiers[i], tt.want[i])
			}
		}
	}
}

func TestTypeNameModifierLoopStops(t *testing.T) {
	// "a" не модификатор: цикл останавливается на пустой паре и не трогает остаток
	fx := newFixture(t, "INT * a", nil)
	p := fx.parser()
	typ, ok := p.ParseTypeName(true)
	if !ok || len(typ.Modifiers) != 1 {
		t.Fatalf("unexpected %+v", typ)
	}
	if _, ok := p.ParseSymbol(true); !ok {
		t.Fatal("trailing symbol was consumed by the type")
	}
}

func TestTypeNameForms(t *testing.T) {
	tests := []struct {
		src   string
		value ast.TypeValue
		str   string
	}{
		{"VOID", ast.TypeVoid, "VOID"},
		{"::std::Map{Key, Value *} *", ast.TypeSymbol, "::std::Map{Key, Value *} *"},
		{"((INT, CHAR *) : VOID)", ast.TypeFunction, "((INT, CHAR *) : VOID)"},
		{"((VOID) : INT) \\", ast.TypeFunction, "((VOID) : INT) \\"},
	}
	for _, tt := range tests {
		fx := newFixture(t, tt.src, nil)
		p := fx.parser()
		typ, ok := p.ParseTypeName(true)
		if !ok || !p.AtEOF() {
			t.Fatalf("%q: parse failed: %+v", tt.src, fx.bag.Items())
		}
		if typ.Value != tt.value {
			t.Errorf("%q: value %v, want %v", tt.src, typ.Value, tt.value)
		}
		if got := typ.String(); got != tt.str {
			t.Errorf("%q: String() = %q", tt.src, got)
		}
	}
}

func TestTypeNameSymbolErrorDoesNotFallThrough(t *testing.T) {
	fx := newFixture(t, ":: ((INT) : INT)", nil)
	p := fx.parser()
	if _, ok := p.ParseTypeName(true); ok {
		t.Fatal("broken symbol accepted")
	}
	if d, _ := fx.bag.FirstError(); d.Code != diag.SynExpectSymbol {
		t.Fatalf("code = %s", d.Code.ID())
	}

	fx = newFixture(t, "(a)", nil)
	p = fx.parser()
	if _, ok := p.ParseTypeName(true); ok || p.IsError() {
		t.Fatal("'(' without signature must be a soft miss")
	}
	if tok := fx.toks[0]; tok.Kind != token.ParenOpen {
		t.Fatalf("unexpected first token %v", tok.Kind)
	}
}

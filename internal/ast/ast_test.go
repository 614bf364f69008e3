package ast_test

import (
	"testing"

	"rlc/internal/ast"
	"rlc/internal/token"
)

func ident(name string) token.Token {
	return token.Token{Kind: token.Identifier, Text: name}
}

func sym(names ...string) *ast.Symbol {
	s := &ast.Symbol{}
	for _, n := range names {
		s.Segments = append(s.Segments, ast.SymbolSegment{Name: ident(n)})
	}
	return s
}

func TestSymbolString(t *testing.T) {
	s := sym("std", "Vector")
	s.Root = true
	s.Segments[1].Templates = []ast.TemplateArg{
		{Type: &ast.TypeName{Value: ast.TypeSymbol, Name: sym("INT")}},
		{Value: &ast.NumberExpr{Tok: token.Token{Kind: token.Number, Text: "4"}}},
	}
	s.Segments = append(s.Segments, ast.SymbolSegment{Kind: ast.SegDestructor})
	if got, want := s.String(), "::std::Vector{INT, #4}::DESTRUCTOR"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTypeNameString(t *testing.T) {
	tn := &ast.TypeName{
		Value: ast.TypeFunction,
		Function: &ast.FunctionSignature{
			Result: &ast.TypeName{Value: ast.TypeVoid},
		},
		Modifiers: []ast.TypeModifier{
			{Indirection: ast.IndirPointer, Qualifier: ast.QualConst},
			{Indirection: ast.IndirNotNull},
		},
	}
	if got, want := tn.String(), `((VOID) : VOID) * CONST \`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatExprParenthesises(t *testing.T) {
	a := &ast.SymbolExpr{Symbol: sym("a")}
	b := &ast.SymbolExpr{Symbol: sym("b")}
	c := &ast.SymbolExpr{Symbol: sym("c")}
	e := &ast.OperatorExpr{Op: ast.OpAdd, Operands: []ast.Expr{
		a,
		&ast.OperatorExpr{Op: ast.OpCall, Operands: []ast.Expr{
			&ast.SymbolChildExpr{Object: b, Child: ast.SymbolChild{Name: ident("f")}},
			&ast.OperatorExpr{Op: ast.OpNeg, Operands: []ast.Expr{c}},
		}},
	}}
	if got, want := ast.FormatExpr(e), "(a + b.f((-c)))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExprKinds(t *testing.T) {
	set := ast.KindsOf(ast.ExprNumber, ast.ExprThis)
	if !set.Has(ast.ExprThis) || set.Has(ast.ExprSymbol) {
		t.Error("KindsOf membership is wrong")
	}
	all := ast.ExprAll.Without(ast.ExprOperator)
	if all.Has(ast.ExprOperator) || !all.Has(ast.ExprSizeof) {
		t.Error("Without is wrong")
	}
}

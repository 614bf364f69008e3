package parser_test

import (
	"testing"

	"rlc/internal/ast"
	"rlc/internal/diag"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	fx := newFixture(t, src, nil)
	p := fx.parser()
	e, ok := p.ParseExpression(ast.ExprAll)
	if !ok {
		t.Fatalf("%q: parse failed: %+v", src, fx.bag.Items())
	}
	if !p.AtEOF() {
		t.Fatalf("%q: trailing tokens after expression", src)
	}
	return e
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b * c", "(a + (b * c))"},
		{"a - b - c", "((a - b) - c)"},
		{"(a + b) * c", "((a + b) * c)"},
		{"a := b := c", "(a := (b := c))"},
		{"a += b <- c", "(a += (b <- c))"},
		{"a ? b : c ? d : e", "(a ? b : (c ? d : e))"},
		{"x := a || b ? c : d", "(x := ((a || b) ? c : d))"},
		{"a || b && c", "(a || (b && c))"},
		{"a | b ^ c & d", "(a | (b ^ (c & d)))"},
		{"a < b == c", "((a < b) == c)"},
		{"a << 1 + b", "(a << (1 + b))"},
		{"a * b .* c", "(a * (b .* c))"},
		{"-a * b", "((-a) * b)"},
		{"*p++", "(*(p++))"},
		{"!~x", "(!(~x))"},
		{"&&&v", "(&&&v)"},
		{"x-:", "(x-:)"},
		{"args...", "(args...)"},
		{"f(x)[i].y->z", "f(x)[i].y->z"},
		{"::std::max{INT}(a, 1)", "::std::max{INT}(a, 1)"},
		{".field + THIS", "(.field + THIS)"},
		{"<INT *>(p)", "<INT *>(p)"},
		{"SIZEOF(#x + 1)", "SIZEOF(#(x + 1))"},
		{"SIZEOF(Vec{INT, #4})", "SIZEOF(Vec{INT, #4})"},
		{`"s" == 'c'`, `("s" == 'c')`},
		{"1.5e3 / 0x10", "(1.5e3 / 0x10)"},
	}
	for _, tt := range tests {
		if got := ast.FormatExpr(parseExpr(t, tt.src)); got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestExpressionKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.ExprKind
	}{
		{"a + 1", ast.ExprOperator},
		{"42", ast.ExprNumber},
		{`"x"`, ast.ExprString},
		{"a::b", ast.ExprSymbol},
		{".m", ast.ExprSymbolChild},
		{"a.m", ast.ExprSymbolChild},
		{"THIS", ast.ExprThis},
		{"<INT>(x)", ast.ExprCast},
		{"SIZEOF(INT)", ast.ExprSizeof},
		{"f()", ast.ExprOperator},
	}
	for _, tt := range tests {
		if got := parseExpr(t, tt.src).Kind(); got != tt.kind {
			t.Errorf("%q: kind %v, want %v", tt.src, got, tt.kind)
		}
	}
}

func TestExpressionSoftMiss(t *testing.T) {
	for _, src := range []string{";", "}", "ELSE"} {
		fx := newFixture(t, src, nil)
		p := fx.parser()
		if _, ok := p.ParseExpression(ast.ExprAll); ok {
			t.Errorf("%q: expected no expression", src)
		}
		if p.IsError() || fx.bag.Len() != 0 {
			t.Errorf("%q: soft miss must not report: %+v", src, fx.bag.Items())
		}
	}

	// виды, которые не разрешены, просто не пробуются
	fx := newFixture(t, "a", nil)
	p := fx.parser()
	if _, ok := p.ParseExpression(ast.KindsOf(ast.ExprNumber, ast.ExprString)); ok {
		t.Fatal("symbol accepted although only literals were permitted")
	}
	if p.IsError() || p.AtEOF() {
		t.Fatal("rejected trial must not consume input or report")
	}
	if _, ok := p.ParseExpression(ast.KindsOf(ast.ExprSymbol)); !ok {
		t.Fatal("symbol trial failed")
	}
}

func TestExpressionFatal(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"a +", diag.SynExpectExpression},
		{"-", diag.SynExpectExpression},
		{"(a", diag.SynUnclosedParen},
		{"f(a, )", diag.SynExpectExpression},
		{"a[1", diag.SynUnclosedBracket},
		{"a ? b", diag.SynUnexpectedToken},
		{"a.", diag.SynExpectMember},
		{"<INT>x", diag.SynUnexpectedToken},
		{"<>(x)", diag.SynExpectType},
		{"SIZEOF(#)", diag.SynExpectExpression},
	}
	for _, tt := range tests {
		fx := newFixture(t, tt.src, nil)
		p := fx.parser()
		if _, ok := p.ParseExpression(ast.ExprAll); ok {
			t.Errorf("%q: expected failure", tt.src)
			continue
		}
		if !p.IsError() {
			t.Errorf("%q: failure must be fatal", tt.src)
			continue
		}
		if d, _ := fx.bag.FirstError(); d.Code != tt.code {
			t.Errorf("%q: code %s (%s), want %s", tt.src, d.Code.ID(), d.Message, tt.code.ID())
		}
	}
}

package parser

import (
	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/token"
)

func (p *Parser) parseNumberExpr() (ast.Expr, bool) {
	if !p.atAny(token.Number, token.Float) {
		return nil, false
	}
	return &ast.NumberExpr{Tok: p.advance()}, true
}

func (p *Parser) parseStringExpr() (ast.Expr, bool) {
	if !p.atAny(token.String, token.Char) {
		return nil, false
	}
	return &ast.StringExpr{Tok: p.advance()}, true
}

func (p *Parser) parseSymbolExpr() (ast.Expr, bool) {
	sym, ok := p.ParseSymbol(true)
	if !ok {
		return nil, false
	}
	return &ast.SymbolExpr{Symbol: sym}, true
}

// parseImplicitChild разбирает ".name", член THIS без явного объекта.
func (p *Parser) parseImplicitChild() (ast.Expr, bool) {
	dot, ok := p.eat(token.Dot)
	if !ok {
		return nil, false
	}
	child, ok := p.parseSymbolChild()
	if !ok {
		return nil, false
	}
	return &ast.SymbolChildExpr{Child: child, Sp: dot.Span.Cover(child.Sp)}, true
}

func (p *Parser) parseThisExpr() (ast.Expr, bool) {
	tok, ok := p.eat(token.KwThis)
	if !ok {
		return nil, false
	}
	return &ast.ThisExpr{Sp: tok.Span}, true
}

// parseCastExpr: <Type>(expr)
func (p *Parser) parseCastExpr() (ast.Expr, bool) {
	open, ok := p.eat(token.Less)
	if !ok {
		return nil, false
	}
	typ, ok := p.requireTypeName(true, "in cast")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Greater, diag.SynUnexpectedToken, "expected '>' after cast type"); !ok {
		return nil, false
	}
	paren, ok := p.expect(token.ParenOpen, diag.SynUnexpectedToken, "expected '(' after cast type")
	if !ok {
		return nil, false
	}
	value, ok := p.parseExprOrFail("in cast")
	if !ok {
		return nil, false
	}
	closeTok, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, paren, "')' after cast value")
	if !ok {
		return nil, false
	}
	return &ast.CastExpr{Type: typ, Value: value, Sp: open.Span.Cover(closeTok.Span)}, true
}

// parseSizeofExpr: SIZEOF(Type) или SIZEOF(#expr)
func (p *Parser) parseSizeofExpr() (ast.Expr, bool) {
	kw, ok := p.eat(token.KwSizeof)
	if !ok {
		return nil, false
	}
	paren, ok := p.expect(token.ParenOpen, diag.SynUnexpectedToken, "expected '(' after SIZEOF")
	if !ok {
		return nil, false
	}
	e := &ast.SizeofExpr{}
	if _, isValue := p.eat(token.Hash); isValue {
		if e.Value, ok = p.parseExprOrFail("after '#'"); !ok {
			return nil, false
		}
	} else if e.Type, ok = p.requireTypeName(true, "in SIZEOF"); !ok {
		return nil, false
	}
	closeTok, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, paren, "')' after SIZEOF operand")
	if !ok {
		return nil, false
	}
	e.Sp = kw.Span.Cover(closeTok.Span)
	return e, true
}

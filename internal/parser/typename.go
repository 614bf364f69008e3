package parser

import (
	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/token"
)

// ParseTypeName parses a base type (VOID, a symbol or a function signature)
// followed by indirection/qualifier modifiers. A symbol that broke after
// consuming input is fatal; only a clean miss falls through to the signature
// form.
func (p *Parser) ParseTypeName(allowTemplates bool) (*ast.TypeName, bool) {
	start := p.peek().Span
	t := &ast.TypeName{}
	switch {
	case p.at(token.KwVoid):
		p.advance()
		t.Value = ast.TypeVoid
	default:
		sym, ok := p.ParseSymbol(allowTemplates)
		if ok {
			t.Value = ast.TypeSymbol
			t.Name = sym
			break
		}
		if p.IsError() {
			return nil, false
		}
		if !p.at(token.ParenOpen) || p.peekAt(1).Kind != token.ParenOpen {
			return nil, false
		}
		sig, ok := p.parseSignature()
		if !ok {
			return nil, false
		}
		t.Value = ast.TypeFunction
		t.Function = sig
	}
	t.Modifiers = p.parseModifiers()
	t.Sp = start.Cover(p.lastSpan)
	return t, true
}

// requireTypeName: тип обязателен.
func (p *Parser) requireTypeName(allowTemplates bool, where string) (*ast.TypeName, bool) {
	t, ok := p.ParseTypeName(allowTemplates)
	if !ok && !p.IsError() {
		p.failHere(diag.SynExpectType, "expected type "+where+", got "+describe(p.peek()))
	}
	return t, ok
}

// parseSignature: "((" (VOID | T {, T}) ")" ":" T ")"
func (p *Parser) parseSignature() (*ast.FunctionSignature, bool) {
	outer := p.advance()
	inner := p.advance()
	sig := &ast.FunctionSignature{}
	if p.at(token.KwVoid) && p.peekAt(1).Kind == token.ParenClose {
		p.advance()
	} else {
		for {
			arg, ok := p.requireTypeName(true, "in function signature")
			if !ok {
				return nil, false
			}
			sig.Args = append(sig.Args, arg)
			if _, more := p.eat(token.Comma); !more {
				break
			}
		}
	}
	if _, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, inner, "')' after signature arguments"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' before signature result"); !ok {
		return nil, false
	}
	result, ok := p.requireTypeName(true, "as signature result")
	if !ok {
		return nil, false
	}
	sig.Result = result
	closeTok, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, outer, "')' after signature")
	if !ok {
		return nil, false
	}
	sig.Sp = outer.Span.Cover(closeTok.Span)
	return sig, true
}

// parseModifiers: пары (косвенность, квалификаторы). Пара без косвенности
// и без квалификаторов завершает цикл, даже если дальше идут '*' или CONST:
// "INT * CONST *" даёт две пары.
func (p *Parser) parseModifiers() []ast.TypeModifier {
	var mods []ast.TypeModifier
	for {
		var m ast.TypeModifier
		switch p.peek().Kind {
		case token.Asterisk:
			p.advance()
			m.Indirection = ast.IndirPointer
		case token.Backslash:
			p.advance()
			m.Indirection = ast.IndirNotNull
		}
	qualifiers:
		for {
			switch p.peek().Kind {
			case token.KwConst, token.Hash:
				m.Qualifier |= ast.QualConst
			case token.KwVolatile, token.Dollar:
				m.Qualifier |= ast.QualVolatile
			case token.KwDynamic:
				m.Qualifier |= ast.QualDynamic
			default:
				break qualifiers
			}
			p.advance()
		}
		if m.Indirection == ast.IndirPlain && m.Qualifier == 0 {
			return mods
		}
		mods = append(mods, m)
	}
}

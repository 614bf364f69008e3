package parser

import (
	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/token"
)

// parseClassEntry: Ident [VIRTUAL] ["->" Base {, Base}] "{" { Member } "}".
// Мягкий промах возможен только на первом взгляде вперёд; дальше всё фатально.
func (p *Parser) parseClassEntry(tpl *ast.TemplateDecl) (ast.ScopeEntry, bool) {
	if !p.at(token.Identifier) {
		return nil, false
	}
	switch p.peekAt(1).Kind {
	case token.BraceOpen, token.MinusGreater, token.KwVirtual:
	default:
		return nil, false
	}
	name := p.advance()
	sp := p.traceEntry(ast.EntryClass)
	defer sp.End(name.Text)

	cls := &ast.Class{Decl: ast.Decl{NameTok: name, Template: tpl}}
	if _, ok := p.eat(token.KwVirtual); ok {
		cls.Virtual = true
	}
	if _, ok := p.eat(token.MinusGreater); ok {
		for {
			base, ok := p.parseInheritance()
			if !ok {
				return nil, false
			}
			cls.Bases = append(cls.Bases, base)
			if _, more := p.eat(token.Comma); !more {
				break
			}
		}
	}
	members, ok := p.parseMemberBlock("class '" + name.Text + "'")
	if !ok {
		return nil, false
	}
	for _, m := range members {
		switch m.Kind {
		case ast.MemberConstructor:
			cls.Constructors = append(cls.Constructors, m)
		case ast.MemberDestructor:
			cls.Destructor = m
		default:
			cls.Members = append(cls.Members, m)
		}
	}
	cls.Sp = name.Span.Cover(p.lastSpan)
	return cls, true
}

// Base := [Visibility] [VIRTUAL] Symbol
func (p *Parser) parseInheritance() (ast.Inheritance, bool) {
	start := p.peek().Span
	var in ast.Inheritance
	if vis, ok := visibilityOf(p.peek().Kind); ok {
		p.advance()
		in.Visibility = vis
	}
	if _, ok := p.eat(token.KwVirtual); ok {
		in.Virtual = true
	}
	sym, ok := p.ParseSymbol(false)
	if !ok {
		if !p.IsError() {
			p.failHere(diag.SynExpectSymbol, "expected base class, got "+describe(p.peek()))
		}
		return in, false
	}
	in.Base = sym
	in.Sp = start.Cover(sym.Sp)
	return in, true
}

// UNION Ident "{" { Member } "}"
func (p *Parser) parseUnionEntry(tpl *ast.TemplateDecl) (ast.ScopeEntry, bool) {
	kw, ok := p.eat(token.KwUnion)
	if !ok {
		return nil, false
	}
	name, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected union name")
	if !ok {
		return nil, false
	}
	sp := p.traceEntry(ast.EntryUnion)
	defer sp.End(name.Text)

	u := &ast.Union{Decl: ast.Decl{NameTok: name, Template: tpl}}
	if u.Members, ok = p.parseMemberBlock("union '" + name.Text + "'"); !ok {
		return nil, false
	}
	u.Sp = kw.Span.Cover(p.lastSpan)
	return u, true
}

// TYPE Ident "(" Expr ")" ( ";" | "{" { Member } "}" )
func (p *Parser) parseRawtypeEntry(tpl *ast.TemplateDecl) (ast.ScopeEntry, bool) {
	if !p.at(token.KwType) || p.peekAt(1).Kind != token.Identifier || p.peekAt(2).Kind != token.ParenOpen {
		return nil, false
	}
	kw := p.advance()
	name := p.advance()
	sp := p.traceEntry(ast.EntryRawtype)
	defer sp.End(name.Text)

	open := p.advance()
	rt := &ast.Rawtype{Decl: ast.Decl{NameTok: name, Template: tpl}}
	var ok bool
	if rt.Size, ok = p.parseExprOrFail("as rawtype size"); !ok {
		return nil, false
	}
	if _, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, open, "')' after rawtype size"); !ok {
		return nil, false
	}
	if _, ok := p.eat(token.Semicolon); !ok {
		if rt.Members, ok = p.parseMemberBlock("rawtype '" + name.Text + "'"); !ok {
			return nil, false
		}
	}
	rt.Sp = kw.Span.Cover(p.lastSpan)
	return rt, true
}

// parseMemberBlock: "{" { Member } "}" с секциями видимости "PUBLIC:".
func (p *Parser) parseMemberBlock(owner string) ([]*ast.Member, bool) {
	open, ok := p.expect(token.BraceOpen, diag.SynUnexpectedToken, "expected '{' to open "+owner)
	if !ok {
		return nil, false
	}
	var (
		members []*ast.Member
		vis     = ast.VisPublic
		dtor    *ast.Member
	)
	for !p.at(token.BraceClose) {
		if p.at(token.EOF) {
			p.fail(diag.SynUnclosedBrace, open.Span, "unclosed "+owner)
			return nil, false
		}
		if v, ok := visibilityOf(p.peek().Kind); ok && p.peekAt(1).Kind == token.Colon {
			vis = v
			p.advance()
			p.advance()
			continue
		}
		m, ok := p.parseMember(vis)
		if !ok {
			if !p.IsError() {
				p.failHere(diag.SynExpectMember, "expected member of "+owner+", got "+describe(p.peek()))
			}
			return nil, false
		}
		if m.Kind == ast.MemberDestructor {
			if dtor != nil {
				p.fail(diag.SynDuplicateDestructor, m.Sp, owner+" already has a destructor")
				return nil, false
			}
			dtor = m
		}
		members = append(members, m)
	}
	p.advance()
	return members, true
}

func visibilityOf(k token.Kind) (ast.Visibility, bool) {
	switch k {
	case token.KwPublic:
		return ast.VisPublic, true
	case token.KwProtected:
		return ast.VisProtected, true
	case token.KwPrivate:
		return ast.VisPrivate, true
	}
	return ast.VisPublic, false
}

package parser

import (
	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/token"
)

// ParseSymbol parses "[::] Segment { :: Segment }". With allowTemplates
// false a '{' ends the symbol instead of opening template arguments.
// No segment and no root marker is a soft miss; anything after a consumed
// "::" is required.
func (p *Parser) ParseSymbol(allowTemplates bool) (*ast.Symbol, bool) {
	sym := &ast.Symbol{}
	start := p.peek().Span
	if _, ok := p.eat(token.DoubleColon); ok {
		sym.Root = true
	} else if !isSegmentStart(p.peek().Kind) {
		return nil, false
	}
	for {
		if !isSegmentStart(p.peek().Kind) {
			p.failHere(diag.SynExpectSymbol, "expected symbol segment after '::', got "+describe(p.peek()))
			return nil, false
		}
		seg, ok := p.parseSegment(allowTemplates)
		if !ok {
			return nil, false
		}
		sym.Segments = append(sym.Segments, seg)
		if !p.at(token.DoubleColon) {
			break
		}
		p.advance()
	}
	sym.Sp = start.Cover(p.lastSpan)
	return sym, true
}

func isSegmentStart(k token.Kind) bool {
	return k == token.Identifier || k == token.KwConstructor || k == token.KwDestructor
}

func (p *Parser) parseSegment(allowTemplates bool) (ast.SymbolSegment, bool) {
	tok := p.advance()
	seg := ast.SymbolSegment{Name: tok, Sp: tok.Span}
	switch tok.Kind {
	case token.KwConstructor:
		seg.Kind = ast.SegConstructor
	case token.KwDestructor:
		seg.Kind = ast.SegDestructor
	}
	if !allowTemplates || !p.at(token.BraceOpen) {
		return seg, true
	}
	if seg.Kind == ast.SegDestructor {
		p.failHere(diag.SynDestructorTemplate, "destructor references cannot have template arguments")
		return seg, false
	}
	args, closeTok, ok := p.parseTemplateArgs()
	if !ok {
		return seg, false
	}
	seg.Templates = args
	seg.Sp = seg.Sp.Cover(closeTok.Span)
	return seg, true
}

// parseTemplateArgs: "{" TArg { "," TArg } "}", TArg := "#" Expr | TypeName
func (p *Parser) parseTemplateArgs() ([]ast.TemplateArg, token.Token, bool) {
	open := p.advance()
	var args []ast.TemplateArg
	for {
		var arg ast.TemplateArg
		var ok bool
		if _, isValue := p.eat(token.Hash); isValue {
			arg.Value, ok = p.parseExprOrFail("after '#' in template arguments")
		} else {
			arg.Type, ok = p.requireTypeName(true, "in template arguments")
		}
		if !ok {
			return nil, token.Token{}, false
		}
		args = append(args, arg)
		if _, more := p.eat(token.Comma); !more {
			break
		}
	}
	closeTok, ok := p.expectClose(token.BraceClose, diag.SynUnclosedBrace, open, "'}' after template arguments")
	if !ok {
		return nil, token.Token{}, false
	}
	return args, closeTok, true
}

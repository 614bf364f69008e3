package parser

import (
	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/token"
)

// memberEntryTrials: объявления, допустимые внутри класса. Заполняется в
// init, т.к. parseClassEntry рекурсивно разбирает члены.
var memberEntryTrials [7]entryTrial

func init() {
	memberEntryTrials = [...]entryTrial{
		(*Parser).parseGlobalVariable,
		(*Parser).parseFunctionEntry,
		(*Parser).parseClassEntry,
		(*Parser).parseUnionEntry,
		(*Parser).parseRawtypeEntry,
		(*Parser).parseTypedefEntry,
		(*Parser).parseEnumEntry,
	}
}

// parseMember сначала читает общие модификаторы (видимость, STATIC, шаблон,
// атрибут), затем выбирает вид члена по ведущему токену.
func (p *Parser) parseMember(vis ast.Visibility) (*ast.Member, bool) {
	start := p.peek().Span
	m := &ast.Member{Visibility: vis}
	if v, ok := visibilityOf(p.peek().Kind); ok {
		p.advance()
		m.Visibility = v
	}
	staticTok, isStatic := p.eat(token.KwStatic)
	m.Static = isStatic
	tpl, ok := p.parseTemplateDecl()
	if !ok {
		return nil, false
	}
	attrTok := p.peek()
	m.Attribute = attributeOf(attrTok.Kind)
	if m.Attribute != ast.AttrNone {
		p.advance()
	}

	switch {
	case p.at(token.KwConstructor), p.at(token.KwDestructor):
		if isStatic {
			p.fail(diag.SynModifierNotAllowed, staticTok.Span, "constructors and destructors cannot be STATIC")
			return nil, false
		}
		if m.Attribute != ast.AttrNone {
			p.fail(diag.SynModifierNotAllowed, attrTok.Span, m.Attribute.String()+" is only allowed on member functions")
			return nil, false
		}
		if p.at(token.KwConstructor) {
			m.Kind = ast.MemberConstructor
			m.Constructor, ok = p.parseConstructor(tpl)
		} else {
			m.Kind = ast.MemberDestructor
			m.Destructor, ok = p.parseDestructor(tpl)
		}
		if !ok {
			return nil, false
		}
	case m.Attribute != ast.AttrNone:
		fn, ok := p.parseFunction(tpl)
		if !ok {
			if !p.IsError() {
				p.fail(diag.SynModifierNotAllowed, attrTok.Span, m.Attribute.String()+" is only allowed on member functions")
			}
			return nil, false
		}
		if m.Attribute == ast.AttrAbstract && fn.HasBody() {
			p.fail(diag.SynAbstractWithBody, fn.NameTok.Span, "ABSTRACT function '"+fn.NameTok.Text+"' cannot have a body")
			return nil, false
		}
		m.Entry = fn
	default:
		for _, trial := range memberEntryTrials {
			pos := p.pos
			if e, ok := trial(p, tpl); ok {
				m.Entry = e
				break
			}
			if p.IsError() {
				return nil, false
			}
			p.reset(pos)
		}
		if m.Entry == nil {
			if tpl != nil || isStatic {
				p.failHere(diag.SynExpectMember, "expected member declaration, got "+describe(p.peek()))
			}
			return nil, false
		}
	}
	m.Sp = start.Cover(p.lastSpan)
	return m, true
}

func attributeOf(k token.Kind) ast.Attribute {
	switch k {
	case token.KwAbstract:
		return ast.AttrAbstract
	case token.KwVirtual:
		return ast.AttrVirtual
	case token.KwOverride:
		return ast.AttrOverride
	case token.KwFinal:
		return ast.AttrFinal
	}
	return ast.AttrNone
}

// CONSTRUCTOR "(" Args ")" [":" Init {, Init}] ( Block | ";" )
func (p *Parser) parseConstructor(tpl *ast.TemplateDecl) (*ast.Constructor, bool) {
	kw := p.advance()
	ctor := &ast.Constructor{Keyword: kw, Template: tpl}
	var ok bool
	if ctor.Args, ok = p.parseArguments(); !ok {
		return nil, false
	}
	if _, hasInits := p.eat(token.Colon); hasInits {
		for {
			init, ok := p.parseInitializer()
			if !ok {
				return nil, false
			}
			ctor.Inits = append(ctor.Inits, init)
			if _, more := p.eat(token.Comma); !more {
				break
			}
		}
	}
	if _, decl := p.eat(token.Semicolon); !decl {
		if !p.at(token.BraceOpen) {
			p.failHere(diag.SynUnexpectedToken, "expected constructor body or ';', got "+describe(p.peek()))
			return nil, false
		}
		if ctor.Body, ok = p.parseBlock(); !ok {
			return nil, false
		}
	}
	ctor.Sp = kw.Span.Cover(p.lastSpan)
	return ctor, true
}

// Init := Ident "(" [ExprList] ")"
func (p *Parser) parseInitializer() (ast.Initializer, bool) {
	name, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected member name in initialiser list")
	if !ok {
		return ast.Initializer{}, false
	}
	open, ok := p.expect(token.ParenOpen, diag.SynUnexpectedToken, "expected '(' after initialised member")
	if !ok {
		return ast.Initializer{}, false
	}
	args, ok := p.parseExprList(token.ParenClose)
	if !ok {
		return ast.Initializer{}, false
	}
	closeTok, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, open, "')' after initialiser arguments")
	if !ok {
		return ast.Initializer{}, false
	}
	return ast.Initializer{Name: name, Args: args, Sp: name.Span.Cover(closeTok.Span)}, true
}

// DESTRUCTOR Block
func (p *Parser) parseDestructor(tpl *ast.TemplateDecl) (*ast.Destructor, bool) {
	kw := p.advance()
	if tpl != nil {
		p.fail(diag.SynDestructorTemplate, tpl.Sp, "destructors cannot have template parameters")
		return nil, false
	}
	if !p.at(token.BraceOpen) {
		p.failHere(diag.SynUnexpectedToken, "expected destructor body, got "+describe(p.peek()))
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.Destructor{Keyword: kw, Body: body, Sp: kw.Span.Cover(body.Sp)}, true
}

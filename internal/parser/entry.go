package parser

import (
	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/token"
	"rlc/internal/trace"
)

type entryTrial func(p *Parser, tpl *ast.TemplateDecl) (ast.ScopeEntry, bool)

// порядок проб на уровне файла и пространства имён
var scopeEntryTrials [9]entryTrial

func init() {
	scopeEntryTrials = [...]entryTrial{
		(*Parser).parseGlobalVariable,
		(*Parser).parseFunctionEntry,
		(*Parser).parseClassEntry,
		(*Parser).parseUnionEntry,
		(*Parser).parseRawtypeEntry,
		(*Parser).parseTypedefEntry,
		(*Parser).parseNamespaceEntry,
		(*Parser).parseEnumEntry,
		(*Parser).parseExternalEntry,
	}
}

// parseScopeEntry: [TemplateDecl] и первое подошедшее объявление.
func (p *Parser) parseScopeEntry() (ast.ScopeEntry, bool) {
	tpl, ok := p.parseTemplateDecl()
	if !ok {
		return nil, false
	}
	for _, trial := range scopeEntryTrials {
		start := p.pos
		if e, ok := trial(p, tpl); ok {
			return e, true
		}
		if p.IsError() {
			return nil, false
		}
		p.reset(start)
	}
	if tpl != nil {
		p.failHere(diag.SynExpectScopeEntry, "expected declaration after template parameters, got "+describe(p.peek()))
	}
	return nil, false
}

// traceEntry открывает span уровня узла для объявления.
func (p *Parser) traceEntry(kind ast.EntryKind) *trace.Span {
	return trace.Begin(p.opts.Tracer, trace.ScopeNode, kind.String(), 0)
}

func (p *Parser) expectSemicolon(after string) bool {
	_, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after "+after)
	return ok
}

// isVariableStart: "name:" или "name ::=".
func (p *Parser) isVariableStart() bool {
	if !p.at(token.Identifier) {
		return false
	}
	next := p.peekAt(1).Kind
	return next == token.Colon || next == token.DoubleColonEqual
}

// parseVariable: Ident ":" TypeName [":=" Expr | "(" [ExprList] ")"] | Ident "::=" Expr
func (p *Parser) parseVariable() (*ast.Variable, bool) {
	if !p.isVariableStart() {
		return nil, false
	}
	name := p.advance()
	v := &ast.Variable{Name: name}
	var ok bool
	if _, inferred := p.eat(token.DoubleColonEqual); inferred {
		if v.Init, ok = p.parseExprOrFail("after '::='"); !ok {
			return nil, false
		}
		v.Sp = name.Span.Cover(p.lastSpan)
		return v, true
	}
	p.advance() // ':'
	if v.Type, ok = p.requireTypeName(true, "for variable '"+name.Text+"'"); !ok {
		return nil, false
	}
	switch {
	case p.at(token.ColonEqual):
		p.advance()
		if v.Init, ok = p.parseExprOrFail("after ':='"); !ok {
			return nil, false
		}
	case p.at(token.ParenOpen):
		open := p.advance()
		if v.Args, ok = p.parseExprList(token.ParenClose); !ok {
			return nil, false
		}
		if _, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, open, "')' after constructor arguments"); !ok {
			return nil, false
		}
		v.HasArgs = true
	}
	v.Sp = name.Span.Cover(p.lastSpan)
	return v, true
}

func (p *Parser) parseGlobalVariable(tpl *ast.TemplateDecl) (ast.ScopeEntry, bool) {
	if !p.isVariableStart() {
		return nil, false
	}
	if !p.rejectTemplate(tpl, "variables") {
		return nil, false
	}
	v, ok := p.parseVariable()
	if !ok || !p.expectSemicolon("variable declaration") {
		return nil, false
	}
	return &ast.GlobalVariable{Decl: ast.Decl{NameTok: v.Name, Sp: v.Sp.Cover(p.lastSpan)}, Var: v}, true
}

func (p *Parser) parseFunctionEntry(tpl *ast.TemplateDecl) (ast.ScopeEntry, bool) {
	fn, ok := p.parseFunction(tpl)
	if !ok {
		return nil, false
	}
	return fn, true
}

// parseFunction: [INLINE] Ident "(" Args ")" [TypeName] ( Block | ";" | ":=" Expr ";" )
func (p *Parser) parseFunction(tpl *ast.TemplateDecl) (*ast.Function, bool) {
	start := p.peek().Span
	fn := &ast.Function{}
	if _, ok := p.eat(token.KwInline); ok {
		fn.Inline = true
		if !p.at(token.Identifier) {
			p.failHere(diag.SynExpectIdentifier, "expected function name after INLINE, got "+describe(p.peek()))
			return nil, false
		}
	} else if !p.at(token.Identifier) || p.peekAt(1).Kind != token.ParenOpen {
		return nil, false
	}
	sp := p.traceEntry(ast.EntryFunction)
	defer sp.End(p.peek().Text)

	fn.NameTok = p.advance()
	fn.Template = tpl
	var ok bool
	if fn.Args, ok = p.parseArguments(); !ok {
		return nil, false
	}
	if !p.atAny(token.BraceOpen, token.Semicolon, token.ColonEqual) {
		if fn.Result, ok = p.requireTypeName(false, "as result of '"+fn.NameTok.Text+"'"); !ok {
			return nil, false
		}
	}
	switch {
	case p.at(token.BraceOpen):
		if fn.Body, ok = p.parseBlock(); !ok {
			return nil, false
		}
	case p.at(token.ColonEqual):
		p.advance()
		if fn.Short, ok = p.parseExprOrFail("as function body"); !ok {
			return nil, false
		}
		if !p.expectSemicolon("function expression") {
			return nil, false
		}
	default:
		if !p.expectSemicolon("function declaration") {
			return nil, false
		}
	}
	fn.Sp = start.Cover(p.lastSpan)
	return fn, true
}

// parseArguments: "(" (ε | VOID | Arg {, Arg}) ")"
func (p *Parser) parseArguments() ([]*ast.Argument, bool) {
	open, ok := p.expect(token.ParenOpen, diag.SynUnexpectedToken, "expected '(' before arguments")
	if !ok {
		return nil, false
	}
	var args []*ast.Argument
	switch {
	case p.at(token.ParenClose):
	case p.at(token.KwVoid) && p.peekAt(1).Kind == token.ParenClose:
		p.advance()
	default:
		for {
			arg, ok := p.parseArgument()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if _, more := p.eat(token.Comma); !more {
				break
			}
		}
	}
	if _, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, open, "')' after arguments"); !ok {
		return nil, false
	}
	return args, true
}

// Arg := Ident ":" TypeName [":=" Expr]
func (p *Parser) parseArgument() (*ast.Argument, bool) {
	name, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected argument name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after argument name"); !ok {
		return nil, false
	}
	arg := &ast.Argument{Name: name}
	if arg.Type, ok = p.requireTypeName(true, "for argument '"+name.Text+"'"); !ok {
		return nil, false
	}
	if _, hasDefault := p.eat(token.ColonEqual); hasDefault {
		if arg.Default, ok = p.parseExprOrFail("as default argument"); !ok {
			return nil, false
		}
	}
	arg.Sp = name.Span.Cover(p.lastSpan)
	return arg, true
}

// TYPE Ident ":=" TypeName ";"
func (p *Parser) parseTypedefEntry(tpl *ast.TemplateDecl) (ast.ScopeEntry, bool) {
	kw, ok := p.eat(token.KwType)
	if !ok {
		return nil, false
	}
	sp := p.traceEntry(ast.EntryTypedef)
	defer sp.End("")

	name, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected type name after TYPE")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.ColonEqual, diag.SynUnexpectedToken, "expected ':=' or '(' after TYPE "+name.Text); !ok {
		return nil, false
	}
	td := &ast.Typedef{Decl: ast.Decl{NameTok: name, Template: tpl}}
	if td.Type, ok = p.requireTypeName(true, "in typedef"); !ok {
		return nil, false
	}
	if !p.expectSemicolon("typedef") {
		return nil, false
	}
	td.Sp = kw.Span.Cover(p.lastSpan)
	return td, true
}

// "::" Ident "{" { ScopeEntry } "}"
func (p *Parser) parseNamespaceEntry(tpl *ast.TemplateDecl) (ast.ScopeEntry, bool) {
	kw, ok := p.eat(token.DoubleColon)
	if !ok {
		return nil, false
	}
	if !p.rejectTemplate(tpl, "namespaces") {
		return nil, false
	}
	name, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected namespace name after '::'")
	if !ok {
		return nil, false
	}
	sp := p.traceEntry(ast.EntryNamespace)
	defer sp.End(name.Text)

	open, ok := p.expect(token.BraceOpen, diag.SynUnexpectedToken, "expected '{' after namespace name")
	if !ok {
		return nil, false
	}
	ns := &ast.Namespace{Decl: ast.Decl{NameTok: name}}
	for !p.at(token.BraceClose) {
		if p.at(token.EOF) {
			p.fail(diag.SynUnclosedBrace, open.Span, "unclosed namespace '"+name.Text+"'")
			return nil, false
		}
		entry, ok := p.parseScopeEntry()
		if !ok {
			if !p.IsError() {
				p.failHere(diag.SynExpectScopeEntry, "expected declaration in namespace, got "+describe(p.peek()))
			}
			return nil, false
		}
		ns.Entries = append(ns.Entries, entry)
	}
	p.advance()
	ns.Sp = kw.Span.Cover(p.lastSpan)
	return ns, true
}

// ENUM Ident "{" Constant {, Constant} [,] "}", Constant := Ident {":=" Ident}
func (p *Parser) parseEnumEntry(tpl *ast.TemplateDecl) (ast.ScopeEntry, bool) {
	kw, ok := p.eat(token.KwEnum)
	if !ok {
		return nil, false
	}
	if !p.rejectTemplate(tpl, "enums") {
		return nil, false
	}
	name, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected enum name")
	if !ok {
		return nil, false
	}
	sp := p.traceEntry(ast.EntryEnum)
	defer sp.End(name.Text)

	open, ok := p.expect(token.BraceOpen, diag.SynUnexpectedToken, "expected '{' after enum name")
	if !ok {
		return nil, false
	}
	en := &ast.Enum{Decl: ast.Decl{NameTok: name}}
	for {
		first, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected enum constant")
		if !ok {
			return nil, false
		}
		c := ast.EnumConstant{Names: []token.Token{first}}
		for p.at(token.ColonEqual) {
			p.advance()
			alias, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected alias name after ':='")
			if !ok {
				return nil, false
			}
			c.Names = append(c.Names, alias)
		}
		c.Sp = first.Span.Cover(p.lastSpan)
		en.Constants = append(en.Constants, c)
		if _, more := p.eat(token.Comma); !more || p.at(token.BraceClose) {
			break
		}
	}
	if _, ok := p.expectClose(token.BraceClose, diag.SynUnclosedBrace, open, "'}' after enum constants"); !ok {
		return nil, false
	}
	en.Sp = kw.Span.Cover(p.lastSpan)
	return en, true
}

// EXTERN ( Ident ":" TypeName | Ident "(" Args ")" [TypeName] ) ";"
func (p *Parser) parseExternalEntry(tpl *ast.TemplateDecl) (ast.ScopeEntry, bool) {
	kw, ok := p.eat(token.KwExtern)
	if !ok {
		return nil, false
	}
	if !p.rejectTemplate(tpl, "external symbols") {
		return nil, false
	}
	name, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected name after EXTERN")
	if !ok {
		return nil, false
	}
	ext := &ast.ExternalSymbol{Decl: ast.Decl{NameTok: name}}
	switch {
	case p.at(token.Colon):
		p.advance()
		if ext.Type, ok = p.requireTypeName(true, "for external variable"); !ok {
			return nil, false
		}
	case p.at(token.ParenOpen):
		ext.Function = true
		if ext.Args, ok = p.parseArguments(); !ok {
			return nil, false
		}
		if !p.at(token.Semicolon) {
			if ext.Type, ok = p.requireTypeName(false, "as external function result"); !ok {
				return nil, false
			}
		}
	default:
		p.failHere(diag.SynUnexpectedToken, "expected ':' or '(' after EXTERN "+name.Text+", got "+describe(p.peek()))
		return nil, false
	}
	if !p.expectSemicolon("external symbol") {
		return nil, false
	}
	ext.Sp = kw.Span.Cover(p.lastSpan)
	return ext, true
}

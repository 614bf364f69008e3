package parser

import (
	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/token"
)

// ParseStatement parses one statement. A token that cannot start a
// statement is a soft miss.
func (p *Parser) ParseStatement() (ast.Stmt, bool) {
	switch p.peek().Kind {
	case token.BraceOpen:
		b, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return b, true
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwReturn:
		kw := p.advance()
		s := &ast.ReturnStmt{}
		if !p.at(token.Semicolon) {
			var ok bool
			if s.Value, ok = p.parseExprOrFail("after RETURN"); !ok {
				return nil, false
			}
		}
		if !p.expectSemicolon("RETURN") {
			return nil, false
		}
		s.Sp = kw.Span.Cover(p.lastSpan)
		return s, true
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwBreak:
		kw := p.advance()
		if !p.expectSemicolon("BREAK") {
			return nil, false
		}
		return &ast.BreakStmt{Sp: kw.Span.Cover(p.lastSpan)}, true
	case token.KwContinue:
		kw := p.advance()
		if !p.expectSemicolon("CONTINUE") {
			return nil, false
		}
		return &ast.ContinueStmt{Sp: kw.Span.Cover(p.lastSpan)}, true
	case token.KwTry:
		return p.parseTry()
	case token.KwThrow:
		kw := p.advance()
		s := &ast.ThrowStmt{}
		if !p.at(token.Semicolon) {
			var ok bool
			if s.Value, ok = p.parseExprOrFail("after THROW"); !ok {
				return nil, false
			}
		}
		if !p.expectSemicolon("THROW") {
			return nil, false
		}
		s.Sp = kw.Span.Cover(p.lastSpan)
		return s, true
	}

	if p.isVariableStart() {
		v, ok := p.parseVariable()
		if !ok || !p.expectSemicolon("variable declaration") {
			return nil, false
		}
		return &ast.VariableStmt{Var: v, Sp: v.Sp.Cover(p.lastSpan)}, true
	}
	e, ok := p.ParseExpression(ast.ExprAll)
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon("expression") {
		return nil, false
	}
	return &ast.ExprStmt{X: e, Sp: e.Span().Cover(p.lastSpan)}, true
}

// requireStatement: тело конструкции обязательно.
func (p *Parser) requireStatement(where string) (ast.Stmt, bool) {
	s, ok := p.ParseStatement()
	if !ok && !p.IsError() {
		p.failHere(diag.SynExpectStatement, "expected statement "+where+", got "+describe(p.peek()))
	}
	return s, ok
}

func (p *Parser) parseBlock() (*ast.BlockStmt, bool) {
	open := p.advance()
	b := &ast.BlockStmt{}
	for !p.at(token.BraceClose) {
		if p.at(token.EOF) {
			p.fail(diag.SynUnclosedBrace, open.Span, "unclosed block: expected '}'")
			return nil, false
		}
		s, ok := p.requireStatement("in block")
		if !ok {
			return nil, false
		}
		b.Stmts = append(b.Stmts, s)
	}
	p.advance()
	b.Sp = open.Span.Cover(p.lastSpan)
	return b, true
}

// parseCondition: "(" (Variable | Expr) ")"
func (p *Parser) parseCondition(kw token.Token) (*ast.Condition, bool) {
	open, ok := p.expect(token.ParenOpen, diag.SynUnexpectedToken, "expected '(' after "+kw.Text)
	if !ok {
		return nil, false
	}
	c, ok := p.parseConditionBody(kw)
	if !ok {
		return nil, false
	}
	if _, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, open, "')' after condition"); !ok {
		return nil, false
	}
	return c, true
}

func (p *Parser) parseConditionBody(kw token.Token) (*ast.Condition, bool) {
	if p.isVariableStart() {
		v, ok := p.parseVariable()
		if !ok {
			return nil, false
		}
		return &ast.Condition{Var: v}, true
	}
	e, ok := p.parseExprOrFail("in " + kw.Text + " condition")
	if !ok {
		return nil, false
	}
	return &ast.Condition{Expr: e}, true
}

func (p *Parser) parseIf() (ast.Stmt, bool) {
	kw := p.advance()
	s := &ast.IfStmt{}
	var ok bool
	if s.Cond, ok = p.parseCondition(kw); !ok {
		return nil, false
	}
	if s.Then, ok = p.requireStatement("after IF"); !ok {
		return nil, false
	}
	if _, hasElse := p.eat(token.KwElse); hasElse {
		if s.Else, ok = p.requireStatement("after ELSE"); !ok {
			return nil, false
		}
	}
	s.Sp = kw.Span.Cover(p.lastSpan)
	return s, true
}

func (p *Parser) parseWhile() (ast.Stmt, bool) {
	kw := p.advance()
	s := &ast.LoopStmt{Loop: ast.LoopWhile}
	var ok bool
	if s.Cond, ok = p.parseCondition(kw); !ok {
		return nil, false
	}
	if s.Body, ok = p.requireStatement("after WHILE"); !ok {
		return nil, false
	}
	s.Sp = kw.Span.Cover(p.lastSpan)
	return s, true
}

// DO Stmt WHILE "(" Expr ")" ";"
func (p *Parser) parseDoWhile() (ast.Stmt, bool) {
	kw := p.advance()
	s := &ast.LoopStmt{Loop: ast.LoopDoWhile}
	var ok bool
	if s.Body, ok = p.requireStatement("after DO"); !ok {
		return nil, false
	}
	while, ok := p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected WHILE after DO body")
	if !ok {
		return nil, false
	}
	open, ok := p.expect(token.ParenOpen, diag.SynUnexpectedToken, "expected '(' after WHILE")
	if !ok {
		return nil, false
	}
	e, ok := p.parseExprOrFail("in " + while.Text + " condition")
	if !ok {
		return nil, false
	}
	s.Cond = &ast.Condition{Expr: e}
	if _, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, open, "')' after condition"); !ok {
		return nil, false
	}
	if !p.expectSemicolon("DO-WHILE") {
		return nil, false
	}
	s.Sp = kw.Span.Cover(p.lastSpan)
	return s, true
}

// FOR "(" [Variable | Expr] ";" [Expr] ";" [Expr] ")" Stmt
func (p *Parser) parseFor() (ast.Stmt, bool) {
	kw := p.advance()
	s := &ast.LoopStmt{Loop: ast.LoopFor}
	open, ok := p.expect(token.ParenOpen, diag.SynUnexpectedToken, "expected '(' after FOR")
	if !ok {
		return nil, false
	}
	if !p.at(token.Semicolon) {
		if s.Init, ok = p.parseConditionBody(kw); !ok {
			return nil, false
		}
	}
	if !p.expectSemicolon("FOR initialiser") {
		return nil, false
	}
	if !p.at(token.Semicolon) {
		e, ok := p.parseExprOrFail("in FOR condition")
		if !ok {
			return nil, false
		}
		s.Cond = &ast.Condition{Expr: e}
	}
	if !p.expectSemicolon("FOR condition") {
		return nil, false
	}
	if !p.at(token.ParenClose) {
		if s.Step, ok = p.parseExprOrFail("in FOR step"); !ok {
			return nil, false
		}
	}
	if _, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, open, "')' after FOR header"); !ok {
		return nil, false
	}
	if s.Body, ok = p.requireStatement("after FOR"); !ok {
		return nil, false
	}
	s.Sp = kw.Span.Cover(p.lastSpan)
	return s, true
}

// SWITCH "(" Expr ")" "{" { (CASE Expr {, Expr} | DEFAULT) ":" { Stmt } } "}"
func (p *Parser) parseSwitch() (ast.Stmt, bool) {
	kw := p.advance()
	s := &ast.SwitchStmt{}
	paren, ok := p.expect(token.ParenOpen, diag.SynUnexpectedToken, "expected '(' after SWITCH")
	if !ok {
		return nil, false
	}
	if s.Value, ok = p.parseExprOrFail("in SWITCH"); !ok {
		return nil, false
	}
	if _, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, paren, "')' after SWITCH value"); !ok {
		return nil, false
	}
	open, ok := p.expect(token.BraceOpen, diag.SynUnexpectedToken, "expected '{' after SWITCH")
	if !ok {
		return nil, false
	}
	hasDefault := false
	for !p.at(token.BraceClose) {
		label := p.peek()
		c := &ast.CaseStmt{}
		switch label.Kind {
		case token.KwCase:
			p.advance()
			for {
				v, ok := p.parseExprOrFail("after CASE")
				if !ok {
					return nil, false
				}
				c.Values = append(c.Values, v)
				if _, more := p.eat(token.Comma); !more {
					break
				}
			}
		case token.KwDefault:
			if hasDefault {
				p.fail(diag.SynDuplicateDefault, label.Span, "SWITCH already has a DEFAULT case")
				return nil, false
			}
			hasDefault = true
			c.Default = true
			p.advance()
		case token.EOF:
			p.fail(diag.SynUnclosedBrace, open.Span, "unclosed SWITCH body")
			return nil, false
		default:
			p.failHere(diag.SynUnexpectedToken, "expected CASE or DEFAULT, got "+describe(label))
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after case label"); !ok {
			return nil, false
		}
		for !p.atAny(token.KwCase, token.KwDefault, token.BraceClose, token.EOF) {
			st, ok := p.requireStatement("in case")
			if !ok {
				return nil, false
			}
			c.Body = append(c.Body, st)
		}
		c.Sp = label.Span.Cover(p.lastSpan)
		s.Cases = append(s.Cases, c)
	}
	p.advance()
	s.Sp = kw.Span.Cover(p.lastSpan)
	return s, true
}

// TRY Stmt { CATCH "(" (VOID | Ident ":" TypeName) ")" Stmt } [FINALLY Stmt]
func (p *Parser) parseTry() (ast.Stmt, bool) {
	kw := p.advance()
	s := &ast.TryStmt{}
	var ok bool
	if s.Body, ok = p.requireStatement("after TRY"); !ok {
		return nil, false
	}
	for p.at(token.KwCatch) {
		c, ok := p.parseCatch()
		if !ok {
			return nil, false
		}
		s.Catches = append(s.Catches, c)
	}
	if _, hasFinally := p.eat(token.KwFinally); hasFinally {
		if s.Finally, ok = p.requireStatement("after FINALLY"); !ok {
			return nil, false
		}
	}
	if len(s.Catches) == 0 && s.Finally == nil {
		p.fail(diag.SynTryWithoutHandler, kw.Span, "TRY needs at least one CATCH or a FINALLY")
		return nil, false
	}
	s.Sp = kw.Span.Cover(p.lastSpan)
	return s, true
}

func (p *Parser) parseCatch() (*ast.CatchClause, bool) {
	kw := p.advance()
	open, ok := p.expect(token.ParenOpen, diag.SynUnexpectedToken, "expected '(' after CATCH")
	if !ok {
		return nil, false
	}
	c := &ast.CatchClause{}
	if _, ok := p.eat(token.KwVoid); ok {
		c.Void = true
	} else {
		if c.Name, ok = p.expect(token.Identifier, diag.SynExpectIdentifier, "expected VOID or exception name in CATCH"); !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after exception name"); !ok {
			return nil, false
		}
		if c.Type, ok = p.requireTypeName(true, "for exception"); !ok {
			return nil, false
		}
	}
	if _, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, open, "')' after CATCH clause"); !ok {
		return nil, false
	}
	if c.Body, ok = p.requireStatement("after CATCH"); !ok {
		return nil, false
	}
	c.Sp = kw.Span.Cover(p.lastSpan)
	return c, true
}

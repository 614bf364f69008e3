package parser

import (
	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/token"
)

type exprTrial struct {
	kind  ast.ExprKind
	parse func(*Parser) (ast.Expr, bool)
}

// exprTrials задаёт порядок проб. Операторное выражение первым, оно само
// собирает остальные виды через подъём по приоритетам. Таблица заполняется
// в init: методы рекурсивно возвращаются в ParseExpression.
var exprTrials [8]exprTrial

func init() {
	exprTrials = [...]exprTrial{
		{ast.ExprOperator, (*Parser).parseOperatorExpr},
		{ast.ExprNumber, (*Parser).parseNumberExpr},
		{ast.ExprString, (*Parser).parseStringExpr},
		{ast.ExprSymbol, (*Parser).parseSymbolExpr},
		{ast.ExprSymbolChild, (*Parser).parseImplicitChild},
		{ast.ExprThis, (*Parser).parseThisExpr},
		{ast.ExprCast, (*Parser).parseCastExpr},
		{ast.ExprSizeof, (*Parser).parseSizeofExpr},
	}
}

// ParseExpression tries each permitted expression kind in order and returns
// the first match. A trial that matched its opening and then broke stops the
// search; a parenthesised expression is accepted as a last resort.
func (p *Parser) ParseExpression(kinds ast.ExprKinds) (ast.Expr, bool) {
	for _, trial := range exprTrials {
		if !kinds.Has(trial.kind) {
			continue
		}
		start := p.pos
		if e, ok := trial.parse(p); ok {
			return e, true
		}
		if p.IsError() {
			return nil, false
		}
		p.reset(start)
	}
	return p.parseParenExpr()
}

// parseExprOrFail: выражение обязательно, мягкий промах превращается в ошибку.
func (p *Parser) parseExprOrFail(what string) (ast.Expr, bool) {
	e, ok := p.ParseExpression(ast.ExprAll)
	if !ok && !p.IsError() {
		p.failHere(diag.SynExpectExpression, "expected expression "+what+", got "+describe(p.peek()))
	}
	return e, ok
}

func (p *Parser) parseParenExpr() (ast.Expr, bool) {
	if !p.at(token.ParenOpen) {
		return nil, false
	}
	open := p.advance()
	e, ok := p.parseExprOrFail("after '('")
	if !ok {
		return nil, false
	}
	if !p.at(token.ParenClose) {
		p.fail(diag.SynUnclosedParen, open.Span, "unclosed '(': expected ')', got "+describe(p.peek()))
		return nil, false
	}
	p.advance()
	return e, true
}

func (p *Parser) parseOperatorExpr() (ast.Expr, bool) {
	return p.parseBinary(precAssign)
}

// parseBinary: подъём по приоритетам, начиная с уровня minPrec.
func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	lhs, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		tok := p.peek()
		if tok.Kind == token.Question {
			if minPrec > precConditional {
				return lhs, true
			}
			p.advance()
			then, ok := p.parseBinary(precAssign)
			if !ok {
				p.requireOperand(tok)
				return nil, false
			}
			if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional expression"); !ok {
				return nil, false
			}
			els, ok := p.parseBinary(precConditional)
			if !ok {
				p.requireOperand(tok)
				return nil, false
			}
			lhs = &ast.OperatorExpr{Op: ast.OpConditional, Operands: []ast.Expr{lhs, then, els}, Sp: lhs.Span().Cover(els.Span())}
			continue
		}
		info, isOp := binaryOps[tok.Kind]
		if !isOp || info.prec < minPrec {
			return lhs, true
		}
		p.advance()
		next := info.prec + 1
		if info.right {
			next = info.prec
		}
		rhs, ok := p.parseBinary(next)
		if !ok {
			p.requireOperand(tok)
			return nil, false
		}
		lhs = &ast.OperatorExpr{Op: info.op, Operands: []ast.Expr{lhs, rhs}, Sp: lhs.Span().Cover(rhs.Span())}
	}
}

// requireOperand: после оператора операнд обязателен.
func (p *Parser) requireOperand(op token.Token) {
	if !p.IsError() {
		p.failHere(diag.SynExpectExpression, "expected operand after '"+op.Text+"', got "+describe(p.peek()))
	}
}

func (p *Parser) parseUnary() (ast.Expr, bool) {
	op, isPrefix := prefixOps[p.peek().Kind]
	if !isPrefix {
		return p.parsePostfix()
	}
	tok := p.advance()
	operand, ok := p.parseUnary()
	if !ok {
		p.requireOperand(tok)
		return nil, false
	}
	return &ast.OperatorExpr{Op: op, Operands: []ast.Expr{operand}, Sp: tok.Span.Cover(operand.Span())}, true
}

func (p *Parser) parsePostfix() (ast.Expr, bool) {
	e, ok := p.ParseExpression(ast.ExprAll.Without(ast.ExprOperator))
	if !ok {
		return nil, false
	}
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.ParenOpen:
			p.advance()
			args, ok := p.parseExprList(token.ParenClose)
			if !ok {
				return nil, false
			}
			closeTok, ok := p.expectClose(token.ParenClose, diag.SynUnclosedParen, tok, "')' after call arguments")
			if !ok {
				return nil, false
			}
			e = &ast.OperatorExpr{Op: ast.OpCall, Operands: append([]ast.Expr{e}, args...), Sp: e.Span().Cover(closeTok.Span)}
		case token.BracketOpen:
			p.advance()
			idx, ok := p.parseExprOrFail("in subscript")
			if !ok {
				return nil, false
			}
			closeTok, ok := p.expectClose(token.BracketClose, diag.SynUnclosedBracket, tok, "']' after subscript")
			if !ok {
				return nil, false
			}
			e = &ast.OperatorExpr{Op: ast.OpSubscript, Operands: []ast.Expr{e, idx}, Sp: e.Span().Cover(closeTok.Span)}
		case token.Dot, token.MinusGreater:
			p.advance()
			child, ok := p.parseSymbolChild()
			if !ok {
				return nil, false
			}
			e = &ast.SymbolChildExpr{Object: e, Arrow: tok.Kind == token.MinusGreater, Child: child, Sp: e.Span().Cover(child.Sp)}
		default:
			op, isPostfix := postfixOps[tok.Kind]
			if !isPostfix {
				return e, true
			}
			p.advance()
			e = &ast.OperatorExpr{Op: op, Operands: []ast.Expr{e}, Sp: e.Span().Cover(tok.Span)}
		}
	}
}

// parseExprList: список выражений через запятую до closer (не съедая его).
func (p *Parser) parseExprList(closer token.Kind) ([]ast.Expr, bool) {
	var list []ast.Expr
	if p.at(closer) {
		return list, true
	}
	for {
		e, ok := p.parseExprOrFail("in list")
		if !ok {
			return nil, false
		}
		list = append(list, e)
		if _, ok := p.eat(token.Comma); !ok {
			return list, true
		}
	}
}

// expectClose: закрывающая скобка; ошибка указывает на открывающую.
func (p *Parser) expectClose(k token.Kind, code diag.Code, open token.Token, what string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.fail(code, open.Span, "unclosed '"+open.Text+"': expected "+what+", got "+describe(p.peek()))
	return token.Token{}, false
}

func (p *Parser) parseSymbolChild() (ast.SymbolChild, bool) {
	name, ok := p.expect(token.Identifier, diag.SynExpectMember, "expected member name")
	if !ok {
		return ast.SymbolChild{}, false
	}
	child := ast.SymbolChild{Name: name, Sp: name.Span}
	if p.at(token.BraceOpen) {
		args, closeTok, ok := p.parseTemplateArgs()
		if !ok {
			return ast.SymbolChild{}, false
		}
		child.Templates = args
		child.Sp = child.Sp.Cover(closeTok.Span)
	}
	return child, true
}

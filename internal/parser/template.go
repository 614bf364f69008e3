package parser

import (
	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/token"
)

// parseTemplateDecl: "[" [TParam {, TParam}] "]". Без '[' возвращает nil.
func (p *Parser) parseTemplateDecl() (*ast.TemplateDecl, bool) {
	if !p.at(token.BracketOpen) {
		return nil, true
	}
	open := p.advance()
	decl := &ast.TemplateDecl{}
	if !p.at(token.BracketClose) {
		for {
			param, ok := p.parseTemplateParam()
			if !ok {
				return nil, false
			}
			decl.Params = append(decl.Params, param)
			if _, more := p.eat(token.Comma); !more {
				break
			}
		}
	}
	closeTok, ok := p.expectClose(token.BracketClose, diag.SynUnclosedBracket, open, "']' after template parameters")
	if !ok {
		return nil, false
	}
	decl.Sp = open.Span.Cover(closeTok.Span)
	return decl, true
}

// TParam := Ident ":" (TYPE | NUMBER | TypeName)
func (p *Parser) parseTemplateParam() (ast.TemplateParam, bool) {
	name, ok := p.expect(token.Identifier, diag.SynExpectIdentifier, "expected template parameter name")
	if !ok {
		return ast.TemplateParam{}, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after template parameter name"); !ok {
		return ast.TemplateParam{}, false
	}
	param := ast.TemplateParam{Name: name}
	switch {
	case p.at(token.KwType):
		p.advance()
		param.Kind = ast.TemplateType
	case p.at(token.KwNumber):
		p.advance()
		param.Kind = ast.TemplateNumber
	default:
		param.Kind = ast.TemplateValue
		if param.Type, ok = p.requireTypeName(true, "for template parameter"); !ok {
			return ast.TemplateParam{}, false
		}
	}
	param.Sp = name.Span.Cover(p.lastSpan)
	return param, true
}

// rejectTemplate: для объявлений, которые не бывают шаблонными.
func (p *Parser) rejectTemplate(tpl *ast.TemplateDecl, what string) bool {
	if tpl == nil {
		return true
	}
	p.fail(diag.SynTemplateNotAllowed, tpl.Sp, what+" cannot have template parameters")
	return false
}

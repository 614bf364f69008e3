package parser

import (
	"fmt"

	"fortio.org/safecast"

	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/source"
	"rlc/internal/token"
	"rlc/internal/trace"
)

type Options struct {
	Reporter diag.Reporter
	Tracer   trace.Tracer // nil: без трассировки
}

// Parser: состояние парсера на один файл. Разбор идёт по готовому срезу
// токенов, поэтому пробный разбор откатывается простым сбросом pos.
type Parser struct {
	toks     []token.Token
	pos      int
	file     *source.File
	opts     Options
	errors   uint        // счётчик фатальных ошибок: отличает "не подошло" от "подошло, но сломано"
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// New создаёт парсер над потоком токенов файла. toks должен заканчиваться EOF.
func New(file *source.File, toks []token.Token, opts Options) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		end, err := safecast.Conv[uint32](len(file.Content))
		if err != nil {
			panic(fmt.Errorf("file %s too large: %w", file.Path, err))
		}
		toks = append(toks, token.Token{Kind: token.EOF, Span: source.Span{File: file.ID, Start: end, End: end}})
	}
	return &Parser{toks: toks, file: file, opts: opts}
}

// ParseFile: входная точка для разбора одного файла. Первая же ошибка
// останавливает разбор: ok == false, диагностика ушла в opts.Reporter.
func ParseFile(file *source.File, toks []token.Token, opts Options) (*ast.File, bool) {
	p := New(file, toks, opts)
	return p.parseFile()
}

// IsError reports whether a fatal error has been recorded.
func (p *Parser) IsError() bool {
	return p.errors != 0
}

// AtEOF reports whether every token has been consumed.
func (p *Parser) AtEOF() bool {
	return p.at(token.EOF)
}

func (p *Parser) parseFile() (*ast.File, bool) {
	f := &ast.File{Source: p.file.ID, Path: p.file.Path}

	sp := trace.Begin(p.opts.Tracer, trace.ScopeFile, "parse", 0)
	defer sp.End(p.file.Path)

	for p.at(token.KwInclude) {
		inc, ok := p.parseInclude()
		if !ok {
			return nil, false
		}
		f.Includes = append(f.Includes, inc)
	}
	for !p.at(token.EOF) {
		entry, ok := p.parseScopeEntry()
		if !ok {
			if !p.IsError() {
				p.failHere(diag.SynExpectScopeEntry, "expected declaration, got "+describe(p.peek()))
			}
			return nil, false
		}
		f.Entries = append(f.Entries, entry)
	}
	return f, true
}

// parseInclude: INCLUDE "path"
func (p *Parser) parseInclude() (*ast.Include, bool) {
	kw := p.advance()
	tok, ok := p.expect(token.String, diag.SynExpectInclude, "expected string after INCLUDE")
	if !ok {
		return nil, false
	}
	path, ok := unquote(tok.Text)
	if !ok {
		p.fail(diag.SynExpectInclude, tok.Span, "malformed include path")
		return nil, false
	}
	return &ast.Include{Tok: tok, Path: path, Sp: kw.Span.Cover(tok.Span)}, true
}

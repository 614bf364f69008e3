package lexer

import (
	"rlc/internal/chartype"
	"rlc/internal/source"
	"rlc/internal/token"
)

// Lexer produces RL tokens on demand. The first error is fatal: afterwards
// Next keeps returning an Invalid token at the error position.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	failed bool
	errTok token.Token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Failed reports whether a lexical error was reported.
func (lx *Lexer) Failed() bool { return lx.failed }

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.failed {
		return lx.errTok
	}

	if !lx.skipSeparators() {
		return lx.fail()
	}
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token
	switch {
	case chartype.IsIdentStart(ch):
		tok = lx.scanIdentOrKeyword()
	case chartype.IsDecimal(ch):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString()
	case ch == '\'':
		tok = lx.scanChar()
	default:
		tok = lx.scanOperator()
	}
	if lx.failed {
		return lx.fail()
	}
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) fail() token.Token {
	return lx.errTok
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// Tokenize scans the whole file. The returned slice always ends with an EOF
// token when ok is true; on the first error it stops and returns ok == false.
func Tokenize(file *source.File, opts Options) (toks []token.Token, ok bool) {
	lx := New(file, opts)
	toks = make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		if lx.Failed() {
			return toks, false
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, true
		}
	}
}

package lexer

import (
	"fmt"
	"unicode/utf8"

	"rlc/internal/chartype"
	"rlc/internal/diag"
	"rlc/internal/token"
)

// skipSeparators consumes whitespace and comments. Returns false on an
// unterminated block comment.
func (lx *Lexer) skipSeparators() bool {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case chartype.IsWhitespace(b):
			lx.cursor.Bump()
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case b == '/' && lx.cursor.PeekAt(1) == '*':
			start := lx.cursor.Mark()
			lx.cursor.Advance(2)
			for {
				if lx.cursor.EOF() {
					lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start).Head(), "unterminated block comment")
					return false
				}
				if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
					lx.cursor.Advance(2)
					break
				}
				lx.cursor.Bump()
			}
		default:
			return true
		}
	}
	return true
}

// Ключевые слова проверяются до фолбэка на идентификатор.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for chartype.IsIdentContinue(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Identifier, start)
	if kw, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = kw
	}
	return tok
}

// 123, 017, 0x1F, 1.5, 2e10, 1.5e-3, each with an optional suffix (10u32, 1.5f).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.Number

	if lx.cursor.Peek() == '0' && (lx.cursor.PeekAt(1) == 'x' || lx.cursor.PeekAt(1) == 'X') {
		lx.cursor.Advance(2)
		if !chartype.IsHex(lx.cursor.Peek()) {
			lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "expected hexadecimal digits after '0x'")
			return token.Token{}
		}
		for chartype.IsHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		lx.scanSuffix()
		return lx.emit(kind, start)
	}

	octal := lx.cursor.Peek() == '0' && chartype.IsDecimal(lx.cursor.PeekAt(1))
	badOctal := byte(0)
	for chartype.IsDecimal(lx.cursor.Peek()) {
		if b := lx.cursor.Bump(); !chartype.IsOctal(b) && badOctal == 0 {
			badOctal = b
		}
	}

	// дробная часть: точка только если за ней цифра ("1..." остаётся числом и оператором)
	if lx.cursor.Peek() == '.' && chartype.IsDecimal(lx.cursor.PeekAt(1)) {
		kind = token.Float
		lx.cursor.Bump()
		for chartype.IsDecimal(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if e := lx.cursor.Peek(); e == 'e' || e == 'E' {
		n := uint32(1)
		if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
			n = 2
		}
		if chartype.IsDecimal(lx.cursor.PeekAt(n)) {
			kind = token.Float
			lx.cursor.Advance(int(n))
			for chartype.IsDecimal(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	if octal && kind == token.Number && badOctal != 0 {
		lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), fmt.Sprintf("invalid digit '%c' in octal literal", badOctal))
		return token.Token{}
	}
	lx.scanSuffix()
	return lx.emit(kind, start)
}

func (lx *Lexer) scanSuffix() {
	for !lx.cursor.EOF() && chartype.IsIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated string literal")
			return token.Token{}
		}
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(token.String, start)
		case '\\':
			if !lx.scanEscape() {
				return token.Token{}
			}
		default:
			lx.cursor.Bump()
		}
	}
}

func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	switch b := lx.cursor.Peek(); {
	case lx.cursor.EOF() || b == '\n':
		lx.errLex(diag.LexUnterminatedChar, lx.cursor.SpanFrom(start), "unterminated character literal")
		return token.Token{}
	case b == '\'':
		lx.cursor.Bump()
		lx.errLex(diag.LexEmptyChar, lx.cursor.SpanFrom(start), "empty character literal")
		return token.Token{}
	case b == '\\':
		if !lx.scanEscape() {
			return token.Token{}
		}
	default:
		_, size := utf8.DecodeRune(lx.cursor.Rest())
		lx.cursor.Advance(size)
	}
	if !lx.cursor.Eat('\'') {
		lx.errLex(diag.LexUnterminatedChar, lx.cursor.SpanFrom(start), "expected closing quote in character literal")
		return token.Token{}
	}
	return lx.emit(token.Char, start)
}

// scanEscape consumes one escape sequence starting at '\'.
func (lx *Lexer) scanEscape() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	switch lx.cursor.Peek() {
	case '\\', '"', '\'', 'n', 't', 'r', '0', 'a', 'b', 'f', 'v':
		lx.cursor.Bump()
		return true
	case 'x':
		lx.cursor.Bump()
		if chartype.IsHex(lx.cursor.Peek()) && chartype.IsHex(lx.cursor.PeekAt(1)) {
			lx.cursor.Advance(2)
			return true
		}
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "expected two hexadecimal digits after '\\x'")
		return false
	}
	if !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), fmt.Sprintf("invalid escape sequence '%s'", lx.text(lx.cursor.SpanFrom(start))))
	return false
}

// Операторы: самое длинное совпадение из таблицы.
func (lx *Lexer) scanOperator() token.Token {
	start := lx.cursor.Mark()
	kind, n := token.MatchOperator(lx.cursor.Rest())
	if n == 0 {
		_, size := utf8.DecodeRune(lx.cursor.Rest())
		lx.cursor.Advance(size)
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character '%s'", lx.text(sp)))
		return token.Token{}
	}
	lx.cursor.Advance(n)
	return lx.emit(kind, start)
}
